package rules

import (
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/classify"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// ResolveException returns the first exception, in list order, whose pattern
// matches the item, or nil. A match is terminal for placement: the target
// folder wins and any computed subfolder is discarded.
func ResolveException(item model.ItemSnapshot, exceptions []model.ExceptionRule) *model.ExceptionRule {
	for i := range exceptions {
		e := &exceptions[i]
		pattern := strings.ToLower(strings.TrimSpace(e.Pattern))
		if pattern == "" {
			continue
		}
		switch e.Kind {
		case model.ExceptionNameContains:
			if strings.Contains(strings.ToLower(item.Name), pattern) {
				return e
			}
		case model.ExceptionExtension:
			if classify.ItemExtension(item) == strings.TrimPrefix(pattern, ".") {
				return e
			}
		}
	}
	return nil
}
