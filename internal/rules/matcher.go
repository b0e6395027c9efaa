// Package rules evaluates the user-configurable matching rules against item
// snapshots: atomic filters, ordered subcategories, exception overrides, and
// render-folder keywords. All predicates are total and case-insensitive.
package rules

import (
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/classify"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// MatchFilter reports whether a single filter matches the item. Extension
// filters accept values with or without a leading dot.
func MatchFilter(item model.ItemSnapshot, f model.Filter) bool {
	value := strings.ToLower(strings.TrimSpace(f.Value))
	if value == "" {
		return false
	}
	switch f.Kind {
	case model.FilterExtension:
		return classify.ItemExtension(item) == strings.TrimPrefix(value, ".")
	case model.FilterNamePrefix:
		return strings.HasPrefix(strings.ToLower(item.Name), value)
	case model.FilterNameKeyword:
		return strings.Contains(strings.ToLower(item.Name), value)
	}
	return false
}

// MatchAny reports whether any filter in the list matches the item. An empty
// list never matches here; the "All Items" empty-list semantics belong to
// ResolveSubcategory alone.
func MatchAny(item model.ItemSnapshot, filters []model.Filter) bool {
	for _, f := range filters {
		if MatchFilter(item, f) {
			return true
		}
	}
	return false
}

// ContainsAnyKeyword reports whether the name contains any trimmed,
// non-empty keyword, case-insensitively. Scanning stops at the first hit.
func ContainsAnyKeyword(name string, keywords []string) bool {
	lower := strings.ToLower(name)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
