package rules

import (
	"sort"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// ResolveSubcategory returns the first subcategory, evaluated in ascending
// order, whose filters match the item. A subcategory with an empty filter
// list matches unconditionally, so everything after it is unreachable.
// Returns nil when nothing matches; the caller decides between the Others
// bucket and staying in the parent category folder.
func ResolveSubcategory(item model.ItemSnapshot, subs []model.Subcategory) *model.Subcategory {
	if len(subs) == 0 {
		return nil
	}
	ordered := make([]model.Subcategory, len(subs))
	copy(ordered, subs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Order < ordered[j].Order
	})
	for i := range ordered {
		if ordered[i].MatchesAll() || MatchAny(item, ordered[i].Filters) {
			return &ordered[i]
		}
	}
	return nil
}
