package engine

import (
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/rules"
)

// MappingEntry binds one enabled category rule to its destination folder.
type MappingEntry struct {
	Folder *model.FolderRule
	Rule   *model.CategoryRule
	// Position is the folder's display slot in the normalized folder list.
	Position int
	// Rank is the rule's 1-based position within the folder's category list;
	// it doubles as the numeric prefix of the category subfolder name.
	Rank int
}

// CategoryMap indexes mapping entries by category type in priority order:
// folder order first, then intra-folder category order.
type CategoryMap map[model.CategoryType][]MappingEntry

// BuildCategoryMap collects every enabled category rule across the folder
// list. The configuration must already be normalized; entry order and ranks
// derive from it. Disabled rules keep their slot for ranking purposes but
// produce no entry.
func BuildCategoryMap(cfg *model.OrganizerConfig) CategoryMap {
	m := make(CategoryMap)
	for i := range cfg.Folders {
		folder := &cfg.Folders[i]
		for j := range folder.Categories {
			rule := &folder.Categories[j]
			if !rule.Enabled {
				continue
			}
			m[rule.Type] = append(m[rule.Type], MappingEntry{
				Folder:   folder,
				Rule:     rule,
				Position: i,
				Rank:     j + 1,
			})
		}
	}
	return m
}

// Select picks the mapping entry for a category and item. The first entry is
// the default; a keyword-carrying entry whose keywords match the item name
// takes precedence, first keyword match in list order winning.
func (m CategoryMap) Select(cat model.CategoryType, itemName string) *MappingEntry {
	entries := m[cat]
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if len(entries[i].Rule.Keywords) > 0 && rules.ContainsAnyKeyword(itemName, entries[i].Rule.Keywords) {
			return &entries[i]
		}
	}
	return &entries[0]
}
