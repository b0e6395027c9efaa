package rules

import (
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// MatchesRenderFolder reports whether the item belongs at the root of the
// given render folder: only compositions qualify, and only when the folder
// is marked as a render folder and the item name contains one of its render
// keywords.
func MatchesRenderFolder(item model.ItemSnapshot, folder *model.FolderRule) bool {
	if !folder.IsRenderFolder || item.Kind != model.ItemKindComposition {
		return false
	}
	return ContainsAnyKeyword(item.Name, folder.RenderKeywords)
}
