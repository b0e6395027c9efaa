// Package health inspects a project snapshot for footage problems the
// organizer does not fix on its own: missing sources, duplicated imports,
// and assets nothing references.
package health

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/classify"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/engine"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// IsolationFolderName is the top-level folder unused assets are moved into.
const IsolationFolderName = "_Unused"

// DuplicateGroup collects the items that share one name and effective
// extension.
type DuplicateGroup struct {
	Name      string
	Extension string
	Items     []model.ItemSnapshot
}

// Missing returns the non-container items whose source file is offline.
func Missing(items []model.ItemSnapshot) []model.ItemSnapshot {
	var missing []model.ItemSnapshot
	for _, item := range items {
		if item.Kind == model.ItemKindContainer {
			continue
		}
		if item.IsMissing {
			missing = append(missing, item)
		}
	}
	return missing
}

// Duplicates groups non-container items imported more than once, keyed by
// lower-cased name plus effective extension. Groups are ordered largest
// first, ties by name.
func Duplicates(items []model.ItemSnapshot) []DuplicateGroup {
	groups := make(map[string][]model.ItemSnapshot)
	for _, item := range items {
		if item.Kind == model.ItemKindContainer {
			continue
		}
		key := strings.ToLower(item.Name) + "\x00" + classify.ItemExtension(item)
		groups[key] = append(groups[key], item)
	}

	var dups []DuplicateGroup
	for _, members := range groups {
		if len(members) < 2 {
			continue
		}
		dups = append(dups, DuplicateGroup{
			Name:      members[0].Name,
			Extension: classify.ItemExtension(members[0]),
			Items:     members,
		})
	}

	sort.Slice(dups, func(i, j int) bool {
		if len(dups[i].Items) != len(dups[j].Items) {
			return len(dups[i].Items) > len(dups[j].Items)
		}
		return strings.ToLower(dups[i].Name) < strings.ToLower(dups[j].Name)
	})
	return dups
}

// Unused returns the media items no composition references. Compositions
// themselves are excluded; a top-level comp legitimately has no references.
func Unused(items []model.ItemSnapshot) []model.ItemSnapshot {
	var unused []model.ItemSnapshot
	for _, item := range items {
		if item.Kind != model.ItemKindMedia {
			continue
		}
		if item.UsageCount == 0 {
			unused = append(unused, item)
		}
	}
	return unused
}

// Isolate moves the given items into the top-level isolation folder,
// creating it on first use. It returns the number of items moved; a move
// failure aborts the pass with the partial count.
func Isolate(ctx context.Context, repo engine.ItemRepository, items []model.ItemSnapshot) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	folder, err := repo.EnsureFolderPath(ctx, []string{IsolationFolderName})
	if err != nil {
		return 0, fmt.Errorf("failed to create isolation folder: %w", err)
	}

	moved := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return moved, err
		}
		if err := repo.MoveItem(ctx, item.ID, folder); err != nil {
			return moved, fmt.Errorf("failed to isolate %q: %w", item.Name, err)
		}
		moved++
	}
	return moved, nil
}
