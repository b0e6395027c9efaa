package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
)

// CleanupEmptyFolders deletes every empty folder in one bottom-up pass.
// Folders are visited deepest first, so a parent emptied by its child's
// deletion is caught within the same pass. Returns the number of folders
// deleted.
func CleanupEmptyFolders(ctx context.Context, repo ItemRepository) (int, error) {
	folders, err := repo.ListFolders(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list folders: %w", err)
	}

	sort.SliceStable(folders, func(i, j int) bool {
		return len(folders[i].Segments) > len(folders[j].Segments)
	})

	deleted := 0
	for _, f := range folders {
		select {
		case <-ctx.Done():
			return deleted, ctx.Err()
		default:
		}

		ok, err := repo.DeleteFolderIfEmpty(ctx, f.ID)
		if err != nil {
			return deleted, fmt.Errorf("failed to delete folder %q: %w", strings.Join(f.Segments, "/"), err)
		}
		if ok {
			deleted++
			slog.Debug("deleted empty folder", "path", strings.Join(f.Segments, "/"))
		}
	}
	return deleted, nil
}
