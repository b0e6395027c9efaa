package engine

import (
	"context"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// FolderID is an opaque handle to a materialized project folder, issued by
// the repository.
type FolderID string

// FolderInfo describes one existing folder and its path from the project
// root, outermost segment first.
type FolderInfo struct {
	ID       FolderID
	Segments []string
}

// ItemRepository defines the host boundary the engine drives. The in-memory
// project snapshot implements it; a host-application bridge would supply its
// own implementation. Move failures may wrap HostError to mark themselves
// fatal; any other move error is tallied per item and the run continues.
type ItemRepository interface {
	// ListItems enumerates every project item, containers included and
	// tagged as such.
	ListItems(ctx context.Context) ([]model.ItemSnapshot, error)
	// ItemInSubtree reports whether the item currently sits anywhere under
	// a folder with the given name.
	ItemInSubtree(ctx context.Context, itemID, folderName string) (bool, error)
	// EnsureFolderPath finds or creates the folder at the given path,
	// matching each segment by exact name within its parent.
	EnsureFolderPath(ctx context.Context, segments []string) (FolderID, error)
	// MoveItem moves the item into the folder.
	MoveItem(ctx context.Context, itemID string, folder FolderID) error
	// SetItemLabel sets the item's label color index (1..16).
	SetItemLabel(ctx context.Context, itemID string, color int) error
	// RenameItem gives the item a new name.
	RenameItem(ctx context.Context, itemID, newName string) error
	// ListFolders enumerates every folder in the project.
	ListFolders(ctx context.Context) ([]FolderInfo, error)
	// DeleteFolderIfEmpty removes the folder when it has no children and
	// reports whether it did.
	DeleteFolderIfEmpty(ctx context.Context, folder FolderID) (bool, error)
}
