package project

import (
	"context"
	"fmt"
	"strings"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/engine"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// Repository adapts a Project snapshot to the engine's ItemRepository. All
// mutations happen on the underlying tree in place; callers save the project
// afterwards. Folder handles are slash-joined paths from the root.
type Repository struct {
	proj *Project
}

// NewRepository builds a repository over p. Folders without explicit ids get
// path-derived ones so exception rules can address their container items.
func NewRepository(p *Project) *Repository {
	r := &Repository{proj: p}
	r.assignFolderIDs()
	return r
}

// Project returns the underlying snapshot.
func (r *Repository) Project() *Project {
	return r.proj
}

func (r *Repository) assignFolderIDs() {
	taken := make(map[string]bool)
	r.walkFolders(func(_ []string, f *Folder) {
		if f.ID != "" {
			taken[f.ID] = true
		}
	})
	r.walkFolders(func(path []string, f *Folder) {
		if f.ID != "" {
			return
		}
		id := strings.Join(path, "/")
		for n := 2; taken[id]; n++ {
			id = fmt.Sprintf("%s~%d", strings.Join(path, "/"), n)
		}
		f.ID = id
		taken[id] = true
	})
}

// walkFolders visits every non-root folder depth-first, passing each one a
// fresh copy of its path from the root.
func (r *Repository) walkFolders(fn func(path []string, f *Folder)) {
	var walk func(prefix []string, f *Folder)
	walk = func(prefix []string, f *Folder) {
		for _, sub := range f.Folders {
			path := append(append([]string{}, prefix...), sub.Name)
			fn(path, sub)
			walk(path, sub)
		}
	}
	walk(nil, r.proj.Root)
}

// ListItems enumerates items depth-first: a folder's own items first, then
// each subfolder as a container item followed by its contents.
func (r *Repository) ListItems(_ context.Context) ([]model.ItemSnapshot, error) {
	var items []model.ItemSnapshot
	var walk func(f *Folder)
	walk = func(f *Folder) {
		for _, it := range f.Items {
			items = append(items, it.ItemSnapshot)
		}
		for _, sub := range f.Folders {
			items = append(items, model.ItemSnapshot{
				ID:   sub.ID,
				Name: sub.Name,
				Kind: model.ItemKindContainer,
			})
			walk(sub)
		}
	}
	walk(r.proj.Root)
	return items, nil
}

// ItemInSubtree reports whether the item currently sits anywhere below a
// folder with the given name.
func (r *Repository) ItemInSubtree(_ context.Context, itemID, folderName string) (bool, error) {
	var walk func(f *Folder, inside bool) bool
	walk = func(f *Folder, inside bool) bool {
		if inside {
			for _, it := range f.Items {
				if it.ID == itemID {
					return true
				}
			}
		}
		for _, sub := range f.Folders {
			if inside && sub.ID == itemID {
				return true
			}
			if walk(sub, inside || sub.Name == folderName) {
				return true
			}
		}
		return false
	}
	return walk(r.proj.Root, false), nil
}

// EnsureFolderPath finds or creates the folder chain named by segments,
// matching each segment by exact name within its parent.
func (r *Repository) EnsureFolderPath(_ context.Context, segments []string) (engine.FolderID, error) {
	if len(segments) == 0 {
		return "", fmt.Errorf("empty folder path")
	}
	cur := r.proj.Root
	for _, name := range segments {
		next := cur.Child(name)
		if next == nil {
			next = &Folder{Name: name}
			cur.Folders = append(cur.Folders, next)
		}
		cur = next
	}
	return engine.FolderID(strings.Join(segments, "/")), nil
}

// MoveItem moves a plain item or a folder container into the destination
// folder. Moving a folder into itself or its own subtree is rejected.
func (r *Repository) MoveItem(_ context.Context, itemID string, folder engine.FolderID) error {
	dest, err := r.resolveFolder(folder)
	if err != nil {
		return err
	}
	if it, parent := r.locateItem(itemID); it != nil {
		if parent == dest {
			return nil
		}
		parent.removeItem(it)
		dest.Items = append(dest.Items, it)
		return nil
	}
	if f, parent := r.locateFolder(itemID); f != nil {
		if f == dest || f.Contains(dest) {
			return fmt.Errorf("cannot move folder %q into its own subtree", f.Name)
		}
		if parent == dest {
			return nil
		}
		parent.removeFolder(f)
		dest.Folders = append(dest.Folders, f)
		return nil
	}
	return fmt.Errorf("item %q not found", itemID)
}

// SetItemLabel records the label color on the item or folder container.
func (r *Repository) SetItemLabel(_ context.Context, itemID string, color int) error {
	if it, _ := r.locateItem(itemID); it != nil {
		it.Label = color
		return nil
	}
	if f, _ := r.locateFolder(itemID); f != nil {
		f.Label = color
		return nil
	}
	return fmt.Errorf("item %q not found", itemID)
}

// RenameItem gives the item or folder container a new name.
func (r *Repository) RenameItem(_ context.Context, itemID, newName string) error {
	if it, _ := r.locateItem(itemID); it != nil {
		it.Name = newName
		return nil
	}
	if f, _ := r.locateFolder(itemID); f != nil {
		f.Name = newName
		return nil
	}
	return fmt.Errorf("item %q not found", itemID)
}

// ListFolders enumerates every folder in the project, root excluded.
func (r *Repository) ListFolders(_ context.Context) ([]engine.FolderInfo, error) {
	var infos []engine.FolderInfo
	r.walkFolders(func(path []string, _ *Folder) {
		infos = append(infos, engine.FolderInfo{
			ID:       engine.FolderID(strings.Join(path, "/")),
			Segments: path,
		})
	})
	return infos, nil
}

// DeleteFolderIfEmpty removes the folder when it holds no items and no
// subfolders. A folder that no longer exists reports false without error.
func (r *Repository) DeleteFolderIfEmpty(_ context.Context, folder engine.FolderID) (bool, error) {
	segments := strings.Split(string(folder), "/")
	parent := r.proj.Root
	if len(segments) > 1 {
		p, err := r.resolveSegments(segments[:len(segments)-1])
		if err != nil {
			return false, nil
		}
		parent = p
	}
	f := parent.Child(segments[len(segments)-1])
	if f == nil {
		return false, nil
	}
	if len(f.Folders) > 0 || len(f.Items) > 0 {
		return false, nil
	}
	parent.removeFolder(f)
	return true, nil
}

func (r *Repository) resolveFolder(id engine.FolderID) (*Folder, error) {
	return r.resolveSegments(strings.Split(string(id), "/"))
}

func (r *Repository) resolveSegments(segments []string) (*Folder, error) {
	cur := r.proj.Root
	for _, name := range segments {
		cur = cur.Child(name)
		if cur == nil {
			return nil, fmt.Errorf("folder %q not found", strings.Join(segments, "/"))
		}
	}
	return cur, nil
}

func (r *Repository) locateItem(itemID string) (*Item, *Folder) {
	var item *Item
	var parent *Folder
	var walk func(f *Folder) bool
	walk = func(f *Folder) bool {
		for _, it := range f.Items {
			if it.ID == itemID {
				item, parent = it, f
				return true
			}
		}
		for _, sub := range f.Folders {
			if walk(sub) {
				return true
			}
		}
		return false
	}
	walk(r.proj.Root)
	return item, parent
}

func (r *Repository) locateFolder(itemID string) (*Folder, *Folder) {
	var folder *Folder
	var parent *Folder
	var walk func(f *Folder) bool
	walk = func(f *Folder) bool {
		for _, sub := range f.Folders {
			if sub.ID == itemID {
				folder, parent = sub, f
				return true
			}
			if walk(sub) {
				return true
			}
		}
		return false
	}
	walk(r.proj.Root)
	return folder, parent
}

func (f *Folder) removeItem(target *Item) {
	for i, it := range f.Items {
		if it == target {
			f.Items = append(f.Items[:i], f.Items[i+1:]...)
			return
		}
	}
}

func (f *Folder) removeFolder(target *Folder) {
	for i, sub := range f.Folders {
		if sub == target {
			f.Folders = append(f.Folders[:i], f.Folders[i+1:]...)
			return
		}
	}
}
