// Package project models the serialized project snapshot a host bridge
// exports: the folder tree and the items inside it, plus a Repository that
// lets the engine drive the snapshot in place.
package project

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// Item is one project item as stored in the snapshot file. Label carries the
// label color currently applied in the host (0 = none).
type Item struct {
	model.ItemSnapshot
	Label int `json:"label,omitempty"`
}

// Folder is one node of the project folder tree. ID is the host item id of
// the folder container; snapshots may omit it, in which case NewRepository
// derives one from the folder's path.
type Folder struct {
	ID      string    `json:"id,omitempty"`
	Name    string    `json:"name"`
	Folders []*Folder `json:"folders,omitempty"`
	Items   []*Item   `json:"items,omitempty"`
	Label   int       `json:"label,omitempty"`
}

// Project is a complete snapshot of one host project.
type Project struct {
	Name string  `json:"name"`
	Root *Folder `json:"root"`
}

// New returns an empty project snapshot with the given name.
func New(name string) *Project {
	return &Project{Name: name, Root: &Folder{}}
}

// Child returns the direct subfolder with the given name, nil when absent.
// Duplicate sibling names resolve to the first occurrence.
func (f *Folder) Child(name string) *Folder {
	for _, sub := range f.Folders {
		if sub.Name == name {
			return sub
		}
	}
	return nil
}

// Contains reports whether other sits anywhere below f.
func (f *Folder) Contains(other *Folder) bool {
	for _, sub := range f.Folders {
		if sub == other || sub.Contains(other) {
			return true
		}
	}
	return false
}

// CountFolders returns the number of folders in the tree, the root excluded.
func (p *Project) CountFolders() int {
	var count func(f *Folder) int
	count = func(f *Folder) int {
		n := len(f.Folders)
		for _, sub := range f.Folders {
			n += count(sub)
		}
		return n
	}
	return count(p.Root)
}

// CountItems returns the number of non-container items in the tree.
func (p *Project) CountItems() int {
	var count func(f *Folder) int
	count = func(f *Folder) int {
		n := len(f.Items)
		for _, sub := range f.Folders {
			n += count(sub)
		}
		return n
	}
	return count(p.Root)
}

// Validate checks snapshot integrity: a root folder exists, every item has
// an id, and no id is used twice.
func (p *Project) Validate() error {
	if p.Root == nil {
		return fmt.Errorf("project %q has no root folder", p.Name)
	}
	seen := make(map[string]string)
	claim := func(id, name string) error {
		if prev, ok := seen[id]; ok {
			return fmt.Errorf("items %q and %q share id %q", prev, name, id)
		}
		seen[id] = name
		return nil
	}
	var check func(f *Folder) error
	check = func(f *Folder) error {
		for _, it := range f.Items {
			if it.ID == "" {
				return fmt.Errorf("item %q has no id", it.Name)
			}
			if err := claim(it.ID, it.Name); err != nil {
				return err
			}
		}
		for _, sub := range f.Folders {
			if sub.ID != "" {
				if err := claim(sub.ID, sub.Name); err != nil {
					return err
				}
			}
			if err := check(sub); err != nil {
				return err
			}
		}
		return nil
	}
	return check(p.Root)
}

// Load reads and validates a project snapshot file.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path comes from the caller's own invocation
	if err != nil {
		return nil, fmt.Errorf("failed to read project snapshot: %w", err)
	}
	var p Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project snapshot: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid project snapshot: %w", err)
	}
	return &p, nil
}

// Save writes the snapshot to disk, replacing the file atomically.
func (p *Project) Save(path string) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project snapshot: %w", err)
	}
	data = append(data, '\n')

	// Write to a temporary file first, then rename over the original.
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write project snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to replace project snapshot: %w", err)
	}
	return nil
}
