package testutil

import (
	"testing"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
)

// ProjectBuilder assembles project snapshots for tests through a cursor:
// WithItems places items into the folder the cursor points at, InFolder moves
// the cursor and creates missing path segments on the way.
//
// Example:
//
//	proj := testutil.NewProjectBuilder(t).
//		WithItems(testutil.Media("clip-1", "clip.mp4")).
//		InFolder("WIP", "shots").
//		WithItems(testutil.Composition("comp-1", "shot_010")).
//		Build()
type ProjectBuilder struct {
	t    *testing.T
	proj *project.Project
	cur  *project.Folder
}

// NewProjectBuilder returns a builder positioned at the root of an empty
// project.
func NewProjectBuilder(t *testing.T) *ProjectBuilder {
	t.Helper()
	p := project.New("test")
	return &ProjectBuilder{t: t, proj: p, cur: p.Root}
}

// WithName sets the project name.
func (b *ProjectBuilder) WithName(name string) *ProjectBuilder {
	b.proj.Name = name
	return b
}

// InFolder moves the cursor to the folder at the given path below the root,
// creating missing segments.
func (b *ProjectBuilder) InFolder(path ...string) *ProjectBuilder {
	cur := b.proj.Root
	for _, name := range path {
		next := cur.Child(name)
		if next == nil {
			next = &project.Folder{Name: name}
			cur.Folders = append(cur.Folders, next)
		}
		cur = next
	}
	b.cur = cur
	return b
}

// AtRoot returns the cursor to the project root.
func (b *ProjectBuilder) AtRoot() *ProjectBuilder {
	b.cur = b.proj.Root
	return b
}

// WithItems adds items at the cursor position.
func (b *ProjectBuilder) WithItems(items ...model.ItemSnapshot) *ProjectBuilder {
	for _, it := range items {
		b.cur.Items = append(b.cur.Items, &project.Item{ItemSnapshot: it})
	}
	return b
}

// WithLabel adds an item carrying an existing host label color.
func (b *ProjectBuilder) WithLabel(item model.ItemSnapshot, label int) *ProjectBuilder {
	b.cur.Items = append(b.cur.Items, &project.Item{ItemSnapshot: item, Label: label})
	return b
}

// Build validates and returns the assembled snapshot.
func (b *ProjectBuilder) Build() *project.Project {
	b.t.Helper()
	if err := b.proj.Validate(); err != nil {
		b.t.Fatalf("invalid project fixture: %v", err)
	}
	return b.proj
}
