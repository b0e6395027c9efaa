package engine

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// MockRepository is a test implementation of ItemRepository backed by simple
// maps. Failure hooks let tests inject per-item and fatal host errors.
type MockRepository struct {
	// MoveErr, when set, is consulted before every move.
	MoveErr func(itemID string) error
	// LabelErr, when set, is consulted before every label change.
	LabelErr func(itemID string) error
	// InSubtree, when set, answers ancestry checks; the default is false.
	InSubtree func(itemID, folderName string) bool
	// ListErr fails ListItems outright.
	ListErr error
	// EnsureErr fails folder materialization outright.
	EnsureErr error

	items     []model.ItemSnapshot
	folders   map[FolderID][]string
	locations map[string]FolderID
	labels    map[string]int
	renames   map[string]string
	mu        sync.Mutex
}

// NewMockRepository creates a mock repository holding the given items.
func NewMockRepository(items ...model.ItemSnapshot) *MockRepository {
	return &MockRepository{
		items:     items,
		folders:   make(map[FolderID][]string),
		locations: make(map[string]FolderID),
		labels:    make(map[string]int),
		renames:   make(map[string]string),
	}
}

// AddFolder pre-registers an existing folder path, ancestors included.
func (m *MockRepository) AddFolder(segments ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registerLocked(segments)
}

func (m *MockRepository) registerLocked(segments []string) FolderID {
	var id FolderID
	for i := range segments {
		id = FolderID(strings.Join(segments[:i+1], "/"))
		m.folders[id] = append([]string(nil), segments[:i+1]...)
	}
	return id
}

// ListItems returns the configured items.
func (m *MockRepository) ListItems(_ context.Context) ([]model.ItemSnapshot, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.ItemSnapshot, len(m.items))
	copy(out, m.items)
	return out, nil
}

// ItemInSubtree consults the InSubtree hook, defaulting to false.
func (m *MockRepository) ItemInSubtree(_ context.Context, itemID, folderName string) (bool, error) {
	if m.InSubtree == nil {
		return false, nil
	}
	return m.InSubtree(itemID, folderName), nil
}

// EnsureFolderPath registers the path and every ancestor.
func (m *MockRepository) EnsureFolderPath(_ context.Context, segments []string) (FolderID, error) {
	if m.EnsureErr != nil {
		return "", m.EnsureErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registerLocked(segments), nil
}

// MoveItem records the item's new location.
func (m *MockRepository) MoveItem(_ context.Context, itemID string, folder FolderID) error {
	if m.MoveErr != nil {
		if err := m.MoveErr(itemID); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locations[itemID] = folder
	return nil
}

// SetItemLabel records the item's label color.
func (m *MockRepository) SetItemLabel(_ context.Context, itemID string, color int) error {
	if m.LabelErr != nil {
		if err := m.LabelErr(itemID); err != nil {
			return err
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.labels[itemID] = color
	return nil
}

// RenameItem records the item's new name.
func (m *MockRepository) RenameItem(_ context.Context, itemID, newName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.renames[itemID] = newName
	return nil
}

// ListFolders returns every registered folder.
func (m *MockRepository) ListFolders(_ context.Context) ([]FolderInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]FolderInfo, 0, len(m.folders))
	for id, segments := range m.folders {
		out = append(out, FolderInfo{ID: id, Segments: append([]string(nil), segments...)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// DeleteFolderIfEmpty removes the folder when no item lives in it and no
// child folder remains under it.
func (m *MockRepository) DeleteFolderIfEmpty(_ context.Context, folder FolderID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.folders[folder]; !ok {
		return false, nil
	}
	for _, loc := range m.locations {
		if loc == folder {
			return false, nil
		}
	}
	prefix := string(folder) + "/"
	for id := range m.folders {
		if strings.HasPrefix(string(id), prefix) {
			return false, nil
		}
	}
	delete(m.folders, folder)
	return true, nil
}

// Location returns where an item was last moved, or "".
func (m *MockRepository) Location(itemID string) FolderID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.locations[itemID]
}

// Label returns an item's recorded label color, or 0.
func (m *MockRepository) Label(itemID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.labels[itemID]
}

// RenamedTo returns the item's recorded new name, or "".
func (m *MockRepository) RenamedTo(itemID string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.renames[itemID]
}

// FolderCount returns the number of folders currently registered.
func (m *MockRepository) FolderCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.folders)
}
