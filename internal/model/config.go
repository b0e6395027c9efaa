package model

import "sort"

// SchemaVersion is the configuration schema generation this build reads and
// writes. Payloads carrying any other version are discarded in favor of
// defaults; no migration transforms exist.
const SchemaVersion = 3

// Settings holds run-level toggles.
type Settings struct {
	DeleteEmptyFoldersAfterRun bool `json:"deleteEmptyFoldersAfterRun"`
	ApplyFolderLabelColor      bool `json:"applyFolderLabelColor"`
}

// OrganizerConfig is the full rule set for one organize run. The engine
// receives it as an immutable snapshot; only the configuration layer mutates
// it.
type OrganizerConfig struct {
	Folders       []FolderRule    `json:"folders" validate:"required,dive"`
	Exceptions    []ExceptionRule `json:"exceptions" validate:"dive"`
	Settings      Settings        `json:"settings"`
	SchemaVersion int             `json:"schemaVersion"`
}

// Normalize sorts folders into evaluation order and renumbers them densely
// (0..N-1), pinning the system folder last with order 99. Each folder's
// category list is stable-sorted by its order field. Folder display names
// and mapping priority both derive from this order.
func (c *OrganizerConfig) Normalize() {
	sort.SliceStable(c.Folders, func(i, j int) bool {
		a, b := &c.Folders[i], &c.Folders[j]
		if a.IsSystem() != b.IsSystem() {
			return b.IsSystem()
		}
		return a.Order < b.Order
	})
	next := 0
	for i := range c.Folders {
		if c.Folders[i].IsSystem() {
			c.Folders[i].Order = SystemFolderOrder
		} else {
			c.Folders[i].Order = next
			next++
		}
		cats := c.Folders[i].Categories
		sort.SliceStable(cats, func(a, b int) bool {
			return cats[a].Order < cats[b].Order
		})
	}
}

// Normalized returns a normalized copy, leaving the receiver untouched. The
// folder slice and each folder's category slice are copied so sorting and
// renumbering cannot leak back to the caller.
func (c OrganizerConfig) Normalized() OrganizerConfig {
	folders := make([]FolderRule, len(c.Folders))
	copy(folders, c.Folders)
	for i := range folders {
		cats := make([]CategoryRule, len(folders[i].Categories))
		copy(cats, folders[i].Categories)
		folders[i].Categories = cats
	}
	c.Folders = folders
	c.Normalize()
	return c
}

// FindFolder returns the folder rule with the given id, or nil.
func (c *OrganizerConfig) FindFolder(id string) *FolderRule {
	for i := range c.Folders {
		if c.Folders[i].ID == id {
			return &c.Folders[i]
		}
	}
	return nil
}

// FolderPosition returns the 0-based display slot of the folder with the
// given id within the normalized folder list, or -1 if absent. The system
// folder occupies a slot like any other but displays as 99 regardless.
func (c *OrganizerConfig) FolderPosition(id string) int {
	for i := range c.Folders {
		if c.Folders[i].ID == id {
			return i
		}
	}
	return -1
}

// DisplayNameFor returns the numbered display name for the folder with the
// given id, or the empty string if the id is unknown.
func (c *OrganizerConfig) DisplayNameFor(id string) string {
	pos := c.FolderPosition(id)
	if pos < 0 {
		return ""
	}
	return c.Folders[pos].DisplayName(pos)
}
