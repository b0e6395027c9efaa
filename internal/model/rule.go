package model

import (
	"fmt"
	"strings"
)

// CategoryType identifies the coarse bucket a category rule routes items into.
// The value doubles as the display segment of the category's subfolder name.
type CategoryType string

const (
	// CategoryComps receives composition items.
	CategoryComps CategoryType = "Comps"
	// CategoryFootage receives video and any media not claimed by another bucket.
	CategoryFootage CategoryType = "Footage"
	// CategoryImages receives still images and non-sequence CG frames.
	CategoryImages CategoryType = "Images"
	// CategoryAudio receives audio media.
	CategoryAudio CategoryType = "Audio"
	// CategorySolids receives solid and null layers.
	CategorySolids CategoryType = "Solids"
)

// Valid reports whether t is a known category type.
func (t CategoryType) Valid() bool {
	switch t {
	case CategoryComps, CategoryFootage, CategoryImages, CategoryAudio, CategorySolids:
		return true
	}
	return false
}

// Subcategory is one ordered refinement bucket inside a category rule.
// An empty filter list matches every item that reaches it ("All Items").
type Subcategory struct {
	Filters          []Filter `json:"filters" validate:"dive"`
	ID               string   `json:"id" validate:"required"`
	Name             string   `json:"name" validate:"required"`
	Order            int      `json:"order"`
	LabelColor       int      `json:"labelColor,omitempty" validate:"omitempty,min=1,max=16"`
	CreateSubfolders bool     `json:"createSubfolders,omitempty"`
}

// MatchesAll reports whether the subcategory carries "All Items" semantics.
func (s Subcategory) MatchesAll() bool {
	return len(s.Filters) == 0
}

// CategoryRule assigns one category type to a destination folder, optionally
// refined by subcategories. Keywords disambiguate when the same type is
// mapped into multiple folders.
type CategoryRule struct {
	Keywords         []string      `json:"keywords,omitempty"`
	Subcategories    []Subcategory `json:"subcategories,omitempty" validate:"dive"`
	Type             CategoryType  `json:"type" validate:"required"`
	Order            int           `json:"order"`
	LabelColor       int           `json:"labelColor,omitempty" validate:"omitempty,min=1,max=16"`
	Enabled          bool          `json:"enabled"`
	CreateSubfolders bool          `json:"createSubfolders,omitempty"`
	DetectSequences  bool          `json:"detectSequences,omitempty"`
}

// Validate ensures the category rule is well formed.
func (c *CategoryRule) Validate() error {
	if !c.Type.Valid() {
		return fmt.Errorf("unknown category type %q", c.Type)
	}
	for i := range c.Subcategories {
		for _, f := range c.Subcategories[i].Filters {
			if err := f.Validate(); err != nil {
				return fmt.Errorf("subcategory %q: %w", c.Subcategories[i].Name, err)
			}
		}
	}
	return nil
}

const (
	// SystemFolderID is the reserved id of the system folder. It always sorts
	// last and always displays with the 99 prefix.
	SystemFolderID = "system"
	// SystemFolderOrder is the pinned order value of the system folder.
	SystemFolderOrder = 99
)

// FolderRule is one top-level destination folder and the category rules that
// route items into it.
type FolderRule struct {
	RenderKeywords   []string       `json:"renderKeywords,omitempty"`
	Categories       []CategoryRule `json:"categories" validate:"dive"`
	ID               string         `json:"id" validate:"required"`
	Name             string         `json:"name" validate:"required"`
	Order            int            `json:"order"`
	LabelColor       int            `json:"labelColor,omitempty" validate:"omitempty,min=1,max=16"`
	IsRenderFolder   bool           `json:"isRenderFolder,omitempty"`
	SkipOrganization bool           `json:"skipOrganization,omitempty"`
}

// IsSystem reports whether this is the reserved system folder.
func (f *FolderRule) IsSystem() bool {
	return f.ID == SystemFolderID
}

// DisplayName returns the numbered name the folder materializes under.
// position is the folder's 0-based slot after sorting by order with the
// system folder last; the system folder ignores it and always shows 99.
func (f *FolderRule) DisplayName(position int) string {
	if f.IsSystem() {
		return fmt.Sprintf("%02d_%s", SystemFolderOrder, f.Name)
	}
	return fmt.Sprintf("%02d_%s", position, f.Name)
}

// ExceptionKind selects how an exception rule matches items.
type ExceptionKind string

const (
	// ExceptionNameContains matches a case-insensitive substring of the item name.
	ExceptionNameContains ExceptionKind = "nameContains"
	// ExceptionExtension matches the item's parsed extension, dot-insensitive.
	ExceptionExtension ExceptionKind = "extension"
)

// Valid reports whether k is a known exception kind.
func (k ExceptionKind) Valid() bool {
	return k == ExceptionNameContains || k == ExceptionExtension
}

// ExceptionRule is a user override evaluated in list order. The first match
// is terminal: the item lands directly in the target folder with no further
// classification or subfolder computation.
type ExceptionRule struct {
	ID             string        `json:"id" validate:"required"`
	Pattern        string        `json:"pattern" validate:"required"`
	TargetFolderID string        `json:"targetFolderId" validate:"required"`
	TargetCategory string        `json:"targetCategory,omitempty"`
	Kind           ExceptionKind `json:"kind" validate:"required"`
}

// Validate ensures the exception rule is well formed.
func (e *ExceptionRule) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("unknown exception kind %q", e.Kind)
	}
	if strings.TrimSpace(e.Pattern) == "" {
		return fmt.Errorf("exception pattern is required")
	}
	if e.TargetFolderID == "" {
		return fmt.Errorf("exception target folder is required")
	}
	return nil
}
