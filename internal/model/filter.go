package model

import (
	"fmt"
	"strings"
)

// FilterKind selects which matching strategy a filter applies.
type FilterKind string

const (
	// FilterExtension matches the item's parsed file extension.
	FilterExtension FilterKind = "extension"
	// FilterNamePrefix matches the start of the item name.
	FilterNamePrefix FilterKind = "namePrefix"
	// FilterNameKeyword matches a substring anywhere in the item name.
	FilterNameKeyword FilterKind = "nameKeyword"
)

// Valid reports whether k is a known filter kind.
func (k FilterKind) Valid() bool {
	switch k {
	case FilterExtension, FilterNamePrefix, FilterNameKeyword:
		return true
	}
	return false
}

// Filter is one atomic matching condition inside a subcategory.
// Extension values are stored without a leading dot; all comparisons are
// case-insensitive.
type Filter struct {
	Kind  FilterKind `json:"kind" validate:"required"`
	Value string     `json:"value" validate:"required"`
}

// Validate ensures the filter is well formed.
func (f Filter) Validate() error {
	if !f.Kind.Valid() {
		return fmt.Errorf("unknown filter kind %q", f.Kind)
	}
	if strings.TrimSpace(f.Value) == "" {
		return fmt.Errorf("filter value is required")
	}
	return nil
}
