// Package model defines the core domain types shared across the organizer.
package model

// ItemKind identifies what sort of project item a snapshot describes.
type ItemKind string

const (
	// ItemKindComposition represents a composition item.
	ItemKindComposition ItemKind = "composition"
	// ItemKindMedia represents an imported footage or still item.
	ItemKindMedia ItemKind = "media"
	// ItemKindContainer represents a folder item.
	ItemKindContainer ItemKind = "container"
)

// Valid reports whether k is a known item kind.
func (k ItemKind) Valid() bool {
	switch k {
	case ItemKindComposition, ItemKindMedia, ItemKindContainer:
		return true
	}
	return false
}

// ItemSnapshot is the immutable per-run view of one project item as supplied
// by the item repository. The host bridge fills Extension with the source
// file's true extension when it knows it; matchers fall back to parsing the
// item name otherwise.
type ItemSnapshot struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Extension       string   `json:"extension,omitempty"`
	Kind            ItemKind `json:"kind"`
	UsageCount      int      `json:"usageCount,omitempty"`
	IsSequenceFrame bool     `json:"isSequenceFrame,omitempty"`
	IsSolidOrNull   bool     `json:"isSolidOrNull,omitempty"`
	IsMissing       bool     `json:"isMissing,omitempty"`
}
