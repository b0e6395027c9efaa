package model

import "time"

// PlacementStatus records which stage of the state machine decided an item's
// destination.
type PlacementStatus string

const (
	// PlacementRender means the item matched a render folder's keywords.
	PlacementRender PlacementStatus = "render"
	// PlacementCategory means ordinary category classification placed the item.
	PlacementCategory PlacementStatus = "category"
	// PlacementSequence means the item routed through the Footage sequence path.
	PlacementSequence PlacementStatus = "sequence"
	// PlacementException means an exception rule overrode the destination.
	PlacementException PlacementStatus = "exception"
	// PlacementSkipped means no rule produced a destination; the item stays put.
	PlacementSkipped PlacementStatus = "skipped"
)

// Placement is the destination decision for a single item.
type Placement struct {
	Path       []string        `json:"path,omitempty"`
	ItemID     string          `json:"itemId"`
	ItemName   string          `json:"itemName"`
	FolderID   string          `json:"folderId,omitempty"`
	Reason     string          `json:"reason,omitempty"`
	Status     PlacementStatus `json:"status"`
	LabelColor int             `json:"labelColor,omitempty"`
}

// Moves reports whether this placement will move its item.
func (p Placement) Moves() bool {
	return p.Status != PlacementSkipped && len(p.Path) > 0
}

// Plan is the complete decision batch for one run, computed before any
// mutation happens.
type Plan struct {
	Project    string      `json:"project,omitempty"`
	Placements []Placement `json:"placements"`
}

// MoveCount returns the number of placements that move an item.
func (p *Plan) MoveCount() int {
	n := 0
	for _, pl := range p.Placements {
		if pl.Moves() {
			n++
		}
	}
	return n
}

// SkipCount returns the number of skipped items in the plan.
func (p *Plan) SkipCount() int {
	return len(p.Placements) - p.MoveCount()
}

// FolderCount tallies moves into one destination folder.
type FolderCount struct {
	FolderID   string `json:"folderId"`
	FolderName string `json:"folderName"`
	Count      int    `json:"count"`
}

// RunReport is the outcome payload returned to the caller after an organize
// run. Partial counts survive an aborted run.
type RunReport struct {
	StartedAt      time.Time     `json:"startedAt"`
	FinishedAt     time.Time     `json:"finishedAt"`
	Project        string        `json:"project,omitempty"`
	Error          string        `json:"error,omitempty"`
	MovedItems     []FolderCount `json:"movedItems"`
	ItemCount      int           `json:"itemCount"`
	MovedCount     int           `json:"movedCount"`
	SkippedCount   int           `json:"skippedCount"`
	DeletedFolders int           `json:"deletedFolders,omitempty"`
	Success        bool          `json:"success"`
}

// RunRecord is a persisted run with its ledger id.
type RunRecord struct {
	RunReport
	ID int64 `json:"id"`
}
