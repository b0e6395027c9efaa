// Package engine implements the placement engine: it resolves every project
// item to a destination per the configured rules and drives the host
// repository to materialize the result.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

// Organizer plans and applies organize runs against one project.
type Organizer struct {
	repo ItemRepository
	cfg  model.OrganizerConfig
}

// Options tunes a single run.
type Options struct {
	// OnMove is called after each successful move, for progress reporting.
	OnMove func(model.Placement)
	// DryRun computes the report without touching the project.
	DryRun bool
	// SkipCleanup leaves empty folders in place even when the configuration
	// asks for cleanup.
	SkipCleanup bool
}

// New creates an organizer for the given repository and rule set. The
// configuration is copied and normalized up front; later edits to cfg do not
// affect this organizer.
func New(repo ItemRepository, cfg model.OrganizerConfig) *Organizer {
	return &Organizer{repo: repo, cfg: cfg.Normalized()}
}

// Config returns the normalized configuration the organizer runs with.
func (o *Organizer) Config() *model.OrganizerConfig {
	return &o.cfg
}

// Plan enumerates the project and computes the full decision batch without
// mutating anything. Items inside a skip-organization folder's subtree are
// reported as skipped.
func (o *Organizer) Plan(ctx context.Context) (*model.Plan, error) {
	items, err := o.repo.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list project items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrNoItems
	}

	skip, err := o.skipSet(ctx, items)
	if err != nil {
		return nil, err
	}

	p := newPlanner(&o.cfg)
	plan := &model.Plan{Placements: make([]model.Placement, 0, len(items))}
	for _, item := range items {
		if skip[item.ID] {
			plan.Placements = append(plan.Placements, model.Placement{
				ItemID:   item.ID,
				ItemName: item.Name,
				Status:   model.PlacementSkipped,
				Reason:   reasonSkipFolder,
			})
			continue
		}
		plan.Placements = append(plan.Placements, p.place(item))
	}

	slog.Debug("computed placement plan",
		"items", len(items),
		"moves", plan.MoveCount(),
		"skipped", plan.SkipCount())
	return plan, nil
}

// skipSet collects the ids of items sitting inside any skip-organization
// folder's subtree.
func (o *Organizer) skipSet(ctx context.Context, items []model.ItemSnapshot) (map[string]bool, error) {
	skip := make(map[string]bool)
	for i := range o.cfg.Folders {
		f := &o.cfg.Folders[i]
		if !f.SkipOrganization {
			continue
		}
		name := f.DisplayName(i)
		for _, item := range items {
			if skip[item.ID] {
				continue
			}
			inside, err := o.repo.ItemInSubtree(ctx, item.ID, name)
			if err != nil {
				return nil, fmt.Errorf("failed to check ancestry of %q: %w", item.Name, err)
			}
			if inside {
				skip[item.ID] = true
			}
		}
	}
	return skip, nil
}

// Run plans and applies one organize pass, returning the outcome payload.
// The report is never nil; partial counts survive an abort.
func (o *Organizer) Run(ctx context.Context, opts Options) (*model.RunReport, error) {
	report := &model.RunReport{
		StartedAt:  time.Now(),
		MovedItems: []model.FolderCount{},
	}

	plan, err := o.Plan(ctx)
	if err != nil {
		report.Error = err.Error()
		report.FinishedAt = time.Now()
		return report, err
	}
	report.ItemCount = len(plan.Placements)

	if opts.DryRun {
		report.Success = true
		report.MovedCount = plan.MoveCount()
		report.SkippedCount = plan.SkipCount()
		report.FinishedAt = time.Now()
		return report, nil
	}

	counts := make(map[string]int)
	applyErr := o.apply(ctx, plan, opts, report, counts)
	o.tally(report, counts)

	if applyErr != nil {
		report.Error = applyErr.Error()
		report.FinishedAt = time.Now()
		return report, applyErr
	}

	report.Success = true
	if o.cfg.Settings.DeleteEmptyFoldersAfterRun && !opts.SkipCleanup {
		deleted, cleanupErr := CleanupEmptyFolders(ctx, o.repo)
		report.DeletedFolders = deleted
		if cleanupErr != nil {
			slog.Warn("empty-folder cleanup incomplete", "error", cleanupErr)
		}
	}
	report.FinishedAt = time.Now()

	slog.Info("organize run complete",
		"items", report.ItemCount,
		"moved", report.MovedCount,
		"skipped", report.SkippedCount,
		"folders_deleted", report.DeletedFolders)
	return report, nil
}

// apply executes the decision batch. Per-item move rejections are tallied as
// skips; fatal host failures and folder-creation failures abort.
func (o *Organizer) apply(ctx context.Context, plan *model.Plan, opts Options, report *model.RunReport, counts map[string]int) error {
	for _, pl := range plan.Placements {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !pl.Moves() {
			report.SkippedCount++
			continue
		}

		folder, err := o.repo.EnsureFolderPath(ctx, pl.Path)
		if err != nil {
			return fmt.Errorf("failed to materialize %q: %w", strings.Join(pl.Path, "/"), err)
		}
		if err := o.repo.MoveItem(ctx, pl.ItemID, folder); err != nil {
			if IsFatal(err) {
				return fmt.Errorf("failed to move %q: %w", pl.ItemName, err)
			}
			slog.Warn("host rejected move; skipping item", "item", pl.ItemName, "error", err)
			report.SkippedCount++
			continue
		}
		if o.cfg.Settings.ApplyFolderLabelColor && pl.LabelColor > 0 {
			if err := o.repo.SetItemLabel(ctx, pl.ItemID, pl.LabelColor); err != nil {
				slog.Warn("failed to set label color", "item", pl.ItemName, "error", err)
			}
		}

		report.MovedCount++
		counts[pl.FolderID]++
		if opts.OnMove != nil {
			opts.OnMove(pl)
		}
	}
	return nil
}

// tally folds the per-folder move counts into the report in folder order.
func (o *Organizer) tally(report *model.RunReport, counts map[string]int) {
	for i := range o.cfg.Folders {
		f := &o.cfg.Folders[i]
		if n := counts[f.ID]; n > 0 {
			report.MovedItems = append(report.MovedItems, model.FolderCount{
				FolderID:   f.ID,
				FolderName: f.DisplayName(i),
				Count:      n,
			})
		}
	}
}
