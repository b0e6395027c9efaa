// Package main contains the aeorg CLI commands.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/engine"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
)

func organizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <project.json>",
		Short: "Organize a project snapshot",
		Long: `Apply the configured rules to a project snapshot: render check first,
then category classification, exception overrides last. Items without a
matching rule stay where they are.

The snapshot file is rewritten in place after the run. Runs are idempotent:
organizing an already organized project moves nothing.

Examples:
  aeorg organize project.json              # Confirm, then organize
  aeorg organize project.json --dry-run    # Counts only, no changes
  aeorg organize project.json -y           # Skip the confirmation prompt`,
		Args: cobra.ExactArgs(1),
		RunE: runOrganize,
	}

	// Flags
	cmd.Flags().StringP("rules", "r", "", "Rule file (default: ~/.config/aeorg/organizer.json)")
	cmd.Flags().Bool("dry-run", false, "Preview counts without changing the snapshot")
	cmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
	cmd.Flags().Bool("keep-empty", false, "Leave empty folders in place after the run")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("organize.rules", cmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("organize.dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("organize.yes", cmd.Flags().Lookup("yes"))
	_ = viper.BindPFlag("organize.keep_empty", cmd.Flags().Lookup("keep-empty"))

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	snapshotPath := args[0]
	dryRun := viper.GetBool("organize.dry_run")
	skipConfirm := viper.GetBool("organize.yes")
	keepEmpty := viper.GetBool("organize.keep_empty")

	slog.Info("Starting organize run", "snapshot", snapshotPath, "dry_run", dryRun)

	cfg, err := loadRules(rulesPath(viper.GetString("organize.rules")))
	if err != nil {
		return err
	}

	proj, err := project.Load(snapshotPath)
	if err != nil {
		return err
	}

	org := engine.New(project.NewRepository(proj), cfg)

	plan, err := org.Plan(ctx)
	if err != nil {
		if errors.Is(err, engine.ErrNoItems) {
			fmt.Println(cli.FormatInfo("Project has no items to organize."))
			return nil
		}
		return err
	}

	if plan.MoveCount() == 0 {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf("%q is already organized; nothing to move.", proj.Name)))
		return nil
	}

	prompter := cli.NewPrompter(nil, nil)
	if !skipConfirm && !dryRun {
		question := fmt.Sprintf("Move %d of %d items in %q?", plan.MoveCount(), len(plan.Placements), proj.Name)
		ok, confirmErr := prompter.Confirm(ctx, question)
		if confirmErr != nil {
			if errors.Is(confirmErr, context.Canceled) {
				return nil
			}
			return confirmErr
		}
		if !ok {
			fmt.Println(cli.SubtitleStyle.Render("Organize cancelled."))
			return nil
		}
	}

	handler := cli.NewInterruptHandler(nil)
	ctx = handler.HandleInterrupts(ctx)

	if !dryRun {
		prompter.StartProgress(plan.MoveCount())
	}
	report, runErr := org.Run(ctx, engine.Options{
		DryRun:      dryRun,
		SkipCleanup: keepEmpty,
		OnMove:      func(model.Placement) { prompter.AdvanceProgress() },
	})
	prompter.FinishProgress()
	report.Project = proj.Name

	var saveErr error
	if !dryRun {
		// Moves already applied are kept even when the run aborts partway.
		if saveErr = proj.Save(snapshotPath); saveErr != nil {
			slog.Error("Failed to write project snapshot", "error", saveErr)
		} else {
			recordRun(report)
		}
	}

	prompter.ShowRunSummary(report)

	switch {
	case runErr != nil && (handler.WasInterrupted() || errors.Is(runErr, context.Canceled)):
		slog.Warn("Organize interrupted; moves already applied are kept")
		return nil
	case runErr != nil:
		return fmt.Errorf("organize failed: %w", runErr)
	case saveErr != nil:
		return saveErr
	}

	if !dryRun {
		slog.Info("Snapshot updated", "path", snapshotPath)
	}
	return nil
}

// recordRun appends the report to the run ledger. Ledger problems never fail
// the organize itself.
func recordRun(report *model.RunReport) {
	// The write must survive an interrupt, so it gets a fresh context.
	ctx := context.Background()

	store, err := initLedger(ctx)
	if err != nil {
		slog.Warn("Run ledger unavailable", "error", err)
		return
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Error("Failed to close database", "error", closeErr)
		}
	}()

	if _, err := store.SaveRun(ctx, report); err != nil {
		slog.Warn("Failed to record run", "error", err)
	}
}
