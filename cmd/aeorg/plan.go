package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/engine"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/tui"
)

func planCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <project.json>",
		Short: "Preview where items would go",
		Long: `Compute the placement plan for a project snapshot without moving anything.

Examples:
  aeorg plan project.json                  # Styled table
  aeorg plan project.json --format json    # Machine-readable plan
  aeorg plan project.json --interactive    # Scrollable review screen`,
		Args: cobra.ExactArgs(1),
		RunE: runPlan,
	}

	// Flags
	cmd.Flags().StringP("rules", "r", "", "Rule file (default: ~/.config/aeorg/organizer.json)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
	cmd.Flags().BoolP("interactive", "i", false, "Review the plan in a full-screen viewer")

	// Bind to viper (errors are rare and can be ignored in practice)
	_ = viper.BindPFlag("plan.rules", cmd.Flags().Lookup("rules"))
	_ = viper.BindPFlag("plan.format", cmd.Flags().Lookup("format"))
	_ = viper.BindPFlag("plan.interactive", cmd.Flags().Lookup("interactive"))

	return cmd
}

func runPlan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	format := viper.GetString("plan.format")
	interactive := viper.GetBool("plan.interactive")

	cfg, err := loadRules(rulesPath(viper.GetString("plan.rules")))
	if err != nil {
		return err
	}

	proj, err := project.Load(args[0])
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
	plan.Project = proj.Name

	if interactive {
		accepted, reviewErr := tui.Review(ctx, plan)
		if reviewErr != nil {
			return reviewErr
		}
		if !accepted {
			fmt.Println(cli.SubtitleStyle.Render("Plan discarded."))
			return nil
		}
	}

	switch format {
	case "table":
		printPlanTable(plan)
	case "json":
		data, marshalErr := json.MarshalIndent(plan, "", "  ")
		if marshalErr != nil {
			return fmt.Errorf("failed to encode plan: %w", marshalErr)
		}
		fmt.Println(string(data))
	default:
		return fmt.Errorf("invalid format: %s", format)
	}

	return nil
}

func printPlanTable(plan *model.Plan) {
	fmt.Println(cli.FormatTitle(fmt.Sprintf("Placement plan for %s", plan.Project)))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	// Header
	fmt.Fprintln(w, strings.Join([]string{
		cli.HeaderStyle.Render("ITEM"),
		cli.HeaderStyle.Render("STATUS"),
		cli.HeaderStyle.Render("DESTINATION"),
		cli.HeaderStyle.Render("LABEL"),
	}, "\t"))

	// Rows
	for _, pl := range plan.Placements {
		dest := cli.SubtleStyle.Render("stays put")
		if pl.Moves() {
			dest = strings.Join(pl.Path, "/")
		} else if pl.Reason != "" {
			dest = cli.SubtleStyle.Render("stays put (" + pl.Reason + ")")
		}

		label := ""
		if pl.LabelColor > 0 {
			label = fmt.Sprintf("%d", pl.LabelColor)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", pl.ItemName, statusCell(pl.Status), dest, label)
	}

	w.Flush()

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("%d items · %d moves · %d skipped",
		len(plan.Placements), plan.MoveCount(), plan.SkipCount())))
}

func statusCell(status model.PlacementStatus) string {
	switch status {
	case model.PlacementSkipped:
		return cli.SubtleStyle.Render(string(status))
	case model.PlacementException:
		return cli.WarningStyle.Render(string(status))
	default:
		return cli.InfoStyle.Render(string(status))
	}
}
