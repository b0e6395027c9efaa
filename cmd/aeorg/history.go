package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent organize runs",
		Long:  `Display the run ledger, newest first, with per-run move counts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initLedger(ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil {
					slog.Error("Failed to close database", "error", closeErr)
				}
			}()

			records, err := store.ListRuns(ctx, limit)
			if err != nil {
				return err
			}

			if len(records) == 0 {
				fmt.Println(cli.SubtitleStyle.Render("No runs recorded yet."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

			// Header
			fmt.Fprintln(w, strings.Join([]string{
				cli.HeaderStyle.Render("WHEN"),
				cli.HeaderStyle.Render("PROJECT"),
				cli.HeaderStyle.Render("ITEMS"),
				cli.HeaderStyle.Render("MOVED"),
				cli.HeaderStyle.Render("SKIPPED"),
				cli.HeaderStyle.Render("RESULT"),
			}, "\t"))

			// Rows
			for _, rec := range records {
				result := cli.SuccessStyle.Render("ok")
				if !rec.Success {
					result = cli.ErrorStyle.Render("failed")
				}

				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%d\t%s\n",
					formatRelativeTime(rec.StartedAt),
					rec.Project,
					rec.ItemCount,
					rec.MovedCount,
					rec.SkippedCount,
					result,
				)
			}

			w.Flush()

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")

	return cmd
}
