package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/classify"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/health"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
)

func healthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Inspect a project for footage problems",
		Long:  `Report missing footage, duplicated sources, and unused items. These checks read the snapshot; only unused --isolate changes it.`,
	}

	cmd.AddCommand(healthMissingCmd())
	cmd.AddCommand(healthDuplicatesCmd())
	cmd.AddCommand(healthUnusedCmd())

	return cmd
}

func healthMissingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "missing <project.json>",
		Short: "List items whose source file is gone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := project.Load(args[0])
			if err != nil {
				return err
			}
			items, err := project.NewRepository(proj).ListItems(ctx)
			if err != nil {
				return err
			}

			missing := health.Missing(items)
			if len(missing) == 0 {
				fmt.Println(cli.FormatSuccess("No missing footage."))
				return nil
			}

			fmt.Println(cli.FormatWarning(fmt.Sprintf("%d items have missing sources:", len(missing))))
			printItemTable(missing)
			return nil
		},
	}
}

func healthDuplicatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "duplicates <project.json>",
		Short: "List sources imported more than once",
		Long:  `Group items sharing a name and extension. The comparison is case-insensitive; host-reported extensions win over name parsing.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := project.Load(args[0])
			if err != nil {
				return err
			}
			items, err := project.NewRepository(proj).ListItems(ctx)
			if err != nil {
				return err
			}

			groups := health.Duplicates(items)
			if len(groups) == 0 {
				fmt.Println(cli.FormatSuccess("No duplicated sources."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, strings.Join([]string{
				cli.HeaderStyle.Render("NAME"),
				cli.HeaderStyle.Render("EXTENSION"),
				cli.HeaderStyle.Render("COPIES"),
			}, "\t"))
			for _, g := range groups {
				ext := g.Extension
				if ext == "" {
					ext = cli.SubtleStyle.Render("(none)")
				}
				fmt.Fprintf(w, "%s\t%s\t%d\n", g.Name, ext, len(g.Items))
			}
			w.Flush()
			return nil
		},
	}
}

func healthUnusedCmd() *cobra.Command {
	var isolate bool

	cmd := &cobra.Command{
		Use:   "unused <project.json>",
		Short: "List footage no composition references",
		Long: `List imported footage with zero references. With --isolate, move them into
a top-level ` + health.IsolationFolderName + ` folder so they are easy to review and delete
in the host.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			proj, err := project.Load(args[0])
			if err != nil {
				return err
			}
			repo := project.NewRepository(proj)
			items, err := repo.ListItems(ctx)
			if err != nil {
				return err
			}

			unused := health.Unused(items)
			if len(unused) == 0 {
				fmt.Println(cli.FormatSuccess("Every imported item is used."))
				return nil
			}

			fmt.Println(cli.FormatInfo(fmt.Sprintf("%d items are unused:", len(unused))))
			printItemTable(unused)

			if !isolate {
				return nil
			}

			moved, err := health.Isolate(ctx, repo, unused)
			if err != nil {
				return err
			}
			if err := proj.Save(args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Moved %d items into %s", moved, health.IsolationFolderName)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&isolate, "isolate", false, "Move unused items into "+health.IsolationFolderName)

	return cmd
}

func printItemTable(items []model.ItemSnapshot) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, strings.Join([]string{
		cli.HeaderStyle.Render("NAME"),
		cli.HeaderStyle.Render("KIND"),
		cli.HeaderStyle.Render("EXTENSION"),
	}, "\t"))
	for _, item := range items {
		ext := classify.ItemExtension(item)
		if ext == "" {
			ext = cli.SubtleStyle.Render("(none)")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", item.Name, string(item.Kind), ext)
	}
	w.Flush()
}
