package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/project"
)

func renameCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "rename <project.json> <find> <replace>",
		Short: "Find and replace in item names",
		Long: `Rename every item and folder whose name contains the find string. The
comparison is case-sensitive.

Examples:
  aeorg rename project.json "Comp 1" shot_010       # Apply
  aeorg rename project.json draft final --dry-run   # Preview only`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snapshotPath, find, replace := args[0], args[1], args[2]

			if find == "" {
				return fmt.Errorf("find string must not be empty")
			}

			proj, err := project.Load(snapshotPath)
			if err != nil {
				return err
			}
			repo := project.NewRepository(proj)

			items, err := repo.ListItems(ctx)
			if err != nil {
				return err
			}

			renamed := 0
			for _, item := range items {
				if !strings.Contains(item.Name, find) {
					continue
				}
				newName := strings.ReplaceAll(item.Name, find, replace)

				if dryRun {
					fmt.Printf("  %s → %s\n", item.Name, cli.BoldStyle.Render(newName))
					renamed++
					continue
				}
				if err := repo.RenameItem(ctx, item.ID, newName); err != nil {
					return fmt.Errorf("failed to rename %q: %w", item.Name, err)
				}
				renamed++
			}

			if renamed == 0 {
				fmt.Println(cli.FormatInfo(fmt.Sprintf("No item names contain %q.", find)))
				return nil
			}

			if dryRun {
				fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("%d items would be renamed.", renamed)))
				return nil
			}

			if err := proj.Save(snapshotPath); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Renamed %d items.", renamed)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview renames without changing the snapshot")

	return cmd
}
