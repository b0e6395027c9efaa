package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/cli"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/config"
	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the organizer rule file",
		Long:  `Create, validate, and inspect the JSON rule file that drives organize runs.`,
	}

	cmd.AddCommand(configInitCmd())
	cmd.AddCommand(configValidateCmd())
	cmd.AddCommand(configShowCmd())

	return cmd
}

func configInitCmd() *cobra.Command {
	var (
		rules string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the stock rule file",
		Long:  `Create a rule file with the stock folders: Comps, Source, Renders, and the reserved System folder.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := rulesPath(rules)

			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("rule file already exists at %s (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
				return fmt.Errorf("failed to create config directory: %w", err)
			}

			doc := config.NewDocument(config.Default())
			if err := doc.Save(path); err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Wrote stock rules to %s", path)))
			fmt.Println(cli.SubtitleStyle.Render("Edit the file, then check it with: aeorg config validate"))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rules, "rules", "r", "", "Rule file (default: ~/.config/aeorg/organizer.json)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing rule file")

	return cmd
}

func configValidateCmd() *cobra.Command {
	var rules string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the rule file",
		Long:  `Validate the rule file structurally and semantically, and surface rule shapes that are legal but probably mistakes.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := rulesPath(rules)

			doc, err := config.Load(path)
			if err != nil {
				var verr *config.ValidationError
				switch {
				case errors.As(err, &verr):
					fmt.Println(cli.FormatError(fmt.Sprintf("Rule file %s is invalid:", path)))
					printValidationFields(verr)
					return fmt.Errorf("%d problems found", len(verr.Fields))
				case errors.Is(err, config.ErrSchemaVersion):
					fmt.Println(cli.FormatError(err.Error()))
					return errors.New("rule file needs to be recreated: aeorg config init --force")
				default:
					return err
				}
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Rule file %s is valid", path)))
			fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("%d folders · %d exceptions",
				len(doc.Config.Folders), len(doc.Config.Exceptions))))

			for _, warning := range config.Warnings(doc.Config) {
				fmt.Println(cli.FormatWarning(warning))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&rules, "rules", "r", "", "Rule file (default: ~/.config/aeorg/organizer.json)")

	return cmd
}

func configShowCmd() *cobra.Command {
	var rules string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the resolved rules",
		Long:  `Print the rule set in its normalized run order, with generated folder names as they will appear in the project.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadRules(rulesPath(rules))
			if err != nil {
				return err
			}

			printRules(cfg.Normalized())
			return nil
		},
	}

	cmd.Flags().StringVarP(&rules, "rules", "r", "", "Rule file (default: ~/.config/aeorg/organizer.json)")

	return cmd
}

func printValidationFields(verr *config.ValidationError) {
	fields := make([]string, 0, len(verr.Fields))
	for field := range verr.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("  %s %s %s\n", cli.ErrorStyle.Render(cli.ErrorIcon), cli.BoldStyle.Render(field), verr.Fields[field])
	}
}

func printRules(cfg model.OrganizerConfig) {
	fmt.Println(cli.FormatTitle("Organizer rules"))

	for i := range cfg.Folders {
		f := &cfg.Folders[i]

		tags := ""
		if f.IsRenderFolder {
			tags += " " + cli.InfoStyle.Render("[render: "+strings.Join(f.RenderKeywords, ", ")+"]")
		}
		if f.SkipOrganization {
			tags += " " + cli.WarningStyle.Render("[skipped]")
		}
		fmt.Printf("%s %s%s\n", cli.FolderIcon, cli.BoldStyle.Render(f.DisplayName(i)), tags)

		for j := range f.Categories {
			c := &f.Categories[j]
			if !c.Enabled {
				continue
			}
			fmt.Printf("    %s%s\n", string(c.Type), categoryTags(c))
			for k := range c.Subcategories {
				s := &c.Subcategories[k]
				fmt.Printf("        %s %s\n", s.Name, cli.SubtleStyle.Render(filterSummary(s)))
			}
		}
	}

	if len(cfg.Exceptions) > 0 {
		fmt.Println()
		fmt.Println(cli.BoldStyle.Render("Exceptions (first match wins):"))
		for i := range cfg.Exceptions {
			e := &cfg.Exceptions[i]
			target := e.TargetFolderID
			if f := cfg.FindFolder(e.TargetFolderID); f != nil {
				target = f.Name
			}
			fmt.Printf("    %s %q → %s\n", string(e.Kind), e.Pattern, target)
		}
	}

	fmt.Println()
	fmt.Println(cli.SubtitleStyle.Render(fmt.Sprintf("delete empty folders: %t · apply label colors: %t",
		cfg.Settings.DeleteEmptyFoldersAfterRun, cfg.Settings.ApplyFolderLabelColor)))
}

func categoryTags(c *model.CategoryRule) string {
	var tags []string
	if len(c.Keywords) > 0 {
		tags = append(tags, "keywords: "+strings.Join(c.Keywords, ", "))
	}
	if c.DetectSequences {
		tags = append(tags, "sequences")
	}
	if c.LabelColor > 0 {
		tags = append(tags, fmt.Sprintf("label %d", c.LabelColor))
	}
	if len(tags) == 0 {
		return ""
	}
	return " " + cli.SubtleStyle.Render("("+strings.Join(tags, " · ")+")")
}

func filterSummary(s *model.Subcategory) string {
	if s.MatchesAll() {
		return "(all items)"
	}
	parts := make([]string, 0, len(s.Filters))
	for _, f := range s.Filters {
		parts = append(parts, fmt.Sprintf("%s=%s", f.Kind, f.Value))
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
