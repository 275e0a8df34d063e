package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gavelworks/gavel/internal/cli"
	"github.com/gavelworks/gavel/internal/config"
	"github.com/gavelworks/gavel/internal/organize"
)

func organizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize <file-or-dir>...",
		Short: "File opinions into the court directory tree",
		Long: `Classify opinions and move them into <base>/<federal|nys>/<court>/.

Files below the confidence threshold stay where they are. Name collisions
in the target directory get a numeric suffix; nothing is ever overwritten.

Examples:
  gavel organize inbox/                 # file everything in inbox/
  gavel organize opinion.pdf --dry-run  # show the decision only
  gavel organize inbox/ --copy          # keep the originals in place`,
		Args: cobra.MinimumNArgs(1),
		RunE: runOrganize,
	}

	cmd.Flags().StringP("base-dir", "b", "", "root of the court directory tree")
	cmd.Flags().Bool("copy", false, "copy instead of move")
	cmd.Flags().Bool("dry-run", false, "print decisions without moving anything")
	cmd.Flags().Float64P("threshold", "t", 0, "minimum confidence required to move a file")

	_ = viper.BindPFlag("organize.base_dir", cmd.Flags().Lookup("base-dir"))
	_ = viper.BindPFlag("organize.copy", cmd.Flags().Lookup("copy"))
	_ = viper.BindPFlag("organize.dry_run", cmd.Flags().Lookup("dry-run"))
	_ = viper.BindPFlag("classify.move_threshold", cmd.Flags().Lookup("threshold"))

	return cmd
}

func runOrganize(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	organizer := organize.New(classifier, organize.Config{
		BaseDir:   config.ExpandPath(viper.GetString("organize.base_dir")),
		Threshold: viper.GetFloat64("classify.move_threshold"),
		Copy:      viper.GetBool("organize.copy"),
		DryRun:    viper.GetBool("organize.dry_run"),
	})

	var failures int
	for _, arg := range args {
		info, statErr := os.Stat(arg)
		if statErr != nil {
			return fmt.Errorf("failed to read %s: %w", arg, statErr)
		}

		var decisions []*organize.Decision
		if info.IsDir() {
			decisions, err = organizer.OrganizeDir(ctx, arg)
			if err != nil {
				return err
			}
		} else {
			decision, organizeErr := organizer.Organize(ctx, arg)
			if organizeErr != nil {
				decision.Err = organizeErr
			}
			decisions = []*organize.Decision{decision}
		}

		for _, decision := range decisions {
			printDecision(decision)
			if decision.Err != nil {
				failures++
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("failed to organize %d document(s)", failures)
	}
	return nil
}

func printDecision(decision *organize.Decision) {
	switch {
	case decision.Err != nil:
		fmt.Fprintf(os.Stdout, "%s %s\n  %s\n",
			cli.ErrorStyle.Render("✗"),
			decision.Source,
			cli.ErrorStyle.Render(decision.Err.Error()))
	case decision.Moved:
		fmt.Fprintf(os.Stdout, "%s %s\n  %s → %s\n",
			cli.SuccessStyle.Render("✓"),
			decision.Source,
			formatClassification(decision.Classification),
			cli.SuccessStyle.Render(decision.Final))
	case decision.Final != decision.Source:
		// Dry run resolved a target without moving.
		fmt.Fprintf(os.Stdout, "%s %s\n  %s → %s\n",
			cli.SubtleStyle.Render("·"),
			decision.Source,
			formatClassification(decision.Classification),
			cli.SubtleStyle.Render(decision.Final+" (dry run)"))
	default:
		fmt.Fprintf(os.Stdout, "%s %s\n  %s %s\n",
			cli.WarningStyle.Render("!"),
			decision.Source,
			formatClassification(decision.Classification),
			cli.WarningStyle.Render("— keeping in place"))
	}
}
