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

func auditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit <dir>...",
		Short: "Check whether filed opinions sit in the right court directory",
		Long: `Classify every document in the given directories and compare each result
against the directory's own name. The audit is read-only unless --apply is
set, in which case confidently misplaced documents are refiled.

Examples:
  gavel audit database/cases/nys/supreme_court
  gavel audit database/cases/nys/* --apply`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAudit,
	}

	cmd.Flags().Bool("apply", false, "move confidently misplaced documents")
	cmd.Flags().Bool("quiet", false, "suppress per-file output and the progress bar")
	cmd.Flags().StringP("base-dir", "b", "", "root of the court directory tree (used with --apply)")

	_ = viper.BindPFlag("audit.apply", cmd.Flags().Lookup("apply"))
	_ = viper.BindPFlag("audit.quiet", cmd.Flags().Lookup("quiet"))
	_ = viper.BindPFlag("audit.base_dir", cmd.Flags().Lookup("base-dir"))

	return cmd
}

func runAudit(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	apply := viper.GetBool("audit.apply")
	quiet := viper.GetBool("audit.quiet")

	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	baseDir := viper.GetString("audit.base_dir")
	if baseDir == "" {
		baseDir = viper.GetString("organize.base_dir")
	}

	organizer := organize.New(classifier, organize.Config{
		BaseDir:   config.ExpandPath(baseDir),
		Threshold: viper.GetFloat64("classify.move_threshold"),
	})

	total := &organize.Report{}
	for _, dir := range args {
		var opts []organize.AuditOption
		if !quiet {
			opts = append(opts, organize.WithProgress(os.Stderr))
		}

		report, auditErr := organizer.Audit(ctx, dir, opts...)
		if auditErr != nil {
			return auditErr
		}

		if !quiet {
			fmt.Fprintln(os.Stdout, cli.TitleStyle.Render("Audit: "+dir))
			printFindings(report)
		}

		total.Correct = append(total.Correct, report.Correct...)
		total.Incorrect = append(total.Incorrect, report.Incorrect...)
		total.Unknown = append(total.Unknown, report.Unknown...)

		if apply {
			for _, decision := range organizer.Apply(ctx, report) {
				printDecision(decision)
			}
		}
	}

	printSummary(total)
	return nil
}

func printFindings(report *organize.Report) {
	for _, finding := range report.Correct {
		fmt.Fprintf(os.Stdout, "%s %s  %s\n",
			cli.SuccessStyle.Render("✓"), finding.Path,
			formatClassification(finding.Classification))
	}
	for _, finding := range report.Incorrect {
		fmt.Fprintf(os.Stdout, "%s %s  %s %s\n",
			cli.WarningStyle.Render("!"), finding.Path,
			formatClassification(finding.Classification),
			cli.WarningStyle.Render(fmt.Sprintf("— filed under %s", finding.Expected)))
	}
	for _, finding := range report.Unknown {
		fmt.Fprintf(os.Stdout, "%s %s  %s\n",
			cli.SubtleStyle.Render("?"), finding.Path,
			cli.SubtleStyle.Render("unknown"))
	}
}

func printSummary(report *organize.Report) {
	fmt.Fprintln(os.Stdout, cli.TitleStyle.Render("Summary"))
	fmt.Fprintf(os.Stdout, "  %s %d correctly filed\n", cli.SuccessStyle.Render("✓"), len(report.Correct))
	fmt.Fprintf(os.Stdout, "  %s %d potentially misplaced\n", cli.WarningStyle.Render("!"), len(report.Incorrect))
	fmt.Fprintf(os.Stdout, "  %s %d unknown\n", cli.SubtleStyle.Render("?"), len(report.Unknown))
}
