package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gavelworks/gavel/internal/cli"
)

func classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <file>...",
		Short: "Identify the issuing court for opinion files",
		Long: `Identify the issuing court for one or more opinion files.

Classification uses the filename's NY Slip Op citation first, then
high-signal header phrases, then weighted full-text scoring. Nothing is
moved; see "gavel organize" for that.

Examples:
  gavel classify "Carbonara v Bank of N.Y. Mellon Corp. (2014 NY Slip Op 51135(U)).pdf"
  gavel classify inbox/*.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: runClassify,
	}
}

func runClassify(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	classifier, err := newClassifier()
	if err != nil {
		return err
	}

	for _, path := range args {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		result := classifier.Classify(ctx, path)
		fmt.Fprintf(os.Stdout, "%s\n  %s\n",
			cli.BoldStyle.Render(path),
			formatClassification(result))
	}

	return nil
}
