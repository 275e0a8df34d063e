package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/gavelworks/gavel/internal/classify"
	"github.com/gavelworks/gavel/internal/cli"
	"github.com/gavelworks/gavel/internal/config"
	"github.com/gavelworks/gavel/internal/model"
	"github.com/gavelworks/gavel/internal/pattern"
)

// newClassifier builds the classification engine from configuration: the
// embedded pattern tables unless patterns.path points at an override file.
func newClassifier() (*classify.Classifier, error) {
	var (
		tables *pattern.Tables
		err    error
	)

	if path := viper.GetString("patterns.path"); path != "" {
		tables, err = pattern.LoadFile(config.ExpandPath(path))
	} else {
		tables, err = pattern.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load pattern tables: %w", err)
	}

	return classify.New(tables,
		classify.WithTieThreshold(viper.GetFloat64("classify.tie_threshold")),
	), nil
}

// formatClassification renders a classification for terminal output.
func formatClassification(result model.Classification) string {
	if result.IsUnknown() {
		return cli.SubtleStyle.Render("unknown")
	}
	return fmt.Sprintf("%s %s",
		cli.BoldStyle.Render(string(result.Category)),
		cli.SubtleStyle.Render(fmt.Sprintf("(%s, confidence %.2f)", result.Category.Jurisdiction(), result.Confidence)))
}
