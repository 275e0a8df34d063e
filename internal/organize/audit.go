package organize

import (
	"context"
	"io"
	"path/filepath"

	"github.com/schollz/progressbar/v3"

	"github.com/gavelworks/gavel/internal/model"
)

// Finding describes one audited document.
type Finding struct {
	Path           string
	Expected       string
	Classification model.Classification
}

// Report buckets audit findings by whether the classifier agrees with a
// document's current location.
type Report struct {
	// Correct holds documents whose classification matches their directory,
	// or whose confidence is too low to imply any action.
	Correct []Finding

	// Incorrect holds confident mismatches, candidates for relocation.
	Incorrect []Finding

	// Unknown holds documents the classifier abstained on.
	Unknown []Finding
}

// Total returns the number of audited documents.
func (r *Report) Total() int {
	return len(r.Correct) + len(r.Incorrect) + len(r.Unknown)
}

// AuditOption configures an audit run.
type AuditOption func(*auditOptions)

type auditOptions struct {
	progress io.Writer
}

// WithProgress renders a progress bar to w while the audit runs.
func WithProgress(w io.Writer) AuditOption {
	return func(o *auditOptions) {
		o.progress = w
	}
}

// Audit classifies every document directly inside dir and compares each
// result against the directory's own name, used as a proxy for the expected
// classification. Audit is read-only; callers apply moves explicitly via
// Apply.
func (o *Organizer) Audit(ctx context.Context, dir string, opts ...AuditOption) (*Report, error) {
	var options auditOptions
	for _, opt := range opts {
		opt(&options)
	}

	files, err := documentFiles(dir)
	if err != nil {
		return nil, err
	}

	expected := filepath.Base(dir)

	var bar *progressbar.ProgressBar
	if options.progress != nil && len(files) > 0 {
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(options.progress),
			progressbar.OptionSetDescription("Auditing "+expected),
			progressbar.OptionShowCount(),
			progressbar.OptionSetWidth(40),
			progressbar.OptionClearOnFinish(),
		)
	}

	report := &Report{}
	for _, name := range files {
		select {
		case <-ctx.Done():
			return report, ctx.Err()
		default:
		}

		path := filepath.Join(dir, name)
		result := o.classifier.Classify(ctx, path)
		finding := Finding{Path: path, Expected: expected, Classification: result}

		switch {
		case result.IsUnknown():
			report.Unknown = append(report.Unknown, finding)
		case string(result.Category) == expected || !result.Actionable(o.threshold):
			report.Correct = append(report.Correct, finding)
		default:
			report.Incorrect = append(report.Incorrect, finding)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}

	if bar != nil {
		_ = bar.Finish()
	}

	return report, nil
}

// Apply relocates every confidently misplaced document in the report.
func (o *Organizer) Apply(ctx context.Context, report *Report) []*Decision {
	decisions := make([]*Decision, 0, len(report.Incorrect))
	for _, finding := range report.Incorrect {
		decision, err := o.Organize(ctx, finding.Path)
		if err != nil {
			decision.Err = err
		}
		decisions = append(decisions, decision)
	}
	return decisions
}
