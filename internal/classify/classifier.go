// Package classify implements the multi-stage court classification engine.
//
// Classification runs citation, header, and content stages in order, taking
// the first sufficiently definite answer. The engine is pure: it holds only
// immutable compiled rule tables and performs no I/O beyond the pluggable
// text extractor, so a single Classifier is safe for concurrent use.
package classify

import (
	"context"
	"path/filepath"

	"github.com/gavelworks/gavel/internal/common"
	"github.com/gavelworks/gavel/internal/config"
	"github.com/gavelworks/gavel/internal/extract"
	"github.com/gavelworks/gavel/internal/model"
	"github.com/gavelworks/gavel/internal/pattern"
)

// Stage confidence constants. These are heuristic ranking scores, not
// calibrated probabilities.
const (
	// confidenceVerified applies when a citation classification is confirmed
	// by body text.
	confidenceVerified = 0.95

	// confidenceCitationOnly applies when a citation classification cannot be
	// cross-checked against body text.
	confidenceCitationOnly = 0.85

	// confidenceConvention applies to the reported-number convention fallback.
	confidenceConvention = 0.6
)

// ExtractFunc produces a bounded text sample for a document path. It must
// never fail; unreadable documents yield an empty string.
type ExtractFunc func(path string) string

// Classifier decides which court issued a document.
type Classifier struct {
	tables       *pattern.Tables
	union        pattern.Table
	extract      ExtractFunc
	tieThreshold float64
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithExtractor replaces the default file-based text extractor.
func WithExtractor(fn ExtractFunc) Option {
	return func(c *Classifier) {
		c.extract = fn
	}
}

// WithTieThreshold sets the near-tie ratio that triggers disambiguation
// during content scoring.
func WithTieThreshold(threshold float64) Option {
	return func(c *Classifier) {
		if threshold > 0 {
			c.tieThreshold = threshold
		}
	}
}

// New creates a classifier over the given rule tables.
func New(tables *pattern.Tables, opts ...Option) *Classifier {
	c := &Classifier{
		tables:       tables,
		union:        tables.Union(),
		extract:      extract.Extract,
		tieThreshold: config.DefaultTieThreshold,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify determines the issuing court for the document at path, acquiring
// a text sample from the file itself.
func (c *Classifier) Classify(ctx context.Context, path string) model.Classification {
	return c.ClassifyText(ctx, path, c.extract(path))
}

// ClassifyText classifies using a pre-extracted text sample. An empty text
// means extraction failed or was skipped; the filename is still consulted.
func (c *Classifier) ClassifyText(_ context.Context, path, text string) model.Classification {
	filename := filepath.Base(path)

	// Stage 1: the slip-op citation in the filename is the most reliable
	// single signal.
	if citation, ok := extractCitation(filename); ok {
		if court, decided := c.classifyByCitation(citation); decided {
			confidence := confidenceCitationOnly
			if text != "" && c.verify(court, text) {
				confidence = confidenceVerified
			}
			common.LogDebug("Classified by citation", common.Fields{"file": filename, "court": court, "confidence": confidence})
			return model.Classification{Category: court, Method: model.MethodCitation, Confidence: confidence}
		}
	}

	// Stage 2: high-signal phrases in the document header.
	if result := c.classifyByHeader(headerPrefix(text)); !result.IsUnknown() {
		common.LogDebug("Classified by header", common.Fields{"file": filename, "court": result.Category, "confidence": result.Confidence})
		return result
	}

	// Stage 3: weighted scoring over the full sample.
	if text != "" {
		if result := c.classifyByContent(text, filename); !result.IsUnknown() {
			common.LogDebug("Classified by content", common.Fields{"file": filename, "court": result.Category, "confidence": result.Confidence})
			return result
		}
	}

	// Last resort: a bare leading-zero five-digit slip-op number with no
	// textual evidence files as Appellate Division. Officially reported
	// low-numbered opinions are overwhelmingly appellate releases.
	if ambiguousReportedNumber(filename) {
		common.LogDebug("Classified by reported-number convention", common.Fields{"file": filename})
		return model.Classification{
			Category:   model.AppellateDivision,
			Method:     model.MethodConvention,
			Confidence: confidenceConvention,
		}
	}

	return model.UnknownClassification()
}

// capConfidence clamps a score-derived confidence to 1.0.
func capConfidence(confidence float64) float64 {
	if confidence > 1.0 {
		return 1.0
	}
	return confidence
}
