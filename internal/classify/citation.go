package classify

import (
	"regexp"
	"strings"

	"github.com/gavelworks/gavel/internal/model"
	"github.com/gavelworks/gavel/internal/pattern"
)

// Slip-op citation token shapes.
var (
	// slipOpToken captures a "YYYY NY Slip Op NNNNN" citation with an
	// optional parenthetical qualifier.
	slipOpToken = regexp.MustCompile(`(?i)(\d{4}\s+NY\s+Slip\s+Op\s+\d+(?:\s*\([^)]*\))?)`)

	// unpublishedMark is the (U) marker carried by unpublished trial-level
	// opinions.
	unpublishedMark = regexp.MustCompile(`(?i)\(\s*U\s*\)`)

	// departmentMark is a department qualifier inside the citation token.
	departmentMark = regexp.MustCompile(`(?i)Dep(?:t|artment)`)

	// leadingZeroNumber is a bare five-digit opinion number starting with 0.
	// These numbers are shared between the Appellate Division and the trial
	// courts; the filename alone cannot decide them.
	leadingZeroNumber = regexp.MustCompile(`(?i)^\d{4}\s+NY\s+Slip\s+Op\s+0\d{4}$`)

	// trialNumber is a bare five-digit opinion number not starting with 0.
	trialNumber = regexp.MustCompile(`(?i)^\d{4}\s+NY\s+Slip\s+Op\s+[1-9]\d{4}$`)
)

// extractCitation returns the NY Slip Op citation token from a filename.
func extractCitation(filename string) (string, bool) {
	match := slipOpToken.FindStringSubmatch(filename)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// classifyByCitation classifies a citation token. The second return is false
// when the token is ambiguous and later stages must decide.
func (c *Classifier) classifyByCitation(citation string) (model.CourtType, bool) {
	// Explicit rule tables first, in fixed precedence order.
	for _, court := range pattern.CitationOrder {
		for _, rule := range c.tables.Citation[court] {
			if rule.Match(citation) {
				return court, true
			}
		}
	}

	// Fallback heuristics on the numeric shape of the token.
	switch {
	case unpublishedMark.MatchString(citation):
		return model.SupremeCourt, true
	case departmentMark.MatchString(citation):
		return model.AppellateDivision, true
	}

	trimmed := strings.TrimSpace(citation)
	if leadingZeroNumber.MatchString(trimmed) {
		// Defer, don't guess: content stages resolve these from body text.
		return model.Unknown, false
	}
	if trialNumber.MatchString(trimmed) {
		return model.SupremeCourt, true
	}

	return model.Unknown, false
}

// ambiguousReportedNumber reports whether the filename carries a bare
// leading-zero five-digit slip-op number, the shape the citation stage
// deliberately defers on.
func ambiguousReportedNumber(filename string) bool {
	citation, ok := extractCitation(filename)
	if !ok {
		return false
	}
	return leadingZeroNumber.MatchString(strings.TrimSpace(citation))
}

// verify cross-checks a citation classification against the document header.
func (c *Classifier) verify(court model.CourtType, text string) bool {
	header := headerPrefix(text)
	for _, rule := range c.tables.Verification[court] {
		if rule.Match(header) {
			return true
		}
	}
	return false
}
