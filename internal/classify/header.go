package classify

import (
	"unicode/utf8"

	"github.com/gavelworks/gavel/internal/model"
)

// headerWindow bounds how much of the document body the header stage and
// citation verification inspect.
const headerWindow = 2000

// Header scoring weights. Federal rules score on presence because they are
// more specific than the state phrases; state rules score per match.
const (
	federalRuleWeight = 10.0
	stateMatchWeight  = 5.0
	scoreDivisor      = 20.0
)

// headerPrefix returns the leading window of body text.
func headerPrefix(text string) string {
	return clip(text, headerWindow)
}

// clip truncates s to at most limit bytes, backing up so a multi-byte rune
// is never split at the boundary.
func clip(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}

// classifyByHeader scores court-identifying phrases within the document
// header and returns the best-scoring category.
func (c *Classifier) classifyByHeader(header string) model.Classification {
	if header == "" {
		return model.UnknownClassification()
	}

	scores := make(map[model.CourtType]float64)

	for court, rules := range c.tables.Federal {
		score := 0.0
		for _, rule := range rules {
			if rule.Match(header) {
				score += federalRuleWeight
			}
		}
		if score > 0 {
			scores[court] = score
		}
	}

	for court, rules := range c.tables.Header {
		score := 0.0
		for _, rule := range rules {
			score += float64(rule.Count(header)) * stateMatchWeight
		}
		if score > 0 {
			scores[court] = score
		}
	}

	if len(scores) == 0 {
		return model.UnknownClassification()
	}

	best, score := maxScore(scores)
	return model.Classification{
		Category:   best,
		Method:     model.MethodHeader,
		Confidence: capConfidence(score / scoreDivisor),
	}
}

// maxScore picks the highest-scoring category. Ties resolve in the fixed
// model.AllCourtTypes order so results are deterministic.
func maxScore(scores map[model.CourtType]float64) (model.CourtType, float64) {
	best := model.Unknown
	bestScore := 0.0
	for _, court := range model.AllCourtTypes {
		if score, ok := scores[court]; ok && score > bestScore {
			best = court
			bestScore = score
		}
	}
	return best, bestScore
}
