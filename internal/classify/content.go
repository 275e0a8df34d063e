package classify

import (
	"sort"

	"github.com/gavelworks/gavel/internal/model"
)

// Content scoring constants.
const (
	// contentWindow bounds the body text the content scorer inspects.
	contentWindow = 5000

	// bodyMatchWeight and filenameMatchWeight weight evidence per match.
	// Filename evidence weighs more because filenames are less noisy.
	bodyMatchWeight     = 2.0
	filenameMatchWeight = 3.0

	// convergenceRules is the distinct-rule count above which a category's
	// score earns the convergence bonus.
	convergenceRules = 2
	convergenceBonus = 1.5
)

// scoreEntry pairs a category with its content score.
type scoreEntry struct {
	court model.CourtType
	score float64
}

// classifyByContent runs weighted multi-pattern scoring over the merged rule
// tables. It is the most general and most expensive stage, used only when
// citation and header stages are inconclusive.
func (c *Classifier) classifyByContent(text, filename string) model.Classification {
	body := clip(text, contentWindow)

	scores := make(map[model.CourtType]float64)
	for court, rules := range c.union {
		score := 0.0
		matchedRules := 0

		for _, rule := range rules {
			if bodyMatches := rule.Count(body); bodyMatches > 0 {
				score += float64(bodyMatches) * bodyMatchWeight
				matchedRules++
			}
			if nameMatches := rule.Count(filename); nameMatches > 0 {
				score += float64(nameMatches) * filenameMatchWeight
			}
		}

		// Convergent evidence from independent rules beats a single
		// repeated pattern.
		if matchedRules > convergenceRules {
			score *= convergenceBonus
		}

		if score > 0 {
			scores[court] = score
		}
	}

	if len(scores) == 0 {
		return model.UnknownClassification()
	}

	ranked := rank(scores)
	if len(ranked) > 1 && ranked[1].score > ranked[0].score*c.tieThreshold {
		return c.disambiguate(ranked[0], ranked[1], text)
	}

	return model.Classification{
		Category:   ranked[0].court,
		Method:     model.MethodContent,
		Confidence: capConfidence(ranked[0].score / scoreDivisor),
	}
}

// rank orders score entries descending, breaking ties by the fixed
// model.AllCourtTypes order for determinism.
func rank(scores map[model.CourtType]float64) []scoreEntry {
	entries := make([]scoreEntry, 0, len(scores))
	for _, court := range model.AllCourtTypes {
		if score, ok := scores[court]; ok {
			entries = append(entries, scoreEntry{court: court, score: score})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})
	return entries
}
