package classify

import (
	"regexp"

	"github.com/gavelworks/gavel/internal/model"
)

// Disambiguation confidence constants.
const (
	confidenceResolved   = 0.95
	confidenceUnresolved = 0.7
)

// Secondary evidence markers for the court pairs that commonly tie under
// content scoring.
var (
	courtOfAppealsMarker = regexp.MustCompile(`(?i)Court of Appeals\s+of\s+(?:the\s+)?State of New York`)
	countyCaptionMarker  = regexp.MustCompile(`(?i)County.*State of New York`)
	departmentOrdinal    = regexp.MustCompile(`(?i)(?:First|Second|Third|Fourth)\s+Department`)
)

// disambiguate resolves a near-tie between the two top-scoring categories
// using targeted secondary evidence. When no special case fires, the higher
// score wins at reduced confidence.
func (c *Classifier) disambiguate(first, second scoreEntry, text string) model.Classification {
	pair := map[model.CourtType]bool{
		first.court:  true,
		second.court: true,
	}

	switch {
	case pair[model.CourtOfAppeals] && pair[model.SupremeCourt]:
		if courtOfAppealsMarker.MatchString(text) {
			return resolved(model.CourtOfAppeals)
		}
		if countyCaptionMarker.MatchString(text) {
			return resolved(model.SupremeCourt)
		}

	case pair[model.AppellateDivision] && pair[model.SupremeCourt]:
		// Only the Appellate Division sits in departments.
		if departmentOrdinal.MatchString(text) {
			return resolved(model.AppellateDivision)
		}
	}

	return model.Classification{
		Category:   first.court,
		Method:     model.MethodDisambiguation,
		Confidence: confidenceUnresolved,
	}
}

func resolved(court model.CourtType) model.Classification {
	return model.Classification{
		Category:   court,
		Method:     model.MethodDisambiguation,
		Confidence: confidenceResolved,
	}
}
