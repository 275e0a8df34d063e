package model

// ClassificationMethod indicates which pipeline stage produced a result.
type ClassificationMethod string

// Classification method constants.
const (
	MethodNone           ClassificationMethod = "NONE"
	MethodCitation       ClassificationMethod = "CITATION"
	MethodHeader         ClassificationMethod = "HEADER"
	MethodContent        ClassificationMethod = "CONTENT"
	MethodDisambiguation ClassificationMethod = "DISAMBIGUATION"
	MethodConvention     ClassificationMethod = "CONVENTION"
)

// Classification is the outcome of classifying one document.
//
// Confidence is a heuristic ranking score in [0.0, 1.0], not a calibrated
// probability. Invariant: Category == Unknown iff Confidence == 0.0.
type Classification struct {
	Category   CourtType
	Method     ClassificationMethod
	Confidence float64
}

// IsUnknown reports whether the classifier abstained.
func (c Classification) IsUnknown() bool {
	return c.Category == Unknown
}

// Actionable reports whether the result is confident enough to justify
// relocating the document, given the caller's move threshold.
func (c Classification) Actionable(threshold float64) bool {
	return !c.IsUnknown() && c.Confidence >= threshold
}

// UnknownClassification is the result for documents with no matching evidence.
func UnknownClassification() Classification {
	return Classification{Category: Unknown, Method: MethodNone, Confidence: 0.0}
}
