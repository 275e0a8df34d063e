// Package model defines the core domain models used throughout the application.
package model

// CourtType identifies the court that issued an opinion. Each document is
// assigned exactly one court type; the values are classification outcomes,
// not a hierarchy.
type CourtType string

// New York state courts.
const (
	CourtOfAppeals    CourtType = "court_of_appeals"
	AppellateDivision CourtType = "appellate_division"
	SupremeCourt      CourtType = "supreme_court"
	CivilCourt        CourtType = "civil_court"
)

// Federal courts sitting in or over New York.
const (
	USSupremeCourt CourtType = "us_supreme_court"
	SecondCircuit  CourtType = "second_circuit"
	SDNY           CourtType = "sdny"
	EDNY           CourtType = "edny"
)

// Unknown is the sentinel for documents the classifier abstains on.
const Unknown CourtType = "unknown"

// Jurisdiction groups court types into the federal and state directory trees.
type Jurisdiction string

// Jurisdiction constants.
const (
	JurisdictionFederal Jurisdiction = "federal"
	JurisdictionNYS     Jurisdiction = "nys"
)

// federalCourts is the set of court types filed under the federal tree.
var federalCourts = map[CourtType]bool{
	USSupremeCourt: true,
	SecondCircuit:  true,
	SDNY:           true,
	EDNY:           true,
}

// AllCourtTypes lists every concrete court type, state courts first.
// The order is stable and used for deterministic iteration.
var AllCourtTypes = []CourtType{
	CourtOfAppeals,
	AppellateDivision,
	SupremeCourt,
	CivilCourt,
	USSupremeCourt,
	SecondCircuit,
	SDNY,
	EDNY,
}

// Jurisdiction returns the directory-tree grouping for the court type.
func (c CourtType) Jurisdiction() Jurisdiction {
	if federalCourts[c] {
		return JurisdictionFederal
	}
	return JurisdictionNYS
}

// Valid reports whether the court type is a known concrete category.
func (c CourtType) Valid() bool {
	for _, t := range AllCourtTypes {
		if c == t {
			return true
		}
	}
	return false
}

func (c CourtType) String() string {
	return string(c)
}
