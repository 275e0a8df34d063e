package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourtType_Jurisdiction(t *testing.T) {
	tests := []struct {
		name  string
		court CourtType
		want  Jurisdiction
	}{
		{name: "court of appeals is state", court: CourtOfAppeals, want: JurisdictionNYS},
		{name: "appellate division is state", court: AppellateDivision, want: JurisdictionNYS},
		{name: "supreme court is state", court: SupremeCourt, want: JurisdictionNYS},
		{name: "civil court is state", court: CivilCourt, want: JurisdictionNYS},
		{name: "us supreme court is federal", court: USSupremeCourt, want: JurisdictionFederal},
		{name: "second circuit is federal", court: SecondCircuit, want: JurisdictionFederal},
		{name: "sdny is federal", court: SDNY, want: JurisdictionFederal},
		{name: "edny is federal", court: EDNY, want: JurisdictionFederal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.court.Jurisdiction())
		})
	}
}

func TestCourtType_Valid(t *testing.T) {
	for _, court := range AllCourtTypes {
		assert.True(t, court.Valid(), "expected %s to be valid", court)
	}

	assert.False(t, Unknown.Valid(), "unknown is a sentinel, not a category")
	assert.False(t, CourtType("night_court").Valid())
}

func TestClassification_Actionable(t *testing.T) {
	tests := []struct {
		name           string
		classification Classification
		threshold      float64
		want           bool
	}{
		{
			name:           "confident result is actionable",
			classification: Classification{Category: SDNY, Confidence: 0.85},
			threshold:      0.5,
			want:           true,
		},
		{
			name:           "threshold is inclusive",
			classification: Classification{Category: SDNY, Confidence: 0.5},
			threshold:      0.5,
			want:           true,
		},
		{
			name:           "low confidence is not actionable",
			classification: Classification{Category: SDNY, Confidence: 0.49},
			threshold:      0.5,
			want:           false,
		},
		{
			name:           "unknown is never actionable",
			classification: UnknownClassification(),
			threshold:      0.0,
			want:           false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.classification.Actionable(tt.threshold))
		})
	}
}

func TestUnknownClassification(t *testing.T) {
	result := UnknownClassification()
	assert.True(t, result.IsUnknown())
	assert.Zero(t, result.Confidence)
}
