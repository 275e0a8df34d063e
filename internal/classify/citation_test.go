package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gavelworks/gavel/internal/model"
	"github.com/gavelworks/gavel/internal/pattern"
)

func newTestClassifier(t *testing.T, opts ...Option) *Classifier {
	t.Helper()
	tables, err := pattern.Load()
	require.NoError(t, err)
	return New(tables, opts...)
}

func TestExtractCitation(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     string
		wantOK   bool
	}{
		{
			name:     "plain citation",
			filename: "Chauca v Abraham (2017 NY Slip Op 08158).pdf",
			want:     "2017 NY Slip Op 08158",
			wantOK:   true,
		},
		{
			name:     "unpublished citation keeps its qualifier",
			filename: "Carbonara v Bank of N.Y. Mellon Corp. (2014 NY Slip Op 51135(U)).pdf",
			want:     "2014 NY Slip Op 51135(U)",
			wantOK:   true,
		},
		{
			name:     "department qualifier",
			filename: "Matter of Doe (2015 NY Slip Op 01234 (2d Dept)).pdf",
			want:     "2015 NY Slip Op 01234 (2d Dept)",
			wantOK:   true,
		},
		{
			name:     "no citation",
			filename: "Brown v Board of Education.pdf",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractCitation(tt.filename)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestClassifyByCitation(t *testing.T) {
	classifier := newTestClassifier(t)

	tests := []struct {
		name        string
		citation    string
		want        model.CourtType
		wantDecided bool
	}{
		{
			name:        "unpublished marker means supreme court",
			citation:    "2014 NY Slip Op 51135(U)",
			want:        model.SupremeCourt,
			wantDecided: true,
		},
		{
			name:        "spaced unpublished marker",
			citation:    "2016 NY Slip Op 50123 ( U )",
			want:        model.SupremeCourt,
			wantDecided: true,
		},
		{
			name:        "department qualifier means appellate division",
			citation:    "2015 NY Slip Op 01234 (2d Dept)",
			want:        model.AppellateDivision,
			wantDecided: true,
		},
		{
			name:        "leading-zero five digits defers",
			citation:    "2020 NY Slip Op 02768",
			wantDecided: false,
		},
		{
			name:        "another leading-zero defers",
			citation:    "2017 NY Slip Op 08158",
			wantDecided: false,
		},
		{
			name:        "nonzero five digits means supreme court",
			citation:    "2019 NY Slip Op 29372",
			want:        model.SupremeCourt,
			wantDecided: true,
		},
		{
			name:        "unrecognized shape defers",
			citation:    "2019 NY Slip Op 123",
			wantDecided: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, decided := classifier.classifyByCitation(tt.citation)
			assert.Equal(t, tt.wantDecided, decided)
			if tt.wantDecided {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestAmbiguousReportedNumber(t *testing.T) {
	assert.True(t, ambiguousReportedNumber("Golston-Green v City of New York (2020 NY Slip Op 02768).pdf"))
	assert.False(t, ambiguousReportedNumber("Coronado v Weill Cornell Med. Coll. (2019 NY Slip Op 29372).pdf"))
	assert.False(t, ambiguousReportedNumber("Carbonara v Bank of N.Y. Mellon Corp. (2014 NY Slip Op 51135(U)).pdf"))
	assert.False(t, ambiguousReportedNumber("Brown v Board of Education.pdf"))
}

func TestVerify(t *testing.T) {
	classifier := newTestClassifier(t)

	tests := []struct {
		name  string
		court model.CourtType
		text  string
		want  bool
	}{
		{
			name:  "supreme court county caption verifies",
			court: model.SupremeCourt,
			text:  "Supreme Court, Kings County",
			want:  true,
		},
		{
			name:  "trial term verifies supreme court",
			court: model.SupremeCourt,
			text:  "At a Trial Term of the court",
			want:  true,
		},
		{
			name:  "department ordinal verifies appellate division",
			court: model.AppellateDivision,
			text:  "Second Department, decided May 12",
			want:  true,
		},
		{
			name:  "albany seat verifies court of appeals",
			court: model.CourtOfAppeals,
			text:  "Decided at Albany, New York",
			want:  true,
		},
		{
			name:  "unrelated text does not verify",
			court: model.SupremeCourt,
			text:  "United States District Court",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.verify(tt.court, tt.text))
		})
	}
}
