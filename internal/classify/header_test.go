package classify

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"

	"github.com/gavelworks/gavel/internal/model"
)

func TestClassifyByHeader(t *testing.T) {
	classifier := newTestClassifier(t)

	tests := []struct {
		name           string
		header         string
		want           model.CourtType
		wantConfidence float64
	}{
		{
			name:           "appellate division department caption",
			header:         "Supreme Court of the State of New York Appellate Division: Second Department",
			want:           model.AppellateDivision,
			wantConfidence: 0.5,
		},
		{
			name:           "court of appeals caption",
			header:         "Court of Appeals of the State of New York\nNo. 24",
			want:           model.CourtOfAppeals,
			wantConfidence: 0.25,
		},
		{
			name:           "supreme court trial caption",
			header:         "Supreme Court, Kings County, State of New York",
			wantConfidence: 0.75,
			want:           model.SupremeCourt,
		},
		{
			name:           "civil court caption",
			header:         "Civil Court of the City of New York, Bronx County",
			want:           model.CivilCourt,
			wantConfidence: 0.5,
		},
		{
			name:           "sdny with reporter citation",
			header:         "United States District Court for the Southern District of New York, S.D.N.Y.",
			want:           model.SDNY,
			wantConfidence: 1.0,
		},
		{
			name:   "federal marker outranks a single state phrase",
			header: "Southern District of New York, Supreme Court of the State of New York",
			want:   model.SDNY,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifier.classifyByHeader(tt.header)
			assert.Equal(t, tt.want, result.Category)
			assert.Equal(t, model.MethodHeader, result.Method)
			if tt.wantConfidence > 0 {
				assert.InDelta(t, tt.wantConfidence, result.Confidence, 1e-9)
			}
		})
	}
}

func TestClassifyByHeader_NoMatch(t *testing.T) {
	classifier := newTestClassifier(t)

	for _, header := range []string{"", "In the matter of an arbitration", "lorem ipsum"} {
		result := classifier.classifyByHeader(header)
		assert.True(t, result.IsUnknown())
		assert.Zero(t, result.Confidence)
	}
}

func TestClassifyByHeader_ConfidenceCapped(t *testing.T) {
	classifier := newTestClassifier(t)

	// Many repeated state matches push the raw score far past the divisor;
	// confidence must stay capped at 1.0.
	header := strings.Repeat("Supreme Court, Kings County, State of New York.\n", 10)
	result := classifier.classifyByHeader(header)
	assert.Equal(t, model.SupremeCourt, result.Category)
	assert.Equal(t, 1.0, result.Confidence)
}

func TestHeaderPrefix(t *testing.T) {
	assert.Equal(t, "", headerPrefix(""))
	assert.Equal(t, "short", headerPrefix("short"))

	long := strings.Repeat("x", headerWindow+500)
	assert.Len(t, headerPrefix(long), headerWindow)
}

func TestClip_RuneBoundary(t *testing.T) {
	// "é" is two bytes and straddles the limit; clip must back up to the
	// rune start rather than keep a dangling continuation byte.
	text := strings.Repeat("a", headerWindow-1) + "é" + strings.Repeat("b", 50)
	prefix := headerPrefix(text)

	assert.True(t, utf8.ValidString(prefix))
	assert.Len(t, prefix, headerWindow-1)

	// A rune ending exactly at the limit is kept whole.
	text = strings.Repeat("a", headerWindow-2) + "é" + strings.Repeat("b", 50)
	prefix = headerPrefix(text)
	assert.True(t, utf8.ValidString(prefix))
	assert.Len(t, prefix, headerWindow)
}
