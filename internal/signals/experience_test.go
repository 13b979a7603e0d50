package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractExperienceYears_ExplicitPhrasing(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"5+ years of experience in Python", 5},
		{"Experience: 7 years building backend systems", 7},
		{"3 years in software development", 3},
		{"10+ years as developer and team lead", 10},
		{"12 years of professional work", 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractExperienceYears(tt.text), tt.text)
	}
}

func TestExtractExperienceYears_TakesMaximum(t *testing.T) {
	text := "2 years of experience with Go after 8 years of experience with Java"

	assert.Equal(t, 8, ExtractExperienceYears(text))
}

func TestExtractExperienceYears_BroadPatternPlausibilityRange(t *testing.T) {
	// A bare year count is accepted only within a plausible career length.
	assert.Equal(t, 4, ExtractExperienceYears("4 years at Initech"))
	assert.Equal(t, 0, ExtractExperienceYears("founded 100 years ago"))
	assert.Equal(t, 0, ExtractExperienceYears("0 years"))
}

func TestExtractExperienceYears_NoSignal(t *testing.T) {
	assert.Equal(t, 0, ExtractExperienceYears("Seasoned engineer with a passion for delivery"))
	assert.Equal(t, 0, ExtractExperienceYears(""))
}
