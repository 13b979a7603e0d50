package signals

import (
	"regexp"
	"strconv"
	"strings"
)

// experiencePatterns cover explicit experience phrasings. Every pattern
// captures the year count as group 1; the maximum across all matches wins.
var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(?:experience|exp)[:\-]?\s*(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in|of)`),
	regexp.MustCompile(`(\d+)\s*years?\s*(?:of\s*)?(?:experience|exp)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:of\s*)?(?:professional|work)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:in\s*)?(?:software|development|programming)`),
	regexp.MustCompile(`(\d+)\+?\s*years?\s*(?:as\s*)?(?:developer|engineer|programmer)`),
}

// broadYearPatterns catch bare "<N> years" mentions anywhere in the text.
// Only values that look like a plausible career length are accepted.
var broadYearPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d+)\+?\s*years?`),
	regexp.MustCompile(`(\d+)\s*years?`),
}

const (
	minPlausibleYears = 1
	maxPlausibleYears = 50
)

// ExtractExperienceYears returns the maximum year count found across both
// pattern passes, or 0 when nothing matches.
func ExtractExperienceYears(text string) int {
	lower := strings.ToLower(text)

	maxYears := 0
	for _, p := range experiencePatterns {
		for _, m := range p.FindAllStringSubmatch(lower, -1) {
			if years, err := strconv.Atoi(m[1]); err == nil && years > maxYears {
				maxYears = years
			}
		}
	}

	for _, p := range broadYearPatterns {
		for _, m := range p.FindAllStringSubmatch(lower, -1) {
			years, err := strconv.Atoi(m[1])
			if err != nil || years < minPlausibleYears || years > maxPlausibleYears {
				continue
			}
			if years > maxYears {
				maxYears = years
			}
		}
	}

	return maxYears
}
