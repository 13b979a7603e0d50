// Package signals derives candidate skills and years of experience from
// résumé text. Absence of signal is a valid result, never an error.
package signals

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// skillVocabulary holds whole-word patterns for common technology terms,
// grouped by area so the catalogue can grow without touching the matcher.
var skillVocabulary = []struct {
	area    string
	pattern *regexp.Regexp
}{
	{"web", regexp.MustCompile(`(?i)\b(?:JavaScript|JS|React|Angular|Vue|Node\.?js|Express|jQuery)\b`)},
	{"languages", regexp.MustCompile(`(?i)\b(?:Python|Java|C\+\+|C#|PHP|Ruby|Go|Rust|Swift|Kotlin)\b`)},
	{"markup", regexp.MustCompile(`(?i)\b(?:HTML|CSS|SASS|SCSS|Bootstrap|Tailwind)\b`)},
	{"databases", regexp.MustCompile(`(?i)\b(?:SQL|MySQL|PostgreSQL|MongoDB|Redis|Elasticsearch)\b`)},
	{"cloud", regexp.MustCompile(`(?i)\b(?:AWS|Azure|GCP|Docker|Kubernetes|Jenkins|Git|GitHub|GitLab)\b`)},
	{"frameworks", regexp.MustCompile(`(?i)\b(?:MERN|MEAN|LAMP|Django|Flask|Spring|Laravel|Rails)\b`)},
	{"data", regexp.MustCompile(`(?i)\b(?:Machine Learning|ML|AI|Data Science|Analytics|Big Data)\b`)},
	{"process", regexp.MustCompile(`(?i)\b(?:Agile|Scrum|DevOps|CI/CD|Microservices|REST|API)\b`)},
	{"platforms", regexp.MustCompile(`(?i)\b(?:Linux|Unix|Windows|macOS|iOS|Android)\b`)},
	{"design", regexp.MustCompile(`(?i)\b(?:Photoshop|Illustrator|Figma|Sketch|Adobe|Design)\b`)},
}

var (
	// skillHeading matches lines like "Skills: Python, Django" and captures
	// the remainder of the line.
	skillHeading = regexp.MustCompile(`(?:skills?|technologies?|tools?|languages?)[:\-]?\s*([^.\n]+)`)

	// skillSeparator splits a heading remainder into individual candidates.
	skillSeparator = regexp.MustCompile(`[,;|•\-\n]`)
)

// Candidates from skill headings are kept only at plausible lengths.
const (
	minSkillLen = 3
	maxSkillLen = 49
)

// ExtractSkills returns the union of catalogue matches and heading-derived
// candidates. Uniqueness is by exact string; display case is preserved for
// catalogue hits and title-cased for heading candidates.
func ExtractSkills(text string) []string {
	seen := make(map[string]struct{})
	var skills []string
	add := func(s string) {
		s = strings.TrimSpace(s)
		if s == "" {
			return
		}
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		skills = append(skills, s)
	}

	for _, entry := range skillVocabulary {
		for _, m := range entry.pattern.FindAllString(text, -1) {
			add(m)
		}
	}

	titleCaser := cases.Title(language.English)
	lower := strings.ToLower(text)
	for _, m := range skillHeading.FindAllStringSubmatch(lower, -1) {
		for _, candidate := range skillSeparator.Split(m[1], -1) {
			candidate = strings.TrimSpace(candidate)
			if len(candidate) < minSkillLen || len(candidate) > maxSkillLen {
				continue
			}
			add(titleCaser.String(candidate))
		}
	}

	return skills
}
