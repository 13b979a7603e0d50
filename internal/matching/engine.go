// Package matching combines skill coverage, experience sufficiency and
// textual similarity into a single match verdict.
package matching

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/talentops/screener/internal/signals"
	"github.com/talentops/screener/internal/similarity"
)

// Component weights. Skill coverage and the experience gate are cheap,
// verifiable signals and outweigh the noisier semantic score.
const (
	skillWeight      = 0.4
	experienceWeight = 0.3
	similarityWeight = 0.3
)

// Classification thresholds on the overall percentage.
const (
	matchThreshold   = 80.0
	partialThreshold = 60.0
)

// Engine produces match results for (résumé, requisition) pairs. It holds
// no mutable cross-call state and is safe for concurrent use.
type Engine struct {
	scorer *similarity.Scorer
}

// NewEngine builds an engine around a similarity scorer. A nil scorer means
// fallback-only similarity.
func NewEngine(scorer *similarity.Scorer) *Engine {
	if scorer == nil {
		scorer = similarity.NewScorer(nil, nil)
	}
	return &Engine{scorer: scorer}
}

// Analyze scores resumeText against a requisition's description, required
// skills and required experience. It always returns a result: scoring
// degradation is absorbed, never propagated.
func (e *Engine) Analyze(ctx context.Context, resumeText, jobDescription string, requiredSkills []string, requiredExperience int) *Result {
	resumeSkills := signals.ExtractSkills(resumeText)
	resumeExperience := signals.ExtractExperienceYears(resumeText)

	matched, missing := matchSkills(requiredSkills, resumeSkills)
	skillPct := 0.0
	if len(requiredSkills) > 0 {
		skillPct = float64(len(matched)) / float64(len(requiredSkills)) * 100
	}

	experienceMatch := resumeExperience >= requiredExperience
	experienceScore := 0.0
	if experienceMatch {
		experienceScore = 100
	}

	sim := e.scorer.Score(ctx, resumeText, jobDescription)

	overall := skillPct*skillWeight + experienceScore*experienceWeight + sim*100*similarityWeight
	verdict, tier := classify(overall)

	return &Result{
		MatchPercentage:   round2(overall),
		ConfidenceScore:   round2(sim * 100),
		IsMatch:           verdict,
		SuitabilityRating: tier,
		SkillsMatch: SkillsMatch{
			MatchedSkills:   matched,
			MissingSkills:   missing,
			MatchPercentage: round2(skillPct),
		},
		ExperienceMatch:    experienceMatch,
		ResumeExperience:   resumeExperience,
		RequiredExperience: requiredExperience,
		GapsAnalysis:       gapsAnalysis(missing, experienceMatch, requiredExperience, resumeExperience),
		ResumeSkills:       resumeSkills,
	}
}

// matchSkills marks a required skill as covered when it and any observed
// skill contain one another case-insensitively. The bidirectional substring
// check tolerates phrasing variance ("Node" vs "Node.js") at the cost of
// false positives on very short tokens.
func matchSkills(required, observed []string) (matched, missing []string) {
	matched = make([]string, 0, len(required))
	missing = make([]string, 0)

	observedLower := make([]string, len(observed))
	for i, s := range observed {
		observedLower[i] = strings.ToLower(s)
	}

	for _, skill := range required {
		skillLower := strings.ToLower(skill)
		found := false
		for _, obs := range observedLower {
			if strings.Contains(obs, skillLower) || strings.Contains(skillLower, obs) {
				found = true
				break
			}
		}
		if found {
			matched = append(matched, skillLower)
		} else {
			missing = append(missing, skillLower)
		}
	}
	return matched, missing
}

func classify(overall float64) (verdict, tier string) {
	switch {
	case overall >= matchThreshold:
		return VerdictMatch, SuitabilityHigh
	case overall >= partialThreshold:
		return VerdictPartial, SuitabilityMedium
	default:
		return VerdictNotMatch, SuitabilityLow
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func gapsAnalysis(missing []string, experienceMatch bool, requiredYears, resumeYears int) string {
	var gaps []string

	if len(missing) > 0 {
		gaps = append(gaps, fmt.Sprintf("Missing required skills: %s", strings.Join(missing, ", ")))
	}
	if !experienceMatch {
		gaps = append(gaps, fmt.Sprintf("Experience gap: Resume shows %d years, but %d+ years required", resumeYears, requiredYears))
	}
	if len(gaps) == 0 {
		return "No significant gaps identified. Candidate meets all requirements."
	}
	return "Gaps identified: " + strings.Join(gaps, "; ")
}
