package matching

// Verdict values for Result.IsMatch.
const (
	VerdictMatch    = "Match"
	VerdictPartial  = "Partial Match"
	VerdictNotMatch = "Not a Match"
)

// Suitability tiers for Result.SuitabilityRating.
const (
	SuitabilityHigh   = "High"
	SuitabilityMedium = "Medium"
	SuitabilityLow    = "Low"
)

// SkillsMatch details required-skill coverage for one analysis. Skill names
// are reported case-folded, the way they were compared.
type SkillsMatch struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage float64  `json:"match_percentage"`
}

// Result is the outcome of matching one résumé against one requisition. It
// is a pure function of the analysis inputs and immutable after creation;
// identifiers and timestamps belong to the layer that stores it.
type Result struct {
	MatchPercentage    float64     `json:"match_percentage"`
	ConfidenceScore    float64     `json:"confidence_score"`
	IsMatch            string      `json:"is_match"`
	SuitabilityRating  string      `json:"suitability_rating"`
	SkillsMatch        SkillsMatch `json:"skills_match"`
	ExperienceMatch    bool        `json:"experience_match"`
	ResumeExperience   int         `json:"resume_experience"`
	RequiredExperience int         `json:"required_experience"`
	GapsAnalysis       string      `json:"gaps_analysis"`
	ResumeSkills       []string    `json:"resume_skills"`
}
