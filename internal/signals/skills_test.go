package signals

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractSkills_CatalogueMatches(t *testing.T) {
	text := "Built services in Python and Go, deployed on AWS with Docker and Kubernetes."

	skills := ExtractSkills(text)

	assert.Contains(t, skills, "Python")
	assert.Contains(t, skills, "Go")
	assert.Contains(t, skills, "AWS")
	assert.Contains(t, skills, "Docker")
	assert.Contains(t, skills, "Kubernetes")
}

func TestExtractSkills_CaseInsensitiveCataloguePreservesDisplayCase(t *testing.T) {
	skills := ExtractSkills("experienced with PYTHON and django")

	assert.Contains(t, skills, "PYTHON")
	assert.Contains(t, skills, "django")
}

func TestExtractSkills_HeadingLineCandidates(t *testing.T) {
	text := "Profile\nSkills: terraform, ansible; grafana | prometheus\nEducation"

	skills := ExtractSkills(text)

	assert.Contains(t, skills, "Terraform")
	assert.Contains(t, skills, "Ansible")
	assert.Contains(t, skills, "Grafana")
	assert.Contains(t, skills, "Prometheus")
}

func TestExtractSkills_HeadingCandidateLengthBounds(t *testing.T) {
	// "r" is below the minimum candidate length and must be dropped;
	// an over-long fragment is dropped too.
	long := "this candidate fragment is far too long to be a believable skill name"
	skills := ExtractSkills("Skills: r, sql, " + long)

	assert.NotContains(t, skills, "R")
	assert.Contains(t, skills, "Sql")
	for _, s := range skills {
		assert.LessOrEqual(t, len(s), 49)
	}
}

func TestExtractSkills_NoDuplicates(t *testing.T) {
	skills := ExtractSkills("Python Python Python\nSkills: python-go")

	seen := make(map[string]int)
	for _, s := range skills {
		seen[s]++
	}
	for s, n := range seen {
		assert.Equal(t, 1, n, s)
	}
}

func TestExtractSkills_NoSignal(t *testing.T) {
	assert.Empty(t, ExtractSkills("A short note about gardening and birdwatching."))
}
