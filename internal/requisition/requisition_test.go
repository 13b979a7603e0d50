package requisition

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRequisition(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "requisition.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeRequisition(t, `{
		"title": "Senior Backend Engineer",
		"description": "Python services on AWS",
		"skills": ["Python", "Django", "AWS"],
		"experience_years": 5,
		"location": "Remote"
	}`)

	req, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "Senior Backend Engineer", req.Title)
	assert.Equal(t, 5, req.ExperienceYears)
	assert.Equal(t, []string{"Python", "Django", "AWS"}, req.SkillList())
}

func TestLoad_MissingTitle(t *testing.T) {
	path := writeRequisition(t, `{"skills": ["Go"], "experience_years": 2}`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "invalid requisition")
}

func TestLoad_NoSkills(t *testing.T) {
	path := writeRequisition(t, `{"title": "Engineer", "experience_years": 2}`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "invalid requisition")
}

func TestLoad_NegativeExperience(t *testing.T) {
	path := writeRequisition(t, `{"title": "Engineer", "skills": ["Go"], "experience_years": -1}`)

	_, err := Load(path)

	assert.ErrorContains(t, err, "invalid requisition")
}

func TestLoad_MalformedJSON(t *testing.T) {
	path := writeRequisition(t, `{"title": `)

	_, err := Load(path)

	assert.ErrorContains(t, err, "failed to parse requisition JSON")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	assert.ErrorContains(t, err, "failed to read requisition file")
}

func TestSkillList_SplitsCommaSeparatedEntries(t *testing.T) {
	req := &Requisition{Skills: []string{"Python, Django", " AWS ", "", " , "}}

	assert.Equal(t, []string{"Python", "Django", "AWS"}, req.SkillList())
}
