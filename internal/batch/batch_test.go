package batch

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentops/screener/internal/extraction"
	"github.com/talentops/screener/internal/matching"
	"github.com/talentops/screener/internal/requisition"
)

func testRunner(workers int) *Runner {
	return NewRunner(extraction.New(nil), matching.NewEngine(nil), nil, workers, time.Second)
}

func testRequisition() *requisition.Requisition {
	return &requisition.Requisition{
		Title:           "Backend Engineer",
		Description:     "python services with django on aws",
		Skills:          []string{"Python", "Django"},
		ExperienceYears: 3,
	}
}

func TestRun_PreservesInputOrder(t *testing.T) {
	files := []File{
		{Name: "alice.txt", Content: []byte("Alice, 5 years of experience with Python and Django")},
		{Name: "bob.txt", Content: []byte("Bob, 2 years of experience with PHP")},
		{Name: "carol.txt", Content: []byte("Carol, 7 years of experience with Python, Django and AWS")},
	}

	outcomes := testRunner(2).Run(context.Background(), testRequisition(), files)

	require.Len(t, outcomes, 3)
	assert.Equal(t, "alice.txt", outcomes[0].Filename)
	assert.Equal(t, "bob.txt", outcomes[1].Filename)
	assert.Equal(t, "carol.txt", outcomes[2].Filename)
	for _, out := range outcomes {
		require.NotNil(t, out.Result, out.Filename)
		assert.NotEmpty(t, out.AnalysisID, out.Filename)
		assert.Empty(t, out.Error, out.Filename)
	}
}

func TestRun_FailedExtractionDoesNotAbortBatch(t *testing.T) {
	files := []File{
		{Name: "good.txt", Content: []byte("5 years of experience with Python and Django")},
		{Name: "spreadsheet.xlsx", Content: []byte("not a resume")},
		{Name: "empty.pdf", Content: nil},
	}

	outcomes := testRunner(3).Run(context.Background(), testRequisition(), files)

	require.Len(t, outcomes, 3)

	assert.NotNil(t, outcomes[0].Result)
	assert.Empty(t, outcomes[0].Error)

	assert.Nil(t, outcomes[1].Result)
	assert.Contains(t, outcomes[1].Error, "unsupported file format")

	assert.Nil(t, outcomes[2].Result)
	assert.Contains(t, outcomes[2].Error, "empty")
}

func TestRun_UniqueAnalysisIDs(t *testing.T) {
	files := []File{
		{Name: "a.txt", Content: []byte("python developer")},
		{Name: "b.txt", Content: []byte("python developer")},
	}

	outcomes := testRunner(1).Run(context.Background(), testRequisition(), files)

	require.Len(t, outcomes, 2)
	assert.NotEqual(t, outcomes[0].AnalysisID, outcomes[1].AnalysisID)
}

func TestRun_IndependentOfWorkerCount(t *testing.T) {
	files := []File{
		{Name: "a.txt", Content: []byte("5 years of experience with Python and Django")},
		{Name: "b.txt", Content: []byte("1 year of experience with Ruby")},
	}

	serial := testRunner(1).Run(context.Background(), testRequisition(), files)
	parallel := testRunner(8).Run(context.Background(), testRequisition(), files)

	require.Len(t, serial, 2)
	require.Len(t, parallel, 2)
	for i := range serial {
		assert.Equal(t, serial[i].Result, parallel[i].Result, serial[i].Filename)
	}
}

func TestNewReport_Tallies(t *testing.T) {
	outcomes := []Outcome{
		{Filename: "a.txt", Result: &matching.Result{IsMatch: matching.VerdictMatch}},
		{Filename: "b.txt", Result: &matching.Result{IsMatch: matching.VerdictNotMatch}},
		{Filename: "c.xlsx", Error: "unsupported file format"},
	}

	report := NewReport("Backend Engineer", outcomes)

	assert.Equal(t, "Backend Engineer", report.Requisition)
	assert.Equal(t, 3, report.Total)
	assert.Equal(t, 2, report.Screened)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Matched)
}
