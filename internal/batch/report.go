package batch

import "github.com/talentops/screener/internal/matching"

// Report summarizes one batch run for the caller that stores or renders it.
type Report struct {
	Requisition string    `json:"requisition"`
	Total       int       `json:"total"`
	Screened    int       `json:"screened"`
	Failed      int       `json:"failed"`
	Matched     int       `json:"matched"`
	Outcomes    []Outcome `json:"outcomes"`
}

// NewReport tallies outcomes into a report.
func NewReport(title string, outcomes []Outcome) Report {
	report := Report{
		Requisition: title,
		Total:       len(outcomes),
		Outcomes:    outcomes,
	}
	for _, out := range outcomes {
		if out.Result == nil {
			report.Failed++
			continue
		}
		report.Screened++
		if out.Result.IsMatch == matching.VerdictMatch {
			report.Matched++
		}
	}
	return report
}
