package output

import (
	"encoding/json"
	"io"

	"github.com/attest-dev/attest/packages/core/suite"
)

// JSONReport is the complete JSON output structure.
type JSONReport struct {
	Suite   string      `json:"suite,omitempty"`
	RunID   string      `json:"runId,omitempty"`
	Summary JSONSummary `json:"summary"`
	Tests   []JSONTest  `json:"tests"`
}

// JSONSummary tallies recorded outcomes.
type JSONSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// JSONTest is a single rendered record.
type JSONTest struct {
	Name     string  `json:"name"`
	Passed   bool    `json:"passed"`
	Duration float64 `json:"duration"`
	Error    string  `json:"error,omitempty"`
}

// JSONExporter accumulates records and writes the report on Close.
type JSONExporter struct {
	w      io.Writer
	report JSONReport
}

// NewJSON returns a JSONExporter writing to w.
func NewJSON(w io.Writer) *JSONExporter {
	return &JSONExporter{w: w, report: JSONReport{Tests: make([]JSONTest, 0)}}
}

func (e *JSONExporter) ExportResults(s *suite.Suite) {
	e.report.Suite = s.Name()
	e.report.RunID = s.RunID()
	for _, rec := range s.Records() {
		e.ExportResult(rec)
	}
}

func (e *JSONExporter) ExportResult(r *suite.Record) {
	t := JSONTest{
		Name:     r.Name,
		Passed:   r.Passed(),
		Duration: r.Duration.Seconds(),
	}
	if r.Err != nil {
		t.Error = r.Err.Error()
	}
	e.report.Tests = append(e.report.Tests, t)

	e.report.Summary.Total++
	if t.Passed {
		e.report.Summary.Passed++
	} else {
		e.report.Summary.Failed++
	}
}

// Close writes the accumulated report.
func (e *JSONExporter) Close() error {
	enc := json.NewEncoder(e.w)
	enc.SetIndent("", "  ")
	return enc.Encode(e.report)
}
