package output

import (
	"fmt"
	"io"

	"github.com/attest-dev/attest/packages/core/suite"
)

// TAPExporter renders records in TAP (Test Anything Protocol) version 13
// format. The test plan depends on the final count, so output is buffered
// and written on Close.
type TAPExporter struct {
	w     io.Writer
	count int
	lines []string
}

// NewTAP returns a TAPExporter writing to w.
func NewTAP(w io.Writer) *TAPExporter {
	return &TAPExporter{w: w, lines: make([]string, 0)}
}

func (e *TAPExporter) ExportResults(s *suite.Suite) {
	for _, rec := range s.Records() {
		e.ExportResult(rec)
	}
}

func (e *TAPExporter) ExportResult(r *suite.Record) {
	e.count++
	status := "ok"
	if !r.Passed() {
		status = "not ok"
	}
	line := fmt.Sprintf("%s %d - %s", status, e.count, r.Name)
	e.lines = append(e.lines, line)
	if r.Err != nil {
		e.lines = append(e.lines, fmt.Sprintf("# %s", r.Err))
	}
}

// Close writes the version header, the plan, and the buffered results.
func (e *TAPExporter) Close() error {
	fmt.Fprintf(e.w, "TAP version 13\n1..%d\n", e.count)
	for _, line := range e.lines {
		fmt.Fprintln(e.w, line)
	}
	return nil
}
