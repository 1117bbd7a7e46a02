package output

import (
	"fmt"
	"io"
	"os"

	"github.com/attest-dev/attest/packages/core/suite"
	"github.com/fatih/color"
)

// TextExporter renders one line per record:
//
//	[PASSED]   0.0042s TestName
//
// The duration column appears only when duration export is enabled, padded
// to a minimum width of eight characters for alignment. The exporter borrows
// its writer and never closes it.
type TextExporter struct {
	w         io.Writer
	durations bool
	style     Style
}

// TextOption configures a TextExporter.
type TextOption func(*TextExporter)

// WithDurations enables the duration column.
func WithDurations(d bool) TextOption {
	return func(e *TextExporter) { e.durations = d }
}

// WithStyle selects the token rendering style.
func WithStyle(s Style) TextOption {
	return func(e *TextExporter) { e.style = s }
}

// NewText returns a TextExporter writing to w.
func NewText(w io.Writer, opts ...TextOption) *TextExporter {
	e := &TextExporter{w: w, style: StyleColor}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewConsole returns a TextExporter bound to standard output.
func NewConsole(opts ...TextOption) *TextExporter {
	return NewText(os.Stdout, opts...)
}

func (e *TextExporter) ExportResults(s *suite.Suite) {
	for _, rec := range s.Records() {
		e.ExportResult(rec)
	}
}

func (e *TextExporter) ExportResult(r *suite.Record) {
	fmt.Fprintf(e.w, "[%s] ", e.token(r.Passed()))
	if e.durations {
		fmt.Fprintf(e.w, "%8gs ", r.Duration.Seconds())
	}
	fmt.Fprintln(e.w, r.Name)
}

func (e *TextExporter) token(passed bool) string {
	if e.style == StylePlain {
		if passed {
			return "passed"
		}
		return "FAILED"
	}
	if passed {
		return color.GreenString("PASSED")
	}
	return color.RedString("FAILED")
}
