package output

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/attest-dev/attest/packages/core/suite"
)

// XMLExporter renders records as an XML document:
//
//	<?xml version="1.0" encoding="utf-8"?>
//	<test-results>
//	  <test-case>
//	    <test result="passed" duration="0.25" name="demo"/>
//	  </test-case>
//	</test-results>
//
// The document prologue and the root-open tag are written when the exporter
// is constructed; Close writes the root-close tag. The writer is borrowed.
type XMLExporter struct {
	w         io.Writer
	durations bool
}

// XMLOption configures an XMLExporter.
type XMLOption func(*XMLExporter)

// XMLWithDurations enables the duration attribute on test elements.
func XMLWithDurations(d bool) XMLOption {
	return func(e *XMLExporter) { e.durations = d }
}

// NewXML returns an XMLExporter writing to w and immediately emits the
// document prologue and root-open tag.
func NewXML(w io.Writer, opts ...XMLOption) *XMLExporter {
	e := &XMLExporter{w: w}
	for _, opt := range opts {
		opt(e)
	}
	fmt.Fprint(w, "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n<test-results>\n")
	return e
}

// ExportResults brackets the suite's records in a test-case element.
func (e *XMLExporter) ExportResults(s *suite.Suite) {
	fmt.Fprint(e.w, "\t<test-case>\n")
	for _, rec := range s.Records() {
		e.ExportResult(rec)
	}
	fmt.Fprint(e.w, "\t</test-case>\n")
}

func (e *XMLExporter) ExportResult(r *suite.Record) {
	result := "failed"
	if r.Passed() {
		result = "passed"
	}
	fmt.Fprintf(e.w, "\t\t<test result=\"%s\"", result)
	if e.durations {
		fmt.Fprintf(e.w, " duration=\"%s\"", strconv.FormatFloat(r.Duration.Seconds(), 'g', -1, 64))
	}
	fmt.Fprintf(e.w, " name=\"%s\"/>\n", xmlEscape(r.Name))
}

// Close terminates the document with the root-close tag.
func (e *XMLExporter) Close() error {
	_, err := fmt.Fprint(e.w, "</test-results>\n")
	return err
}

func xmlEscape(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
