// Package output provides exporters that render a suite's recorded results
// to an output medium.
//
// Supported formats:
//   - Text: one human-readable line per test, optionally colored
//   - XML: a <test-results> document suitable for archival and re-rendering
//   - JSON: machine-readable report with a summary block
//   - TAP: Test Anything Protocol version 13
//
// Sink and format are composed rather than inherited: formatters write to an
// injected io.Writer, and file-backed variants own their file and expose
// Close. Exporters that tie output to their lifetime (XML root element,
// accumulated JSON/TAP reports) implement Closer; skipping Close leaves
// their output unterminated.
package output
