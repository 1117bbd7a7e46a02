package output

import (
	"errors"
	"fmt"

	"github.com/attest-dev/attest/packages/core/suite"
)

// Exporter renders a suite's records in a specific format.
type Exporter interface {
	// ExportResults renders every record of the suite in registration order.
	ExportResults(s *suite.Suite)
	// ExportResult renders a single record.
	ExportResult(r *suite.Record)
}

// Closer is implemented by exporters that own their sink or buffer output
// until the end of their lifetime.
type Closer interface {
	Close() error
}

// Style selects how pass/fail tokens are rendered.
type Style int

const (
	// StyleColor renders uppercase tokens with ANSI escape sequences.
	StyleColor Style = iota
	// StylePlain renders bare tokens for targets without ANSI support.
	StylePlain
)

// ErrSink reports that a file-backed exporter could not open its target.
var ErrSink = errors.New("output sink unavailable")

func sinkError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrSink, path, err)
}
