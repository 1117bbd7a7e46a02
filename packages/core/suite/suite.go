// Package suite implements the test registration and execution engine.
//
// A Suite owns an ordered collection of registered tests. Run executes them
// sequentially on the calling goroutine, measures wall-clock duration, and
// records an outcome per test. Ownership of the suite stays with the caller:
// exporters in the output package only read the recorded data.
package suite

import (
	"errors"
	"fmt"
	"time"

	"github.com/attest-dev/attest/packages/core/signal"
	"github.com/google/uuid"
)

// Outcome is the recorded result of one test execution.
type Outcome int

const (
	// OutcomePending means the test has not been executed in the current run.
	OutcomePending Outcome = iota
	// OutcomePassed means the test body returned normally or raised a
	// success signal.
	OutcomePassed
	// OutcomeFailed means the test body raised a failure signal.
	OutcomeFailed
	// OutcomeErrored means the test body panicked with something other than
	// a framework signal.
	OutcomeErrored
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeFailed:
		return "failed"
	case OutcomeErrored:
		return "errored"
	default:
		return "pending"
	}
}

// Record holds the stored state for one registered test. Outcome, Err and
// Duration are meaningful only after a Run has completed; re-running the
// suite overwrites them, it never accumulates.
type Record struct {
	Name     string
	Func     func()
	Outcome  Outcome
	Err      error
	Duration time.Duration
}

// Passed reports whether the most recent run marked this record as passed.
func (r *Record) Passed() bool {
	return r.Outcome == OutcomePassed
}

// Suite owns an ordered sequence of test records. Registration order is
// execution and report order: tests may depend on fixture side effects of
// the setup hook or of earlier tests, so the order is never changed.
type Suite struct {
	name    string
	records []*Record
	setup   func()
	cleanup func()
	bail    bool
	runID   string
	started time.Time
}

// Option configures a Suite at construction.
type Option func(*Suite)

// WithSetup installs a hook invoked once per Run, before the first test.
func WithSetup(fn func()) Option {
	return func(s *Suite) {
		s.setup = fn
	}
}

// WithCleanup installs a hook invoked once per Run, after the last test.
// The hook runs even when the setup hook or a test fails.
func WithCleanup(fn func()) Option {
	return func(s *Suite) {
		s.cleanup = fn
	}
}

// WithBail makes Run stop after the first test that does not pass.
// Records not yet executed keep OutcomePending.
func WithBail(bail bool) Option {
	return func(s *Suite) {
		s.bail = bail
	}
}

// New returns an empty suite with the given display name.
func New(name string, opts ...Option) *Suite {
	s := &Suite{name: name}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore builds a suite from previously captured records, for rendering
// results that were produced elsewhere. The records are adopted as-is.
func Restore(name string, records []*Record) *Suite {
	return &Suite{name: name, records: records}
}

// Name returns the suite's display name.
func (s *Suite) Name() string { return s.name }

// RunID returns the identifier stamped by the most recent Run, or the empty
// string before the first run.
func (s *Suite) RunID() string { return s.runID }

// StartedAt returns the start time of the most recent Run.
func (s *Suite) StartedAt() time.Time { return s.started }

// Add appends a test in registration order. Names are not validated and
// duplicates are not rejected.
func (s *Suite) Add(name string, fn func()) {
	s.records = append(s.records, &Record{Name: name, Func: fn})
}

// Records exposes the live record sequence for exporters. Callers must not
// reorder or delete entries.
func (s *Suite) Records() []*Record { return s.records }

// Pass marks the running test as passed and unwinds its body.
func (s *Suite) Pass() { signal.Pass() }

// Fail marks the running test as failed and unwinds its body.
func (s *Suite) Fail() { signal.Fail() }

var errSetup = errors.New("setup failed")

// Run executes every registered test in registration order and returns true
// if any test did not pass. Each execution overwrites the record's outcome
// and duration. A failure signal marks the record failed, a success signal
// or a normal return marks it passed, and any other panic marks it errored
// without aborting the remaining tests.
//
// If the setup hook fails, no test runs and every record is marked errored;
// the cleanup hook runs in every case.
func (s *Suite) Run() bool {
	s.runID = uuid.NewString()
	s.started = time.Now()

	for _, rec := range s.records {
		rec.Outcome = OutcomePending
		rec.Err = nil
		rec.Duration = 0
	}

	defer func() {
		if s.cleanup != nil {
			s.cleanup()
		}
	}()

	if s.setup != nil {
		if out, err := Invoke(s.setup); out != OutcomePassed {
			if err == nil {
				err = errSetup
			} else {
				err = fmt.Errorf("%w: %v", errSetup, err)
			}
			for _, rec := range s.records {
				rec.Outcome = OutcomeErrored
				rec.Err = err
			}
			return true
		}
	}

	failed := false
	for _, rec := range s.records {
		start := time.Now()
		out, err := Invoke(rec.Func)
		rec.Duration = time.Since(start)
		rec.Outcome = out
		rec.Err = err

		if out != OutcomePassed {
			failed = true
			if s.bail {
				break
			}
		}
	}
	return failed
}

// Invoke runs fn once and translates its termination into an outcome.
// Framework signals map to passed/failed; any other panic is captured as an
// error instead of propagating.
func Invoke(fn func()) (out Outcome, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch r.(type) {
		case signal.Failure:
			out = OutcomeFailed
		case signal.Success:
			out = OutcomePassed
		default:
			out = OutcomeErrored
			err = fmt.Errorf("unexpected panic: %v", r)
		}
	}()
	fn()
	return OutcomePassed, nil
}
