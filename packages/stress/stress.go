// Package stress provides a soak runner for individual tests: it executes
// one test body repeatedly at a configurable pace and aggregates latency and
// failure metrics. Execution stays strictly sequential on the calling
// goroutine, matching the framework's single-threaded model.
package stress

import (
	"context"
	"errors"
	"time"

	"github.com/attest-dev/attest/packages/core/suite"
	"golang.org/x/time/rate"
)

// Options configures a soak run. At least one of Iterations and Duration
// must be set; when both are set, whichever budget is exhausted first ends
// the run.
type Options struct {
	Iterations int           // maximum executions; 0 means unbounded
	Rate       float64       // target executions per second; 0 means unpaced
	Duration   time.Duration // wall-clock budget; 0 means unbounded
}

// ErrNoBudget reports options with neither an iteration nor a duration
// budget.
var ErrNoBudget = errors.New("stress: either Iterations or Duration must be set")

// Run executes fn repeatedly according to opts and returns the aggregated
// metrics. A failing execution is tallied, never aborts the run. Run returns
// early with the metrics collected so far when ctx is canceled.
func Run(ctx context.Context, fn func(), opts Options) (*Metrics, error) {
	if opts.Iterations <= 0 && opts.Duration <= 0 {
		return nil, ErrNoBudget
	}

	var limiter *rate.Limiter
	if opts.Rate > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.Rate), 1)
	}

	m := newMetrics()
	m.started = time.Now()

	var deadline time.Time
	if opts.Duration > 0 {
		deadline = m.started.Add(opts.Duration)
		var cancel context.CancelFunc
		ctx, cancel = context.WithDeadline(ctx, deadline)
		defer cancel()
	}

	for i := 0; opts.Iterations <= 0 || i < opts.Iterations; i++ {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			break
		}

		if limiter != nil {
			if err := limiter.Wait(ctx); err != nil {
				m.elapsed = time.Since(m.started)
				if !deadline.IsZero() && errors.Is(err, context.DeadlineExceeded) {
					return m, nil
				}
				return m, err
			}
		} else if err := ctx.Err(); err != nil {
			m.elapsed = time.Since(m.started)
			if !deadline.IsZero() && errors.Is(err, context.DeadlineExceeded) {
				return m, nil
			}
			return m, err
		}

		start := time.Now()
		out, _ := suite.Invoke(fn)
		m.record(time.Since(start), out != suite.OutcomePassed)
	}

	m.elapsed = time.Since(m.started)
	return m, nil
}
