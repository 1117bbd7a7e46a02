package stress

import (
	"context"
	"testing"
	"time"

	"github.com/attest-dev/attest/packages/core/signal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_IterationBudget(t *testing.T) {
	calls := 0
	m, err := Run(context.Background(), func() { calls++ }, Options{Iterations: 10})

	require.NoError(t, err)
	assert.Equal(t, 10, calls)
	assert.EqualValues(t, 10, m.Count())
	assert.EqualValues(t, 0, m.Failures())
}

func TestRun_TalliesFailures(t *testing.T) {
	calls := 0
	fn := func() {
		calls++
		if calls%2 == 0 {
			signal.Fail()
		}
	}

	m, err := Run(context.Background(), fn, Options{Iterations: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 10, m.Count())
	assert.EqualValues(t, 5, m.Failures())
}

func TestRun_PanicsCountAsFailures(t *testing.T) {
	m, err := Run(context.Background(), func() { panic("boom") }, Options{Iterations: 3})
	require.NoError(t, err)
	assert.EqualValues(t, 3, m.Failures())
}

func TestRun_DurationBudget(t *testing.T) {
	fn := func() { time.Sleep(time.Millisecond) }
	m, err := Run(context.Background(), fn, Options{Duration: 30 * time.Millisecond})

	require.NoError(t, err)
	assert.Greater(t, m.Count(), int64(0))
	assert.GreaterOrEqual(t, m.Elapsed(), 30*time.Millisecond)
}

func TestRun_RatePacing(t *testing.T) {
	start := time.Now()
	m, err := Run(context.Background(), func() {}, Options{Iterations: 5, Rate: 100})

	require.NoError(t, err)
	assert.EqualValues(t, 5, m.Count())
	// 5 executions at 100/s need at least ~40ms after the initial token.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestRun_NoBudget(t *testing.T) {
	_, err := Run(context.Background(), func() {}, Options{})
	assert.ErrorIs(t, err, ErrNoBudget)
}

func TestRun_ContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m, err := Run(ctx, func() {}, Options{Iterations: 100, Rate: 10})
	assert.Error(t, err)
	assert.EqualValues(t, 0, m.Count())
}

func TestMetrics_Quantiles(t *testing.T) {
	m := newMetrics()
	for i := 1; i <= 100; i++ {
		m.record(time.Duration(i)*time.Millisecond, false)
	}

	assert.InDelta(t, (50 * time.Millisecond).Microseconds(), m.P50().Microseconds(), 2000)
	assert.InDelta(t, (95 * time.Millisecond).Microseconds(), m.P95().Microseconds(), 2000)
	assert.LessOrEqual(t, m.Min(), m.Max())
	assert.Contains(t, m.Summary(), "executions: 100")
}
