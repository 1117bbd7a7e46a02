package stress

import (
	"fmt"
	"strings"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// histogram bounds: 1us to 60s, 3 significant digits.
const (
	minLatencyUs = 1
	maxLatencyUs = 60_000_000
)

// Metrics aggregates latency and failure data for a soak run.
type Metrics struct {
	histogram *hdrhistogram.Histogram
	count     int64
	failures  int64
	started   time.Time
	elapsed   time.Duration
}

func newMetrics() *Metrics {
	return &Metrics{
		histogram: hdrhistogram.New(minLatencyUs, maxLatencyUs, 3),
	}
}

func (m *Metrics) record(d time.Duration, failed bool) {
	m.count++
	if failed {
		m.failures++
	}

	us := d.Microseconds()
	if us < minLatencyUs {
		us = minLatencyUs
	}
	if us > maxLatencyUs {
		us = maxLatencyUs
	}
	_ = m.histogram.RecordValue(us)
}

// Count returns the number of executions.
func (m *Metrics) Count() int64 { return m.count }

// Failures returns the number of executions that did not pass.
func (m *Metrics) Failures() int64 { return m.failures }

// Elapsed returns the wall-clock duration of the run.
func (m *Metrics) Elapsed() time.Duration { return m.elapsed }

// Min returns the smallest observed latency.
func (m *Metrics) Min() time.Duration {
	return time.Duration(m.histogram.Min()) * time.Microsecond
}

// Max returns the largest observed latency.
func (m *Metrics) Max() time.Duration {
	return time.Duration(m.histogram.Max()) * time.Microsecond
}

// Mean returns the mean observed latency.
func (m *Metrics) Mean() time.Duration {
	return time.Duration(m.histogram.Mean()) * time.Microsecond
}

// P50 returns the median latency.
func (m *Metrics) P50() time.Duration { return m.percentile(50) }

// P95 returns the 95th percentile latency.
func (m *Metrics) P95() time.Duration { return m.percentile(95) }

// P99 returns the 99th percentile latency.
func (m *Metrics) P99() time.Duration { return m.percentile(99) }

func (m *Metrics) percentile(p float64) time.Duration {
	return time.Duration(m.histogram.ValueAtQuantile(p)) * time.Microsecond
}

// Summary renders a human-readable metrics block.
func (m *Metrics) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "executions: %d (%d failed)\n", m.count, m.failures)
	fmt.Fprintf(&b, "elapsed:    %s\n", m.elapsed.Round(time.Millisecond))
	fmt.Fprintf(&b, "latency:    min=%s mean=%s max=%s\n", m.Min(), m.Mean(), m.Max())
	fmt.Fprintf(&b, "quantiles:  p50=%s p95=%s p99=%s\n", m.P50(), m.P95(), m.P99())
	return b.String()
}
