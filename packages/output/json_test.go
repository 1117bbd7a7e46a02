package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/attest-dev/attest/packages/core/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONExporter(t *testing.T) {
	s := suite.Restore("demo", []*suite.Record{
		{Name: "ok", Outcome: suite.OutcomePassed, Duration: 250 * time.Millisecond},
		{Name: "bad", Outcome: suite.OutcomeErrored, Err: errors.New("kaput")},
	})

	var buf bytes.Buffer
	e := NewJSON(&buf)
	e.ExportResults(s)
	require.NoError(t, e.Close())

	var report JSONReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "demo", report.Suite)
	assert.Equal(t, 2, report.Summary.Total)
	assert.Equal(t, 1, report.Summary.Passed)
	assert.Equal(t, 1, report.Summary.Failed)

	require.Len(t, report.Tests, 2)
	assert.Equal(t, "ok", report.Tests[0].Name)
	assert.True(t, report.Tests[0].Passed)
	assert.Equal(t, 0.25, report.Tests[0].Duration)
	assert.Equal(t, "bad", report.Tests[1].Name)
	assert.False(t, report.Tests[1].Passed)
	assert.Equal(t, "kaput", report.Tests[1].Error)
}

func TestTAPExporter(t *testing.T) {
	s := suite.Restore("demo", []*suite.Record{
		{Name: "T1", Outcome: suite.OutcomePassed},
		{Name: "T2", Outcome: suite.OutcomeFailed},
		{Name: "T3", Outcome: suite.OutcomePassed},
	})

	var buf bytes.Buffer
	e := NewTAP(&buf)
	e.ExportResults(s)
	require.NoError(t, e.Close())

	want := "TAP version 13\n1..3\nok 1 - T1\nnot ok 2 - T2\nok 3 - T3\n"
	assert.Equal(t, want, buf.String())
}

func TestTAPExporter_ErrorDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	e := NewTAP(&buf)
	e.ExportResult(&suite.Record{Name: "boom", Outcome: suite.OutcomeErrored, Err: errors.New("kaput")})
	require.NoError(t, e.Close())

	assert.Contains(t, buf.String(), "not ok 1 - boom\n# kaput\n")
}
