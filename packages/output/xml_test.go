package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/attest-dev/attest/packages/core/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXMLExporter_SinglePassedTest(t *testing.T) {
	s := suite.Restore("demo", []*suite.Record{
		{Name: "demo", Outcome: suite.OutcomePassed, Duration: 250 * time.Millisecond},
	})

	var buf bytes.Buffer
	e := NewXML(&buf, XMLWithDurations(true))
	e.ExportResults(s)
	require.NoError(t, e.Close())

	want := "<?xml version=\"1.0\" encoding=\"utf-8\"?>\n" +
		"<test-results>\n" +
		"\t<test-case>\n" +
		"\t\t<test result=\"passed\" duration=\"0.25\" name=\"demo\"/>\n" +
		"\t</test-case>\n" +
		"</test-results>\n"
	assert.Equal(t, want, buf.String())
}

func TestXMLExporter_WithoutDurations(t *testing.T) {
	s := suite.Restore("demo", []*suite.Record{
		{Name: "a", Outcome: suite.OutcomeFailed},
	})

	var buf bytes.Buffer
	e := NewXML(&buf)
	e.ExportResults(s)
	require.NoError(t, e.Close())

	assert.Contains(t, buf.String(), "<test result=\"failed\" name=\"a\"/>")
	assert.NotContains(t, buf.String(), "duration=")
}

func TestXMLExporter_EscapesNames(t *testing.T) {
	s := suite.Restore("demo", []*suite.Record{
		{Name: `a < b & "c"`, Outcome: suite.OutcomePassed},
	})

	var buf bytes.Buffer
	e := NewXML(&buf)
	e.ExportResults(s)
	require.NoError(t, e.Close())

	assert.Contains(t, buf.String(), "name=\"a &lt; b &amp; &#34;c&#34;\"")
}

func TestXMLExporter_MultipleCases(t *testing.T) {
	first := suite.Restore("first", []*suite.Record{
		{Name: "one", Outcome: suite.OutcomePassed},
	})
	second := suite.Restore("second", []*suite.Record{
		{Name: "two", Outcome: suite.OutcomeFailed},
	})

	var buf bytes.Buffer
	e := NewXML(&buf)
	e.ExportResults(first)
	e.ExportResults(second)
	require.NoError(t, e.Close())

	// One root element, one test-case bracket per suite.
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("<test-results>")))
	assert.Equal(t, 2, bytes.Count(buf.Bytes(), []byte("<test-case>")))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("</test-results>")))
}

func TestXMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.xml")
	e, err := NewXMLFile(path, XMLWithDurations(true))
	require.NoError(t, err)

	e.ExportResults(suite.Restore("demo", []*suite.Record{
		{Name: "demo", Outcome: suite.OutcomePassed, Duration: 250 * time.Millisecond},
	}))
	require.NoError(t, e.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<test result=\"passed\" duration=\"0.25\" name=\"demo\"/>")
	assert.True(t, bytes.HasSuffix(data, []byte("</test-results>\n")))
}

func TestXMLFile_UnwritablePath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "results.xml")
	_, err := NewXMLFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSink)
}
