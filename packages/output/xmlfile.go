package output

import (
	"os"

	"github.com/attest-dev/attest/packages/core/suite"
)

// XMLFile renders the XML format to a file it owns, delegating every call
// to an internal XMLExporter bound to that file.
type XMLFile struct {
	f   *os.File
	xml *XMLExporter
}

// NewXMLFile opens path for writing and returns an XML exporter bound to
// it. The document prologue is written immediately. The error wraps ErrSink
// when the file cannot be created.
func NewXMLFile(path string, opts ...XMLOption) (*XMLFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, sinkError(path, err)
	}
	return &XMLFile{f: f, xml: NewXML(f, opts...)}, nil
}

func (e *XMLFile) ExportResults(s *suite.Suite) {
	e.xml.ExportResults(s)
}

func (e *XMLFile) ExportResult(r *suite.Record) {
	e.xml.ExportResult(r)
}

// Close terminates the document and then releases the file, in
// reverse-acquisition order.
func (e *XMLFile) Close() error {
	xmlErr := e.xml.Close()
	if err := e.f.Close(); err != nil {
		return err
	}
	return xmlErr
}
