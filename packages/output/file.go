package output

import "os"

// TextFile renders the text format to a file it owns.
type TextFile struct {
	*TextExporter
	f *os.File
}

// NewTextFile opens path for writing and returns a text exporter bound to
// it. The error wraps ErrSink when the file cannot be created.
func NewTextFile(path string, opts ...TextOption) (*TextFile, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, sinkError(path, err)
	}
	return &TextFile{TextExporter: NewText(f, opts...), f: f}, nil
}

// Close releases the underlying file.
func (e *TextFile) Close() error {
	return e.f.Close()
}
