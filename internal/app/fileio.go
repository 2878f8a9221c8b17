package app

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dshills/vellum/internal/editor"
)

// ReadDocument reads path into a new document. Rows split on newline,
// with a trailing carriage return stripped from each; the final newline
// does not produce an empty trailing row. A missing file yields an
// empty clean document, so opening a new name just starts a new file.
func ReadDocument(path string, tabStop int) (*editor.Document, error) {
	doc := editor.NewDocument()
	doc.SetTabStop(tabStop)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return doc, nil
		}
		return nil, NewOperationError("open", path, err)
	}

	lines := bytes.Split(data, []byte{'\n'})
	if len(data) > 0 && data[len(data)-1] == '\n' {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		doc.InsertRow(i, bytes.TrimSuffix(line, []byte{'\r'}))
	}
	doc.MarkClean()
	return doc, nil
}

// WriteDocument writes the document to path atomically: a uniquely
// named temp file in the same directory, then a rename over the target.
// Returns the number of bytes written.
func WriteDocument(path string, doc *editor.Document) (int, error) {
	data := doc.Contents()

	dir := filepath.Dir(path)
	tmp := filepath.Join(dir, "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return 0, NewOperationError("save", path, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return 0, NewOperationError("save", path, err)
	}
	return len(data), nil
}
