// Package hrdata provides the static HR reference document that grounds
// every fallback prompt. The document is loaded once at startup and never
// mutated.
package hrdata

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
)

//go:embed hrdata.json
var defaultDocument []byte

// Document is the HR reference document, held as re-indented JSON text
// ready to inject into prompts.
type Document struct {
	text string
}

// Load reads the reference document from path, or falls back to the
// embedded default when path is empty. The content must be valid JSON.
func Load(path string) (*Document, error) {
	raw := defaultDocument
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read hr data: %w", err)
		}
		raw = data
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, bytes.TrimSpace(raw), "", "  "); err != nil {
		return nil, fmt.Errorf("parse hr data: %w", err)
	}

	return &Document{text: indented.String()}, nil
}

// Text returns the document serialized as indented JSON.
func (d *Document) Text() string {
	return d.text
}
