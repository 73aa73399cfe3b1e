// Package output serializes export documents to JSON.
package output

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
)

// ToJSON renders a document with two-space indentation and stable field
// order. Non-ASCII characters are emitted literally, not escaped.
func ToJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes a document and writes it as UTF-8, creating parent
// directories as needed.
func WriteFile(path string, v any) error {
	data, err := ToJSON(v)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}
