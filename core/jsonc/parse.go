package jsonc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Parse strips comments from data and decodes the remaining JSON object.
func Parse(data []byte) (Document, error) {
	clean := StripComments(string(data))

	dec := json.NewDecoder(bytes.NewReader([]byte(clean)))

	var root any
	if err := dec.Decode(&root); err != nil {
		return nil, &ParseError{Err: err}
	}
	// Trailing garbage after the root value is malformed too.
	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, &ParseError{Err: errors.New("unexpected data after root value")}
	}

	doc, ok := root.(map[string]any)
	if !ok {
		return nil, &ParseError{Err: fmt.Errorf("root is %T, want object", root)}
	}
	return Document(doc), nil
}

// ParseFile reads and parses the asset at path.
func ParseFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	doc, err := Parse(data)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}
