package jsonc

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every error returned from Parse and ParseFile.
var ErrParse = errors.New("malformed asset data")

// ParseError describes an asset that could not be loaded.
type ParseError struct {
	// Path is the file being loaded. Empty when parsing raw bytes.
	Path string
	Err  error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse asset: %v", e.Err)
	}
	return fmt.Sprintf("parse asset %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying read or decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is reports ErrParse as a match.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}
