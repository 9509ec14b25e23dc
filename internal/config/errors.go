package config

import (
	"errors"
	"fmt"
)

// Errors returned by configuration operations.
var (
	// ErrMissingVersion indicates a config document without the
	// required version field.
	ErrMissingVersion = errors.New("config document missing required field: version")

	// ErrInvalidVersion indicates a version string that does not parse
	// as v<major>.<minor>.<bugfix>.
	ErrInvalidVersion = errors.New("invalid config version")

	// ErrModeNotFound indicates a mode name that resolves to neither a
	// builtin nor a custom mode.
	ErrModeNotFound = errors.New("mode not found")
)

// ParseError represents a failure to parse a configuration document.
type ParseError struct {
	// Path is the document path (or "<reader>") that failed to parse.
	Path string
	// Message describes the parse error.
	Message string
	// Err is the underlying error, if any.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
