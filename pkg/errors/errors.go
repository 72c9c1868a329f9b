package errors

import (
	"fmt"
)

// ParseError reports a data or configuration file that could not be decoded.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefinitionError flags an inconsistent entry in one of the static data
// tables: a class mapping, base style, or block definition.
type DefinitionError struct {
	Kind    string
	Key     string
	Message string
	Err     error
}

// NewDefinitionError constructs a DefinitionError for the entry identified by kind and key.
func NewDefinitionError(kind, key, message string, err error) error {
	if message == "" && err != nil {
		message = err.Error()
	}
	return &DefinitionError{Kind: kind, Key: key, Message: message, Err: err}
}

func (e *DefinitionError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("definition error [%s %s]: %s", e.Kind, e.Key, e.Message)
	}
	return fmt.Sprintf("definition error [%s]: %s", e.Kind, e.Message)
}

// Unwrap exposes the underlying error.
func (e *DefinitionError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
