package errors

import (
	"fmt"
)

// ParseError represents a configuration or props document that could not be decoded.
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

// ThemeError reports a theme mutation that was rejected.
type ThemeError struct {
	Attribute string
	Value     string
	Err       error
}

// NewThemeError constructs a ThemeError for the given attribute and value.
func NewThemeError(attribute, value string, err error) error {
	return &ThemeError{Attribute: attribute, Value: value, Err: err}
}

func (e *ThemeError) Error() string {
	if e == nil {
		return ""
	}
	if e.Attribute == "" {
		return fmt.Sprintf("theme error: %v", e.Err)
	}
	if e.Err == nil {
		return fmt.Sprintf("theme error [%s=%q]", e.Attribute, e.Value)
	}
	return fmt.Sprintf("theme error [%s=%q]: %v", e.Attribute, e.Value, e.Err)
}

// Unwrap exposes the root error.
func (e *ThemeError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
