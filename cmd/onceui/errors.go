package main

import (
	"errors"
	"fmt"

	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func asThemeError(err error) (*onceerrors.ThemeError, bool) {
	var themeErr *onceerrors.ThemeError
	if errors.As(err, &themeErr) {
		return themeErr, true
	}
	return nil, false
}
