package errors

import (
	"errors"
	"fmt"
)

// ErrUnknownToken is matched by every LookupError through errors.Is.
var ErrUnknownToken = errors.New("unknown token")

// LookupError reports a request for a token path that the registry does not declare.
type LookupError struct {
	Path string
	// Scope names the mapping the lookup failed in (for example "colors.agents").
	Scope string
}

// NewLookupError constructs a LookupError for the given path.
func NewLookupError(path, scope string) error {
	return &LookupError{Path: path, Scope: scope}
}

func (e *LookupError) Error() string {
	if e == nil {
		return ""
	}
	if e.Scope != "" {
		return fmt.Sprintf("lookup error: %q is not declared in %s", e.Path, e.Scope)
	}
	return fmt.Sprintf("lookup error: %q is not a declared token", e.Path)
}

// Is lets callers test with errors.Is(err, ErrUnknownToken).
func (e *LookupError) Is(target error) bool {
	return target == ErrUnknownToken
}

// ParseError represents a config parsing failure with optional line metadata.
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

// ValidationError captures token invariant and configuration validation issues.
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

// ExportError represents a failure while rendering or writing a token artifact.
type ExportError struct {
	Format string
	Target string
	Err    error
}

// NewExportError constructs an ExportError for the given format and target path.
func NewExportError(format, target string, err error) error {
	return &ExportError{Format: format, Target: target, Err: err}
}

func (e *ExportError) Error() string {
	if e == nil {
		return ""
	}
	switch {
	case e.Format != "" && e.Target != "":
		return fmt.Sprintf("export error [%s -> %s]: %v", e.Format, e.Target, e.Err)
	case e.Format != "":
		return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
	default:
		return fmt.Sprintf("export error: %v", e.Err)
	}
}

// Unwrap exposes the root error.
func (e *ExportError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
