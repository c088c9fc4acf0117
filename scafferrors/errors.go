package scafferrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrArgumentCount indicates an operation argument field-count mismatch.
	ErrArgumentCount = errors.New("argument count error")

	// ErrTemplate indicates a template rendering failure.
	ErrTemplate = errors.New("template error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ArgumentCountError reports that a lambda operation's argument text did not
// split into the exact number of space-delimited fields the operation
// requires. The raw text is included because it pinpoints the malformed
// template expression for the template author.
type ArgumentCountError struct {
	// Op is the operation name (e.g. "slice", "rejoin")
	Op string
	// Expected is the number of fields the operation requires
	Expected int
	// Actual is the number of fields the argument text produced
	Actual int
	// Raw is the offending argument text, after nested tag resolution
	Raw string
}

// Error returns a human-readable error message.
func (e *ArgumentCountError) Error() string {
	msg := "argument count error"
	if e.Op != "" {
		msg += " in " + e.Op
	}
	msg += fmt.Sprintf(": expected %d, got %d", e.Expected, e.Actual)
	if e.Raw != "" {
		msg += fmt.Sprintf(" in %q", e.Raw)
	}
	return msg
}

// Unwrap returns nil as ArgumentCountError has no underlying cause.
func (e *ArgumentCountError) Unwrap() error {
	return nil
}

// Is reports whether target matches this error type.
func (e *ArgumentCountError) Is(target error) bool {
	return target == ErrArgumentCount
}

// TemplateError represents a failure to render a template. This covers
// engine-level parse failures and errors raised by lambda operations while
// rendering, including the file the template came from when known.
type TemplateError struct {
	// Name identifies the template (file path or a display name)
	Name string
	// Message describes the rendering failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *TemplateError) Error() string {
	msg := "template error"
	if e.Name != "" {
		msg += " in " + e.Name
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *TemplateError) Is(target error) bool {
	return target == ErrTemplate
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and unreadable
// configuration files.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided. Nil and empty-string
	// values are omitted from the message.
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil && e.Value != "" {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
