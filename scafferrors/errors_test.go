package scafferrors

import (
	"errors"
	"testing"
)

func TestArgumentCountError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ArgumentCountError{
			Op:       "slice",
			Expected: 3,
			Actual:   2,
			Raw:      "1,2 Azure.Core",
		}

		msg := err.Error()
		if msg != `argument count error in slice: expected 3, got 2 in "1,2 Azure.Core"` {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &ArgumentCountError{Expected: 4, Actual: 1}
		if err.Error() != "argument count error: expected 4, got 1" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("matches ErrArgumentCount", func(t *testing.T) {
		var err error = &ArgumentCountError{Op: "rejoin", Expected: 4, Actual: 3}
		if !errors.Is(err, ErrArgumentCount) {
			t.Error("should match ErrArgumentCount")
		}
		if errors.Is(err, ErrTemplate) {
			t.Error("should not match ErrTemplate")
		}
	})

	t.Run("errors.As extracts fields", func(t *testing.T) {
		var err error = &ArgumentCountError{Op: "replace", Expected: 3, Actual: 2, Raw: "a b"}
		var argErr *ArgumentCountError
		if !errors.As(err, &argErr) {
			t.Fatal("errors.As should succeed")
		}
		if argErr.Expected != 3 || argErr.Actual != 2 {
			t.Errorf("unexpected counts: expected=%d actual=%d", argErr.Expected, argErr.Actual)
		}
	})
}

func TestTemplateError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("underlying error")
		err := &TemplateError{
			Name:    "src/{{packageName}}/client.go.mustache",
			Message: "rendering failed",
			Cause:   cause,
		}

		msg := err.Error()
		if msg != "template error in src/{{packageName}}/client.go.mustache: rendering failed: underlying error" {
			t.Errorf("unexpected error message: %s", msg)
		}
	})

	t.Run("Error message with minimal fields", func(t *testing.T) {
		err := &TemplateError{}
		if err.Error() != "template error" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("underlying")
		err := &TemplateError{Cause: cause}
		//nolint:errorlint // testing pointer identity
		if unwrapped := err.Unwrap(); unwrapped != cause {
			t.Error("Unwrap should return cause")
		}
	})

	t.Run("matches ErrTemplate", func(t *testing.T) {
		var err error = &TemplateError{Name: "x"}
		if !errors.Is(err, ErrTemplate) {
			t.Error("should match ErrTemplate")
		}
	})

	t.Run("wrapped ArgumentCountError stays visible", func(t *testing.T) {
		inner := &ArgumentCountError{Op: "slice", Expected: 3, Actual: 2}
		var err error = &TemplateError{Name: "x", Cause: inner}
		if !errors.Is(err, ErrArgumentCount) {
			t.Error("wrapped argument count error should match ErrArgumentCount")
		}
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := &ConfigError{
			Option:  "templateDir",
			Value:   "",
			Message: "directory is required",
		}
		if err.Error() != "configuration error for templateDir: directory is required" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("Error message with value", func(t *testing.T) {
		err := &ConfigError{Option: "targetDir", Value: 42, Message: "must be a string"}
		if err.Error() != "configuration error for targetDir (value: 42): must be a string" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("empty string value is omitted", func(t *testing.T) {
		err := &ConfigError{Option: "targetDir", Value: "", Message: "target directory is required"}
		if err.Error() != "configuration error for targetDir: target directory is required" {
			t.Errorf("unexpected error message: %s", err.Error())
		}
	})

	t.Run("matches ErrConfig", func(t *testing.T) {
		var err error = &ConfigError{Option: "x"}
		if !errors.Is(err, ErrConfig) {
			t.Error("should match ErrConfig")
		}
	})
}
