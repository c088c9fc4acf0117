// Package cliutil provides utilities for CLI operations.
package cliutil

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writef writes formatted output to the writer.
// If the write fails, it logs to stderr (useful for debugging).
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// Headerf writes a titled section header followed by an underline of equal
// length, matching the CLI's report style.
func Headerf(w io.Writer, format string, args ...any) {
	title := fmt.Sprintf(format, args...)
	Writef(w, "%s\n%s\n\n", title, strings.Repeat("=", len(title)))
}
