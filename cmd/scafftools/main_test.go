package main

import "testing"

func TestSuggestCommand(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// Typos within edit distance 2
		{"genrate", "generate"},
		{"generae", "generate"},
		{"generte", "generate"},
		{"rendr", "render"},
		{"rener", "render"},
		{"mpc", "mcp"},
		{"versio", "version"},
		{"verison", "version"},
		{"hep", "help"},

		// Too far - no suggestion (distance > 2)
		{"xyz", ""},
		{"foobar", ""},
		{"generation", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := suggestCommand(tt.input)
			if got != tt.expected {
				t.Errorf("suggestCommand(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFieldFlagsSet(t *testing.T) {
	f := fieldFlags{}
	if err := f.Set("version=1.0-beta-2"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if got := f["version"]; got != "1.0-beta-2" {
		t.Errorf("f[version] = %v, want 1.0-beta-2", got)
	}
	if err := f.Set("no-equals"); err == nil {
		t.Error("Set(no-equals) expected error, got nil")
	}
	if err := f.Set("=value"); err == nil {
		t.Error("Set(=value) expected error, got nil")
	}
}
