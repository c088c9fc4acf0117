package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToPascalCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single uppercase letter", input: "A", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		// Separators
		{name: "snake_case", input: "user_profile", want: "UserProfile"},
		{name: "kebab-case", input: "event-grid-client", want: "EventGridClient"},
		{name: "dotted namespace", input: "Azure.Messaging.EventGrid", want: "AzureMessagingEventGrid"},
		{name: "slash separator", input: "sdk/eventgrid", want: "SdkEventgrid"},
		{name: "consecutive separators", input: "a__b", want: "AB"},

		// Case boundaries
		{name: "already PascalCase", input: "SystemEvents", want: "SystemEvents"},
		{name: "camelCase input", input: "systemEvents", want: "SystemEvents"},
		{name: "acronym run", input: "HTTPClient", want: "HttpClient"},
		{name: "all caps", input: "API", want: "Api"},

		// Unicode
		{name: "unicode word", input: "über_user", want: "ÜberUser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToPascalCase(tt.input)
			assert.Equal(t, tt.want, got, "ToPascalCase(%q)", tt.input)
		})
	}
}

func TestToCamelCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "single word", input: "Events", want: "events"},
		{name: "snake_case", input: "user_profile", want: "userProfile"},
		{name: "PascalCase input", input: "SystemEvents", want: "systemEvents"},
		{name: "dotted namespace", input: "Messaging.EventGrid", want: "messagingEventGrid"},
		{name: "acronym first word", input: "APIClient", want: "apiClient"},
		{name: "already camelCase", input: "systemEvents", want: "systemEvents"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToCamelCase(tt.input)
			assert.Equal(t, tt.want, got, "ToCamelCase(%q)", tt.input)
		})
	}
}

func TestToKebabCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "PascalCase", input: "SystemEvents", want: "system-events"},
		{name: "camelCase", input: "systemEvents", want: "system-events"},
		{name: "snake_case", input: "user_profile", want: "user-profile"},
		{name: "dotted namespace", input: "Azure.Messaging.EventGrid", want: "azure-messaging-event-grid"},
		{name: "acronym run", input: "HTTPClient", want: "http-client"},
		{name: "already kebab-case", input: "event-grid", want: "event-grid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToKebabCase(tt.input)
			assert.Equal(t, tt.want, got, "ToKebabCase(%q)", tt.input)
		})
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty string", input: "", want: ""},
		{name: "PascalCase", input: "SystemEvents", want: "system_events"},
		{name: "kebab-case", input: "event-grid", want: "event_grid"},
		{name: "dotted namespace", input: "Azure.Core", want: "azure_core"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToSnakeCase(tt.input)
			assert.Equal(t, tt.want, got, "ToSnakeCase(%q)", tt.input)
		})
	}
}

func TestSplitWords(t *testing.T) {
	t.Run("acronym followed by word", func(t *testing.T) {
		assert.Equal(t, []string{"HTTP", "Client"}, splitWords("HTTPClient"))
	})
	t.Run("only separators", func(t *testing.T) {
		assert.Empty(t, splitWords("._-/"))
	})
	t.Run("digits stay attached", func(t *testing.T) {
		assert.Equal(t, []string{"api", "V2"}, splitWords("apiV2"))
	})
}
