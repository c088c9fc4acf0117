package naming

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// titleCaser capitalizes the first letter of a lowercased word using
// Unicode-correct title mapping (e.g. "über" -> "Über").
var titleCaser = cases.Title(language.Und, cases.NoLower)

// isSeparator reports whether r acts as an explicit word separator.
func isSeparator(r rune) bool {
	switch r {
	case '_', '-', '.', '/', ' ':
		return true
	}
	return false
}

// splitWords breaks s into words on separator runes and on case
// boundaries. A run of uppercase letters is kept together as one word
// until an uppercase letter is followed by a lowercase one, so
// "HTTPClient" yields ["HTTP", "Client"].
func splitWords(s string) []string {
	var words []string
	var current strings.Builder
	runes := []rune(s)

	flush := func() {
		if current.Len() > 0 {
			words = append(words, current.String())
			current.Reset()
		}
	}

	for i, r := range runes {
		switch {
		case isSeparator(r):
			flush()
		case unicode.IsUpper(r):
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && current.Len() > 0) {
				flush()
			}
			current.WriteRune(r)
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return words
}

// capitalize lowercases word and uppercases its first letter.
func capitalize(word string) string {
	return titleCaser.String(strings.ToLower(word))
}

// ToPascalCase converts a string to PascalCase.
// Example: "user_profile" -> "UserProfile"
// Example: "Azure.Messaging.EventGrid" -> "AzureMessagingEventGrid"
func ToPascalCase(s string) string {
	var result strings.Builder
	for _, w := range splitWords(s) {
		result.WriteString(capitalize(w))
	}
	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first word fully lowercased.
// Example: "SystemEvents" -> "systemEvents"
func ToCamelCase(s string) string {
	var result strings.Builder
	for i, w := range splitWords(s) {
		if i == 0 {
			result.WriteString(strings.ToLower(w))
			continue
		}
		result.WriteString(capitalize(w))
	}
	return result.String()
}

// ToKebabCase converts a string to kebab-case.
// Example: "SystemEvents" -> "system-events"
// Example: "Azure.Messaging.EventGrid" -> "azure-messaging-event-grid"
func ToKebabCase(s string) string {
	return joinLower(splitWords(s), "-")
}

// ToSnakeCase converts a string to snake_case.
// Example: "SystemEvents" -> "system_events"
func ToSnakeCase(s string) string {
	return joinLower(splitWords(s), "_")
}

func joinLower(words []string, sep string) string {
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return strings.Join(words, sep)
}
