package render

import (
	"strings"

	"github.com/erraggy/scafftools/internal/naming"
)

// RenderFunc resolves nested template expressions in raw lambda-section
// text. It is the continuation the host engine hands to each operation.
type RenderFunc func(text string) (string, error)

// Operation is a single text-transform lambda. It receives the literal,
// unexpanded section body plus the render continuation and returns the
// string spliced into the output. Operations are pure and stateless; they
// are safe to invoke any number of times, in any order, concurrently.
type Operation func(text string, render RenderFunc) (string, error)

// operationFactories maps operation names to factories producing the
// operation function. The factory indirection matches the calling
// convention the host renderer expects; the functions themselves are
// constructed once and never hold state.
var operationFactories = map[string]func() Operation{
	"toLowerCase":          func() Operation { return transform(strings.ToLower) },
	"normalizeVersion":     func() Operation { return transform(normalizeVersion) },
	"normalizePackageName": func() Operation { return transform(normalizePackageName) },
	"normalizeToPath":      func() Operation { return transform(normalizeToPath) },
	"lastSegment":          func() Operation { return transform(lastSegment) },
	"middleSegments":       func() Operation { return transform(middleSegments) },
	"camelCase":            func() Operation { return transform(naming.ToCamelCase) },
	"pascalCase":           func() Operation { return transform(naming.ToPascalCase) },
	"kebabCase":            func() Operation { return transform(naming.ToKebabCase) },
	"slice":                func() Operation { return sliceOp },
	"replace":              func() Operation { return replaceOp },
	"rejoin":               func() Operation { return rejoinOp },
}

// Operations returns the full operation set keyed by name. The map is
// rebuilt per call so callers may attach it to a context without sharing.
func Operations() map[string]Operation {
	ops := make(map[string]Operation, len(operationFactories))
	for name, factory := range operationFactories {
		ops[name] = factory()
	}
	return ops
}

// transform lifts a pure string function into an Operation. The raw
// section body is resolved through the continuation before the function
// runs, so the transform only ever sees fully rendered text.
func transform(fn func(string) string) Operation {
	return func(text string, render RenderFunc) (string, error) {
		resolved, err := render(text)
		if err != nil {
			return "", err
		}
		return fn(resolved), nil
	}
}

// normalizeVersion replaces every "-" with "_", turning a semver-style
// string into an identifier-safe version suffix.
func normalizeVersion(s string) string {
	return strings.ReplaceAll(s, "-", "_")
}

// normalizePackageName replaces every "." with "-" and lower-cases the
// result: "Azure.Messaging.EventGrid" -> "azure-messaging-eventgrid".
func normalizePackageName(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, ".", "-"))
}

// normalizeToPath replaces every "." with "/", turning a dotted namespace
// into a directory path.
func normalizeToPath(s string) string {
	return strings.ReplaceAll(s, ".", "/")
}

// lastSegment returns the substring after the final ".", or the whole
// string when no "." is present.
func lastSegment(s string) string {
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}

// middleSegments drops the first and last dot-delimited segment and
// rejoins the remainder with ".". Fewer than three segments yield the
// empty string.
func middleSegments(s string) string {
	segs := strings.Split(s, ".")
	if len(segs) < 3 {
		return ""
	}
	return strings.Join(segs[1:len(segs)-1], ".")
}

// sliceOp implements the slice operation. Argument: "<start>,<end>
// <delimiter> <text>".
func sliceOp(text string, render RenderFunc) (string, error) {
	resolved, err := render(text)
	if err != nil {
		return "", err
	}
	fields, err := parseFields("slice", resolved, 3)
	if err != nil {
		return "", err
	}
	span, err := parseSpan(fields[0])
	if err != nil {
		return "", err
	}
	return SliceSegments(fields[2], fields[1], span), nil
}

// replaceOp implements the replace operation. Argument: "<search>
// <replacement> <text>". Only the first occurrence is replaced.
func replaceOp(text string, render RenderFunc) (string, error) {
	resolved, err := render(text)
	if err != nil {
		return "", err
	}
	fields, err := parseFields("replace", resolved, 3)
	if err != nil {
		return "", err
	}
	return strings.Replace(fields[2], fields[0], fields[1], 1), nil
}

// rejoinOp implements the rejoin operation. Argument: "<oldDelimiter>
// <newDelimiter> <start>,<end> <text>". Delimiters containing a space
// cannot be expressed in the space-delimited argument syntax.
func rejoinOp(text string, render RenderFunc) (string, error) {
	resolved, err := render(text)
	if err != nil {
		return "", err
	}
	fields, err := parseFields("rejoin", resolved, 4)
	if err != nil {
		return "", err
	}
	span, err := parseSpan(fields[2])
	if err != nil {
		return "", err
	}
	return RejoinSegments(fields[3], fields[0], fields[1], span), nil
}
