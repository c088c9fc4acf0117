// Package render implements the segment-transformation engine behind
// scafftools templates: a fixed set of text operations exposed to a
// mustache engine as lambda sections, plus the context assembly that wires
// them together with scaffolding configuration fields.
//
// # Lambda Sections
//
// The host engine (github.com/cbroglie/mustache) recognizes callable
// context entries as lambda sections. A lambda receives the literal,
// unexpanded text between its open and close tags together with a
// continuation that performs nested template rendering. Every operation
// here resolves its raw argument through the continuation first and only
// then applies its own transform, so delimiters are never interpreted in
// text that still contains unexpanded tags.
//
//	{{#lastSegment}}{{namespace}}{{/lastSegment}}
//
// renders "SystemEvents" when namespace is
// "Azure.Messaging.EventGrid.SystemEvents".
//
// # Argument Micro-Syntax
//
// Parameterized operations take space-separated positional fields; the
// first n-1 spaces act as field separators and the final field keeps any
// remaining spaces. Slicing operations additionally take a comma-separated
// "start,end" index pair in one field, with Python/JS slice semantics:
// zero-based, end-exclusive, negative indices counting from the end, and
// an empty end meaning "through the last segment".
//
//	{{#slice}}1,-1 . {{namespace}}{{/slice}}
//	{{#replace}}Events Topics {{namespace}}{{/replace}}
//	{{#rejoin}}. / 1,-1 {{namespace}}{{/rejoin}}
//
// A field-count mismatch aborts the render call with a
// *scafferrors.ArgumentCountError naming the expected and actual counts
// and the offending text. Delimiters containing a space cannot be
// expressed in this syntax; that is a documented limitation.
//
// # Context Assembly
//
// CreateContext merges, in order (later sources win): template-defined
// static fields, scaffolding configuration fields, a derived folderName
// (final component of the target directory), the operation set, and a
// nested casing sub-map under the "casing" key. The merge order is a
// contract: configuration fields shadow template-declared defaults.
package render
