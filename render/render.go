package render

import "github.com/cbroglie/mustache"

// Render expands templateText against ctx using the host mustache engine.
// Callable context entries are dispatched as lambda sections. Any error
// raised by the engine or by an operation aborts the whole render; there
// is no per-operation fallback or partial result.
func Render(templateText string, ctx map[string]any) (string, error) {
	return mustache.Render(templateText, ctx)
}
