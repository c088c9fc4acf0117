package render

import (
	"path/filepath"

	"github.com/cbroglie/mustache"

	"github.com/erraggy/scafftools/internal/naming"
)

// CasingKey is the fixed context key holding the nested casing sub-map.
const CasingKey = "casing"

// ContextConfig carries the inputs merged into one rendering context.
type ContextConfig struct {
	// Statics are template-defined static fields (from the template
	// manifest). Lowest precedence.
	Statics map[string]any

	// Fields are scaffolding configuration fields. They shadow Statics
	// on key collision.
	Fields map[string]any

	// TargetDir, when set, derives the folderName field from its final
	// path component.
	TargetDir string
}

// CreateContext builds the lookup structure passed to a render call. It
// merges, in order (later sources override earlier ones): template static
// fields, configuration fields, the derived folderName, the operation set,
// and the casing sub-map under CasingKey. The context is built fresh per
// scaffolding invocation and holds no state across renders.
func CreateContext(cfg ContextConfig) map[string]any {
	ctx := make(map[string]any, len(cfg.Statics)+len(cfg.Fields)+len(operationFactories)+2)

	for k, v := range cfg.Statics {
		ctx[k] = v
	}
	for k, v := range cfg.Fields {
		ctx[k] = v
	}
	if cfg.TargetDir != "" {
		ctx["folderName"] = filepath.Base(cfg.TargetDir)
	}

	for name, op := range Operations() {
		ctx[name] = lambda(op)
	}
	ctx[CasingKey] = casingContext()

	return ctx
}

// casingContext builds the nested casing sub-map. These mirror the
// top-level casing operations under shorter names for use in file-name
// templates: {{#casing.camel}}...{{/casing.camel}}.
func casingContext() map[string]any {
	return map[string]any{
		"camel":  lambda(transform(naming.ToCamelCase)),
		"pascal": lambda(transform(naming.ToPascalCase)),
		"kebab":  lambda(transform(naming.ToKebabCase)),
		"snake":  lambda(transform(naming.ToSnakeCase)),
	}
}

// lambda adapts an Operation to the host engine's lambda-section type so
// the renderer dispatches it with the raw section body and continuation.
func lambda(op Operation) mustache.LambdaFunc {
	return func(text string, render mustache.RenderFunc) (string, error) {
		return op(text, RenderFunc(render))
	}
}
