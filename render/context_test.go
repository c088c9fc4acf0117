package render

import (
	"testing"

	"github.com/cbroglie/mustache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateContextMergeOrder(t *testing.T) {
	ctx := CreateContext(ContextConfig{
		Statics: map[string]any{
			"license":   "MIT",
			"namespace": "Template.Default",
		},
		Fields: map[string]any{
			"namespace": "Azure.Messaging.EventGrid",
		},
	})

	// Configuration fields shadow template-declared defaults.
	assert.Equal(t, "Azure.Messaging.EventGrid", ctx["namespace"])
	assert.Equal(t, "MIT", ctx["license"])
}

func TestCreateContextFolderName(t *testing.T) {
	t.Run("derived from target dir", func(t *testing.T) {
		ctx := CreateContext(ContextConfig{TargetDir: "sdk/messaging/eventgrid"})
		assert.Equal(t, "eventgrid", ctx["folderName"])
	})

	t.Run("absent without target dir", func(t *testing.T) {
		ctx := CreateContext(ContextConfig{})
		assert.NotContains(t, ctx, "folderName")
	})
}

func TestCreateContextOperations(t *testing.T) {
	ctx := CreateContext(ContextConfig{})

	for name := range operationFactories {
		v, ok := ctx[name]
		require.True(t, ok, "operation %q missing from context", name)
		_, isLambda := v.(mustache.LambdaFunc)
		assert.True(t, isLambda, "operation %q should be a lambda section", name)
	}
}

func TestCreateContextCasingSubMap(t *testing.T) {
	ctx := CreateContext(ContextConfig{})

	casing, ok := ctx[CasingKey].(map[string]any)
	require.True(t, ok, "casing sub-map missing")
	for _, style := range []string{"camel", "pascal", "kebab", "snake"} {
		assert.Contains(t, casing, style)
	}
}
