package mcpserver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRender(t *testing.T) {
	t.Run("renders operations over fields", func(t *testing.T) {
		result, output, err := handleRender(context.Background(), nil, renderInput{
			Template: "{{#normalizeToPath}}{{namespace}}{{/normalizeToPath}}",
			Fields:   map[string]string{"namespace": "Azure.Messaging.EventGrid"},
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.Equal(t, "Azure/Messaging/EventGrid", output.Output)
	})

	t.Run("target_dir derives folderName", func(t *testing.T) {
		result, output, err := handleRender(context.Background(), nil, renderInput{
			Template:  "{{folderName}}",
			TargetDir: "sdk/eventgrid",
		})
		require.NoError(t, err)
		require.Nil(t, result)
		assert.Equal(t, "eventgrid", output.Output)
	})

	t.Run("missing template is a tool error", func(t *testing.T) {
		result, _, err := handleRender(context.Background(), nil, renderInput{})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})

	t.Run("argument count mismatch surfaces message", func(t *testing.T) {
		result, _, err := handleRender(context.Background(), nil, renderInput{
			Template: "{{#slice}}1,2 {{namespace}}{{/slice}}",
			Fields:   map[string]string{"namespace": "Azure.Core"},
		})
		require.NoError(t, err)
		require.NotNil(t, result)
		assert.True(t, result.IsError)
	})
}
