package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/scafftools/render"
)

type renderInput struct {
	Template  string            `json:"template"             jsonschema:"The mustache template text to render"`
	Fields    map[string]string `json:"fields,omitempty"     jsonschema:"Context fields exposed to the template"`
	TargetDir string            `json:"target_dir,omitempty" jsonschema:"Target directory; its final component becomes folderName"`
}

type renderOutput struct {
	Output string `json:"output"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	if input.Template == "" {
		return errResult(fmt.Errorf("template is required")), renderOutput{}, nil
	}

	ctx := render.CreateContext(render.ContextConfig{
		Fields:    stringFields(input.Fields),
		TargetDir: input.TargetDir,
	})

	out, err := render.Render(input.Template, ctx)
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}
	return nil, renderOutput{Output: out}, nil
}

// stringFields widens a JSON string map into the any-valued context map.
func stringFields(in map[string]string) map[string]any {
	if len(in) == 0 {
		return nil
	}
	fields := make(map[string]any, len(in))
	for k, v := range in {
		fields[k] = v
	}
	return fields
}
