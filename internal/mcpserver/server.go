// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes scafftools capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/scafftools"
)

const serverInstructions = `scafftools MCP server — renders mustache templates with segment-transformation operations and scaffolds generated source trees.

Configuration: defaults are configurable via SCAFFTOOLS_* environment variables set in your MCP client config.

Key settings:
- SCAFFTOOLS_WRITE_ENABLED (default: true) — allow the scaffold tool to write files; when false every scaffold call behaves as a dry run
- SCAFFTOOLS_MAX_FILES (default: 1000) — refuse template trees producing more files than this

Template operations available in every render: toLowerCase, normalizeVersion, normalizePackageName, normalizeToPath, lastSegment, middleSegments, camelCase, pascalCase, kebabCase, slice, replace, rejoin, plus the casing.* sub-map.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "scafftools", Version: scafftools.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render a mustache template string with the scafftools operation set. Provide fields as a string map; target_dir (optional) derives the folderName field. Useful for previewing the strings a template expression produces before scaffolding a whole tree.",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "scaffold",
		Description: "Scaffold a target directory from a template directory. Renders every file path and .mustache file body, then writes the results under target_dir. Use dry_run=true to preview the generated file manifest without writing. Writing can be disabled globally via SCAFFTOOLS_WRITE_ENABLED=false.",
	}, handleScaffold)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
