package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/scafftools/scaffold"
)

type scaffoldInput struct {
	TemplateDir      string            `json:"template_dir"                jsonschema:"Directory holding the template tree"`
	TargetDir        string            `json:"target_dir"                  jsonschema:"Directory generated files are written under"`
	ServiceNamespace string            `json:"service_namespace,omitempty" jsonschema:"Dotted service namespace exposed as serviceNamespace"`
	Fields           map[string]string `json:"fields,omitempty"            jsonschema:"Additional context fields"`
	DryRun           bool              `json:"dry_run,omitempty"           jsonschema:"Return the file manifest without writing"`
}

type scaffoldFileInfo struct {
	Path string `json:"path"`
	Size int    `json:"size"`
}

type scaffoldOutput struct {
	TargetDir string             `json:"target_dir"`
	FileCount int                `json:"file_count"`
	Files     []scaffoldFileInfo `json:"files"`
	Skipped   int                `json:"skipped,omitempty"`
	Written   bool               `json:"written"`
}

func handleScaffold(_ context.Context, _ *mcp.CallToolRequest, input scaffoldInput) (*mcp.CallToolResult, scaffoldOutput, error) {
	scaffoldCfg := &scaffold.Config{
		ServiceNamespace: input.ServiceNamespace,
		TemplateDir:      input.TemplateDir,
		TargetDir:        input.TargetDir,
		Fields:           stringFields(input.Fields),
	}
	if err := scaffoldCfg.Validate(); err != nil {
		return errResult(err), scaffoldOutput{}, nil
	}

	result, err := scaffold.New(scaffoldCfg).Generate()
	if err != nil {
		return errResult(err), scaffoldOutput{}, nil
	}
	if len(result.Files) > cfg.MaxFiles {
		return errResult(fmt.Errorf("template tree produced %d files, limit is %d", len(result.Files), cfg.MaxFiles)), scaffoldOutput{}, nil
	}

	write := !input.DryRun && cfg.WriteEnabled
	if write {
		if err := result.WriteFiles(scaffoldCfg.TargetDir); err != nil {
			return errResult(fmt.Errorf("writing generated files: %w", err)), scaffoldOutput{}, nil
		}
	}

	output := scaffoldOutput{
		TargetDir: scaffoldCfg.TargetDir,
		FileCount: len(result.Files),
		Skipped:   result.Skipped,
		Written:   write,
	}
	output.Files = make([]scaffoldFileInfo, 0, len(result.Files))
	for _, f := range result.Files {
		output.Files = append(output.Files, scaffoldFileInfo{Path: f.Path, Size: len(f.Content)})
	}

	return nil, output, nil
}
