package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/erraggy/scafftools"
	"github.com/erraggy/scafftools/internal/cliutil"
	"github.com/erraggy/scafftools/internal/mcpserver"
	"github.com/erraggy/scafftools/render"
	"github.com/erraggy/scafftools/scaffold"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("scafftools v%s\n", scafftools.Version())
	case "help", "-h", "--help":
		printUsage()
	case "generate":
		if err := handleGenerate(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "render":
		if err := handleRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean: %s?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

var commandNames = []string{"generate", "render", "mcp", "version", "help"}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best := ""
	bestDist := 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best = name
			bestDist = d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

// fieldFlags collects repeated -f key=value pairs into a context field map.
type fieldFlags map[string]any

func (f fieldFlags) String() string {
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, fmt.Sprintf("%s=%v", k, v))
	}
	return strings.Join(pairs, ",")
}

func (f fieldFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("field must have the form key=value, got %q", value)
	}
	f[key] = val
	return nil
}

// generateFlags contains flags for the generate command
type generateFlags struct {
	config  string
	dryRun  bool
	verbose bool
}

func setupGenerateFlags() (*flag.FlagSet, *generateFlags) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	flags := &generateFlags{}

	fs.StringVar(&flags.config, "c", "scaffold.yaml", "scaffolding configuration file")
	fs.StringVar(&flags.config, "config", "scaffold.yaml", "scaffolding configuration file")
	fs.BoolVar(&flags.dryRun, "dry-run", false, "list the files that would be generated without writing them")
	fs.BoolVar(&flags.verbose, "verbose", false, "enable per-file debug logging")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: scafftools generate [flags]\n\n")
		_, _ = fmt.Fprintf(output, "Scaffold a target directory from a template directory.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  scafftools generate -c scaffold.yaml\n")
		_, _ = fmt.Fprintf(output, "  scafftools generate -c scaffold.yaml --dry-run\n")
	}

	return fs, flags
}

func handleGenerate(args []string) error {
	fs, flags := setupGenerateFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if flags.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg, err := scaffold.LoadConfig(flags.config)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	result, err := scaffold.New(cfg).Generate()
	if err != nil {
		return fmt.Errorf("generating files: %w", err)
	}

	cliutil.Headerf(os.Stdout, "scafftools Scaffolder")
	cliutil.Writef(os.Stdout, "scafftools version: %s\n", scafftools.Version())
	cliutil.Writef(os.Stdout, "Template: %s\n", cfg.TemplateDir)
	cliutil.Writef(os.Stdout, "Target: %s\n", cfg.TargetDir)
	cliutil.Writef(os.Stdout, "Files: %d\n", len(result.Files))
	if result.Skipped > 0 {
		cliutil.Writef(os.Stdout, "Skipped: %d\n", result.Skipped)
	}
	cliutil.Writef(os.Stdout, "\n")

	for _, file := range result.Files {
		cliutil.Writef(os.Stdout, "  %s (%d bytes)\n", file.Path, len(file.Content))
	}

	if flags.dryRun {
		cliutil.Writef(os.Stdout, "\nDry run: no files written.\n")
		return nil
	}

	if err := result.WriteFiles(cfg.TargetDir); err != nil {
		return fmt.Errorf("writing files: %w", err)
	}

	cliutil.Writef(os.Stdout, "\n✓ Scaffolding completed successfully!\n")
	return nil
}

// renderFlags contains flags for the render command
type renderFlags struct {
	fields    fieldFlags
	namespace string
	targetDir string
}

func setupRenderFlags() (*flag.FlagSet, *renderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &renderFlags{fields: fieldFlags{}}

	fs.Var(flags.fields, "f", "context field as key=value (repeatable)")
	fs.Var(flags.fields, "field", "context field as key=value (repeatable)")
	fs.StringVar(&flags.namespace, "n", "", "dotted service namespace exposed as serviceNamespace")
	fs.StringVar(&flags.namespace, "namespace", "", "dotted service namespace exposed as serviceNamespace")
	fs.StringVar(&flags.targetDir, "t", "", "target directory; its final component becomes folderName")
	fs.StringVar(&flags.targetDir, "target", "", "target directory; its final component becomes folderName")

	fs.Usage = func() {
		output := fs.Output()
		_, _ = fmt.Fprintf(output, "Usage: scafftools render [flags] <template>\n\n")
		_, _ = fmt.Fprintf(output, "Render a single template string. Useful for debugging template expressions.\n\n")
		_, _ = fmt.Fprintf(output, "Flags:\n")
		fs.PrintDefaults()
		_, _ = fmt.Fprintf(output, "\nExamples:\n")
		_, _ = fmt.Fprintf(output, "  scafftools render -n Azure.Messaging.EventGrid '{{#lastSegment}}{{serviceNamespace}}{{/lastSegment}}'\n")
		_, _ = fmt.Fprintf(output, "  scafftools render -f version=1.0-beta-2 '{{#normalizeVersion}}{{version}}{{/normalizeVersion}}'\n")
		_, _ = fmt.Fprintf(output, "  scafftools render -n Azure.Messaging.EventGrid '{{#rejoin}}. / 1, {{serviceNamespace}}{{/rejoin}}'\n")
	}

	return fs, flags
}

func handleRender(args []string) error {
	fs, flags := setupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return fmt.Errorf("render command requires exactly one template string")
	}

	if flags.namespace != "" {
		flags.fields["serviceNamespace"] = flags.namespace
	}

	ctx := render.CreateContext(render.ContextConfig{
		Fields:    flags.fields,
		TargetDir: flags.targetDir,
	})

	out, err := render.Render(fs.Arg(0), ctx)
	if err != nil {
		return fmt.Errorf("rendering template: %w", err)
	}

	fmt.Println(out)
	return nil
}

func printUsage() {
	fmt.Println(`scafftools - Template Scaffolding Tools

Usage:
  scafftools <command> [options]

Commands:
  generate    Scaffold a target directory from a template directory
  render      Render a single template string with the operation set
  mcp         Serve render/scaffold as MCP tools over stdio
  version     Show version information
  help        Show this help message

Examples:
  scafftools generate -c scaffold.yaml
  scafftools generate -c scaffold.yaml --dry-run
  scafftools render -n Azure.Messaging.EventGrid '{{#lastSegment}}{{serviceNamespace}}{{/lastSegment}}'

Run 'scafftools <command> --help' for more information on a command.`)
}
