// Package scafftools provides tools for scaffolding generated source trees
// from mustache template directories.
//
// scafftools extends a mustache rendering engine with a fixed set of
// segment-transformation lambda operations. Given a scaffolding
// configuration carrying a dotted service namespace (for example
// "Azure.Messaging.EventGrid.SystemEvents"), it derives the strings needed
// to lay out generated files: directory paths, package names, version
// strings, and casing variants.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - render: the segment-transformation engine and the mustache bridge
//   - scaffold: configuration loading, template-tree traversal, file output
//
// # Quick Start
//
// Render a template string with the full operation set:
//
//	import "github.com/erraggy/scafftools/render"
//
//	ctx := render.CreateContext(render.ContextConfig{
//		Fields:    map[string]any{"namespace": "Azure.Messaging.EventGrid"},
//		TargetDir: "sdk/eventgrid",
//	})
//	out, err := render.Render("{{#normalizeToPath}}{{namespace}}{{/normalizeToPath}}", ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(out) // Azure/Messaging/EventGrid
//
// Scaffold a template directory:
//
//	import "github.com/erraggy/scafftools/scaffold"
//
//	cfg, err := scaffold.LoadConfig("scaffold.yaml")
//	if err != nil {
//		log.Fatal(err)
//	}
//	s := scaffold.New(cfg)
//	result, err := s.Generate()
//	if err != nil {
//		log.Fatal(err)
//	}
//	err = result.WriteFiles(cfg.TargetDir)
//
// # Render Package
//
// The render package exposes every operation as a mustache lambda section.
// A lambda section receives the literal, unexpanded text between its open
// and close tags plus a continuation that resolves nested tags; each
// operation resolves nested expressions first and then applies its own
// transform. Available operations:
//
//   - toLowerCase, normalizeVersion, normalizePackageName, normalizeToPath
//   - lastSegment, middleSegments
//   - camelCase, pascalCase, kebabCase
//   - slice, replace, rejoin (space-delimited positional arguments)
//
// See the render package documentation for the argument micro-syntax.
//
// # Scaffold Package
//
// The scaffold package walks a template directory, renders each file's
// relative path and contents through the render package, and writes the
// results under the configured target directory. A template.yaml manifest
// inside the template directory may declare static fields; configuration
// fields shadow manifest fields on key collision.
//
// # Error Handling
//
// Malformed operation arguments abort the enclosing render call with a
// *scafferrors.ArgumentCountError reporting the expected field count, the
// actual count, and the offending raw text. See the scafferrors package
// for the full taxonomy.
//
// # Command-Line Interface
//
// In addition to the library packages, scafftools provides a command-line
// interface:
//
//	# Scaffold a target directory from a template directory
//	scafftools generate -c scaffold.yaml
//
//	# Render a single template string (debugging templates)
//	scafftools render -f namespace=Azure.Messaging.EventGrid '{{#lastSegment}}{{namespace}}{{/lastSegment}}'
//
//	# Serve render/scaffold as MCP tools over stdio
//	scafftools mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/scafftools/cmd/scafftools@latest
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in
// the repository for full details.
package scafftools
