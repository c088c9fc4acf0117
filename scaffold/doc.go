// Package scaffold materializes generated source trees from mustache
// template directories.
//
// A template directory is an ordinary file tree whose relative paths and
// file contents may contain mustache tags, including the lambda operations
// from the render package. An optional template.yaml manifest at the
// directory root declares template-defined static fields; scaffolding
// configuration fields shadow manifest fields on key collision.
//
// Generation is a pure computation over one configuration and one template
// tree: Generate renders every file into an in-memory Result, and
// Result.WriteFiles performs all filesystem writes in a separate step.
package scaffold
