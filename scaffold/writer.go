package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/tools/imports"

	"github.com/erraggy/scafftools/internal/fileutil"
)

// WriteFiles writes every generated file under targetDir, creating parent
// directories as needed. Generated Go sources get a goimports-equivalent
// formatting pass; when formatting fails the unformatted output is kept so
// a template bug never loses the generated text.
func (r *Result) WriteFiles(targetDir string) error {
	for _, file := range r.Files {
		outPath := filepath.Join(targetDir, filepath.FromSlash(file.Path))
		if err := os.MkdirAll(filepath.Dir(outPath), fileutil.GeneratedDir); err != nil {
			return fmt.Errorf("creating directory for %s: %w", file.Path, err)
		}
		if err := os.WriteFile(outPath, formatIfGo(file.Path, file.Content), fileutil.GeneratedFile); err != nil {
			return fmt.Errorf("writing file %s: %w", file.Path, err)
		}
	}
	return nil
}

// formatIfGo runs Go sources through goimports-equivalent processing so
// scaffolded code is immediately compilable. Non-Go files and unformattable
// sources pass through unchanged.
func formatIfGo(name string, content []byte) []byte {
	if !strings.HasSuffix(name, ".go") {
		return content
	}
	formatted, err := imports.Process(name, content, nil)
	if err != nil {
		return content
	}
	return formatted
}
