package scaffold

import (
	"io/fs"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/erraggy/scafftools/render"
	"github.com/erraggy/scafftools/scafferrors"
)

// TemplateSuffix marks files whose contents are mustache templates. The
// suffix is stripped from the generated file name. Files without it are
// copied verbatim (their paths are still rendered).
const TemplateSuffix = ".mustache"

// Scaffolder renders one template tree against one configuration.
type Scaffolder struct {
	// Config is the scaffolding configuration. Required.
	Config *Config

	// FS overrides the template tree source. When nil, Generate reads
	// from Config.TemplateDir on the local filesystem.
	FS fs.FS

	// Logger receives per-file debug logging. Defaults to slog.Default().
	Logger *slog.Logger
}

// GeneratedFile is one rendered output file, addressed relative to the
// target directory.
type GeneratedFile struct {
	// Path is the rendered, slash-separated relative path.
	Path string
	// Content is the rendered file body.
	Content []byte
}

// Result is the in-memory outcome of one Generate call.
type Result struct {
	// Files are the rendered files in walk order.
	Files []GeneratedFile
	// Skipped counts files excluded by manifest skip patterns.
	Skipped int
}

// New returns a Scaffolder for the given configuration.
func New(cfg *Config) *Scaffolder {
	return &Scaffolder{Config: cfg}
}

// Generate walks the template tree, renders every file path and body with
// a single context, and returns the collected files. Nothing is written
// to disk; see Result.WriteFiles. Any render error aborts generation.
func (s *Scaffolder) Generate() (*Result, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	fsys := s.FS
	if fsys == nil {
		fsys = os.DirFS(s.Config.TemplateDir)
	}
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	manifest, err := loadManifest(fsys)
	if err != nil {
		return nil, err
	}
	if err := manifest.validateSkips(); err != nil {
		return nil, err
	}

	// One immutable context serves the whole invocation.
	ctx := render.CreateContext(render.ContextConfig{
		Statics:   manifest.Fields,
		Fields:    s.Config.contextFields(),
		TargetDir: s.Config.TargetDir,
	})

	result := &Result{}
	err = fs.WalkDir(fsys, ".", func(relPath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || relPath == ManifestName {
			return nil
		}
		if manifest.skips(relPath) {
			logger.Debug("skipping template file", "path", relPath)
			result.Skipped++
			return nil
		}

		file, err := renderFile(fsys, relPath, ctx)
		if err != nil {
			return err
		}
		logger.Debug("rendered template file", "template", relPath, "output", file.Path)
		result.Files = append(result.Files, *file)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// renderFile renders one template file's relative path and, for .mustache
// files, its body. Render failures carry the template path for diagnosis.
func renderFile(fsys fs.FS, relPath string, ctx map[string]any) (*GeneratedFile, error) {
	outPath, err := render.Render(strings.TrimSuffix(relPath, TemplateSuffix), ctx)
	if err != nil {
		return nil, &scafferrors.TemplateError{Name: relPath, Message: "rendering file path", Cause: err}
	}
	outPath = path.Clean(outPath)
	if outPath == "." || outPath == ".." || outPath == "" || strings.HasPrefix(outPath, "../") {
		return nil, &scafferrors.TemplateError{Name: relPath, Message: "rendered path escapes the target directory"}
	}

	raw, err := fs.ReadFile(fsys, relPath)
	if err != nil {
		return nil, &scafferrors.TemplateError{Name: relPath, Message: "reading template", Cause: err}
	}

	content := raw
	if strings.HasSuffix(relPath, TemplateSuffix) {
		rendered, err := render.Render(string(raw), ctx)
		if err != nil {
			return nil, &scafferrors.TemplateError{Name: relPath, Message: "rendering contents", Cause: err}
		}
		content = []byte(rendered)
	}

	return &GeneratedFile{Path: outPath, Content: content}, nil
}
