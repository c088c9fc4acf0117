package scaffold

import (
	"errors"
	"io/fs"
	"path"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scafftools/scafferrors"
)

// ManifestName is the file a template directory may carry at its root to
// declare template-defined defaults. It is never copied into the target.
const ManifestName = "template.yaml"

// Manifest holds template-declared defaults.
type Manifest struct {
	// Fields are static context fields. Configuration fields shadow them.
	Fields map[string]any `yaml:"fields"`

	// Skip lists path.Match patterns (matched against the slash-separated
	// relative path and against the base name) excluded from generation.
	Skip []string `yaml:"skip"`
}

// loadManifest reads template.yaml from the template tree root. A missing
// manifest is not an error; the template simply declares no defaults.
func loadManifest(fsys fs.FS) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, ManifestName)
	if errors.Is(err, fs.ErrNotExist) {
		return &Manifest{}, nil
	}
	if err != nil {
		return nil, &scafferrors.ConfigError{Option: "manifest", Value: ManifestName, Message: "reading file", Cause: err}
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &scafferrors.ConfigError{Option: "manifest", Value: ManifestName, Message: "parsing YAML", Cause: err}
	}
	return &m, nil
}

// skips reports whether relPath is excluded by a skip pattern. Invalid
// patterns were rejected by validateSkips before the walk started.
func (m *Manifest) skips(relPath string) bool {
	for _, pattern := range m.Skip {
		if ok, _ := path.Match(pattern, relPath); ok {
			return true
		}
		if ok, _ := path.Match(pattern, path.Base(relPath)); ok {
			return true
		}
	}
	return false
}

// validateSkips checks every skip pattern for syntax errors once, so the
// per-file matching can ignore the error return.
func (m *Manifest) validateSkips() error {
	for _, pattern := range m.Skip {
		if _, err := path.Match(pattern, ""); err != nil {
			return &scafferrors.ConfigError{Option: "skip", Value: pattern, Message: "invalid pattern", Cause: err}
		}
	}
	return nil
}
