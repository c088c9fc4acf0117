package scaffold

import (
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/scafftools/scafferrors"
)

// Config holds one scaffolding invocation's inputs.
type Config struct {
	// ServiceNamespace is the dotted identifier the template operations
	// slice apart, e.g. "Azure.Messaging.EventGrid.SystemEvents".
	ServiceNamespace string `yaml:"serviceNamespace"`

	// TemplateDir is the directory holding the template tree.
	TemplateDir string `yaml:"templateDir"`

	// TargetDir is the directory generated files are written under. Its
	// final path component becomes the folderName context field.
	TargetDir string `yaml:"targetDir"`

	// Fields are free-form values exposed to templates. They shadow
	// manifest-declared static fields on key collision.
	Fields map[string]any `yaml:"fields"`
}

// LoadConfig reads and validates a YAML configuration file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &scafferrors.ConfigError{Option: "config", Value: path, Message: "reading file", Cause: err}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &scafferrors.ConfigError{Option: "config", Value: path, Message: "parsing YAML", Cause: err}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the required directories are set.
func (c *Config) Validate() error {
	if c.TemplateDir == "" {
		return &scafferrors.ConfigError{Option: "templateDir", Message: "template directory is required"}
	}
	if c.TargetDir == "" {
		return &scafferrors.ConfigError{Option: "targetDir", Message: "target directory is required"}
	}
	return nil
}

// contextFields merges the service namespace into the free-form fields
// exposed to templates. An explicit fields entry wins over the dedicated
// configuration key.
func (c *Config) contextFields() map[string]any {
	fields := make(map[string]any, len(c.Fields)+1)
	if c.ServiceNamespace != "" {
		fields["serviceNamespace"] = c.ServiceNamespace
	}
	for k, v := range c.Fields {
		fields[k] = v
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}
