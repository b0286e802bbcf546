package proplogic

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls CLI output and enumeration guards.
type Config struct {
	// MaxVariables caps truth table construction in the CLI. Enumeration is
	// O(2^n), so the default keeps tables bounded and printable.
	MaxVariables int `yaml:"max-variables"`
	// TrueLabel and FalseLabel override the cell text of rendered tables.
	TrueLabel  string `yaml:"true-label"`
	FalseLabel string `yaml:"false-label"`
	// NoColor disables ANSI styling in rendered tables.
	NoColor bool `yaml:"no-color"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxVariables: 16,
		TrueLabel:    "True",
		FalseLabel:   "False",
	}
}

// LoadConfig reads a yaml configuration file. An empty path returns the
// defaults; unset fields fall back to their default values.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	if path == "" {
		return config, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, err
	}

	defaults := DefaultConfig()
	if config.MaxVariables <= 0 {
		config.MaxVariables = defaults.MaxVariables
	}
	if config.TrueLabel == "" {
		config.TrueLabel = defaults.TrueLabel
	}
	if config.FalseLabel == "" {
		config.FalseLabel = defaults.FalseLabel
	}
	return config, nil
}
