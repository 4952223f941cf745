package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/onceui/internal/theme"
	"github.com/alexisbeaulieu97/onceui/internal/tokens"
	"github.com/alexisbeaulieu97/onceui/internal/validation"
	onceerrors "github.com/alexisbeaulieu97/onceui/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Config is the process-start configuration document.
type Config struct {
	Tokens tokens.Tables `yaml:"tokens,omitempty" toml:"tokens,omitempty"`
	Theme  theme.Config  `yaml:"theme,omitempty" toml:"theme,omitempty"`
	Log    LogConfig     `yaml:"log,omitempty" toml:"log,omitempty"`
}

// LogConfig holds logger defaults. CLI flags take precedence.
type LogConfig struct {
	Level string `yaml:"level,omitempty" toml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	JSON  bool   `yaml:"json,omitempty" toml:"json,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.Normalize()
	return cfg
}

// Normalize fills unset tables and theme attributes from their defaults.
func (c *Config) Normalize() {
	c.Tokens = c.Tokens.Normalize()
	c.Theme = c.Theme.Normalize()
	if strings.TrimSpace(c.Log.Level) == "" {
		c.Log.Level = "info"
	}
}

// Load reads, decodes, normalizes and validates the configuration at path.
// The decoder is chosen by extension: .toml uses TOML, everything in
// .yaml/.yml/.json uses YAML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, onceerrors.NewParseError(path, 0, err)
	}
	return Parse(path, data)
}

// Parse decodes data as if it were read from path.
func Parse(path string, data []byte) (*Config, error) {
	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml", ".json":
		if err := DecodeYAML(path, data, &cfg); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, onceerrors.NewParseError(path, tomlLine(err), err)
		}
	default:
		return nil, onceerrors.NewParseError(path, 0, fmt.Errorf("unsupported configuration extension %q", ext))
	}

	cfg.Normalize()
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate performs schema and cross-table validation.
func Validate(cfg *Config) error {
	if cfg == nil {
		return onceerrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validation.Struct(cfg); err != nil {
		return err
	}
	return cfg.Tokens.Check()
}

// DecodeYAML unmarshals a YAML (or JSON) document into out, reporting
// failures as a ParseError carrying the offending line.
func DecodeYAML(path string, data []byte, out interface{}) error {
	if err := yaml.Unmarshal(data, out); err != nil {
		return onceerrors.NewParseError(path, extractLine(err), err)
	}
	return nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}

func tomlLine(err error) int {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, _ := decodeErr.Position()
		return row
	}
	return 0
}
