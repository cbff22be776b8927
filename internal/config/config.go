// Package config loads sortlab's start-up configuration from TOML or YAML
// files and validates it.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/sortlab/arraygen"
	"github.com/katalvlaran/sortlab/internal/logging"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// ErrUnsupportedFormat is returned for file extensions other than .toml/.yaml/.yml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config holds every start-up setting.
type Config struct {
	// Verbose starts the session with step-by-step tracing enabled.
	Verbose bool `toml:"verbose" yaml:"verbose"`
	// Seed feeds the sequence generator; 0 selects the default seed.
	Seed int64 `toml:"seed" yaml:"seed"`
	// DisplayLimit caps how many elements are printed; 0 prints all.
	DisplayLimit int `toml:"display_limit" yaml:"display_limit"`

	Log      LogConfig      `toml:"log" yaml:"log"`
	Generate GenerateConfig `toml:"generate" yaml:"generate"`
}

// LogConfig controls the structured logger.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
}

// GenerateConfig describes the initial sequence.
type GenerateConfig struct {
	Mode       string `toml:"mode" yaml:"mode"`
	N          int    `toml:"n" yaml:"n"`
	M          int    `toml:"m" yaml:"m"`
	Duplicates bool   `toml:"duplicates" yaml:"duplicates"`
	Min        int    `toml:"min" yaml:"min"`
	Max        int    `toml:"max" yaml:"max"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Verbose:      false,
		Seed:         0,
		DisplayLimit: 100,
		Log: LogConfig{
			Level:  "warn",
			Format: "text",
		},
		Generate: GenerateConfig{
			Mode:       "direct",
			N:          10,
			M:          1,
			Duplicates: true,
			Min:        0,
			Max:        99,
		},
	}
}

// ParseError reports a decoding failure in a configuration source.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("config: parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads path over Default(). An empty path returns the defaults.
// The decoder is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := decode(path, data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// LoadFromReader decodes r in the given format ("toml" or "yaml") over Default().
func LoadFromReader(r io.Reader, format string) (Config, error) {
	cfg := Default()
	data, err := io.ReadAll(r)
	if err != nil {
		return cfg, fmt.Errorf("config: reading: %w", err)
	}
	if err := decode("<reader>."+format, data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decode(path string, data []byte, cfg *Config) error {
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
	if err != nil {
		return &ParseError{Path: path, Err: err}
	}
	return nil
}

// Validate checks field ranges and enumerations.
func (c Config) Validate() error {
	if c.DisplayLimit < 0 {
		return fmt.Errorf("%w: display_limit %d is negative", ErrInvalidConfig, c.DisplayLimit)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level: %v", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}
	spec, err := c.Generate.SizeSpec()
	if err != nil {
		return fmt.Errorf("%w: generate: %v", ErrInvalidConfig, err)
	}
	if _, err := spec.Size(); err != nil {
		return fmt.Errorf("%w: generate: %v", ErrInvalidConfig, err)
	}
	if c.Generate.Min > c.Generate.Max {
		return fmt.Errorf("%w: generate.min %d > generate.max %d", ErrInvalidConfig, c.Generate.Min, c.Generate.Max)
	}
	return nil
}

// SizeSpec converts the generate section into an arraygen.SizeSpec.
func (g GenerateConfig) SizeSpec() (arraygen.SizeSpec, error) {
	mode, err := arraygen.ParseSizeMode(strings.ToLower(g.Mode))
	if err != nil {
		return arraygen.SizeSpec{}, err
	}
	return arraygen.SizeSpec{Mode: mode, N: g.N, M: g.M}, nil
}
