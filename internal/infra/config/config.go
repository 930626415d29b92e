// Where: internal/infra/config/config.go
// What: Optional YAML defaults file for the create command.
// Why: Let users pin per-language versions, flavors and an output directory.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/poruru/dockerfile-generator/internal/domain/language"
	"gopkg.in/yaml.v3"
)

// CurrentVersion is the only config schema version understood.
const CurrentVersion = 1

// Config is the decoded --config file.
type Config struct {
	Version   int                         `yaml:"version"`
	OutputDir string                      `yaml:"output_dir,omitempty"`
	Defaults  map[string]LanguageDefaults `yaml:"defaults,omitempty"`
}

// LanguageDefaults are fallbacks used when a flag is not given.
type LanguageDefaults struct {
	LanguageVersion string `yaml:"language_version,omitempty"`
	Flavor          string `yaml:"flavor,omitempty"`
}

// LoadError reports an unreadable or invalid config file.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load config %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Default returns an empty configuration.
func Default() Config {
	return Config{
		Version:  CurrentVersion,
		Defaults: map[string]LanguageDefaults{},
	}
}

// Load reads, validates and decodes the config file at path.
func Load(path string) (Config, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return Default(), nil
	}

	payload, err := os.ReadFile(path)
	if err != nil {
		return Config{}, &LoadError{Path: path, Err: fmt.Errorf("read config: %w", err)}
	}
	if err := validate(payload); err != nil {
		return Config{}, &LoadError{Path: path, Err: err}
	}

	cfg := Default()
	if err := yaml.Unmarshal(payload, &cfg); err != nil {
		return Config{}, &LoadError{Path: path, Err: fmt.Errorf("decode config: %w", err)}
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}
	if cfg.Defaults == nil {
		cfg.Defaults = map[string]LanguageDefaults{}
	}
	return cfg, nil
}

// DefaultsFor returns the configured fallbacks for lang.
func (c Config) DefaultsFor(lang language.Language) LanguageDefaults {
	if c.Defaults == nil {
		return LanguageDefaults{}
	}
	return c.Defaults[lang.String()]
}
