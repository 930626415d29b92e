// Where: internal/infra/config/config_test.go
// What: Tests for config loading and schema validation.
// Why: Keep the --config contract stable.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/poruru/dockerfile-generator/internal/domain/language"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("  ")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, `version: 1
output_dir: build
defaults:
  python:
    language_version: "3.12"
    flavor: slim
  nodejs:
    language_version: "20"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{
		Version:   1,
		OutputDir: "build",
		Defaults: map[string]LanguageDefaults{
			"python": {LanguageVersion: "3.12", Flavor: "slim"},
			"nodejs": {LanguageVersion: "20"},
		},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("unexpected config (-want +got):\n%s", diff)
	}
	if got := cfg.DefaultsFor(language.Python); got.Flavor != "slim" {
		t.Fatalf("python defaults = %+v", got)
	}
	if got := cfg.DefaultsFor(language.NodeJS); got.Flavor != "" {
		t.Fatalf("nodejs defaults = %+v", got)
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Version != CurrentVersion || len(cfg.Defaults) != 0 {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "unknown language", content: "defaults:\n  ruby:\n    language_version: \"3.2\"\n"},
		{name: "unknown key", content: "output: build\n"},
		{name: "numeric version string", content: "defaults:\n  python:\n    language_version: 3.12\n"},
		{name: "unsupported schema version", content: "version: 2\n"},
		{name: "malformed yaml", content: "defaults: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path)
			var loadErr *LoadError
			if !errors.As(err, &loadErr) {
				t.Fatalf("expected LoadError, got %T: %v", err, err)
			}
			if loadErr.Path != path {
				t.Fatalf("path = %q, want %q", loadErr.Path, path)
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "read config") {
		t.Fatalf("unexpected message: %v", err)
	}
}

func TestDefaultsForNilMap(t *testing.T) {
	var cfg Config
	if got := cfg.DefaultsFor(language.Python); got != (LanguageDefaults{}) {
		t.Fatalf("expected zero defaults, got %+v", got)
	}
}
