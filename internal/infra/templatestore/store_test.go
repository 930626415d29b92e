// Where: internal/infra/templatestore/store_test.go
// What: Tests for embedded template lookup.
// Why: Ensure every supported language ships a template with all placeholders.
package templatestore

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/poruru/dockerfile-generator/internal/domain/language"
)

func TestLoadEmbeddedTemplates(t *testing.T) {
	store := New()
	for _, lang := range language.All() {
		t.Run(lang.String(), func(t *testing.T) {
			body, err := store.Load(lang)
			if err != nil {
				t.Fatalf("load %s: %v", lang, err)
			}
			for _, placeholder := range []string{".Language", ".Version", ".Flavor", ".ImageTag"} {
				if !strings.Contains(body, placeholder) {
					t.Errorf("template for %s is missing %s", lang, placeholder)
				}
			}
		})
	}
}

func TestLoadUnknownLanguage(t *testing.T) {
	_, err := New().Load(language.Language("ruby"))
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestLoadMissingAsset(t *testing.T) {
	store := NewWithFS(fstest.MapFS{
		"templates/python.dockerfile.tmpl": &fstest.MapFile{Data: []byte("FROM python:{{ .ImageTag }}\n")},
	})

	if _, err := store.Load(language.Python); err != nil {
		t.Fatalf("load python: %v", err)
	}
	_, err := store.Load(language.NodeJS)
	if !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound for missing asset, got %v", err)
	}
}

func TestNames(t *testing.T) {
	names := New().Names()
	if names[language.Python] != "python.dockerfile.tmpl" {
		t.Fatalf("unexpected python asset: %q", names[language.Python])
	}
	if names[language.NodeJS] != "nodejs.dockerfile.tmpl" {
		t.Fatalf("unexpected nodejs asset: %q", names[language.NodeJS])
	}
}
