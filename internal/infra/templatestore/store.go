// Where: internal/infra/templatestore/store.go
// What: Lookup of embedded Dockerfile templates by language.
// Why: Map the closed language set onto template assets shipped with the binary.
package templatestore

import (
	"errors"
	"fmt"
	"io/fs"
	"path"

	"github.com/poruru/dockerfile-generator/assets"
	"github.com/poruru/dockerfile-generator/internal/domain/language"
	domaintemplate "github.com/poruru/dockerfile-generator/internal/domain/template"
)

const templateDir = "templates"

// ErrTemplateNotFound reports that no template asset exists for a language.
var ErrTemplateNotFound = domaintemplate.ErrTemplateNotFound

// Store reads template bodies from a filesystem laid out like assets.TemplatesFS.
type Store struct {
	fsys fs.FS
}

// New returns a Store backed by the embedded template assets.
func New() *Store {
	return &Store{fsys: assets.TemplatesFS}
}

// NewWithFS returns a Store backed by fsys. Templates must live under templates/.
func NewWithFS(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Name returns the template asset name for lang.
func Name(lang language.Language) (string, error) {
	switch lang {
	case language.Python:
		return "python.dockerfile.tmpl", nil
	case language.NodeJS:
		return "nodejs.dockerfile.tmpl", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrTemplateNotFound, string(lang))
	}
}

// Load reads the template body for lang. Nothing is cached between calls.
func (s *Store) Load(lang language.Language) (string, error) {
	name, err := Name(lang)
	if err != nil {
		return "", err
	}
	payload, err := fs.ReadFile(s.fsys, path.Join(templateDir, name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
		}
		return "", fmt.Errorf("read template %s: %w", name, err)
	}
	return string(payload), nil
}

// Names returns the asset name of every supported language, keyed by language.
func (s *Store) Names() map[language.Language]string {
	names := make(map[language.Language]string, len(language.All()))
	for _, lang := range language.All() {
		if name, err := Name(lang); err == nil {
			names[lang] = name
		}
	}
	return names
}
