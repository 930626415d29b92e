// Where: internal/domain/template/renderer.go
// What: Render a language's Dockerfile template with version and flavor.
// Why: Provide the single substitution step between the CLI and the template assets.
package template

import (
	"errors"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/poruru/dockerfile-generator/internal/domain/language"
	"github.com/poruru/dockerfile-generator/internal/logging"
)

// Loader returns the raw template body for a language.
type Loader interface {
	Load(lang language.Language) (string, error)
}

// Renderer turns (language, version, flavor) into build-file text.
type Renderer struct {
	loader Loader
}

// NewRenderer returns a Renderer reading templates from loader.
func NewRenderer(loader Loader) *Renderer {
	return &Renderer{loader: loader}
}

// Generate renders the template for lang. Unknown languages, including ones the
// loader has no template for, yield *UnsupportedLanguageError; every other
// failure yields *RenderError.
func (r *Renderer) Generate(lang, version, flavor string) (string, error) {
	logger := logging.Component("renderer")

	parsed, ok := language.Parse(lang)
	if !ok {
		return "", &UnsupportedLanguageError{Language: lang}
	}
	if r == nil || r.loader == nil {
		return "", &RenderError{Cause: errors.New("template loader is not configured")}
	}

	body, err := r.loader.Load(parsed)
	if err != nil {
		if errors.Is(err, ErrTemplateNotFound) {
			return "", &UnsupportedLanguageError{Language: lang}
		}
		return "", &RenderError{Cause: err}
	}

	params := NewParams(parsed, version, flavor)
	logger.Debug().
		Str("language", params.Language).
		Str("image_tag", params.ImageTag).
		Msg("rendering template")

	content, err := execute(parsed.String(), body, params)
	if err != nil {
		return "", &RenderError{Cause: err}
	}
	return content, nil
}

func execute(name, body string, params Params) (string, error) {
	tmpl, err := template.New(name).
		Funcs(sprig.TxtFuncMap()).
		Option("missingkey=error").
		Parse(body)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, params); err != nil {
		return "", err
	}
	return buf.String(), nil
}
