// Where: internal/domain/template/errors.go
// What: Error types returned by the renderer.
// Why: Let the command layer map render failures to messages and exit codes.
package template

import (
	"errors"
	"fmt"
)

// ErrTemplateNotFound is returned by loaders that have no template for a language.
var ErrTemplateNotFound = errors.New("template not found")

// UnsupportedLanguageError reports a language without a template.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("Unsupported language '%s'. No template found.", e.Language)
}

// RenderError wraps any other failure while loading or executing a template.
type RenderError struct {
	Cause error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("Error generating Dockerfile: %v", e.Cause)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}
