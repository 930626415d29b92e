// Where: internal/command/errors.go
// What: Closed set of command failures and their exit codes.
// Why: Map every error that reaches the command boundary to one message and code.
package command

import (
	"errors"
	"fmt"

	domaintemplate "github.com/poruru/dockerfile-generator/internal/domain/template"
	"github.com/poruru/dockerfile-generator/internal/infra/config"
	"github.com/poruru/dockerfile-generator/internal/infra/fileops"
)

// Exit codes returned by Run.
const (
	ExitOK                  = 0
	ExitUnexpected          = 1
	ExitUsage               = 2
	ExitUnsupportedLanguage = 3
	ExitRender              = 4
	ExitIO                  = 5
	ExitConfig              = 6
)

// ErrorKind names a class of command failure.
type ErrorKind int

const (
	KindUnexpected ErrorKind = iota
	KindUnsupportedLanguage
	KindRender
	KindIO
	KindConfig
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnsupportedLanguage:
		return "unsupported-language"
	case KindRender:
		return "render"
	case KindIO:
		return "io"
	case KindConfig:
		return "config"
	default:
		return "unexpected"
	}
}

// ExitCode returns the process exit code for the kind.
func (k ErrorKind) ExitCode() int {
	switch k {
	case KindUnsupportedLanguage:
		return ExitUnsupportedLanguage
	case KindRender:
		return ExitRender
	case KindIO:
		return ExitIO
	case KindConfig:
		return ExitConfig
	default:
		return ExitUnexpected
	}
}

// Classify maps err onto its kind.
func Classify(err error) ErrorKind {
	var (
		unsupported *domaintemplate.UnsupportedLanguageError
		renderErr   *domaintemplate.RenderError
		writeErr    *fileops.WriteError
		configErr   *config.LoadError
	)
	switch {
	case errors.As(err, &unsupported):
		return KindUnsupportedLanguage
	case errors.As(err, &renderErr):
		return KindRender
	case errors.As(err, &writeErr):
		return KindIO
	case errors.As(err, &configErr):
		return KindConfig
	default:
		return KindUnexpected
	}
}

// userMessage formats err for display.
func userMessage(kind ErrorKind, err error) string {
	switch kind {
	case KindUnexpected:
		return fmt.Sprintf("An unexpected error occurred: %v", err)
	case KindIO:
		return fmt.Sprintf("Error: could not write output file: %v", err)
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
