// Where: cmd/dockerfile-generator/cli.go
// What: CLI dependency wiring.
// Why: Centralize construction for testability.
package main

import (
	"os"
	"time"

	"github.com/poruru/dockerfile-generator/internal/command"
	domaintemplate "github.com/poruru/dockerfile-generator/internal/domain/template"
	"github.com/poruru/dockerfile-generator/internal/infra/config"
	"github.com/poruru/dockerfile-generator/internal/infra/fileops"
	"github.com/poruru/dockerfile-generator/internal/infra/templatestore"
)

// buildDependencies constructs the runtime dependencies of the CLI.
func buildDependencies() command.Dependencies {
	store := templatestore.New()
	return command.Dependencies{
		Out:        os.Stdout,
		ErrOut:     os.Stderr,
		Now:        time.Now,
		Renderer:   domaintemplate.NewRenderer(store),
		Templates:  store,
		WriteFile:  fileops.WriteFile,
		LoadConfig: config.Load,
	}
}
