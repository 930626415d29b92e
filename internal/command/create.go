// Where: internal/command/create.go
// What: create command implementation.
// Why: Render a language template and write it to the requested output file.
package command

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	domaintemplate "github.com/poruru/dockerfile-generator/internal/domain/template"
	"github.com/poruru/dockerfile-generator/internal/infra/config"
	"github.com/poruru/dockerfile-generator/internal/infra/ui"
	"github.com/poruru/dockerfile-generator/internal/logging"
	"github.com/poruru/dockerfile-generator/internal/meta"
)

func runCreate(cli CLI, deps Dependencies, console *ui.Console) int {
	cmd := cli.Create
	logging.Init(logging.Options{
		Out:     deps.ErrOut,
		Verbose: cmd.Verbose,
		NoColor: !ui.IsTerminal(deps.ErrOut),
	})
	logger := logging.Component("create")

	cfg, err := deps.LoadConfig(cmd.Config)
	if err != nil {
		return exitWithError(console, err)
	}

	req := resolveCreateRequest(cmd, cfg, deps.Now())
	logger.Debug().
		Str("language", req.Language.String()).
		Str("version", req.Version).
		Str("flavor", req.Flavor).
		Str("output", req.OutputPath).
		Str("config", cmd.Config).
		Msg("resolved create request")

	console.Header("🐳", fmt.Sprintf("Generating Dockerfile for %s Docker image...", req.Language.DisplayName()))
	console.Item("Language Version", req.Version)
	if req.Flavor != "" {
		console.Item("Using flavor", req.Flavor)
	}
	console.Item("Output File", req.OutputPath)

	content, err := deps.Renderer.Generate(req.Language.String(), req.Version, req.Flavor)
	if err != nil {
		logger.Debug().Err(err).Msg("render failed")
		return exitWithError(console, err)
	}

	if err := deps.WriteFile(req.OutputPath, content); err != nil {
		logger.Debug().Err(err).Msg("write failed")
		return exitWithError(console, err)
	}
	logger.Debug().Int("bytes", len(content)).Msg("build file written")

	console.Info("")
	console.Success(fmt.Sprintf("Dockerfile successfully created at %s", req.OutputPath))
	return ExitOK
}

// resolveCreateRequest applies flag > config > built-in precedence. A flag given
// with an empty value still wins over the config file.
func resolveCreateRequest(cmd CreateCmd, cfg config.Config, now time.Time) domaintemplate.Request {
	lang := cmd.Language.Language()
	defaults := cfg.DefaultsFor(lang)

	version := flagOrDefault(cmd.LanguageVersion, firstNonEmpty(defaults.LanguageVersion, domaintemplate.DefaultVersion))
	flavor := flagOrDefault(cmd.Flavor, defaults.Flavor)

	output := strings.TrimSpace(cmd.OutputFile)
	if output == "" {
		output = defaultOutputPath(cfg.OutputDir, now)
	}

	return domaintemplate.Request{
		Language:   lang,
		Version:    version,
		Flavor:     flavor,
		OutputPath: output,
	}
}

// defaultOutputPath returns <dir>/<YYYYMMDD_HHMMSS>.Containerfile using local time.
func defaultOutputPath(dir string, now time.Time) string {
	name := now.Local().Format(meta.TimestampLayout) + meta.OutputExtension
	if strings.TrimSpace(dir) == "" {
		return name
	}
	return filepath.Join(dir, name)
}

func flagOrDefault(flag *string, fallback string) string {
	if flag != nil {
		return *flag
	}
	return fallback
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}
