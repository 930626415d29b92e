// Where: internal/command/app.go
// What: CLI entrypoint logic.
// Why: Provide a testable command dispatcher.
package command

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/poruru/dockerfile-generator/internal/domain/language"
	domaintemplate "github.com/poruru/dockerfile-generator/internal/domain/template"
	"github.com/poruru/dockerfile-generator/internal/infra/config"
	"github.com/poruru/dockerfile-generator/internal/infra/fileops"
	"github.com/poruru/dockerfile-generator/internal/infra/templatestore"
	"github.com/poruru/dockerfile-generator/internal/infra/ui"
	"github.com/poruru/dockerfile-generator/internal/meta"
)

// Renderer produces build-file text for a language, version and flavor.
type Renderer interface {
	Generate(lang, version, flavor string) (string, error)
}

// TemplateCatalog lists the template asset backing each language.
type TemplateCatalog interface {
	Names() map[language.Language]string
}

// Dependencies holds all injected dependencies required for CLI command execution.
// Nil fields are replaced with the production implementations by Run.
type Dependencies struct {
	Out        io.Writer
	ErrOut     io.Writer
	Now        func() time.Time
	Renderer   Renderer
	Templates  TemplateCatalog
	WriteFile  func(path, content string) error
	LoadConfig func(path string) (config.Config, error)
}

// CLI defines the command-line interface structure parsed by Kong.
type CLI struct {
	Create     CreateCmd     `cmd:"" help:"Create a new Dockerfile for the specified language."`
	List       ListCmd       `cmd:"" help:"List supported languages and their templates"`
	Completion CompletionCmd `cmd:"" help:"Generate shell completion script"`
	Version    VersionCmd    `cmd:"" help:"Show version information"`
}

type (
	// CreateCmd defines the create command arguments and flags.
	CreateCmd struct {
		Language        LanguageArg `arg:"" name:"language" help:"Programming language for the Dockerfile (python or nodejs)."`
		LanguageVersion *string     `name:"language-version" help:"Version of NodeJS or Python (default: latest). Short form: -lv."`
		Flavor          *string     `name:"flavor" help:"Flavor of the language distribution (e.g., slim, alpine). (default: none)"`
		OutputFile      string      `short:"o" name:"output-file" help:"Output file path (default: <timestamp>.Containerfile)"`
		Config          string      `name:"config" help:"YAML file with per-language defaults"`
		Verbose         bool        `short:"v" help:"Enable debug logging on stderr"`
	}

	ListCmd struct{}

	VersionCmd struct{}
)

const description = `Dockerfile Generator - Create production-ready Dockerfile templates.

Generate clean, minimal Dockerfile templates for Python and Node.js projects
with customizable versions and distribution flavors (alpine, slim, etc.).`

// Run is the main entry point for CLI command execution.
// It parses the command-line arguments, identifies the requested command,
// and dispatches to the appropriate handler. Returns the process exit code.
func Run(args []string, deps Dependencies) int {
	deps = withDefaults(deps)
	console := ui.New(deps.Out, deps.ErrOut)

	if len(args) == 0 {
		return runNoArgs(console)
	}

	cli := CLI{}
	exited := false
	exitCode := ExitOK
	parser, err := kong.New(&cli,
		kong.Name(meta.AppName),
		kong.Description(description),
		kong.Writers(deps.Out, deps.ErrOut),
		kong.Exit(func(code int) {
			exited = true
			exitCode = code
		}),
	)
	if err != nil {
		return exitWithError(console, err)
	}

	ctx, err := parser.Parse(normalizeArgs(args))
	if exited {
		return exitCode
	}
	if err != nil {
		return exitWithUsageError(console, args, err)
	}

	if code, handled := dispatchCommand(ctx.Command(), cli, deps, console); handled {
		return code
	}

	console.Error("unknown command")
	return ExitUsage
}

func withDefaults(deps Dependencies) Dependencies {
	if deps.Out == nil {
		deps.Out = os.Stdout
	}
	if deps.ErrOut == nil {
		deps.ErrOut = os.Stderr
	}
	if deps.Now == nil {
		deps.Now = time.Now
	}
	if deps.Templates == nil {
		deps.Templates = templatestore.New()
	}
	if deps.Renderer == nil {
		deps.Renderer = domaintemplate.NewRenderer(templatestore.New())
	}
	if deps.WriteFile == nil {
		deps.WriteFile = fileops.WriteFile
	}
	if deps.LoadConfig == nil {
		deps.LoadConfig = config.Load
	}
	return deps
}

type commandHandler func(CLI, Dependencies, *ui.Console) int

type prefixHandler struct {
	prefix  string
	handler commandHandler
}

func dispatchCommand(command string, cli CLI, deps Dependencies, console *ui.Console) (int, bool) {
	exactHandlers := map[string]commandHandler{
		"list":            runList,
		"version":         runVersion,
		"completion bash": runCompletionBash,
		"completion zsh":  runCompletionZsh,
		"completion fish": runCompletionFish,
	}

	if handler, ok := exactHandlers[command]; ok {
		return handler(cli, deps, console), true
	}

	prefixHandlers := []prefixHandler{
		{prefix: "create", handler: runCreate},
	}
	for _, entry := range prefixHandlers {
		if strings.HasPrefix(command, entry.prefix) {
			return entry.handler(cli, deps, console), true
		}
	}

	return ExitUsage, false
}

// runNoArgs prints a short usage summary when the CLI is invoked without arguments.
func runNoArgs(console *ui.Console) int {
	console.Info("Usage:")
	console.Info(fmt.Sprintf("  %s create <%s> [-lv VERSION] [--flavor FLAVOR] [-o PATH]",
		meta.AppName, strings.Join(language.Names(), "|")))
	console.Info("")
	console.Info("Quick Start:")
	for _, example := range quickStartExamples() {
		console.ItemPlain(example)
	}
	console.Info("")
	console.Info(fmt.Sprintf("Try: %s create --help", meta.AppName))
	return ExitOK
}

func quickStartExamples() []string {
	return []string{
		meta.AppName + " create python -lv 3.12 --flavor slim",
		meta.AppName + " create nodejs -lv 20 --flavor alpine",
		meta.AppName + " create nodejs -lv 18 -o MyNodeImage.Containerfile",
	}
}
