// Where: internal/command/completion.go
// What: Shell completion command implementation.
// Why: Complete subcommands and language choices in bash, zsh and fish.
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/poruru/dockerfile-generator/internal/domain/language"
	"github.com/poruru/dockerfile-generator/internal/infra/ui"
	"github.com/poruru/dockerfile-generator/internal/meta"
)

// CompletionCmd defines the structure for the completion command.
type CompletionCmd struct {
	Bash CompletionBashCmd `cmd:"" help:"Generate bash completion script"`
	Zsh  CompletionZshCmd  `cmd:"" help:"Generate zsh completion script"`
	Fish CompletionFishCmd `cmd:"" help:"Generate fish completion script"`
}

type (
	CompletionBashCmd struct{}
	CompletionZshCmd  struct{}
	CompletionFishCmd struct{}
)

var createFlags = []string{"-lv", "--language-version", "--flavor", "-o", "--output-file", "--config", "-v", "--verbose", "-h", "--help"}

func runCompletionBash(cli CLI, _ Dependencies, console *ui.Console) int {
	commands, subcommands := collectCompletionCommands(cli)
	fn := completionFuncName()

	var caseParts []string
	for _, cmd := range sortedKeys(subcommands) {
		caseParts = append(caseParts, fmt.Sprintf(`        %s)
            COMPREPLY=( $(compgen -W "%s" -- "${cur}") )
            return 0
            ;;`, cmd, strings.Join(subcommands[cmd], " ")))
	}

	script := `%[1]s() {
    local cur cmd
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    cmd="${COMP_WORDS[1]}"

    if [[ ${COMP_CWORD} -le 1 ]]; then
        COMPREPLY=( $(compgen -W "%[2]s" -- "${cur}") )
        return 0
    fi

    case "${cmd}" in
%[3]s
    esac
}
complete -F %[1]s %[4]s
`
	console.Info(strings.TrimSuffix(fmt.Sprintf(script, fn, strings.Join(commands, " "), strings.Join(caseParts, "\n"), meta.AppName), "\n"))
	return ExitOK
}

func runCompletionZsh(cli CLI, _ Dependencies, console *ui.Console) int {
	commands, subcommands := collectCompletionCommands(cli)
	fn := completionFuncName()

	var subBlocks strings.Builder
	for _, cmd := range sortedKeys(subcommands) {
		subBlocks.WriteString(fmt.Sprintf(`  if [[ "${cmd}" == "%s" ]]; then
    _values '%s' %s
    return
  fi
`, cmd, cmd, strings.Join(subcommands[cmd], " ")))
	}

	script := `#compdef %[1]s
%[2]s() {
  local -a commands
  commands=(%[3]s)
  local cmd="${words[2]}"

  if [[ $CURRENT -eq 2 ]]; then
    _values 'commands' ${commands[@]}
    return
  fi

%[4]s}
%[2]s "$@"`
	console.Info(fmt.Sprintf(script, meta.AppName, fn, strings.Join(commands, " "), subBlocks.String()))
	return ExitOK
}

func runCompletionFish(cli CLI, _ Dependencies, console *ui.Console) int {
	commands, subcommands := collectCompletionCommands(cli)
	console.Info(fmt.Sprintf("complete -c %s -f -n \"__fish_use_subcommand\" -a \"%s\"", meta.AppName, strings.Join(commands, " ")))
	for _, cmd := range sortedKeys(subcommands) {
		console.Info(fmt.Sprintf("complete -c %s -f -n \"__fish_seen_subcommand_from %s\" -a \"%s\"",
			meta.AppName, cmd, strings.Join(subcommands[cmd], " ")))
	}
	return ExitOK
}

// collectCompletionCommands walks the kong model for top-level commands and
// their completion words. create completes to the language choices and flags.
func collectCompletionCommands(cli CLI) ([]string, map[string][]string) {
	parser, err := kong.New(&cli, kong.Name(meta.AppName))
	if err != nil {
		return nil, map[string][]string{}
	}

	var commands []string
	subcommands := make(map[string][]string)

	for _, node := range parser.Model.Children {
		if node.Hidden {
			continue
		}
		commands = append(commands, node.Name)

		var subs []string
		for _, sub := range node.Children {
			if sub.Hidden {
				continue
			}
			subs = append(subs, sub.Name)
		}
		if node.Name == "create" {
			subs = append(language.Names(), createFlags...)
		}
		if len(subs) > 0 {
			subcommands[node.Name] = subs
		}
	}

	return commands, subcommands
}

func completionFuncName() string {
	return "_" + strings.ReplaceAll(meta.AppName, "-", "_") + "_completion"
}

func sortedKeys(values map[string][]string) []string {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
