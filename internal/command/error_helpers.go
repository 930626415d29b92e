// Where: internal/command/error_helpers.go
// What: Shared CLI error output.
// Why: Keep error output and exit codes consistent across commands.
package command

import (
	"fmt"
	"strings"

	"github.com/poruru/dockerfile-generator/internal/infra/ui"
	"github.com/poruru/dockerfile-generator/internal/meta"
)

// exitWithError prints err to stderr and returns the exit code of its kind.
func exitWithError(console *ui.Console, err error) int {
	kind := Classify(err)
	console.Error(userMessage(kind, err))
	return kind.ExitCode()
}

// exitWithUsageError reports a parse failure with a hint toward --help.
func exitWithUsageError(console *ui.Console, args []string, err error) int {
	console.Error(fmt.Sprintf("Error: %v", err))
	hint := meta.AppName + " --help"
	if name := commandName(args); name != "" && !strings.Contains(err.Error(), "unexpected argument "+name) {
		hint = fmt.Sprintf("%s %s --help", meta.AppName, name)
	}
	console.Error(fmt.Sprintf("Try: %s", hint))
	return ExitUsage
}

// commandName extracts the first non-flag argument, which names the subcommand.
func commandName(args []string) string {
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		return arg
	}
	return ""
}
