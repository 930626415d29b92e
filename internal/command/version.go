// Where: internal/command/version.go
// What: version command implementation.
// Why: Print the build revision of the binary.
package command

import (
	"fmt"

	"github.com/poruru/dockerfile-generator/internal/infra/ui"
	"github.com/poruru/dockerfile-generator/internal/meta"
	"github.com/poruru/dockerfile-generator/internal/version"
)

// runVersion prints the version information of the CLI.
func runVersion(_ CLI, _ Dependencies, console *ui.Console) int {
	console.Info(fmt.Sprintf("%s %s", meta.AppName, version.GetVersion()))
	return ExitOK
}
