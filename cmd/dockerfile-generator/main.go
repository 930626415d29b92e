// Where: cmd/dockerfile-generator/main.go
// What: CLI entrypoint.
// Why: Execute commands with production dependencies.
package main

import (
	"os"

	"github.com/poruru/dockerfile-generator/internal/command"
)

func main() {
	os.Exit(command.Run(os.Args[1:], buildDependencies()))
}
