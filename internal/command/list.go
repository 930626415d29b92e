// Where: internal/command/list.go
// What: list command implementation.
// Why: Show which languages have templates without generating anything.
package command

import (
	"github.com/poruru/dockerfile-generator/internal/domain/language"
	"github.com/poruru/dockerfile-generator/internal/infra/ui"
)

func runList(_ CLI, deps Dependencies, console *ui.Console) int {
	out := ui.NewConsoleUI(console)
	names := deps.Templates.Names()

	rows := make([]ui.KeyValue, 0, len(language.All()))
	for _, lang := range language.All() {
		asset, ok := names[lang]
		if !ok {
			asset = "(no template)"
		}
		rows = append(rows, ui.KeyValue{Key: lang.String(), Value: asset})
	}
	out.Block("📦", "Supported languages:", rows)

	out.Info("Examples:")
	for _, example := range quickStartExamples() {
		console.ItemPlain(example)
	}
	return ExitOK
}
