// Where: internal/infra/ui/ui.go
// What: High-level output surface used by command handlers.
// Why: Keep handlers independent of how messages are decorated.
package ui

// KeyValue is a key/value pair rendered inside a block.
type KeyValue struct {
	Key   string
	Value any
}

// UserInterface exposes the output helpers used by command handlers.
type UserInterface interface {
	Info(msg string)
	Success(msg string)
	Error(msg string)
	Block(emoji, title string, rows []KeyValue)
}

// NewConsoleUI returns a UserInterface backed by console.
func NewConsoleUI(console *Console) UserInterface {
	return consoleUI{console: console}
}

type consoleUI struct {
	console *Console
}

func (u consoleUI) Info(msg string) {
	u.console.Info(msg)
}

func (u consoleUI) Success(msg string) {
	u.console.Success(msg)
}

func (u consoleUI) Error(msg string) {
	u.console.Error(msg)
}

func (u consoleUI) Block(emoji, title string, rows []KeyValue) {
	u.console.BlockStart(emoji, title)
	for _, kv := range rows {
		u.console.Item(kv.Key, kv.Value)
	}
	u.console.BlockEnd()
}
