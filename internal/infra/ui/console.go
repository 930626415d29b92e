// Where: internal/infra/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize emojis, indentation and success/error highlighting across commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Options control decoration of console output.
type Options struct {
	Emoji    bool
	Color    bool
	ErrColor bool
}

// Console provides helper methods for formatted output.
type Console struct {
	Out          io.Writer
	ErrOut       io.Writer
	EmojiEnabled bool

	successStyle    lipgloss.Style
	errorStyle      lipgloss.Style
	colorEnabled    bool
	errColorEnabled bool
}

// IsTerminal reports whether w is a terminal device.
var IsTerminal = func(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok || file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// AutoOptions enables emoji and color on out only when it is a terminal, and
// error color only when errOut is one.
func AutoOptions(out, errOut io.Writer) Options {
	tty := IsTerminal(out)
	return Options{Emoji: tty, Color: tty, ErrColor: IsTerminal(errOut)}
}

// New creates a Console whose decoration follows AutoOptions(out, errOut).
func New(out, errOut io.Writer) *Console {
	return NewWithOptions(out, errOut, AutoOptions(out, errOut))
}

// NewWithOptions creates a Console with explicit decoration settings.
func NewWithOptions(out, errOut io.Writer, opts Options) *Console {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	c := &Console{
		Out:          out,
		ErrOut:       errOut,
		EmojiEnabled:    opts.Emoji,
		colorEnabled:    opts.Color,
		errColorEnabled: opts.ErrColor,
	}
	outRenderer := lipgloss.NewRenderer(out)
	errRenderer := lipgloss.NewRenderer(errOut)
	c.successStyle = outRenderer.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	c.errorStyle = errRenderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	return c
}

// Header prints a section header with an emoji.
// Example: 🐳 Generating Dockerfile for PYTHON Docker image...
func (c *Console) Header(emoji, title string) {
	fmt.Fprintf(c.Out, "%s%s\n", c.emojiPrefix(emoji), title)
}

// BlockStart prints a blank line followed by a header.
func (c *Console) BlockStart(emoji, title string) {
	fmt.Fprintln(c.Out)
	c.Header(emoji, title)
}

// BlockEnd ends a logical block with a blank line.
func (c *Console) BlockEnd() {
	fmt.Fprintln(c.Out)
}

// Item prints a key-value item with indentation.
// Example:    Language Version:   3.12
func (c *Console) Item(key string, value any) {
	fmt.Fprintf(c.Out, "   %-18s %v\n", key+":", value)
}

// ItemPlain prints a generic indented line.
func (c *Console) ItemPlain(msg string) {
	fmt.Fprintf(c.Out, "   %s\n", msg)
}

// Success prints a highlighted success message to Out.
func (c *Console) Success(msg string) {
	prefix := c.emojiPrefix("✅")
	if prefix == "" {
		prefix = "[ok] "
	}
	fmt.Fprintln(c.Out, paint(c.colorEnabled, c.successStyle, prefix+msg))
}

// Info prints a plain message to Out.
func (c *Console) Info(msg string) {
	fmt.Fprintln(c.Out, msg)
}

// Error prints a highlighted error to ErrOut.
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.ErrOut, paint(c.errColorEnabled, c.errorStyle, c.emojiPrefix("✗")+msg))
}

func paint(enabled bool, style lipgloss.Style, msg string) string {
	if !enabled {
		return msg
	}
	return style.Render(msg)
}

func (c *Console) emojiPrefix(emoji string) string {
	if !c.EmojiEnabled || strings.TrimSpace(emoji) == "" {
		return ""
	}
	return emoji + " "
}
