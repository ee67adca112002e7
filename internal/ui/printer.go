package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Symbol kinds for status lines.
const (
	OK   = "ok"
	Warn = "warn"
	Err  = "err"
	Run  = "run"
	Info = "info"
)

var emojiSymbols = map[string]string{
	OK:   "✅",
	Warn: "⚠️ ",
	Err:  "❌",
	Run:  "▶️ ",
	Info: "ℹ️ ",
}

var asciiSymbols = map[string]string{
	OK:   "[OK]",
	Warn: "[WARN]",
	Err:  "[ERR]",
	Run:  "[RUN]",
	Info: "[INFO]",
}

var kindStyles = map[string]lipgloss.Style{
	OK:   SuccessStyle,
	Warn: WarningStyle,
	Err:  ErrorStyle,
	Run:  RunStyle,
	Info: HelpStyle,
}

// Printer renders symbol-prefixed status lines. The mode selects between
// emoji and ASCII symbols: "on", "off", or "auto" (emoji only on a TTY).
type Printer struct {
	mode string
}

// NewPrinter creates a printer with the given symbol mode.
func NewPrinter(mode string) *Printer {
	switch mode {
	case "on", "off", "auto":
	default:
		mode = "auto"
	}
	return &Printer{mode: mode}
}

func (p *Printer) emoji() bool {
	switch p.mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// Symbol returns the prefix symbol for a status kind.
func (p *Printer) Symbol(kind string) string {
	table := asciiSymbols
	fallback := "[*]"
	if p.emoji() {
		table = emojiSymbols
		fallback = "•"
	}
	if s, ok := table[kind]; ok {
		return s
	}
	return fallback
}

// Say prints a symbol-prefixed status line.
func (p *Printer) Say(kind, msg string) {
	style, ok := kindStyles[kind]
	if !ok {
		style = HelpStyle
	}
	fmt.Printf("%s %s\n", p.Symbol(kind), style.Render(msg))
}

// Sayf is Say with formatting.
func (p *Printer) Sayf(kind, format string, args ...interface{}) {
	p.Say(kind, fmt.Sprintf(format, args...))
}
