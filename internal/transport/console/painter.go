package console

import (
	"fmt"

	"github.com/mattn/go-isatty"

	"github.com/rocketscienceinc/gamehub/internal/config"
)

// Level is the emphasis a line is printed with. It carries intent only;
// how (or whether) it is shown is up to the Painter.
type Level int

const (
	LevelDefault Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
	LevelAccent
	LevelBrand
)

type Painter interface {
	Paint(level Level, text string) string
	ClearScreen() string
}

// PlainPainter drops all emphasis. Used for pipes and tests.
type PlainPainter struct{}

func (PlainPainter) Paint(_ Level, text string) string { return text }

func (PlainPainter) ClearScreen() string { return "" }

// ANSIPainter renders levels as SGR colour sequences.
type ANSIPainter struct{}

const (
	ansiReset = "\033[0m"
	ansiClear = "\033[H\033[2J"
)

var ansiColors = map[Level]string{
	LevelInfo:    "\033[96m",
	LevelSuccess: "\033[92m",
	LevelWarning: "\033[93m",
	LevelError:   "\033[91m",
	LevelAccent:  "\033[95m",
	LevelBrand:   "\033[36m",
}

func (ANSIPainter) Paint(level Level, text string) string {
	color, ok := ansiColors[level]
	if !ok || text == "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, ansiReset)
}

func (ANSIPainter) ClearScreen() string { return ansiClear }

// NewPainter picks a painter for the configured colour mode. In auto mode
// colours are used only when fd is a terminal.
func NewPainter(mode string, fd uintptr) Painter {
	switch mode {
	case config.ColorAlways:
		return ANSIPainter{}
	case config.ColorNever:
		return PlainPainter{}
	default:
		if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
			return ANSIPainter{}
		}
		return PlainPainter{}
	}
}
