package usecase

import (
	"time"

	"github.com/rocketscienceinc/gamehub/internal/transport/console"
)

// terminal is the part of console.Console the game modules drive.
type terminal interface {
	Print(level console.Level, text string)
	Println(level console.Level, text string)
	Printf(level console.Level, format string, args ...any)
	Clear()
	Header(title string)
	Divider()
	Sleep(d time.Duration)
	Pause() error
	ReadLine(prompt string) (string, error)
	ReadInt(prompt string, lo, hi int) (int, error)
}
