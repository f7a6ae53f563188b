package console

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gamehub/internal/config"
)

func TestPlainPainter(t *testing.T) {
	painter := PlainPainter{}

	assert.Equal(t, "text", painter.Paint(LevelError, "text"))
	assert.Empty(t, painter.ClearScreen())
}

func TestANSIPainter(t *testing.T) {
	painter := ANSIPainter{}

	t.Run("Wraps emphasised text in colour and reset", func(t *testing.T) {
		assert.Equal(t, "\033[92mok\033[0m", painter.Paint(LevelSuccess, "ok"))
		assert.Equal(t, "\033[91mno\033[0m", painter.Paint(LevelError, "no"))
	})

	t.Run("Leaves default level and empty text alone", func(t *testing.T) {
		assert.Equal(t, "plain", painter.Paint(LevelDefault, "plain"))
		assert.Equal(t, "", painter.Paint(LevelWarning, ""))
	})

	t.Run("Clears the screen", func(t *testing.T) {
		assert.Equal(t, ansiClear, painter.ClearScreen())
	})
}

func TestNewPainter(t *testing.T) {
	// Given: a regular file, which is never a terminal
	file, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("could not create temp file: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	// Then: explicit modes win and auto falls back to plain
	assert.IsType(t, ANSIPainter{}, NewPainter(config.ColorAlways, file.Fd()))
	assert.IsType(t, PlainPainter{}, NewPainter(config.ColorNever, file.Fd()))
	assert.IsType(t, PlainPainter{}, NewPainter(config.ColorAuto, file.Fd()))
}
