package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Falls back to defaults when the file is missing", func(t *testing.T) {
		// Given: a path that does not exist
		path := filepath.Join(t.TempDir(), "config.yml")

		// When: loading
		conf, err := Load(path)

		// Then: the defaults match the classic pacing
		require.NoError(t, err)
		assert.Equal(t, "warn", conf.LogLevel)
		assert.Equal(t, ColorAuto, conf.ColorMode)
		assert.Equal(t, Delays{
			LoadingStep: 200 * time.Millisecond,
			Roll:        500 * time.Millisecond,
			Notice:      500 * time.Millisecond,
			AI:          600 * time.Millisecond,
			Reveal:      800 * time.Millisecond,
			Warning:     time.Second,
			Farewell:    time.Second,
		}, conf.Delays)
	})

	t.Run("Reads values from the file", func(t *testing.T) {
		// Given: a config file overriding some values
		path := filepath.Join(t.TempDir(), "config.yml")
		content := "log-level: debug\ncolor-mode: never\ndelays:\n  ai: 0s\n  roll: 50ms\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// When: loading
		conf, err := Load(path)

		// Then: file values win and the rest keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, ColorNever, conf.ColorMode)
		assert.Equal(t, 50*time.Millisecond, conf.Delays.Roll)
		assert.Equal(t, time.Second, conf.Delays.Farewell)
	})

	t.Run("Environment overrides defaults", func(t *testing.T) {
		// Given: a colour mode in the environment
		t.Setenv("GAMEHUB_COLOR_MODE", ColorAlways)

		// When: loading without a file
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the environment value is used
		require.NoError(t, err)
		assert.Equal(t, ColorAlways, conf.ColorMode)
	})

	t.Run("Error on unknown colour mode", func(t *testing.T) {
		// Given: a file with an unsupported colour mode
		path := filepath.Join(t.TempDir(), "config.yml")
		require.NoError(t, os.WriteFile(path, []byte("color-mode: rainbow\n"), 0o600))

		// When: loading
		_, err := Load(path)

		// Then: ErrUnknownColorMode is returned
		require.ErrorIs(t, err, ErrUnknownColorMode)
	})
}

func TestMustLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte("color-mode: rainbow\n"), 0o600))

	assert.Panics(t, func() {
		MustLoad(path)
	})
}
