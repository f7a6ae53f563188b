package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"GAMEHUB_LOG_LEVEL" env-default:"warn"`
	ColorMode string `yaml:"color-mode" env:"GAMEHUB_COLOR_MODE" env-default:"auto"`
	Delays    Delays `yaml:"delays"`
}

// Delays are the fixed pacing pauses between screens.
type Delays struct {
	LoadingStep time.Duration `yaml:"loading-step" env:"GAMEHUB_DELAY_LOADING_STEP" env-default:"200ms"`
	Roll        time.Duration `yaml:"roll" env:"GAMEHUB_DELAY_ROLL" env-default:"500ms"`
	Notice      time.Duration `yaml:"notice" env:"GAMEHUB_DELAY_NOTICE" env-default:"500ms"`
	AI          time.Duration `yaml:"ai" env:"GAMEHUB_DELAY_AI" env-default:"600ms"`
	Reveal      time.Duration `yaml:"reveal" env:"GAMEHUB_DELAY_REVEAL" env-default:"800ms"`
	Warning     time.Duration `yaml:"warning" env:"GAMEHUB_DELAY_WARNING" env-default:"1s"`
	Farewell    time.Duration `yaml:"farewell" env:"GAMEHUB_DELAY_FAREWELL" env-default:"1s"`
}

// MustLoad - loads config.yml when it exists, otherwise falls back to defaults.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config defaults: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file: %w", err)
	}

	if err = config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

var ErrUnknownColorMode = errors.New("unknown color mode")

func (that *Config) validate() error {
	switch that.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownColorMode, that.ColorMode)
	}
}
