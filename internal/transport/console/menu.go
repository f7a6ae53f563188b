package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

// Module is one game reachable from the main menu.
type Module interface {
	Title() string
	Play(ctx context.Context) error
}

type ShellDelays struct {
	LoadingStep time.Duration
	Farewell    time.Duration
}

// Shell is the top-level menu loop. It owns no game state.
type Shell struct {
	logger  *slog.Logger
	console *Console
	modules []Module
	delays  ShellDelays
}

func NewShell(logger *slog.Logger, console *Console, delays ShellDelays, modules ...Module) *Shell {
	return &Shell{
		logger:  logger.With("component", "shell"),
		console: console,
		modules: modules,
		delays:  delays,
	}
}

// Run shows the menu until the exit entry is chosen or input is closed.
// Both end with a nil error.
func (that *Shell) Run(ctx context.Context) error {
	that.loading("INITIALIZING")

	for {
		that.console.Clear()
		that.console.Header("MAIN MENU")

		for i, module := range that.modules {
			that.console.Print(LevelInfo, fmt.Sprintf("\t[%d] ", i+1))
			that.console.Println(LevelDefault, module.Title())
		}

		that.console.Divider()
		that.console.Print(LevelError, "\n\t[0] ")
		that.console.Println(LevelDefault, "Exit Application")

		choice, err := that.console.ReadInt("\n\tSelect Module > ", 0, len(that.modules))
		if err != nil {
			return that.closed(ctx, err)
		}

		if choice == 0 {
			that.console.Println(LevelSuccess, "\n\tTerminating session. Goodbye!")
			that.console.Sleep(that.delays.Farewell)
			return nil
		}

		module := that.modules[choice-1]
		that.logger.DebugContext(ctx, "module selected", "module", module.Title())

		if err = module.Play(ctx); err != nil {
			return that.closed(ctx, err)
		}
	}
}

func (that *Shell) closed(ctx context.Context, err error) error {
	if errors.Is(err, apperror.ErrInputClosed) {
		that.logger.InfoContext(ctx, "input closed, leaving menu")
		return nil
	}
	return fmt.Errorf("menu loop failed: %w", err)
}

func (that *Shell) loading(message string) {
	that.console.Print(LevelDefault, "\n\n\t"+message)
	for i := 0; i < 3; i++ {
		that.console.Print(LevelDefault, ".")
		that.console.Sleep(that.delays.LoadingStep)
	}
	that.console.Clear()
}
