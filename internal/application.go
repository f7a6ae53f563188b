package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/service"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
	"github.com/rocketscienceinc/gamehub/internal/usecase"
)

// RunApp - runs the game hub on the process terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	painter := console.NewPainter(conf.ColorMode, os.Stdout.Fd())

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>1))

	return Run(context.Background(), logger, conf, os.Stdin, os.Stdout, painter, rng)
}

// Run wires the modules to the given streams and blocks until the menu exits.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer, painter console.Painter, rng entity.Randomizer) error {
	log := logger.With("component", "app")

	term := console.New(in, out, painter)
	botService := service.NewBotService(rng)

	shell := console.NewShell(logger, term,
		console.ShellDelays{
			LoadingStep: conf.Delays.LoadingStep,
			Farewell:    conf.Delays.Farewell,
		},
		usecase.NewDiceUseCase(logger, term, rng, conf.Delays),
		usecase.NewSecretNumberUseCase(logger, term, rng),
		usecase.NewTicTacToeUseCase(logger, term, botService, conf.Delays),
		usecase.NewRPSUseCase(logger, term, rng, conf.Delays),
		usecase.NewHangmanUseCase(logger, term, rng, conf.Delays),
	)

	log.InfoContext(ctx, "Starting game hub")

	if err := shell.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	log.InfoContext(ctx, "Game hub stopped")

	return nil
}
