package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/pkg"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
)

type RPSUseCase struct {
	logger *slog.Logger
	term   terminal
	rng    entity.Randomizer
	delays config.Delays
}

func NewRPSUseCase(logger *slog.Logger, term terminal, rng entity.Randomizer, delays config.Delays) *RPSUseCase {
	return &RPSUseCase{
		logger: logger.With("component", "rps"),
		term:   term,
		rng:    rng,
		delays: delays,
	}
}

func (that *RPSUseCase) Title() string {
	return "Rock, Paper, Scissors"
}

var roundBanners = map[entity.RoundResult]struct {
	level console.Level
	text  string
}{
	entity.Tie:  {console.LevelWarning, "\n\tEFFECT: NO DAMAGE (TIE)"},
	entity.Win:  {console.LevelSuccess, "\n\tEFFECT: CRITICAL HIT (WIN)"},
	entity.Loss: {console.LevelError, "\n\tEFFECT: DEFEAT"},
}

// Play runs one round per menu choice until the player returns.
func (that *RPSUseCase) Play(ctx context.Context) error {
	log := that.logger.With("session", pkg.GenerateSessionID())

	for {
		that.term.Clear()
		that.term.Header("R.P.S BATTLE")

		for _, move := range entity.Moves {
			that.term.Printf(console.LevelDefault, "\t[%d] %s\n", int(move), move)
		}
		that.term.Println(console.LevelDefault, "\t[0] Return")

		choice, err := that.term.ReadInt("\n\tWeapon Choice > ", 0, len(entity.Moves))
		if err != nil {
			return fmt.Errorf("failed to read weapon choice: %w", err)
		}

		if choice == 0 {
			return nil
		}

		player := entity.Move(choice)
		that.term.Printf(console.LevelDefault, "\n\tYou deployed: %s\n", player)

		cpu := entity.RandomMove(that.rng)
		that.term.Printf(console.LevelDefault, "\tCPU deployed: %s\n", cpu)

		that.term.Sleep(that.delays.Roll)
		that.term.Divider()

		result := entity.Resolve(player, cpu)
		banner := roundBanners[result]
		that.term.Println(banner.level, banner.text)

		log.DebugContext(ctx, "round played", "player", player.String(), "cpu", cpu.String(), "result", result.String())

		if err = that.term.Pause(); err != nil {
			return err
		}
	}
}
