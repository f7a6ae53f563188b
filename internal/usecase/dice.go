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

type DiceUseCase struct {
	logger *slog.Logger
	term   terminal
	rng    entity.Randomizer
	delays config.Delays
}

func NewDiceUseCase(logger *slog.Logger, term terminal, rng entity.Randomizer, delays config.Delays) *DiceUseCase {
	return &DiceUseCase{
		logger: logger.With("component", "dice"),
		term:   term,
		rng:    rng,
		delays: delays,
	}
}

func (that *DiceUseCase) Title() string {
	return "Dice Roll Challenge"
}

// Play rolls two dice per request until the player returns to the menu.
func (that *DiceUseCase) Play(ctx context.Context) error {
	log := that.logger.With("session", pkg.GenerateSessionID())

	for {
		that.term.Clear()
		that.term.Header("DICE SIMULATOR")
		that.term.Println(console.LevelDefault, "\t[1] Roll Dice\n\t[0] Return")

		choice, err := that.term.ReadInt("\n\tAction > ", 0, 1)
		if err != nil {
			return fmt.Errorf("failed to read dice action: %w", err)
		}

		if choice == 0 {
			return nil
		}

		that.term.Print(console.LevelWarning, "\n\tRolling physics...")
		that.term.Sleep(that.delays.Roll)

		roll := entity.RollDice(that.rng)
		that.term.Printf(console.LevelWarning, "\r\t[ DIE 1: %d ]   [ DIE 2: %d ]     \n", roll.First, roll.Second)

		if roll.Doubles() {
			that.term.Println(console.LevelSuccess, "\n\t>>> CRITICAL HIT! DOUBLES! <<<")
		} else {
			that.term.Println(console.LevelError, "\n\tNo match.")
		}

		log.DebugContext(ctx, "dice rolled", "first", roll.First, "second", roll.Second, "doubles", roll.Doubles())

		if err = that.term.Pause(); err != nil {
			return err
		}
	}
}
