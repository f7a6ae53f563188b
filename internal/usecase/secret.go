package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/pkg"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
)

type SecretNumberUseCase struct {
	logger *slog.Logger
	term   terminal
	rng    entity.Randomizer
}

func NewSecretNumberUseCase(logger *slog.Logger, term terminal, rng entity.Randomizer) *SecretNumberUseCase {
	return &SecretNumberUseCase{
		logger: logger.With("component", "secret-number"),
		term:   term,
		rng:    rng,
	}
}

func (that *SecretNumberUseCase) Title() string {
	return "Secret Number Guessing"
}

func (that *SecretNumberUseCase) Play(ctx context.Context) error {
	return that.play(ctx, entity.NewSecretNumber(that.rng))
}

func (that *SecretNumberUseCase) play(ctx context.Context, game *entity.SecretNumber) error {
	log := that.logger.With("session", pkg.GenerateSessionID())

	that.term.Clear()
	that.term.Header("BINARY SEARCH GAME")
	that.term.Printf(console.LevelDefault, "\tTarget Locked: Number between %d-%d.\n", entity.SecretMin, entity.SecretMax)

	for !game.Solved() {
		guess, err := that.term.ReadInt("\n\tInput Guess > ", entity.SecretMin, entity.SecretMax)
		if err != nil {
			return fmt.Errorf("failed to read guess: %w", err)
		}

		hint := game.Guess(guess)
		log.DebugContext(ctx, "guess", "value", guess, "hint", hint.String())

		switch hint {
		case entity.TooLow:
			that.term.Println(console.LevelWarning, "\t>>> Too Low. Adjust upwards.")
		case entity.TooHigh:
			that.term.Println(console.LevelWarning, "\t>>> Too High. Adjust downwards.")
		case entity.Correct:
			that.term.Printf(console.LevelSuccess, "\n\t[SUCCESS] Target neutralized in %d attempts!\n", game.Attempts())
		}
	}

	log.InfoContext(ctx, "game finished", "attempts", game.Attempts())

	return that.term.Pause()
}
