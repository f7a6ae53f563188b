package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/pkg"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
)

type HangmanUseCase struct {
	logger *slog.Logger
	term   terminal
	rng    entity.Randomizer
	delays config.Delays
	words  []string
}

func NewHangmanUseCase(logger *slog.Logger, term terminal, rng entity.Randomizer, delays config.Delays) *HangmanUseCase {
	return &HangmanUseCase{
		logger: logger.With("component", "hangman"),
		term:   term,
		rng:    rng,
		delays: delays,
		words:  entity.HangmanWords,
	}
}

func (that *HangmanUseCase) Title() string {
	return "Hangman (Word Survival)"
}

func (that *HangmanUseCase) Play(ctx context.Context) error {
	return that.play(ctx, entity.NewHangman(that.rng, that.words))
}

func (that *HangmanUseCase) play(ctx context.Context, game *entity.Hangman) error {
	log := that.logger.With("session", pkg.GenerateSessionID())

	for !game.IsFinished() {
		that.term.Clear()
		that.term.Header("HANGMAN SURVIVAL")
		that.term.Println(console.LevelError, drawGallows(game.Lives()))

		that.term.Printf(console.LevelDefault, "\n\tLives: %d", game.Lives())
		that.term.Print(console.LevelDefault, "\n\tWord:  ")
		that.term.Print(console.LevelInfo, spaced(game.Revealed()))
		that.term.Print(console.LevelDefault, "\n\n\tHistory: "+spaced(game.Guessed()))

		input, err := that.term.ReadLine("\n\n\tEnter Char > ")
		if err != nil {
			return fmt.Errorf("failed to read letter: %w", err)
		}

		found, err := game.Guess(input)
		switch {
		case errors.Is(err, apperror.ErrNotSingleLetter):
			that.term.Print(console.LevelDefault, "\t[!] Single letter input required.")
			that.term.Sleep(that.delays.Warning)
			continue
		case errors.Is(err, apperror.ErrAlreadyGuessed):
			that.term.Print(console.LevelDefault, "\t[!] Already attempted.")
			that.term.Sleep(that.delays.Warning)
			continue
		case err != nil:
			return fmt.Errorf("failed to apply guess: %w", err)
		}

		log.DebugContext(ctx, "letter guessed", "found", found, "lives", game.Lives())

		if found {
			that.term.Print(console.LevelSuccess, "\n\tMatch Found!")
		} else {
			that.term.Print(console.LevelError, "\n\tIncorrect!")
		}
		that.term.Sleep(that.delays.Reveal)
	}

	that.term.Clear()
	if game.Won() {
		that.term.Header("MISSION ACCOMPLISHED")
	} else {
		that.term.Header("MISSION FAILED")
	}
	that.term.Println(console.LevelError, drawGallows(game.Lives()))

	if game.Won() {
		that.term.Printf(console.LevelSuccess, "\n\tYou survived! Word: %s\n", game.Secret())
	} else {
		that.term.Printf(console.LevelError, "\n\tEliminated. Word: %s\n", game.Secret())
	}

	log.InfoContext(ctx, "game finished", "won", game.Won(), "lives", game.Lives())

	return that.term.Pause()
}

// drawGallows adds one body part for every life lost.
func drawGallows(lives int) string {
	part := func(lost int, s string) string {
		if lives < entity.HangmanLives-lost+1 {
			return s
		}
		return ""
	}
	pad := func(lost int, s string) string {
		if p := part(lost, s); p != "" {
			return p
		}
		return " "
	}

	var sb strings.Builder
	sb.WriteString("\n\t  _______")
	sb.WriteString("\n\t  |     |")
	sb.WriteString("\n\t  |     " + part(1, "O"))
	sb.WriteString("\n\t  |    " + pad(3, "/") + part(2, "|") + part(4, "\\"))
	sb.WriteString("\n\t  |    " + pad(5, "/") + " " + part(6, "\\"))
	sb.WriteString("\n\t__|__")
	return sb.String()
}

func spaced(s string) string {
	if s == "" {
		return ""
	}
	return strings.Join(strings.Split(s, ""), " ") + " "
}
