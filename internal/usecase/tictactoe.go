package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/config"
	"github.com/rocketscienceinc/gamehub/internal/entity"
	"github.com/rocketscienceinc/gamehub/internal/pkg"
	"github.com/rocketscienceinc/gamehub/internal/service"
	"github.com/rocketscienceinc/gamehub/internal/transport/console"
)

const (
	modeReturn = 0
	modePvP    = 1
	modePvAI   = 2
)

type TicTacToeUseCase struct {
	logger     *slog.Logger
	term       terminal
	botService service.BotService
	delays     config.Delays
}

func NewTicTacToeUseCase(logger *slog.Logger, term terminal, botService service.BotService, delays config.Delays) *TicTacToeUseCase {
	return &TicTacToeUseCase{
		logger:     logger.With("component", "tictactoe"),
		term:       term,
		botService: botService,
		delays:     delays,
	}
}

func (that *TicTacToeUseCase) Title() string {
	return "Tic-Tac-Toe (PvP & PvCPU)"
}

// Play shows the mode menu and runs matches on a board that is reset
// before each one.
func (that *TicTacToeUseCase) Play(ctx context.Context) error {
	var board entity.Board

	for {
		that.term.Clear()
		that.term.Header("STRATEGY ARENA (TTT)")
		that.term.Println(console.LevelDefault, "\t[1] PvHuman\n\t[2] PvAI (CPU)\n\t[0] Return")

		mode, err := that.term.ReadInt("\n\tSelect Mode > ", modeReturn, modePvAI)
		if err != nil {
			return fmt.Errorf("failed to read mode: %w", err)
		}

		if mode == modeReturn {
			return nil
		}

		board.Reset()

		if mode == modePvP {
			err = that.playPvP(ctx, &board)
		} else {
			err = that.playPvAI(ctx, &board)
		}
		if err != nil {
			return err
		}
	}
}

func (that *TicTacToeUseCase) playPvP(ctx context.Context, board *entity.Board) error {
	log := that.logger.With("mode", "pvp", "session", pkg.GenerateSessionID())
	current := entity.PlayerX

	for {
		that.term.Clear()
		that.term.Header("PvP MATCH")
		that.showBoard(board)

		that.term.Printf(console.LevelDefault, "\tPlayer %s's turn.", current)
		slot, err := that.term.ReadInt("\n\tSelect Sector (1-9) > ", 1, entity.BoardSize)
		if err != nil {
			return fmt.Errorf("failed to read sector: %w", err)
		}

		if err = board.Place(slot, current); err != nil {
			if !errors.Is(err, apperror.ErrCellOccupied) {
				return fmt.Errorf("failed to place marker: %w", err)
			}
			that.term.Println(console.LevelError, "\tSector Occupied!")
			that.term.Sleep(that.delays.Notice)
			continue
		}

		log.DebugContext(ctx, "marker placed", "player", string(current), "slot", slot)

		if outcome := board.Evaluate(); outcome.IsFinished() {
			log.InfoContext(ctx, "match finished", "outcome", outcome.String())
			return that.finishPvP(board, outcome)
		}

		current = current.Opponent()
	}
}

func (that *TicTacToeUseCase) finishPvP(board *entity.Board, outcome entity.Outcome) error {
	that.term.Clear()
	that.term.Header("GAME OVER")
	that.showBoard(board)

	switch outcome {
	case entity.Draw:
		that.term.Println(console.LevelWarning, "\n\tSTALEMATE (DRAW)!")
	case entity.WinnerX:
		that.term.Println(console.LevelSuccess, "\n\tPLAYER X DOMINATED!")
	case entity.WinnerO:
		that.term.Println(console.LevelSuccess, "\n\tPLAYER O DOMINATED!")
	}

	return that.term.Pause()
}

func (that *TicTacToeUseCase) playPvAI(ctx context.Context, board *entity.Board) error {
	log := that.logger.With("mode", "pvai", "session", pkg.GenerateSessionID())
	human, bot := entity.PlayerX, entity.PlayerO

	outcome := entity.Continue
	for !outcome.IsFinished() {
		that.term.Clear()
		that.term.Header("MAN VS MACHINE")
		that.showBoard(board)

		slot, err := that.term.ReadInt("\n\tYour Command (1-9) > ", 1, entity.BoardSize)
		if err != nil {
			return fmt.Errorf("failed to read command: %w", err)
		}

		if err = board.Place(slot, human); err != nil {
			if !errors.Is(err, apperror.ErrCellOccupied) {
				return fmt.Errorf("failed to place marker: %w", err)
			}
			that.term.Print(console.LevelDefault, "\n\tSector Invalid!")
			that.term.Sleep(that.delays.Notice)
			continue
		}

		log.DebugContext(ctx, "marker placed", "player", string(human), "slot", slot)

		if outcome = board.Evaluate(); outcome.IsFinished() {
			break
		}

		that.term.Print(console.LevelDefault, "\n\tAI Calculating...")
		that.term.Sleep(that.delays.AI)

		botSlot, err := that.botService.MakeTurn(board, bot)
		if err != nil {
			return fmt.Errorf("bot failed to make turn: %w", err)
		}

		log.DebugContext(ctx, "marker placed", "player", string(bot), "slot", botSlot)

		outcome = board.Evaluate()
	}

	log.InfoContext(ctx, "match finished", "outcome", outcome.String())

	that.term.Clear()
	that.term.Header("GAME RESULT")
	that.showBoard(board)

	switch outcome {
	case entity.WinnerX:
		that.term.Println(console.LevelSuccess, "\n\tHUMANITY WINS!")
	case entity.WinnerO:
		that.term.Println(console.LevelError, "\n\tMACHINE DOMINATION!")
	default:
		that.term.Println(console.LevelWarning, "\n\tTACTICAL DRAW.")
	}

	return that.term.Pause()
}

func (that *TicTacToeUseCase) showBoard(board *entity.Board) {
	cell := func(slot int) string {
		if marker := board.Cell(slot); marker != entity.EmptyCell {
			return string(marker)
		}
		return " "
	}

	const (
		spacer = "\t     |     |     "
		floor  = "\t_____|_____|_____"
	)

	that.term.Println(console.LevelInfo, "\n"+spacer)
	for row := 0; row < 3; row++ {
		base := row*3 + 1
		that.term.Printf(console.LevelInfo, "\t  %s  |  %s  |  %s  \n", cell(base), cell(base+1), cell(base+2))
		if row < 2 {
			that.term.Println(console.LevelInfo, floor)
		}
		that.term.Println(console.LevelInfo, spacer)
	}
	that.term.Println(console.LevelDefault, "")
}
