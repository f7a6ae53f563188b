package service

import (
	"fmt"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
	"github.com/rocketscienceinc/gamehub/internal/entity"
)

type BotService interface {
	MakeTurn(board *entity.Board, mark entity.Marker) (int, error)
}

type botService struct {
	rng entity.Randomizer
}

func NewBotService(rng entity.Randomizer) BotService {
	return &botService{
		rng: rng,
	}
}

// MakeTurn takes the center when it is free, otherwise keeps drawing random
// cells until an empty one comes up. Returns the slot it played.
func (that *botService) MakeTurn(board *entity.Board, mark entity.Marker) (int, error) {
	if board.IsFull() {
		return 0, apperror.ErrNoAvailableMoves
	}

	slot := entity.CenterSlot
	for board.Cell(slot) != entity.EmptyCell {
		slot = that.rng.IntN(entity.BoardSize) + 1
	}

	if err := board.Place(slot, mark); err != nil {
		return 0, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return slot, nil
}
