package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/gamehub/internal/apperror"
)

// Marker is the content of a single board cell.
type Marker string

const (
	EmptyCell Marker = ""
	PlayerX   Marker = "X"
	PlayerO   Marker = "O"
)

// Outcome is the state of a match as read from the board.
type Outcome int

const (
	Continue Outcome = iota
	Draw
	WinnerX
	WinnerO
)

const (
	BoardSize  = 9
	CenterSlot = 5
)

// WinCombos lists every line in evaluation order: rows top to bottom,
// columns left to right, main diagonal, anti-diagonal.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 tic-tac-toe grid addressed by slots 1..9 in row-major order.
type Board [BoardSize]Marker

func (that *Board) Reset() {
	for i := range that {
		that[i] = EmptyCell
	}
}

// Place puts marker on slot. The board is left untouched on any error.
func (that *Board) Place(slot int, marker Marker) error {
	if slot < 1 || slot > BoardSize {
		return fmt.Errorf("%w: slot %d", apperror.ErrInvalidCell, slot)
	}

	if marker != PlayerX && marker != PlayerO {
		return fmt.Errorf("%w: marker %q", apperror.ErrInvalidCell, marker)
	}

	if that[slot-1] != EmptyCell {
		return fmt.Errorf("%w: slot %d", apperror.ErrCellOccupied, slot)
	}

	that[slot-1] = marker

	return nil
}

// Cell returns the marker on slot, or EmptyCell for an out of range slot.
func (that *Board) Cell(slot int) Marker {
	if slot < 1 || slot > BoardSize {
		return EmptyCell
	}
	return that[slot-1]
}

func (that *Board) EmptySlots() []int {
	slots := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			slots = append(slots, i+1)
		}
	}
	return slots
}

func (that *Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

func (that *Board) Evaluate() Outcome {
	for _, combo := range WinCombos {
		a, b, c := that[combo[0]], that[combo[1]], that[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return outcomeFor(a)
		}
	}

	// the game will continue until all the squares are full
	if !that.IsFull() {
		return Continue
	}

	return Draw
}

// String renders the board as three rows, empty cells as spaces.
func (that *Board) String() string {
	var sb strings.Builder
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			cell := that[row*3+col]
			if cell == EmptyCell {
				sb.WriteByte(' ')
			} else {
				sb.WriteString(string(cell))
			}
			if col < 2 {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func outcomeFor(marker Marker) Outcome {
	if marker == PlayerX {
		return WinnerX
	}
	return WinnerO
}

// Opponent returns the other player's marker.
func (that Marker) Opponent() Marker {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that Outcome) String() string {
	switch that {
	case Continue:
		return "continue"
	case Draw:
		return "draw"
	case WinnerX:
		return "winner-x"
	case WinnerO:
		return "winner-o"
	default:
		return "unknown"
	}
}

func (that Outcome) IsFinished() bool {
	return that != Continue
}
