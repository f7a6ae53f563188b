package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrInvalidCell      = errors.New("invalid cell index")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrNotSingleLetter  = errors.New("single letter input required")
	ErrAlreadyGuessed   = errors.New("letter already attempted")
	ErrInputClosed      = errors.New("input stream closed")
)
