package apperror

import "errors"

var (
	ErrOutOfRange       = errors.New("coordinates are out of board range")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrRegistrationFull = errors.New("both player slots are already registered")
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrInputClosed      = errors.New("input closed")
)
