// internal/app/errors.go
package app

import "errors"

var (
	ErrOutOfBounds       = errors.New("cell is outside the field")
	ErrCellBlocked       = errors.New("cell is on the path")
	ErrCellOccupied      = errors.New("cell already has a tower")
	ErrInsufficientFunds = errors.New("not enough money")
	ErrNotRunning        = errors.New("game is paused or over")
)
