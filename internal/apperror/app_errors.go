package apperror

import "errors"

var (
	ErrOutOfRange   = errors.New("cell index out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
)
