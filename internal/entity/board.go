package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

const (
	Size      = 3
	CellCount = Size * Size
)

// Lines are the index triples that win the game: rows, then columns, then diagonals.
var Lines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a 3x3 grid in row-major order plus the marker that moves next.
// Cell (row, col) lives at index col + row*3.
type Board struct {
	cells         [CellCount]Marker
	currentPlayer Marker
}

func NewBoard() *Board {
	return &Board{
		currentPlayer: MarkerX,
	}
}

// Place puts the current player's marker at index and passes the turn.
// The board is left untouched when it returns an error.
func (that *Board) Place(index int) error {
	if index < 0 || index >= CellCount {
		return fmt.Errorf("%w: cell %d", apperror.ErrOutOfRange, index)
	}

	if that.cells[index] != MarkerEmpty {
		return fmt.Errorf("%w: cell %d", apperror.ErrCellOccupied, index)
	}

	that.cells[index] = that.currentPlayer
	that.currentPlayer = that.currentPlayer.Opponent()

	return nil
}

// Winner reports the marker owning a complete line. X is checked before O.
func (that *Board) Winner() (Marker, bool) {
	for _, marker := range [...]Marker{MarkerX, MarkerO} {
		for _, line := range Lines {
			if that.cells[line[0]] == marker && that.cells[line[1]] == marker && that.cells[line[2]] == marker {
				return marker, true
			}
		}
	}

	return MarkerEmpty, false
}

func (that *Board) IsFull() bool {
	for _, cell := range that.cells {
		if cell == MarkerEmpty {
			return false
		}
	}

	return true
}

func (that *Board) Cells() [CellCount]Marker {
	return that.cells
}

// Cell returns MarkerEmpty for indexes outside the board.
func (that *Board) Cell(index int) Marker {
	if index < 0 || index >= CellCount {
		return MarkerEmpty
	}

	return that.cells[index]
}

func (that *Board) CurrentPlayer() Marker {
	return that.currentPlayer
}

// String renders three rows of three markers, one row per line.
func (that *Board) String() string {
	var sb strings.Builder
	sb.Grow(CellCount + Size)

	for i, cell := range that.cells {
		sb.WriteString(cell.String())
		if i%Size == Size-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
