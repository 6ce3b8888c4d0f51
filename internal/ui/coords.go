package ui

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// Terminal geometry of the grid: 5x3 characters per cell plus one-character separators.
const (
	cellWidth   = 5
	cellHeight  = 3
	pitchX      = cellWidth + 1
	pitchY      = cellHeight + 1
	boardWidth  = entity.Size*pitchX - 1
	boardHeight = entity.Size*pitchY - 1
)

// CellAt maps world coordinates to a cell index. Cell centres sit at -1, 0 and 1 on
// both axes, so col = floor(x+1.5) and row = floor(y+1.5). Points off the grid are rejected.
func CellAt(x, y float64) (int, bool) {
	col := math.Floor(x + 1.5)
	row := math.Floor(y + 1.5)

	// written so that NaN fails the check
	if !(col >= 0 && col < entity.Size && row >= 0 && row < entity.Size) {
		return -1, false
	}

	return int(col) + int(row)*entity.Size, true
}

// screenToWorld converts a terminal position into world coordinates relative to a grid
// whose top-left corner is at (originX, originY). World y grows downwards like the rows.
func screenToWorld(px, py, originX, originY int) (float64, float64, bool) {
	dx, dy := px-originX, py-originY
	if dx < 0 || dy < 0 || dx >= boardWidth || dy >= boardHeight {
		return 0, 0, false
	}

	return float64(dx)/pitchX - 1.5, float64(dy)/pitchY - 1.5, true
}
