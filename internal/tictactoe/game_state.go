package tictactoe

import "github.com/rocketscienceinc/tictactoe-engine/internal/entity"

// Status is the phase of a match. Won and Drawn are terminal.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusDrawn
)

func (s Status) String() string {
	switch s {
	case StatusWon:
		return "won"
	case StatusDrawn:
		return "drawn"
	default:
		return "in progress"
	}
}

// GameState tracks the outcome of a match played on the board it owns.
type GameState struct {
	board    *entity.Board
	finished bool
	winner   entity.Marker
}

func NewGameState() *GameState {
	return &GameState{
		board:  entity.NewBoard(),
		winner: entity.MarkerEmpty,
	}
}

// SelectCell plays the current player's marker at index and reports whether it was placed.
// Selections after the end of the match, out of range or on an occupied cell are ignored.
func (that *GameState) SelectCell(index int) bool {
	if that.finished {
		return false
	}

	// ErrOutOfRange and ErrCellOccupied leave the board as it was
	if err := that.board.Place(index); err != nil {
		return false
	}

	that.updateOutcome()

	return true
}

// updateOutcome - checks the board after a placement.
func (that *GameState) updateOutcome() {
	if winner, ok := that.board.Winner(); ok {
		that.winner = winner
		that.finished = true

		return
	}

	if that.board.IsFull() {
		that.winner = entity.MarkerEmpty
		that.finished = true
	}
}

func (that *GameState) Board() *entity.Board {
	return that.board
}

func (that *GameState) IsFinished() bool {
	return that.finished
}

// Winner is only meaningful once the match is finished. Empty means a draw.
func (that *GameState) Winner() entity.Marker {
	return that.winner
}

func (that *GameState) Status() Status {
	switch {
	case !that.finished:
		return StatusInProgress
	case that.winner == entity.MarkerEmpty:
		return StatusDrawn
	default:
		return StatusWon
	}
}

// Outcome is the end-of-match label, or "" while the match is in progress.
func (that *GameState) Outcome() string {
	switch that.Status() {
	case StatusWon:
		return that.winner.String() + " won!"
	case StatusDrawn:
		return "it's a draw!"
	default:
		return ""
	}
}
