package usecase

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// Snapshot is a read-only copy of the game taken between two moves.
type Snapshot struct {
	Cells         [entity.CellCount]entity.Marker
	CurrentPlayer entity.Marker
	Finished      bool
	Winner        entity.Marker
	Status        tictactoe.Status
	Outcome       string
}

// Session owns the running game and serializes the host's clicks and frame reads.
type Session struct {
	logger *slog.Logger

	mu    sync.RWMutex
	state *tictactoe.GameState
	games int
}

func NewSession(logger *slog.Logger) *Session {
	that := &Session{
		logger: logger.With("component", "session"),
		state:  tictactoe.NewGameState(),
		games:  1,
	}

	that.logger.Info("game started", "game", that.games)

	return that
}

// SelectCell applies a click on cell index and returns the resulting state.
func (that *Session) SelectCell(index int) Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "SelectCell", "game", that.games, "cell", index)

	mover := that.state.Board().CurrentPlayer()
	if !that.state.SelectCell(index) {
		log.Debug("selection ignored", "finished", that.state.IsFinished(), "occupied", that.state.Board().Cell(index) != entity.MarkerEmpty)

		return that.snapshot()
	}

	log.Debug("marker placed", "marker", mover.String(), "board", that.state.Board().String())

	if that.state.IsFinished() {
		log.Info(that.state.Outcome(), "status", that.state.Status().String(), "board", that.state.Board().String())
	}

	return that.snapshot()
}

// Restart throws the current game away and starts a fresh one.
func (that *Session) Restart() Snapshot {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.state = tictactoe.NewGameState()
	that.games++

	that.logger.Info("game started", "game", that.games)

	return that.snapshot()
}

func (that *Session) Snapshot() Snapshot {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.snapshot()
}

// Board renders the current board for logs.
func (that *Session) Board() string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.state.Board().String()
}

func (that *Session) snapshot() Snapshot {
	board := that.state.Board()

	return Snapshot{
		Cells:         board.Cells(),
		CurrentPlayer: board.CurrentPlayer(),
		Finished:      that.state.IsFinished(),
		Winner:        that.state.Winner(),
		Status:        that.state.Status(),
		Outcome:       that.state.Outcome(),
	}
}
