// Package ui is the terminal host of the game: it draws the grid and turns keys and
// mouse clicks into cell selections. It holds no game rules of its own.
package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

type session interface {
	SelectCell(index int) usecase.Snapshot
	Restart() usecase.Snapshot
	Snapshot() usecase.Snapshot
}

type BoardView struct {
	Box    *tview.Box
	status *tview.TextView

	session session
	theme   Theme
	onQuit  func()

	// top-left corner of the grid as of the last draw
	originX int
	originY int
}

func NewBoardView(session session, theme Theme, status *tview.TextView, onQuit func()) *BoardView {
	that := &BoardView{
		Box:     tview.NewBox(),
		status:  status,
		session: session,
		theme:   theme,
		onQuit:  onQuit,
	}

	that.Box.SetDrawFunc(that.draw)
	that.Box.SetInputCapture(that.handleKey)
	that.Box.SetMouseCapture(that.handleMouse)

	that.refreshStatus(session.Snapshot())

	return that
}

func (that *BoardView) draw(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
	snap := that.session.Snapshot()

	that.originX = x + max(0, (width-boardWidth)/2)
	that.originY = y + max(0, (height-boardHeight)/2)

	for dy := 0; dy < boardHeight; dy++ {
		for dx := 0; dx < boardWidth; dx++ {
			r, style := that.runeAt(snap, dx, dy)
			screen.SetContent(that.originX+dx, that.originY+dy, r, nil, style)
		}
	}

	return x, y, width, height
}

// runeAt picks what to draw at offset (dx, dy) inside the grid.
func (that *BoardView) runeAt(snap usecase.Snapshot, dx, dy int) (rune, tcell.Style) {
	vSep := dx%pitchX == cellWidth
	hSep := dy%pitchY == cellHeight

	switch {
	case vSep && hSep:
		return '┼', that.theme.GridStyle
	case vSep:
		return '│', that.theme.GridStyle
	case hSep:
		return '─', that.theme.GridStyle
	}

	index := dx/pitchX + (dy/pitchY)*entity.Size
	inX, inY := dx%pitchX, dy%pitchY

	if inX == cellWidth/2 && inY == cellHeight/2 {
		if r, style, ok := that.theme.Marker(snap.Cells[index]); ok {
			return r, style
		}
	}

	// key hint in the corner of free cells
	if inX == 0 && inY == 0 && snap.Cells[index] == entity.MarkerEmpty && !snap.Finished {
		return rune('1' + index), that.theme.HintStyle
	}

	return ' ', tcell.StyleDefault
}

func (that *BoardView) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyEscape:
		that.onQuit()
		return nil
	case tcell.KeyRune:
		switch r := event.Rune(); {
		case r >= '1' && r <= '9':
			that.refreshStatus(that.session.SelectCell(int(r - '1')))
			return nil
		case r == 'r':
			that.refreshStatus(that.session.Restart())
			return nil
		case r == 'q':
			that.onQuit()
			return nil
		}
	}

	return event
}

func (that *BoardView) handleMouse(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
	if action != tview.MouseLeftClick {
		return action, event
	}

	px, py := event.Position()

	wx, wy, ok := screenToWorld(px, py, that.originX, that.originY)
	if !ok {
		return action, event
	}

	if index, ok := CellAt(wx, wy); ok {
		that.refreshStatus(that.session.SelectCell(index))
	}

	return action, nil
}

func (that *BoardView) refreshStatus(snap usecase.Snapshot) {
	that.status.SetText(statusText(snap))
}

func statusText(snap usecase.Snapshot) string {
	if snap.Finished {
		return snap.Outcome + "  r: new game  q: quit"
	}

	return fmt.Sprintf("%s to move  1-9/click: place  r: new game  q: quit", snap.CurrentPlayer)
}
