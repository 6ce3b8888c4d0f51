package ui

import (
	"io"
	"log/slog"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
)

const (
	screenWidth  = 40
	screenHeight = 20
)

type fixture struct {
	view    *BoardView
	session *usecase.Session
	status  *tview.TextView
	screen  tcell.SimulationScreen
	quits   int
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		session: usecase.NewSession(slog.New(slog.NewJSONHandler(io.Discard, nil))),
		status:  tview.NewTextView(),
		screen:  tcell.NewSimulationScreen("UTF-8"),
	}

	theme := NewTheme(config.UI{XColor: "green", OColor: "red", GridColor: "blue", XGlyph: "X", OGlyph: "O"})
	f.view = NewBoardView(f.session, theme, f.status, func() { f.quits++ })

	require.NoError(t, f.screen.Init())
	t.Cleanup(f.screen.Fini)
	f.screen.SetSize(screenWidth, screenHeight)

	f.view.Box.SetRect(0, 0, screenWidth, screenHeight)
	f.draw()

	return f
}

func (f *fixture) draw() {
	f.view.Box.Draw(f.screen)
}

func (f *fixture) contentAt(x, y int) rune {
	r, _, _, _ := f.screen.GetContent(x, y)
	return r
}

// cellCentre returns the terminal position of the marker drawn for index.
func (f *fixture) cellCentre(index int) (int, int) {
	col, row := index%entity.Size, index/entity.Size
	return f.view.originX + col*pitchX + cellWidth/2, f.view.originY + row*pitchY + cellHeight/2
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestBoardView_Keys(t *testing.T) {
	t.Run("Digit selects the matching cell", func(t *testing.T) {
		// Given: a new board view
		f := newFixture(t)

		// When: '1' and then '9' are pressed
		assert.Nil(t, f.view.handleKey(key('1')))
		assert.Nil(t, f.view.handleKey(key('9')))

		// Then: X holds cell 0, O holds cell 8 and X is to move
		snap := f.session.Snapshot()
		assert.Equal(t, entity.MarkerX, snap.Cells[0])
		assert.Equal(t, entity.MarkerO, snap.Cells[8])
		assert.Contains(t, f.status.GetText(true), "X to move")
	})

	t.Run("Restart clears the board", func(t *testing.T) {
		// Given: a game in progress
		f := newFixture(t)
		f.view.handleKey(key('5'))

		// When: 'r' is pressed
		assert.Nil(t, f.view.handleKey(key('r')))

		// Then: the board is empty again
		assert.Equal(t, [entity.CellCount]entity.Marker{}, f.session.Snapshot().Cells)
	})

	t.Run("Quit keys call onQuit", func(t *testing.T) {
		f := newFixture(t)

		assert.Nil(t, f.view.handleKey(key('q')))
		assert.Nil(t, f.view.handleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))

		assert.Equal(t, 2, f.quits)
	})

	t.Run("Other keys pass through", func(t *testing.T) {
		f := newFixture(t)

		event := key('z')
		assert.Same(t, event, f.view.handleKey(event))
		assert.Equal(t, [entity.CellCount]entity.Marker{}, f.session.Snapshot().Cells)
	})

	t.Run("Status shows the outcome", func(t *testing.T) {
		// Given: a new board view
		f := newFixture(t)

		// When: X completes the top row
		for _, r := range "14253" {
			f.view.handleKey(key(r))
		}

		// Then: the status line announces the winner
		assert.Contains(t, f.status.GetText(true), "X won!")
	})
}

func TestBoardView_Mouse(t *testing.T) {
	t.Run("Left click selects the cell under the pointer", func(t *testing.T) {
		// Given: a drawn board
		f := newFixture(t)
		x, y := f.cellCentre(4)

		// When: the centre cell is clicked
		action, event := f.view.handleMouse(tview.MouseLeftClick, tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone))

		// Then: X is placed there and the event is consumed
		assert.Equal(t, tview.MouseLeftClick, action)
		assert.Nil(t, event)
		assert.Equal(t, entity.MarkerX, f.session.Snapshot().Cells[4])
	})

	t.Run("Click on a cell corner still selects that cell", func(t *testing.T) {
		f := newFixture(t)

		f.view.handleMouse(tview.MouseLeftClick, tcell.NewEventMouse(f.view.originX+pitchX*2, f.view.originY+pitchY*2, tcell.Button1, tcell.ModNone))

		assert.Equal(t, entity.MarkerX, f.session.Snapshot().Cells[8])
	})

	t.Run("Click outside the grid is ignored", func(t *testing.T) {
		f := newFixture(t)

		event := tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone)
		_, got := f.view.handleMouse(tview.MouseLeftClick, event)

		assert.Same(t, event, got)
		assert.Equal(t, [entity.CellCount]entity.Marker{}, f.session.Snapshot().Cells)
	})

	t.Run("Other mouse actions are ignored", func(t *testing.T) {
		f := newFixture(t)
		x, y := f.cellCentre(0)

		f.view.handleMouse(tview.MouseMove, tcell.NewEventMouse(x, y, tcell.ButtonNone, tcell.ModNone))

		assert.Equal(t, [entity.CellCount]entity.Marker{}, f.session.Snapshot().Cells)
	})
}

func TestBoardView_Draw(t *testing.T) {
	// Given: X in the top-left cell and O in the centre
	f := newFixture(t)
	f.session.SelectCell(0)
	f.session.SelectCell(4)

	// When: the board is drawn
	f.draw()

	// Then: the grid is centred on the screen
	assert.Equal(t, (screenWidth-boardWidth)/2, f.view.originX)
	assert.Equal(t, (screenHeight-boardHeight)/2, f.view.originY)

	// And: markers sit in their cells
	assert.Equal(t, 'X', f.contentAt(f.cellCentre(0)))
	assert.Equal(t, 'O', f.contentAt(f.cellCentre(4)))
	assert.Equal(t, ' ', f.contentAt(f.cellCentre(8)))

	// And: separators and key hints are drawn
	assert.Equal(t, '│', f.contentAt(f.view.originX+cellWidth, f.view.originY))
	assert.Equal(t, '─', f.contentAt(f.view.originX, f.view.originY+cellHeight))
	assert.Equal(t, '┼', f.contentAt(f.view.originX+cellWidth, f.view.originY+cellHeight))
	assert.Equal(t, '9', f.contentAt(f.view.originX+2*pitchX, f.view.originY+2*pitchY))
}

func TestNewTheme(t *testing.T) {
	theme := NewTheme(config.UI{XColor: "green", OColor: "red", GridColor: "blue", XGlyph: "✕", OGlyph: ""})

	assert.Equal(t, '✕', theme.XGlyph)
	assert.Equal(t, 'O', theme.OGlyph)

	fg, _, _ := theme.XStyle.Decompose()
	assert.Equal(t, tcell.ColorGreen, fg)

	_, _, ok := theme.Marker(entity.MarkerEmpty)
	assert.False(t, ok)
}

func TestNewLayout(t *testing.T) {
	f := newFixture(t)

	// Given: the board and a status line stacked in a layout
	layout := NewLayout(f.view, NewStatus())
	require.NotNil(t, layout)

	// When: the layout fills the screen
	layout.SetRect(0, 0, screenWidth, screenHeight)
	layout.Draw(f.screen)

	// Then: the board is framed at the top and the status line at the bottom
	assert.Equal(t, '┌', f.contentAt(0, 0))
	assert.Equal(t, '┌', f.contentAt(0, screenHeight-3))
	assert.Equal(t, 'S', f.contentAt(2, screenHeight-3))
}
