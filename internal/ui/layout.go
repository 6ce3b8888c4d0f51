package ui

import "github.com/rivo/tview"

func NewStatus() *tview.TextView {
	status := tview.NewTextView()
	status.SetBorder(true)
	status.SetBorderPadding(0, 0, 1, 1)
	status.SetTitle(" Status ")
	status.SetTitleAlign(tview.AlignLeft)

	return status
}

// NewLayout stacks the board above its status line.
func NewLayout(board *BoardView, status *tview.TextView) *tview.Flex {
	board.Box.SetBorder(true).SetTitle(" tic-tac-toe ")

	return tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(board.Box, 0, 1, true).
		AddItem(status, 3, 0, false)
}
