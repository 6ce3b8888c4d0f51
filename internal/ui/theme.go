package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

type Theme struct {
	XStyle    tcell.Style
	OStyle    tcell.Style
	GridStyle tcell.Style
	HintStyle tcell.Style
	XGlyph    rune
	OGlyph    rune
}

func NewTheme(conf config.UI) Theme {
	return Theme{
		XStyle:    tcell.StyleDefault.Foreground(tcell.GetColor(conf.XColor)).Bold(true),
		OStyle:    tcell.StyleDefault.Foreground(tcell.GetColor(conf.OColor)).Bold(true),
		GridStyle: tcell.StyleDefault.Foreground(tcell.GetColor(conf.GridColor)),
		HintStyle: tcell.StyleDefault.Dim(true),
		XGlyph:    firstRune(conf.XGlyph, 'X'),
		OGlyph:    firstRune(conf.OGlyph, 'O'),
	}
}

// Marker returns the glyph and style for a marker; ok is false for empty cells.
func (that Theme) Marker(marker entity.Marker) (rune, tcell.Style, bool) {
	switch marker {
	case entity.MarkerX:
		return that.XGlyph, that.XStyle, true
	case entity.MarkerO:
		return that.OGlyph, that.OStyle, true
	default:
		return ' ', tcell.StyleDefault, false
	}
}

func firstRune(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}

	return fallback
}
