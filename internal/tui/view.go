package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/minelab/sweeper/internal/mines"
)

// Layout mirrors the classic frame:
//
//	╔═════╦══════════╦═════╗
//	║ 041 ║          ║ 000 ║
//	╠═════╩══════════╩═════╣
//	║░░░░░░░░░░░░░░░░░░░░░░║
//	╚══════════════════════╝
//
// The grid starts one cell in and three rows down; the two header
// boxes take twelve columns between them.
const (
	gridLeft   = 1
	gridTop    = 3
	headerSpan = 12
)

// MinWidth is the narrowest board the header boxes can frame.
const MinWidth = headerSpan

func (a *App) drawAll() {
	a.drawFrame()
	a.drawMinesLeft()
	a.drawClock()
	a.drawGrid()
	if a.board.Status() != mines.InProgress {
		a.drawBanner()
	}
	a.showCursor()
	a.screen.Show()
}

func (a *App) drawFrame() {
	var (
		w    = a.board.Width()
		h    = a.board.Height()
		def  = tcell.StyleDefault
		span = w - headerSpan
	)

	a.drawText(0, 0, "╔═════╦"+repeat('═', span)+"╦═════╗", def)
	a.drawText(0, 1, "║     ║"+repeat(' ', span)+"║     ║", def)
	a.drawText(0, 2, "╠═════╩"+repeat('═', span)+"╩═════╣", def)

	for y := range h {
		a.screen.SetContent(0, gridTop+y, '║', nil, def)
		a.screen.SetContent(w+1, gridTop+y, '║', nil, def)
	}

	a.drawText(0, gridTop+h, "╚"+repeat('═', w)+"╝", def)
}

func (a *App) drawMinesLeft() {
	left := min(max(a.board.MinesLeft(), 0), 999)
	a.drawText(2, 1, fmt.Sprintf("%03d", left), tcell.StyleDefault)
}

func (a *App) drawClock() {
	w := a.board.Width()
	a.drawText(w-3, 1, fmt.Sprintf("%03d", min(a.elapsed, 999)), tcell.StyleDefault)
}

func (a *App) drawGrid() {
	over := a.board.Status() != mines.InProgress
	for y := range a.board.Height() {
		for x := range a.board.Width() {
			v, err := a.board.At(x, y)
			if err != nil {
				Log.WithError(err).Error("cell out of bounds")
				continue
			}
			r, style := cellGlyph(v, over)
			a.screen.SetContent(gridLeft+x, gridTop+y, r, nil, style)
		}
	}
}

func (a *App) drawBanner() {
	var (
		w    = a.board.Width()
		text string
	)
	if a.board.Status() == mines.Won {
		if w%2 == 0 {
			text = "YOU  WON"
		} else {
			text = " YOU WON "
		}
	} else {
		if w%2 == 0 {
			text = "YOU LOST"
		} else {
			text = "YOU  LOST"
		}
	}
	a.drawText(w/2-3, 1, text, tcell.StyleDefault.Bold(true))
}

func (a *App) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

// cellGlyph maps display state to a rune and style. Once the game is
// over the whole layout is drawn: mines show up, wrong flags turn
// yellow and untouched cells render their numbers.
func cellGlyph(v mines.CellView, over bool) (rune, tcell.Style) {
	def := tcell.StyleDefault
	switch v.State {
	case mines.Flagged:
		if over && !v.Mine {
			return 'Þ', def.Foreground(tcell.ColorYellow)
		}
		return 'Þ', def.Foreground(tcell.ColorGreen)
	case mines.Hidden:
		if !over {
			return '░', def
		}
		if v.Mine {
			return 'Ø', def.Foreground(tcell.ColorRed)
		}
		return adjacencyGlyph(v.Adjacent)
	default: // Revealed
		if v.Mine {
			return 'Ø', def.Foreground(tcell.ColorRed)
		}
		return adjacencyGlyph(v.Adjacent)
	}
}

var adjacencyColors = [8]tcell.Color{
	tcell.ColorBlue,
	tcell.ColorGreen,
	tcell.ColorRed,
	tcell.ColorNavy,
	tcell.ColorMaroon,
	tcell.ColorTeal,
	tcell.ColorSilver,
	tcell.ColorGray,
}

func adjacencyGlyph(n int) (rune, tcell.Style) {
	if n == 0 {
		return ' ', tcell.StyleDefault
	}
	return rune('0' + n), tcell.StyleDefault.Foreground(adjacencyColors[n-1])
}

func repeat(r rune, n int) string {
	if n < 0 {
		n = 0
	}
	s := make([]rune, n)
	for i := range s {
		s[i] = r
	}
	return string(s)
}
