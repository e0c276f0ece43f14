// Package tui plays the game in a terminal using tcell. Each board cell is
// two columns wide so the board keeps a square aspect.
package tui

import (
	"fmt"
	"image/color"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/render"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	cellWidth = 2
	margin    = 1 // border around the board
	panelRows = 2
)

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

var (
	boardStyle  = tcell.StyleDefault.Background(rgb(render.Background)).Foreground(rgb(render.Text))
	borderStyle = tcell.StyleDefault.Foreground(rgb(render.DarkColor))
	textStyle   = tcell.StyleDefault.Foreground(rgb(render.Text))
	recordStyle = tcell.StyleDefault.Foreground(rgb(render.Record)).Bold(true)
	titleStyle  = boardStyle.Foreground(rgb(render.HeadColor)).Bold(true)
)

// BoardSize is the screen area in columns and rows needed for a board of cells
func BoardSize(cells int) (width, height int) {
	return cells*cellWidth + 2*margin, cells + 2*margin + panelRows
}

// cellOrigin is the left column and row of p
func cellOrigin(p types.Position) (x, y int) {
	return margin + p.X*cellWidth, margin + p.Y
}

// Draw renders the board, score line and overlay. It does not call Show.
func Draw(s tcell.Screen, st game.State, cells int, started bool) {
	s.Clear()

	width, height := BoardSize(cells)
	if w, h := s.Size(); w < width || h < height {
		drawText(s, 0, 0, textStyle, fmt.Sprintf("Terminal too small, need %dx%d", width, height))
		return
	}

	drawBorder(s, width, cells+2*margin)
	for y := 0; y < cells; y++ {
		for x := 0; x < cells*cellWidth; x++ {
			s.SetContent(margin+x, margin+y, ' ', nil, boardStyle)
		}
	}

	drawFruit(s, st.Fruit)
	for i := len(st.Body) - 1; i >= 0; i-- {
		drawSegment(s, st.Body, i)
	}

	drawScore(s, st, cells)

	if overlay, shown := render.OverlayFor(st, started); shown {
		drawOverlay(s, overlay, cells)
	}
}

func drawBorder(s tcell.Screen, width, height int) {
	for x := 1; x < width-1; x++ {
		s.SetContent(x, 0, '─', nil, borderStyle)
		s.SetContent(x, height-1, '─', nil, borderStyle)
	}
	for y := 1; y < height-1; y++ {
		s.SetContent(0, y, '│', nil, borderStyle)
		s.SetContent(width-1, y, '│', nil, borderStyle)
	}
	s.SetContent(0, 0, '╭', nil, borderStyle)
	s.SetContent(width-1, 0, '╮', nil, borderStyle)
	s.SetContent(0, height-1, '╰', nil, borderStyle)
	s.SetContent(width-1, height-1, '╯', nil, borderStyle)
}

func drawSegment(s tcell.Screen, body entity.Body, i int) {
	x, y := cellOrigin(body[i].Position)
	style := boardStyle.Foreground(rgb(render.SegmentColor(i)))
	glyphs := render.CellGlyphs(body, i)
	s.SetContent(x, y, glyphs[0], nil, style)
	s.SetContent(x+1, y, glyphs[1], nil, style)
}

func drawFruit(s tcell.Screen, f entity.Fruit) {
	x, y := cellOrigin(f.Position)
	glyph := '●'
	if r := []rune(f.Value); len(r) > 0 {
		glyph = r[0]
	}
	style := boardStyle.Foreground(rgb(render.FruitColor(f.Value)))
	s.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) < cellWidth {
		s.SetContent(x+1, y, ' ', nil, boardStyle)
	}
}

func drawScore(s tcell.Screen, st game.State, cells int) {
	y := cells + 2*margin
	style := textStyle
	if render.BeatenBest(st) {
		style = recordStyle
	}
	x := drawText(s, margin, y, textStyle, "SCORE ")
	drawText(s, x, y, style, fmt.Sprintf("%d", st.Score))

	best := fmt.Sprintf("best: %d", st.BestScore)
	width, _ := BoardSize(cells)
	drawText(s, width-margin-runewidth.StringWidth(best), y, textStyle, best)

	help := "arrows/wasd turn  space pause  enter start  r reset  q quit"
	drawText(s, margin, y+1, borderStyle, runewidth.Truncate(help, width-2*margin, ""))
}

func drawOverlay(s tcell.Screen, o render.Overlay, cells int) {
	width, _ := BoardSize(cells)
	mid := margin + cells/2

	title := o.Title
	drawText(s, (width-runewidth.StringWidth(title))/2, mid-1, titleStyle, title)

	action := "[ Enter ] " + o.Action
	drawText(s, (width-runewidth.StringWidth(action))/2, mid+1, boardStyle.Bold(true), action)
}

// drawText writes text from column x and returns the column after it
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) int {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += runewidth.RuneWidth(r)
	}
	return x
}
