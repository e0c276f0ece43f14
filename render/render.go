// Package render computes what a front end paints for a game state:
// segment rounding, palette choice, overlays and board placement.
// It draws nothing itself.
package render

import (
	"image/color"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// Board colours
var (
	Background = color.RGBA{R: 0xc4, G: 0xcf, B: 0xa1, A: 0xff}
	Border     = color.RGBA{R: 0x61, G: 0x53, B: 0x49, A: 0xff}
	HeadColor  = color.RGBA{R: 0x85, G: 0xbb, B: 0x04, A: 0xff}
	DarkColor  = color.RGBA{R: 0x7b, G: 0x97, B: 0x3a, A: 0xff}
	LightColor = color.RGBA{R: 0xa2, G: 0xb0, B: 0x43, A: 0xff}
	Record     = color.RGBA{R: 0xff, G: 0x50, B: 0x23, A: 0xff}
	Text       = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

var fruitColors = map[string]color.RGBA{
	"🍑": {R: 0xff, G: 0x9a, B: 0x5c, A: 0xff},
	"🍎": {R: 0xd9, G: 0x20, B: 0x2a, A: 0xff},
	"🍏": {R: 0x7c, G: 0xc2, B: 0x2e, A: 0xff},
	"🍐": {R: 0xc8, G: 0xd1, B: 0x3e, A: 0xff},
	"🍓": {R: 0xe8, G: 0x2c, B: 0x4f, A: 0xff},
	"🥝": {R: 0x8a, G: 0x6d, B: 0x3b, A: 0xff},
}

// FruitColor is the marker colour for a glyph, for fonts without emoji
func FruitColor(glyph string) color.RGBA {
	if c, ok := fruitColors[glyph]; ok {
		return c
	}
	return Record
}

// SegmentColor alternates two body shades behind a brighter head
func SegmentColor(i int) color.RGBA {
	switch {
	case i == 0:
		return HeadColor
	case i%2 == 1:
		return DarkColor
	default:
		return LightColor
	}
}

// SegmentRadius returns the corner rounding for segment i. The head is
// rounded on its leading side and the tail on its trailing side. A block
// that turned carries the radii for the cell it turned out of, so the bend
// is drawn on the segment behind it.
func SegmentRadius(body entity.Body, i int, cell int) entity.Radius {
	block := body[i]
	half := float64(cell) / 2
	on := func(ds ...types.Direction) float64 {
		for _, d := range ds {
			if block.Direction == d {
				return half
			}
		}
		return 0
	}

	if i == 0 {
		return entity.CornerRadius(
			on(types.Up, types.Left),
			on(types.Up, types.Right),
			on(types.Down, types.Right),
			on(types.Down, types.Left),
		)
	}
	if ahead := body[i-1]; ahead.IsCorner && ahead.Radius.PerCorner() {
		return ahead.Radius
	}
	if i == len(body)-1 {
		return entity.CornerRadius(
			on(types.Down, types.Right),
			on(types.Down, types.Left),
			on(types.Up, types.Left),
			on(types.Up, types.Right),
		)
	}
	return entity.Radius{}
}

// Overlay is the banner shown over the board when the game is not running
type Overlay struct {
	Title  string
	Action string
}

// OverlayFor returns the banner for s, or false while the game runs.
// started distinguishes a paused game from one that never began.
func OverlayFor(s game.State, started bool) (Overlay, bool) {
	switch {
	case s.IsGameOver:
		return Overlay{Title: "GAME OVER", Action: "NEW GAME"}, true
	case s.IsPlaying:
		return Overlay{}, false
	case started:
		return Overlay{Title: "SNAKE", Action: "RESUME"}, true
	default:
		return Overlay{Title: "SNAKE", Action: "START"}, true
	}
}

// BeatenBest reports whether the running score has reached the record
func BeatenBest(s game.State) bool {
	return s.Score > 0 && s.Score >= s.BestScore
}

// Layout places a square board of cells inside a screen area
type Layout struct {
	Cell    int
	OffsetX int
	OffsetY int
	Cells   int
}

// Fit returns the largest whole-pixel cell size that fits cells×cells into
// width×height after padding, centred.
func Fit(width, height, cells, padding int) Layout {
	avail := width
	if height < avail {
		avail = height
	}
	avail -= 2 * padding
	cell := 1
	if cells > 0 && avail/cells > 1 {
		cell = avail / cells
	}
	size := cell * cells
	return Layout{
		Cell:    cell,
		OffsetX: (width - size) / 2,
		OffsetY: (height - size) / 2,
		Cells:   cells,
	}
}

// Origin returns the screen position of the top-left corner of p
func (l Layout) Origin(p types.Position) (x, y int) {
	return l.OffsetX + p.X*l.Cell, l.OffsetY + p.Y*l.Cell
}

// Size is the board edge length on screen
func (l Layout) Size() int {
	return l.Cell * l.Cells
}

// Contains reports whether the screen point lies on the board
func (l Layout) Contains(x, y int) bool {
	return x >= l.OffsetX && x < l.OffsetX+l.Size() && y >= l.OffsetY && y < l.OffsetY+l.Size()
}
