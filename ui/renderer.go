package ui

import (
	"fmt"
	"image/color"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
	"gridsnake/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	borderPadding = 10  // Padding around game area
	panelHeight   = 140 // Score and controls strip below the board
)

var controlOrder = []types.Direction{types.Up, types.Left, types.Down, types.Right}

type Renderer struct {
	screenWidth  int32
	screenHeight int32
	layout       render.Layout
	sizes        types.Sizes

	// Screen areas that react to clicks, refreshed on every Draw
	actionButton rl.Rectangle
	controls     map[types.Direction]rl.Rectangle
}

func NewRenderer(sizes types.Sizes) *Renderer {
	r := &Renderer{
		sizes:    sizes,
		controls: make(map[types.Direction]rl.Rectangle),
	}
	r.UpdateDimensions()
	return r
}

func (r *Renderer) UpdateDimensions() {
	r.screenWidth = int32(rl.GetScreenWidth())
	r.screenHeight = int32(rl.GetScreenHeight())
	r.layout = render.Fit(int(r.screenWidth), int(r.screenHeight)-panelHeight, r.sizes.Cells(), borderPadding)
}

// Layout returns the board placement of the last frame
func (r *Renderer) Layout() render.Layout {
	return r.layout
}

// ActionButton is the overlay button area, empty while the game runs
func (r *Renderer) ActionButton() rl.Rectangle {
	return r.actionButton
}

// Control returns the on-screen button area for d
func (r *Renderer) Control(d types.Direction) (rl.Rectangle, bool) {
	rect, ok := r.controls[d]
	return rect, ok
}

func (r *Renderer) Draw(s game.State, started bool, pressed types.Direction) {
	r.UpdateDimensions()
	rl.BeginDrawing()
	rl.ClearBackground(render.Border)

	l := r.layout
	rl.DrawRectangle(int32(l.OffsetX), int32(l.OffsetY), int32(l.Size()), int32(l.Size()), render.Background)

	// Tail first so the head is painted on top when they overlap
	scale := float64(l.Cell) / float64(r.sizes.Cell)
	for i := len(s.Body) - 1; i >= 0; i-- {
		x, y := l.Origin(s.Body[i].Position)
		radius := render.SegmentRadius(s.Body, i, r.sizes.Cell).Scale(scale)
		drawCell(float32(x), float32(y), float32(l.Cell), radius, render.SegmentColor(i), render.Background)
	}

	r.drawFruit(s.Fruit)
	r.drawPanel(s, pressed)
	r.drawOverlay(s, started)

	rl.EndDrawing()
}

// drawCell fills a square and rounds each corner with a non-zero radius by
// cutting it back to the background and drawing a quarter disc
func drawCell(x, y, size float32, r entity.Radius, fill, bg color.RGBA) {
	rl.DrawRectangleRec(rl.NewRectangle(x, y, size, size), fill)

	corners := []struct {
		radius float32
		cx, cy float32 // disc centre
		sx, sy float32 // square cut-out origin
	}{
		{float32(r.TL), x + float32(r.TL), y + float32(r.TL), x, y},
		{float32(r.TR), x + size - float32(r.TR), y + float32(r.TR), x + size - float32(r.TR), y},
		{float32(r.BR), x + size - float32(r.BR), y + size - float32(r.BR), x + size - float32(r.BR), y + size - float32(r.BR)},
		{float32(r.BL), x + float32(r.BL), y + size - float32(r.BL), x, y + size - float32(r.BL)},
	}
	for _, c := range corners {
		if c.radius <= 0 {
			continue
		}
		rl.DrawRectangleRec(rl.NewRectangle(c.sx, c.sy, c.radius, c.radius), bg)
		rl.DrawCircleV(rl.NewVector2(c.cx, c.cy), c.radius, fill)
	}
}

func (r *Renderer) drawFruit(f entity.Fruit) {
	l := r.layout
	x, y := l.Origin(f.Position)
	half := float32(l.Cell) / 2

	// The default font has no emoji, so the glyph is drawn as a coloured disc
	rl.DrawCircleV(rl.NewVector2(float32(x)+half, float32(y)+half), half*0.9, render.FruitColor(f.Value))
	rl.DrawCircleV(rl.NewVector2(float32(x)+half*0.7, float32(y)+half*0.7), half*0.25, rl.Fade(render.Text, 0.6))
}

func (r *Renderer) drawPanel(s game.State, pressed types.Direction) {
	l := r.layout
	top := int32(l.OffsetY + l.Size() + borderPadding)
	fontSize := int32(24)

	scoreColor := render.Text
	if render.BeatenBest(s) {
		scoreColor = render.Record
	}
	rl.DrawText(fmt.Sprintf("%d", s.Score), int32(l.OffsetX), top, fontSize*2, scoreColor)
	rl.DrawText("SCORE", int32(l.OffsetX), top+fontSize*2+4, fontSize/2, render.Text)
	rl.DrawText(fmt.Sprintf("best: %d", s.BestScore), int32(l.OffsetX), top+fontSize*3, fontSize, render.Text)

	// Cross of direction buttons on the right of the strip
	button := float32(36)
	gap := float32(4)
	right := float32(l.OffsetX+l.Size()) - 3*button - 2*gap
	cy := float32(top) + button + gap

	positions := map[types.Direction]rl.Vector2{
		types.Up:    {X: right + button + gap, Y: float32(top)},
		types.Left:  {X: right, Y: cy},
		types.Down:  {X: right + button + gap, Y: cy},
		types.Right: {X: right + 2*(button+gap), Y: cy},
	}
	for _, d := range controlOrder {
		p := positions[d]
		rect := rl.NewRectangle(p.X, p.Y, button, button)
		r.controls[d] = rect

		fill := render.LightColor
		if d == pressed {
			fill = render.HeadColor
		}
		if !s.IsPlaying {
			fill = rl.Fade(fill, 0.5)
		}
		rl.DrawRectangleRounded(rect, 0.3, 6, fill)
		drawArrow(rect, d, render.Text)
	}
}

func drawArrow(rect rl.Rectangle, d types.Direction, col color.RGBA) {
	cx := rect.X + rect.Width/2
	cy := rect.Y + rect.Height/2
	k := rect.Width / 4

	// Vertices in counter-clockwise order
	switch d {
	case types.Up:
		rl.DrawTriangle(rl.NewVector2(cx, cy-k), rl.NewVector2(cx-k, cy+k), rl.NewVector2(cx+k, cy+k), col)
	case types.Down:
		rl.DrawTriangle(rl.NewVector2(cx, cy+k), rl.NewVector2(cx+k, cy-k), rl.NewVector2(cx-k, cy-k), col)
	case types.Left:
		rl.DrawTriangle(rl.NewVector2(cx-k, cy), rl.NewVector2(cx+k, cy+k), rl.NewVector2(cx+k, cy-k), col)
	case types.Right:
		rl.DrawTriangle(rl.NewVector2(cx+k, cy), rl.NewVector2(cx-k, cy-k), rl.NewVector2(cx-k, cy+k), col)
	}
}

func (r *Renderer) drawOverlay(s game.State, started bool) {
	r.actionButton = rl.Rectangle{}
	overlay, shown := render.OverlayFor(s, started)
	if !shown {
		return
	}

	l := r.layout
	rl.DrawRectangle(int32(l.OffsetX), int32(l.OffsetY), int32(l.Size()), int32(l.Size()), rl.Fade(render.Border, 0.8))

	titleSize := int32(40)
	titleWidth := rl.MeasureText(overlay.Title, titleSize)
	centreX := int32(l.OffsetX + l.Size()/2)
	centreY := int32(l.OffsetY + l.Size()/2)
	rl.DrawText(overlay.Title, centreX-titleWidth/2, centreY-titleSize, titleSize, render.HeadColor)

	actionSize := int32(20)
	actionWidth := rl.MeasureText(overlay.Action, actionSize)
	r.actionButton = rl.NewRectangle(
		float32(centreX-actionWidth/2-12),
		float32(centreY+12),
		float32(actionWidth+24),
		float32(actionSize+16),
	)
	rl.DrawRectangleRounded(r.actionButton, 0.3, 6, render.LightColor)
	rl.DrawRectangleRoundedLines(r.actionButton, 0.3, 6, 2, render.DarkColor)
	rl.DrawText(overlay.Action, centreX-actionWidth/2, centreY+20, actionSize, render.Text)
}
