package render

import (
	"testing"

	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func straightBody() entity.Body {
	return entity.Body{
		entity.NewBlock(5, 1, types.Right),
		entity.NewBlock(4, 1, types.Right),
		entity.NewBlock(3, 1, types.Right),
	}
}

func TestSegmentRadiusHeadAndTail(t *testing.T) {
	body := straightBody()

	head := SegmentRadius(body, 0, 10)
	if head != entity.CornerRadius(0, 5, 5, 0) {
		t.Errorf("Expected head rounded on the right, got %+v", head)
	}

	tail := SegmentRadius(body, 2, 10)
	if tail != entity.CornerRadius(5, 0, 0, 5) {
		t.Errorf("Expected tail rounded on the left, got %+v", tail)
	}

	if mid := SegmentRadius(body, 1, 10); mid != (entity.Radius{}) {
		t.Errorf("Expected square middle segment, got %+v", mid)
	}
}

func TestSegmentRadiusCorner(t *testing.T) {
	sizes := types.DefaultSizes()
	body := entity.Body{
		entity.NewBlock(5, 1, types.Right),
		entity.NewBlock(4, 1, types.Right),
		entity.NewBlock(3, 1, types.Right),
		entity.NewBlock(2, 1, types.Right),
	}
	// Turn up at (5,1), then keep going up
	for i := 0; i < 2; i++ {
		body = body.Move(entity.Advance(types.Up, body.Head(), sizes))
	}

	bend := body[2]
	if bend.Position != (types.Position{X: 5, Y: 1}) {
		t.Fatalf("Expected bend cell at (5,1), got %+v", bend.Position)
	}
	if got := SegmentRadius(body, 2, sizes.Cell); got != entity.CornerRadius(0, 0, 5.5, 0) {
		t.Errorf("Expected right-to-up bend rounded bottom-right, got %+v", got)
	}
	if got := SegmentRadius(body, 1, sizes.Cell); got != (entity.Radius{}) {
		t.Errorf("Expected straight segment past the bend to stay square, got %+v", got)
	}
	if got := SegmentRadius(body, 3, sizes.Cell); got != (entity.Radius{}) {
		t.Errorf("Expected segment before the bend to stay square, got %+v", got)
	}
}

func TestCellGlyphsBend(t *testing.T) {
	sizes := types.DefaultSizes()
	body := straightBody()
	body = body.Move(entity.Advance(types.Down, body.Head(), sizes))

	// Right-to-down bend at (5,1) rounds its top-right corner
	if g := CellGlyphs(body, 1); g != [2]rune{'█', '╮'} {
		t.Errorf("Expected rounded bend glyph, got %q", string(g[:]))
	}
}

func TestCellGlyphs(t *testing.T) {
	body := straightBody()

	if g := CellGlyphs(body, 0); g != [2]rune{'█', '▶'} {
		t.Errorf("Expected right-facing head, got %q", string(g[:]))
	}
	if g := CellGlyphs(body, 1); g != [2]rune{'█', '█'} {
		t.Errorf("Expected solid body, got %q", string(g[:]))
	}
	if g := CellGlyphs(body, 2); g != [2]rune{'▐', '█'} {
		t.Errorf("Expected tail rounded on the left, got %q", string(g[:]))
	}
}

func TestOverlayFor(t *testing.T) {
	tests := []struct {
		name    string
		state   game.State
		started bool
		want    Overlay
		shown   bool
	}{
		{"fresh", game.State{}, false, Overlay{"SNAKE", "START"}, true},
		{"paused", game.State{}, true, Overlay{"SNAKE", "RESUME"}, true},
		{"running", game.State{IsPlaying: true}, true, Overlay{}, false},
		{"over", game.State{IsGameOver: true}, true, Overlay{"GAME OVER", "NEW GAME"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, shown := OverlayFor(tt.state, tt.started)
			if got != tt.want || shown != tt.shown {
				t.Errorf("Expected (%+v, %v), got (%+v, %v)", tt.want, tt.shown, got, shown)
			}
		})
	}
}

func TestBeatenBest(t *testing.T) {
	if BeatenBest(game.State{Score: 0, BestScore: 0}) {
		t.Error("Expected a zero score not to count as a record")
	}
	if !BeatenBest(game.State{Score: 7, BestScore: 7}) {
		t.Error("Expected equalling the record to count")
	}
	if BeatenBest(game.State{Score: 3, BestScore: 7}) {
		t.Error("Expected lower score not to count")
	}
}

func TestFit(t *testing.T) {
	l := Fit(800, 600, 30, 10)

	if l.Cell != 19 {
		t.Errorf("Expected 19px cells, got %d", l.Cell)
	}
	if l.Size() != 570 {
		t.Errorf("Expected board of 570px, got %d", l.Size())
	}
	if l.OffsetX != 115 || l.OffsetY != 15 {
		t.Errorf("Expected centred offsets (115,15), got (%d,%d)", l.OffsetX, l.OffsetY)
	}

	x, y := l.Origin(types.Position{X: 1, Y: 2})
	if x != 134 || y != 53 {
		t.Errorf("Expected origin (134,53), got (%d,%d)", x, y)
	}
	if !l.Contains(115, 15) || l.Contains(114, 15) || l.Contains(685, 100) {
		t.Error("Contains reported the wrong edges")
	}

	tiny := Fit(10, 10, 30, 10)
	if tiny.Cell != 1 {
		t.Errorf("Expected minimum 1px cells, got %d", tiny.Cell)
	}
}

func TestColors(t *testing.T) {
	if SegmentColor(0) != HeadColor || SegmentColor(1) != DarkColor || SegmentColor(2) != LightColor {
		t.Error("Unexpected segment palette")
	}
	if FruitColor("🍎") == FruitColor("🍏") {
		t.Error("Expected distinct fruit colours")
	}
	if FruitColor("?") != Record {
		t.Error("Expected fallback colour for unknown glyph")
	}
}
