package entity

import (
	"testing"

	"gridsnake/game/types"
)

var allDirections = []types.Direction{types.Up, types.Right, types.Down, types.Left}

func TestAdvanceRoundTrip(t *testing.T) {
	sizes := types.DefaultSizes()
	// Away from the edges the opposite move restores the position.
	// At an edge the far-edge wrap is not inverted by the near-edge wrap when
	// the cell size does not divide the board.
	for _, d := range allDirections {
		start := NewBlock(10, 10, d)
		back := Advance(types.Opposite(d), Advance(d, start, sizes), sizes)
		if back.Position != start.Position {
			t.Errorf("Expected round trip %v to return to %v, got %v", d, start.Position, back.Position)
		}
	}
}

func TestAdvanceStraight(t *testing.T) {
	sizes := types.DefaultSizes()
	got := Advance(types.Right, NewBlock(5, 1, types.Right), sizes)

	if got.X != 6 || got.Y != 1 {
		t.Errorf("Expected (6,1), got (%d,%d)", got.X, got.Y)
	}
	if got.Direction != types.Right {
		t.Errorf("Expected heading right, got %v", got.Direction)
	}
	if got.IsCorner {
		t.Error("Expected a straight move not to be a corner")
	}
	if got.Radius != (Radius{}) {
		t.Errorf("Expected zero radius, got %+v", got.Radius)
	}
}

func TestAdvanceWraps(t *testing.T) {
	sizes := types.DefaultSizes()
	n := sizes.Cells()

	tests := []struct {
		name string
		from Block
		dir  types.Direction
		want types.Position
	}{
		{"right edge", NewBlock(n-1, 4, types.Right), types.Right, types.Position{X: 0, Y: 4}},
		{"left edge", NewBlock(0, 4, types.Left), types.Left, types.Position{X: n - 1, Y: 4}},
		{"top edge", NewBlock(7, 0, types.Up), types.Up, types.Position{X: 7, Y: n - 1}},
		{"bottom edge", NewBlock(7, n-1, types.Down), types.Down, types.Position{X: 7, Y: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Advance(tt.dir, tt.from, sizes)
			if got.Position != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got.Position)
			}
		})
	}
}

func TestAdvanceCornerTable(t *testing.T) {
	sizes := types.DefaultSizes()
	half := float64(sizes.Cell) / 2

	tests := []struct {
		in, out types.Direction
		want    Radius
	}{
		{types.Up, types.Right, CornerRadius(half, 0, 0, 0)},
		{types.Left, types.Down, CornerRadius(half, 0, 0, 0)},
		{types.Right, types.Down, CornerRadius(0, half, 0, 0)},
		{types.Up, types.Left, CornerRadius(0, half, 0, 0)},
		{types.Down, types.Left, CornerRadius(0, 0, half, 0)},
		{types.Right, types.Up, CornerRadius(0, 0, half, 0)},
		{types.Left, types.Up, CornerRadius(0, 0, 0, half)},
		{types.Down, types.Right, CornerRadius(0, 0, 0, half)},
	}

	for _, tt := range tests {
		t.Run(tt.in.String()+"-"+tt.out.String(), func(t *testing.T) {
			got := Advance(tt.out, NewBlock(10, 10, tt.in), sizes)
			if !got.IsCorner {
				t.Fatal("Expected turn to be flagged as corner")
			}
			if !got.Radius.PerCorner() {
				t.Error("Expected per-corner radii")
			}
			if got.Radius != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, got.Radius)
			}
		})
	}
}

func TestAdvanceDoesNotMutateInput(t *testing.T) {
	sizes := types.DefaultSizes()
	start := NewBlock(3, 3, types.Up)
	saved := start

	_ = Advance(types.Right, start, sizes)

	if start != saved {
		t.Errorf("Expected input block untouched, got %+v", start)
	}
}

func TestTrailKeepsHeading(t *testing.T) {
	sizes := types.DefaultSizes()
	got := Trail(NewBlock(3, 1, types.Right), sizes)

	if got.X != 2 || got.Y != 1 {
		t.Errorf("Expected (2,1), got (%d,%d)", got.X, got.Y)
	}
	if got.Direction != types.Right {
		t.Errorf("Expected heading right, got %v", got.Direction)
	}
	if got.IsCorner {
		t.Error("Expected trail segment not to be a corner")
	}
}

func TestBodyMoveAndGrow(t *testing.T) {
	sizes := types.DefaultSizes()
	body := Body{
		NewBlock(5, 1, types.Right),
		NewBlock(4, 1, types.Right),
		NewBlock(3, 1, types.Right),
	}

	moved := body.Move(Advance(types.Right, body.Head(), sizes))
	if len(moved) != 3 {
		t.Fatalf("Expected length 3, got %d", len(moved))
	}
	if moved.Head().X != 6 || moved.Tail().X != 4 {
		t.Errorf("Expected head x=6 tail x=4, got %d and %d", moved.Head().X, moved.Tail().X)
	}
	if body.Head().X != 5 {
		t.Error("Expected Move to leave the original body untouched")
	}

	grown := moved.Grow(sizes)
	if len(grown) != 4 {
		t.Fatalf("Expected length 4, got %d", len(grown))
	}
	if grown.Tail().Position != (types.Position{X: 3, Y: 1}) {
		t.Errorf("Expected new tail at (3,1), got %v", grown.Tail().Position)
	}
	if !grown.Occupies(types.Position{X: 6, Y: 1}) || grown.Occupies(types.Position{X: 7, Y: 1}) {
		t.Error("Occupies reported the wrong cells")
	}
}
