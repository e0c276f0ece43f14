package types

import "testing"

func TestWrapCoordinate(t *testing.T) {
	tests := []struct {
		name  string
		value int
		board int
		cell  int
		want  int
	}{
		{"negative wraps to far edge", -1, 330, 11, 29},
		{"past far edge wraps to zero", 30, 330, 11, 0},
		{"last cell unchanged", 29, 330, 11, 29},
		{"origin unchanged", 0, 330, 11, 0},
		{"middle unchanged", 14, 330, 11, 14},
		{"uneven cell size past edge", 10, 105, 10, 0},
		{"uneven cell size last cell", 9, 105, 10, 9},
		{"uneven cell size negative", -1, 105, 10, 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapCoordinate(tt.value, tt.board, tt.cell)
			if got != tt.want {
				t.Errorf("Expected WrapCoordinate(%d, %d, %d) = %d, got %d",
					tt.value, tt.board, tt.cell, tt.want, got)
			}
		})
	}
}

func TestOppositeIsInvolution(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:    Down,
		Down:  Up,
		Left:  Right,
		Right: Left,
	}
	for d, want := range pairs {
		if got := Opposite(d); got != want {
			t.Errorf("Expected Opposite(%v) = %v, got %v", d, want, got)
		}
		if got := Opposite(Opposite(d)); got != d {
			t.Errorf("Expected Opposite(Opposite(%v)) = %v, got %v", d, d, got)
		}
	}
	if got := Opposite(None); got != None {
		t.Errorf("Expected Opposite(None) = None, got %v", got)
	}
}

func TestDeltaCancelsWithOpposite(t *testing.T) {
	for _, d := range []Direction{Up, Down, Left, Right} {
		a, b := d.Delta(), Opposite(d).Delta()
		if a.X+b.X != 0 || a.Y+b.Y != 0 {
			t.Errorf("Expected %v and its opposite to cancel, got %v + %v", d, a, b)
		}
	}
}

func TestSizes(t *testing.T) {
	s := DefaultSizes()
	if s.Cells() != 30 {
		t.Errorf("Expected 30 cells, got %d", s.Cells())
	}
	if s.Pixels() != 28 {
		t.Errorf("Expected fruit bound 28, got %d", s.Pixels())
	}

	got := s.Wrap(Position{X: -1, Y: 30})
	if got != (Position{X: 29, Y: 0}) {
		t.Errorf("Expected (29,0), got %v", got)
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Left.String() != "left" {
		t.Errorf("Unexpected names: %s %s", Up, Left)
	}
	if Direction(42).String() != "invalid" {
		t.Errorf("Expected invalid, got %s", Direction(42))
	}
}
