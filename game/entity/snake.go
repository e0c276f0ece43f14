package entity

import (
	"gridsnake/game/types"
)

// Radius is the rounding applied to a segment's corners when drawn.
// The zero value is a uniform radius of 0.
type Radius struct {
	TL, TR, BR, BL float64
	perCorner      bool
}

// UniformRadius rounds all four corners by r
func UniformRadius(r float64) Radius {
	return Radius{TL: r, TR: r, BR: r, BL: r}
}

// CornerRadius sets each corner independently
func CornerRadius(tl, tr, br, bl float64) Radius {
	return Radius{TL: tl, TR: tr, BR: br, BL: bl, perCorner: true}
}

// PerCorner reports whether the radii were set independently
func (r Radius) PerCorner() bool {
	return r.perCorner
}

// Scale returns the radius resized by f, e.g. from board pixels to screen pixels
func (r Radius) Scale(f float64) Radius {
	return Radius{TL: r.TL * f, TR: r.TR * f, BR: r.BR * f, BL: r.BL * f, perCorner: r.perCorner}
}

// Block is one body segment
type Block struct {
	types.Position
	Direction types.Direction
	IsCorner  bool
	Radius    Radius
}

// NewBlock returns a straight segment at (x, y)
func NewBlock(x, y int, d types.Direction) Block {
	return Block{Position: types.Position{X: x, Y: y}, Direction: d}
}

type turn struct {
	in, out types.Direction
}

const (
	cornerTL = iota
	cornerTR
	cornerBR
	cornerBL
)

// Which corner gets rounded for each (incoming, outgoing) heading pair
var turnCorners = map[turn]int{
	{types.Up, types.Right}:   cornerTL,
	{types.Left, types.Down}:  cornerTL,
	{types.Right, types.Down}: cornerTR,
	{types.Up, types.Left}:    cornerTR,
	{types.Down, types.Left}:  cornerBR,
	{types.Right, types.Up}:   cornerBR,
	{types.Left, types.Up}:    cornerBL,
	{types.Down, types.Right}: cornerBL,
}

func turnRadius(in, out types.Direction, cell int) Radius {
	var r [4]float64
	if c, ok := turnCorners[turn{in, out}]; ok {
		r[c] = float64(cell) / 2
	}
	return CornerRadius(r[cornerTL], r[cornerTR], r[cornerBR], r[cornerBL])
}

// Advance moves a copy of block one cell towards direction, wrapping at the board edges.
// When direction differs from the block's heading the result is marked as a corner.
func Advance(direction types.Direction, block Block, sizes types.Sizes) Block {
	delta := direction.Delta()
	next := Block{
		Position: sizes.Wrap(types.Position{
			X: block.X + delta.X,
			Y: block.Y + delta.Y,
		}),
		Direction: direction,
	}

	if block.Direction != direction {
		next.IsCorner = true
		next.Radius = turnRadius(block.Direction, direction, sizes.Cell)
	}

	return next
}

// Trail returns the cell directly behind block, keeping its heading
func Trail(block Block, sizes types.Sizes) Block {
	behind := Advance(types.Opposite(block.Direction), block, sizes)
	return Block{Position: behind.Position, Direction: block.Direction}
}

// Body is an ordered run of segments, head first
type Body []Block

// Head returns the first segment
func (b Body) Head() Block {
	return b[0]
}

// Tail returns the last segment
func (b Body) Tail() Block {
	return b[len(b)-1]
}

// Occupies reports whether any segment sits on p
func (b Body) Occupies(p types.Position) bool {
	for _, block := range b {
		if block.Position == p {
			return true
		}
	}
	return false
}

// Clone returns an independent copy
func (b Body) Clone() Body {
	out := make(Body, len(b))
	copy(out, b)
	return out
}

// Move prepends head and drops the last segment
func (b Body) Move(head Block) Body {
	out := make(Body, 0, len(b)+1)
	out = append(out, head)
	if len(b) > 0 {
		out = append(out, b[:len(b)-1]...)
	}
	return out
}

// Grow appends a segment behind the tail
func (b Body) Grow(sizes types.Sizes) Body {
	out := make(Body, len(b), len(b)+1)
	copy(out, b)
	return append(out, Trail(b.Tail(), sizes))
}
