package types

// Position is a cell on the board in grid units
type Position struct {
	X, Y int
}

// Direction is a cardinal heading
type Direction int

const (
	None  Direction = iota // 0
	Up                     // 1
	Right                  // 2
	Down                   // 3
	Left                   // 4
)

var directionNames = [...]string{"none", "up", "right", "down", "left"}

func (d Direction) String() string {
	if d < None || d > Left {
		return "invalid"
	}
	return directionNames[d]
}

var opposites = map[Direction]Direction{
	Up:    Down,
	Right: Left,
	Down:  Up,
	Left:  Right,
}

// Opposite returns the reverse heading. None maps to itself.
func Opposite(d Direction) Direction {
	if o, ok := opposites[d]; ok {
		return o
	}
	return d
}

// Delta returns the one-cell displacement for a heading
func (d Direction) Delta() Position {
	switch d {
	case Up:
		return Position{X: 0, Y: -1}
	case Right:
		return Position{X: 1, Y: 0}
	case Down:
		return Position{X: 0, Y: 1}
	case Left:
		return Position{X: -1, Y: 0}
	default:
		return Position{}
	}
}

// Sizes describes the board in pixels and the edge length of one cell
type Sizes struct {
	Board int
	Cell  int
}

// Board defaults
const (
	DefaultBoardSize = 330
	DefaultCellSize  = DefaultBoardSize / 30
)

// DefaultSizes returns a 30x30 board of 11px cells
func DefaultSizes() Sizes {
	return Sizes{Board: DefaultBoardSize, Cell: DefaultCellSize}
}

// Cells is the number of cells along one edge
func (s Sizes) Cells() int {
	return s.Board / s.Cell
}

// Pixels is the upper bound used for fruit placement, keeping fruit off the outer ring
func (s Sizes) Pixels() int {
	return s.Board/s.Cell - 2
}

// WrapCoordinate folds a coordinate that left the board back onto the opposite edge.
// The cell size does not have to divide the board size, so this is an edge check
// rather than a modulo.
func WrapCoordinate(value, boardSize, cellSize int) int {
	if value < 0 {
		return boardSize/cellSize - 1
	}
	if value*cellSize >= boardSize {
		return 0
	}
	return value
}

// Wrap applies WrapCoordinate to both axes
func (s Sizes) Wrap(p Position) Position {
	return Position{
		X: WrapCoordinate(p.X, s.Board, s.Cell),
		Y: WrapCoordinate(p.Y, s.Board, s.Cell),
	}
}
