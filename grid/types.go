package grid

import (
	"errors"
)

// Sentinel errors for grid operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeSize indicates a negative row or column count.
	ErrNegativeSize = errors.New("grid: dimensions must be non-negative")
	// ErrTooLarge indicates a cell count that does not fit in an int.
	ErrTooLarge = errors.New("grid: dimensions overflow cell count")
	// ErrOutOfBounds indicates a point outside the grid boundaries.
	ErrOutOfBounds = errors.New("grid: point out of bounds")
)

// Connectivity selects the neighbor set and the order it is walked in.
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity in the order: up, right, down, left.
	Conn4 Connectivity = iota
	// ConnForward expands only right and down, in that order.
	ConnForward
)

// String returns a short name for the connectivity, used in log fields.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case ConnForward:
		return "forward"
	default:
		return "unknown"
	}
}

// Point addresses a single cell by row and column.
type Point struct {
	Row, Col int
}

// Add returns p shifted by d.
func (p Point) Add(d Point) Point {
	return Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

var (
	conn4Offsets       = []Point{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	connForwardOffsets = []Point{{0, 1}, {1, 0}}
)

// Offsets returns the neighbor deltas for conn in traversal order.
// Unknown values fall back to Conn4.
// The returned slice is shared; callers must not modify it.
func Offsets(conn Connectivity) []Point {
	if conn == ConnForward {
		return connForwardOffsets
	}

	return conn4Offsets
}

// Grid is an immutable rectangular board of comparable cells.
// cells holds the deep-copied input in row-major order.
type Grid[T comparable] struct {
	rows, cols int
	cells      []T
}
