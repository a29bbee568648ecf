package grid

import "fmt"

// Shape is the rows×cols bounding box of a board with no cell storage.
// Coordinate-only algorithms use it on boards far too large to allocate,
// e.g. math.MaxInt rows.
type Shape struct {
	Rows, Cols int
}

// NewShape validates the dimensions and returns a Shape.
// Returns ErrNegativeSize if either dimension is negative.
func NewShape(rows, cols int) (Shape, error) {
	if rows < 0 || cols < 0 {
		return Shape{}, fmt.Errorf("%w: %dx%d", ErrNegativeSize, rows, cols)
	}

	return Shape{Rows: rows, Cols: cols}, nil
}

// Empty reports whether the shape has no cells.
func (s Shape) Empty() bool {
	return s.Rows == 0 || s.Cols == 0
}

// InBounds reports whether p lies within the shape.
// Complexity: O(1).
func (s Shape) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Cols
}

// AppendNeighbors appends the in-bounds neighbors of p under conn to dst,
// in the order given by Offsets(conn), and returns the extended slice.
// p must be in bounds; then no step can overflow.
// Complexity: O(d).
func (s Shape) AppendNeighbors(dst []Point, p Point, conn Connectivity) []Point {
	for _, d := range Offsets(conn) {
		if q := p.Add(d); s.InBounds(q) {
			dst = append(dst, q)
		}
	}

	return dst
}
