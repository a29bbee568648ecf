package grid

import (
	"fmt"
	"math"
)

// New constructs a Grid from a rectangular 2D slice.
// It deep-copies the input so later changes to cells never reach the Grid,
// and the Grid never writes back to cells.
// Zero rows yields a 0×0 grid. Returns ErrNonRectangular if any row length
// differs from the first.
// Complexity: O(R×C) time and memory.
func New[T comparable](cells [][]T) (*Grid[T], error) {
	if len(cells) == 0 {
		return &Grid[T]{}, nil
	}
	h, w := len(cells), len(cells[0])
	for y, row := range cells {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
	}
	flat := make([]T, 0, h*w)
	for _, row := range cells {
		flat = append(flat, row...)
	}

	return &Grid[T]{rows: h, cols: w, cells: flat}, nil
}

// NewSized constructs a rows×cols Grid of zero values. It suits algorithms
// that only need coordinates; Grid[struct{}] allocates no cell storage.
// Returns ErrNegativeSize if either dimension is negative and ErrTooLarge
// if rows×cols overflows int. Use Shape for boards too large to allocate.
func NewSized[T comparable](rows, cols int) (*Grid[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrNegativeSize, rows, cols)
	}
	if cols > 0 && rows > math.MaxInt/cols {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, rows, cols)
	}

	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

// Rows reports the number of rows.
func (g *Grid[T]) Rows() int { return g.rows }

// Cols reports the number of columns.
func (g *Grid[T]) Cols() int { return g.cols }

// Len reports the number of cells (Rows×Cols).
func (g *Grid[T]) Len() int { return len(g.cells) }

// Shape returns the storage-free bounds of the grid.
func (g *Grid[T]) Shape() Shape { return Shape{Rows: g.rows, Cols: g.cols} }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return g.Shape().InBounds(p)
}

// At returns the cell at p, or ErrOutOfBounds.
func (g *Grid[T]) At(p Point) (T, error) {
	if !g.InBounds(p) {
		var zero T
		return zero, fmt.Errorf("%w: (%d,%d) in %dx%d", ErrOutOfBounds, p.Row, p.Col, g.rows, g.cols)
	}

	return g.cells[g.Index(p)], nil
}

// Index maps p to a row-major index: Row*Cols + Col.
// p must be in bounds.
// Complexity: O(1).
func (g *Grid[T]) Index(p Point) int {
	return p.Row*g.cols + p.Col
}

// Point converts a row-major index back to (Row, Col).
// Complexity: O(1).
func (g *Grid[T]) Point(idx int) Point {
	if g.cols == 0 {
		return Point{}
	}

	return Point{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the in-bounds neighbors of p under conn,
// in the order given by Offsets(conn).
// Complexity: O(d).
func (g *Grid[T]) Neighbors(p Point, conn Connectivity) []Point {
	return g.Shape().AppendNeighbors(nil, p, conn)
}

// Rows2D returns a fresh [][]T copy of the grid contents.
func (g *Grid[T]) Rows2D() [][]T {
	out := make([][]T, g.rows)
	for y := range out {
		out[y] = make([]T, g.cols)
		copy(out[y], g.cells[y*g.cols:(y+1)*g.cols])
	}

	return out
}
