// Package grid treats a rectangular 2D slice of cells as a small, immutable
// board with row/column coordinates and fixed neighbor orders.
//
// What:
//
//   - Grid[T] wraps a rectangular [][]T, deep-copied on construction.
//   - Point addresses a cell by (Row, Col); Index/Point convert to and from
//     a row-major index.
//   - Neighbors yields in-bounds neighbors under Conn4 (up, right, down, left)
//     or ConnForward (right, down).
//   - Spiral lists cells clockwise from the top-left corner, ring by ring.
//   - Shape is the same bounds logic with no storage; region floods it via
//     AppendNeighbors on boards of any int size.
//
// Neighbors and Rows2D are public helpers for callers. wordsearch walks
// Offsets directly instead, because its stack frames resume at a direction
// index rather than a precomputed neighbor list.
//
// Why:
//
//   - Word puzzles: trace adjacent letters without reusing a cell.
//   - Reachability: flood fills over coordinates with an admissibility predicate.
//   - Board printing: spiral and row-major walks over the same storage.
//
// Complexity:
//
//   - New:       O(R×C) time and memory (deep copy).
//   - NewSized:  O(R×C), or O(1) memory for zero-size cell types.
//   - At/InBounds/Index/Point: O(1).
//   - Neighbors: O(d), d = 4 or 2.
//   - Spiral:    O(R×C) time and memory.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeSize:   NewSized or NewShape got a negative dimension.
//   - ErrTooLarge:       NewSized dimensions overflow the cell count.
//   - ErrOutOfBounds:    a point lies outside the grid.
//
// An empty input (zero rows) is a valid 0×0 grid; algorithms decide what
// an empty board means for them.
package grid
