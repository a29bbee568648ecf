// Package wordsearch decides whether a target word can be traced through a
// character grid along a simple path of 4-adjacent cells.
//
// What:
//
//   - Exists(cells, target, opts...) reports whether any path spells target.
//   - Find(cells, target, opts...) returns the first such path as grid points.
//   - A path moves up, right, down or left and never reuses a cell.
//
// Why:
//
//   - Word puzzles (Boggle-like boards, "word search" exercises).
//   - Any sequence-matching walk over a 2D lattice with no revisits.
//
// Algorithm:
//
//  1. An empty target matches vacuously; the grid is not inspected.
//  2. The grid is validated and deep-copied via grid.New; the caller's
//     slices are never written.
//  3. Start cells equal to target[0] are tried in row-major order.
//  4. Each attempt is a depth-first walk on an explicit stack of frames
//     (cell, target index, next direction). Directions are tried in the
//     order up, right, down, left. A cell is marked when pushed and unmarked
//     when popped, so later branches and later starts may reuse it.
//
// Complexity:
//
//   - Time:   O(R×C×4^L) worst case, L = len(target) in runes.
//   - Memory: O(R×C + L) for the visited set and the frame stack.
//
// Options:
//
//   - WithContext(ctx)  aborts a long search when ctx is done.
//   - WithLogger(l)     receives Debug events; default is a no-op logger.
//
// Errors:
//
//   - ErrInvalidInput   the grid is not rectangular (wraps grid.ErrNonRectangular).
//   - ErrNotFound       Find found no path.
//   - context errors    wrapped ctx.Err() when the context is done.
//
// Calls share no state and are safe to run concurrently.
package wordsearch
