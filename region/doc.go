// Package region counts the cells of an R×C coordinate grid reachable from
// an origin when a cell may only be entered if the digit sums of its row and
// column add up to at most a threshold.
//
// What:
//
//   - DigitSum(n):  sum of the decimal digits of |n|.
//   - Enterable(p, k): DigitSum(p.Row)+DigitSum(p.Col) <= k.
//   - Count(rows, cols, k, opts...):     size of the reachable set.
//   - Reachable(rows, cols, k, opts...): the reachable set, row-major.
//
// Why:
//
//   - Robot-movement style exercises: how many squares can a robot reach
//     without stepping on a cell whose coordinates are "too heavy".
//   - A template for any flood fill with a per-cell admissibility predicate.
//
// Expansion:
//
// By default the flood fill only moves right and down (grid.ConnForward).
// Inside each 10×10 block the enterable cells form a staircase anchored at
// the block's top-left corner, so from (0,0) every cell reachable with four
// directions is also reachable by a monotone right/down path. The package
// tests check this against grid.Conn4 for grids up to 100×100.
// WithConnectivity(grid.Conn4) selects the full neighbor set, e.g. for
// origins other than (0,0).
//
// Complexity:
//
//   - Time:   O(N), N = reachable cells; each cell is pushed at most once.
//   - Memory: O(N) for the visited set and the stack. Nothing is sized by
//     R×C, so any non-negative dimensions work, including math.MaxInt.
//
// Options:
//
//   - WithOrigin(p)          start cell; default (0,0).
//   - WithConnectivity(c)    grid.ConnForward (default) or grid.Conn4.
//   - WithContext(ctx)       aborts a fill when ctx is done.
//   - WithLogger(l)          receives Debug events; default no-op.
//
// Errors:
//
//   - ErrInvalidInput  negative rows or cols (wraps grid.ErrNegativeSize), or
//     an origin outside the grid (wraps grid.ErrOutOfBounds).
//
// A negative threshold is not an error: no cell is enterable and the count is 0.
package region
