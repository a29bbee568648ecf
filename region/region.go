package region

import (
	"cmp"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
)

// DigitSum returns the sum of the decimal digits of |n|.
// Complexity: O(log10 |n|).
func DigitSum(n int) int {
	u := uint(n)
	if n < 0 {
		u = -u // two's complement; also correct for math.MinInt
	}
	sum := 0
	for ; u > 0; u /= 10 {
		sum += int(u % 10)
	}

	return sum
}

// Enterable reports whether p may be entered under threshold.
func Enterable(p grid.Point, threshold int) bool {
	return DigitSum(p.Row)+DigitSum(p.Col) <= threshold
}

// filler encapsulates state during one flood fill. visited is keyed by
// point, so memory follows the reachable area, not rows×cols.
type filler struct {
	shape     grid.Shape
	threshold int
	opts      Options
	visited   map[grid.Point]struct{}
	reached   []grid.Point // only when collecting
	count     int
}

// Count returns the number of distinct cells reachable from the origin
// through enterable cells of a rows×cols grid.
// Zero rows or columns, a negative threshold and a non-enterable origin
// all yield 0. Returns ErrInvalidInput for negative dimensions or an origin
// outside the grid. Any non-negative dimensions are accepted, up to math.MaxInt.
func Count(rows, cols, threshold int, opts ...Option) (int, error) {
	f, err := fill(rows, cols, threshold, false, opts)
	if err != nil || f == nil {
		return 0, err
	}

	return f.count, nil
}

// Reachable returns the cells counted by Count, sorted in row-major order.
// The result is empty, not nil, when nothing is reachable.
func Reachable(rows, cols, threshold int, opts ...Option) ([]grid.Point, error) {
	f, err := fill(rows, cols, threshold, true, opts)
	if err != nil {
		return nil, err
	}
	if f == nil {
		return []grid.Point{}, nil
	}

	slices.SortFunc(f.reached, func(a, b grid.Point) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})

	return f.reached, nil
}

// fill validates input and runs the flood fill. A nil filler with a nil
// error means the region is empty without any traversal.
func fill(rows, cols, threshold int, collect bool, opts []Option) (*filler, error) {
	shape, err := grid.NewShape(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	if shape.Empty() {
		return nil, nil
	}
	if !shape.InBounds(o.Origin) {
		return nil, fmt.Errorf("%w: origin (%d,%d) in %dx%d: %w",
			ErrInvalidInput, o.Origin.Row, o.Origin.Col, rows, cols, grid.ErrOutOfBounds)
	}
	if !Enterable(o.Origin, threshold) {
		return nil, nil
	}

	f := &filler{
		shape:     shape,
		threshold: threshold,
		opts:      o,
		visited:   make(map[grid.Point]struct{}, 64),
	}
	if collect {
		f.reached = make([]grid.Point, 0, 64)
	}
	if err = f.run(); err != nil {
		return nil, err
	}
	o.Logger.Debug("region: filled",
		zap.Int("rows", rows),
		zap.Int("cols", cols),
		zap.Int("threshold", threshold),
		zap.Stringer("conn", o.Conn),
		zap.Int("count", f.count))

	return f, nil
}

// run is an iterative depth-first flood fill from the origin. Cells are
// marked when pushed, so each is pushed and counted at most once.
func (f *filler) run() error {
	f.visited[f.opts.Origin] = struct{}{}
	stack := []grid.Point{f.opts.Origin}
	var nbs []grid.Point

	for len(stack) > 0 {
		select {
		case <-f.opts.Ctx.Done():
			return fmt.Errorf("region: fill aborted: %w", f.opts.Ctx.Err())
		default:
		}

		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		f.count++
		if f.reached != nil {
			f.reached = append(f.reached, p)
		}

		nbs = f.shape.AppendNeighbors(nbs[:0], p, f.opts.Conn)
		for _, q := range nbs {
			if _, seen := f.visited[q]; seen || !Enterable(q, f.threshold) {
				continue
			}
			f.visited[q] = struct{}{}
			stack = append(stack, q)
		}
	}

	return nil
}
