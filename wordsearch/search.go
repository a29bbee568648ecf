package wordsearch

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/gridwalk/grid"
)

// frame is one level of the simulated recursion: the cell matched for
// target[idx], and the next direction to try from it.
type frame struct {
	at      grid.Point
	idx     int
	nextDir int
}

// searcher encapsulates state during one call.
type searcher struct {
	board   *grid.Grid[rune]
	target  []rune
	opts    Options
	offsets []grid.Point
	visited []bool  // marks cells on the in-progress path only
	stack   []frame // reused across start cells
	steps   int
}

// Exists reports whether target can be traced through cells along a simple
// path of 4-adjacent cells. An empty target returns true before the grid is
// inspected; an empty grid with a non-empty target returns false.
// cells is never modified.
func Exists(cells [][]rune, target string, opts ...Option) (bool, error) {
	_, err := Find(cells, target, opts...)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// Find returns the first path spelling target, in the order defined by
// row-major start cells and up, right, down, left expansion.
// An empty target yields an empty path. Returns ErrNotFound if no path exists.
func Find(cells [][]rune, target string, opts ...Option) ([]grid.Point, error) {
	if target == "" {
		return []grid.Point{}, nil
	}

	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	board, err := grid.New(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	s := &searcher{
		board:   board,
		target:  []rune(target),
		opts:    o,
		offsets: grid.Offsets(grid.Conn4),
		visited: make([]bool, board.Len()),
	}
	o.Logger.Debug("wordsearch: start",
		zap.Int("rows", board.Rows()),
		zap.Int("cols", board.Cols()),
		zap.Int("target_len", len(s.target)))

	path, err := s.run()
	if err != nil {
		return nil, err
	}
	if path == nil {
		o.Logger.Debug("wordsearch: exhausted", zap.Int("steps", s.steps))
		return nil, ErrNotFound
	}
	o.Logger.Debug("wordsearch: found",
		zap.Int("row", path[0].Row),
		zap.Int("col", path[0].Col),
		zap.Int("steps", s.steps))

	return path, nil
}

// run tries every start cell in row-major order.
func (s *searcher) run() ([]grid.Point, error) {
	// a simple path cannot be longer than the board
	if len(s.target) > s.board.Len() {
		return nil, nil
	}

	for i := 0; i < s.board.Len(); i++ {
		start := s.board.Point(i)
		if v, _ := s.board.At(start); v != s.target[0] {
			continue
		}
		path, err := s.walkFrom(start)
		if err != nil || path != nil {
			return path, err
		}
	}

	return nil, nil
}

// walkFrom runs one depth-first attempt rooted at start, which already
// matches target[0]. It returns nil when the attempt is exhausted; the
// visited set is fully cleared in that case.
func (s *searcher) walkFrom(start grid.Point) ([]grid.Point, error) {
	last := len(s.target) - 1
	s.stack = append(s.stack[:0], frame{at: start})
	s.visited[s.board.Index(start)] = true

	for len(s.stack) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return nil, fmt.Errorf("wordsearch: search aborted: %w", s.opts.Ctx.Err())
		default:
		}
		s.steps++

		top := &s.stack[len(s.stack)-1]
		if top.idx == last {
			path := make([]grid.Point, len(s.stack))
			for i, f := range s.stack {
				path[i] = f.at
			}
			s.clear()

			return path, nil
		}

		if top.nextDir >= len(s.offsets) {
			// backtrack: release the cell for other branches
			s.visited[s.board.Index(top.at)] = false
			s.stack = s.stack[:len(s.stack)-1]
			continue
		}

		next := top.at.Add(s.offsets[top.nextDir])
		top.nextDir++
		if !s.board.InBounds(next) {
			continue
		}
		ni := s.board.Index(next)
		if s.visited[ni] {
			continue
		}
		if v, _ := s.board.At(next); v != s.target[top.idx+1] {
			continue
		}
		s.visited[ni] = true
		s.stack = append(s.stack, frame{at: next, idx: top.idx + 1})
	}

	return nil, nil
}

// clear unmarks every cell still on the stack.
func (s *searcher) clear() {
	for _, f := range s.stack {
		s.visited[s.board.Index(f.at)] = false
	}
	s.stack = s.stack[:0]
}
