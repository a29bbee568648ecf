package grid

// Spiral returns the cells in clockwise spiral order, starting at the
// top-left corner and moving right, then down, left and up, one ring at a
// time toward the center.
// An empty grid yields an empty, non-nil slice.
// Complexity: O(R×C) time and memory.
func (g *Grid[T]) Spiral() []T {
	out := make([]T, 0, len(g.cells))
	if len(g.cells) == 0 {
		return out
	}

	top, bottom := 0, g.rows-1
	left, right := 0, g.cols-1
	for top <= bottom && left <= right {
		for c := left; c <= right; c++ {
			out = append(out, g.cells[top*g.cols+c])
		}
		for r := top + 1; r <= bottom; r++ {
			out = append(out, g.cells[r*g.cols+right])
		}
		// single row or column left: the return legs would revisit it
		if top < bottom && left < right {
			for c := right - 1; c >= left; c-- {
				out = append(out, g.cells[bottom*g.cols+c])
			}
			for r := bottom - 1; r > top; r-- {
				out = append(out, g.cells[r*g.cols+left])
			}
		}
		top++
		bottom--
		left++
		right--
	}

	return out
}
