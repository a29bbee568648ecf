package pattern

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern indicates a '*' with no element to repeat.
var ErrInvalidPattern = errors.New("pattern: '*' must follow a rune or '.'")

const (
	anyRune = '.'
	star    = '*'
)

// Match reports whether pattern matches all of text.
// Returns ErrInvalidPattern if pattern starts with '*' or contains "**".
func Match(text, pattern string) (bool, error) {
	s, p := []rune(text), []rune(pattern)
	for j, r := range p {
		if r == star && (j == 0 || p[j-1] == star) {
			return false, fmt.Errorf("%w: position %d in %q", ErrInvalidPattern, j, pattern)
		}
	}

	n, m := len(s), len(p)
	dp := make([][]bool, n+1)
	for i := range dp {
		dp[i] = make([]bool, m+1)
	}
	dp[n][m] = true

	for i := n; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			first := i < n && (p[j] == anyRune || p[j] == s[i])
			if j+1 < m && p[j+1] == star {
				// skip "x*" entirely, or consume one rune and stay on "x*"
				dp[i][j] = dp[i][j+2] || (first && dp[i+1][j])
			} else {
				dp[i][j] = first && dp[i+1][j+1]
			}
		}
	}

	return dp[0][0], nil
}
