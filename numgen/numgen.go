package numgen

import (
	"errors"
	"fmt"
)

const (
	// MaxDigits bounds the buffer used by Walk.
	MaxDigits = 18
	// MaxEnumerate bounds Enumerate, whose result holds 10^n-1 strings.
	MaxEnumerate = 7
)

// ErrDigits is returned for a digit count outside the accepted range.
var ErrDigits = errors.New("numgen: digit count out of range")

// Walk calls fn with each of "1" through 10^n-1 in ascending order, until
// fn returns false. n == 0 visits nothing.
func Walk(n int, fn func(string) bool) error {
	if n < 0 || n > MaxDigits {
		return fmt.Errorf("%w: %d not in [0,%d]", ErrDigits, n, MaxDigits)
	}
	if n == 0 {
		return nil
	}

	buf := make([]byte, n)
	var fill func(pos int) bool
	fill = func(pos int) bool {
		if pos == n {
			i := 0
			for i < n && buf[i] == '0' {
				i++
			}
			if i == n {
				return true
			}
			return fn(string(buf[i:]))
		}
		for d := byte('0'); d <= '9'; d++ {
			buf[pos] = d
			if !fill(pos + 1) {
				return false
			}
		}

		return true
	}
	fill(0)

	return nil
}

// Enumerate returns "1" through 10^n-1 in ascending order.
// The result is empty, not nil, for n == 0.
func Enumerate(n int) ([]string, error) {
	if n < 0 || n > MaxEnumerate {
		return nil, fmt.Errorf("%w: %d not in [0,%d]", ErrDigits, n, MaxEnumerate)
	}

	size := 1
	for i := 0; i < n; i++ {
		size *= 10
	}
	out := make([]string, 0, size-1)
	err := Walk(n, func(s string) bool {
		out = append(out, s)
		return true
	})

	return out, err
}
