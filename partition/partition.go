package partition

// Integer is satisfied by every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Partition moves every element for which keep returns true to the front
// of xs and returns how many there are. xs[:k] are kept, xs[k:] are not.
func Partition[T any](xs []T, keep func(T) bool) int {
	l, r := 0, len(xs)-1
	// xs[:l] kept, xs[r+1:] rejected
	for l <= r {
		switch {
		case keep(xs[l]):
			l++
		case !keep(xs[r]):
			r--
		default:
			xs[l], xs[r] = xs[r], xs[l]
			l++
			r--
		}
	}

	return l
}

// OddsFirst moves odd values ahead of even ones in place and returns xs.
func OddsFirst[T Integer](xs []T) []T {
	Partition(xs, func(x T) bool { return x%2 != 0 })

	return xs
}
