// Package checked provides int64 arithmetic for path lengths.
//
// math.MaxInt64 is reserved module-wide as the "unreachable" sentinel, so a
// finite sum may never land on it. Add and Sub report ok == false both on
// wrap-around and when the result equals the sentinel.
package checked

import (
	"errors"
	"math"
)

// ErrOverflow is shared by every package that accumulates path lengths, so
// errors.Is matches it regardless of which stage overflowed.
var ErrOverflow = errors.New("path length overflows int64")

// Unreachable is the sentinel distance for "no path".
const Unreachable int64 = math.MaxInt64

// Add returns a+b and whether it is a valid finite distance.
func Add(a, b int64) (int64, bool) {
	s := a + b
	if (b > 0 && s < a) || (b < 0 && s > a) {
		return 0, false
	}

	return s, s != Unreachable
}

// Sub returns a-b and whether it is a valid finite distance.
func Sub(a, b int64) (int64, bool) {
	d := a - b
	if (b < 0 && d < a) || (b > 0 && d > a) {
		return 0, false
	}

	return d, d != Unreachable
}
