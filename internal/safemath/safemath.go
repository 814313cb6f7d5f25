// Package safemath provides integer arithmetic that reports overflow instead
// of wrapping.
package safemath

import (
	"errors"
	"math/bits"
)

var ErrOverflow = errors.New("number overflow")

type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

func signed[T Integer]() bool {
	var zero T
	return ^zero < 0
}

// Add returns a+b and false if the sum overflows T.
func Add[T Integer](a, b T) (T, bool) {
	s := a + b
	if signed[T]() {
		return s, (b >= 0) == (s >= a)
	}
	return s, s >= a
}

// Sub returns a-b and false if the difference overflows T.
func Sub[T Integer](a, b T) (T, bool) {
	d := a - b
	if signed[T]() {
		return d, (b >= 0) == (d <= a)
	}
	return d, b <= a
}

// Mul returns a*b and false if the product overflows T.
func Mul[T Integer](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if signed[T]() {
		// minimum times -1 is the one case the division check misses
		var minusOne T
		minusOne = ^minusOne
		if (a == minusOne && -b == b) || (b == minusOne && -a == a) {
			return p, false
		}
	}
	return p, p/b == a
}

func Add64(a, b uint64) (uint64, bool) {
	v, carry := bits.Add64(a, b, 0)
	return v, carry == 0
}

// SaturatingAdd64 returns a+b clamped to the maximum uint64.
func SaturatingAdd64(a, b uint64) uint64 {
	v, ok := Add64(a, b)
	if !ok {
		return ^uint64(0)
	}
	return v
}
