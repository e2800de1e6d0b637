// Package utils implements generic helper functions shared across the
// module.
package utils

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// FloorDiv returns the floored quotient x/y for y > 0, unlike Go's
// built-in division, which truncates toward zero.
func FloorDiv[T constraints.Signed](x, y T) T {
	q := x / y
	if x%y != 0 && (x < 0) != (y < 0) {
		q--
	}
	return q
}
