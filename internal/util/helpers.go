package util

import "cmp"

// Clamp bounds value to [lo, hi]. If lo > hi, hi wins.
func Clamp[T cmp.Ordered](value, lo, hi T) T {
	return min(max(value, lo), hi)
}
