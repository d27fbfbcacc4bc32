// Package util contains common utility functions. This is not part of the common
// package as that is imported without namespacing.
package util

import (
	"golang.org/x/exp/constraints"
)

// Map applies f to each value of arr.
func Map[T any, U any](arr []T, f func(T) U) []U {
	result := make([]U, len(arr))
	for i, x := range arr {
		result[i] = f(x)
	}
	return result
}

// CeilDiv performs ceiling integer division of a / b.
func CeilDiv[T constraints.Integer](a, b T) T {
	return (a + b - 1) / b
}

// Clamp clamps the value in the given inclusive range.
func Clamp[T constraints.Ordered](x, lo, hi T) T {
	return min(max(x, lo), hi)
}
