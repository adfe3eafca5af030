// SPDX-License-Identifier: MIT
// Package matutil: exact and epsilon-tolerant equality predicates.
// Comparisons are absolute, |a-b| < eps, mirroring the engine's test
// tolerances; exact matrix equality delegates to mat.Equal.

package matutil

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

const (
	// DefaultEpsilon is the machine precision of float64, the default
	// tolerance of the element type.
	DefaultEpsilon = 2.220446049250313e-16

	// FloatEpsilon is the machine precision of float32. Numeric fixtures
	// recorded to ~8 significant digits, and the engine's self-checks,
	// compare at this coarser tolerance.
	FloatEpsilon = 1.1920928955078125e-7
)

// ApproxEqual reports whether |a-b| < eps.
func ApproxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

// ApproxEqualSlices reports whether a and b have equal length and every pair
// of elements satisfies ApproxEqual.
func ApproxEqualSlices(a, b []float64, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ApproxEqual(a[i], b[i], eps) {
			return false
		}
	}

	return true
}

// EqualSlices reports exact element-wise equality of a and b.
func EqualSlices(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// ApproxEqualDense reports whether a and b share dimensions and every pair of
// entries satisfies ApproxEqual. Two nil matrices compare equal.
func ApproxEqualDense(a, b *mat.Dense, eps float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	ar, ac := a.Dims()
	br, bc := b.Dims()
	if ar != br || ac != bc {
		return false
	}
	for i := 0; i < ar; i++ {
		for j := 0; j < ac; j++ {
			if !ApproxEqual(a.At(i, j), b.At(i, j), eps) {
				return false
			}
		}
	}

	return true
}

// EqualDense reports exact equality of a and b, treating two nils as equal.
func EqualDense(a, b *mat.Dense) bool {
	if a == nil || b == nil {
		return a == b
	}

	return mat.Equal(a, b)
}
