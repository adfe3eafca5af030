// SPDX-License-Identifier: MIT
// Package matutil: dense-matrix helpers for the PCA pipeline.
// Matrix products and storage are gonum's; this file contributes validation
// and the pipeline-specific semantics (centering, RMS scaling, sign rule,
// resampling). Every in-place helper states so explicitly.

package matutil

import (
	"fmt"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Covariance returns (1/(n-1))·Xᵀ·X for an already column-centered matrix X
// with n rows. Centering (and optional normalization) must happen before the
// call; Covariance performs no internal centering.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (fewer than two rows).
// Complexity: O(n·c²).
func Covariance(centered *mat.Dense) (*mat.Dense, error) {
	if centered == nil {
		return nil, fmt.Errorf("Covariance: %w", ErrNilMatrix)
	}
	n, _ := centered.Dims()
	if n < 2 {
		return nil, fmt.Errorf("Covariance: need at least two rows, got %d: %w", n, ErrDimensionMismatch)
	}

	var cov mat.Dense
	cov.Mul(centered.T(), centered)
	cov.Scale(1/float64(n-1), &cov)

	return &cov, nil
}

// ColumnMeans returns the per-column arithmetic means of m.
func ColumnMeans(m *mat.Dense) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("ColumnMeans: %w", ErrNilMatrix)
	}
	r, c := m.Dims()

	means := make([]float64, c)
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ { // fixed i order, deterministic accumulation
			sum += m.At(i, j)
		}
		means[j] = sum / float64(r)
	}

	return means, nil
}

// RemoveColumnMeans subtracts each mean from its column, in place.
// len(means) must equal the column count of m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func RemoveColumnMeans(m *mat.Dense, means []float64) error {
	if m == nil {
		return fmt.Errorf("RemoveColumnMeans: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if len(means) != c {
		return fmt.Errorf("RemoveColumnMeans: %d means for %d columns: %w", len(means), c, ErrDimensionMismatch)
	}

	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			m.Set(i, j, m.At(i, j)-means[j])
		}
	}

	return nil
}

// ColumnRMS returns the per-column root-mean-square of m, computed with the
// sample (n−1) divisor: sqrt(Σᵢ m[i,j]² / (n−1)). No centering is implied;
// callers center first when they need deviation scales.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (fewer than two rows).
func ColumnRMS(m *mat.Dense) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("ColumnRMS: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if r < 2 {
		return nil, fmt.Errorf("ColumnRMS: need at least two rows, got %d: %w", r, ErrDimensionMismatch)
	}

	rms := make([]float64, c)
	for j := 0; j < c; j++ {
		sum := 0.0
		for i := 0; i < r; i++ {
			v := m.At(i, j)
			sum += v * v
		}
		rms[j] = math.Sqrt(sum / float64(r-1))
	}

	return rms, nil
}

// NormalizeByColumn divides each column of m by its scale, in place.
// len(scales) must equal the column count; every scale must be non-zero.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrZeroScale.
func NormalizeByColumn(m *mat.Dense, scales []float64) error {
	if m == nil {
		return fmt.Errorf("NormalizeByColumn: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if len(scales) != c {
		return fmt.Errorf("NormalizeByColumn: %d scales for %d columns: %w", len(scales), c, ErrDimensionMismatch)
	}
	for j, s := range scales {
		if s == 0 {
			return fmt.Errorf("NormalizeByColumn: column %d: %w", j, ErrZeroScale)
		}
	}

	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			m.Set(i, j, m.At(i, j)/scales[j])
		}
	}

	return nil
}

// EnforcePositiveSign applies the deterministic sign convention to m, in
// place: per column, locate the entry of maximum absolute value; if that
// entry is negative, negate the entire column. Decomposition routines return
// eigenvectors up to an arbitrary sign; this rule makes repeated solves,
// solver comparisons and persisted round-trips reproducible.
//
// Ties resolve to the lowest row index (strict > comparison while scanning).
func EnforcePositiveSign(m *mat.Dense) error {
	if m == nil {
		return fmt.Errorf("EnforcePositiveSign: %w", ErrNilMatrix)
	}
	r, c := m.Dims()

	for j := 0; j < c; j++ {
		pivot := 0
		for i := 1; i < r; i++ {
			if math.Abs(m.At(i, j)) > math.Abs(m.At(pivot, j)) {
				pivot = i
			}
		}
		if r > 0 && m.At(pivot, j) < 0 {
			for i := 0; i < r; i++ {
				m.Set(i, j, -m.At(i, j))
			}
		}
	}

	return nil
}

// ExtractColumn returns a copy of column index of m.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func ExtractColumn(m *mat.Dense, index int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("ExtractColumn: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if index < 0 || index >= c {
		return nil, fmt.Errorf("ExtractColumn: column %d of %d: %w", index, c, ErrOutOfRange)
	}

	col := make([]float64, r)
	mat.Col(col, index, m)

	return col, nil
}

// ExtractRow returns a copy of row index of m.
//
// Errors: ErrNilMatrix, ErrOutOfRange.
func ExtractRow(m *mat.Dense, index int) ([]float64, error) {
	if m == nil {
		return nil, fmt.Errorf("ExtractRow: %w", ErrNilMatrix)
	}
	r, c := m.Dims()
	if index < 0 || index >= r {
		return nil, fmt.Errorf("ExtractRow: row %d of %d: %w", index, r, ErrOutOfRange)
	}

	row := make([]float64, c)
	mat.Row(row, index, m)

	return row, nil
}

// ShuffleRowsWithReplacement returns a new matrix with the same shape as m,
// each row drawn uniformly at random (with replacement) from the rows of m
// using the supplied generator. The input is never mutated. For a fixed
// generator state the draw sequence — and hence the result — is fully
// deterministic.
//
// Errors: ErrNilMatrix, ErrNilSource.
func ShuffleRowsWithReplacement(m *mat.Dense, rng *rand.Rand) (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("ShuffleRowsWithReplacement: %w", ErrNilMatrix)
	}
	if rng == nil {
		return nil, fmt.Errorf("ShuffleRowsWithReplacement: %w", ErrNilSource)
	}
	r, c := m.Dims()

	out := mat.NewDense(r, c, nil)
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat.Row(row, rng.IntN(r), m)
		out.SetRow(i, row)
	}

	return out, nil
}

// Mean returns the arithmetic mean of xs, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// Sigma returns the sample standard deviation of xs (n−1 divisor), or 0 for
// fewer than two values. The usual summary statistic over the raw bootstrap
// distributions.
func Sigma(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	mean := Mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - mean
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(xs)-1))
}
