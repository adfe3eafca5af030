// SPDX-License-Identifier: MIT
// Package matutil: sentinel error set.
// This file defines ONLY package-level sentinel errors used across matutil.
// All helpers return these sentinels and tests check them via errors.Is.
// Context is added at call sites with fmt.Errorf("...: %w", ErrX).

package matutil

import "errors"

var (
	// ErrNilMatrix indicates that a nil matrix was passed where a value is
	// required.
	ErrNilMatrix = errors.New("matutil: nil matrix")

	// ErrNilSource indicates that a nil random source was passed to a
	// resampling helper.
	ErrNilSource = errors.New("matutil: nil random source")

	// ErrDimensionMismatch indicates incompatible dimensions between a matrix
	// and a companion vector (means, scales) or between two matrices.
	ErrDimensionMismatch = errors.New("matutil: dimension mismatch")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	ErrOutOfRange = errors.New("matutil: index out of range")

	// ErrZeroScale indicates a zero normalization scale; dividing a column by
	// it would produce non-finite values.
	ErrZeroScale = errors.New("matutil: zero normalization scale")

	// ErrIO indicates an unreadable or unwritable persistence path, including
	// a missing parent directory or a corrupt on-disk blob.
	ErrIO = errors.New("matutil: i/o failure")
)
