// SPDX-License-Identifier: MIT

// Package matutil provides the stateless numeric helpers behind the princomp
// engine: covariance construction, column centering, RMS normalization, the
// deterministic sign convention for eigenvector matrices, row/column
// extraction, bootstrap row resampling, approximate-equality predicates and
// the compressed binary serialization used by model persistence.
//
// Dense storage and matrix products are delegated to gonum/mat; matutil adds
// the strict fail-fast validation and the exact semantics the PCA pipeline
// depends on:
//
//   - Covariance expects an already centered input and never centers
//     internally: Cov = (1/(n-1))·Xᵀ·X.
//   - ColumnRMS uses the sample (n−1) divisor under the square root, not the
//     plain mean of squares. Downstream numeric expectations rely on this.
//   - EnforcePositiveSign fixes the sign ambiguity of eigenvectors: per
//     column, the entry of maximum absolute value is made positive by
//     negating the whole column if needed. Applied right after every
//     decomposition, it makes repeated solves and persisted round-trips
//     reproducible.
//   - ShuffleRowsWithReplacement draws rows uniformly with replacement from a
//     caller-supplied generator, so resampling stays deterministic for a
//     fixed seed.
//
// All functions return package-level sentinel errors (see errors.go) and
// never panic on user input.
package matutil
