// Package princomp computes Principal Component Analysis over fixed-dimension
// numeric records: covariance modelling, eigen-decomposition ranked by
// explained-variance fraction, bootstrap stability estimation, and
// forward/inverse projection between variable space and principal space.
//
// 🚀 What is princomp?
//
//	A small, deterministic PCA engine built on gonum's dense linear algebra:
//		• Record store: append-only, index-addressable rows of fixed width
//		• Pipeline: center → (optional RMS normalization) → covariance →
//		  eigen-decomposition → (optional bootstrap resampling)
//		• Two interchangeable solvers behind one contract:
//		  "standard" and "divide_conquer"
//		• Self-verification: eigenvector orthogonality & projection accuracy
//		• Persistence: full model state as a family of basename+suffix files
//
// ✨ Why choose princomp?
//
//   - Reproducible by construction – deterministic eigenvector sign rule,
//     per-iteration seeded bootstrap streams, bit-stable persistence
//   - Fail-fast – sentinel errors for every misuse, no partial results
//   - Pure library – no global state, no logging, caller owns concurrency
//
// Everything is organized under four subpackages:
//
//	matutil/   — covariance, centering, normalization, sign rule, matrix I/O
//	eigen/     — the two-solver decomposition adapter
//	bootstrap/ — deterministic resampling of eigenvalue/energy distributions
//	pca/       — the model: records, Solve, projections, checks, Save/Load
//
// Quick sketch:
//
//	m, _ := pca.New(4)
//	_ = m.AddRecord([]float64{1, 2.5, 42, 7})
//	_ = m.AddRecord([]float64{3, 4.2, 90, 7})
//	_ = m.AddRecord([]float64{456, 444, 0, 7})
//	_ = m.Solve()
//	fracs, _ := m.Eigenvalues() // descending, sums to 1
//
// Dive into the examples/ directory for full walkthroughs.
package princomp
