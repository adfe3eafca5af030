// Package eigen wraps two interchangeable symmetric eigen-decomposition
// strategies behind one contract: given a symmetric matrix, return eigenpairs
// sorted by descending eigenvalue, each eigenvalue expressed as a fraction of
// the total trace ("energy fraction"), each eigenvector sign-normalized so
// results are reproducible across runs, solvers and persisted round-trips.
//
// Strategies:
//
//   - SolverStandard      — gonum's symmetric eigen-solver (tridiagonal
//     reduction + implicit QR iteration).
//   - SolverDivideConquer — routes through the singular value decomposition
//     of the symmetric input, the faster path for larger matrices. For a
//     symmetric positive semi-definite matrix the SVD coincides with the
//     eigen-decomposition.
//
// Both strategies produce numerically equivalent results for the same input;
// the test suite asserts this equivalence. Degenerate (duplicate) eigenvalues
// only guarantee the span of the matching eigenvectors, not their individual
// identity — the two solvers may pick different bases for such a subspace.
//
// Errors (sentinel):
//
//	– ErrNilMatrix           if the input matrix is nil.
//	– ErrNonSquare           if the input matrix is not square.
//	– ErrUnsupportedSolver   if the solver selector is unknown.
//	– ErrDecompositionFailed if the underlying factorization does not converge.
package eigen
