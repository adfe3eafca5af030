package eigen

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNilMatrix indicates a nil input matrix.
	ErrNilMatrix = errors.New("eigen: nil matrix")

	// ErrNonSquare indicates that a square matrix was required.
	ErrNonSquare = errors.New("eigen: matrix is not square")

	// ErrUnsupportedSolver indicates an unknown solver selector.
	ErrUnsupportedSolver = errors.New("eigen: unsupported solver")

	// ErrDecompositionFailed indicates that the underlying factorization did
	// not converge.
	ErrDecompositionFailed = errors.New("eigen: decomposition failed to converge")
)

// Solver selects one of the two interchangeable decomposition strategies.
type Solver string

const (
	// SolverStandard is the general symmetric eigen-solver.
	SolverStandard Solver = "standard"

	// SolverDivideConquer is the faster strategy suited to larger matrices,
	// realized through the SVD of the symmetric input.
	SolverDivideConquer Solver = "divide_conquer"
)

// DefaultSolver applies when no explicit solver is configured.
const DefaultSolver = SolverDivideConquer

// ParseSolver validates name against the known solver set.
// Unrecognized names fail with ErrUnsupportedSolver.
func ParseSolver(name string) (Solver, error) {
	switch Solver(name) {
	case SolverStandard:
		return SolverStandard, nil
	case SolverDivideConquer:
		return SolverDivideConquer, nil
	default:
		return "", fmt.Errorf("%q: %w", name, ErrUnsupportedSolver)
	}
}

// Decomposition holds the result of decomposing a symmetric matrix.
type Decomposition struct {
	// Fractions holds the eigenvalues as fractions of total energy, sorted
	// descending. They are non-negative and sum to 1 (up to floating
	// tolerance) whenever Energy is non-zero.
	Fractions []float64

	// Vectors holds the eigenvectors as columns, ordered like Fractions and
	// sign-fixed via matutil.EnforcePositiveSign. Columns are unit length and
	// mutually orthogonal.
	Vectors *mat.Dense

	// Energy is the total variance captured: the sum of the unnormalized
	// eigenvalues, equal to the trace of the input matrix.
	Energy float64
}
