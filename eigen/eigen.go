package eigen

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/princomp/matutil"
)

// Decompose factorizes the symmetric matrix sym with the selected solver and
// returns eigenpairs sorted by descending eigenvalue, fraction-normalized and
// sign-fixed. Symmetry of the input is a precondition (the covariance
// pipeline guarantees it); it is not re-validated here.
//
// When the trace of sym is zero (no variance at all), every fraction is 0
// rather than NaN.
func Decompose(sym *mat.Dense, solver Solver) (*Decomposition, error) {
	if sym == nil {
		return nil, fmt.Errorf("Decompose: %w", ErrNilMatrix)
	}
	r, c := sym.Dims()
	if r != c {
		return nil, fmt.Errorf("Decompose: %dx%d: %w", r, c, ErrNonSquare)
	}

	var (
		values  []float64
		vectors *mat.Dense
		err     error
	)
	switch solver {
	case SolverStandard:
		values, vectors, err = decomposeStandard(sym, r)
	case SolverDivideConquer:
		values, vectors, err = decomposeSVD(sym)
	default:
		return nil, fmt.Errorf("Decompose: %q: %w", solver, ErrUnsupportedSolver)
	}
	if err != nil {
		return nil, err
	}

	// Fixed sign convention: repeated solves and solver comparisons must
	// yield bit-identical orientations.
	if err = matutil.EnforcePositiveSign(vectors); err != nil {
		return nil, fmt.Errorf("Decompose: %w", err)
	}

	energy := floats.Sum(values)
	fractions := make([]float64, len(values))
	if energy != 0 {
		for i, v := range values {
			fractions[i] = v / energy
		}
	}

	return &Decomposition{Fractions: fractions, Vectors: vectors, Energy: energy}, nil
}

// decomposeStandard runs gonum's symmetric eigen-solver and reorders the
// ascending output to descending.
func decomposeStandard(sym *mat.Dense, n int) ([]float64, *mat.Dense, error) {
	s := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			s.SetSym(i, j, sym.At(i, j))
		}
	}

	var es mat.EigenSym
	if !es.Factorize(s, true) {
		return nil, nil, fmt.Errorf("Decompose: standard: %w", ErrDecompositionFailed)
	}

	asc := es.Values(nil)
	var av mat.Dense
	es.VectorsTo(&av)

	// EigenSym sorts ascending; mirror values and columns.
	values := make([]float64, n)
	vectors := mat.NewDense(n, n, nil)
	for j := 0; j < n; j++ {
		src := n - 1 - j
		values[j] = asc[src]
		for i := 0; i < n; i++ {
			vectors.Set(i, j, av.At(i, src))
		}
	}

	return values, vectors, nil
}

// decomposeSVD runs the SVD route; singular values arrive descending and the
// left singular vectors are the eigenvectors of a symmetric PSD input.
func decomposeSVD(sym *mat.Dense) ([]float64, *mat.Dense, error) {
	var svd mat.SVD
	if !svd.Factorize(sym, mat.SVDFull) {
		return nil, nil, fmt.Errorf("Decompose: divide_conquer: %w", ErrDecompositionFailed)
	}

	values := svd.Values(nil)
	var u mat.Dense
	svd.UTo(&u)

	return values, &u, nil
}
