package bootstrap

import (
	"errors"

	"github.com/katalvlaran/princomp/eigen"
)

var (
	// ErrNilData indicates a nil record matrix.
	ErrNilData = errors.New("bootstrap: nil record matrix")

	// ErrTooFewBootstraps indicates a bootstrap count below MinNumBootstraps.
	ErrTooFewBootstraps = errors.New("bootstrap: too few bootstrap iterations")

	// ErrTooFewRecords indicates a record matrix with fewer than two rows;
	// a resample of it could never yield a covariance estimate.
	ErrTooFewRecords = errors.New("bootstrap: too few records")
)

// Defaults (single source of truth).
const (
	// DefaultNumBootstraps is the iteration count applied when none is set.
	DefaultNumBootstraps = 30

	// MinNumBootstraps is the smallest accepted iteration count; fewer draws
	// make the empirical distributions meaningless.
	MinNumBootstraps = 10

	// DefaultSeed seeds the per-iteration streams when none is set.
	DefaultSeed = 1

	// DefaultWorkers keeps the run fully sequential.
	DefaultWorkers = 1
)

// Options configure a bootstrap run.
type Options struct {
	// NumBootstraps is the number of resampling iterations (≥ MinNumBootstraps).
	NumBootstraps int

	// Seed is the base seed. Iteration i draws from an independent stream
	// derived from (Seed, i), so results never depend on scheduling.
	Seed int64

	// Normalize mirrors the model's normalization flag: each resample is
	// centered and then divided by its own per-column RMS before the
	// covariance is built.
	Normalize bool

	// Solver selects the decomposition strategy used for every iteration.
	Solver eigen.Solver

	// Workers caps the number of concurrent iterations. Values below 1 are
	// treated as 1 (sequential).
	Workers int
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		NumBootstraps: DefaultNumBootstraps,
		Seed:          DefaultSeed,
		Solver:        eigen.DefaultSolver,
		Workers:       DefaultWorkers,
	}
}

// Result aggregates the raw bootstrap distributions.
type Result struct {
	// Energies holds one total-energy estimate per iteration.
	Energies []float64

	// Fractions holds one sequence per eigenvalue index: Fractions[k][i] is
	// the k-th eigenvalue fraction estimated by iteration i.
	Fractions [][]float64
}
