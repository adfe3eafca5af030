package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/princomp/bootstrap"
	"github.com/katalvlaran/princomp/eigen"
	"github.com/katalvlaran/princomp/matutil"
)

// PCA is a Principal Component Analysis model: an append-only record store,
// its configuration, and — after Solve — the covariance decomposition,
// principal scores and optional bootstrap distributions.
//
// The zero value is not usable; construct with New.
type PCA struct {
	numVars int
	records [][]float64

	doNormalize   bool
	doBootstrap   bool
	numBootstraps int
	bootstrapSeed int64
	workers       int
	solver        eigen.Solver

	solved    bool
	mean      []float64
	sigma     []float64 // nil when normalization is disabled
	energy    float64
	fractions []float64
	vectors   *mat.Dense // numVars×numVars, columns = eigenvectors
	scores    *mat.Dense // numRecords×numVars principal scores
	boot      *bootstrap.Result
}

// New constructs a model over numVariables variables (≥ 2) with the
// documented defaults: no normalization, no bootstrap (30 iterations, seed 1
// once enabled), divide_conquer solver.
func New(numVariables int) (*PCA, error) {
	p := &PCA{
		numBootstraps: bootstrap.DefaultNumBootstraps,
		bootstrapSeed: bootstrap.DefaultSeed,
		workers:       bootstrap.DefaultWorkers,
		solver:        eigen.DefaultSolver,
	}
	if err := p.SetNumVariables(numVariables); err != nil {
		return nil, err
	}

	return p, nil
}

// SetNumVariables reconfigures the record width. Values below 2 fail with
// ErrNumVariables. Call it before adding records: AddRecord validates
// against the current setting.
func (p *PCA) SetNumVariables(n int) error {
	if n < 2 {
		return fmt.Errorf("SetNumVariables: %d: %w", n, ErrNumVariables)
	}
	p.numVars = n

	return nil
}

// NumVariables returns the configured record width.
func (p *PCA) NumVariables() int { return p.numVars }

// AddRecord appends a record to the store. The slice is copied; records are
// immutable once stored. A length other than NumVariables fails with
// ErrDimensionMismatch.
func (p *PCA) AddRecord(record []float64) error {
	if len(record) != p.numVars {
		return fmt.Errorf("AddRecord: record length %d, want %d: %w", len(record), p.numVars, ErrDimensionMismatch)
	}

	stored := make([]float64, len(record))
	copy(stored, record)
	p.records = append(p.records, stored)

	return nil
}

// NumRecords returns the number of stored records.
func (p *PCA) NumRecords() int { return len(p.records) }

// Record returns a copy of the record at index.
func (p *PCA) Record(index int) ([]float64, error) {
	if index < 0 || index >= len(p.records) {
		return nil, fmt.Errorf("Record: %d of %d: %w", index, len(p.records), ErrOutOfRange)
	}

	out := make([]float64, p.numVars)
	copy(out, p.records[index])

	return out, nil
}

// SetDoNormalize toggles per-column RMS normalization of the centered data
// before the covariance is built.
func (p *PCA) SetDoNormalize(flag bool) { p.doNormalize = flag }

// DoNormalize reports whether normalization is enabled.
func (p *PCA) DoNormalize() bool { return p.doNormalize }

// BootstrapOption tweaks the bootstrap configuration applied by
// SetDoBootstrap.
type BootstrapOption func(*bootstrapConfig)

type bootstrapConfig struct {
	num     int
	seed    int64
	workers int
}

// WithNumBootstraps sets the iteration count (minimum 10).
func WithNumBootstraps(n int) BootstrapOption {
	return func(c *bootstrapConfig) { c.num = n }
}

// WithSeed sets the base seed of the per-iteration resampling streams.
func WithSeed(seed int64) BootstrapOption {
	return func(c *bootstrapConfig) { c.seed = seed }
}

// WithWorkers caps the number of concurrent bootstrap iterations; values
// below 1 keep the run sequential. The worker count never changes results.
func WithWorkers(n int) BootstrapOption {
	return func(c *bootstrapConfig) { c.workers = n }
}

// SetDoBootstrap enables or disables bootstrap resampling. Options apply on
// top of the defaults (30 iterations, seed 1, sequential); a count below 10
// fails with ErrNumBootstraps and leaves the configuration untouched.
func (p *PCA) SetDoBootstrap(enable bool, opts ...BootstrapOption) error {
	cfg := bootstrapConfig{
		num:     bootstrap.DefaultNumBootstraps,
		seed:    bootstrap.DefaultSeed,
		workers: bootstrap.DefaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.num < bootstrap.MinNumBootstraps {
		return fmt.Errorf("SetDoBootstrap: %d: %w", cfg.num, ErrNumBootstraps)
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}

	p.doBootstrap = enable
	p.numBootstraps = cfg.num
	p.bootstrapSeed = cfg.seed
	p.workers = cfg.workers

	return nil
}

// DoBootstrap reports whether bootstrap resampling is enabled.
func (p *PCA) DoBootstrap() bool { return p.doBootstrap }

// NumBootstraps returns the configured iteration count.
func (p *PCA) NumBootstraps() int { return p.numBootstraps }

// BootstrapSeed returns the configured base seed.
func (p *PCA) BootstrapSeed() int64 { return p.bootstrapSeed }

// SetSolver selects the decomposition strategy by name: "standard" or
// "divide_conquer". Unknown names fail with eigen.ErrUnsupportedSolver.
func (p *PCA) SetSolver(name string) error {
	s, err := eigen.ParseSolver(name)
	if err != nil {
		return fmt.Errorf("SetSolver: %w", err)
	}
	p.solver = s

	return nil
}

// Solver returns the configured solver name.
func (p *PCA) Solver() string { return string(p.solver) }

// Solved reports whether the model carries decomposition results.
func (p *PCA) Solved() bool { return p.solved }

// Energy returns the total variance captured (trace of the covariance
// matrix).
func (p *PCA) Energy() (float64, error) {
	if !p.solved {
		return 0, fmt.Errorf("Energy: %w", ErrNotSolved)
	}

	return p.energy, nil
}

// Eigenvalues returns a copy of the eigenvalue fractions, descending.
func (p *PCA) Eigenvalues() ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("Eigenvalues: %w", ErrNotSolved)
	}

	out := make([]float64, len(p.fractions))
	copy(out, p.fractions)

	return out, nil
}

// Eigenvalue returns the fraction of component index.
func (p *PCA) Eigenvalue(index int) (float64, error) {
	if !p.solved {
		return 0, fmt.Errorf("Eigenvalue: %w", ErrNotSolved)
	}
	if index < 0 || index >= len(p.fractions) {
		return 0, fmt.Errorf("Eigenvalue: %d of %d: %w", index, len(p.fractions), ErrOutOfRange)
	}

	return p.fractions[index], nil
}

// Eigenvector returns a copy of the eigenvector of component index.
func (p *PCA) Eigenvector(index int) ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("Eigenvector: %w", ErrNotSolved)
	}
	col, err := matutil.ExtractColumn(p.vectors, index)
	if err != nil {
		return nil, fmt.Errorf("Eigenvector: %w", ErrOutOfRange)
	}

	return col, nil
}

// Principal returns the per-record projections onto the eigenvector of
// component index.
func (p *PCA) Principal(index int) ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("Principal: %w", ErrNotSolved)
	}
	col, err := matutil.ExtractColumn(p.scores, index)
	if err != nil {
		return nil, fmt.Errorf("Principal: %w", ErrOutOfRange)
	}

	return col, nil
}

// EnergyBoot returns the bootstrap energy distribution, one value per
// iteration.
func (p *PCA) EnergyBoot() ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("EnergyBoot: %w", ErrNotSolved)
	}
	if p.boot == nil {
		return nil, fmt.Errorf("EnergyBoot: %w", ErrBootstrapDisabled)
	}

	out := make([]float64, len(p.boot.Energies))
	copy(out, p.boot.Energies)

	return out, nil
}

// EigenvalueBoot returns the bootstrap fraction distribution of component
// index, one value per iteration.
func (p *PCA) EigenvalueBoot(index int) ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("EigenvalueBoot: %w", ErrNotSolved)
	}
	if p.boot == nil {
		return nil, fmt.Errorf("EigenvalueBoot: %w", ErrBootstrapDisabled)
	}
	if index < 0 || index >= len(p.boot.Fractions) {
		return nil, fmt.Errorf("EigenvalueBoot: %d of %d: %w", index, len(p.boot.Fractions), ErrOutOfRange)
	}

	out := make([]float64, len(p.boot.Fractions[index]))
	copy(out, p.boot.Fractions[index])

	return out, nil
}

// dataMatrix copies the record store into a dense numRecords×numVars matrix.
func (p *PCA) dataMatrix() *mat.Dense {
	data := mat.NewDense(len(p.records), p.numVars, nil)
	for i, rec := range p.records {
		data.SetRow(i, rec)
	}

	return data
}
