package bootstrap

import (
	"fmt"
	"math/rand/v2"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/princomp/eigen"
	"github.com/katalvlaran/princomp/matutil"
)

// Run draws opts.NumBootstraps resamples of records (rows, with replacement),
// re-runs the covariance pipeline on each, and collects the resulting energy
// and eigenvalue-fraction distributions. records is never mutated.
//
// Any iteration failure aborts the whole run; there is no partial result.
func Run(records *mat.Dense, opts Options) (*Result, error) {
	if records == nil {
		return nil, fmt.Errorf("Run: %w", ErrNilData)
	}
	if opts.NumBootstraps < MinNumBootstraps {
		return nil, fmt.Errorf("Run: %d < %d: %w", opts.NumBootstraps, MinNumBootstraps, ErrTooFewBootstraps)
	}
	rows, cols := records.Dims()
	if rows < 2 {
		return nil, fmt.Errorf("Run: %d rows: %w", rows, ErrTooFewRecords)
	}

	res := &Result{
		Energies:  make([]float64, opts.NumBootstraps),
		Fractions: make([][]float64, cols),
	}
	for k := range res.Fractions {
		res.Fractions[k] = make([]float64, opts.NumBootstraps)
	}

	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < opts.NumBootstraps; i++ {
		g.Go(func() error {
			dec, err := iteration(records, opts, i)
			if err != nil {
				return fmt.Errorf("Run: iteration %d: %w", i, err)
			}
			// Disjoint slots per iteration; no synchronization needed.
			res.Energies[i] = dec.Energy
			for k := 0; k < cols; k++ {
				res.Fractions[k][i] = dec.Fractions[k]
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}

// iteration resamples the records under the stream (seed, i) and runs the
// full pipeline on the sample.
func iteration(records *mat.Dense, opts Options, i int) (*eigen.Decomposition, error) {
	rng := rand.New(rand.NewPCG(uint64(opts.Seed), uint64(i)))

	sample, err := matutil.ShuffleRowsWithReplacement(records, rng)
	if err != nil {
		return nil, err
	}

	means, err := matutil.ColumnMeans(sample)
	if err != nil {
		return nil, err
	}
	if err = matutil.RemoveColumnMeans(sample, means); err != nil {
		return nil, err
	}

	if opts.Normalize {
		rms, errRMS := matutil.ColumnRMS(sample)
		if errRMS != nil {
			return nil, errRMS
		}
		// A degenerate resample (a constant column) surfaces as ErrZeroScale;
		// the engine performs no recovery.
		if err = matutil.NormalizeByColumn(sample, rms); err != nil {
			return nil, err
		}
	}

	cov, err := matutil.Covariance(sample)
	if err != nil {
		return nil, err
	}

	return eigen.Decompose(cov, opts.Solver)
}
