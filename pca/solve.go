package pca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/princomp/bootstrap"
	"github.com/katalvlaran/princomp/eigen"
	"github.com/katalvlaran/princomp/matutil"
)

// Solve runs the full pipeline over the record store: center, optionally
// normalize columns by RMS, build the covariance matrix, decompose it with
// the configured solver, and — if enabled — bootstrap the eigenvalue and
// energy distributions.
//
// Solve needs at least two records for a covariance estimate
// (ErrNotEnoughRecords otherwise). It either fully completes and transitions
// the model to [Solved], overwriting any prior results, or fails and leaves
// the model in its previous state. Given identical inputs and configuration,
// repeated calls reproduce identical results.
func (p *PCA) Solve() error {
	if p.numVars < 2 {
		return fmt.Errorf("Solve: %w", ErrNumVariables)
	}
	if len(p.records) < 2 {
		return fmt.Errorf("Solve: %d records for %d variables: %w", len(p.records), p.numVars, ErrNotEnoughRecords)
	}

	data := p.dataMatrix()

	mean, err := matutil.ColumnMeans(data)
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}
	if err = matutil.RemoveColumnMeans(data, mean); err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	var sigma []float64
	if p.doNormalize {
		if sigma, err = matutil.ColumnRMS(data); err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
		if err = matutil.NormalizeByColumn(data, sigma); err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
	}

	cov, err := matutil.Covariance(data)
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	dec, err := eigen.Decompose(cov, p.solver)
	if err != nil {
		return fmt.Errorf("Solve: %w", err)
	}

	var scores mat.Dense
	scores.Mul(data, dec.Vectors)

	var boot *bootstrap.Result
	if p.doBootstrap {
		boot, err = bootstrap.Run(p.dataMatrix(), bootstrap.Options{
			NumBootstraps: p.numBootstraps,
			Seed:          p.bootstrapSeed,
			Normalize:     p.doNormalize,
			Solver:        p.solver,
			Workers:       p.workers,
		})
		if err != nil {
			return fmt.Errorf("Solve: %w", err)
		}
	}

	// Commit only after the whole pipeline succeeded.
	p.mean = mean
	p.sigma = sigma
	p.energy = dec.Energy
	p.fractions = dec.Fractions
	p.vectors = dec.Vectors
	p.scores = &scores
	p.boot = boot
	p.solved = true

	return nil
}
