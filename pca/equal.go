package pca

import (
	"math"

	"github.com/katalvlaran/princomp/matutil"
)

// recordEps is the relative tolerance for record-store comparison. The
// on-disk format carries principal scores rather than raw records, so a
// loaded model reconstructs its records through the inverse transform —
// exact up to rounding, not bit-exact. Everything else compares exactly.
const recordEps = 1e-10

// Equal reports whether two models match: configuration and record count
// exactly, the record stores within machine-scale tolerance, and — when both
// are solved — every solved artifact (means, scales, fractions, vectors,
// scores, energy, bootstrap distributions) exactly. Persistence preserves
// float64 bits, so a model always equals one loaded from its own save.
func (p *PCA) Equal(q *PCA) bool {
	if p == nil || q == nil {
		return p == q
	}

	if p.numVars != q.numVars ||
		p.doNormalize != q.doNormalize ||
		p.doBootstrap != q.doBootstrap ||
		p.numBootstraps != q.numBootstraps ||
		p.bootstrapSeed != q.bootstrapSeed ||
		p.solver != q.solver ||
		p.solved != q.solved ||
		len(p.records) != len(q.records) {
		return false
	}

	for i := range p.records {
		if !recordsApproxEqual(p.records[i], q.records[i]) {
			return false
		}
	}

	if !p.solved {
		return true
	}

	if p.energy != q.energy ||
		!matutil.EqualSlices(p.mean, q.mean) ||
		!matutil.EqualSlices(p.sigma, q.sigma) ||
		!matutil.EqualSlices(p.fractions, q.fractions) ||
		!matutil.EqualDense(p.vectors, q.vectors) ||
		!matutil.EqualDense(p.scores, q.scores) {
		return false
	}

	if (p.boot == nil) != (q.boot == nil) {
		return false
	}
	if p.boot != nil {
		if !matutil.EqualSlices(p.boot.Energies, q.boot.Energies) {
			return false
		}
		if len(p.boot.Fractions) != len(q.boot.Fractions) {
			return false
		}
		for k := range p.boot.Fractions {
			if !matutil.EqualSlices(p.boot.Fractions[k], q.boot.Fractions[k]) {
				return false
			}
		}
	}

	return true
}

// recordsApproxEqual compares two records element-wise at recordEps scaled
// by magnitude.
func recordsApproxEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		scale := math.Max(1, math.Max(math.Abs(a[i]), math.Abs(b[i])))
		if !matutil.ApproxEqual(a[i], b[i], recordEps*scale) {
			return false
		}
	}

	return true
}
