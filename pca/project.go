package pca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/princomp/matutil"
)

// ToPrincipalSpace projects a variable-space record onto the eigenbasis:
// the record is centered (and normalized, if the model normalizes), then
// dotted with each eigenvector. Valid only in [Solved] state.
func (p *PCA) ToPrincipalSpace(record []float64) ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("ToPrincipalSpace: %w", ErrNotSolved)
	}
	if len(record) != p.numVars {
		return nil, fmt.Errorf("ToPrincipalSpace: record length %d, want %d: %w", len(record), p.numVars, ErrDimensionMismatch)
	}

	centered := make([]float64, p.numVars)
	for j, v := range record {
		centered[j] = v - p.mean[j]
		if p.sigma != nil {
			centered[j] /= p.sigma[j]
		}
	}

	out := make([]float64, p.numVars)
	for k := 0; k < p.numVars; k++ {
		sum := 0.0
		for j := 0; j < p.numVars; j++ {
			sum += p.vectors.At(j, k) * centered[j]
		}
		out[k] = sum
	}

	return out, nil
}

// ToVariableSpace inverts ToPrincipalSpace using the full eigenbasis; the
// round trip reproduces the original record up to numerical error even when
// some eigenvalues are ~0. Valid only in [Solved] state.
func (p *PCA) ToVariableSpace(principal []float64) ([]float64, error) {
	if !p.solved {
		return nil, fmt.Errorf("ToVariableSpace: %w", ErrNotSolved)
	}
	if len(principal) != p.numVars {
		return nil, fmt.Errorf("ToVariableSpace: length %d, want %d: %w", len(principal), p.numVars, ErrDimensionMismatch)
	}

	out := make([]float64, p.numVars)
	for j := 0; j < p.numVars; j++ {
		sum := 0.0
		for k := 0; k < p.numVars; k++ {
			sum += p.vectors.At(j, k) * principal[k]
		}
		if p.sigma != nil {
			sum *= p.sigma[j]
		}
		out[j] = sum + p.mean[j]
	}

	return out, nil
}

// CheckEigenvectorsOrthogonal scores the mutual orthogonality of the solved
// eigenbasis: the fraction of eigenvector pairs whose dot product is within
// tolerance of zero. 1 means fully orthogonal. Purely diagnostic; the model
// is not mutated.
func (p *PCA) CheckEigenvectorsOrthogonal() (float64, error) {
	if !p.solved {
		return 0, fmt.Errorf("CheckEigenvectorsOrthogonal: %w", ErrNotSolved)
	}

	pairs, ok := 0, 0
	for a := 0; a < p.numVars; a++ {
		for b := a + 1; b < p.numVars; b++ {
			pairs++
			dot := 0.0
			for j := 0; j < p.numVars; j++ {
				dot += p.vectors.At(j, a) * p.vectors.At(j, b)
			}
			if math.Abs(dot) < matutil.FloatEpsilon {
				ok++
			}
		}
	}
	if pairs == 0 {
		return 1, nil
	}

	return float64(ok) / float64(pairs), nil
}

// CheckProjectionAccurate scores the round trip of every stored record
// through ToPrincipalSpace and ToVariableSpace: the fraction of records
// reproduced within tolerance. The tolerance scales with each record's
// magnitude so large-valued data is not penalized. 1 means every record
// survives the round trip.
func (p *PCA) CheckProjectionAccurate() (float64, error) {
	if !p.solved {
		return 0, fmt.Errorf("CheckProjectionAccurate: %w", ErrNotSolved)
	}
	if len(p.records) == 0 {
		return 1, nil
	}

	ok := 0
	for _, rec := range p.records {
		prin, err := p.ToPrincipalSpace(rec)
		if err != nil {
			return 0, err
		}
		back, err := p.ToVariableSpace(prin)
		if err != nil {
			return 0, err
		}

		scale := 1.0
		for _, v := range rec {
			if a := math.Abs(v); a > scale {
				scale = a
			}
		}
		if matutil.ApproxEqualSlices(rec, back, matutil.FloatEpsilon*scale) {
			ok++
		}
	}

	return float64(ok) / float64(len(p.records)), nil
}

// reconstructRecords inverts the principal scores back into variable space;
// used by Load, where the on-disk format carries scores instead of raw
// records.
func reconstructRecords(scores, vectors *mat.Dense, mean, sigma []float64) [][]float64 {
	n, v := scores.Dims()

	var centered mat.Dense
	centered.Mul(scores, vectors.T())

	records := make([][]float64, n)
	for i := 0; i < n; i++ {
		rec := make([]float64, v)
		for j := 0; j < v; j++ {
			val := centered.At(i, j)
			if sigma != nil {
				val *= sigma[j]
			}
			rec[j] = val + mean[j]
		}
		records[i] = rec
	}

	return records
}
