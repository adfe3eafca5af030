package pca

import (
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/princomp/bootstrap"
	"github.com/katalvlaran/princomp/eigen"
	"github.com/katalvlaran/princomp/matutil"
)

// Suffixes of the persistence file family; every artifact lives in its own
// file next to the caller-supplied base name.
const (
	extConfig     = ".pca"
	extMean       = ".mean"
	extSigma      = ".sigma"
	extEigval     = ".eigval"
	extEigvec     = ".eigvec"
	extPrincomp   = ".princomp"
	extEnergy     = ".energy"
	extEigvalBoot = ".eigvalboot"
	extEnergyBoot = ".energyboot"
)

// header is the msgpack payload of the .pca file: the full configuration
// plus the record count needed to validate the other artifacts.
type header struct {
	NumVariables  int    `msgpack:"num_variables"`
	NumRecords    int    `msgpack:"num_records"`
	DoNormalize   bool   `msgpack:"do_normalize"`
	DoBootstrap   bool   `msgpack:"do_bootstrap"`
	NumBootstraps int    `msgpack:"num_bootstraps"`
	BootstrapSeed int64  `msgpack:"bootstrap_seed"`
	Solver        string `msgpack:"solver"`
}

// Save persists the full model state as a family of files sharing basename:
// configuration (.pca), centering/normalization vectors (.mean, .sigma),
// decomposition results (.eigval, .eigvec, .princomp, .energy) and — when
// bootstrap ran — the raw distributions (.eigvalboot, .energyboot).
// Only solved models can be saved (ErrNotSolved otherwise); an unwritable
// path fails with matutil.ErrIO.
func (p *PCA) Save(basename string) error {
	if !p.solved {
		return fmt.Errorf("Save: %w", ErrNotSolved)
	}

	hdr, err := msgpack.Marshal(header{
		NumVariables:  p.numVars,
		NumRecords:    len(p.records),
		DoNormalize:   p.doNormalize,
		DoBootstrap:   p.doBootstrap,
		NumBootstraps: p.numBootstraps,
		BootstrapSeed: p.bootstrapSeed,
		Solver:        string(p.solver),
	})
	if err != nil {
		return fmt.Errorf("Save: encode header: %w", matutil.ErrIO)
	}
	if err = os.WriteFile(basename+extConfig, hdr, 0o644); err != nil {
		return fmt.Errorf("Save: write %q: %w", basename+extConfig, matutil.ErrIO)
	}

	if err = matutil.WriteMatrix(basename+extMean, colMatrix(p.mean)); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if p.sigma != nil {
		if err = matutil.WriteMatrix(basename+extSigma, colMatrix(p.sigma)); err != nil {
			return fmt.Errorf("Save: %w", err)
		}
	}
	if err = matutil.WriteMatrix(basename+extEigval, colMatrix(p.fractions)); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = matutil.WriteMatrix(basename+extEigvec, p.vectors); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = matutil.WriteMatrix(basename+extPrincomp, p.scores); err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	if err = matutil.WriteMatrix(basename+extEnergy, colMatrix([]float64{p.energy})); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	if p.boot != nil {
		fractions := mat.NewDense(p.numVars, p.numBootstraps, nil)
		for k := 0; k < p.numVars; k++ {
			fractions.SetRow(k, p.boot.Fractions[k])
		}
		if err = matutil.WriteMatrix(basename+extEigvalBoot, fractions); err != nil {
			return fmt.Errorf("Save: %w", err)
		}
		if err = matutil.WriteMatrix(basename+extEnergyBoot, colMatrix(p.boot.Energies)); err != nil {
			return fmt.Errorf("Save: %w", err)
		}
	}

	return nil
}

// Load restores a model previously written by Save. A missing or unreadable
// file fails with matutil.ErrIO; artifacts whose shapes contradict the
// header fail with ErrDimensionMismatch. The model is built completely
// before being returned — there is no partially initialized result.
//
// The record store is reconstructed from the principal scores through the
// inverse transform; see Equal for the equality semantics this implies.
func Load(basename string) (*PCA, error) {
	raw, err := os.ReadFile(basename + extConfig)
	if err != nil {
		return nil, fmt.Errorf("Load: read %q: %w", basename+extConfig, matutil.ErrIO)
	}
	var hdr header
	if err = msgpack.Unmarshal(raw, &hdr); err != nil {
		return nil, fmt.Errorf("Load: decode %q: %w", basename+extConfig, matutil.ErrIO)
	}

	if hdr.NumVariables < 2 {
		return nil, fmt.Errorf("Load: %d variables: %w", hdr.NumVariables, ErrNumVariables)
	}
	solver, err := eigen.ParseSolver(hdr.Solver)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	if hdr.DoBootstrap && hdr.NumBootstraps < bootstrap.MinNumBootstraps {
		return nil, fmt.Errorf("Load: %d bootstraps: %w", hdr.NumBootstraps, ErrNumBootstraps)
	}

	mean, err := loadVector(basename+extMean, hdr.NumVariables)
	if err != nil {
		return nil, err
	}
	var sigma []float64
	if hdr.DoNormalize {
		if sigma, err = loadVector(basename+extSigma, hdr.NumVariables); err != nil {
			return nil, err
		}
	}
	fractions, err := loadVector(basename+extEigval, hdr.NumVariables)
	if err != nil {
		return nil, err
	}
	vectors, err := loadSized(basename+extEigvec, hdr.NumVariables, hdr.NumVariables)
	if err != nil {
		return nil, err
	}
	scores, err := loadSized(basename+extPrincomp, hdr.NumRecords, hdr.NumVariables)
	if err != nil {
		return nil, err
	}
	energy, err := loadVector(basename+extEnergy, 1)
	if err != nil {
		return nil, err
	}

	var boot *bootstrap.Result
	if hdr.DoBootstrap {
		fracs, errBoot := loadSized(basename+extEigvalBoot, hdr.NumVariables, hdr.NumBootstraps)
		if errBoot != nil {
			return nil, errBoot
		}
		energies, errBoot := loadVector(basename+extEnergyBoot, hdr.NumBootstraps)
		if errBoot != nil {
			return nil, errBoot
		}
		boot = &bootstrap.Result{Energies: energies, Fractions: make([][]float64, hdr.NumVariables)}
		for k := 0; k < hdr.NumVariables; k++ {
			row, errRow := matutil.ExtractRow(fracs, k)
			if errRow != nil {
				return nil, fmt.Errorf("Load: %w", errRow)
			}
			boot.Fractions[k] = row
		}
	}

	return &PCA{
		numVars:       hdr.NumVariables,
		records:       reconstructRecords(scores, vectors, mean, sigma),
		doNormalize:   hdr.DoNormalize,
		doBootstrap:   hdr.DoBootstrap,
		numBootstraps: hdr.NumBootstraps,
		bootstrapSeed: hdr.BootstrapSeed,
		workers:       bootstrap.DefaultWorkers,
		solver:        solver,
		solved:        true,
		mean:          mean,
		sigma:         sigma,
		energy:        energy[0],
		fractions:     fractions,
		vectors:       vectors,
		scores:        scores,
		boot:          boot,
	}, nil
}

// colMatrix wraps a vector as a len×1 dense matrix for the shared matrix
// codec.
func colMatrix(xs []float64) *mat.Dense {
	m := mat.NewDense(len(xs), 1, nil)
	for i, x := range xs {
		m.Set(i, 0, x)
	}

	return m
}

// loadSized reads a matrix and validates its shape against the header.
func loadSized(path string, rows, cols int) (*mat.Dense, error) {
	m, err := matutil.ReadMatrix(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	r, c := m.Dims()
	if r != rows || c != cols {
		return nil, fmt.Errorf("Load: %q is %dx%d, want %dx%d: %w", path, r, c, rows, cols, ErrDimensionMismatch)
	}

	return m, nil
}

// loadVector reads a n×1 matrix back into a slice.
func loadVector(path string, n int) ([]float64, error) {
	m, err := loadSized(path, n, 1)
	if err != nil {
		return nil, err
	}

	return matutil.ExtractColumn(m, 0)
}
