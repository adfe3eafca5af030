package pca_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/princomp/matutil"
	"github.com/katalvlaran/princomp/pca"
)

// TestSaveUnsolved: only solved models persist.
func TestSaveUnsolved(t *testing.T) {
	p := newFixture(t)
	err := p.Save(filepath.Join(t.TempDir(), "model"))
	assert.ErrorIs(t, err, pca.ErrNotSolved)
}

// TestSaveWritesFamily: a bootstrapped, normalized model writes all nine
// artifact files next to the base name. The large fixture keeps every
// bootstrap resample normalizable; the canonical one has a constant column
// with no RMS scale.
func TestSaveWritesFamily(t *testing.T) {
	p := newLargeFixture(t)
	p.SetDoNormalize(true)
	require.NoError(t, p.SetDoBootstrap(true, pca.WithNumBootstraps(10)))
	require.NoError(t, p.Solve())

	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, p.Save(base))

	for _, ext := range []string{
		".pca", ".mean", ".sigma", ".eigval", ".eigvec",
		".princomp", ".energy", ".eigvalboot", ".energyboot",
	} {
		_, err := os.Stat(base + ext)
		assert.NoError(t, err, "missing %s", ext)
	}
}

// TestSaveOmitsOptionalFiles: without normalization there is no .sigma,
// without bootstrap no .eigvalboot/.energyboot.
func TestSaveOmitsOptionalFiles(t *testing.T) {
	p := newFixture(t)
	require.NoError(t, p.Solve())

	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, p.Save(base))

	for _, ext := range []string{".sigma", ".eigvalboot", ".energyboot"} {
		_, err := os.Stat(base + ext)
		assert.True(t, os.IsNotExist(err), "%s should not exist", ext)
	}
}

// newLargeFixture builds an 8-record model whose rows differ pairwise in
// every column, so even bootstrap resamples of it stay normalizable.
func newLargeFixture(t *testing.T) *pca.PCA {
	t.Helper()

	p, err := pca.New(4)
	require.NoError(t, err)
	for _, rec := range [][]float64{
		{1, 1.4, 50, 0.7},
		{2, 3.6, 43, 2.1},
		{3, 5.1, 37, 3.2},
		{4, 7.9, 29, 4.8},
		{5, 9.2, 21, 5.6},
		{6, 11.8, 16, 7.4},
		{7, 13.1, 8, 8.3},
		{8, 15.7, 2, 9.9},
	} {
		require.NoError(t, p.AddRecord(rec))
	}

	return p
}

// TestSaveLoadRoundTrip: Load restores a model equal to the saved one, in
// every configuration corner (plain, normalized, bootstrapped, both solvers).
func TestSaveLoadRoundTrip(t *testing.T) {
	cases := []struct {
		name      string
		solver    string
		normalize bool
		bootstrap bool
		build     func(*testing.T) *pca.PCA
	}{
		{"plain", "divide_conquer", false, false, newFixture},
		{"normalized", "divide_conquer", true, false, newVariedFixture},
		{"bootstrapped", "divide_conquer", false, true, newFixture},
		{"standard_full", "standard", true, true, newLargeFixture},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := tc.build(t)
			require.NoError(t, p.SetSolver(tc.solver))
			p.SetDoNormalize(tc.normalize)
			if tc.bootstrap {
				require.NoError(t, p.SetDoBootstrap(true, pca.WithNumBootstraps(10), pca.WithSeed(7)))
			}
			require.NoError(t, p.Solve())

			base := filepath.Join(t.TempDir(), "model")
			require.NoError(t, p.Save(base))

			loaded, err := pca.Load(base)
			require.NoError(t, err)

			assert.True(t, p.Equal(loaded), "loaded model differs from saved")
			assert.True(t, loaded.Equal(p))
			assert.True(t, loaded.Solved())
			assert.Equal(t, p.NumRecords(), loaded.NumRecords())
		})
	}
}

// TestLoadedModelOperates: a loaded model answers every solved-state query
// identically to the original.
func TestLoadedModelOperates(t *testing.T) {
	p := newFixture(t)
	require.NoError(t, p.SetDoBootstrap(true, pca.WithNumBootstraps(10)))
	require.NoError(t, p.Solve())

	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, p.Save(base))
	loaded, err := pca.Load(base)
	require.NoError(t, err)

	eOrig, err := p.Energy()
	require.NoError(t, err)
	eLoad, err := loaded.Energy()
	require.NoError(t, err)
	assert.Equal(t, eOrig, eLoad)

	fOrig, err := p.Eigenvalues()
	require.NoError(t, err)
	fLoad, err := loaded.Eigenvalues()
	require.NoError(t, err)
	assert.True(t, matutil.EqualSlices(fOrig, fLoad))

	bOrig, err := p.EnergyBoot()
	require.NoError(t, err)
	bLoad, err := loaded.EnergyBoot()
	require.NoError(t, err)
	assert.True(t, matutil.EqualSlices(bOrig, bLoad))

	prin, err := loaded.ToPrincipalSpace(fixtureRecords[0])
	require.NoError(t, err)
	back, err := loaded.ToVariableSpace(prin)
	require.NoError(t, err)
	assert.InDeltaSlice(t, fixtureRecords[0], back, 1e-9)
}

// TestLoadMissing: an absent family fails with the I/O sentinel.
func TestLoadMissing(t *testing.T) {
	_, err := pca.Load(filepath.Join(t.TempDir(), "nothing-here"))
	assert.ErrorIs(t, err, matutil.ErrIO)
}

// TestLoadMissingArtifact: a header without its artifact files fails with the
// I/O sentinel, not a partial model.
func TestLoadMissingArtifact(t *testing.T) {
	p := newFixture(t)
	require.NoError(t, p.Solve())

	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, p.Save(base))
	require.NoError(t, os.Remove(base+".eigvec"))

	loaded, err := pca.Load(base)
	assert.ErrorIs(t, err, matutil.ErrIO)
	assert.Nil(t, loaded)
}

// TestLoadCorruptHeader: a truncated .pca file is rejected.
func TestLoadCorruptHeader(t *testing.T) {
	p := newFixture(t)
	require.NoError(t, p.Solve())

	base := filepath.Join(t.TempDir(), "model")
	require.NoError(t, p.Save(base))
	require.NoError(t, os.WriteFile(base+".pca", []byte{0xc1}, 0o644))

	_, err := pca.Load(base)
	assert.ErrorIs(t, err, matutil.ErrIO)
}

// TestLoadShapeMismatch: an artifact whose dimensions contradict the header
// fails with ErrDimensionMismatch.
func TestLoadShapeMismatch(t *testing.T) {
	dir := t.TempDir()

	p := newFixture(t)
	require.NoError(t, p.Solve())
	base := filepath.Join(dir, "model")
	require.NoError(t, p.Save(base))

	// A 2-variable model's eigvec is 2x2; splice it under the 4-variable
	// header.
	small, err := pca.New(2)
	require.NoError(t, err)
	require.NoError(t, small.AddRecord([]float64{1, 2}))
	require.NoError(t, small.AddRecord([]float64{3, 1}))
	require.NoError(t, small.AddRecord([]float64{-2, 4}))
	require.NoError(t, small.Solve())
	smallBase := filepath.Join(dir, "small")
	require.NoError(t, small.Save(smallBase))

	data, err := os.ReadFile(smallBase + ".eigvec")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(base+".eigvec", data, 0o644))

	_, err = pca.Load(base)
	assert.ErrorIs(t, err, pca.ErrDimensionMismatch)
}
