// Package bootstrap re-estimates the stability of PCA eigenvalues and energy
// by resampling the record store with replacement and re-running the full
// center → (normalize) → covariance → decompose pipeline per sample.
//
// Determinism:
//
//	Iteration i draws from an independent PCG stream seeded with
//	(Options.Seed, i). Results are therefore bit-reproducible for a fixed
//	seed and iteration count regardless of the worker count or scheduling
//	order — there is no shared generator advanced across goroutines.
//
// Concurrency:
//
//	Iterations are embarrassingly parallel: each operates on its own
//	resample and writes to a disjoint output slot. Options.Workers caps the
//	number of concurrent iterations; the default of 1 keeps the run fully
//	sequential.
//
// Output:
//
//	Run returns the raw distributions — one energy sequence and one
//	fraction sequence per eigenvalue index, each of length
//	Options.NumBootstraps. No summary statistic is imposed; matutil.Mean and
//	matutil.Sigma cover the common ones.
//
// Errors (sentinel):
//
//	– ErrNilData           if the record matrix is nil.
//	– ErrTooFewBootstraps  if NumBootstraps < MinNumBootstraps.
//	– ErrTooFewRecords     if the record matrix has fewer than two rows.
package bootstrap
