// Package pca owns the record store and configuration of a Principal
// Component Analysis model and orchestrates the solve pipeline:
// center → (optional RMS normalization) → covariance → eigen-decomposition →
// (optional bootstrap resampling).
//
// Lifecycle:
//
//	[Unsolved] --Solve()--> [Solved]
//
//	Records are appended via AddRecord; the store is cleared only by
//	constructing a fresh model or by Load. Covariance, decomposition and
//	bootstrap results are recomputed inside every Solve call — a failed
//	Solve leaves the model in its prior state, a repeated Solve on
//	unchanged inputs reproduces the same results bit for bit.
//
// Operations valid only in [Solved] state: Energy, Eigenvalues, Eigenvalue,
// Eigenvector, Principal, EnergyBoot, EigenvalueBoot, ToPrincipalSpace,
// ToVariableSpace, CheckEigenvectorsOrthogonal, CheckProjectionAccurate,
// Save.
//
// Persistence writes a family of files sharing a caller-supplied base name,
// one per logical artifact (.pca, .mean, .sigma, .eigval, .eigvec,
// .princomp, .energy, .eigvalboot, .energyboot); Load restores a model equal
// to the saved one under Equal.
//
// Concurrency: a model instance is owned by one goroutine; concurrent
// mutation is unsupported and must be serialized by the caller. Bootstrap
// iterations may run in parallel internally (WithWorkers) without affecting
// results.
//
// Errors (sentinel):
//
//	– ErrNumVariables       configuration: num_variables < 2
//	– ErrNumBootstraps      configuration: bootstrap count < 10
//	– ErrDimensionMismatch  record/vector length does not match num_variables
//	– ErrNotEnoughRecords   Solve with fewer than two records
//	– ErrNotSolved          a [Solved]-only operation on an unsolved model
//	– ErrOutOfRange         index outside the valid record/component range
//	– eigen.ErrUnsupportedSolver  unknown solver name
//	– matutil.ErrIO         unreadable/unwritable persistence path
package pca
