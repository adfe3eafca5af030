package pca

import "errors"

var (
	// ErrNumVariables indicates a variable count below two; a PCA over fewer
	// than two variables is meaningless.
	ErrNumVariables = errors.New("pca: num_variables must be at least 2")

	// ErrNumBootstraps indicates a bootstrap count below the minimum of 10.
	ErrNumBootstraps = errors.New("pca: num_bootstraps must be at least 10")

	// ErrDimensionMismatch indicates a record or vector whose length does not
	// match the configured number of variables.
	ErrDimensionMismatch = errors.New("pca: dimension mismatch")

	// ErrNotEnoughRecords indicates a Solve attempt with fewer than two
	// records; the sample covariance needs at least one degree of freedom.
	ErrNotEnoughRecords = errors.New("pca: not enough records to solve")

	// ErrNotSolved indicates an operation that requires a solved model.
	ErrNotSolved = errors.New("pca: model not solved")

	// ErrBootstrapDisabled indicates a bootstrap accessor on a model solved
	// without bootstrapping.
	ErrBootstrapDisabled = errors.New("pca: bootstrap disabled")

	// ErrOutOfRange indicates a record or component index outside bounds.
	ErrOutOfRange = errors.New("pca: index out of range")
)
