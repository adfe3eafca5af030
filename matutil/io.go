// SPDX-License-Identifier: MIT
// Package matutil: compressed binary matrix persistence.
// On-disk layout: a zstd stream framing gonum's native binary matrix
// encoding. float64 bits round-trip exactly, which is what makes persisted
// models compare bit-equal after reload.

package matutil

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/zstd"
	"gonum.org/v1/gonum/mat"
)

// WriteMatrix persists m to path as a zstd-compressed gonum binary blob.
// A missing parent directory or an unwritable path fails with ErrIO.
func WriteMatrix(path string, m *mat.Dense) error {
	if m == nil {
		return fmt.Errorf("WriteMatrix: %w", ErrNilMatrix)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteMatrix: create %q: %w", path, ErrIO)
	}

	enc, err := zstd.NewWriter(f)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("WriteMatrix: %q: %w", path, ErrIO)
	}
	if _, err = m.MarshalBinaryTo(enc); err != nil {
		_ = enc.Close()
		_ = f.Close()
		return fmt.Errorf("WriteMatrix: encode %q: %w", path, ErrIO)
	}
	if err = enc.Close(); err != nil {
		_ = f.Close()
		return fmt.Errorf("WriteMatrix: flush %q: %w", path, ErrIO)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("WriteMatrix: close %q: %w", path, ErrIO)
	}

	return nil
}

// ReadMatrix loads a matrix previously written by WriteMatrix.
// An unreadable path or a corrupt blob fails with ErrIO.
func ReadMatrix(path string) (*mat.Dense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: open %q: %w", path, ErrIO)
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("ReadMatrix: %q: %w", path, ErrIO)
	}
	defer dec.Close()

	var m mat.Dense
	if _, err = m.UnmarshalBinaryFrom(dec); err != nil {
		return nil, fmt.Errorf("ReadMatrix: decode %q: %w", path, ErrIO)
	}

	return &m, nil
}
