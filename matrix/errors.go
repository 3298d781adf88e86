// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." so callers can grep for the
// origin. Sentinels are returned directly or wrapped once with an operation
// tag via matrixErrorf; callers match them with errors.Is.
//
// ERROR PRIORITY:
// shape/index/NaN -> dimension mismatch -> numeric failure (eigen/singular).

var (
	// ErrInvalidDimensions indicates that requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible shapes, e.g. converting a
	// 3×3 Dense into a Mat4, or ragged rows passed to NewDenseFromRows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaNInf signals that a NaN or ±Inf component was encountered where
	// finite values are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrEigenFailed indicates that the Jacobi routine did not converge
	// under the given tolerance/iterations.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")

	// ErrNotUnitary indicates that m·m† deviates from the identity beyond the
	// tolerance.
	ErrNotUnitary = errors.New("matrix: matrix is not unitary")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry beyond the tolerance.
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")
)

// operation tags used with matrixErrorf.
const (
	opEigenSym4  = "EigenSym4"
	opToMat2     = "ToMat2"
	opToMat4     = "ToMat4"
	opFromRows   = "NewDenseFromRows"
	opParseEntry = "ParseComplex"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel for errors.Is.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
