// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Boundary checks for caller-supplied matrices (files, user gate families)
//     before they reach the fixed-size algebra.
//   - Return wrapped sentinels so call sites can match with errors.Is.
//
// Determinism & Performance:
//   - All checks are pure and deterministic. ValidateUnitary forms one product.

package matrix

import (
	"fmt"
	"math"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix if m == nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != m.c {
		return validatorErrorf("ValidateSquare", fmt.Errorf("got %dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	return nil
}

// ValidateUnitary checks that m is a 2×2 or 4×4 matrix with m·m† = I within
// atol, entry by entry.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch on structural issues.
//   - ErrNaNInf for a non-finite or negative atol.
//   - ErrNotUnitary with the largest deviation otherwise.
//
// Complexity: O(n³) with n ≤ 4.
func ValidateUnitary(m *Dense, atol float64) error {
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if m.r != 2 && m.r != 4 {
		return validatorErrorf("ValidateUnitary", fmt.Errorf("got %dx%d, want 2x2 or 4x4: %w", m.r, m.c, ErrDimensionMismatch))
	}
	if math.IsNaN(atol) || math.IsInf(atol, 0) || atol < 0 {
		return validatorErrorf("ValidateUnitary", ErrNaNInf)
	}

	n := m.r
	var (
		i, j, k int
		acc     complex128
		dev     float64
		worst   float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			acc = 0
			for k = 0; k < n; k++ {
				acc += m.data[i*n+k] * complex(real(m.data[j*n+k]), -imag(m.data[j*n+k]))
			}
			if i == j {
				acc--
			}
			dev = math.Max(math.Abs(real(acc)), math.Abs(imag(acc)))
			if math.IsNaN(dev) {
				return validatorErrorf("ValidateUnitary", ErrNaNInf)
			}
			worst = math.Max(worst, dev)
		}
	}
	if worst > atol {
		return validatorErrorf("ValidateUnitary", fmt.Errorf("max |m·m† - I| = %.3g > %g: %w", worst, atol, ErrNotUnitary))
	}
	return nil
}

// IsZeroOffDiagonal reports whether every off-diagonal entry of a is within
// atol of zero, real and imaginary parts compared separately.
func IsZeroOffDiagonal(a Mat4, atol float64) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if i != j && !closeComplex(a[i][j], 0, atol) {
				return false
			}
		}
	}
	return true
}
