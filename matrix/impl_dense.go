// SPDX-License-Identifier: MIT

// Package matrix - complex Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a row-major complex128 buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Act as the boundary type between callers (arbitrary-shaped input, gate
//     matrices of any arity) and the fixed-size Mat2/Mat4 value types used by
//     the decomposition algorithms.
//   - Enforce a numeric policy (rejection of NaN/Inf components) from a single source of truth.
//
// AI-Hints:
//   - Convert to Mat2/Mat4 once (ToMat2/ToMat4) and run algebra on the value types.
//   - FromMat2/FromMat4 never fail; the reverse conversions check the shape.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major complex matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int          // row and column counts (> 0)
	data           []complex128 // contiguous row-major storage (len == r*c)
	validateNaNInf bool         // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation and default numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and initialize policy from defaults.
//
// Inputs:
//   - rows: positive number of rows
//   - cols: positive number of columns
//
// Returns:
//   - *Dense: newly allocated matrix.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]complex128, rows*cols),
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFromRows copies a rectangular [][]complex128 into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions if rows is empty or the first row is empty.
//   - ErrDimensionMismatch if rows are ragged.
//   - ErrNaNInf if any component is non-finite.
//
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]complex128) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	d, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	var i, j int
	for i = 0; i < d.r; i++ {
		if len(rows[i]) != d.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d entries, want %d: %w",
				i, len(rows[i]), d.c, ErrDimensionMismatch))
		}
		for j = 0; j < d.c; j++ {
			if err = d.Set(i, j, rows[i][j]); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return d, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// At returns the element at (i, j) or ErrOutOfRange.
func (m *Dense) At(i, j int) (complex128, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, denseErrorf(ctxAt, i, j, ErrOutOfRange)
	}

	return m.data[i*m.c+j], nil
}

// Set assigns v at (i, j).
// Errors: ErrOutOfRange for bad indices, ErrNaNInf for non-finite components
// when the numeric policy is on.
func (m *Dense) Set(i, j int, v complex128) error {
	if m == nil {
		return ErrNilMatrix
	}
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return denseErrorf(ctxSet, i, j, ErrOutOfRange)
	}
	if m.validateNaNInf && !isFinite(v) {
		return denseErrorf(ctxSet, i, j, ErrNaNInf)
	}
	m.data[i*m.c+j] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, validateNaNInf: m.validateNaNInf}
	out.data = append([]complex128(nil), m.data...)

	return out
}

// String renders rows as "[a, b]\n" lines using %.6g for both components.
func (m *Dense) String() string {
	if m == nil {
		return "<nil>"
	}
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		sb.WriteString(_fmtRowOpen)
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(formatComplex(m.data[i*m.c+j]))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// ToMat2 converts a 2×2 Dense into a Mat2.
func (m *Dense) ToMat2() (Mat2, error) {
	var out Mat2
	if m == nil {
		return out, matrixErrorf(opToMat2, ErrNilMatrix)
	}
	if m.r != 2 || m.c != 2 {
		return out, matrixErrorf(opToMat2, fmt.Errorf("got %dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	out[0][0], out[0][1] = m.data[0], m.data[1]
	out[1][0], out[1][1] = m.data[2], m.data[3]

	return out, nil
}

// ToMat4 converts a 4×4 Dense into a Mat4.
func (m *Dense) ToMat4() (Mat4, error) {
	var out Mat4
	if m == nil {
		return out, matrixErrorf(opToMat4, ErrNilMatrix)
	}
	if m.r != 4 || m.c != 4 {
		return out, matrixErrorf(opToMat4, fmt.Errorf("got %dx%d: %w", m.r, m.c, ErrDimensionMismatch))
	}
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			out[i][j] = m.data[i*4+j]
		}
	}

	return out, nil
}

// FromMat2 wraps a Mat2 into a fresh 2×2 Dense.
func FromMat2(a Mat2) *Dense {
	return &Dense{
		r: 2, c: 2,
		data:           []complex128{a[0][0], a[0][1], a[1][0], a[1][1]},
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// FromMat4 wraps a Mat4 into a fresh 4×4 Dense.
func FromMat4(a Mat4) *Dense {
	d := &Dense{r: 4, c: 4, data: make([]complex128, 16), validateNaNInf: DefaultValidateNaNInf}
	var i, j int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			d.data[i*4+j] = a[i][j]
		}
	}

	return d
}

// isFinite reports whether both components of v are finite.
func isFinite(v complex128) bool {
	return !cmplx.IsNaN(v) && !math.IsInf(real(v), 0) && !math.IsInf(imag(v), 0)
}

// formatComplex renders v compactly: "1", "-0.5i", "0.7071+0.7071i".
func formatComplex(v complex128) string {
	re, im := real(v), imag(v)
	switch {
	case im == 0:
		return fmt.Sprintf("%.6g", re)
	case re == 0:
		return fmt.Sprintf("%.6gi", im)
	default:
		return fmt.Sprintf("%.6g%+.6gi", re, im)
	}
}
