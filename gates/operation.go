// SPDX-License-Identifier: MIT

package gates

import "github.com/katalvlaran/twoq/matrix"

// Operation is anything that can appear in a gate sequence: the standard
// gates of this package, or a caller-defined gate family.
//
// Matrix returns a 2^n × 2^n unitary for n = NumQubits(), little-endian over
// the operation's qubit arguments. Inverse returns the operation and
// parameters whose matrix is the adjoint of Matrix(params).
type Operation interface {
	Name() string
	NumQubits() int
	NumParams() int
	Matrix(params []float64) (*matrix.Dense, error)
	Inverse(params []float64) (Operation, []float64, error)
}

// Matrix2 evaluates a one-qubit operation as a Mat2.
func Matrix2(op Operation, params []float64) (matrix.Mat2, error) {
	d, err := op.Matrix(params)
	if err != nil {
		return matrix.Mat2{}, err
	}
	return d.ToMat2()
}

// Matrix4 evaluates a two-qubit operation as a Mat4.
func Matrix4(op Operation, params []float64) (matrix.Mat4, error) {
	d, err := op.Matrix(params)
	if err != nil {
		return matrix.Mat4{}, err
	}
	return d.ToMat4()
}

// Family is a caller-defined single-parameter two-qubit gate, e.g. a
// hardware-native interaction whose parameter is not the RXX angle.
// A nil InverseParam means θ ↦ -θ.
type Family struct {
	Label        string
	Unitary      func(theta float64) matrix.Mat4
	InverseParam func(theta float64) float64
}

var _ Operation = (*Family)(nil)

// Name returns the family label.
func (f *Family) Name() string { return f.Label }

// NumQubits is 2.
func (f *Family) NumQubits() int { return 2 }

// NumParams is 1.
func (f *Family) NumParams() int { return 1 }

// Matrix evaluates the family at params[0].
func (f *Family) Matrix(params []float64) (*matrix.Dense, error) {
	if len(params) != 1 {
		return nil, paramCountError(f.Label, len(params), 1)
	}
	return matrix.FromMat4(f.Unitary(params[0])), nil
}

// Inverse returns the same family at the inverted parameter.
func (f *Family) Inverse(params []float64) (Operation, []float64, error) {
	if len(params) != 1 {
		return nil, nil, paramCountError(f.Label, len(params), 1)
	}
	if f.InverseParam == nil {
		return f, []float64{-params[0]}, nil
	}
	return f, []float64{f.InverseParam(params[0])}, nil
}
