// SPDX-License-Identifier: MIT
// Package matrix - real symmetric eigen solver.
//
// Purpose:
//   - Diagonalize small real symmetric matrices (the real combinations of
//     a complex-symmetric magic-basis matrix) with the classical Jacobi
//     method: deterministic pivot order, orthogonal accumulator, no allocations.
//
// Notes:
//   - The complex determinant lives on Mat4.Det (impl_fixed.go).

package matrix

import (
	"fmt"
	"math"
	"sort"
)

// EigenSym4 computes eigenvalues and an orthonormal eigenvector basis of a
// real symmetric 4×4 matrix using Jacobi rotations.
//
// Implementation:
//   - Stage 1: Validate symmetry (|a_ij - a_ji| <= tol·scale) and finiteness.
//   - Stage 2: Initialize working copy A and accumulator Q = I.
//   - Stage 3: Repeat up to maxIter rotations:
//     pick the (p,q) pivot maximizing |A[p,q]| (row-major scan, first max wins),
//     stop when |A[p,q]| <= tol·scale,
//     zero negligible pivots outright, otherwise rotate with
//     θ = (aqq−app)/(2apq), t = sign(θ)/(|θ|+√(θ²+1)), c = 1/√(1+t²), s = t·c.
//   - Stage 4: Read eigenvalues from diag(A), sort ascending (stable),
//     permute the columns of Q accordingly.
//
// Inputs:
//   - a: real symmetric matrix.
//   - opts: WithEigenTolerance, WithEigenMaxIter.
//
// Returns:
//   - vals: eigenvalues in ascending order.
//   - vecs: column k is the unit eigenvector of vals[k]; vecsᵀ·a·vecs ≈ diag(vals).
//
// Errors:
//   - ErrNaNInf for non-finite input.
//   - ErrAsymmetry if a is not symmetric within tolerance.
//   - ErrEigenFailed if the rotation budget is exhausted.
//
// Determinism:
//   - Fixed scan order and tie-breaking; identical input ⇒ identical output.
//
// Complexity:
//   - O(maxIter · n) with n = 4; typically fewer than 40 rotations.
func EigenSym4(a Real4, opts ...EigenOption) ([4]float64, Real4, error) {
	var vals [4]float64
	var q Real4
	o := gatherEigenOptions(opts...)

	// Stage 1: scale and validation
	var i, j int
	var scale float64
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			if math.IsNaN(a[i][j]) || math.IsInf(a[i][j], 0) {
				return vals, q, matrixErrorf(opEigenSym4, ErrNaNInf)
			}
			scale += a[i][j] * a[i][j]
		}
	}
	scale = math.Sqrt(scale)
	threshold := o.tol * scale
	for i = 0; i < 4; i++ {
		for j = i + 1; j < 4; j++ {
			if math.Abs(a[i][j]-a[j][i]) > math.Max(threshold, 1e-12*scale) {
				return vals, q, matrixErrorf(opEigenSym4,
					fmt.Errorf("a[%d][%d]=%g vs a[%d][%d]=%g: %w", i, j, a[i][j], j, i, a[j][i], ErrAsymmetry))
			}
		}
	}

	// Stage 2: working copy and accumulator
	w := a
	for i = 0; i < 4; i++ {
		q[i][i] = 1
	}

	// Stage 3: Jacobi rotations
	var (
		iter, p, r         int     // iteration counter and pivot indices (p < r)
		maxOff, off        float64 // current max |A[p,r]| and scan temporary
		app, arr, apr      float64 // A[p,p], A[r,r], A[p,r]
		aip, air, qip, qir float64 // row/column temporaries
		theta, t, c, s     float64 // rotation parameters
		converged          bool
	)
	for iter = 0; iter < o.maxIter; iter++ {
		maxOff = 0
		for i = 0; i < 4; i++ {
			for j = i + 1; j < 4; j++ {
				if off = math.Abs(w[i][j]); off > maxOff {
					maxOff, p, r = off, i, j
				}
			}
		}
		if maxOff <= threshold {
			converged = true
			break
		}

		app, arr, apr = w[p][p], w[r][r], w[p][r]
		// Negligible pivot: the rotation would not change the diagonal in floating point.
		if math.Abs(app)+pivotNegligible*math.Abs(apr) == math.Abs(app) &&
			math.Abs(arr)+pivotNegligible*math.Abs(apr) == math.Abs(arr) {
			w[p][r], w[r][p] = 0, 0
			continue
		}

		theta = (arr - app) / (2 * apr)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		for i = 0; i < 4; i++ {
			if i == p || i == r {
				continue
			}
			aip, air = w[i][p], w[i][r]
			w[i][p] = c*aip - s*air
			w[p][i] = w[i][p]
			w[i][r] = s*aip + c*air
			w[r][i] = w[i][r]
		}
		w[p][p] = c*c*app - 2*c*s*apr + s*s*arr
		w[r][r] = s*s*app + 2*c*s*apr + c*c*arr
		w[p][r], w[r][p] = 0, 0

		for i = 0; i < 4; i++ {
			qip, qir = q[i][p], q[i][r]
			q[i][p] = c*qip - s*qir
			q[i][r] = s*qip + c*qir
		}
	}
	if !converged {
		// The budget may run out exactly on the final rotation.
		maxOff = 0
		for i = 0; i < 4; i++ {
			for j = i + 1; j < 4; j++ {
				maxOff = math.Max(maxOff, math.Abs(w[i][j]))
			}
		}
		if maxOff > threshold {
			return vals, q, matrixErrorf(opEigenSym4, ErrEigenFailed)
		}
	}

	// Stage 4: sort ascending, permute columns.
	order := []int{0, 1, 2, 3}
	sort.SliceStable(order, func(x, y int) bool { return w[order[x]][order[x]] < w[order[y]][order[y]] })
	var sorted Real4
	for j = 0; j < 4; j++ {
		vals[j] = w[order[j]][order[j]]
		for i = 0; i < 4; i++ {
			sorted[i][j] = q[i][order[j]]
		}
	}

	return vals, sorted, nil
}
