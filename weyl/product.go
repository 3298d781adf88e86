// SPDX-License-Identifier: MIT

package weyl

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/twoq/matrix"
)

// DecomposeProduct splits a 4×4 matrix of the form e^{iφ}·(L⊗R) into special
// unitaries l (qubit 1), r (qubit 0) and the phase φ.
//
// Implementation:
//   - Stage 1: R is the top-left 2×2 block, or the block at rows {2,3} and
//     columns {0,1} when the first is near singular; normalize R /= √det R.
//   - Stage 2: temp = u·(I⊗R†); L is the even-index submatrix of temp.
//   - Stage 3: normalize L /= √det L; φ = arg(det L)/2.
//
// Errors:
//   - ErrProductDecomposition when |det R| < 0.1 for both blocks or |det L| < 0.9.
func DecomposeProduct(u matrix.Mat4) (l, r matrix.Mat2, phase float64, err error) {
	r = u.Block(0, 0)
	detR := r.Det()
	if cmplx.Abs(detR) < 0.1 {
		r = u.Block(2, 0)
		detR = r.Det()
	}
	if cmplx.Abs(detR) < 0.1 {
		return l, r, 0, weylErrorf(opDecomposeProduct,
			fmt.Errorf("detR = %g < 0.1: %w", cmplx.Abs(detR), ErrProductDecomposition))
	}
	r = r.Scale(1 / cmplx.Sqrt(detR))

	temp := u.Mul(matrix.Kron(matrix.Identity2(), r.Dagger()))
	l = temp.Strided(0, 0)
	detL := l.Det()
	if cmplx.Abs(detL) < 0.9 {
		return l, r, 0, weylErrorf(opDecomposeProduct,
			fmt.Errorf("detL = %g < 0.9: %w", cmplx.Abs(detL), ErrProductDecomposition))
	}
	l = l.Scale(1 / cmplx.Sqrt(detL))

	return l, r, cmplx.Phase(detL) / 2, nil
}
