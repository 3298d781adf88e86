// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"math/cmplx"
	"math/rand/v2"
)

// RandomUnitary2 draws a Haar-random 2×2 unitary from rng.
// A nil rng uses a fixed-seed stream so that callers get reproducible output.
func RandomUnitary2(rng *rand.Rand) Mat2 {
	rng = orDefault(rng)
	// Uniform point on S³ gives a Haar SU(2) element; multiply by a random phase.
	var v [4]float64
	var n float64
	for n == 0 {
		for i := range v {
			v[i] = rng.NormFloat64()
			n += v[i] * v[i]
		}
		n = math.Sqrt(n)
	}
	a := complex(v[0]/n, v[1]/n)
	b := complex(v[2]/n, v[3]/n)
	su := Mat2{{a, -cmplx.Conj(b)}, {b, cmplx.Conj(a)}}

	return su.Scale(cmplx.Exp(complex(0, 2*math.Pi*rng.Float64())))
}

// RandomUnitary4 draws a Haar-random 4×4 unitary from rng by modified
// Gram–Schmidt orthonormalization of a complex Gaussian matrix (the implied R
// factor has a positive diagonal, which makes Q Haar distributed).
func RandomUnitary4(rng *rand.Rand) Mat4 {
	rng = orDefault(rng)
	var z Mat4
	var i, j, k int
	for i = 0; i < 4; i++ {
		for j = 0; j < 4; j++ {
			z[i][j] = complex(rng.NormFloat64(), rng.NormFloat64()) / complex(math.Sqrt2, 0)
		}
	}
	var dot complex128
	var norm float64
	for j = 0; j < 4; j++ {
		// two projection passes keep the columns orthogonal to working precision
		for pass := 0; pass < 2; pass++ {
			for k = 0; k < j; k++ {
				dot = 0
				for i = 0; i < 4; i++ {
					dot += cmplx.Conj(z[i][k]) * z[i][j]
				}
				for i = 0; i < 4; i++ {
					z[i][j] -= dot * z[i][k]
				}
			}
		}
		norm = 0
		for i = 0; i < 4; i++ {
			norm += real(z[i][j])*real(z[i][j]) + imag(z[i][j])*imag(z[i][j])
		}
		norm = math.Sqrt(norm)
		for i = 0; i < 4; i++ {
			z[i][j] /= complex(norm, 0)
		}
	}

	return z
}

// defaultRandomSeed seeds the stream used when callers pass a nil generator.
const defaultRandomSeed uint64 = 1

func orDefault(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewPCG(defaultRandomSeed, defaultRandomSeed))
}
