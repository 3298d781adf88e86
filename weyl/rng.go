// SPDX-License-Identifier: MIT
// Package weyl - deterministic random stream for the diagonalization retries.
//
// The stream is a 128-bit multiplicative congruential generator with an
// XSL-RR output function (PCG64-MCG), seeded from a 64-bit value through a
// PCG32 expansion. Normal variates come from a 256-layer ziggurat that takes
// the layer index and the sign-carrying mantissa from one 64-bit draw.
// Identical seeds produce identical variates on every platform, so a
// decomposition that needs a retry is still reproducible.
//
// Concurrency:
//   - A normalStream is not goroutine-safe; New creates a fresh one per call.

package weyl

import (
	"math"
	"math/bits"
	"math/rand/v2"
)

// diagonalizeSeed seeds the retry stream of every decomposition.
const diagonalizeSeed uint64 = 2023

const (
	mcgMulHi uint64 = 0x2360ED051FC65DA4
	mcgMulLo uint64 = 0x4385DF649FCCF645

	pcg32Mul uint64 = 6364136223846793005
	pcg32Inc uint64 = 11634580027462260723
)

// mcg128 implements rand.Source.
type mcg128 struct {
	hi, lo uint64
}

var _ rand.Source = (*mcg128)(nil)

// newMCG128 expands seed into 128 bits of state with four PCG32 outputs
// (little-endian words) and forces the state odd.
func newMCG128(seed uint64) *mcg128 {
	var words [4]uint32
	state := seed
	for i := range words {
		state = state*pcg32Mul + pcg32Inc
		xorshifted := uint32(((state >> 18) ^ state) >> 27)
		words[i] = bits.RotateLeft32(xorshifted, -int(state>>59))
	}
	lo := uint64(words[0]) | uint64(words[1])<<32
	hi := uint64(words[2]) | uint64(words[3])<<32
	return &mcg128{hi: hi, lo: lo | 1}
}

// Uint64 advances the state and returns the XSL-RR output.
func (m *mcg128) Uint64() uint64 {
	h, l := bits.Mul64(m.lo, mcgMulLo)
	h += m.hi*mcgMulLo + m.lo*mcgMulHi
	m.hi, m.lo = h, l
	return bits.RotateLeft64(m.hi^m.lo, -int(m.hi>>58))
}

// normalStream draws standard normal variates from a 64-bit source.
type normalStream struct {
	src rand.Source
}

// retryStream returns the normal-variate source used after the first trial.
func retryStream() *normalStream {
	return &normalStream{src: newMCG128(diagonalizeSeed)}
}

// Norm returns the next N(0, 1) variate.
//
// Implementation:
//   - Low 8 bits pick layer i; the high 52 bits form u ∈ [-1, 1) through the
//     [2, 4) exponent trick; x = u·X[i].
//   - Accept at once when |x| < X[i+1].
//   - Layer 0 samples the tail beyond R by Marsaglia's method.
//   - Otherwise accept when F[i+1] + (F[i]-F[i+1])·U < f(x), else redraw.
func (s *normalStream) Norm() float64 {
	var (
		b    uint64
		i    int
		u, x float64
	)
	for {
		b = s.src.Uint64()
		i = int(b & 0xff)
		u = math.Float64frombits(b>>12|(1023+1)<<52) - 3
		x = u * zigNormX[i]
		if math.Abs(x) < zigNormX[i+1] {
			return x
		}
		if i == 0 {
			return s.tail(u)
		}
		if zigNormF[i+1]+(zigNormF[i]-zigNormF[i+1])*s.unit() < math.Exp(-x*x/2) {
			return x
		}
	}
}

// tail draws from the normal tail beyond zigNormR on the side of u.
func (s *normalStream) tail(u float64) float64 {
	x, y := 1.0, 0.0
	for -2*y < x*x {
		x = math.Log(s.open01()) / zigNormR
		y = math.Log(s.open01())
	}
	if u < 0 {
		return x - zigNormR
	}
	return zigNormR - x
}

// unit returns a uniform value in [0, 1) with 53 bits.
func (s *normalStream) unit() float64 {
	return float64(s.src.Uint64()>>11) * 0x1p-53
}

// open01 returns a uniform value in (0, 1).
func (s *normalStream) open01() float64 {
	return math.Float64frombits(s.src.Uint64()>>12|1023<<52) - (1 - 0x1p-53)
}
