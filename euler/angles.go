// SPDX-License-Identifier: MIT

// Package euler - angle extraction.
//
// Every basis reduces to the ZYZ parameters of a (possibly conjugated) input:
//
//	U = e^{iγ}·Rz(φ)·Ry(θ)·Rz(λ),  θ ∈ [0, π].
//
// Rx = Rz(-π/2)·Ry·Rz(π/2) turns ZYZ into ZXZ; the X-axis families are the
// Z-axis ones of V†·U·V for a fixed Clifford V.

package euler

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/twoq/matrix"
)

var (
	// ryQuarter = Ry(π/2): maps Z to X and keeps Y.
	ryQuarter = matrix.Mat2{
		{complex(1/math.Sqrt2, 0), complex(-1/math.Sqrt2, 0)},
		{complex(1/math.Sqrt2, 0), complex(1/math.Sqrt2, 0)},
	}
	// zToXyToZ maps Z to X and Y to Z (and X to Y).
	zToXyToZ = matrix.Mat2{
		{0.5 - 0.5i, -0.5 - 0.5i},
		{0.5 - 0.5i, 0.5 + 0.5i},
	}
)

// paramsZYZ returns (θ, φ, λ, γ) with U = e^{iγ}·Rz(φ)·Ry(θ)·Rz(λ).
func paramsZYZ(u matrix.Mat2) (theta, phi, lambda, phase float64) {
	detArg := cmplx.Phase(u.Det())
	phase = detArg / 2
	theta = 2 * math.Atan2(cmplx.Abs(u[1][0]), cmplx.Abs(u[0][0]))
	a11, a10 := cmplx.Phase(u[1][1]), cmplx.Phase(u[1][0])
	phi = a11 + a10 - detArg
	lambda = a11 - a10
	return theta, phi, lambda, phase
}

// paramsZXZ returns (θ, φ, λ, γ) with U = e^{iγ}·Rz(φ)·Rx(θ)·Rz(λ).
func paramsZXZ(u matrix.Mat2) (theta, phi, lambda, phase float64) {
	theta, phi, lambda, phase = paramsZYZ(u)
	return theta, phi + math.Pi/2, lambda - math.Pi/2, phase
}

// paramsXYX returns (θ, φ, λ, γ) with U = e^{iγ}·Rx(φ)·Ry(θ)·Rx(λ).
func paramsXYX(u matrix.Mat2) (theta, phi, lambda, phase float64) {
	return paramsZYZ(ryQuarter.Dagger().Mul(u).Mul(ryQuarter))
}

// paramsXZX returns (θ, φ, λ, γ) with U = e^{iγ}·Rx(φ)·Rz(θ)·Rx(λ).
func paramsXZX(u matrix.Mat2) (theta, phi, lambda, phase float64) {
	return paramsZYZ(zToXyToZ.Dagger().Mul(u).Mul(zToXyToZ))
}

// AnglesFromUnitary returns the Euler angles of u in the given basis.
//
// Conventions (θ ∈ [0, π]):
//   - ZYZ, ZXZ, XYX, XZX and RR: U = e^{i·phase}·K(φ)·A(θ)·K(λ), where K and A
//     are the rotations named by the basis (RR reports ZYZ angles).
//   - U3, U321, U: U = e^{i·phase}·U3(θ, φ, λ).
//   - PSX, ZSX, ZSXX, U1X: U = e^{i·phase}·U1(φ+π)·RX(π/2)·U1(θ+π)·RX(π/2)·U1(λ).
//
// Errors:
//   - ErrUnknownBasis for a basis outside the enumeration.
//   - ErrNotFinite for NaN or Inf entries.
func AnglesFromUnitary(u matrix.Mat2, basis Basis) (theta, phi, lambda, phase float64, err error) {
	if !finite(u) {
		return 0, 0, 0, 0, ErrNotFinite
	}
	switch basis {
	case ZYZ, RR:
		theta, phi, lambda, phase = paramsZYZ(u)
	case ZXZ:
		theta, phi, lambda, phase = paramsZXZ(u)
	case XYX:
		theta, phi, lambda, phase = paramsXYX(u)
	case XZX:
		theta, phi, lambda, phase = paramsXZX(u)
	case U3, U321, U:
		theta, phi, lambda, phase = paramsZYZ(u)
		phase -= (phi + lambda) / 2
	case PSX, ZSX, ZSXX, U1X:
		theta, phi, lambda, phase = paramsZYZ(u)
		phase -= (theta + phi + lambda) / 2
	default:
		return 0, 0, 0, 0, fmt.Errorf("%s: %w", basis, ErrUnknownBasis)
	}
	return theta, phi, lambda, phase, nil
}

func finite(u matrix.Mat2) bool {
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			if cmplx.IsNaN(u[i][j]) || cmplx.IsInf(u[i][j]) {
				return false
			}
		}
	}
	return true
}

// wrapAngle maps a into [-π, π] and returns the number k of whole turns
// removed (a = wrapped + 2πk). A Pauli rotation picks up (-1)^k.
func wrapAngle(a float64) (float64, int) {
	k := math.Round(a / (2 * math.Pi))
	return a - 2*math.Pi*k, int(k)
}
