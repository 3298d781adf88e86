// SPDX-License-Identifier: MIT
package controlledu_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/twoq/controlledu"
	"github.com/katalvlaran/twoq/euler"
	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

func TestNew_Scale(t *testing.T) {
	cases := []struct {
		gate gates.Operation
		want float64
	}{
		{gates.RXX, 1},
		{gates.RYY, 1},
		{gates.RZZ, 1},
		{gates.RZX, 1},
		{gates.CPhase, 2},
		{gates.CRX, 2},
		{gates.CRZ, 2},
		{&gates.Family{Label: "zz", Unitary: gates.RZZMatrix}, 1},
	}
	for _, tc := range cases {
		t.Run(tc.gate.Name(), func(t *testing.T) {
			d := mustDecomposer(t, tc.gate)
			assert.InDelta(t, tc.want, d.Scale(), 1e-9)
			assert.Equal(t, tc.gate, d.Gate())
			assert.Equal(t, controlledu.DefaultEulerBasis, d.EulerBasis())
		})
	}
}

func TestNew_RejectsFamilies(t *testing.T) {
	// wrong shape
	for _, g := range []gates.Operation{gates.CX, gates.RX} {
		_, err := controlledu.New(g)
		assert.ErrorIs(t, err, controlledu.ErrGateEquivalence, g.Name())
	}

	// not controlled-equivalent
	xy := &gates.Family{Label: "xy", Unitary: func(theta float64) matrix.Mat4 {
		return gates.RXXMatrix(theta).Mul(gates.RYYMatrix(theta))
	}}
	_, err := controlledu.New(xy)
	assert.ErrorIs(t, err, controlledu.ErrGateEquivalence)
	assert.ErrorIs(t, err, weyl.ErrFidelityBelowRequest)

	// angle-dependent scale
	squared := &gates.Family{Label: "sq", Unitary: func(theta float64) matrix.Mat4 {
		return gates.RXXMatrix(theta * theta)
	}}
	_, err = controlledu.New(squared)
	require.ErrorIs(t, err, controlledu.ErrGateEquivalence)
	assert.Contains(t, err.Error(), "inconsistent scaling")
}

func TestSynthesize_RXXTarget(t *testing.T) {
	d := mustDecomposer(t, gates.RXX)
	u := gates.RXXMatrix(math.Pi / 3)
	seq, err := d.Synthesize(u)
	require.NoError(t, err)
	assert.Equal(t, 1, seq.CountOps()["rxx"])
	for _, in := range seq.Instructions {
		if in.Name() == "rxx" {
			assert.InDelta(t, math.Pi/3, math.Abs(in.Params[0]), 1e-12)
			assert.Equal(t, []int{0, 1}, in.Qubits)
		}
	}
	requireReproduces(t, u, seq)
}

// An RXX target in the default ZXZ basis is one rxx dressed by eight
// Euler blocks: the target's four local factors and the inverted local
// factors of the basis gate.
func TestSynthesize_RXXTargetShape(t *testing.T) {
	d := mustDecomposer(t, gates.RXX)
	u := gates.RXXMatrix(math.Pi / 3)
	seq, err := d.Synthesize(u)
	require.NoError(t, err)

	counts := seq.CountOps()
	require.Equal(t, 1, counts["rxx"])
	local := 0
	for _, in := range seq.Instructions {
		switch in.Name() {
		case "rxx":
			assert.InDelta(t, math.Pi/3, math.Abs(in.Params[0]), 1e-12)
		case "rx", "rz":
			require.Len(t, in.Qubits, 1)
			local++
		default:
			t.Fatalf("unexpected %s in ZXZ output", in.Name())
		}
	}
	assert.Equal(t, len(seq.Instructions)-1, local)
	assert.LessOrEqual(t, local, 8*3)
	assert.Zero(t, counts["ryy"]+counts["rzz"])
	requireReproduces(t, u, seq)
}

type familySuite struct {
	suite.Suite
	gate gates.Operation
	d    *controlledu.Decomposer
}

func (s *familySuite) SetupSuite() {
	s.d = mustDecomposer(s.T(), s.gate)
}

func (s *familySuite) TestRandom() {
	rng := seeded(41)
	for i := 0; i < 10; i++ {
		u := matrix.RandomUnitary4(rng)
		seq, err := s.d.Synthesize(u)
		s.Require().NoError(err)
		s.Equal(3, seq.CountOps()[s.gate.Name()])
		requireReproduces(s.T(), u, seq)
	}
}

func (s *familySuite) TestChamberSigns() {
	cases := []struct {
		u    matrix.Mat4
		uses int
	}{
		{matrix.Identity4(), 1},
		{gates.CXMatrix(), 1},
		{gates.SwapMatrix(), 3},
		{weyl.Ud(0.5, 0.3, 0.1), 3},
		{weyl.Ud(0.5, 0.3, -0.1), 3},
		{weyl.Ud(0.4, 0.2, 0), 2},
	}
	for _, tc := range cases {
		seq, err := s.d.Synthesize(tc.u)
		s.Require().NoError(err)
		s.Equal(tc.uses, seq.CountOps()[s.gate.Name()])
		requireReproduces(s.T(), tc.u, seq)
	}
}

func TestFamilies(t *testing.T) {
	for _, g := range []gates.Operation{
		gates.RXX,
		gates.RZZ,
		gates.RZX,
		gates.CPhase,
		gates.CRX,
		&gates.Family{Label: "zz", Unitary: gates.RZZMatrix},
	} {
		t.Run(g.Name(), func(t *testing.T) {
			suite.Run(t, &familySuite{gate: g})
		})
	}
}

func TestSynthesize_EulerBases(t *testing.T) {
	rng := seeded(42)
	for _, b := range []euler.Basis{euler.ZYZ, euler.XYX, euler.U, euler.ZSX, euler.RR} {
		d := mustDecomposer(t, gates.RZZ, controlledu.WithEulerBasis(b))
		u := matrix.RandomUnitary4(rng)
		seq, err := d.Synthesize(u)
		require.NoError(t, err, b.String())
		requireReproduces(t, u, seq)
	}
}

func TestSynthesize_Atol(t *testing.T) {
	d := mustDecomposer(t, gates.RXX)
	u := weyl.Ud(0.5, 0.3, 0.1)
	seq, err := d.Synthesize(u, controlledu.WithAtol(0.2))
	require.NoError(t, err)
	assert.Equal(t, 2, seq.CountOps()["rxx"])

	assert.Panics(t, func() { controlledu.WithAtol(-1) })
	assert.Panics(t, func() { controlledu.WithEulerBasis(euler.Basis(200)) })
}

func TestNumBasisGates(t *testing.T) {
	d := mustDecomposer(t, gates.CPhase)
	cases := []struct {
		u    matrix.Mat4
		want int
	}{
		{matrix.Identity4(), 0},
		{gates.RXXMatrix(math.Pi / 3), 1},
		{weyl.Ud(0.4, 0.2, 0), 2},
		{weyl.Ud(0.5, 0.3, 0.1), 3},
	}
	for _, tc := range cases {
		n, err := d.NumBasisGates(tc.u, controlledu.DefaultAtol)
		require.NoError(t, err)
		assert.Equal(t, tc.want, n)
	}
}
