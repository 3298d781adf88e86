// SPDX-License-Identifier: MIT
package weyl_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
	"github.com/katalvlaran/twoq/weyl"
)

const pi4 = math.Pi / 4

func TestNew_RandomUnitaries(t *testing.T) {
	rng := seeded(5)
	for i := 0; i < 100; i++ {
		u := matrix.RandomUnitary4(rng)
		d, err := weyl.New(u)
		require.NoError(t, err)
		requireReconstructs(t, u, d)

		// Haar-random unitaries sit at no symmetric point.
		assert.Equal(t, weyl.General, d.Specialization())
		assert.LessOrEqual(t, d.A(), pi4+1e-12)
		assert.GreaterOrEqual(t, d.A()+1e-12, d.B())
		assert.GreaterOrEqual(t, d.B()+1e-12, math.Abs(d.C()))
		assert.InDelta(t, 1.0, d.CalculatedFidelity(), 1e-15)

		f, ok := d.RequestedFidelity()
		assert.True(t, ok)
		assert.Equal(t, weyl.DefaultFidelity, f)
		assert.Equal(t, u, d.Unitary())
	}
}

func TestNew_IdentityIsIdEquiv(t *testing.T) {
	d, err := weyl.New(matrix.Identity4())
	require.NoError(t, err)
	assert.Equal(t, weyl.IdEquiv, d.Specialization())
	assert.Zero(t, d.A())
	assert.Zero(t, d.B())
	assert.Zero(t, d.C())
	assert.Equal(t, matrix.Identity2(), d.K2L())
	assert.Equal(t, matrix.Identity2(), d.K2R())
	requireReconstructs(t, matrix.Identity4(), d)
}

// specialSuite checks the specialization and coordinates of named gates,
// both bare and dressed with random local operations.
type specialSuite struct {
	suite.Suite
}

type specialCase struct {
	name    string
	u       matrix.Mat4
	spec    weyl.Specialization
	a, b, c float64
}

func specialCases() []specialCase {
	iswap := matrix.Mat4{{1, 0, 0, 0}, {0, 0, 1i, 0}, {0, 1i, 0, 0}, {0, 0, 0, 1}}
	return []specialCase{
		{"identity", matrix.Identity4(), weyl.IdEquiv, 0, 0, 0},
		{"cx", gates.CXMatrix(), weyl.ControlledEquiv, pi4, 0, 0},
		{"cz", gates.CZMatrix(), weyl.ControlledEquiv, pi4, 0, 0},
		{"swap", gates.SwapMatrix(), weyl.SWAPEquiv, pi4, pi4, pi4},
		{"iswap", iswap, weyl.MirrorControlledEquiv, pi4, pi4, 0},
		{"rxx", gates.RXXMatrix(0.7), weyl.ControlledEquiv, 0.35, 0, 0},
		{"ryy", gates.RYYMatrix(0.3), weyl.ControlledEquiv, 0.15, 0, 0},
		{"rzz", gates.RZZMatrix(-0.4), weyl.ControlledEquiv, 0.2, 0, 0},
		{"cp", gates.CPhaseMatrix(1.1), weyl.ControlledEquiv, 0.275, 0, 0},
		{"partial swap", weyl.Ud(0.3, 0.3, 0.3), weyl.PartialSWAPEquiv, 0.3, 0.3, 0.3},
		{"partial swap flip", weyl.Ud(0.3, 0.3, -0.3), weyl.PartialSWAPFlipEquiv, 0.3, 0.3, -0.3},
		{"fsim aab", weyl.Ud(0.5, 0.5, 0.2), weyl.FSimaabEquiv, 0.5, 0.5, 0.2},
		{"fsim abb", weyl.Ud(0.6, 0.2, 0.2), weyl.FSimabbEquiv, 0.6, 0.2, 0.2},
		{"fsim abmb", weyl.Ud(0.6, 0.25, -0.25), weyl.FSimabmbEquiv, 0.6, 0.25, -0.25},
		{"general", weyl.Ud(0.5, 0.3, 0.1), weyl.General, 0.5, 0.3, 0.1},
	}
}

func (s *specialSuite) TestBare() {
	for _, tc := range specialCases() {
		s.Run(tc.name, func() {
			d, err := weyl.New(tc.u)
			s.Require().NoError(err)
			s.Equal(tc.spec, d.Specialization())
			s.InDelta(tc.a, d.A(), 1e-9)
			s.InDelta(tc.b, d.B(), 1e-9)
			s.InDelta(tc.c, d.C(), 1e-9)
			s.True(d.Reconstruct().AllClose(tc.u, reconstructAtol), d.String())
		})
	}
}

func (s *specialSuite) TestDressed() {
	rng := seeded(7)
	for _, tc := range specialCases() {
		s.Run(tc.name, func() {
			for i := 0; i < 5; i++ {
				u := dress(rng, tc.u)
				d, err := weyl.New(u)
				s.Require().NoError(err)
				s.Equal(tc.spec, d.Specialization())
				s.True(d.Reconstruct().AllClose(u, reconstructAtol), d.String())
			}
		})
	}
}

func (s *specialSuite) TestCircuit() {
	rng := seeded(9)
	for _, tc := range specialCases() {
		s.Run(tc.name, func() {
			u := dress(rng, tc.u)
			d, err := weyl.New(u)
			s.Require().NoError(err)
			for _, simplify := range []bool{false, true} {
				seq, err := d.Circuit(weyl.WithSimplify(simplify))
				s.Require().NoError(err)
				got, err := seq.Unitary()
				s.Require().NoError(err)
				s.True(got.AllClose(u, reconstructAtol), "simplify=%v %s", simplify, d)
			}
		})
	}
}

func TestSpecialSuite(t *testing.T) {
	suite.Run(t, new(specialSuite))
}

func TestNew_SWAPCircuitUsesOneSwap(t *testing.T) {
	d, err := weyl.New(gates.SwapMatrix())
	require.NoError(t, err)
	seq, err := d.Circuit(weyl.WithSimplify(true))
	require.NoError(t, err)
	assert.Equal(t, 1, seq.CountOps()["swap"])
	assert.Zero(t, seq.CountOps()["rxx"])
}

func TestNew_ControlledCircuitSimplified(t *testing.T) {
	d, err := weyl.New(gates.CXMatrix())
	require.NoError(t, err)
	seq, err := d.Circuit(weyl.WithSimplify(true))
	require.NoError(t, err)
	counts := seq.CountOps()
	assert.Equal(t, 1, counts["rxx"])
	assert.Zero(t, counts["ryy"])
	assert.Zero(t, counts["rzz"])

	// Without simplification all three interaction rotations are kept.
	seq, err = d.Circuit()
	require.NoError(t, err)
	counts = seq.CountOps()
	assert.Equal(t, 1, counts["ryy"])
	assert.Equal(t, 1, counts["rzz"])
}

func TestCircuit_EulerBasisOverride(t *testing.T) {
	rng := seeded(21)
	u := matrix.RandomUnitary4(rng)
	d, err := weyl.New(u)
	require.NoError(t, err)
	for _, name := range []string{"ZSX", "U", "XZX", "RR"} {
		t.Run(name, func(t *testing.T) {
			b := mustBasis(t, name)
			seq, err := d.Circuit(weyl.WithEulerBasis(b), weyl.WithSimplify(true))
			require.NoError(t, err)
			got, err := seq.Unitary()
			require.NoError(t, err)
			require.True(t, got.AllClose(u, reconstructAtol))
		})
	}
}

func TestNew_ForcedSpecializationBelowFidelity(t *testing.T) {
	u := matrix.RandomUnitary4(seeded(11))
	_, err := weyl.New(u, weyl.WithSpecialization(weyl.IdEquiv))
	require.Error(t, err)
	assert.True(t, errors.Is(err, weyl.ErrFidelityBelowRequest))

	var fe weyl.FidelityError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, weyl.IdEquiv, fe.Specialization)
	assert.Less(t, fe.Calculated, fe.Requested)
	assert.Equal(t, weyl.DefaultFidelity, fe.Requested)
}

func TestNew_ForcedSpecializationWithoutFidelity(t *testing.T) {
	u := matrix.RandomUnitary4(seeded(11))
	d, err := weyl.New(u, weyl.WithoutFidelity(), weyl.WithSpecialization(weyl.IdEquiv))
	require.NoError(t, err)
	assert.Equal(t, weyl.IdEquiv, d.Specialization())
	assert.Less(t, d.CalculatedFidelity(), 0.99)
	_, ok := d.RequestedFidelity()
	assert.False(t, ok)
}

func TestNew_WithoutFidelityNeverSpecializes(t *testing.T) {
	d, err := weyl.New(gates.CXMatrix(), weyl.WithoutFidelity())
	require.NoError(t, err)
	assert.Equal(t, weyl.General, d.Specialization())
	requireReconstructs(t, gates.CXMatrix(), d)
}

func TestNew_LowFidelitySnapsToIdentity(t *testing.T) {
	// Ud(0.01, 0, 0) has Fbar ≈ 0.99992; a 0.999 floor accepts the identity.
	u := weyl.Ud(0.01, 0, 0)
	d, err := weyl.New(u, weyl.WithFidelity(0.999))
	require.NoError(t, err)
	assert.Equal(t, weyl.IdEquiv, d.Specialization())
	assert.Less(t, d.CalculatedFidelity(), 1.0)
	assert.GreaterOrEqual(t, d.CalculatedFidelity(), 0.999)
}

func TestNew_NonFinite(t *testing.T) {
	u := matrix.Identity4()
	u[1][2] = complex(math.NaN(), 0)
	_, err := weyl.New(u)
	assert.ErrorIs(t, err, weyl.ErrNotFinite)

	_, err = weyl.New(matrix.Mat4{})
	assert.ErrorIs(t, err, weyl.ErrNotFinite)
}

func TestCoordinates_OfCanonicalGate(t *testing.T) {
	for _, abc := range [][3]float64{
		{0.5, 0.3, 0.1},
		{0.7, 0.2, -0.1},
		{0.6, 0.45, 0.3},
		{0.25, 0.1, -0.05},
	} {
		got, err := weyl.Coordinates(weyl.Ud(abc[0], abc[1], abc[2]))
		require.NoError(t, err)
		for i := range abc {
			assert.InDelta(t, abc[i], got[i], 1e-10)
		}
	}
}

func TestCoordinates_LocallyInvariant(t *testing.T) {
	rng := seeded(13)
	u := matrix.RandomUnitary4(rng)
	want, err := weyl.Coordinates(u)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		got, err := weyl.Coordinates(dress(rng, u))
		require.NoError(t, err)
		for k := range want {
			assert.InDelta(t, want[k], got[k], 1e-9)
		}
	}
}

func TestSpecialization_String(t *testing.T) {
	assert.Equal(t, "General", weyl.General.String())
	assert.Equal(t, "SWAPEquiv", weyl.SWAPEquiv.String())
	assert.Equal(t, "fSimabmbEquiv", weyl.FSimabmbEquiv.String())
	assert.Equal(t, "Specialization(200)", weyl.Specialization(200).String())
}

func TestDefaultEulerBasis(t *testing.T) {
	d, err := weyl.New(gates.CXMatrix())
	require.NoError(t, err)
	assert.Equal(t, "XYX", d.DefaultEulerBasis().String())

	d, err = weyl.New(matrix.RandomUnitary4(seeded(3)))
	require.NoError(t, err)
	assert.Equal(t, "ZYZ", d.DefaultEulerBasis().String())
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { weyl.WithFidelity(1.5) })
	assert.Panics(t, func() { weyl.WithFidelity(math.NaN()) })
	assert.Panics(t, func() { weyl.WithSpecialization(weyl.Specialization(42)) })
	assert.Panics(t, func() { weyl.WithAtol(-1) })
}
