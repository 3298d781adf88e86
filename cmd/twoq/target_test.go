// SPDX-License-Identifier: MIT
package main

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/twoq/gates"
	"github.com/katalvlaran/twoq/matrix"
)

func TestLoadTarget_GateCall(t *testing.T) {
	u, err := loadTarget("rzz(pi/3)")
	require.NoError(t, err)
	assert.True(t, u.AllClose(gates.RZZMatrix(math.Pi/3), 1e-15))

	_, err = loadTarget("h")
	assert.Error(t, err)
	_, err = loadTarget("rzz")
	assert.ErrorIs(t, err, gates.ErrParamCount)
	_, err = loadTarget("frobnicate")
	assert.ErrorIs(t, err, gates.ErrUnknownGate)
}

func TestLoadTarget_MatrixFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cx.txt")
	content := "# controlled X, control on qubit 0\n1 0 0 0\n0 0 0 1\n0 0 1 0\n0 1 0 0\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	u, err := loadTarget(path)
	require.NoError(t, err)
	assert.True(t, u.AllClose(gates.CXMatrix(), 0))

	bad := filepath.Join(t.TempDir(), "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("1 0\n0 1j\n"), 0o600))
	_, err = loadTarget(bad)
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	scaled := filepath.Join(t.TempDir(), "scaled.txt")
	require.NoError(t, os.WriteFile(scaled, []byte("2 0 0 0\n0 2 0 0\n0 0 2 0\n0 0 0 2\n"), 0o600))
	_, err = loadTarget(scaled)
	assert.ErrorIs(t, err, matrix.ErrNotUnitary)
}
