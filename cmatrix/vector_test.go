// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

func TestInnerAndNorm(t *testing.T) {
	t.Parallel()
	x := []complex128{1i, 1}
	y := []complex128{1, 1i}
	ip, err := cmatrix.Inner(x, y)
	require.NoError(t, err)
	assert.Equal(t, complex128(0), ip) // conj(i)·1 + 1·i = 0

	assert.InDelta(t, math.Sqrt2, cmatrix.VecNorm(x), eps)
	_, err = cmatrix.Inner(x, []complex128{1})
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestNormalize(t *testing.T) {
	t.Parallel()
	u, err := cmatrix.Normalize([]complex128{3, 4i})
	require.NoError(t, err)
	RequireVecClose(t, []complex128{0.6, 0.8i}, u, eps)

	_, err = cmatrix.Normalize([]complex128{0, 0})
	require.ErrorIs(t, err, cmatrix.ErrZeroVector)
}

func TestFixPhase(t *testing.T) {
	t.Parallel()
	v := []complex128{0, -1i / math.Sqrt2, 1 / math.Sqrt2}
	cmatrix.FixPhase(v, 1e-12)
	RequireVecClose(t, []complex128{0, 1 / math.Sqrt2, 1i / math.Sqrt2}, v, eps)

	zero := []complex128{0, 0}
	cmatrix.FixPhase(zero, 1e-12)
	assert.Equal(t, []complex128{0, 0}, zero)
}

func TestCanonicalBasis_InvariantUnderBasisChange(t *testing.T) {
	t.Parallel()
	s := complex128(1 / math.Sqrt2)
	// Two different orthonormal bases (with arbitrary phases) of span{e0, e2}.
	basisA := [][]complex128{{1, 0, 0}, {0, 0, 1}}
	basisB := [][]complex128{{1i * s, 0, s}, {-1i * s, 0, s}}

	ca, err := cmatrix.CanonicalBasis(basisA, 1e-9)
	require.NoError(t, err)
	cb, err := cmatrix.CanonicalBasis(basisB, 1e-9)
	require.NoError(t, err)

	require.Len(t, ca, 2)
	require.Len(t, cb, 2)
	for i := range ca {
		RequireVecClose(t, ca[i], cb[i], eps)
	}
	RequireVecClose(t, []complex128{1, 0, 0}, ca[0], eps)
	RequireVecClose(t, []complex128{0, 0, 1}, ca[1], eps)
}

func TestCanonicalBasis_RankDeficient(t *testing.T) {
	t.Parallel()
	got, err := cmatrix.CanonicalBasis([][]complex128{{1, 1}, {2, 2}}, 1e-9)
	require.NoError(t, err)
	require.Len(t, got, 1)
	s := 1 / math.Sqrt2
	RequireVecClose(t, []complex128{complex(s, 0), complex(s, 0)}, got[0], eps)

	empty, err := cmatrix.CanonicalBasis(nil, 1e-9)
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = cmatrix.CanonicalBasis([][]complex128{{1}, {1, 2}}, 1e-9)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}
