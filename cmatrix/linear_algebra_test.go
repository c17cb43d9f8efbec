// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

func TestAddSubScale(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]complex128{{1, 1i}, {2, 3}})
	b := MustRows(t, [][]complex128{{1i, 1}, {0, -3}})

	sum, err := cmatrix.Add(a, b)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1 + 1i, 1 + 1i}, {2, 0}}), sum, 0)

	diff, err := cmatrix.Sub(a, b)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1 - 1i, -1 + 1i}, {2, 6}}), diff, 0)

	sc, err := cmatrix.Scale(a, 1i)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1i, -1}, {2i, 3i}}), sc, 0)

	_, err = cmatrix.Add(a, MustRows(t, [][]complex128{{1}}))
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
	_, err = cmatrix.Add(nil, a)
	require.ErrorIs(t, err, cmatrix.ErrNilMatrix)
}

func TestAddScaledInPlace(t *testing.T) {
	t.Parallel()
	dst := MustRows(t, [][]complex128{{1, 0}, {0, 1}})
	src := MustRows(t, [][]complex128{{0, 1}, {1, 0}})
	require.NoError(t, cmatrix.AddScaledInPlace(dst, src, 2i))
	RequireClose(t, MustRows(t, [][]complex128{{1, 2i}, {2i, 1}}), dst, 0)
	require.ErrorIs(t, cmatrix.AddScaledInPlace(dst, MustRows(t, [][]complex128{{1}}), 1), cmatrix.ErrDimensionMismatch)
}

func TestMul(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]complex128{{1, 2}, {3, 4}, {5, 6}})
	b := MustRows(t, [][]complex128{{1i, 0}, {0, 1}})
	got, err := cmatrix.Mul(a, b)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1i, 2}, {3i, 4}, {5i, 6}}), got, 0)

	_, err = cmatrix.Mul(b, a)
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}

func TestKron(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]complex128{{1, 2}, {3, 4}})
	b := MustRows(t, [][]complex128{{0, 1i}, {1, 0}})
	got, err := cmatrix.Kron(a, b)
	require.NoError(t, err)
	want := MustRows(t, [][]complex128{
		{0, 1i, 0, 2i},
		{1, 0, 2, 0},
		{0, 3i, 0, 4i},
		{3, 0, 4, 0},
	})
	RequireClose(t, want, got, 0)

	// Non-square factors: (1×2)⊗(2×1) is 2×2.
	row := MustRows(t, [][]complex128{{1, 2}})
	col := MustRows(t, [][]complex128{{1}, {-1}})
	got, err = cmatrix.Kron(row, col)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1, 2}, {-1, -2}}), got, 0)
}

func TestKron_TraceIdentity(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]complex128{{1i, 2}, {3, -1 + 1i}})
	b := MustRows(t, [][]complex128{{2, 0, 1}, {0, 1i, 0}, {4, 0, -3}})
	k, err := cmatrix.Kron(a, b)
	require.NoError(t, err)

	trA, err := cmatrix.Trace(a)
	require.NoError(t, err)
	trB, err := cmatrix.Trace(b)
	require.NoError(t, err)
	trK, err := cmatrix.Trace(k)
	require.NoError(t, err)
	assert.InDelta(t, real(trA*trB), real(trK), eps)
	assert.InDelta(t, imag(trA*trB), imag(trK), eps)
}

func TestConjTransposeAndHermitize(t *testing.T) {
	t.Parallel()
	a := MustRows(t, [][]complex128{{1 + 1i, 2}, {3i, 4}})
	h, err := cmatrix.ConjTranspose(a)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1 - 1i, -3i}, {2, 4}}), h, 0)

	herm, err := cmatrix.Hermitize(a)
	require.NoError(t, err)
	RequireClose(t, MustRows(t, [][]complex128{{1, 1 - 1.5i}, {1 + 1.5i, 4}}), herm, eps)
	dev, err := cmatrix.HermitianDeviation(herm)
	require.NoError(t, err)
	assert.Zero(t, dev)

	require.ErrorIs(t, cmatrix.ValidateHermitian(a, 1e-9), cmatrix.ErrNotHermitian)
	require.NoError(t, cmatrix.ValidateHermitian(herm, 1e-9))
}

func TestTrace_NonSquare(t *testing.T) {
	t.Parallel()
	_, err := cmatrix.Trace(MustRows(t, [][]complex128{{1, 2}}))
	require.ErrorIs(t, err, cmatrix.ErrNonSquare)
}

func TestMatVec(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]complex128{{0, 1i}, {1, 0}})
	y, err := cmatrix.MatVec(m, []complex128{2, 3})
	require.NoError(t, err)
	RequireVecClose(t, []complex128{3i, 2}, y, 0)
	_, err = cmatrix.MatVec(m, []complex128{1})
	require.ErrorIs(t, err, cmatrix.ErrDimensionMismatch)
}
