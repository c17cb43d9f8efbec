// SPDX-License-Identifier: MIT

package cmatrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

func TestNewDense_InvalidShape(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct{ r, c int }{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := cmatrix.NewDense(tc.r, tc.c)
		require.ErrorIs(t, err, cmatrix.ErrInvalidDimensions)
	}
}

func TestDense_AtSetBounds(t *testing.T) {
	t.Parallel()
	m, err := cmatrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 2, 3-4i))
	assert.Equal(t, 3-4i, MustAt(t, m, 1, 2))
	assert.Equal(t, complex128(0), MustAt(t, m, 0, 0))

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), cmatrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, complex(math.NaN(), 0)), cmatrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, complex(0, math.Inf(-1))), cmatrix.ErrNaNInf)
}

func TestFromRows(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]complex128{{1, 2i}, {3, 4}})
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 2, m.Cols())
	assert.Equal(t, 2i, MustAt(t, m, 0, 1))

	_, err := cmatrix.FromRows([][]complex128{{1, 2}, {3}})
	require.ErrorIs(t, err, cmatrix.ErrRaggedRows)
	_, err = cmatrix.FromRows(nil)
	require.ErrorIs(t, err, cmatrix.ErrInvalidDimensions)
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]complex128{{1, 2}, {3, 4}})
	c := m.Clone()
	require.NoError(t, c.Set(0, 0, 9))
	assert.Equal(t, complex128(1), MustAt(t, m, 0, 0))

	raw := m.RawRows()
	raw[1][1] = 0
	assert.Equal(t, complex128(4), MustAt(t, m, 1, 1))
}

func TestColumn(t *testing.T) {
	t.Parallel()
	m := MustRows(t, [][]complex128{{1, 2}, {3, 4}})
	col, err := m.Column(1)
	require.NoError(t, err)
	assert.Equal(t, []complex128{2, 4}, col)
	_, err = m.Column(2)
	require.ErrorIs(t, err, cmatrix.ErrOutOfRange)
}

func TestFormatComplex(t *testing.T) {
	t.Parallel()
	for _, tc := range []struct {
		in   complex128
		want string
	}{
		{1, "1"},
		{-1i, "-1i"},
		{-0.5 + 2i, "-0.5+2i"},
		{0, "0"},
	} {
		assert.Equal(t, tc.want, cmatrix.FormatComplex(tc.in))
	}
	m := MustRows(t, [][]complex128{{1, 1i}})
	assert.Equal(t, "[1, 1i]\n", m.String())
}

func TestFormatVector(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1, -1i, 0.5+2i]", cmatrix.FormatVector([]complex128{1, -1i, 0.5 + 2i}))
	assert.Equal(t, "[]", cmatrix.FormatVector(nil))
}
