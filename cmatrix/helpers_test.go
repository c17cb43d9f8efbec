// SPDX-License-Identifier: MIT
// Package cmatrix_test contains test helpers shared by the cmatrix tests.

package cmatrix_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

// eps is the comparison tolerance for floating-point results.
const eps = 1e-10

// MustRows builds a Dense from rows or fails the test.
func MustRows(t *testing.T, rows [][]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m *cmatrix.Dense, i, j int) complex128 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// RequireClose fails unless a and b agree entry-wise within tol.
func RequireClose(t *testing.T, want, got *cmatrix.Dense, tol float64) {
	t.Helper()
	d, err := cmatrix.MaxAbsDiff(want, got)
	require.NoError(t, err)
	require.LessOrEqualf(t, d, tol, "matrices differ:\nwant\n%vgot\n%v", want, got)
}

// RequireVecClose fails unless vectors agree component-wise within tol.
func RequireVecClose(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqualf(t, cmplx.Abs(want[i]-got[i]), tol, "component %d: want %v got %v", i, want[i], got[i])
	}
}
