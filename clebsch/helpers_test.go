// SPDX-License-Identifier: MIT

package clebsch_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/cmatrix"
	"github.com/katalvlaran/pointgroup/group"
)

const eps = 1e-9

// RequireVecClose fails unless vectors agree component-wise within tol.
func RequireVecClose(t *testing.T, want, got []complex128, tol float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.LessOrEqualf(t, cmplx.Abs(want[i]-got[i]), tol, "component %d: want %v got %v", i, want[i], got[i])
	}
}

// RequireOrthonormal fails unless the Gram matrix of vs is the identity within tol.
func RequireOrthonormal(t *testing.T, vs [][]complex128, tol float64) {
	t.Helper()
	for i := range vs {
		for j := range vs {
			ip, err := cmatrix.Inner(vs[i], vs[j])
			require.NoError(t, err)
			want := complex128(0)
			if i == j {
				want = 1
			}
			require.LessOrEqualf(t, cmplx.Abs(ip-want), tol, "<v%d, v%d> = %v", i, j, ip)
		}
	}
}

// MustRows builds a Dense from rows or fails the test.
func MustRows(t *testing.T, rows ...[]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// skewC2 is C2 with an extra non-unitary two-dimensional homomorphism S:
// S(s) = [[1,1],[0,-1]] squares to I, but its projectors are not Hermitian.
func skewC2(t *testing.T) *group.Representation {
	t.Helper()
	r, err := group.New(group.Spec{
		Name:     "C2-skew",
		Elements: []string{"e", "s"},
		Irreps: []group.IrrepSpec{
			{Label: "A", Dim: 1, Matrices: map[string]*cmatrix.Dense{
				"e": MustRows(t, []complex128{1}),
				"s": MustRows(t, []complex128{1}),
			}},
			{Label: "B", Dim: 1, Matrices: map[string]*cmatrix.Dense{
				"e": MustRows(t, []complex128{1}),
				"s": MustRows(t, []complex128{-1}),
			}},
			{Label: "S", Dim: 2, Matrices: map[string]*cmatrix.Dense{
				"e": MustRows(t, []complex128{1, 0}, []complex128{0, 1}),
				"s": MustRows(t, []complex128{1, 1}, []complex128{0, -1}),
			}},
		},
	})
	require.NoError(t, err)

	return r
}
