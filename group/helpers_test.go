// SPDX-License-Identifier: MIT

package group_test

import (
	"math/cmplx"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/cmatrix"
	"github.com/katalvlaran/pointgroup/group"
)

const eps = 1e-10

// approxComplex compares complex values within eps in cmp.Diff.
var approxComplex = cmp.Comparer(func(a, b complex128) bool {
	return cmplx.Abs(a-b) <= eps
})

// MustRows builds a Dense from rows or fails the test.
func MustRows(t *testing.T, rows ...[]complex128) *cmatrix.Dense {
	t.Helper()
	m, err := cmatrix.FromRows(rows)
	require.NoError(t, err)

	return m
}

// c4Spec is the cyclic group of order 4 generated by r with its four
// one-dimensional irreps. The classes are the single elements.
func c4Spec(t *testing.T) group.Spec {
	t.Helper()
	el := []string{"e", "r", "r2", "r3"}
	spec := group.Spec{Name: "C4", Elements: el}
	for _, g := range el {
		spec.Classes = append(spec.Classes, group.Class{Name: g, Elements: []string{g}})
	}
	// Irrep k sends r to i^k.
	labels := []string{"A", "B", "E1", "E2"}
	gens := []complex128{1, -1, 1i, -1i}
	for k, label := range labels {
		is := group.IrrepSpec{Label: label, Dim: 1, Matrices: map[string]*cmatrix.Dense{}}
		z := complex128(1)
		for _, g := range el {
			is.Matrices[g] = MustRows(t, []complex128{z})
			is.Characters = append(is.Characters, z)
			z *= gens[k]
		}
		spec.Irreps = append(spec.Irreps, is)
	}

	return spec
}

// MustC4 builds c4Spec or fails the test.
func MustC4(t *testing.T) *group.Representation {
	t.Helper()
	r, err := group.New(c4Spec(t))
	require.NoError(t, err)

	return r
}
