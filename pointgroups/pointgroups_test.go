// SPDX-License-Identifier: MIT

package pointgroups_test

import (
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pointgroup/group"
	"github.com/katalvlaran/pointgroup/pointgroups"
)

const eps = 1e-10

// faithfulIrreps names, per built-in group, an irrep that separates all elements.
var faithfulIrreps = map[string]string{
	"D3": "E",
	"D4": "E",
	"O":  "T1",
}

func TestLookup_AliasesAndCase(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"D4":         "D4",
		"d4":         "D4",
		"D_4":        "D4",
		"dihedral-4": "D4",
		"Dihedral 3": "D3",
		"octahedral": "O",
		"432":        "O",
	}
	for in, want := range cases {
		r, err := pointgroups.Lookup(in)
		require.NoErrorf(t, err, "Lookup(%q)", in)
		assert.Equalf(t, want, r.Name(), "Lookup(%q)", in)
	}
}

func TestLookup_Unknown(t *testing.T) {
	t.Parallel()
	_, err := pointgroups.Lookup("Ih")
	require.ErrorIs(t, err, pointgroups.ErrUnknownGroup)
}

func TestNames(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"D3", "D4", "O"}, pointgroups.Names())
}

func TestTables_Shape(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		order  int
		labels []string
		dims   []int
	}{
		{"D3", 6, []string{"A1", "A2", "E"}, []int{1, 1, 2}},
		{"D4", 8, []string{"A1", "A2", "B1", "B2", "E"}, []int{1, 1, 1, 1, 2}},
		{"O", 24, []string{"A1", "A2", "E", "T1", "T2"}, []int{1, 1, 2, 3, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := pointgroups.Lookup(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.order, r.Order())
			require.Equal(t, tc.labels, r.IrrepLabels())
			sumSq := 0
			for i, label := range tc.labels {
				d, err := r.Dim(label)
				require.NoError(t, err)
				assert.Equal(t, tc.dims[i], d, label)
				sumSq += d * d
			}
			// Burnside: Σ d² = |G|.
			assert.Equal(t, r.Order(), sumSq)
		})
	}
}

func TestTables_Homomorphism(t *testing.T) {
	t.Parallel()
	for _, name := range pointgroups.Names() {
		t.Run(name, func(t *testing.T) {
			r, err := pointgroups.Lookup(name)
			require.NoError(t, err)
			faithful, err := r.FaithfulIrrep(eps)
			require.NoError(t, err)
			require.Equal(t, faithfulIrreps[name], faithful)
			require.NoError(t, r.VerifyHomomorphism(faithful, eps))
			require.NoError(t, r.VerifyCharacters(eps))
		})
	}
}

func TestTables_CharacterOrthonormality(t *testing.T) {
	t.Parallel()
	for _, name := range pointgroups.Names() {
		t.Run(name, func(t *testing.T) {
			r, err := pointgroups.Lookup(name)
			require.NoError(t, err)
			labels := r.IrrepLabels()
			for _, a := range labels {
				for _, b := range labels {
					var sum complex128
					for _, g := range r.Elements() {
						ca, err := r.Character(a, g)
						require.NoError(t, err)
						cb, err := r.Character(b, g)
						require.NoError(t, err)
						sum += ca * cmplx.Conj(cb)
					}
					sum /= complex(float64(r.Order()), 0)
					want := complex128(0)
					if a == b {
						want = 1
					}
					assert.InDeltaf(t, 0, cmplx.Abs(sum-want), eps, "<χ_%s, χ_%s>", a, b)
				}
			}
		})
	}
}

func TestTables_FiniteOrder(t *testing.T) {
	t.Parallel()
	for _, name := range pointgroups.Names() {
		r, err := pointgroups.Lookup(name)
		require.NoError(t, err)
		for _, label := range r.IrrepLabels() {
			ms, err := r.Matrices(label)
			require.NoError(t, err)
			for i, m := range ms {
				k, err := group.ElementOrder(m, group.DefaultOrderBound, eps)
				require.NoErrorf(t, err, "%s %s element %d", name, label, i)
				assert.GreaterOrEqual(t, k, 1)
			}
		}
	}
}

func TestD4_ElementOrders(t *testing.T) {
	t.Parallel()
	orders, err := pointgroups.D4().ElementOrders("E", group.DefaultOrderBound, eps)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"I": 1, "C+4": 4, "C-4": 4, "C2": 2,
		"C`21": 2, "C`22": 2, "C``21": 2, "C``22": 2,
	}, orders)
}

func TestO_ElementOrders(t *testing.T) {
	t.Parallel()
	orders, err := pointgroups.O().ElementOrders("T1", group.DefaultOrderBound, eps)
	require.NoError(t, err)
	count := map[int]int{}
	for _, k := range orders {
		count[k]++
	}
	// O: identity, 9 involutions (3 C2 + 6 C'2), 8 threefold, 6 fourfold.
	assert.Equal(t, map[int]int{1: 1, 2: 9, 3: 8, 4: 6}, count)
}

func TestO_EIsNotFaithful(t *testing.T) {
	t.Parallel()
	err := pointgroups.O().VerifyHomomorphism("E", eps)
	require.ErrorIs(t, err, group.ErrNotFaithful)
}

func TestLookup_FreshCopies(t *testing.T) {
	t.Parallel()
	a, err := pointgroups.Lookup("D4")
	require.NoError(t, err)
	b, err := pointgroups.Lookup("D4")
	require.NoError(t, err)
	require.NotSame(t, a, b)
}
