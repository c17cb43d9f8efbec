// SPDX-License-Identifier: MIT

package pointgroups

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/pointgroup/cmatrix"
	"github.com/katalvlaran/pointgroup/group"
)

// omega3 is the primitive cube root of unity e^{2πi/3}.
var omega3 = cmplx.Exp(complex(0, 2*math.Pi/3))

// m builds a constant matrix; malformed literals are programmer errors.
func m(rows ...[]complex128) *cmatrix.Dense {
	d, err := cmatrix.FromRows(rows)
	if err != nil {
		panic(fmt.Sprintf("pointgroups: bad matrix literal: %v", err))
	}

	return d
}

func diag(v ...complex128) *cmatrix.Dense {
	d, err := cmatrix.Diag(v...)
	if err != nil {
		panic(fmt.Sprintf("pointgroups: bad diagonal literal: %v", err))
	}

	return d
}

func eye(n int) *cmatrix.Dense {
	d, err := cmatrix.Identity(n)
	if err != nil {
		panic(fmt.Sprintf("pointgroups: bad identity size: %v", err))
	}

	return d
}

// scalars maps elements to 1×1 matrices holding values, in order.
func scalars(elements []string, values ...complex128) map[string]*cmatrix.Dense {
	if len(values) != len(elements) {
		panic(fmt.Sprintf("pointgroups: %d values for %d elements", len(values), len(elements)))
	}
	out := make(map[string]*cmatrix.Dense, len(elements))
	for i, g := range elements {
		out[g] = m([]complex128{values[i]})
	}

	return out
}

// mustBuild turns a constant Spec into a Representation.
func mustBuild(spec group.Spec) *group.Representation {
	r, err := group.New(spec)
	if err != nil {
		panic(fmt.Sprintf("pointgroups: invalid built-in table %s: %v", spec.Name, err))
	}

	return r
}

// D4 returns the dihedral group of order 8 with the rotation-axis labels of
// the Koster tables: C±4 about the principal axis, C`2 and C``2 the two
// classes of perpendicular twofold axes.
func D4() *group.Representation {
	const i = 1i
	el := []string{"I", "C+4", "C-4", "C2", "C`21", "C`22", "C``21", "C``22"}

	return mustBuild(group.Spec{
		Name:     "D4",
		Elements: el,
		Classes: []group.Class{
			{Name: "E", Elements: []string{"I"}},
			{Name: "2C4", Elements: []string{"C+4", "C-4"}},
			{Name: "C2", Elements: []string{"C2"}},
			{Name: "2C'2", Elements: []string{"C`21", "C`22"}},
			{Name: "2C''2", Elements: []string{"C``21", "C``22"}},
		},
		Irreps: []group.IrrepSpec{
			{Label: "A1", Dim: 1, Characters: []complex128{1, 1, 1, 1, 1},
				Matrices: scalars(el, 1, 1, 1, 1, 1, 1, 1, 1)},
			{Label: "A2", Dim: 1, Characters: []complex128{1, 1, 1, -1, -1},
				Matrices: scalars(el, 1, 1, 1, 1, -1, -1, -1, -1)},
			{Label: "B1", Dim: 1, Characters: []complex128{1, -1, 1, 1, -1},
				Matrices: scalars(el, 1, -1, -1, 1, 1, 1, -1, -1)},
			{Label: "B2", Dim: 1, Characters: []complex128{1, -1, 1, -1, 1},
				Matrices: scalars(el, 1, -1, -1, 1, -1, -1, 1, 1)},
			{Label: "E", Dim: 2, Characters: []complex128{2, 0, -2, 0, 0},
				Matrices: map[string]*cmatrix.Dense{
					"I":     eye(2),
					"C+4":   diag(-i, i),
					"C-4":   diag(i, -i),
					"C2":    diag(-1, -1),
					"C`21":  m([]complex128{0, -1}, []complex128{-1, 0}),
					"C`22":  m([]complex128{0, 1}, []complex128{1, 0}),
					"C``21": m([]complex128{0, i}, []complex128{-i, 0}),
					"C``22": m([]complex128{0, -i}, []complex128{i, 0}),
				}},
		},
	})
}

// D3 returns the dihedral group of order 6 in a basis where the threefold
// rotations are diagonal.
func D3() *group.Representation {
	w := omega3
	w2 := w * w
	el := []string{"E", "C+3", "C-3", "C`21", "C`22", "C`23"}

	return mustBuild(group.Spec{
		Name:     "D3",
		Elements: el,
		Classes: []group.Class{
			{Name: "E", Elements: []string{"E"}},
			{Name: "2C3", Elements: []string{"C+3", "C-3"}},
			{Name: "3C'2", Elements: []string{"C`21", "C`22", "C`23"}},
		},
		Irreps: []group.IrrepSpec{
			{Label: "A1", Dim: 1, Characters: []complex128{1, 1, 1},
				Matrices: scalars(el, 1, 1, 1, 1, 1, 1)},
			{Label: "A2", Dim: 1, Characters: []complex128{1, 1, -1},
				Matrices: scalars(el, 1, 1, 1, -1, -1, -1)},
			{Label: "E", Dim: 2, Characters: []complex128{2, -1, 0},
				Matrices: map[string]*cmatrix.Dense{
					"E":    eye(2),
					"C+3":  diag(w2, w),
					"C-3":  diag(w, w2),
					"C`21": m([]complex128{0, -1}, []complex128{-1, 0}),
					"C`22": m([]complex128{0, -w}, []complex128{-w2, 0}),
					"C`23": m([]complex128{0, -w2}, []complex128{-w, 0}),
				}},
		},
	})
}

// O returns the rotational octahedral group of order 24. C±3n are the
// threefold rotations about the four body diagonals, C±4 the fourfold
// rotations about the cube axes and C`2a..f the twofold face-diagonal axes.
// The E irrep is unfaithful: the twofold cube-axis rotations lie in its kernel.
func O() *group.Representation {
	const i = 1i
	eta := omega3
	etac := cmplx.Conj(eta)
	el := []string{
		"I", "C2x", "C2y", "C2z",
		"C+31", "C+32", "C+33", "C+34",
		"C-31", "C-32", "C-33", "C-34",
		"C+4x", "C+4y", "C+4z", "C-4x", "C-4y", "C-4z",
		"C`2a", "C`2b", "C`2c", "C`2d", "C`2e", "C`2f",
	}

	a2 := make([]complex128, len(el))
	for k := range a2 {
		a2[k] = 1
		if k >= 12 {
			a2[k] = -1
		}
	}
	a1 := make([]complex128, len(el))
	for k := range a1 {
		a1[k] = 1
	}

	eA := m([]complex128{0, etac}, []complex128{eta, 0})
	eB := m([]complex128{0, eta}, []complex128{etac, 0})
	eC := m([]complex128{0, 1}, []complex128{1, 0})

	// T1 and T2 agree on the rotation subgroup T and differ by sign on C4 and C'2.
	rot := map[string]*cmatrix.Dense{
		"I":    eye(3),
		"C2x":  diag(-1, -1, 1),
		"C2y":  diag(1, -1, -1),
		"C2z":  diag(-1, 1, -1),
		"C+31": m([]complex128{0, 0, -i}, []complex128{-i, 0, 0}, []complex128{0, -1, 0}),
		"C+32": m([]complex128{0, 0, -i}, []complex128{i, 0, 0}, []complex128{0, 1, 0}),
		"C+33": m([]complex128{0, 0, i}, []complex128{-i, 0, 0}, []complex128{0, 1, 0}),
		"C+34": m([]complex128{0, 0, i}, []complex128{i, 0, 0}, []complex128{0, -1, 0}),
		"C-31": m([]complex128{0, i, 0}, []complex128{0, 0, -1}, []complex128{i, 0, 0}),
		"C-32": m([]complex128{0, -i, 0}, []complex128{0, 0, 1}, []complex128{i, 0, 0}),
		"C-33": m([]complex128{0, i, 0}, []complex128{0, 0, 1}, []complex128{-i, 0, 0}),
		"C-34": m([]complex128{0, -i, 0}, []complex128{0, 0, -1}, []complex128{-i, 0, 0}),
	}
	t1 := map[string]*cmatrix.Dense{
		"C+4x": m([]complex128{0, -i, 0}, []complex128{-i, 0, 0}, []complex128{0, 0, 1}),
		"C+4y": m([]complex128{1, 0, 0}, []complex128{0, 0, 1}, []complex128{0, -1, 0}),
		"C+4z": m([]complex128{0, 0, -i}, []complex128{0, 1, 0}, []complex128{-i, 0, 0}),
		"C-4x": m([]complex128{0, i, 0}, []complex128{i, 0, 0}, []complex128{0, 0, 1}),
		"C-4y": m([]complex128{1, 0, 0}, []complex128{0, 0, -1}, []complex128{0, 1, 0}),
		"C-4z": m([]complex128{0, 0, i}, []complex128{0, 1, 0}, []complex128{i, 0, 0}),
		"C`2a": m([]complex128{0, 0, -i}, []complex128{0, -1, 0}, []complex128{i, 0, 0}),
		"C`2b": m([]complex128{0, 0, i}, []complex128{0, -1, 0}, []complex128{-i, 0, 0}),
		"C`2c": m([]complex128{-1, 0, 0}, []complex128{0, 0, -1}, []complex128{0, -1, 0}),
		"C`2d": m([]complex128{0, i, 0}, []complex128{-i, 0, 0}, []complex128{0, 0, -1}),
		"C`2e": m([]complex128{-1, 0, 0}, []complex128{0, 0, 1}, []complex128{0, 1, 0}),
		"C`2f": m([]complex128{0, -i, 0}, []complex128{i, 0, 0}, []complex128{0, 0, -1}),
	}
	t2 := make(map[string]*cmatrix.Dense, len(el))
	for g, d := range rot {
		t1[g] = d
		t2[g] = d
	}
	for g, d := range t1 {
		if _, shared := rot[g]; shared {
			continue
		}
		neg, err := cmatrix.Scale(d, -1)
		if err != nil {
			panic(fmt.Sprintf("pointgroups: %v", err))
		}
		t2[g] = neg
	}

	return mustBuild(group.Spec{
		Name:     "O",
		Elements: el,
		Classes: []group.Class{
			{Name: "E", Elements: el[0:1]},
			{Name: "3C2", Elements: el[1:4]},
			{Name: "8C3", Elements: el[4:12]},
			{Name: "6C4", Elements: el[12:18]},
			{Name: "6C'2", Elements: el[18:24]},
		},
		Irreps: []group.IrrepSpec{
			{Label: "A1", Dim: 1, Characters: []complex128{1, 1, 1, 1, 1},
				Matrices: scalars(el, a1...)},
			{Label: "A2", Dim: 1, Characters: []complex128{1, 1, 1, -1, -1},
				Matrices: scalars(el, a2...)},
			{Label: "E", Dim: 2, Characters: []complex128{2, 2, -1, 0, 0},
				Matrices: map[string]*cmatrix.Dense{
					"I": eye(2), "C2x": eye(2), "C2y": eye(2), "C2z": eye(2),
					"C+31": diag(eta, etac), "C+32": diag(eta, etac), "C+33": diag(eta, etac), "C+34": diag(eta, etac),
					"C-31": diag(etac, eta), "C-32": diag(etac, eta), "C-33": diag(etac, eta), "C-34": diag(etac, eta),
					"C+4x": eA, "C+4y": eB, "C+4z": eC,
					"C-4x": eA, "C-4y": eB, "C-4z": eC,
					"C`2a": eC, "C`2b": eC, "C`2c": eB, "C`2d": eA, "C`2e": eB, "C`2f": eA,
				}},
			{Label: "T1", Dim: 3, Characters: []complex128{3, -1, 0, 1, -1}, Matrices: t1},
			{Label: "T2", Dim: 3, Characters: []complex128{3, -1, 0, -1, 1}, Matrices: t2},
		},
	})
}
