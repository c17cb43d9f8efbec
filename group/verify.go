// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

const (
	opVerifyHomomorphism = "VerifyHomomorphism"
	opElementOrder       = "ElementOrder"
	opFaithfulIrrep      = "FaithfulIrrep"
)

// DefaultOrderBound caps the power search in ElementOrder. Point groups have
// element orders of at most 6, so 128 leaves ample room for custom groups.
const DefaultOrderBound = 128

// VerifyHomomorphism checks that every irrep respects group composition.
// Element labels carry no structure, so the multiplication table is derived
// from the irrep named faithful: gh is the unique element whose matrix equals
// D(g)·D(h).
//
// Implementation:
//   - Stage 1: reject faithful if two elements share a matrix.
//   - Stage 2: build the |G|×|G| table from faithful (closure failure is ErrNotHomomorphic).
//   - Stage 3: check X(g)·X(h) ≈ X(gh) within eps for every irrep X.
//
// Errors:
//   - *LookupError (unknown faithful label), ErrNotFaithful, ErrNotHomomorphic.
//
// Complexity:
//   - Time O(|G|³·d³) for the table, O(|G|²·Σd³) for the checks.
func (r *Representation) VerifyHomomorphism(faithful string, eps float64) error {
	f, ok := r.irreps[faithful]
	if !ok {
		return unknownIrrep(opVerifyHomomorphism, faithful)
	}
	n := len(r.elements)
	var i, j, k int
	if i, j = collision(f, eps); i >= 0 {
		return fmt.Errorf("%s: %q maps %q and %q to the same matrix: %w",
			opVerifyHomomorphism, faithful, r.elements[i], r.elements[j], ErrNotFaithful)
	}

	table := make([][]int, n)
	for i = 0; i < n; i++ {
		table[i] = make([]int, n)
		for j = 0; j < n; j++ {
			prod, err := cmatrix.Mul(f.matrices[i], f.matrices[j])
			if err != nil {
				return fmt.Errorf("%s: %w", opVerifyHomomorphism, err)
			}
			table[i][j] = -1
			for k = 0; k < n; k++ {
				if cmatrix.AllClose(prod, f.matrices[k], eps) {
					table[i][j] = k
					break
				}
			}
			if table[i][j] < 0 {
				return fmt.Errorf("%s: %q is not closed at (%s, %s): %w",
					opVerifyHomomorphism, faithful, r.elements[i], r.elements[j], ErrNotHomomorphic)
			}
		}
	}

	for _, label := range r.labels {
		x := r.irreps[label]
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				prod, err := cmatrix.Mul(x.matrices[i], x.matrices[j])
				if err != nil {
					return fmt.Errorf("%s: %w", opVerifyHomomorphism, err)
				}
				if !cmatrix.AllClose(prod, x.matrices[table[i][j]], eps) {
					return fmt.Errorf("%s: irrep %q: D(%s)·D(%s) != D(%s): %w",
						opVerifyHomomorphism, label, r.elements[i], r.elements[j], r.elements[table[i][j]], ErrNotHomomorphic)
				}
			}
		}
	}

	return nil
}

// collision returns the first pair i<j with equal matrices, or (-1, -1).
func collision(ir *irrep, eps float64) (int, int) {
	for i := range ir.matrices {
		for j := i + 1; j < len(ir.matrices); j++ {
			if cmatrix.AllClose(ir.matrices[i], ir.matrices[j], eps) {
				return i, j
			}
		}
	}

	return -1, -1
}

// FaithfulIrrep returns an irrep that maps distinct elements to distinct
// matrices, preferring the largest dimension and then the smallest label.
// The result is the natural argument for VerifyHomomorphism and ElementOrders.
//
// Errors:
//   - ErrNotFaithful when no irrep separates all elements (for instance a
//     non-abelian group given only one-dimensional irreps).
func (r *Representation) FaithfulIrrep(eps float64) (string, error) {
	labels := r.IrrepLabels()
	sort.SliceStable(labels, func(a, b int) bool {
		return r.irreps[labels[a]].dim > r.irreps[labels[b]].dim
	})
	for _, label := range labels {
		if i, _ := collision(r.irreps[label], eps); i < 0 {
			return label, nil
		}
	}

	return "", fmt.Errorf("%s: %w", opFaithfulIrrep, ErrNotFaithful)
}

// ElementOrder returns the smallest k ≥ 1 with mᵏ ≈ I (entry-wise within eps).
// It is a pure function: no output, no state. When no such k ≤ bound exists it
// returns ErrNoFiniteOrder, which for a unitary matrix usually means an
// infinite-order (or very high order) element.
//
// Errors:
//   - cmatrix.ErrNilMatrix, cmatrix.ErrNonSquare, ErrNoFiniteOrder.
//
// Complexity:
//   - Time O(bound·d³), Space O(d²).
func ElementOrder(m *cmatrix.Dense, bound int, eps float64) (int, error) {
	if err := cmatrix.ValidateSquare(m); err != nil {
		return 0, fmt.Errorf("%s: %w", opElementOrder, err)
	}
	id, err := cmatrix.Identity(m.Rows())
	if err != nil {
		return 0, fmt.Errorf("%s: %w", opElementOrder, err)
	}
	p := m.Clone()
	for k := 1; k <= bound; k++ {
		if cmatrix.AllClose(p, id, eps) {
			return k, nil
		}
		if p, err = cmatrix.Mul(p, m); err != nil {
			return 0, fmt.Errorf("%s: %w", opElementOrder, err)
		}
	}

	return 0, fmt.Errorf("%s: bound %d: %w", opElementOrder, bound, ErrNoFiniteOrder)
}

// ElementOrders maps ElementOrder over the matrices of irrep label. For a
// faithful irrep these are the element orders of the group itself.
func (r *Representation) ElementOrders(label string, bound int, eps float64) (map[string]int, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return nil, unknownIrrep(opElementOrder, label)
	}
	out := make(map[string]int, len(r.elements))
	for i, g := range r.elements {
		k, err := ElementOrder(ir.matrices[i], bound, eps)
		if err != nil {
			return nil, fmt.Errorf("element %q: %w", g, err)
		}
		out[g] = k
	}

	return out, nil
}
