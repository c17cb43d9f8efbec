// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

const (
	opMultiplicity     = "Multiplicity"
	opVerifyCharacters = "VerifyCharacters"
)

// Character returns χ_label(g), the trace of the irrep matrix at g.
// The value is recomputed from the matrix, not read from the stored table.
func (r *Representation) Character(label, g string) (complex128, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return 0, unknownIrrep(opCharacter, label)
	}
	idx, ok := r.index[g]
	if !ok {
		return 0, unknownElement(opCharacter, g)
	}

	return cmatrix.Trace(ir.matrices[idx])
}

// characters returns the traces of label in canonical element order.
func (r *Representation) characters(op, label string) ([]complex128, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return nil, unknownIrrep(op, label)
	}
	out := make([]complex128, len(ir.matrices))
	var err error
	for i, m := range ir.matrices {
		if out[i], err = cmatrix.Trace(m); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return out, nil
}

// MultiplicityRaw returns the character inner product
//
//	(1/|G|) Σ_g χ_a(g)·χ_b(g)·conj(χ_target(g)),
//
// the number of times target occurs in a⊗b, before rounding.
func (r *Representation) MultiplicityRaw(a, b, target string) (complex128, error) {
	ca, err := r.characters(opMultiplicity, a)
	if err != nil {
		return 0, err
	}
	cb, err := r.characters(opMultiplicity, b)
	if err != nil {
		return 0, err
	}
	ct, err := r.characters(opMultiplicity, target)
	if err != nil {
		return 0, err
	}
	var sum complex128
	for i := range ca {
		sum += ca[i] * cb[i] * cmplx.Conj(ct[i])
	}

	return sum / complex(float64(len(ca)), 0), nil
}

// Multiplicity returns MultiplicityRaw rounded to the nearest integer.
func (r *Representation) Multiplicity(a, b, target string) (int, error) {
	raw, err := r.MultiplicityRaw(a, b, target)
	if err != nil {
		return 0, err
	}

	return int(math.Round(real(raw))), nil
}

// VerifyCharacters checks the stored character table against the traces of
// the matrices of every member of every class.
// A table without classes has nothing to check and passes.
//
// Errors:
//   - ErrCharacterTable naming the first mismatching (irrep, class, element).
func (r *Representation) VerifyCharacters(eps float64) error {
	for _, label := range r.labels {
		ir := r.irreps[label]
		for ci, c := range r.classes {
			for _, g := range c.Elements {
				tr, err := cmatrix.Trace(ir.matrices[r.index[g]])
				if err != nil {
					return fmt.Errorf("%s: %w", opVerifyCharacters, err)
				}
				if cmplx.Abs(tr-ir.chars[ci]) > eps {
					return fmt.Errorf("%s: irrep %q class %q element %q: trace %v, table %v: %w",
						opVerifyCharacters, label, c.Name, g, tr, ir.chars[ci], ErrCharacterTable)
				}
			}
		}
	}

	return nil
}
