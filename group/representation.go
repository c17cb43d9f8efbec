// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

// Operation tags used in errors.
const (
	opNew         = "New"
	opIrrep       = "Irrep"
	opIrrepMatrix = "IrrepMatrix"
	opMatrices    = "Matrices"
	opDim         = "Dim"
	opCharacter   = "Character"
)

// Class is a conjugacy class: a display name and its member elements.
type Class struct {
	Name     string
	Elements []string
}

// CharacterTable maps irrep labels to one character per class, in the order
// of Classes.
type CharacterTable struct {
	Classes []Class
	Rows    map[string][]complex128
}

// IrrepSpec is the constructor input for one irrep.
type IrrepSpec struct {
	Label      string
	Dim        int
	Matrices   map[string]*cmatrix.Dense // element label → Dim×Dim matrix
	Characters []complex128              // one per Spec.Classes entry; may be empty when Classes is
}

// Spec is the plain constructor input for a Representation.
type Spec struct {
	Name     string
	Elements []string // canonical iteration order
	Classes  []Class
	Irreps   []IrrepSpec
}

type irrep struct {
	dim      int
	matrices []*cmatrix.Dense // indexed like Representation.elements
	chars    []complex128
}

// Representation is the immutable representation store of one finite group.
type Representation struct {
	name     string
	elements []string
	index    map[string]int
	labels   []string // irrep labels in declaration order
	irreps   map[string]*irrep
	classes  []Class
}

// New validates spec and builds a Representation from a deep copy of it.
// Implementation:
//   - Stage 1: elements are non-empty and unique.
//   - Stage 2: every irrep has a positive dimension and exactly one matrix of
//     that shape per element.
//   - Stage 3: classes reference known elements at most once, and every irrep
//     carries one character per class.
//
// Errors:
//   - ErrEmptyGroup, ErrDuplicateElement, ErrNoIrreps, ErrDuplicateIrrep,
//     ErrIrrepDimension, ErrIncompleteIrrep, ErrCharacterTable.
//
// Complexity:
//   - Time O(|G|·Σd²), Space O(|G|·Σd²).
func New(spec Spec) (*Representation, error) {
	if len(spec.Elements) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrEmptyGroup)
	}
	r := &Representation{
		name:     spec.Name,
		elements: append([]string(nil), spec.Elements...),
		index:    make(map[string]int, len(spec.Elements)),
		irreps:   make(map[string]*irrep, len(spec.Irreps)),
	}
	for i, g := range spec.Elements {
		if _, dup := r.index[g]; dup {
			return nil, fmt.Errorf("%s: %q: %w", opNew, g, ErrDuplicateElement)
		}
		r.index[g] = i
	}

	if len(spec.Irreps) == 0 {
		return nil, fmt.Errorf("%s: %w", opNew, ErrNoIrreps)
	}
	for _, is := range spec.Irreps {
		if _, dup := r.irreps[is.Label]; dup {
			return nil, fmt.Errorf("%s: %q: %w", opNew, is.Label, ErrDuplicateIrrep)
		}
		ir, err := r.buildIrrep(is)
		if err != nil {
			return nil, fmt.Errorf("%s: irrep %q: %w", opNew, is.Label, err)
		}
		r.irreps[is.Label] = ir
		r.labels = append(r.labels, is.Label)
	}

	if err := r.setClasses(spec.Classes); err != nil {
		return nil, fmt.Errorf("%s: %w", opNew, err)
	}

	return r, nil
}

func (r *Representation) buildIrrep(is IrrepSpec) (*irrep, error) {
	if is.Dim <= 0 {
		return nil, fmt.Errorf("dim %d: %w", is.Dim, ErrIrrepDimension)
	}
	if len(is.Matrices) != len(r.elements) {
		return nil, fmt.Errorf("%d matrices for %d elements: %w", len(is.Matrices), len(r.elements), ErrIncompleteIrrep)
	}
	ir := &irrep{
		dim:      is.Dim,
		matrices: make([]*cmatrix.Dense, len(r.elements)),
		chars:    append([]complex128(nil), is.Characters...),
	}
	// Equal counts plus every element present means no stray keys either.
	for idx, g := range r.elements {
		m, ok := is.Matrices[g]
		if !ok {
			return nil, fmt.Errorf("missing element %q: %w", g, ErrIncompleteIrrep)
		}
		if m == nil || m.Rows() != is.Dim || m.Cols() != is.Dim {
			return nil, fmt.Errorf("element %q: %w", g, ErrIrrepDimension)
		}
		ir.matrices[idx] = m.Clone()
	}

	return ir, nil
}

func (r *Representation) setClasses(classes []Class) error {
	seen := make(map[string]bool, len(r.elements))
	for _, c := range classes {
		if len(c.Elements) == 0 {
			return fmt.Errorf("class %q is empty: %w", c.Name, ErrCharacterTable)
		}
		for _, g := range c.Elements {
			if _, ok := r.index[g]; !ok {
				return fmt.Errorf("class %q: %w", c.Name, unknownElement(opNew, g))
			}
			if seen[g] {
				return fmt.Errorf("class %q: element %q in two classes: %w", c.Name, g, ErrCharacterTable)
			}
			seen[g] = true
		}
		r.classes = append(r.classes, Class{Name: c.Name, Elements: append([]string(nil), c.Elements...)})
	}
	for _, label := range r.labels {
		if got := len(r.irreps[label].chars); got != len(classes) {
			return fmt.Errorf("irrep %q has %d characters for %d classes: %w", label, got, len(classes), ErrCharacterTable)
		}
	}

	return nil
}

// Name returns the group's display name (may be empty).
func (r *Representation) Name() string { return r.name }

// Order returns |G|, the number of elements.
func (r *Representation) Order() int { return len(r.elements) }

// Elements returns the element labels in canonical order.
func (r *Representation) Elements() []string { return append([]string(nil), r.elements...) }

// HasElement reports whether g is a known element label.
func (r *Representation) HasElement(g string) bool {
	_, ok := r.index[g]

	return ok
}

// IrrepLabels returns the known irrep labels, sorted.
func (r *Representation) IrrepLabels() []string {
	out := append([]string(nil), r.labels...)
	sort.Strings(out)

	return out
}

// Dim returns the dimension of irrep label.
func (r *Representation) Dim(label string) (int, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return 0, unknownIrrep(opDim, label)
	}

	return ir.dim, nil
}

// Irrep returns a copy of the full element → matrix mapping of label.
func (r *Representation) Irrep(label string) (map[string]*cmatrix.Dense, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return nil, unknownIrrep(opIrrep, label)
	}
	out := make(map[string]*cmatrix.Dense, len(r.elements))
	for i, g := range r.elements {
		out[g] = ir.matrices[i].Clone()
	}

	return out, nil
}

// IrrepMatrix returns a copy of the matrix of irrep label at element g.
func (r *Representation) IrrepMatrix(label, g string) (*cmatrix.Dense, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return nil, unknownIrrep(opIrrepMatrix, label)
	}
	idx, ok := r.index[g]
	if !ok {
		return nil, unknownElement(opIrrepMatrix, g)
	}

	return ir.matrices[idx].Clone(), nil
}

// Matrices returns copies of the matrices of label in canonical element order.
func (r *Representation) Matrices(label string) ([]*cmatrix.Dense, error) {
	ir, ok := r.irreps[label]
	if !ok {
		return nil, unknownIrrep(opMatrices, label)
	}
	out := make([]*cmatrix.Dense, len(ir.matrices))
	for i, m := range ir.matrices {
		out[i] = m.Clone()
	}

	return out, nil
}

// CharTable returns a deep copy of the stored character table.
func (r *Representation) CharTable() CharacterTable {
	ct := CharacterTable{
		Classes: make([]Class, len(r.classes)),
		Rows:    make(map[string][]complex128, len(r.labels)),
	}
	for i, c := range r.classes {
		ct.Classes[i] = Class{Name: c.Name, Elements: append([]string(nil), c.Elements...)}
	}
	for _, label := range r.labels {
		ct.Rows[label] = append([]complex128(nil), r.irreps[label].chars...)
	}

	return ct
}
