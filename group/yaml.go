// SPDX-License-Identifier: MIT

package group

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

const (
	opDecode = "Decode"
	opEncode = "Encode"
)

// Complex is a complex128 that reads and writes YAML scalars in the syntax of
// strconv.ParseComplex: "1", "-1i", "0.5+0.8660254037844386i". Plain YAML
// numbers are accepted as real values.
type Complex complex128

// UnmarshalYAML implements yaml.Unmarshaler.
func (c *Complex) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: complex value must be a scalar: %w", n.Line, ErrMalformed)
	}
	z, err := strconv.ParseComplex(strings.ReplaceAll(n.Value, " ", ""), 128)
	if err != nil {
		return fmt.Errorf("line %d: %q: %w", n.Line, n.Value, ErrMalformed)
	}
	*c = Complex(z)

	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (c Complex) MarshalYAML() (interface{}, error) {
	return cmatrix.FormatComplex(complex128(c)), nil
}

// document is the on-disk layout of a group description.
type document struct {
	Name     string          `yaml:"name"`
	Elements []string        `yaml:"elements"`
	Classes  []documentClass `yaml:"classes,omitempty"`
	Irreps   []documentIrrep `yaml:"irreps"`
}

type documentClass struct {
	Name     string   `yaml:"name"`
	Elements []string `yaml:"elements"`
}

type documentIrrep struct {
	Label      string                 `yaml:"label"`
	Dim        int                    `yaml:"dim"`
	Characters []Complex              `yaml:"characters,omitempty,flow"`
	Matrices   map[string][][]Complex `yaml:"matrices"`
}

// Decode reads a YAML group description and builds a Representation.
// Unknown fields are rejected.
//
//	name: C2
//	elements: [E, C2]
//	classes:
//	  - {name: E, elements: [E]}
//	  - {name: C2, elements: [C2]}
//	irreps:
//	  - label: A
//	    dim: 1
//	    characters: ["1", "1"]
//	    matrices: {E: [["1"]], C2: [["1"]]}
//
// Errors:
//   - ErrMalformed (YAML syntax, bad complex literal, ragged matrix), or any New error.
func Decode(r io.Reader) (*Representation, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opDecode, err, ErrMalformed)
	}

	spec := Spec{Name: doc.Name, Elements: doc.Elements}
	for _, c := range doc.Classes {
		spec.Classes = append(spec.Classes, Class(c))
	}
	for _, di := range doc.Irreps {
		is := IrrepSpec{
			Label:      di.Label,
			Dim:        di.Dim,
			Matrices:   make(map[string]*cmatrix.Dense, len(di.Matrices)),
			Characters: make([]complex128, len(di.Characters)),
		}
		for i, z := range di.Characters {
			is.Characters[i] = complex128(z)
		}
		keys := make([]string, 0, len(di.Matrices))
		for g := range di.Matrices {
			keys = append(keys, g)
		}
		sort.Strings(keys)
		for _, g := range keys {
			m, err := cmatrix.FromRows(toComplexRows(di.Matrices[g]))
			if err != nil {
				return nil, fmt.Errorf("%s: irrep %q element %q: %v: %w", opDecode, di.Label, g, err, ErrMalformed)
			}
			is.Matrices[g] = m
		}
		spec.Irreps = append(spec.Irreps, is)
	}

	return New(spec)
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string) (*Representation, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opDecode, err)
	}
	defer f.Close()

	return Decode(f)
}

// Encode writes r in the format read by Decode. Irreps keep their
// declaration order; matrix keys are emitted sorted by the YAML encoder.
func Encode(w io.Writer, r *Representation) error {
	doc := document{Name: r.name, Elements: r.Elements()}
	for _, c := range r.classes {
		doc.Classes = append(doc.Classes, documentClass{Name: c.Name, Elements: append([]string(nil), c.Elements...)})
	}
	for _, label := range r.labels {
		ir := r.irreps[label]
		di := documentIrrep{
			Label:    label,
			Dim:      ir.dim,
			Matrices: make(map[string][][]Complex, len(r.elements)),
		}
		for _, z := range ir.chars {
			di.Characters = append(di.Characters, Complex(z))
		}
		for i, g := range r.elements {
			di.Matrices[g] = fromComplexRows(ir.matrices[i].RawRows())
		}
		doc.Irreps = append(doc.Irreps, di)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("%s: %w", opEncode, err)
	}

	return enc.Close()
}

func toComplexRows(rows [][]Complex) [][]complex128 {
	out := make([][]complex128, len(rows))
	for i, row := range rows {
		out[i] = make([]complex128, len(row))
		for j, z := range row {
			out[i][j] = complex128(z)
		}
	}

	return out
}

func fromComplexRows(rows [][]complex128) [][]Complex {
	out := make([][]Complex, len(rows))
	for i, row := range rows {
		out[i] = make([]Complex, len(row))
		for j, z := range row {
			out[i][j] = Complex(z)
		}
	}

	return out
}
