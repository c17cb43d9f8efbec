// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/pointgroup/cmatrix"
	"github.com/katalvlaran/pointgroup/group"
)

// displayEps is the magnitude below which printed components are shown as 0.
const displayEps = 1e-12

// chop zeroes real and imaginary parts below displayEps.
func chop(z complex128) complex128 {
	re, im := real(z), imag(z)
	if math.Abs(re) < displayEps {
		re = 0
	}
	if math.Abs(im) < displayEps {
		im = 0
	}

	return complex(re, im)
}

// textWriter is implemented by every document for --output text.
type textWriter interface {
	writeText(w io.Writer) error
}

func (a *app) render(w io.Writer, doc textWriter) error {
	if a.format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}

		return enc.Close()
	}

	return doc.writeText(w)
}

type cgDocument struct {
	Group        string            `yaml:"group"`
	Irrep1       string            `yaml:"irrep1"`
	Irrep2       string            `yaml:"irrep2"`
	Target       string            `yaml:"target"`
	Solver       string            `yaml:"solver"`
	Tolerance    float64           `yaml:"tolerance"`
	Multiplicity int               `yaml:"multiplicity"`
	Expected     int               `yaml:"expected"`
	Ambiguous    bool              `yaml:"ambiguous"`
	Borderline   []float64         `yaml:"borderline,omitempty,flow"`
	Vectors      [][]group.Complex `yaml:"vectors,flow"`
}

func vectorString(v []group.Complex) string {
	z := make([]complex128, len(v))
	for i, c := range v {
		z[i] = complex128(c)
	}

	return cmatrix.FormatVector(z)
}

func (d cgDocument) writeText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s ⊗ %s → %s (solver %s, tolerance %g)\n",
		d.Group, d.Irrep1, d.Irrep2, d.Target, d.Solver, d.Tolerance)
	fmt.Fprintf(&sb, "multiplicity %d, expected %d vectors, found %d\n", d.Multiplicity, d.Expected, len(d.Vectors))
	if len(d.Vectors) == 0 {
		sb.WriteString("target does not occur in the product\n")
	}
	for i, v := range d.Vectors {
		fmt.Fprintf(&sb, "  v%d = %s\n", i+1, vectorString(v))
	}
	if d.Ambiguous {
		fmt.Fprintf(&sb, "warning: ambiguous result (borderline eigenvalues %v)\n", d.Borderline)
	}
	_, err := io.WriteString(w, sb.String())

	return err
}

type decomposeDocument struct {
	Group      string       `yaml:"group"`
	Irrep1     string       `yaml:"irrep1"`
	Irrep2     string       `yaml:"irrep2"`
	Dimension  int          `yaml:"dimension"`
	Complete   bool         `yaml:"complete"`
	Components []cgDocument `yaml:"components"`
}

func (d decomposeDocument) writeText(w io.Writer) error {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s: %s ⊗ %s (dimension %d)\n", d.Group, d.Irrep1, d.Irrep2, d.Dimension)
	parts := make([]string, len(d.Components))
	found := 0
	for i, c := range d.Components {
		parts[i] = c.Target
		if c.Multiplicity > 1 {
			parts[i] = fmt.Sprintf("%d%s", c.Multiplicity, c.Target)
		}
		found += len(c.Vectors)
	}
	fmt.Fprintf(&sb, "= %s\n", strings.Join(parts, " ⊕ "))
	for _, c := range d.Components {
		fmt.Fprintf(&sb, "%s:\n", c.Target)
		for i, v := range c.Vectors {
			fmt.Fprintf(&sb, "  v%d = %s\n", i+1, vectorString(v))
		}
	}
	verdict := "ok"
	if !d.Complete {
		verdict = "FAILED"
	}
	fmt.Fprintf(&sb, "completeness: %d/%d %s\n", found, d.Dimension, verdict)
	_, err := io.WriteString(w, sb.String())

	return err
}

type classDocument struct {
	Name     string   `yaml:"name"`
	Elements []string `yaml:"elements,flow"`
}

type characterRow struct {
	Irrep      string          `yaml:"irrep"`
	Characters []group.Complex `yaml:"characters,flow"`
}

type charsDocument struct {
	Group   string          `yaml:"group"`
	Classes []classDocument `yaml:"classes"`
	Rows    []characterRow  `yaml:"rows"`
}

func (d charsDocument) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s", d.Group)
	for _, c := range d.Classes {
		fmt.Fprintf(tw, "\t%s", c.Name)
	}
	fmt.Fprintln(tw)
	for _, r := range d.Rows {
		fmt.Fprintf(tw, "%s", r.Irrep)
		for _, z := range r.Characters {
			fmt.Fprintf(tw, "\t%s", cmatrix.FormatComplex(chop(complex128(z))))
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

type irrepDocument struct {
	Label string `yaml:"label"`
	Dim   int    `yaml:"dim"`
}

type irrepsDocument struct {
	Group  string          `yaml:"group"`
	Order  int             `yaml:"order"`
	Irreps []irrepDocument `yaml:"irreps"`
}

func (d irrepsDocument) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "%s (order %d)\n", d.Group, d.Order)
	fmt.Fprintln(tw, "IRREP\tDIM")
	for _, ir := range d.Irreps {
		fmt.Fprintf(tw, "%s\t%d\n", ir.Label, ir.Dim)
	}

	return tw.Flush()
}

type orderDocument struct {
	Element string `yaml:"element"`
	Order   int    `yaml:"order"`
}

type verifyDocument struct {
	Group        string          `yaml:"group"`
	Faithful     string          `yaml:"faithful"`
	Characters   string          `yaml:"characters"`
	Homomorphism string          `yaml:"homomorphism"`
	Orders       []orderDocument `yaml:"orders,omitempty"`
}

func (d verifyDocument) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "group\t%s\n", d.Group)
	fmt.Fprintf(tw, "characters\t%s\n", d.Characters)
	fmt.Fprintf(tw, "homomorphism (via %s)\t%s\n", d.Faithful, d.Homomorphism)
	if len(d.Orders) > 0 {
		fmt.Fprintln(tw, "ELEMENT\tORDER")
		for _, o := range d.Orders {
			fmt.Fprintf(tw, "%s\t%d\n", o.Element, o.Order)
		}
	}

	return tw.Flush()
}

type groupDocument struct {
	Name   string   `yaml:"name"`
	Order  int      `yaml:"order"`
	Irreps []string `yaml:"irreps,flow"`
}

type groupsDocument struct {
	Groups []groupDocument `yaml:"groups"`
}

func (d groupsDocument) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "GROUP\tORDER\tIRREPS")
	for _, g := range d.Groups {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", g.Name, g.Order, strings.Join(g.Irreps, " "))
	}

	return tw.Flush()
}
