// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pointgroup/clebsch"
	"github.com/katalvlaran/pointgroup/group"
	"github.com/katalvlaran/pointgroup/pointgroups"
)

var errIncomplete = errors.New("decomposition check failed")

func newCGCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cg <irrep1> <irrep2> <target>",
		Short: "Clebsch-Gordan vectors of target in irrep1⊗irrep2",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := a.engine.CalcClebschGordan(args[0], args[1], args[2])
			if err != nil {
				return err
			}
			if res.Ambiguous() {
				a.log.Info("result disagrees with the character prediction",
					"found", len(res.Vectors), "expected", res.Expected(), "borderline", res.Borderline)
			}

			return a.render(cmd.OutOrStdout(), a.cgDocument(res))
		},
	}
}

func newDecomposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <irrep1> <irrep2>",
		Short: "All isotypic components of irrep1⊗irrep2",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			comps, err := a.engine.Decompose(args[0], args[1])
			if err != nil {
				return err
			}
			d1, _ := a.rep.Dim(args[0])
			d2, _ := a.rep.Dim(args[1])
			doc := decomposeDocument{
				Group:     a.rep.Name(),
				Irrep1:    args[0],
				Irrep2:    args[1],
				Dimension: d1 * d2,
				Complete:  clebsch.Completeness(comps, d1*d2) == nil,
			}
			for _, c := range comps {
				doc.Components = append(doc.Components, a.cgDocument(c.Result))
			}
			if err = a.render(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
			if !doc.Complete {
				return fmt.Errorf("%s⊗%s: %w", args[0], args[1], errIncomplete)
			}

			return nil
		},
	}
}

func newCharsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chars",
		Short: "Print the character table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ct := a.rep.CharTable()
			doc := charsDocument{Group: a.rep.Name()}
			for _, c := range ct.Classes {
				doc.Classes = append(doc.Classes, classDocument{Name: c.Name, Elements: c.Elements})
			}
			for _, label := range a.rep.IrrepLabels() {
				row := characterRow{Irrep: label}
				for _, z := range ct.Rows[label] {
					row.Characters = append(row.Characters, group.Complex(z))
				}
				doc.Rows = append(doc.Rows, row)
			}

			return a.render(cmd.OutOrStdout(), doc)
		},
	}
}

func newIrrepsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "irreps",
		Short: "List irreps and their dimensions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := irrepsDocument{Group: a.rep.Name(), Order: a.rep.Order()}
			for _, label := range a.rep.IrrepLabels() {
				d, _ := a.rep.Dim(label)
				doc.Irreps = append(doc.Irreps, irrepDocument{Label: label, Dim: d})
			}

			return a.render(cmd.OutOrStdout(), doc)
		},
	}
}

func newVerifyCmd(a *app) *cobra.Command {
	var faithful string
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the representation data: characters, homomorphism, element orders",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			label := faithful
			if label == "" {
				if label, err = a.rep.FaithfulIrrep(checkEps); err != nil {
					return err
				}
			}
			doc := verifyDocument{Group: a.rep.Name(), Faithful: label}
			doc.Characters = status(a.rep.VerifyCharacters(checkEps))
			doc.Homomorphism = status(a.rep.VerifyHomomorphism(label, checkEps))
			if doc.Homomorphism == statusOK {
				orders, oerr := a.rep.ElementOrders(label, group.DefaultOrderBound, checkEps)
				if oerr != nil {
					return oerr
				}
				for _, g := range a.rep.Elements() {
					doc.Orders = append(doc.Orders, orderDocument{Element: g, Order: orders[g]})
				}
			}
			if err = a.render(cmd.OutOrStdout(), doc); err != nil {
				return err
			}
			if doc.Characters != statusOK || doc.Homomorphism != statusOK {
				return fmt.Errorf("%s: %w", a.rep.Name(), errVerify)
			}

			return nil
		},
	}
	cmd.Flags().StringVar(&faithful, "faithful", "", "irrep used to derive the multiplication table (default: detected)")

	return cmd
}

func newGroupsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "groups",
		Short: "List the built-in groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var doc groupsDocument
			for _, name := range pointgroups.Names() {
				rep, err := pointgroups.Lookup(name)
				if err != nil {
					return err
				}
				doc.Groups = append(doc.Groups, groupDocument{Name: name, Order: rep.Order(), Irreps: rep.IrrepLabels()})
			}

			return a.render(cmd.OutOrStdout(), doc)
		},
	}
}

var errVerify = errors.New("verification failed")

const statusOK = "ok"

func status(err error) string {
	if err == nil {
		return statusOK
	}

	return err.Error()
}

func (a *app) cgDocument(res *clebsch.Result) cgDocument {
	doc := cgDocument{
		Group:        a.rep.Name(),
		Irrep1:       res.Irrep1,
		Irrep2:       res.Irrep2,
		Target:       res.Target,
		Solver:       a.engine.SolverName(),
		Tolerance:    a.engine.Tolerance(),
		Multiplicity: res.Multiplicity,
		Expected:     res.Expected(),
		Ambiguous:    res.Ambiguous(),
		Borderline:   res.Borderline,
		Vectors:      make([][]group.Complex, len(res.Vectors)),
	}
	for i, v := range res.Vectors {
		doc.Vectors[i] = make([]group.Complex, len(v))
		for j, z := range v {
			doc.Vectors[i][j] = group.Complex(chop(z))
		}
	}

	return doc
}
