// SPDX-License-Identifier: MIT

package clebsch

import (
	"fmt"
	"math/cmplx"

	"github.com/katalvlaran/pointgroup/cmatrix"
	"github.com/katalvlaran/pointgroup/group"
)

const (
	opTensorRep = "TensorRep"
	opProjector = "Projector"
	opCalc      = "CalcClebschGordan"
	opDecompose = "Decompose"
)

// Engine answers Clebsch-Gordan queries against one Representation.
type Engine struct {
	rep  *group.Representation
	opts Options
}

// Result is the answer to one CalcClebschGordan query.
type Result struct {
	Irrep1, Irrep2, Target string

	// TargetDim is d_t, the dimension of Target.
	TargetDim int

	// Vectors is an orthonormal basis of the Target-isotypic subspace of
	// Irrep1⊗Irrep2, each of length d1·d2 in Kronecker index order
	// (index i·d2 + j pairs basis vector i of Irrep1 with j of Irrep2).
	// Empty when Target does not occur.
	Vectors [][]complex128

	// Eigenvalues is the full spectrum of the projector in solver order.
	Eigenvalues []float64

	// Multiplicity is the number of copies of Target predicted by characters.
	Multiplicity int

	// Borderline holds eigenvalues that missed the tolerance but lie inside
	// the borderline band around 1.
	Borderline []float64
}

// Expected returns Multiplicity·TargetDim, the vector count characters predict.
func (r *Result) Expected() int { return r.Multiplicity * r.TargetDim }

// Ambiguous reports whether the numerical answer disagrees with the
// character prediction or has eigenvalues close to the tolerance edge.
// An empty, unambiguous result means the target genuinely does not occur.
func (r *Result) Ambiguous() bool {
	return len(r.Vectors) != r.Expected() || len(r.Borderline) > 0
}

// Component is one non-empty isotypic component of a tensor product.
type Component struct {
	Irrep  string
	Result *Result
}

// New returns an Engine over rep.
//
// Errors:
//   - ErrNilRepresentation.
func New(rep *group.Representation, opts ...Option) (*Engine, error) {
	if rep == nil {
		return nil, ErrNilRepresentation
	}

	return &Engine{rep: rep, opts: gatherOptions(opts...)}, nil
}

// Representation returns the store the engine reads from.
func (e *Engine) Representation() *group.Representation { return e.rep }

// Tolerance returns the configured eigenvalue filter.
func (e *Engine) Tolerance() float64 { return e.opts.tol }

// SolverName returns the name of the configured solver.
func (e *Engine) SolverName() string { return e.opts.solver.Name() }

// TensorRep returns Γ1(g) ⊗ Γ2(g), a (d1·d2)×(d1·d2) matrix.
//
// Errors:
//   - *group.LookupError for an unknown irrep or element.
func (e *Engine) TensorRep(irrep1, irrep2, g string) (*cmatrix.Dense, error) {
	a, err := e.rep.IrrepMatrix(irrep1, g)
	if err != nil {
		return nil, err
	}
	b, err := e.rep.IrrepMatrix(irrep2, g)
	if err != nil {
		return nil, err
	}
	k, err := cmatrix.Kron(a, b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opTensorRep, err)
	}

	return k, nil
}

// Projector returns the isotypic projector of target on irrep1⊗irrep2,
//
//	P = (d_t/|G|) · Σ_g conj(χ_t(g)) · Γ1(g)⊗Γ2(g).
//
// Implementation:
//   - Stage 1: fetch the three irreps in element order (lookup errors surface here).
//   - Stage 2: for each g, form the Kronecker product and add it to P with
//     weight conj(tr Γt(g))·d_t/|G|. Only one product is alive at a time.
//
// The summation order is the element order of the Representation, so equal
// inputs give bit-identical projectors.
//
// Complexity:
//   - Time O(|G|·(d1·d2)²), Space O((d1·d2)²).
func (e *Engine) Projector(irrep1, irrep2, target string) (*cmatrix.Dense, error) {
	m1, err := e.rep.Matrices(irrep1)
	if err != nil {
		return nil, err
	}
	m2, err := e.rep.Matrices(irrep2)
	if err != nil {
		return nil, err
	}
	mt, err := e.rep.Matrices(target)
	if err != nil {
		return nil, err
	}
	n := m1[0].Rows() * m2[0].Rows()
	p, err := cmatrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opProjector, err)
	}
	norm := complex(float64(mt[0].Rows())/float64(len(mt)), 0)

	var (
		k   *cmatrix.Dense
		chi complex128
	)
	for i := range mt {
		if chi, err = cmatrix.Trace(mt[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", opProjector, err)
		}
		if k, err = cmatrix.Kron(m1[i], m2[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", opProjector, err)
		}
		if err = cmatrix.AddScaledInPlace(p, k, cmplx.Conj(chi)*norm); err != nil {
			return nil, fmt.Errorf("%s: %w", opProjector, err)
		}
	}

	return p, nil
}

// GeneralSolverName is reported in logs when a non-Hermitian projector
// bypasses the configured Solver.
const GeneralSolverName = "general"

// CalcClebschGordan returns an orthonormal basis of the target-isotypic
// subspace of irrep1⊗irrep2.
//
// Implementation:
//   - Stage 1: build P with Projector.
//   - Stage 2: when P is Hermitian within the Hermitian tolerance, symmetrise
//     it to (P+Pᴴ)/2 and diagonalise with the configured Solver. Otherwise
//     (a non-unitary representation) take the eigenvalue-1 space of P itself
//     with cmatrix.EigenSpaceGeneral and log the deviation.
//   - Stage 3: keep eigenvectors with |λ−1| < tol, in solver order, each
//     normalised to unit length; collect borderline eigenvalues.
//   - Stage 4: optionally replace the kept vectors by their canonical basis.
//
// Behavior highlights:
//   - A target that does not occur gives an empty Vectors slice and a nil error.
//   - Multiplicity is filled from characters so callers can tell an empty
//     answer from a numerically suspect one (see Result.Ambiguous).
//   - For a non-unitary representation the returned basis is orthonormal, but
//     the isotypic subspaces of different targets need not be orthogonal.
//
// Errors:
//   - *group.LookupError for an unknown label.
//   - ErrSolver wrapping the solver error.
//
// Complexity:
//   - Time O(|G|·n² + solver), n = d1·d2.
func (e *Engine) CalcClebschGordan(irrep1, irrep2, target string) (*Result, error) {
	log := e.opts.log.WithValues("irrep1", irrep1, "irrep2", irrep2, "target", target)

	p, err := e.Projector(irrep1, irrep2, target)
	if err != nil {
		return nil, err
	}
	dev, err := cmatrix.HermitianDeviation(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opCalc, err)
	}
	if tr, terr := cmatrix.Trace(p); terr == nil {
		log.V(1).Info("projector built", "size", p.Rows(), "trace", real(tr), "deviation", dev)
	}

	res := &Result{
		Irrep1:  irrep1,
		Irrep2:  irrep2,
		Target:  target,
		Vectors: [][]complex128{},
	}
	solver := e.opts.solver.Name()
	if dev > e.opts.hermTol {
		solver = GeneralSolverName
		log.Info("projector is not Hermitian, using the general eigensolver", "deviation", dev, "threshold", e.opts.hermTol)
		err = e.fixedSpaceGeneral(p, res)
	} else {
		err = e.fixedSpaceHermitian(p, res)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", opCalc, solver, err)
	}

	if e.opts.canonical && len(res.Vectors) > 0 {
		if res.Vectors, err = cmatrix.CanonicalBasis(res.Vectors, e.opts.tol); err != nil {
			return nil, fmt.Errorf("%s: %w", opCalc, err)
		}
	}

	// Labels are known to exist here.
	res.TargetDim, _ = e.rep.Dim(target)
	res.Multiplicity, _ = e.rep.Multiplicity(irrep1, irrep2, target)

	if len(res.Borderline) > 0 {
		log.Info("eigenvalues near the tolerance edge", "borderline", res.Borderline, "tolerance", e.opts.tol)
	}
	log.V(1).Info("clebsch-gordan done",
		"solver", solver,
		"found", len(res.Vectors),
		"expected", res.Expected(),
		"canonical", e.opts.canonical)

	return res, nil
}

// fixedSpaceHermitian fills res from the configured Solver applied to (P+Pᴴ)/2.
func (e *Engine) fixedSpaceHermitian(p *cmatrix.Dense, res *Result) error {
	h, err := cmatrix.Hermitize(p)
	if err != nil {
		return err
	}
	vals, q, err := e.opts.solver.Eigen(h)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSolver, err)
	}
	res.Eigenvalues = vals

	var col, v []complex128
	for j, lambda := range vals {
		if !e.keep(complex(lambda, 0), res) {
			continue
		}
		if col, err = q.Column(j); err != nil {
			return err
		}
		if v, err = cmatrix.Normalize(col); err != nil {
			return fmt.Errorf("%w: %w", ErrSolver, err)
		}
		res.Vectors = append(res.Vectors, v)
	}

	return nil
}

// fixedSpaceGeneral fills res from the eigenvalue-1 space of P. Eigenvalues
// are reported by their real parts.
func (e *Engine) fixedSpaceGeneral(p *cmatrix.Dense, res *Result) error {
	lambdas, basis, err := cmatrix.EigenSpaceGeneral(p, 1, e.opts.tol)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSolver, err)
	}
	res.Eigenvalues = make([]float64, len(lambdas))
	for k, lambda := range lambdas {
		res.Eigenvalues[k] = real(lambda)
		e.keep(lambda, res)
	}
	res.Vectors = append(res.Vectors, basis...)

	return nil
}

// keep reports whether lambda passes the eigenvalue filter, recording it in
// res.Borderline when it misses by less than the borderline band.
func (e *Engine) keep(lambda complex128, res *Result) bool {
	d := cmplx.Abs(lambda - 1)
	if d < e.opts.tol {
		return true
	}
	if d < e.opts.borderline {
		res.Borderline = append(res.Borderline, real(lambda))
	}

	return false
}

// Decompose runs CalcClebschGordan for every irrep label (sorted) and returns
// the non-empty components. Together their vectors form an orthonormal basis
// of irrep1⊗irrep2; see Completeness.
func (e *Engine) Decompose(irrep1, irrep2 string) ([]Component, error) {
	var out []Component
	for _, label := range e.rep.IrrepLabels() {
		res, err := e.CalcClebschGordan(irrep1, irrep2, label)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opDecompose, err)
		}
		if len(res.Vectors) == 0 {
			continue
		}
		out = append(out, Component{Irrep: label, Result: res})
	}
	e.opts.log.V(1).Info("decomposed", "irrep1", irrep1, "irrep2", irrep2, "components", len(out))

	return out, nil
}

// Completeness checks that components account for all dim = d1·d2
// dimensions of the tensor product.
//
// Errors:
//   - ErrIncomplete with the observed and expected counts.
func Completeness(components []Component, dim int) error {
	total := 0
	for _, c := range components {
		total += len(c.Result.Vectors)
	}
	if total != dim {
		return fmt.Errorf("%d vectors for dimension %d: %w", total, dim, ErrIncomplete)
	}

	return nil
}
