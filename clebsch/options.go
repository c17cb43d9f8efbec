// SPDX-License-Identifier: MIT

package clebsch

import (
	"math"

	"github.com/go-logr/logr"
)

// Defaults.
const (
	// DefaultTolerance is the eigenvalue filter: keep eigenvectors with |λ−1| < tol.
	DefaultTolerance = 1e-8

	// DefaultHermitianTolerance is the largest |P−Pᴴ| entry for which P is
	// treated as Hermitian and handed to the configured Solver.
	DefaultHermitianTolerance = 1e-10

	// DefaultBorderline is the half-width of the band around 1 in which an
	// eigenvalue that failed the tolerance test is reported as borderline.
	DefaultBorderline = 1e-3
)

const (
	panicToleranceInvalid  = "clebsch: WithTolerance: tol must be finite and > 0"
	panicHermTolInvalid    = "clebsch: WithHermitianTolerance: eps must be finite and ≥ 0"
	panicBorderlineInvalid = "clebsch: WithBorderline: band must be finite and ≥ 0"
	panicSolverNil         = "clebsch: WithSolver: nil solver"
)

// Option configures an Engine.
type Option func(*Options)

// Options is the resolved engine configuration.
type Options struct {
	tol        float64     // DefaultTolerance
	hermTol    float64     // DefaultHermitianTolerance
	borderline float64     // DefaultBorderline
	solver     Solver      // JacobiSolver{}
	canonical  bool        // false
	log        logr.Logger // logr.Discard()
}

func defaultOptions() Options {
	return Options{
		tol:        DefaultTolerance,
		hermTol:    DefaultHermitianTolerance,
		borderline: DefaultBorderline,
		solver:     JacobiSolver{},
		log:        logr.Discard(),
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

// WithTolerance sets the eigenvalue filter. An eigenvector of P is kept when
// its eigenvalue λ satisfies |λ−1| < tol.
//
// Panics when tol is not finite or not positive.
func WithTolerance(tol float64) Option {
	if isNonFinite(tol) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.tol = tol }
}

// WithHermitianTolerance sets the threshold on the deviation of P from
// Hermitian. Below it P is symmetrised and diagonalised by the configured
// Solver; above it the eigenvalue-1 space of P itself is extracted with
// cmatrix.EigenSpaceGeneral.
func WithHermitianTolerance(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicHermTolInvalid)
	}

	return func(o *Options) { o.hermTol = eps }
}

// WithBorderline sets the borderline band. Eigenvalues with
// tol ≤ |λ−1| < band are collected in Result.Borderline; a band not above
// the tolerance disables the report.
func WithBorderline(band float64) Option {
	if isNonFinite(band) || band < 0 {
		panic(panicBorderlineInvalid)
	}

	return func(o *Options) { o.borderline = band }
}

// WithSolver replaces the default JacobiSolver.
func WithSolver(s Solver) Option {
	if s == nil {
		panic(panicSolverNil)
	}

	return func(o *Options) { o.solver = s }
}

// WithCanonicalBasis makes CalcClebschGordan return the canonical
// orthonormal basis of the target subspace (see cmatrix.CanonicalBasis)
// instead of the raw solver eigenvectors.
func WithCanonicalBasis() Option {
	return func(o *Options) { o.canonical = true }
}

// WithLogger sets the diagnostics logger. Per-query detail is logged at V(1).
func WithLogger(l logr.Logger) Option {
	return func(o *Options) { o.log = l }
}
