// SPDX-License-Identifier: MIT

package clebsch

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pointgroup/cmatrix"
)

// Solver diagonalises a Hermitian matrix. Eigen returns real eigenvalues and
// a unitary matrix whose column j is the eigenvector of eigenvalue j.
// The engine hands it only projectors that are Hermitian within the Hermitian
// tolerance. Implementations must be safe for concurrent use.
type Solver interface {
	Name() string
	Eigen(h *cmatrix.Dense) ([]float64, *cmatrix.Dense, error)
}

// JacobiSolver runs cmatrix.EigenHermitian. Zero fields take the cmatrix
// defaults. Eigenvalues come back in diagonal order, so a projector that is
// already diagonal yields the standard basis vectors.
type JacobiSolver struct {
	Tol     float64
	MaxIter int
}

// Name implements Solver.
func (JacobiSolver) Name() string { return "jacobi" }

// Eigen implements Solver.
func (s JacobiSolver) Eigen(h *cmatrix.Dense) ([]float64, *cmatrix.Dense, error) {
	tol, maxIter := s.Tol, s.MaxIter
	if tol == 0 {
		tol = cmatrix.DefaultEigenTol
	}
	if maxIter == 0 {
		maxIter = cmatrix.DefaultEigenMaxIter
	}

	return cmatrix.EigenHermitian(h, tol, maxIter)
}

// GonumSolver runs cmatrix.EigenHermitianRealified (gonum EigenSym on the
// real embedding). Eigenvalues come back ascending.
type GonumSolver struct {
	Eps float64 // Hermitian check tolerance; 0 means cmatrix.DefaultEigenTol
}

// Name implements Solver.
func (GonumSolver) Name() string { return "gonum" }

// Eigen implements Solver.
func (s GonumSolver) Eigen(h *cmatrix.Dense) ([]float64, *cmatrix.Dense, error) {
	eps := s.Eps
	if eps == 0 {
		eps = cmatrix.DefaultEigenTol
	}

	return cmatrix.EigenHermitianRealified(h, eps)
}

// SolverNames lists the names accepted by SolverByName.
func SolverNames() []string { return []string{"gonum", "jacobi"} }

// SolverByName returns the default-configured solver called name
// (case-insensitive).
func SolverByName(name string) (Solver, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "jacobi", "":
		return JacobiSolver{}, nil
	case "gonum":
		return GonumSolver{}, nil
	}

	return nil, fmt.Errorf("SolverByName(%q): %w", name, ErrUnknownSolver)
}
