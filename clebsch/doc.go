// SPDX-License-Identifier: MIT

// Package clebsch computes Clebsch-Gordan coefficients for finite groups.
//
// Given two irreps Γ1, Γ2 and a target irrep Γt of a group G, the engine
// finds an orthonormal basis of the Γt-isotypic subspace of Γ1⊗Γ2:
//
//  1. Form the tensor representation (Γ1⊗Γ2)(g) = Γ1(g) ⊗ Γ2(g) with the
//     Kronecker product.
//  2. Build the projector
//
//     P = (d_t/|G|) · Σ_g conj(χ_t(g)) · (Γ1⊗Γ2)(g),
//
//     summing in the element order of the Representation.
//  3. If P is Hermitian within WithHermitianTolerance, symmetrise it to
//     (P+Pᴴ)/2 and diagonalise it with the configured Hermitian solver.
//     Otherwise, for a non-unitary representation, take the eigenvalue-1
//     space of P itself with the general solver (cmatrix.EigenSpaceGeneral).
//  4. Keep the eigenvectors whose eigenvalue lies within the tolerance of 1
//     and normalise them.
//
// For unitary irreps P is an orthogonal projector; for any homomorphism it is
// idempotent. Its eigenvalues are 0 or 1 and the kept vectors span exactly
// the target subspace. Their count equals
// multiplicity(Γt in Γ1⊗Γ2)·d_t. When Γt does not occur, the result is empty;
// that is a valid answer, not an error.
//
// Eigenvectors of a degenerate eigenvalue are defined only up to a unitary
// change of basis, so the raw vectors depend on the solver. WithCanonicalBasis
// replaces them with the unique reduced-echelon orthonormal basis of their
// span, which is the same for every solver.
//
// An Engine is immutable after New and safe for concurrent use.
//
// Typical use:
//
//	eng, err := clebsch.New(pointgroups.D4())
//	res, err := eng.CalcClebschGordan("B1", "E", "E")
//	// res.Vectors == [[1 0] [0 1]]
package clebsch
