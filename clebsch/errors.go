// SPDX-License-Identifier: MIT

package clebsch

import "errors"

var (
	// ErrNilRepresentation indicates New was called without a Representation.
	ErrNilRepresentation = errors.New("clebsch: nil representation")

	// ErrSolver wraps a failure of the eigen solver.
	ErrSolver = errors.New("clebsch: eigen solver failed")

	// ErrUnknownSolver indicates a solver name not known to SolverByName.
	ErrUnknownSolver = errors.New("clebsch: unknown solver")

	// ErrIncomplete indicates a decomposition whose vector count differs from d1·d2.
	ErrIncomplete = errors.New("clebsch: incomplete decomposition")
)
