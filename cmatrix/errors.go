// SPDX-License-Identifier: MIT
// Package cmatrix: sentinel error set.
// Every algorithm returns one of these sentinels, optionally wrapped with an
// operation tag via cmatrixErrorf. Tests match them with errors.Is.

package cmatrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("cmatrix: dimensions must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside valid bounds.
	ErrOutOfRange = errors.New("cmatrix: index out of range")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("cmatrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required.
	ErrNonSquare = errors.New("cmatrix: matrix is not square")

	// ErrNilMatrix indicates that a nil *Dense was passed.
	ErrNilMatrix = errors.New("cmatrix: nil matrix")

	// ErrNotHermitian signals that A != Aᴴ within the given tolerance.
	ErrNotHermitian = errors.New("cmatrix: matrix is not hermitian within eps")

	// ErrEigenFailed indicates that an eigen routine did not converge.
	ErrEigenFailed = errors.New("cmatrix: eigen decomposition failed")

	// ErrNaNInf signals a NaN or ±Inf component.
	ErrNaNInf = errors.New("cmatrix: NaN or Inf encountered")

	// ErrZeroVector is returned when a vector with zero norm must be normalised.
	ErrZeroVector = errors.New("cmatrix: zero vector")

	// ErrRaggedRows indicates rows of different lengths passed to FromRows.
	ErrRaggedRows = errors.New("cmatrix: ragged rows")
)
