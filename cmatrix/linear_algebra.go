// SPDX-License-Identifier: MIT
// Package cmatrix provides universal operations on Dense matrices:
// element-wise addition, scaling, products (ordinary and Kronecker),
// conjugate transpose, trace and integer powers. All functions validate
// eagerly and return fresh results; operands are never mutated.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

// Operation name constants for unified error wrapping.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opScale     = "Scale"
	opMul       = "Mul"
	opKron      = "Kron"
	opAdjoint   = "ConjTranspose"
	opTrace     = "Trace"
	opHermitize = "Hermitize"
	opMatVec    = "MatVec"
	opEigen     = "EigenHermitian"
	opRealified = "EigenHermitianRealified"
	opGeneral   = "EigenSpaceGeneral"
)

// cmatrixErrorf wraps err with an operation tag, preserving the cause via %w.
// Call only with a non-nil err.
func cmatrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes out = a + sign*b; shared by Add and Sub.
func addSub(a, b *Dense, sign complex128, opTag string) (*Dense, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}
	res, err := NewDense(a.r, a.c)
	if err != nil {
		return nil, cmatrixErrorf(opTag, err)
	}
	for idx := range a.data {
		res.data[idx] = a.data[idx] + sign*b.data[idx]
	}

	return res, nil
}

// Add computes C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add(a, b *Dense) (*Dense, error) { return addSub(a, b, 1, opAdd) }

// Sub computes C = A − B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub(a, b *Dense) (*Dense, error) { return addSub(a, b, -1, opSub) }

// Scale returns alpha·M.
func Scale(m *Dense, alpha complex128) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opScale, err)
	}
	if isNonFinite(alpha) {
		return nil, cmatrixErrorf(opScale, ErrNaNInf)
	}
	res := m.Clone()
	for idx := range res.data {
		res.data[idx] *= alpha
	}

	return res, nil
}

// AddScaledInPlace performs dst += alpha·src without allocating.
// It is the accumulation kernel for group sums, where one fresh term is
// produced per group element and discarded right after being added.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddScaledInPlace(dst, src *Dense, alpha complex128) error {
	if err := ValidateSameShape(dst, src); err != nil {
		return cmatrixErrorf(opAdd, err)
	}
	if alpha == 0 {
		return nil
	}
	for idx := range dst.data {
		dst.data[idx] += alpha * src.data[idx]
	}

	return nil
}

// Mul computes the matrix product C = A·B.
// Implementation:
//   - Stage 1: validate a.Cols == b.Rows.
//   - Stage 2: i→k→j triple loop over the flat buffers (row-major friendly).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(n·m·p), Space O(n·p).
func Mul(a, b *Dense) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	res, err := NewDense(a.r, b.c)
	if err != nil {
		return nil, cmatrixErrorf(opMul, err)
	}
	var i, k, j int
	var aik complex128
	for i = 0; i < a.r; i++ {
		for k = 0; k < a.c; k++ {
			aik = a.data[i*a.c+k]
			if aik == 0 {
				continue
			}
			for j = 0; j < b.c; j++ {
				res.data[i*res.c+j] += aik * b.data[k*b.c+j]
			}
		}
	}

	return res, nil
}

// Kron computes the Kronecker product A⊗B.
// For A (m×n) and B (p×q) the result is (m·p)×(n·q) with
//
//	(A⊗B)[i*p+k, j*q+l] = A[i,j] · B[k,l].
//
// This is the same index convention as numpy.kron, so the tensor basis is
// ordered with the first factor's index varying slowest.
//
// Errors:
//   - ErrNilMatrix.
//
// Complexity:
//   - Time O(m·n·p·q), Space O(m·n·p·q).
func Kron(a, b *Dense) (*Dense, error) {
	if err := ValidateNotNil(a); err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}
	if err := ValidateNotNil(b); err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}
	res, err := NewDense(a.r*b.r, a.c*b.c)
	if err != nil {
		return nil, cmatrixErrorf(opKron, err)
	}
	var i, j, k, l, row int
	var aij complex128
	for i = 0; i < a.r; i++ {
		for j = 0; j < a.c; j++ {
			aij = a.data[i*a.c+j]
			if aij == 0 {
				continue
			}
			for k = 0; k < b.r; k++ {
				row = (i*b.r + k) * res.c
				for l = 0; l < b.c; l++ {
					res.data[row+j*b.c+l] = aij * b.data[k*b.c+l]
				}
			}
		}
	}

	return res, nil
}

// ConjTranspose returns the adjoint Aᴴ (transpose with conjugated entries).
func ConjTranspose(m *Dense) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}
	res, err := NewDense(m.c, m.r)
	if err != nil {
		return nil, cmatrixErrorf(opAdjoint, err)
	}
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			res.data[j*m.r+i] = cmplx.Conj(m.data[i*m.c+j])
		}
	}

	return res, nil
}

// Trace returns Σ_i M[i,i] of a square matrix.
// Errors: ErrNilMatrix, ErrNonSquare.
func Trace(m *Dense) (complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, cmatrixErrorf(opTrace, err)
	}
	var tr complex128
	for i := 0; i < m.r; i++ {
		tr += m.data[i*m.c+i]
	}

	return tr, nil
}

// Hermitize returns (M + Mᴴ)/2, the nearest Hermitian matrix in Frobenius norm.
// Diagonal imaginary parts are cleared exactly.
func Hermitize(m *Dense) (*Dense, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, cmatrixErrorf(opHermitize, err)
	}
	n := m.r
	res, err := NewDense(n, n)
	if err != nil {
		return nil, cmatrixErrorf(opHermitize, err)
	}
	var i, j int
	var avg complex128
	for i = 0; i < n; i++ {
		res.data[i*n+i] = complex(real(m.data[i*n+i]), 0)
		for j = i + 1; j < n; j++ {
			avg = (m.data[i*n+j] + cmplx.Conj(m.data[j*n+i])) / 2
			res.data[i*n+j] = avg
			res.data[j*n+i] = cmplx.Conj(avg)
		}
	}

	return res, nil
}

// MatVec computes y = M·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
func MatVec(m *Dense, x []complex128) ([]complex128, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, cmatrixErrorf(opMatVec, err)
	}
	if len(x) != m.c {
		return nil, cmatrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]complex128, m.r)
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			y[i] += m.data[i*m.c+j] * x[j]
		}
	}

	return y, nil
}
