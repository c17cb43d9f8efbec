// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

// Defaults for the Jacobi solver.
const (
	// DefaultEigenTol bounds the largest off-diagonal modulus at convergence.
	DefaultEigenTol = 1e-12

	// DefaultEigenMaxIter caps the number of pivot rotations.
	DefaultEigenMaxIter = 2000
)

// EigenHermitian computes eigenvalues and eigenvectors of a Hermitian matrix
// via complex Jacobi rotations.
// Implementation:
//   - Stage 1: validate square and Hermitian within tol.
//   - Stage 2: repeatedly pick (p,q) with the largest |A[p,q]| in i→j order.
//     Remove the phase of A[p,q] with a diagonal unitary, then annihilate the
//     now-real pivot with a plane rotation (c, s). The combined unitary W acts
//     on columns p,q of A and Q and, conjugated, on rows p,q of A.
//   - Stage 3: check the remaining off-diagonal mass and read eigenvalues off
//     the diagonal.
//
// Behavior highlights:
//   - Deterministic pivot scan and update order: identical inputs give
//     bit-identical outputs.
//   - A diagonal input is returned as is, with Q = I.
//
// Inputs:
//   - m: Hermitian matrix (within tol).
//   - tol: convergence threshold on max |A[p,q]|.
//   - maxIter: safety cap on rotations.
//
// Returns:
//   - []float64: eigenvalues in diagonal order (not sorted).
//   - *Dense: unitary Q whose column j is the eigenvector of eigenvalue j.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian, ErrEigenFailed.
//
// Complexity:
//   - Time O(maxIter·n²), Space O(n²).
func EigenHermitian(m *Dense, tol float64, maxIter int) ([]float64, *Dense, error) {
	if err := ValidateHermitian(m, tol); err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}
	n := m.r
	a := m.Clone()
	q, err := Identity(n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opEigen, err)
	}

	var (
		iter, i, j, p, qq int
		maxOff, off       float64
		app, aqq, abspq   float64
		theta, t, c, s    float64
		phase             complex128 // e^{-iφ}, φ = arg A[p,q]
		cs                complex128 // -s·e^{-iφ}
		cc                complex128 // c·e^{-iφ}
		xp, xq            complex128
	)
	for iter = 0; iter < maxIter; iter++ {
		maxOff = offDiagonalMax(a, &p, &qq)
		if maxOff < tol {
			break
		}

		app = real(a.data[p*n+p])
		aqq = real(a.data[qq*n+qq])
		abspq = cmplx.Abs(a.data[p*n+qq])
		phase = cmplx.Conj(a.data[p*n+qq]) / complex(abspq, 0)

		theta = (aqq - app) / (2 * abspq)
		t = math.Copysign(1.0/(math.Abs(theta)+math.Hypot(theta, 1)), theta)
		c = 1.0 / math.Sqrt(t*t+1)
		s = t * c

		cs = complex(-s, 0) * phase
		cc = complex(c, 0) * phase

		// Columns: A ← A·W, Q ← Q·W.
		for i = 0; i < n; i++ {
			xp, xq = a.data[i*n+p], a.data[i*n+qq]
			a.data[i*n+p] = complex(c, 0)*xp + cs*xq
			a.data[i*n+qq] = complex(s, 0)*xp + cc*xq

			xp, xq = q.data[i*n+p], q.data[i*n+qq]
			q.data[i*n+p] = complex(c, 0)*xp + cs*xq
			q.data[i*n+qq] = complex(s, 0)*xp + cc*xq
		}
		// Rows: A ← Wᴴ·A.
		for j = 0; j < n; j++ {
			xp, xq = a.data[p*n+j], a.data[qq*n+j]
			a.data[p*n+j] = complex(c, 0)*xp + cmplx.Conj(cs)*xq
			a.data[qq*n+j] = complex(s, 0)*xp + cmplx.Conj(cc)*xq
		}
		a.data[p*n+qq], a.data[qq*n+p] = 0, 0
		a.data[p*n+p] = complex(real(a.data[p*n+p]), 0)
		a.data[qq*n+qq] = complex(real(a.data[qq*n+qq]), 0)
	}

	if off = offDiagonalMax(a, &p, &qq); off >= tol {
		return nil, nil, cmatrixErrorf(opEigen, fmt.Errorf("max off-diagonal %.3g after %d rotations: %w", off, iter, ErrEigenFailed))
	}

	eigs := make([]float64, n)
	for i = 0; i < n; i++ {
		eigs[i] = real(a.data[i*n+i])
	}

	return eigs, q, nil
}

// offDiagonalMax returns max |A[i,j]| over i<j and stores its position in (p, q).
func offDiagonalMax(a *Dense, p, q *int) float64 {
	n := a.r
	var maxOff, off float64
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if off = cmplx.Abs(a.data[i*n+j]); off > maxOff {
				maxOff, *p, *q = off, i, j
			}
		}
	}

	return maxOff
}
