// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// realEmbedding returns the row-major 2n×2n real matrix
//
//	[ Re(A)  −Im(A) ]
//	[ Im(A)   Re(A) ]
//
// which acts on (x; y) the way A acts on x + i·y.
func realEmbedding(m *Dense) []float64 {
	n := m.r
	dim := 2 * n
	buf := make([]float64, dim*dim)
	var i, j int
	var z complex128
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			z = m.data[i*n+j]
			buf[i*dim+j] = real(z)
			buf[i*dim+n+j] = -imag(z)
			buf[(n+i)*dim+j] = imag(z)
			buf[(n+i)*dim+n+j] = real(z)
		}
	}

	return buf
}

// EigenSpaceGeneral diagonalises an arbitrary square complex matrix, Hermitian
// or not, with gonum's general eigen solver (LAPACK dgeev semantics) on the
// real embedding. It returns the n eigenvalues of m and an orthonormal basis of
// the eigenspace of the real eigenvalue target, taken as the span of all
// eigenvectors whose eigenvalue lies within tol of target.
//
// The embedding carries every eigenvalue λ of m together with conj(λ), so
// non-real eigenvalues are reported up to conjugation, with Im ≥ 0. Their
// distance to a real target is unaffected. Values come back sorted by real part.
//
// Implementation:
//   - Stage 1: factorise the embedding with right eigenvectors.
//   - Stage 2: collapse the doubled spectrum to n values.
//   - Stage 3: map the real and imaginary parts (a; b) of every kept
//     eigenvector to a + i·b and extract half as many orthonormal vectors
//     by greedy max-residual Gram-Schmidt, each phase-fixed.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrEigenFailed (factorisation failure).
//
// Complexity:
//   - Time O(n³), Space O(n²).
func EigenSpaceGeneral(m *Dense, target, tol float64) ([]complex128, [][]complex128, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, cmatrixErrorf(opGeneral, err)
	}
	n := m.r
	dim := 2 * n

	var eig mat.Eigen
	if ok := eig.Factorize(mat.NewDense(dim, dim, realEmbedding(m)), mat.EigenRight); !ok {
		return nil, nil, cmatrixErrorf(opGeneral, ErrEigenFailed)
	}
	values := eig.Values(nil)
	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	sorted := append([]complex128(nil), values...)
	sort.Slice(sorted, func(a, b int) bool {
		ra, rb := real(sorted[a]), real(sorted[b])
		if ra != rb {
			return ra < rb
		}

		return imag(sorted[a]) < imag(sorted[b])
	})
	lambdas := make([]complex128, n)
	for k := range lambdas {
		z := sorted[2*k]
		lambdas[k] = complex(real(z), math.Abs(imag(z)))
	}

	var cands [][]complex128
	kept := 0
	var i int
	for k, mu := range values {
		if cmplx.Abs(mu-complex(target, 0)) >= tol {
			continue
		}
		kept++
		re := make([]complex128, n)
		im := make([]complex128, n)
		for i = 0; i < n; i++ {
			top, bottom := vecs.At(i, k), vecs.At(n+i, k)
			re[i] = complex(real(top), real(bottom))
			im[i] = complex(imag(top), imag(bottom))
		}
		cands = append(cands, re, im)
	}

	want := (kept + 1) / 2
	basis := make([][]complex128, 0, want)
	used := make([]bool, len(cands))
	for len(basis) < want {
		best, bestNorm := -1, tol
		var bestRes []complex128
		for k, v := range cands {
			if used[k] {
				continue
			}
			res := residual(v, basis)
			if nrm := VecNorm(res); nrm > bestNorm {
				best, bestNorm, bestRes = k, nrm, res
			}
		}
		if best < 0 {
			return nil, nil, cmatrixErrorf(opGeneral,
				fmt.Errorf("collapsed %d of %d eigenvectors: %w", len(basis), want, ErrEigenFailed))
		}
		used[best] = true
		u, err := Normalize(bestRes)
		if err != nil {
			return nil, nil, cmatrixErrorf(opGeneral, err)
		}
		FixPhase(u, tol)
		basis = append(basis, u)
	}

	return lambdas, basis, nil
}
