// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// EigenHermitianRealified diagonalises a Hermitian matrix with gonum's
// symmetric eigen solver (LAPACK dsyev semantics) applied to the real
// embedding
//
//	R = [ Re(A)  −Im(A) ]
//	    [ Im(A)   Re(A) ]
//
// R is real symmetric exactly when A is Hermitian. Every eigenvalue λ of A
// appears twice in R, with eigenvectors (x; y) and (−y; x) that both map to
// the same complex line x + i·y. The doubled spectrum is collapsed back to n
// complex eigenpairs by a greedy Gram-Schmidt: at each step the candidate
// with the largest residual against the accepted set is taken.
//
// Returns eigenvalues in ascending order and a unitary matrix with the
// matching eigenvectors as columns.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrNotHermitian (beyond eps),
//     ErrEigenFailed (factorisation failure).
//
// Complexity:
//   - Time O(n³) for the factorisation plus O(n³) for the collapse.
func EigenHermitianRealified(m *Dense, eps float64) ([]float64, *Dense, error) {
	if err := ValidateHermitian(m, eps); err != nil {
		return nil, nil, cmatrixErrorf(opRealified, err)
	}
	n := m.r
	dim := 2 * n
	var i, j int

	var es mat.EigenSym
	if ok := es.Factorize(mat.NewSymDense(dim, realEmbedding(m)), true); !ok {
		return nil, nil, cmatrixErrorf(opRealified, ErrEigenFailed)
	}
	values := es.Values(nil)
	var vecs mat.Dense
	es.VectorsTo(&vecs)

	// Complex images of the 2n real eigenvectors.
	cands := make([][]complex128, dim)
	for k := 0; k < dim; k++ {
		v := make([]complex128, n)
		for i = 0; i < n; i++ {
			v[i] = complex(vecs.At(i, k), vecs.At(n+i, k))
		}
		cands[k] = v
	}

	order := make([]int, 0, n) // indices into values of the picked candidates
	basis := make([][]complex128, 0, n)
	used := make([]bool, dim)
	for len(basis) < n {
		best, bestNorm := -1, 0.0
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
			return nil, nil, cmatrixErrorf(opRealified, fmt.Errorf("collapsed %d of %d eigenvectors: %w", len(basis), n, ErrEigenFailed))
		}
		used[best] = true
		u, err := Normalize(bestRes)
		if err != nil {
			return nil, nil, cmatrixErrorf(opRealified, err)
		}
		order = append(order, best)
		basis = append(basis, u)
	}

	// Ascending eigenvalue order; ties keep pick order.
	perm := make([]int, n)
	for j = range perm {
		perm[j] = j
	}
	sort.SliceStable(perm, func(a, b int) bool { return values[order[perm[a]]] < values[order[perm[b]]] })

	eigs := make([]float64, n)
	q, err := NewDense(n, n)
	if err != nil {
		return nil, nil, cmatrixErrorf(opRealified, err)
	}
	for j = 0; j < n; j++ {
		eigs[j] = values[order[perm[j]]]
		for i = 0; i < n; i++ {
			q.data[i*n+j] = basis[perm[j]][i]
		}
	}

	return eigs, q, nil
}

// residual returns v minus its projections onto the orthonormal vectors of basis.
func residual(v []complex128, basis [][]complex128) []complex128 {
	out := append([]complex128(nil), v...)
	for _, u := range basis {
		f, _ := Inner(u, out)
		for i := range out {
			out[i] -= f * u[i]
		}
	}

	return out
}
