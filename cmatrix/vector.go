// SPDX-License-Identifier: MIT

package cmatrix

import (
	"fmt"
	"math"
	"math/cmplx"
)

const (
	opNormalize = "Normalize"
	opCanonical = "CanonicalBasis"
)

// Inner returns ⟨x, y⟩ = Σ conj(x[i])·y[i].
// Errors: ErrDimensionMismatch when lengths differ.
func Inner(x, y []complex128) (complex128, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("Inner: len %d vs %d: %w", len(x), len(y), ErrDimensionMismatch)
	}
	var s complex128
	for i := range x {
		s += cmplx.Conj(x[i]) * y[i]
	}

	return s, nil
}

// VecNorm returns the Euclidean norm √(Σ|x_i|²), computed with hypot
// scaling to avoid overflow.
func VecNorm(x []complex128) float64 {
	var n float64
	for _, v := range x {
		n = math.Hypot(n, cmplx.Abs(v))
	}

	return n
}

// Normalize returns x/‖x‖ as a fresh slice.
// Errors: ErrZeroVector when ‖x‖ == 0.
func Normalize(x []complex128) ([]complex128, error) {
	n := VecNorm(x)
	if n == 0 {
		return nil, cmatrixErrorf(opNormalize, ErrZeroVector)
	}
	out := make([]complex128, len(x))
	inv := complex(1/n, 0)
	for i, v := range x {
		out[i] = v * inv
	}

	return out, nil
}

// FixPhase multiplies x in place by a unit phase so that its first component
// with modulus above eps becomes real and positive. Vectors with no such
// component are left untouched.
func FixPhase(x []complex128, eps float64) {
	for _, v := range x {
		a := cmplx.Abs(v)
		if a <= eps {
			continue
		}
		phase := cmplx.Conj(v) / complex(a, 0)
		for i := range x {
			x[i] *= phase
		}

		return
	}
}

// CanonicalBasis maps a set of vectors to a canonical orthonormal basis of
// their span. Two inputs spanning the same subspace yield the same output up
// to rounding, whatever basis and phases they started with.
//
// Implementation:
//   - Stage 1: reduce the vectors (as rows) to reduced row echelon form with
//     partial pivoting; columns whose best pivot is ≤ eps are skipped.
//   - Stage 2: modified Gram-Schmidt over the non-zero RREF rows in order.
//   - Stage 3: FixPhase on each resulting vector.
//
// Returns rank-many vectors; an empty input yields an empty result.
//
// Errors:
//   - ErrDimensionMismatch (vectors of different length).
//
// Complexity:
//   - Time O(k²·n), Space O(k·n).
func CanonicalBasis(vectors [][]complex128, eps float64) ([][]complex128, error) {
	k := len(vectors)
	if k == 0 {
		return [][]complex128{}, nil
	}
	n := len(vectors[0])
	rows := make([][]complex128, k)
	for i, v := range vectors {
		if len(v) != n {
			return nil, cmatrixErrorf(opCanonical, ErrDimensionMismatch)
		}
		rows[i] = append([]complex128(nil), v...)
	}

	// Stage 1: RREF.
	var (
		r, col, i, j, best int
		bestAbs, a        float64
		pivot, f          complex128
	)
	for col = 0; col < n && r < k; col++ {
		best, bestAbs = -1, eps
		for i = r; i < k; i++ {
			if a = cmplx.Abs(rows[i][col]); a > bestAbs {
				best, bestAbs = i, a
			}
		}
		if best < 0 {
			continue
		}
		rows[r], rows[best] = rows[best], rows[r]
		pivot = rows[r][col]
		for j = 0; j < n; j++ {
			rows[r][j] /= pivot
		}
		for i = 0; i < k; i++ {
			if i == r {
				continue
			}
			if f = rows[i][col]; f == 0 {
				continue
			}
			for j = 0; j < n; j++ {
				rows[i][j] -= f * rows[r][j]
			}
		}
		r++
	}

	// Stage 2: Gram-Schmidt on the rank-many leading rows.
	out := make([][]complex128, 0, r)
	for i = 0; i < r; i++ {
		v := rows[i]
		for _, u := range out {
			f, _ = Inner(u, v)
			for j = 0; j < n; j++ {
				v[j] -= f * u[j]
			}
		}
		u, err := Normalize(v)
		if err != nil {
			return nil, cmatrixErrorf(opCanonical, err)
		}
		// Stage 3: phase.
		FixPhase(u, eps)
		out = append(out, u)
	}

	return out, nil
}
