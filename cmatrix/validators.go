// SPDX-License-Identifier: MIT
// Package: cmatrix
//
// Purpose:
//  - Single source of truth for nil/shape/Hermitian checks.
//  - Return plain sentinels wrapped with the validator tag so call sites can
//    wrap again uniformly.

package cmatrix

import (
	"fmt"
	"math/cmplx"
)

func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
func ValidateSameShape(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateSameShape", ErrNilMatrix)
	}
	if a.r != b.r || a.c != b.c {
		return validatorErrorf(fmt.Sprintf("ValidateSameShape: %dx%d vs %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square.
func ValidateSquare(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateSquare", ErrNilMatrix)
	}
	if m.r != m.c {
		return validatorErrorf(fmt.Sprintf("ValidateSquare: %dx%d", m.r, m.c), ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible checks a.Cols == b.Rows.
func ValidateMulCompatible(a, b *Dense) error {
	if a == nil || b == nil {
		return validatorErrorf("ValidateMulCompatible", ErrNilMatrix)
	}
	if a.c != b.r {
		return validatorErrorf(fmt.Sprintf("ValidateMulCompatible: %dx%d · %dx%d", a.r, a.c, b.r, b.c), ErrDimensionMismatch)
	}

	return nil
}

// ValidateHermitian checks |M[i,j] − conj(M[j,i])| ≤ eps for all i ≤ j.
// Errors: ErrNilMatrix, ErrNonSquare, ErrNotHermitian.
func ValidateHermitian(m *Dense, eps float64) error {
	dev, err := HermitianDeviation(m)
	if err != nil {
		return err
	}
	if dev > eps {
		return validatorErrorf(fmt.Sprintf("ValidateHermitian: deviation %.3g > %.3g", dev, eps), ErrNotHermitian)
	}

	return nil
}

// HermitianDeviation returns max |M[i,j] − conj(M[j,i])| over the upper
// triangle including the diagonal (which measures stray imaginary parts).
func HermitianDeviation(m *Dense) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, err
	}
	n := m.r
	var dev, d float64
	var i, j int
	for i = 0; i < n; i++ {
		for j = i; j < n; j++ {
			d = cmplx.Abs(m.data[i*n+j] - cmplx.Conj(m.data[j*n+i]))
			if d > dev {
				dev = d
			}
		}
	}

	return dev, nil
}

// MaxAbsDiff returns max |A[i,j] − B[i,j]|.
func MaxAbsDiff(a, b *Dense) (float64, error) {
	if err := ValidateSameShape(a, b); err != nil {
		return 0, err
	}
	var maxD, d float64
	for idx := range a.data {
		d = cmplx.Abs(a.data[idx] - b.data[idx])
		if d > maxD {
			maxD = d
		}
	}

	return maxD, nil
}

// AllClose reports whether a and b have the same shape and agree entry-wise within eps.
func AllClose(a, b *Dense, eps float64) bool {
	d, err := MaxAbsDiff(a, b)

	return err == nil && d <= eps
}
