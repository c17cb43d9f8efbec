// Package cmatrix provides dense complex linear algebra for small matrices.
//
// The package provides:
//
//   - Dense, a row-major matrix of complex128 values with bounds-checked accessors.
//   - Kernels used by representation theory: Kron, Trace, ConjTranspose, Mul, Scale.
//   - Two Hermitian eigen solvers: a deterministic complex Jacobi (EigenHermitian)
//     and a LAPACK-backed solver over the real embedding (EigenHermitianRealified).
//   - Vector helpers: Inner, VecNorm, Normalize, FixPhase and CanonicalBasis.
//
// Matrices here are small (a tensor product of two irreps is at most 9×9 for the
// point groups in scope), so every kernel favours fixed loop orders and
// reproducibility over blocking or vectorisation.
//
// Errors are plain sentinels (see errors.go) wrapped with an operation tag;
// match them with errors.Is.
package cmatrix
