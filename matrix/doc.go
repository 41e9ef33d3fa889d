// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-system engine of the lattice solver.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - LU factorization with partial (row) pivoting, Inverse and Solve built on
//     top of it, and MatVec/MulVec products.
//   - Cond, a 1-norm condition estimate (gonum LAPACK) used to reject systems
//     that are numerically singular even when no pivot is exactly zero.
//
// Singular and near-singular systems are reported with ErrSingular (and
// ErrIllConditioned, which wraps it); no kernel returns NaN/Inf-laden results.
//
// Complexity quicksheet:
//   - NewDense, NewFromRows: O(r*c); At/Set: O(1).
//   - LU, Inverse: O(n³); Solve: O(n³) factor + O(n²) substitution; MatVec: O(r*c).
//   - Cond: O(n³) (one extra factorization inside gonum).
package matrix
