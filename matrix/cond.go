// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// Cond returns an estimate of the 1-norm condition number κ₁(A) = ‖A‖₁·‖A⁻¹‖₁.
//
// The estimate comes from gonum's LAPACK-backed LU (dgetrf + dgecon), which
// does not form A⁻¹. Exactly singular inputs yield +Inf.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare.
//
// Complexity: O(n³).
func Cond(m Matrix) (float64, error) {
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opCond, err)
	}
	d, err := toDense(m)
	if err != nil {
		return 0, matrixErrorf(opCond, err)
	}

	// mat.NewDense wraps d.data without copying; Factorize copies before
	// decomposing, so the receiver's storage is left untouched.
	var lu mat.LU
	lu.Factorize(mat.NewDense(d.r, d.c, d.data))

	return lu.Cond(), nil
}
