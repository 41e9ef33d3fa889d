// SPDX-License-Identifier: MIT
// Package matrix provides the linear-system kernels of the solver: LU
// factorization with partial pivoting, inversion, single right-hand-side
// solves and matrix-vector products. All functions perform strict fail-fast
// validation and return clear errors on dimension mismatches and singularity.
//
// Notes:
//   - All kernels use the central validators and wrap sentinels via matrixErrorf.
//   - Loop orders are fixed, so identical inputs give bit-identical outputs.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aerolattice/vector"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opLU      = "LU"
	opInverse = "Inverse"
	opSolve   = "Solve"
	opMatVec  = "MatVec"
	opCond    = "Cond"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// LUFactors holds a packed Doolittle factorization P·A = L·U.
//   - lu stores the strictly lower part of L (unit diagonal implied) and U.
//   - piv[i] is the row of A that ended up in row i of P·A.
//   - sign is the permutation parity (+1/-1), used by Det.
type LUFactors struct {
	n    int
	lu   []float64
	piv  []int
	sign float64
}

// LU computes P·A = L·U with partial (row) pivoting.
// Implementation:
//   - Stage 1: Validate m (not nil, square); copy into a packed work buffer.
//   - Stage 2: For k=0..n-1 pick the largest |a_ik| (i>=k) as pivot, swap rows,
//     and eliminate below the pivot, storing multipliers in place.
//
// Behavior highlights:
//   - A pivot with |p| <= tol·max|a_ij| is reported as ErrSingular; duplicated
//     rows or columns therefore fail here instead of producing Inf later.
//   - Ties in pivot magnitude keep the upper row (deterministic).
//
// Inputs:
//   - m: square Matrix (n×n). opts: WithPivotTolerance.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n³), Space O(n²).
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	src, err := toDense(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	n := src.r
	a := make([]float64, len(src.data))
	copy(a, src.data)

	f := &LUFactors{n: n, lu: a, piv: make([]int, n), sign: 1}
	for i := range f.piv {
		f.piv[i] = i
	}

	scale := src.maxAbs()
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return nil, matrixErrorf(opLU, fmt.Errorf("max|a|=%g: %w", scale, ErrSingular))
	}
	thresh := o.pivotTol * scale

	var (
		i, j, k, p int
		best, v    float64
		pivot, mul float64
		rowK, rowI int
	)
	for k = 0; k < n; k++ {
		// Pivot search in column k.
		p, best = k, math.Abs(a[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(a[i*n+k]); v > best {
				p, best = i, v
			}
		}
		if best <= thresh {
			return nil, matrixErrorf(opLU, fmt.Errorf("pivot %g at column %d: %w", best, k, ErrSingular))
		}
		if p != k {
			for j = 0; j < n; j++ {
				a[k*n+j], a[p*n+j] = a[p*n+j], a[k*n+j]
			}
			f.piv[k], f.piv[p] = f.piv[p], f.piv[k]
			f.sign = -f.sign
		}

		// Eliminate below the pivot.
		rowK = k * n
		pivot = a[rowK+k]
		for i = k + 1; i < n; i++ {
			rowI = i * n
			mul = a[rowI+k] / pivot
			a[rowI+k] = mul
			if mul == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				a[rowI+j] -= mul * a[rowK+j]
			}
		}
	}

	return f, nil
}

// Size returns n for an n×n factorization.
func (f *LUFactors) Size() int { return f.n }

// Pivots returns a copy of the row permutation (row i of P·A is row Pivots()[i] of A).
func (f *LUFactors) Pivots() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// L returns the unit lower-triangular factor as a fresh Dense.
func (f *LUFactors) L() *Dense {
	out, _ := NewDense(f.n, f.n) // n > 0 guaranteed by LU
	for i := 0; i < f.n; i++ {
		for j := 0; j < i; j++ {
			out.data[i*f.n+j] = f.lu[i*f.n+j]
		}
		out.data[i*f.n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a fresh Dense.
func (f *LUFactors) U() *Dense {
	out, _ := NewDense(f.n, f.n)
	for i := 0; i < f.n; i++ {
		for j := i; j < f.n; j++ {
			out.data[i*f.n+j] = f.lu[i*f.n+j]
		}
	}

	return out
}

// Det returns det(A) = sign · Π u_ii.
func (f *LUFactors) Det() float64 {
	d := f.sign
	for i := 0; i < f.n; i++ {
		d *= f.lu[i*f.n+i]
	}

	return d
}

// SolveVec solves A·x = b using the stored factors.
//
// Errors:
//   - ErrDimensionMismatch when len(b) != n.
//
// Complexity: O(n²).
func (f *LUFactors) SolveVec(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x := make([]float64, f.n)
	f.solveInto(x, func(i int) float64 { return b[i] })

	return x, nil
}

// solveInto writes the solution of A·x = rhs into x.
// rhs is addressed through a callback so Inverse can feed identity columns
// without allocating them.
func (f *LUFactors) solveInto(x []float64, rhs func(i int) float64) {
	n := f.n
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L·y = P·b (y stored in x).
	for i = 0; i < n; i++ {
		sum = rhs(f.piv[i])
		for k = 0; k < i; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U·x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= f.lu[i*n+k] * x[k]
		}
		x[i] = sum / f.lu[i*n+i]
	}
}

// Inverse computes A⁻¹ via LU with partial pivoting.
// The input must be non-nil and square. Produces a new Dense; does not mutate the input.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); factorize via LU(m).
//   - Stage 2: reject the system when Cond(m) exceeds the configured limit.
//   - Stage 3: for each canonical basis column e_col, solve A·x = e_col and
//     write x into column col of the result.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (validation).
//   - ErrSingular (vanishing pivot) or ErrIllConditioned (condition limit).
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - If only A⁻¹·b is needed, Solve is cheaper than forming A⁻¹.
func Inverse(m Matrix, opts ...Option) (*Dense, error) {
	f, err := factorChecked(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	n := f.n
	inv, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	x := make([]float64, n)
	var col, i int
	for col = 0; col < n; col++ {
		c := col
		f.solveInto(x, func(i int) float64 {
			if i == c {
				return 1
			}

			return 0
		})
		for i = 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Solve returns x with A·x = b, without forming A⁻¹.
// Same validation and singularity policy as Inverse.
func Solve(m Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := factorChecked(m, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.SolveVec(b)
}

// factorChecked runs LU and the condition guard shared by Inverse and Solve.
func factorChecked(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	f, err := LU(m, opts...)
	if err != nil {
		return nil, err
	}
	if !math.IsInf(o.conditionLimit, 1) {
		c, err := Cond(m)
		if err != nil {
			return nil, err
		}
		if math.IsNaN(c) || c > o.conditionLimit {
			return nil, fmt.Errorf("cond=%g limit=%g: %w", c, o.conditionLimit, ErrIllConditioned)
		}
	}

	return f, nil
}

// MatVec computes y = m * x for a column vector x.
//
// Contract: m non-nil; len(x) == m.Cols().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Determinism: fixed i→j loop order.
// Complexity: Time O(r*c), Space O(r) for y.
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if err := ValidateVecLen(x, m.Cols()); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	y := make([]float64, rows)

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc float64
		for i = 0; i < d.r; i++ {
			acc = ZeroSum
			base = i * d.c
			for j = 0; j < d.c; j++ {
				acc += d.data[base+j] * x[j]
			}
			y[i] = acc
		}

		return y, nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var mv float64
	var err error
	for i = 0; i < rows; i++ {
		y[i] = ZeroSum
		for j = 0; j < cols; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			y[i] += mv * x[j]
		}
	}

	return y, nil
}

// MulVec is MatVec over vector.Vector: it returns m·v as a new Vector of
// length m.Rows().
func MulVec(m Matrix, v vector.Vector) (vector.Vector, error) {
	y, err := MatVec(m, v.Values())
	if err != nil {
		return vector.Vector{}, err
	}

	return vector.NewVector(y...), nil
}
