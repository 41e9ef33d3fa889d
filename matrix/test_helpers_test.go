package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerolattice/matrix"
)

// tol is the element-wise tolerance for floating comparisons in this package's tests.
const tol = 1e-10

// mustDense builds a Dense from a literal row-major table; fails the test on error.
func mustDense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	m, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i := range rows {
		for j := range rows[i] {
			require.NoError(t, m.Set(i, j, rows[i][j]))
		}
	}

	return m
}

// mul returns a·b for square Dense operands (test-only reference product).
func mul(t *testing.T, a, b matrix.Matrix) *matrix.Dense {
	t.Helper()
	n := a.Rows()
	out, err := matrix.NewDense(n, b.Cols())
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < b.Cols(); j++ {
			var acc float64
			for k := 0; k < a.Cols(); k++ {
				x, _ := a.At(i, k)
				y, _ := b.At(k, j)
				acc += x * y
			}
			require.NoError(t, out.Set(i, j, acc))
		}
	}

	return out
}

// requireIdentity asserts m ≈ I within tol.
func requireIdentity(t *testing.T, m matrix.Matrix) {
	t.Helper()
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1
			}
			require.InDelta(t, want, v, tol, "(%d,%d)", i, j)
		}
	}
}

// hilbert returns the n×n Hilbert matrix, a classic ill-conditioned input.
func hilbert(t *testing.T, n int) *matrix.Dense {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1 / float64(i+j+1)
		}
	}

	return mustDense(t, rows)
}
