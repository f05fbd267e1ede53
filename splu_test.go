package splu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"splu"
)

// fromDense packs every nonzero of a dense row-major matrix into
// compressed-column form with sorted row indices.
func fromDense[T splu.Value](t *testing.T, rows [][]T) *splu.Matrix[T] {
	t.Helper()
	n := len(rows)
	nnz := 0
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				nnz++
			}
		}
	}
	A, err := splu.NewMatrix[T](n, n, max(nnz, 1))
	require.NoError(t, err)
	p := 0
	for j := 0; j < n; j++ {
		A.Ap[j] = p
		for i := 0; i < n; i++ {
			if rows[i][j] != 0 {
				A.Ai[p] = i
				A.Ax[p] = rows[i][j]
				p++
			}
		}
	}
	A.Ap[n] = p
	return A
}

// mulVec computes A*x for the compressed-column matrix A.
func mulVec[T splu.Value](A *splu.Matrix[T], x []T) []T {
	y := make([]T, A.Nrows)
	for j := 0; j < A.Ncols; j++ {
		for p := A.Ap[j]; p < A.Ap[j+1]; p++ {
			y[A.Ai[p]] += A.Ax[p] * x[j]
		}
	}
	return y
}

// randomSystem builds a diagonally dominated random sparse matrix so
// that factorization cannot break down, returned both dense (row
// major, for the reference solver) and packed.
func randomSystem(t *testing.T, n int, density float64, rng *rand.Rand) ([][]float64, *splu.Matrix[float64]) {
	t.Helper()
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if rng.Float64() < density {
				rows[i][j] = rng.NormFloat64()
			}
		}
		rows[i][i] = 5 + rng.Float64()
	}
	return rows, fromDense(t, rows)
}

func TestNewMatrixRejectsBadSizes(t *testing.T) {
	_, err := splu.NewMatrix[float64](0, 3, 10)
	require.ErrorIs(t, err, splu.ErrInvalidSize)
	_, err = splu.NewMatrix[float64](3, -1, 10)
	require.ErrorIs(t, err, splu.ErrInvalidSize)
	_, err = splu.NewNumeric[complex128](0)
	require.ErrorIs(t, err, splu.ErrInvalidSize)
}

func TestSolveRequiresFactor(t *testing.T) {
	N, err := splu.NewNumeric[float64](3)
	require.NoError(t, err)
	_, err = N.Solve([]float64{1, 2, 3})
	require.ErrorIs(t, err, splu.ErrNotFactored)
	require.ErrorIs(t, N.Refactor(&splu.Matrix[float64]{Ncols: 3, Nrows: 3, Ap: make([]int, 4)}), splu.ErrNotFactored)
}

func TestFactorRejectsSizeMismatch(t *testing.T) {
	N, err := splu.NewNumeric[float64](4)
	require.NoError(t, err)
	A := fromDense(t, [][]float64{{1, 0}, {0, 1}})
	require.ErrorIs(t, N.Factor(A, 1.0), splu.ErrSize)
}
