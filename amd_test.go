package splu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"splu"
)

func requireBijection(t *testing.T, perm []int, n int) {
	t.Helper()
	seen := make([]bool, n)
	for _, v := range perm[:n] {
		require.GreaterOrEqual(t, v, 0)
		require.Less(t, v, n)
		require.False(t, seen[v], "duplicate %d in permutation", v)
		seen[v] = true
	}
}

// TestAMDPermutationIsBijection orders random patterns of many sizes
// and checks the result is always a permutation of [0, n).
func TestAMDPermutationIsBijection(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for _, n := range []int{1, 2, 3, 4, 7, 16, 37, 80, 150} {
		for _, density := range []float64{0.05, 0.3, 0.9} {
			_, A := randomSystem(t, n, density, rng)
			Cp, Ci, err := splu.PatternUnion(A.Ap, A.Ai, n)
			require.NoError(t, err)
			perm := make([]int, n+1)
			work := make([]int, 8*(n+1))
			require.NoError(t, splu.AMDOrder(Cp, Ci, n, len(Ci), perm, work))
			requireBijection(t, perm, n)
		}
	}
}

// TestAMDDeniesUndersizedWorkspace checks the scratch validation.
func TestAMDDeniesUndersizedWorkspace(t *testing.T) {
	_, A := randomSystem(t, 10, 0.3, rand.New(rand.NewSource(6)))
	Cp, Ci, err := splu.PatternUnion(A.Ap, A.Ai, 10)
	require.NoError(t, err)
	err = splu.AMDOrder(Cp, Ci, 10, len(Ci), make([]int, 11), make([]int, 8))
	require.ErrorIs(t, err, splu.ErrWorkspace)
	err = splu.AMDOrder(Cp, Ci, 10, len(Ci)+1, make([]int, 11), make([]int, 88))
	require.ErrorIs(t, err, splu.ErrWorkspace)
}

// TestAMDReducesArrowheadFill factors an arrowhead matrix, where the
// natural order fills L completely but eliminating the hub last
// keeps L as sparse as the input.
func TestAMDReducesArrowheadFill(t *testing.T) {
	n := 20
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 4
		rows[i][0] = 1
		rows[0][i] = 1
	}
	rows[0][0] = 8
	A := fromDense(t, rows)

	natural, err := splu.NewNumeric[float64](n)
	require.NoError(t, err)
	require.NoError(t, natural.Factor(A, 0.01))

	ordered, err := splu.NewNumeric[float64](n)
	require.NoError(t, err)
	require.NoError(t, ordered.Order(A))
	requireBijection(t, ordered.Q, n)
	require.NoError(t, ordered.Factor(A, 0.01))

	require.Less(t, ordered.L.NNZ(), natural.L.NNZ())
	// The hub is eliminated last, so L keeps one off-diagonal per column.
	require.Equal(t, 2*n-1, ordered.L.NNZ())
}

// TestOrderedFactorSolves confirms the whole ordering pipeline still
// produces correct solutions.
func TestOrderedFactorSolves(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for _, n := range []int{3, 12, 60} {
		_, A := randomSystem(t, n, 0.15, rng)
		N, err := splu.NewNumeric[float64](n)
		require.NoError(t, err)
		require.NoError(t, N.Order(A))
		require.NoError(t, N.Factor(A, 0.1))

		b := make([]float64, n)
		for i := range b {
			b[i] = rng.NormFloat64()
		}
		x, err := N.Solve(b)
		require.NoError(t, err)
		r := mulVec(A, x)
		for i := 0; i < n; i++ {
			require.InDelta(t, b[i], r[i], 1e-9)
		}
	}
}
