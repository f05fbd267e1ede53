package splu_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"splu"
)

func requireValidGrouping(t *testing.T, A *splu.Matrix[float64], groups []int, ngroups int) {
	t.Helper()
	require.Len(t, groups, A.Ncols)
	seen := make([]bool, ngroups)
	for _, g := range groups {
		require.GreaterOrEqual(t, g, 0)
		require.Less(t, g, ngroups)
		seen[g] = true
	}
	for g := 0; g < ngroups; g++ {
		require.True(t, seen[g], "group %d is empty", g)
		filled := make([]bool, A.Nrows)
		for j := 0; j < A.Ncols; j++ {
			if groups[j] != g {
				continue
			}
			for p := A.Ap[j]; p < A.Ap[j+1]; p++ {
				require.False(t, filled[A.Ai[p]],
					"row %d shared inside group %d", A.Ai[p], g)
				filled[A.Ai[p]] = true
			}
		}
	}
}

// TestGroupingDiagonal: disjoint columns all fit in a single group.
func TestGroupingDiagonal(t *testing.T) {
	n := 12
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		rows[i][i] = 1
	}
	A := fromDense(t, rows)
	groups, ngroups := A.ColumnGroups()
	require.Equal(t, 1, ngroups)
	requireValidGrouping(t, A, groups, ngroups)
}

// TestGroupingDense: every pair of columns collides, one group each.
func TestGroupingDense(t *testing.T) {
	n := 9
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1
		}
	}
	A := fromDense(t, rows)
	groups, ngroups := A.ColumnGroups()
	require.Equal(t, n, ngroups)
	requireValidGrouping(t, A, groups, ngroups)
}

// TestGroupingTridiagonal: a band of width three needs three
// perturbation groups however large the system is.
func TestGroupingTridiagonal(t *testing.T) {
	for _, n := range []int{3, 10, 101} {
		rows := make([][]float64, n)
		for i := range rows {
			rows[i] = make([]float64, n)
			rows[i][i] = 2
			if i > 0 {
				rows[i][i-1] = -1
			}
			if i < n-1 {
				rows[i][i+1] = -1
			}
		}
		A := fromDense(t, rows)
		groups, ngroups := A.ColumnGroups()
		require.Equal(t, 3, ngroups, "n=%d", n)
		requireValidGrouping(t, A, groups, ngroups)
	}
}

// TestGroupingRandomPatterns checks the grouping invariants on
// irregular patterns.
func TestGroupingRandomPatterns(t *testing.T) {
	rng := rand.New(rand.NewSource(8))
	for _, n := range []int{5, 20, 64} {
		for _, density := range []float64{0.05, 0.2, 0.5} {
			_, A := randomSystem(t, n, density, rng)
			groups, ngroups := A.ColumnGroups()
			requireValidGrouping(t, A, groups, ngroups)
		}
	}
}
