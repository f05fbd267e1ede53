package main

import (
	"fmt"

	"splu"
)

// Column grouping of a banded Jacobian pattern: a tridiagonal system
// needs only three finite-difference perturbations regardless of n.
func main() {
	n := 10
	nnz := 3*n - 2
	A, err := splu.NewMatrix[float64](n, n, nnz)
	if err != nil {
		panic(err)
	}
	p := 0
	for j := 0; j < n; j++ {
		A.Ap[j] = p
		for i := max(0, j-1); i <= min(n-1, j+1); i++ {
			A.Ai[p] = i
			A.Ax[p] = 1
			p++
		}
	}
	A.Ap[n] = p

	groups, ngroups := A.ColumnGroups()
	fmt.Printf("%d columns, %d groups\n", n, ngroups)
	for g := 0; g < ngroups; g++ {
		fmt.Printf("group %d:", g)
		for j, gj := range groups {
			if gj == g {
				fmt.Printf(" %d", j)
			}
		}
		fmt.Println()
	}
}
