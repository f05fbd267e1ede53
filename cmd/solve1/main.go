package main

import (
	"fmt"

	"splu"
)

// fromDense packs the nonzeros of a dense row-major matrix into
// compressed-column form.
func fromDense(rows [][]float64) *splu.Matrix[float64] {
	n := len(rows)
	nnz := 0
	for _, row := range rows {
		for _, v := range row {
			if v != 0 {
				nnz++
			}
		}
	}
	A, err := splu.NewMatrix[float64](n, n, nnz)
	if err != nil {
		panic(err)
	}
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

func main() {
	A := fromDense([][]float64{
		{2, 0, 0, 0},
		{1, 3, 0, 0},
		{0, 0, 4, 1},
		{0, 1, 0, 5},
	})
	fmt.Print(A)

	N, err := splu.NewNumeric[float64](4)
	if err != nil {
		panic(err)
	}
	if err := N.Order(A); err != nil {
		panic(err)
	}
	fmt.Printf("column preorder: %v\n", N.Q)

	if err := N.Factor(A, 0.1); err != nil {
		panic(err)
	}
	fmt.Printf("L has %d entries, U has %d entries\n", N.L.NNZ(), N.U.NNZ())

	b := []float64{2, 4, 10, 11}
	x, err := N.Solve(b)
	if err != nil {
		panic(err)
	}
	for i, v := range x {
		fmt.Printf("x[%d] = %.4f\n", i, v)
	}

	// A Newton iteration would now update the values of A in place
	// and refactor without repeating the symbolic analysis.
	for p := range A.Ax {
		A.Ax[p] *= 2
	}
	if err := N.Refactor(A); err != nil {
		panic(err)
	}
	x, err = N.Solve(b)
	if err != nil {
		panic(err)
	}
	for i, v := range x {
		fmt.Printf("refactored x[%d] = %.4f\n", i, v)
	}
}
