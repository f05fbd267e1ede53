package main

import (
	"fmt"

	"splu"
)

// A small impedance-style complex system, factored and solved with
// the same code path as the real demo.
func main() {
	n := 3
	A, err := splu.NewMatrix[complex128](n, n, 6)
	if err != nil {
		panic(err)
	}
	// Columns: {(0) 2+1i, (1) 1}, {(1) 3-2i, (2) 1i}, {(0) -1i, (2) 4}
	A.Ap = []int{0, 2, 4, 6}
	A.Ai = []int{0, 1, 1, 2, 0, 2}
	A.Ax = []complex128{2 + 1i, 1, 3 - 2i, 1i, -1i, 4}

	N, err := splu.NewNumeric[complex128](n)
	if err != nil {
		panic(err)
	}
	if err := N.Factor(A, 0.001); err != nil {
		panic(err)
	}

	b := []complex128{1, 1i, -1}
	x, err := N.Solve(b)
	if err != nil {
		panic(err)
	}
	for i, v := range x {
		fmt.Printf("x[%d] = %v\n", i, v)
	}
}
