package splu

import (
	"fmt"
)

// Solve solves A*x = b using the stored factors. b is permuted into
// pivot order, pushed through the forward and backward substitutions
// and, when a column preorder was used, unscrambled once more from
// factorization order back to the original column order.
func (nu *Numeric[T]) Solve(b []T) ([]T, error) {
	if !nu.Factored {
		return nil, fmt.Errorf("solve: %w", ErrNotFactored)
	}
	n := nu.Size
	if len(b) < n {
		return nil, fmt.Errorf("%w: rhs has %d entries, matrix size is %d",
			ErrSize, len(b), n)
	}

	x := make([]T, n)
	for j := 0; j < n; j++ {
		x[nu.Pinv[j]] = b[j]
	}

	// Forward substitution, Lc = Pb. The unit diagonal is stored
	// first in each column; divide by it to match the factor layout.
	Ap, Ai, Ax := nu.L.Ap, nu.L.Ai, nu.L.Ax
	for j := 0; j < n; j++ {
		x[j] /= Ax[Ap[j]]
		for p := Ap[j] + 1; p < Ap[j+1]; p++ {
			x[Ai[p]] -= Ax[p] * x[j]
		}
	}

	// Backward substitution, Ux = c. The diagonal is the last entry
	// of each column.
	Ap, Ai, Ax = nu.U.Ap, nu.U.Ai, nu.U.Ax
	for j := n - 1; j >= 0; j-- {
		x[j] /= Ax[Ap[j+1]-1]
		for p := Ap[j]; p < Ap[j+1]-1; p++ {
			x[Ai[p]] -= Ax[p] * x[j]
		}
	}

	if nu.Q != nil {
		// Unscramble from factorization order to column order.
		w := nu.w
		copy(w[:n], x)
		for j := 0; j < n; j++ {
			x[nu.Q[j]] = w[j]
		}
	}
	return x, nil
}
