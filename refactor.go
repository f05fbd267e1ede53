package splu

import (
	"fmt"
)

// Refactor repeats the factorization against a new matrix with the
// same nonzero pattern as the one Factor saw, replaying the recorded
// reach stacks and pivot sequence and skipping the pivot search
// entirely. Rows are classified by their known pivot rank alone:
// rank below k is a finished U entry, above k a new L entry.
//
// The pattern of A must be a subset of the factored pattern. That
// contract is deliberately not checked here: validating it would cost
// the reachability pass this method exists to skip, so a violation
// produces silently wrong numbers, not an error. Callers track
// pattern changes and fall back to Factor when the pattern grows.
func (nu *Numeric[T]) Refactor(A *Matrix[T]) error {
	if !nu.Factored {
		return fmt.Errorf("refactor: %w", ErrNotFactored)
	}
	n := A.Ncols
	if n != nu.Size || A.Nrows != nu.Size {
		return fmt.Errorf("%w: matrix is %d x %d, numeric is sized for %d",
			ErrSize, A.Nrows, A.Ncols, nu.Size)
	}

	L, U := nu.L, nu.U
	x := nu.w
	pinv := nu.Pinv
	lnz, unz := 0, 0

	for i := 0; i < n; i++ {
		x[i] = 0
	}
	for k := 0; k <= n; k++ {
		L.Ap[k] = 0
	}

	for k := 0; k < n; k++ {
		L.Ap[k] = lnz
		U.Ap[k] = unz
		col := k
		if nu.Q != nil {
			col = nu.Q[k]
		}

		xi := nu.Xi[k]
		top := nu.Topvec[k]
		nu.spsolve(L, A, col, xi, top, x)

		ipiv := nu.P[k]
		pivot := x[ipiv]
		L.Ai[lnz] = ipiv
		L.Ax[lnz] = 1
		lnz++
		for p := top; p < n; p++ {
			i := xi[p]
			if pinv[i] < k {
				U.Ai[unz] = pinv[i]
				U.Ax[unz] = x[i]
				unz++
			}
			if pinv[i] > k {
				L.Ai[lnz] = i
				L.Ax[lnz] = x[i] / pivot
				lnz++
			}
			x[i] = 0
		}
		U.Ai[unz] = k
		U.Ax[unz] = pivot
		unz++
	}

	L.Ap[n] = lnz
	U.Ap[n] = unz
	for p := 0; p < lnz; p++ {
		L.Ai[p] = pinv[L.Ai[p]]
	}
	return nil
}
