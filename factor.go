package splu

import (
	"fmt"
)

// Factor computes the left-looking LU factorization of A under the
// column preorder Q (natural order when Q is nil), with threshold
// partial pivoting: the diagonal entry of the current column is kept
// whenever its magnitude is within pivtol of the column maximum,
// trading strict stability for sparsity. pivtol must lie in [0,1];
// 1 demands the full column maximum, 0 always keeps the diagonal.
//
// The symbolic structure (reach stacks, stack boundaries and the
// pivot sequence) is recorded on the Numeric so Refactor can replay
// it against later matrices with the same pattern. On error the
// object holds partial state and must be factored again before use.
func (nu *Numeric[T]) Factor(A *Matrix[T], pivtol float64) error {
	n := A.Ncols
	if n != nu.Size || A.Nrows != nu.Size {
		return fmt.Errorf("%w: matrix is %d x %d, numeric is sized for %d",
			ErrSize, A.Nrows, A.Ncols, nu.Size)
	}

	L, U := nu.L, nu.U
	x := nu.w
	pinv := nu.Pinv
	lnz, unz := 0, 0
	nu.Factored = false

	for i := 0; i < n; i++ {
		x[i] = 0
	}
	for i := 0; i < n; i++ {
		pinv[i] = -1
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
		top := nu.reach(L, A, col, xi)
		nu.Topvec[k] = top
		nu.spsolve(L, A, col, xi, top, x)

		// Pivot search: rows already pivoted are finished U entries,
		// the largest unpivoted row is the pivot candidate.
		ipiv := -1
		a := -1.0
		for p := top; p < n; p++ {
			i := xi[p]
			if pinv[i] < 0 {
				if t := mag(x[i]); t > a {
					a = t
					ipiv = i
				}
			} else {
				U.Ai[unz] = pinv[i]
				U.Ax[unz] = x[i]
				unz++
			}
		}
		if ipiv == -1 || a <= 0 {
			return fmt.Errorf("%w at step %d", ErrSingular, k)
		}
		if pinv[col] < 0 && mag(x[col]) >= a*pivtol {
			ipiv = col
		}

		pivot := x[ipiv]
		if mag(pivot) <= 0 {
			return fmt.Errorf("%w at step %d", ErrZeroPivot, k)
		}
		U.Ai[unz] = k
		U.Ax[unz] = pivot
		unz++
		pinv[ipiv] = k
		nu.P[k] = ipiv
		L.Ai[lnz] = ipiv
		L.Ax[lnz] = 1
		lnz++
		for p := top; p < n; p++ {
			i := xi[p]
			if pinv[i] < 0 {
				L.Ai[lnz] = i
				L.Ax[lnz] = x[i] / pivot
				lnz++
			}
			x[i] = 0 // sparse clear, only touched entries
		}
	}

	L.Ap[n] = lnz
	U.Ap[n] = unz
	// L was built with raw row numbers; rewrite them in pivot order
	// now that pinv is complete. This cannot be done incrementally
	// because pinv entries of later rows are still -1 above.
	for p := 0; p < lnz; p++ {
		L.Ai[p] = pinv[L.Ai[p]]
	}
	nu.Factored = true
	return nil
}
