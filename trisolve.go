package splu

// spsolve solves G*x = B[:,col] for the single sparse right-hand side
// given by column col of B, restricted to the reachable support
// xi[top:n] computed by reach. Walking the stack in increasing order
// visits columns in elimination order; columns that are not yet
// pivoted are the unknowns still being produced and are passed over.
// Entries of x outside the support are left untouched.
func (nu *Numeric[T]) spsolve(G, B *Matrix[T], col int, xi []int, top int, x []T) {
	n := G.Ncols
	for p := top; p < n; p++ {
		x[xi[p]] = 0
	}
	for p := B.Ap[col]; p < B.Ap[col+1]; p++ {
		x[B.Ai[p]] = B.Ax[p]
	}
	for px := top; px < n; px++ {
		j := xi[px]
		jnew := nu.Pinv[j]
		if jnew < 0 {
			continue
		}
		x[j] /= G.Ax[G.Ap[jnew]]
		for p := G.Ap[jnew] + 1; p < G.Ap[jnew+1]; p++ {
			x[G.Ai[p]] -= G.Ax[p] * x[j]
		}
	}
}
