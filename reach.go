package splu

// reach computes the columns of G reachable from the nonzero rows of
// column col of B, following only columns that have already been
// pivoted (Pinv >= 0). The result is written topologically ordered
// into xi[top:n] and top is returned; xi below top is scratch. This
// is a purely symbolic operation, values are never touched. Visited
// flags are cleared again before returning.
func (nu *Numeric[T]) reach(G, B *Matrix[T], col int, xi []int) int {
	n := G.Ncols
	top := n
	for p := B.Ap[col]; p < B.Ap[col+1]; p++ {
		if !nu.marked[B.Ai[p]] {
			top = nu.dfs(G, B.Ai[p], top, xi)
		}
	}
	for p := top; p < n; p++ {
		nu.marked[xi[p]] = false
	}
	return top
}

// dfs runs the depth first search from node j with an explicit stack,
// so the traversal never grows the call stack with n. The pending
// path lives in xi[0:head+1] with its neighbour positions in pstack;
// finished nodes are written from xi[top-1] downward. The two regions
// cannot meet: a node is on at most one of the path or the output.
func (nu *Numeric[T]) dfs(G *Matrix[T], j, top int, xi []int) int {
	head := 0
	xi[0] = j
	for head >= 0 {
		j = xi[head]
		jnew := nu.Pinv[j]
		if !nu.marked[j] {
			nu.marked[j] = true
			if jnew < 0 {
				nu.pstack[head] = 0
			} else {
				nu.pstack[head] = G.Ap[jnew]
			}
		}
		done := true
		if jnew >= 0 {
			// Resume scanning the pivoted column's neighbours.
			for p := nu.pstack[head]; p < G.Ap[jnew+1]; p++ {
				i := G.Ai[p]
				if nu.marked[i] {
					continue
				}
				nu.pstack[head] = p + 1
				head++
				xi[head] = i
				done = false
				break
			}
		}
		if done {
			head--
			top--
			xi[top] = j
		}
	}
	return top
}
