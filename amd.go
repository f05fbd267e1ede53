package splu

import (
	"fmt"
	"math"
)

// flip maps an index into the negative range and back; flip(flip(i))
// is i, and flip(-1) is -1. The quotient graph stores parent links
// and absorbed elements this way inside the mutated pattern arrays.
func flip(i int) int {
	return -i - 2
}

// AMDOrder computes an approximate minimum degree permutation of the
// symmetrized pattern (Cp, Ci), normally produced by PatternUnion:
// symmetric, no diagonal, Ci over-allocated to nzmax entries so the
// quotient graph can grow in place. Cp and Ci are consumed by the
// elimination and hold no meaningful pattern afterwards.
//
// perm must have n+1 entries; perm[0:n] receives the ordering. work
// is the 8(n+1) scratch from the Numeric object. Rows denser than
// min(n-2, max(16, 10*sqrt(n))) are deferred to the end of the
// elimination to bound worst-case fill.
func AMDOrder(Cp, Ci []int, n, nzmax int, perm, work []int) error {
	if n <= 0 || len(Cp) < n+1 {
		return fmt.Errorf("%w: n = %d, %d column pointers", ErrInvalidSize, n, len(Cp))
	}
	if len(perm) < n+1 || len(work) < 8*(n+1) {
		return fmt.Errorf("%w: need %d permutation and %d work entries, have %d and %d",
			ErrWorkspace, n+1, 8*(n+1), len(perm), len(work))
	}
	if nzmax > len(Ci) || Cp[n] > nzmax {
		return fmt.Errorf("%w: nzmax %d, %d pattern entries, %d allocated",
			ErrWorkspace, nzmax, Cp[n], len(Ci))
	}

	lenv := work[0 : n+1]
	nv := work[n+1 : 2*(n+1)]
	next := work[2*(n+1) : 3*(n+1)]
	head := work[3*(n+1) : 4*(n+1)]
	elen := work[4*(n+1) : 5*(n+1)]
	degree := work[5*(n+1) : 6*(n+1)]
	w := work[6*(n+1) : 7*(n+1)]
	hhead := work[7*(n+1) : 8*(n+1)]
	last := perm // workspace during elimination, postorder output after

	dense := min(n-2, max(16, int(10*math.Sqrt(float64(n)))))
	cnz := Cp[n]
	nel := 0
	mindeg := 0
	lemax := 0

	// Initialise the quotient graph: every node is a variable of
	// multiplicity one, degree equal to its pattern length.
	for k := 0; k < n; k++ {
		lenv[k] = Cp[k+1] - Cp[k]
	}
	lenv[n] = 0
	for i := 0; i <= n; i++ {
		head[i] = -1
		last[i] = -1
		next[i] = -1
		hhead[i] = -1
		nv[i] = 1
		w[i] = 1
		elen[i] = 0
		degree[i] = lenv[i]
	}
	mark := wclear(0, 0, w, n)
	elen[n] = -2
	Cp[n] = -1
	w[n] = 0

	// Build the degree buckets. Empty nodes are eliminated outright;
	// dense nodes are parked under the placeholder element n.
	for i := 0; i < n; i++ {
		d := degree[i]
		if d == 0 {
			elen[i] = -2
			nel++
			Cp[i] = -1
			w[i] = 0
		} else if d > dense {
			nv[i] = 0
			elen[i] = -1
			nel++
			Cp[i] = flip(n)
			nv[n]++
		} else {
			if head[d] != -1 {
				last[head[d]] = i
			}
			next[i] = head[d]
			head[d] = i
		}
	}

	for nel < n {
		// Select a node of minimum degree.
		k := -1
		for mindeg < n {
			k = head[mindeg]
			if k != -1 {
				break
			}
			mindeg++
		}
		if next[k] != -1 {
			last[next[k]] = -1
		}
		head[mindeg] = next[k]
		elenk := elen[k]
		nvk := nv[k]
		nel += nvk

		// Garbage collection: compact the live adjacency lists when
		// the slack at the end of Ci is exhausted.
		if elenk > 0 && cnz+mindeg >= nzmax {
			for j := 0; j < n; j++ {
				if p := Cp[j]; p >= 0 {
					Cp[j] = Ci[p]
					Ci[p] = flip(j)
				}
			}
			q := 0
			p := 0
			for p < cnz {
				j := flip(Ci[p])
				p++
				if j >= 0 {
					Ci[q] = Cp[j]
					Cp[j] = q
					q++
					for k3 := 0; k3 < lenv[j]-1; k3++ {
						Ci[q] = Ci[p]
						q++
						p++
					}
				}
			}
			cnz = q
		}

		// Construct the new element: merge k's element and variable
		// lists, removing each live variable from its degree bucket.
		dk := 0
		nv[k] = -nvk
		p := Cp[k]
		pk1 := cnz
		if elenk == 0 {
			pk1 = p
		}
		pk2 := pk1
		for k1 := 1; k1 <= elenk+1; k1++ {
			var e, pj, ln int
			if k1 > elenk {
				e = k
				pj = p
				ln = lenv[k] - elenk
			} else {
				e = Ci[p]
				p++
				pj = Cp[e]
				ln = lenv[e]
			}
			for k2 := 1; k2 <= ln; k2++ {
				i := Ci[pj]
				pj++
				nvi := nv[i]
				if nvi <= 0 {
					continue
				}
				dk += nvi
				nv[i] = -nvi
				Ci[pk2] = i
				pk2++
				if next[i] != -1 {
					last[next[i]] = last[i]
				}
				if last[i] != -1 {
					next[last[i]] = next[i]
				} else {
					head[degree[i]] = next[i]
				}
			}
			if e != k {
				Cp[e] = flip(k)
				w[e] = 0
			}
		}
		if elenk != 0 {
			cnz = pk2
		}
		degree[k] = dk
		Cp[k] = pk1
		lenv[k] = pk2 - pk1
		elen[k] = -2

		// Find set differences between the new element and the
		// elements adjacent to its variables.
		mark = wclear(mark, lemax, w, n)
		for pk := pk1; pk < pk2; pk++ {
			i := Ci[pk]
			eln := elen[i]
			if eln <= 0 {
				continue
			}
			nvi := -nv[i]
			wnvi := mark - nvi
			for pp := Cp[i]; pp <= Cp[i]+eln-1; pp++ {
				e := Ci[pp]
				if w[e] >= mark {
					w[e] -= nvi
				} else if w[e] != 0 {
					w[e] = degree[e] + wnvi
				}
			}
		}

		// Approximate external degree update, pruning absorbed
		// elements and hashing each updated variable's list.
		for pk := pk1; pk < pk2; pk++ {
			i := Ci[pk]
			p1 := Cp[i]
			p2 := p1 + elen[i] - 1
			pn := p1
			h := 0
			d := 0
			for pp := p1; pp <= p2; pp++ {
				e := Ci[pp]
				if w[e] != 0 {
					dext := w[e] - mark
					if dext > 0 {
						d += dext
						Ci[pn] = e
						pn++
						h += e
					} else {
						Cp[e] = flip(k)
						w[e] = 0
					}
				}
			}
			elen[i] = pn - p1 + 1
			p3 := pn
			p4 := p1 + lenv[i]
			for pp := p2 + 1; pp < p4; pp++ {
				j := Ci[pp]
				nvj := nv[j]
				if nvj <= 0 {
					continue
				}
				d += nvj
				Ci[pn] = j
				pn++
				h += j
			}
			if d == 0 {
				// Mass elimination: i is indistinguishable from k.
				Cp[i] = flip(k)
				nvi := -nv[i]
				dk -= nvi
				nvk += nvi
				nel += nvi
				nv[i] = 0
				elen[i] = -1
			} else {
				degree[i] = min(degree[i], d)
				Ci[pn] = Ci[p3]
				Ci[p3] = Ci[p1]
				Ci[p1] = k
				lenv[i] = pn - p1 + 1
				h %= n
				next[i] = hhead[h]
				hhead[h] = i
				last[i] = h
			}
		}
		degree[k] = dk
		lemax = max(lemax, dk)
		mark = wclear(mark+lemax, lemax, w, n)

		// Supernode detection: variables hashing to the same bucket
		// with identical lists are merged and eliminated together.
		for pk := pk1; pk < pk2; pk++ {
			i := Ci[pk]
			if nv[i] >= 0 {
				continue
			}
			h := last[i]
			i = hhead[h]
			hhead[h] = -1
			for i != -1 && next[i] != -1 {
				ln := lenv[i]
				eln := elen[i]
				for pp := Cp[i] + 1; pp <= Cp[i]+ln-1; pp++ {
					w[Ci[pp]] = mark
				}
				jlast := i
				j := next[i]
				for j != -1 {
					ok := lenv[j] == ln && elen[j] == eln
					for pp := Cp[j] + 1; ok && pp <= Cp[j]+ln-1; pp++ {
						if w[Ci[pp]] != mark {
							ok = false
						}
					}
					if ok {
						Cp[j] = flip(i)
						nv[i] += nv[j]
						nv[j] = 0
						elen[j] = -1
						j = next[j]
						next[jlast] = j
					} else {
						jlast = j
						j = next[j]
					}
				}
				i = next[i]
				mark++
			}
		}

		// Finalize the new element: restore multiplicities and put
		// the surviving variables back into the degree buckets.
		pdst := pk1
		for pk := pk1; pk < pk2; pk++ {
			i := Ci[pk]
			nvi := -nv[i]
			if nvi <= 0 {
				continue
			}
			nv[i] = nvi
			d := degree[i] + dk - nvi
			d = min(d, n-nel-nvi)
			if head[d] != -1 {
				last[head[d]] = i
			}
			next[i] = head[d]
			last[i] = -1
			head[d] = i
			mindeg = min(mindeg, d)
			degree[i] = d
			Ci[pdst] = i
			pdst++
		}
		nv[k] = nvk
		lenv[k] = pdst - pk1
		if lenv[k] == 0 {
			Cp[k] = -1
			w[k] = 0
		}
		if elenk != 0 {
			cnz = pdst
		}
	}

	// Postorder the assembly tree. Cp now holds flipped parent
	// links; children are chained through head/next buckets.
	for i := 0; i < n; i++ {
		Cp[i] = flip(Cp[i])
	}
	for j := 0; j <= n; j++ {
		head[j] = -1
	}
	for j := n; j >= 0; j-- {
		if nv[j] > 0 {
			continue
		}
		next[j] = head[Cp[j]]
		head[Cp[j]] = j
	}
	for e := n; e >= 0; e-- {
		if nv[e] <= 0 {
			continue
		}
		if Cp[e] != -1 {
			next[e] = head[Cp[e]]
			head[Cp[e]] = e
		}
	}
	k := 0
	for i := 0; i <= n; i++ {
		if Cp[i] == -1 {
			k = tdfs(i, k, head, next, perm, w)
		}
	}
	return nil
}

// wclear resets the work marks when the mark counter is about to
// wrap, keeping w[i] < mark valid for all live nodes.
func wclear(mark, lemax int, w []int, n int) int {
	if mark < 2 || mark+lemax < 0 {
		for k := 0; k < n; k++ {
			if w[k] != 0 {
				w[k] = 1
			}
		}
		mark = 2
	}
	return mark
}

// tdfs appends a postorder traversal of the tree rooted at j to
// post, starting at position k, using an explicit stack.
func tdfs(j, k int, head, next, post, stack []int) int {
	top := 0
	stack[0] = j
	for top >= 0 {
		p := stack[top]
		i := head[p]
		if i == -1 {
			top--
			post[k] = p
			k++
		} else {
			head[p] = next[i]
			top++
			stack[top] = i
		}
	}
	return k
}

// Order computes a fill-reducing column preorder of A and stores it
// on the Numeric, to be consumed by subsequent Factor calls. Callers
// that want the natural order simply skip this step.
func (nu *Numeric[T]) Order(A *Matrix[T]) error {
	n := nu.Size
	if A.Ncols != n || A.Nrows != n {
		return fmt.Errorf("%w: matrix is %d x %d, numeric is sized for %d",
			ErrSize, A.Nrows, A.Ncols, n)
	}
	Cp, Ci, err := PatternUnion(A.Ap, A.Ai, n)
	if err != nil {
		return err
	}
	perm := make([]int, n+1)
	if err := AMDOrder(Cp, Ci, n, len(Ci), perm, nu.wamd); err != nil {
		return err
	}
	nu.Q = perm[:n]
	return nil
}
