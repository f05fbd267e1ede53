package splu

import (
	"fmt"
)

// PatternUnion returns the pattern of A + At with the diagonal
// removed, which is the symmetrized input AMDOrder expects. Cp has
// n+1 column pointers; Ci is over-allocated to nz + nz/5 + 2n entries
// so the ordering can mutate the quotient graph in place without
// immediate garbage collection.
func PatternUnion(Ap, Ai []int, n int) (Cp, Ci []int, err error) {
	if n <= 0 || len(Ap) < n+1 {
		return nil, nil, fmt.Errorf("%w: n = %d, %d column pointers", ErrInvalidSize, n, len(Ap))
	}
	anz := Ap[n]

	// Transpose by counting sort: count the entries of each row,
	// turn the counts into column pointers of T, then place each
	// entry of A in its transposed column.
	w := make([]int, n+1)
	Tp := make([]int, n+1)
	Ti := make([]int, anz)
	for p := 0; p < anz; p++ {
		w[Ai[p]]++
	}
	nz := 0
	for j := 0; j < n; j++ {
		Tp[j] = nz
		nz += w[j]
		w[j] = Tp[j]
	}
	Tp[n] = nz
	for j := 0; j < n; j++ {
		for p := Ap[j]; p < Ap[j+1]; p++ {
			Ti[w[Ai[p]]] = j
			w[Ai[p]]++
		}
	}

	// Merge the two sorted column patterns, dropping duplicates and
	// the diagonal. w is reused as the output column pointers.
	union := make([]int, 2*anz)
	nz = 0
	w[0] = 0
	for j := 0; j < n; j++ {
		pa, aend := Ap[j], Ap[j+1]
		pt, tend := Tp[j], Tp[j+1]
		for pa < aend || pt < tend {
			var i int
			switch {
			case pt >= tend || (pa < aend && Ai[pa] < Ti[pt]):
				i = Ai[pa]
				pa++
			case pa >= aend || Ti[pt] < Ai[pa]:
				i = Ti[pt]
				pt++
			default:
				i = Ai[pa]
				pa++
				pt++
			}
			if i == j {
				continue
			}
			union[nz] = i
			nz++
		}
		w[j+1] = nz
	}

	Ci = make([]int, nz+nz/5+2*n)
	copy(Ci, union[:nz])
	return w, Ci, nil
}
