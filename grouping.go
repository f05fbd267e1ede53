package splu

// ColumnGroups partitions the columns of the pattern (Ap, Ai) into
// groups whose members share no nonzero row, so all columns of one
// group can be perturbed simultaneously when a Jacobian is built by
// finite differences. Groups are filled greedily, first fit in
// column order, which is not an optimal coloring but a cheap one.
// Returns a group id per column and the number of groups; ids are
// contiguous from 0.
func ColumnGroups(Ap, Ai []int, ncols, nrows int) (groups []int, ngroups int) {
	groups = make([]int, ncols)
	filled := make([]bool, nrows)
	for j := range groups {
		groups[j] = -1
	}

	remaining := ncols
	for remaining > 0 {
		for i := range filled {
			filled[i] = false
		}
		for j := 0; j < ncols; j++ {
			if groups[j] != -1 {
				continue
			}
			fits := true
			for p := Ap[j]; p < Ap[j+1]; p++ {
				if filled[Ai[p]] {
					fits = false
					break
				}
			}
			if !fits {
				continue
			}
			groups[j] = ngroups
			remaining--
			for p := Ap[j]; p < Ap[j+1]; p++ {
				filled[Ai[p]] = true
			}
		}
		ngroups++
	}
	return groups, ngroups
}

// ColumnGroups groups the columns of A; see the package function.
func (A *Matrix[T]) ColumnGroups() ([]int, int) {
	return ColumnGroups(A.Ap, A.Ai, A.Ncols, A.Nrows)
}
