package splu

import (
	"fmt"
	"strings"
)

// String renders the matrix column by column for demos and debugging.
func (A *Matrix[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d x %d, %d of %d entries\n", A.Nrows, A.Ncols, A.NNZ(), A.Maxnz)
	for j := 0; j < A.Ncols; j++ {
		fmt.Fprintf(&b, "col %d:", j)
		for p := A.Ap[j]; p < A.Ap[j+1]; p++ {
			fmt.Fprintf(&b, "  (%d) %v", A.Ai[p], A.Ax[p])
		}
		b.WriteByte('\n')
	}
	return b.String()
}
