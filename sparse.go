package splu // import "splu"

import (
	"fmt"
)

// NewMatrix returns a zero-initialized compressed-column matrix with
// room for maxnz entries. Allocation is all-or-nothing; no partial
// container is ever returned.
func NewMatrix[T Value](ncols, nrows, maxnz int) (*Matrix[T], error) {
	if ncols <= 0 || nrows <= 0 || maxnz < 0 {
		return nil, fmt.Errorf("%w: %d x %d, maxnz %d", ErrInvalidSize, nrows, ncols, maxnz)
	}

	return &Matrix[T]{
		Ncols: ncols,
		Nrows: nrows,
		Maxnz: maxnz,
		Ap:    make([]int, ncols+1),
		Ai:    make([]int, maxnz),
		Ax:    make([]T, maxnz),
	}, nil
}

// NNZ returns the number of entries currently stored.
func (A *Matrix[T]) NNZ() int {
	return A.Ap[A.Ncols]
}

// NewNumeric returns a factorization object for n-by-n systems. L and
// U are sized to the n(n+1)/2 worst case and all scratch buffers are
// allocated here, once; Factor, Refactor and Solve never allocate.
func NewNumeric[T Value](n int) (*Numeric[T], error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: n = %d", ErrInvalidSize, n)
	}

	maxnz := n * (n + 1) / 2
	L, err := NewMatrix[T](n, n, maxnz)
	if err != nil {
		return nil, err
	}
	U, err := NewMatrix[T](n, n, maxnz)
	if err != nil {
		return nil, err
	}

	// One backing array for the n reach stacks keeps them contiguous.
	xi := make([][]int, n)
	xibuf := make([]int, n*n)
	for k := 0; k < n; k++ {
		xi[k] = xibuf[k*n : (k+1)*n]
	}

	return &Numeric[T]{
		Size:   n,
		L:      L,
		U:      U,
		Pinv:   make([]int, n),
		P:      make([]int, n),
		Topvec: make([]int, n),
		Xi:     xi,
		w:      make([]T, n),
		marked: make([]bool, n),
		pstack: make([]int, n),
		wamd:   make([]int, 8*(n+1)),
	}, nil
}
