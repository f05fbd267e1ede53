package splu

// Value is the scalar field of a sparse system. Real and complex
// systems share the same code paths; only the magnitude used for
// pivot comparison differs (see mag).
type Value interface {
	float64 | complex128
}

// Matrix is a compressed-column sparse matrix with fixed capacity.
// Column j holds the entries Ai[Ap[j]:Ap[j+1]] / Ax[Ap[j]:Ap[j+1]],
// with row indices sorted ascending. Producers write Ap, Ai and Ax
// directly and must keep Ap monotone with Ap[0] = 0.
type Matrix[T Value] struct {
	Ncols int // Number of columns
	Nrows int // Number of rows
	Maxnz int // Allocated entry capacity

	Ap []int // Column pointers [0...Ncols]
	Ai []int // Row index of each entry
	Ax []T   // Value of each entry, parallel to Ai
}

// Numeric holds an LU factorization of an n-by-n sparse matrix
// together with every scratch buffer the factorization needs, so a
// Newton iteration can factor, refactor and solve repeatedly without
// allocating. A Numeric must not be shared between concurrent
// factorizations; no method is reentrant on the same object.
type Numeric[T Value] struct {
	Size int // System dimension n

	L *Matrix[T] // Unit lower triangular factor, rows in pivot order
	U *Matrix[T] // Upper triangular factor, diagonal stored last in each column

	Pinv   []int   // Row -> factorization step, -1 while unassigned
	P      []int   // Pivot row chosen at each step
	Q      []int   // Fill-reducing column preorder, nil for natural order
	Topvec []int   // Reach stack boundary recorded for each column
	Xi     [][]int // Per-column reach stacks, each of length n

	Factored bool // Factor has completed on this object

	w      []T    // Dense scratch column
	marked []bool // Visited flags for the reachability search
	pstack []int  // Neighbour positions of the pending search path
	wamd   []int  // Ordering scratch, 8(n+1) ints
}
