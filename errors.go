package splu

import "errors"

var (
	// ErrInvalidSize indicates a non-positive dimension or capacity.
	ErrInvalidSize = errors.New("splu: matrix dimensions must be positive")
	// ErrSize indicates a dimension mismatch between arguments.
	ErrSize = errors.New("splu: dimension mismatch")
	// ErrSingular indicates a factorization step found no pivot candidate.
	ErrSingular = errors.New("splu: matrix is structurally singular")
	// ErrZeroPivot indicates the chosen pivot magnitude is not positive.
	ErrZeroPivot = errors.New("splu: zero pivot")
	// ErrNotFactored indicates Solve or Refactor on an unfactored object.
	ErrNotFactored = errors.New("splu: matrix is not factored")
	// ErrWorkspace indicates an ordering scratch buffer is too small.
	ErrWorkspace = errors.New("splu: workspace too small")
)
