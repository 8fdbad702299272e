package arena

import "errors"

var (
	// ErrNoSpace indicates that a freshly grown block still could not satisfy
	// the request. This is an internal invariant violation, not an expected
	// runtime outcome.
	ErrNoSpace = errors.New("arena: no block can satisfy the request")

	// ErrSizeOverflow indicates that the arithmetic sizing a growth request
	// would overflow. Surfaced before any chain mutation takes place.
	ErrSizeOverflow = errors.New("arena: allocation size overflows")

	// ErrGrowFail indicates that reserving storage for a new block failed.
	ErrGrowFail = errors.New("arena: block reservation failed")

	// ErrClosed indicates an operation on an arena after Close.
	ErrClosed = errors.New("arena: use after Close")
)
