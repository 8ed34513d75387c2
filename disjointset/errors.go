package disjointset

import "errors"

// ErrInvalidSize indicates a forest with no elements was requested.
var ErrInvalidSize = errors.New("disjointset: size must be positive")
