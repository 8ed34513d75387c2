package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a lattice with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: lattice must have at least one row and one column")
	// ErrBadConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("gridgraph: unknown connectivity")
	// ErrLabelLength indicates a label slice whose length differs from Width*Height.
	ErrLabelLength = errors.New("gridgraph: label slice length must equal width*height")
)
