package gridgraph

import (
	"fmt"
	"strings"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Full symmetric neighborhoods, used by traversals.
var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Forward half-neighborhoods. Order matters: edges.Compute emits each pixel's
// edges in this order, in both its interior and border passes.
var (
	forward4 = [][2]int{{1, 0}, {0, 1}}
	forward8 = [][2]int{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}
)

// Valid reports whether c is Conn4 or Conn8.
func (c Connectivity) Valid() bool {
	return c == Conn4 || c == Conn8
}

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// NeighborOffsets returns the full symmetric neighborhood for c.
// The returned slice is shared; callers must not modify it.
func (c Connectivity) NeighborOffsets() [][2]int {
	if c == Conn8 {
		return offsets8
	}
	return offsets4
}

// ForwardOffsets returns the forward half of the neighborhood:
//
//	Conn4: (x+1,y), (x,y+1)
//	Conn8: (x+1,y), (x,y+1), (x+1,y+1), (x-1,y+1)
//
// Visiting every pixel and pairing it only with these offsets yields each
// undirected adjacency exactly once. The returned slice is shared.
func (c Connectivity) ForwardOffsets() [][2]int {
	if c == Conn8 {
		return forward8
	}
	return forward4
}

// ParseConnectivity converts "4", "four", "conn4" (and the 8 variants) into a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "4", "four", "conn4":
		return Conn4, nil
	case "8", "eight", "conn8":
		return Conn8, nil
	default:
		return 0, fmt.Errorf("ParseConnectivity(%q): %w", s, ErrBadConnectivity)
	}
}

// Lattice is the W×H grid of pixel positions under a given connectivity.
// It is immutable once built and holds no pixel data.
type Lattice struct {
	Width, Height int
	Conn          Connectivity
}
