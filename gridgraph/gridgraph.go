// Package gridgraph provides utilities to treat a W×H pixel lattice as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Forward-only neighbor offsets for duplicate-free edge emission
//   - Row-major index <-> coordinate mapping
//   - Connected components of equally labelled pixels
package gridgraph

import "fmt"

// NewLattice validates dimensions and connectivity and returns a Lattice.
// Returns ErrEmptyGrid if width or height is below one,
// ErrBadConnectivity if conn is not Conn4 or Conn8.
// Complexity: O(1).
func NewLattice(width, height int, conn Connectivity) (Lattice, error) {
	if width < 1 || height < 1 {
		return Lattice{}, fmt.Errorf("NewLattice(%d×%d): %w", width, height, ErrEmptyGrid)
	}
	if !conn.Valid() {
		return Lattice{}, fmt.Errorf("NewLattice: %v: %w", conn, ErrBadConnectivity)
	}
	return Lattice{Width: width, Height: height, Conn: conn}, nil
}

// Len returns the number of pixels, Width*Height.
func (l Lattice) Len() int {
	return l.Width * l.Height
}

// InBounds reports whether (x,y) lies within the lattice boundaries.
// Complexity: O(1).
func (l Lattice) InBounds(x, y int) bool {
	return x >= 0 && x < l.Width && y >= 0 && y < l.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (l Lattice) Index(x, y int) int {
	return y*l.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (l Lattice) Coordinate(idx int) (x, y int) {
	return idx % l.Width, idx / l.Width
}

// NeighborOffsets returns the full neighborhood of the lattice connectivity.
func (l Lattice) NeighborOffsets() [][2]int {
	return l.Conn.NeighborOffsets()
}

// ForwardEdgeCount returns the exact number of undirected adjacencies in a
// width×height lattice:
//
//	Conn4: (W-1)*H + W*(H-1)
//	Conn8: Conn4 + 2*(W-1)*(H-1)
//
// Non-positive dimensions yield 0.
func ForwardEdgeCount(width, height int, conn Connectivity) int {
	if width < 1 || height < 1 {
		return 0
	}
	n := (width-1)*height + width*(height-1)
	if conn == Conn8 {
		n += 2 * (width - 1) * (height - 1)
	}
	return n
}

// ForwardEdgeCount is the method form of the package-level function.
func (l Lattice) ForwardEdgeCount() int {
	return ForwardEdgeCount(l.Width, l.Height, l.Conn)
}
