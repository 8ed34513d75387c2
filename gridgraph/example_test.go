// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/fhseg/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ForwardOffsets
////////////////////////////////////////////////////////////////////////////////

// ExampleConnectivity_ForwardOffsets enumerates every adjacency of a 3×2
// lattice exactly once by pairing each pixel only with its forward neighbors.
func ExampleConnectivity_ForwardOffsets() {
	l, _ := gridgraph.NewLattice(3, 2, gridgraph.Conn4)
	var pairs []string
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			for _, d := range l.Conn.ForwardOffsets() {
				nx, ny := x+d[0], y+d[1]
				if l.InBounds(nx, ny) {
					pairs = append(pairs, fmt.Sprintf("%d-%d", l.Index(x, y), l.Index(nx, ny)))
				}
			}
		}
	}
	fmt.Println(strings.Join(pairs, " "))
	fmt.Println("edges:", l.ForwardEdgeCount())

	// Output:
	// 0-1 0-3 1-2 1-4 2-5 3-4 4-5
	// edges: 7
}

////////////////////////////////////////////////////////////////////////////////
// Example: LabelComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleLattice_LabelComponents shows that a label split into two pieces
// reports two components.
func ExampleLattice_LabelComponents() {
	labels := []int32{
		7, 7, 3,
		3, 3, 3,
		7, 3, 3,
	}
	l, _ := gridgraph.NewLattice(3, 3, gridgraph.Conn4)
	comps, _ := l.LabelComponents(labels)
	for _, c := range comps {
		fmt.Println(labels[c[0]], len(c))
	}

	// Output:
	// 7 2
	// 3 6
	// 7 1
}
