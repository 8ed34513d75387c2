package edges_test

import (
	"fmt"

	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/gridgraph"
	"github.com/katalvlaran/fhseg/pixel"
)

// ExampleCompute builds the four-connected edges of a 3×2 gray image.
// Interior edges come first, then the border.
func ExampleCompute() {
	img, _ := pixel.GrayFrom[uint8](3, 2, []uint8{
		10, 10, 50,
		10, 20, 50,
	})
	src, _ := edges.NewGray(img)
	list, _ := edges.Compute(src, gridgraph.Conn4)
	for _, e := range list {
		fmt.Printf("%d-%d:%g\n", e.A, e.B, e.Weight)
	}
	// Output:
	// 0-1:0
	// 0-3:0
	// 1-2:40
	// 1-4:10
	// 2-5:0
	// 3-4:10
	// 4-5:30
}
