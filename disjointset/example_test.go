package disjointset_test

import (
	"fmt"

	"github.com/katalvlaran/fhseg/disjointset"
)

// ExampleForest_Union merges three pixels in ascending edge order.
func ExampleForest_Union() {
	f, _ := disjointset.New(4)
	f.Union(0, 1, 0.5)
	r := f.Union(1, 2, 1.5)

	fmt.Println(f.Size(r), f.InternalDiff(r), f.Count())
	fmt.Println(f.Find(2) == f.Find(0), f.Find(3) == f.Find(0))
	// Output:
	// 3 1.5 2
	// true false
}
