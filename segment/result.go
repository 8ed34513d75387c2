package segment

import (
	"fmt"

	"github.com/katalvlaran/fhseg/disjointset"
	"github.com/katalvlaran/fhseg/gridgraph"
)

// Result maps every pixel to a dense segment id.
//
// Ids run 0..NumSegments()-1 in the order their first pixel appears in a
// row-major scan, so identical inputs always produce identical labels.
type Result struct {
	Width, Height int
	// Labels[y*Width+x] is the segment id of pixel (x,y).
	Labels []int32
	// Sizes[id] is the pixel count of segment id.
	Sizes []uint32
	// Roots[id] is the forest root the segment was read from.
	Roots []int32
}

// extract flattens f into a Result with one Find per pixel.
func extract(f *disjointset.Forest, width, height int) *Result {
	n := width * height
	r := &Result{
		Width:  width,
		Height: height,
		Labels: make([]int32, n),
		Sizes:  make([]uint32, 0, f.Count()),
		Roots:  make([]int32, 0, f.Count()),
	}

	// idOf[root] is the dense id assigned to root, or -1.
	idOf := make([]int32, n)
	for i := range idOf {
		idOf[i] = -1
	}
	for p := range r.Labels {
		root := f.Find(int32(p))
		id := idOf[root]
		if id < 0 {
			id = int32(len(r.Sizes))
			idOf[root] = id
			r.Sizes = append(r.Sizes, 0)
			r.Roots = append(r.Roots, root)
		}
		r.Labels[p] = id
		r.Sizes[id]++
	}
	return r
}

// NumSegments returns the number of segments.
func (r *Result) NumSegments() int { return len(r.Sizes) }

// Label returns the segment id of pixel (x,y).
func (r *Result) Label(x, y int) int32 { return r.Labels[y*r.Width+x] }

// Size returns the pixel count of segment id.
func (r *Result) Size(id int32) uint32 { return r.Sizes[id] }

// Members returns the pixel indices of segment id in ascending order, or nil
// for an unknown id.
func (r *Result) Members(id int32) []int32 {
	if id < 0 || int(id) >= len(r.Sizes) {
		return nil
	}
	out := make([]int32, 0, r.Sizes[id])
	for p, l := range r.Labels {
		if l == id {
			out = append(out, int32(p))
		}
	}
	return out
}

// Validate checks that r is a partition of the image into segments that are
// each connected under conn, with Sizes matching the label counts.
//
// Steps:
//  1. Check geometry and that every label is a known id.
//  2. Recount sizes and compare with Sizes; they must sum to W*H.
//  3. Label connected components; there must be exactly one per segment.
func (r *Result) Validate(conn gridgraph.Connectivity) error {
	lat, err := gridgraph.NewLattice(r.Width, r.Height, conn)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, err, ErrInvalidResult)
	}
	if len(r.Labels) != lat.Len() || len(r.Roots) != len(r.Sizes) {
		return fmt.Errorf("%s: %d labels, %d sizes, %d roots for %d pixels: %w",
			methodValidate, len(r.Labels), len(r.Sizes), len(r.Roots), lat.Len(), ErrInvalidResult)
	}

	counts := make([]uint32, len(r.Sizes))
	for p, id := range r.Labels {
		if id < 0 || int(id) >= len(counts) {
			return fmt.Errorf("%s: pixel %d has label %d: %w", methodValidate, p, id, ErrInvalidResult)
		}
		counts[id]++
	}
	var total int
	for id, c := range counts {
		if c == 0 || c != r.Sizes[id] {
			return fmt.Errorf("%s: segment %d counts %d pixels, recorded %d: %w",
				methodValidate, id, c, r.Sizes[id], ErrInvalidResult)
		}
		total += int(c)
	}
	if total != lat.Len() {
		return fmt.Errorf("%s: sizes sum to %d, want %d: %w", methodValidate, total, lat.Len(), ErrInvalidResult)
	}

	comps, err := lat.LabelComponents(r.Labels)
	if err != nil {
		return fmt.Errorf("%s: %w: %w", methodValidate, err, ErrInvalidResult)
	}
	if len(comps) != len(r.Sizes) {
		return fmt.Errorf("%s: %d segments form %d connected regions: %w",
			methodValidate, len(r.Sizes), len(comps), ErrInvalidResult)
	}
	return nil
}
