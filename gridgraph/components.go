package gridgraph

import "fmt"

// LabelComponents finds all contiguous regions of pixels sharing the same
// label, according to l.Conn. labels is row-major with length Width*Height.
// Returns a slice of components; each component is a slice of pixel indices
// in BFS order, components ordered by their first pixel in row-major order.
//
// A segmentation whose segments are all spatially connected yields exactly
// one component per distinct label.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (l Lattice) LabelComponents(labels []int32) ([][]int, error) {
	total := l.Len()
	if len(labels) != total {
		return nil, fmt.Errorf("LabelComponents: got %d labels for %d pixels: %w", len(labels), total, ErrLabelLength)
	}
	seen := make([]bool, total)
	offsets := l.NeighborOffsets()
	var comps [][]int
	queue := make([]int, 0, 64)

	for i0 := 0; i0 < total; i0++ {
		if seen[i0] {
			continue
		}
		want := labels[i0]
		// BFS to collect component
		queue = append(queue[:0], i0)
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			u := queue[qi]
			ux, uy := l.Coordinate(u)
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !l.InBounds(vx, vy) {
					continue
				}
				vi := l.Index(vx, vy)
				if !seen[vi] && labels[vi] == want {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comp := make([]int, len(queue))
		copy(comp, queue)
		comps = append(comps, comp)
	}
	return comps, nil
}
