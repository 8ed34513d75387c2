package edges

import (
	"fmt"
	"math"

	"github.com/katalvlaran/fhseg/gridgraph"
)

// Compute builds the full edge list of src under conn into a new List.
// See AppendCompute.
func Compute(src Weigher, conn gridgraph.Connectivity, opts ...Option) (List, error) {
	return AppendCompute(nil, src, conn, opts...)
}

// AppendCompute builds the edge list of src under conn, reusing dst's
// capacity. dst's previous contents are discarded. The returned List has
// exactly gridgraph.ForwardEdgeCount(W, H, conn) edges: interior edges first
// in row-major order, then border edges.
//
// Steps:
//  1. Validate src, its bounds and conn (ErrInvalidInput, nothing written).
//  2. Size the output once.
//  3. Sweep the interior block, possibly on several goroutines.
//  4. Sweep the border with bounds-checked probes.
func AppendCompute(dst List, src Weigher, conn gridgraph.Connectivity, opts ...Option) (List, error) {
	if src == nil {
		return dst[:0], fmt.Errorf("%s: nil source: %w", methodCompute, ErrInvalidInput)
	}
	w, h := src.Bounds()
	if w < 1 || h < 1 || w > math.MaxInt32/h {
		return dst[:0], fmt.Errorf("%s: %d×%d image: %w", methodCompute, w, h, ErrInvalidInput)
	}
	if !conn.Valid() {
		return dst[:0], fmt.Errorf("%s: %v: %w", methodCompute, conn, ErrInvalidInput)
	}
	cfg := newConfig(opts...)

	total := gridgraph.ForwardEdgeCount(w, h, conn)
	if cap(dst) < total {
		dst = make(List, total)
	} else {
		dst = dst[:total]
	}

	s := newSweep(src, conn, w, h)
	s.interior(dst[:s.interiorCount()], cfg.workers)

	border := s.border(dst[s.interiorCount():s.interiorCount()])
	if n := s.interiorCount() + len(border); n != total {
		// Unreachable unless the sweeps disagree with the closed form.
		panic(fmt.Sprintf("edges: emitted %d edges, expected %d", n, total))
	}
	return dst, nil
}

// sweep carries the per-image constants shared by the interior and border passes.
type sweep struct {
	src    Weigher
	eight  bool
	fwd    [][2]int // conn.ForwardOffsets(); rows emits the same order
	w, h   int
	startX int // first interior column: 0 for Conn4, 1 for Conn8 (needs x-1)
	cols   int // interior cells per row
	per    int // edges per interior cell
}

func newSweep(src Weigher, conn gridgraph.Connectivity, w, h int) sweep {
	s := sweep{src: src, eight: conn == gridgraph.Conn8, fwd: conn.ForwardOffsets(), w: w, h: h, per: 2}
	if s.eight {
		s.startX, s.per = 1, 4
	}
	s.cols = w - 1 - s.startX
	if s.cols < 0 {
		s.cols = 0
	}
	return s
}

// interiorCount is the number of edges emitted by the interior block.
func (s sweep) interiorCount() int {
	return (s.h - 1) * s.cols * s.per
}

// rows sweeps interior rows [y0,y1) into out, which must be the region of
// the interior slice that starts at row y0.
func (s sweep) rows(out []Edge, y0, y1 int) {
	if s.cols == 0 {
		return
	}
	w32 := int32(s.w)
	k := 0
	for y := y0; y < y1; y++ {
		i := s.src.Offset(s.startX, y)
		stride := s.src.Offset(s.startX, y+1) - i
		d := int32(y*s.w + s.startX)

		for x := s.startX; x < s.w-1; x, i, d = x+1, i+1, d+1 {
			// Right and down, then the two diagonals below.
			out[k] = Edge{A: d, B: d + 1, Weight: s.src.Weight(i, i+1)}
			out[k+1] = Edge{A: d, B: d + w32, Weight: s.src.Weight(i, i+stride)}
			if s.eight {
				out[k+2] = Edge{A: d, B: d + w32 + 1, Weight: s.src.Weight(i, i+stride+1)}
				out[k+3] = Edge{A: d, B: d + w32 - 1, Weight: s.src.Weight(i, i+stride-1)}
			}
			k += s.per
		}
	}
}

// border appends every edge that starts at a pixel outside the interior block.
func (s sweep) border(out List) List {
	last := s.w - 1
	for y := 0; y < s.h-1; y++ {
		if s.eight {
			out = s.checkAround(out, 0, y)
		}
		// With a single column under Conn8 the first column is also the last.
		if !s.eight || last > 0 {
			out = s.checkAround(out, last, y)
		}
	}
	for x := 0; x < last; x++ {
		out = s.checkAround(out, x, s.h-1)
	}
	return out
}

// checkAround probes the forward neighbors of (x,y).
func (s sweep) checkAround(out List, x, y int) List {
	i := s.src.Offset(x, y)
	a := int32(y*s.w + x)

	for _, d := range s.fwd {
		out = s.check(out, x+d[0], y+d[1], i, a)
	}
	return out
}

// check emits the edge (a, (x,y)) if (x,y) is inside the image.
func (s sweep) check(out List, x, y, srcA int, a int32) List {
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return out
	}
	return append(out, Edge{
		A:      a,
		B:      int32(y*s.w + x),
		Weight: s.src.Weight(srcA, s.src.Offset(x, y)),
	})
}
