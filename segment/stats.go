package segment

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/fhseg/pixel"
)

// Stats holds per-segment, per-band sample statistics.
// Mean[id][band] and StdDev[id][band]; StdDev is the unbiased estimate and
// is NaN for single-pixel segments.
type Stats struct {
	Mean   [][]float64
	StdDev [][]float64
}

// ComputeStats measures every band of img over the segments of r.
// img must have the same dimensions as r.
//
// Steps:
//  1. Bucket pixel indices by segment with a counting sort over r.Sizes.
//  2. For each band, gather the bucketed samples into one buffer.
//  3. Run stat.MeanStdDev on each segment's window.
func ComputeStats[T pixel.Sample](r *Result, img *pixel.Planar[T]) (*Stats, error) {
	if r == nil {
		return nil, fmt.Errorf("%s: nil result: %w", methodStats, ErrInvalidInput)
	}
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodStats, err, ErrInvalidInput)
	}
	if img.Width != r.Width || img.Height != r.Height {
		return nil, fmt.Errorf("%s: image %d×%d, result %d×%d: %w",
			methodStats, img.Width, img.Height, r.Width, r.Height, ErrInvalidInput)
	}

	k := r.NumSegments()
	start := make([]int, k+1)
	for id, sz := range r.Sizes {
		start[id+1] = start[id] + int(sz)
	}
	order := make([]int, len(r.Labels))
	next := append([]int(nil), start[:k]...)
	for p, id := range r.Labels {
		x, y := p%r.Width, p/r.Width
		order[next[id]] = img.Index(x, y)
		next[id]++
	}

	st := &Stats{Mean: make([][]float64, k), StdDev: make([][]float64, k)}
	for id := range st.Mean {
		st.Mean[id] = make([]float64, img.NumBands())
		st.StdDev[id] = make([]float64, img.NumBands())
	}
	buf := make([]float64, len(order))
	for b, band := range img.Bands {
		for i, src := range order {
			buf[i] = float64(band[src])
		}
		for id := 0; id < k; id++ {
			st.Mean[id][b], st.StdDev[id][b] = stat.MeanStdDev(buf[start[id]:start[id+1]], nil)
		}
	}
	return st, nil
}

// Colors returns each segment's mean as an opaque colour, reading bands 0-2
// as R, G, B (or band 0 as gray for single-band stats), clamped to [0,255].
func (s *Stats) Colors() []color.RGBA {
	out := make([]color.RGBA, len(s.Mean))
	for id, m := range s.Mean {
		switch {
		case len(m) >= 3:
			out[id] = color.RGBA{R: clamp8(m[0]), G: clamp8(m[1]), B: clamp8(m[2]), A: 0xff}
		case len(m) >= 1:
			v := clamp8(m[0])
			out[id] = color.RGBA{R: v, G: v, B: v, A: 0xff}
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(255, v))))
}
