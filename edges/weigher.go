package edges

import (
	"fmt"

	"github.com/katalvlaran/fhseg/pixel"
)

// Weigher is the boundary between the edge builder and an image container.
//
// Offset maps a pixel coordinate to a source offset (honouring sub-image
// Offset/Stride); Weight compares two source offsets. The builder relies on
// Offset(x+1,y) == Offset(x,y)+1 and on a constant row stride, which holds
// for every pixel container in this module.
//
// Implementations must be safe for concurrent Weight calls.
type Weigher interface {
	Bounds() (width, height int)
	Offset(x, y int) int
	Weight(i, j int) float32
}

// grayWeigher computes |a-b| over a single band.
type grayWeigher[T pixel.Sample] struct {
	width, height  int
	stride, offset int
	pix            []T
}

// NewGray returns a Weigher over a single-band image. Weight is the absolute
// sample difference.
func NewGray[T pixel.Sample](img *pixel.Gray[T]) (Weigher, error) {
	if img == nil {
		return nil, fmt.Errorf("%s: nil image: %w", methodNewGray, ErrInvalidInput)
	}
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNewGray, err, ErrInvalidInput)
	}
	return &grayWeigher[T]{
		width:  img.Width,
		height: img.Height,
		stride: img.Stride,
		offset: img.Offset,
		pix:    img.Pix,
	}, nil
}

func (g *grayWeigher[T]) Bounds() (int, int) { return g.width, g.height }

func (g *grayWeigher[T]) Offset(x, y int) int { return g.offset + y*g.stride + x }

func (g *grayWeigher[T]) Weight(i, j int) float32 {
	d := float64(g.pix[i]) - float64(g.pix[j])
	if d < 0 {
		d = -d
	}
	return float32(d)
}

// planarWeigher aggregates band differences with a Metric.
type planarWeigher[T pixel.Sample] struct {
	width, height  int
	stride, offset int
	bands          [][]T
	metric         Metric
}

// NewPlanar returns a Weigher over a multi-band image using m to combine
// per-band differences.
func NewPlanar[T pixel.Sample](img *pixel.Planar[T], m Metric) (Weigher, error) {
	if img == nil {
		return nil, fmt.Errorf("%s: nil image: %w", methodNewPlanar, ErrInvalidInput)
	}
	if err := img.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodNewPlanar, err, ErrInvalidInput)
	}
	if !m.valid() {
		return nil, fmt.Errorf("%s: metric %q is incomplete: %w", methodNewPlanar, m.Name, ErrInvalidInput)
	}
	return &planarWeigher[T]{
		width:  img.Width,
		height: img.Height,
		stride: img.Stride,
		offset: img.Offset,
		bands:  img.Bands,
		metric: m,
	}, nil
}

func (p *planarWeigher[T]) Bounds() (int, int) { return p.width, p.height }

func (p *planarWeigher[T]) Offset(x, y int) int { return p.offset + y*p.stride + x }

func (p *planarWeigher[T]) Weight(i, j int) float32 {
	acc := 0.0
	for _, b := range p.bands {
		acc = p.metric.Accumulate(acc, float64(b[i])-float64(b[j]))
	}
	return float32(p.metric.Finish(acc))
}
