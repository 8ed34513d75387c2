package pixel

import "fmt"

// Planar is a multi-band image. All bands share Width, Height, Stride and
// Offset, so one source index addresses the same pixel in every band.
type Planar[T Sample] struct {
	Width, Height int
	Stride        int
	Offset        int
	Bands         [][]T
}

// NewPlanar allocates a zeroed, tightly packed image with the given band count.
func NewPlanar[T Sample](width, height, bands int) *Planar[T] {
	p := &Planar[T]{Width: width, Height: height, Stride: width, Bands: make([][]T, bands)}
	for i := range p.Bands {
		p.Bands[i] = make([]T, width*height)
	}
	return p
}

// NumBands returns the number of bands.
func (p *Planar[T]) NumBands() int {
	return len(p.Bands)
}

// Index returns the position of (x,y) in every band slice.
func (p *Planar[T]) Index(x, y int) int {
	return p.Offset + y*p.Stride + x
}

// Band returns band i as a Gray view sharing storage.
func (p *Planar[T]) Band(i int) *Gray[T] {
	return &Gray[T]{Width: p.Width, Height: p.Height, Stride: p.Stride, Offset: p.Offset, Pix: p.Bands[i]}
}

// Validate checks that there is at least one band and every band can hold
// the declared geometry.
func (p *Planar[T]) Validate() error {
	if p == nil {
		return fmt.Errorf("Planar: nil image: %w", ErrInvalidImage)
	}
	if len(p.Bands) == 0 {
		return fmt.Errorf("Planar: no bands: %w", ErrBandCount)
	}
	for i, b := range p.Bands {
		if err := checkGeometry(fmt.Sprintf("Planar band %d", i), p.Width, p.Height, p.Stride, p.Offset, len(b)); err != nil {
			return err
		}
	}
	return nil
}

// SubImage returns a view of the rectangle [x0,x1)×[y0,y1) sharing all bands.
func (p *Planar[T]) SubImage(x0, y0, x1, y1 int) (*Planar[T], error) {
	if x0 < 0 || y0 < 0 || x1 > p.Width || y1 > p.Height || x0 >= x1 || y0 >= y1 {
		return nil, fmt.Errorf("Planar.SubImage(%d,%d,%d,%d) of %d×%d: %w", x0, y0, x1, y1, p.Width, p.Height, ErrOutOfBounds)
	}
	return &Planar[T]{
		Width:  x1 - x0,
		Height: y1 - y0,
		Stride: p.Stride,
		Offset: p.Index(x0, y0),
		Bands:  p.Bands,
	}, nil
}
