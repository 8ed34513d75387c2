package pixel

import "fmt"

// Sample is the set of numeric types a band may store.
type Sample interface {
	~uint8 | ~int8 | ~uint16 | ~int16 | ~uint32 | ~int32 | ~int64 | ~float32 | ~float64
}

// Gray is a single-band image.
type Gray[T Sample] struct {
	Width, Height int
	// Stride is the distance in samples between vertically adjacent pixels.
	Stride int
	// Offset is the index in Pix of pixel (0,0).
	Offset int
	Pix    []T
}

// NewGray allocates a zeroed, tightly packed width×height image.
func NewGray[T Sample](width, height int) *Gray[T] {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Gray[T]{Width: width, Height: height, Stride: width, Pix: make([]T, width*height)}
}

// GrayFrom wraps an existing row-major slice without copying.
func GrayFrom[T Sample](width, height int, pix []T) (*Gray[T], error) {
	g := &Gray[T]{Width: width, Height: height, Stride: width, Pix: pix}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Index returns the position of (x,y) in Pix.
func (g *Gray[T]) Index(x, y int) int {
	return g.Offset + y*g.Stride + x
}

// At returns the sample at (x,y). It panics if (x,y) is out of range.
func (g *Gray[T]) At(x, y int) T {
	return g.Pix[g.Index(x, y)]
}

// Set stores v at (x,y). It panics if (x,y) is out of range.
func (g *Gray[T]) Set(x, y int, v T) {
	g.Pix[g.Index(x, y)] = v
}

// InBounds reports whether (x,y) lies inside the image.
func (g *Gray[T]) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Width && y < g.Height
}

// Validate checks the geometry against the backing slice.
func (g *Gray[T]) Validate() error {
	if g == nil {
		return fmt.Errorf("Gray: nil image: %w", ErrInvalidImage)
	}
	return checkGeometry("Gray", g.Width, g.Height, g.Stride, g.Offset, len(g.Pix))
}

// SubImage returns a view of the rectangle [x0,x1)×[y0,y1) sharing Pix.
func (g *Gray[T]) SubImage(x0, y0, x1, y1 int) (*Gray[T], error) {
	if x0 < 0 || y0 < 0 || x1 > g.Width || y1 > g.Height || x0 >= x1 || y0 >= y1 {
		return nil, fmt.Errorf("Gray.SubImage(%d,%d,%d,%d) of %d×%d: %w", x0, y0, x1, y1, g.Width, g.Height, ErrOutOfBounds)
	}
	return &Gray[T]{
		Width:  x1 - x0,
		Height: y1 - y0,
		Stride: g.Stride,
		Offset: g.Index(x0, y0),
		Pix:    g.Pix,
	}, nil
}

// checkGeometry is shared by Gray and Planar validation.
func checkGeometry(kind string, width, height, stride, offset, n int) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("%s: %d×%d: %w", kind, width, height, ErrInvalidImage)
	}
	if stride < width || offset < 0 {
		return fmt.Errorf("%s: stride=%d offset=%d for width %d: %w", kind, stride, offset, width, ErrInvalidImage)
	}
	last := offset + (height-1)*stride + width
	if last > n {
		return fmt.Errorf("%s: needs %d samples, have %d: %w", kind, last, n, ErrInvalidImage)
	}
	return nil
}
