package segment

import (
	"fmt"
	"image"

	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/pixel"
)

// Run segments src with a fresh session. See Segmenter.Process.
func Run(src edges.Weigher, opts ...Option) (*Result, error) {
	s, err := NewSegmenter(opts...)
	if err != nil {
		return nil, err
	}
	return s.Process(src)
}

// RunGray segments a single-band image; edge weights are |a-b|.
func RunGray[T pixel.Sample](img *pixel.Gray[T], opts ...Option) (*Result, error) {
	s, err := NewSegmenter(opts...)
	if err != nil {
		return nil, err
	}
	src, err := edges.NewGray(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodProcess, err, ErrInvalidInput)
	}
	return s.Process(src)
}

// RunPlanar segments a multi-band image, combining bands with the
// configured Metric.
func RunPlanar[T pixel.Sample](img *pixel.Planar[T], opts ...Option) (*Result, error) {
	s, err := NewSegmenter(opts...)
	if err != nil {
		return nil, err
	}
	src, err := edges.NewPlanar(img, s.opts.Metric)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodProcess, err, ErrInvalidInput)
	}
	return s.Process(src)
}

// RunImage converts img to planar RGB and segments it. Alpha is ignored.
func RunImage(img image.Image, opts ...Option) (*Result, error) {
	rgb, err := pixel.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodProcess, err, ErrInvalidInput)
	}
	return RunPlanar(rgb, opts...)
}
