package pixel

import "errors"

var (
	// ErrInvalidImage indicates a nil container, non-positive dimensions,
	// a stride narrower than the width, or a backing slice too short for the
	// declared geometry.
	ErrInvalidImage = errors.New("pixel: invalid image geometry")

	// ErrBandCount indicates an operation received the wrong number of bands.
	ErrBandCount = errors.New("pixel: unexpected band count")

	// ErrOutOfBounds indicates a rectangle or coordinate outside the image.
	ErrOutOfBounds = errors.New("pixel: rectangle out of bounds")
)
