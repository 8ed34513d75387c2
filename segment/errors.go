package segment

import "errors"

var (
	// ErrInvalidInput indicates a request that cannot be segmented: nil or
	// empty image, K ≤ 0, negative minimum size or worker count, unknown
	// connectivity or an incomplete metric. Reported before any work starts.
	ErrInvalidInput = errors.New("segment: invalid input")

	// ErrOutOfRange indicates an edge that references a pixel outside
	// [0, W*H). It signals a defective edge source, not bad user input.
	ErrOutOfRange = errors.New("segment: edge index out of range")

	// ErrInvalidResult indicates a Result that does not describe a partition
	// of the image into connected segments.
	ErrInvalidResult = errors.New("segment: invalid result")
)

// method tags used as error prefixes.
const (
	methodProcess  = "Process"
	methodMerge    = "Merge"
	methodValidate = "Validate"
	methodStats    = "ComputeStats"
	methodRender   = "Render"
)
