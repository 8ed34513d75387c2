package edges

import "errors"

// ErrInvalidInput indicates the source image or connectivity cannot be
// turned into an edge list: nil image, non-positive dimensions, geometry
// inconsistent with the backing slices, an unknown connectivity or an
// incomplete Metric.
// Usage: if errors.Is(err, ErrInvalidInput) { /* reject the request */ }.
var ErrInvalidInput = errors.New("edges: invalid input")

// method tags used as error prefixes.
const (
	methodCompute    = "Compute"
	methodNewGray    = "NewGray"
	methodNewPlanar  = "NewPlanar"
	methodMetricName = "MetricByName"
)
