package segment

import (
	"fmt"
	"math"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/gridgraph"
)

// Default parameters, tuned for 8-bit photographs.
const (
	DefaultK       = 300.0
	DefaultMinSize = 30
)

// Options configures a segmentation.
//
// Fields:
//
//	Conn    - adjacency used to build the graph.
//	K       - granularity; larger values yield fewer, larger segments. Must be > 0.
//	MinSize - smallest allowed segment in pixels; 0 disables the second pass.
//	Metric  - band aggregation for multi-band images; ignored for gray input.
//	Workers - goroutines for the interior edge sweep; 0 means GOMAXPROCS.
//	Logger  - receives Debug records for each stage.
type Options struct {
	Conn    gridgraph.Connectivity
	K       float64
	MinSize int
	Metric  edges.Metric
	Workers int
	Logger  *zap.Logger
}

// DefaultOptions returns eight-connectivity, K=300, MinSize=30, Euclidean,
// one worker and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Conn:    gridgraph.Conn8,
		K:       DefaultK,
		MinSize: DefaultMinSize,
		Metric:  edges.Euclidean,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// Option customizes Options.
type Option func(*Options)

// WithConnectivity selects four- or eight-connectivity.
func WithConnectivity(c gridgraph.Connectivity) Option {
	return func(o *Options) { o.Conn = c }
}

// WithGranularity sets K.
func WithGranularity(k float64) Option {
	return func(o *Options) { o.K = k }
}

// WithMinSize sets the minimum segment size; 0 disables the second pass.
func WithMinSize(n int) Option {
	return func(o *Options) { o.MinSize = n }
}

// WithMetric sets the band aggregation for multi-band input.
// Panics if m has no Accumulate or Finish function.
func WithMetric(m edges.Metric) Option {
	if m.Accumulate == nil || m.Finish == nil {
		panic("segment: WithMetric requires a complete Metric")
	}
	return func(o *Options) { o.Metric = m }
}

// WithWorkers sets the goroutine count for the interior edge sweep.
func WithWorkers(n int) Option {
	return func(o *Options) { o.Workers = n }
}

// WithLogger routes stage logging to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("segment: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// newOptions applies opts over DefaultOptions in order; the last wins.
func newOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Validate reports every invalid field at once. Each reported error wraps
// ErrInvalidInput.
func (o Options) Validate() error {
	var err error
	if !o.Conn.Valid() {
		err = multierr.Append(err, fmt.Errorf("connectivity %v: %w", o.Conn, ErrInvalidInput))
	}
	if !(o.K > 0) || math.IsInf(o.K, 0) {
		err = multierr.Append(err, fmt.Errorf("granularity %v must be positive and finite: %w", o.K, ErrInvalidInput))
	}
	if o.MinSize < 0 {
		err = multierr.Append(err, fmt.Errorf("minimum size %d is negative: %w", o.MinSize, ErrInvalidInput))
	}
	if o.Workers < 0 {
		err = multierr.Append(err, fmt.Errorf("workers %d is negative: %w", o.Workers, ErrInvalidInput))
	}
	if o.Metric.Accumulate == nil || o.Metric.Finish == nil {
		err = multierr.Append(err, fmt.Errorf("metric %q is incomplete: %w", o.Metric.Name, ErrInvalidInput))
	}
	return err
}
