package segment

import (
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/fhseg/disjointset"
	"github.com/katalvlaran/fhseg/edges"
)

// Segmenter is a reusable segmentation session. It owns the edge buffer,
// the rejected-edge buffer and the forest, and grows them on demand, so
// repeated calls on same-sized images do not allocate beyond the Result.
//
// A Segmenter is not safe for concurrent use; give each goroutine its own.
type Segmenter struct {
	opts     Options
	log      *zap.Logger
	edges    edges.List
	rejected edges.List
	forest   *disjointset.Forest
}

// NewSegmenter builds a session from DefaultOptions overridden by opts.
// Returns ErrInvalidInput listing every invalid option.
func NewSegmenter(opts ...Option) (*Segmenter, error) {
	return newSegmenter(newOptions(opts...))
}

func newSegmenter(o Options) (*Segmenter, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return &Segmenter{
		opts:   o,
		log:    o.Logger.Named("segment"),
		forest: &disjointset.Forest{},
	}, nil
}

// Options returns the session configuration.
func (s *Segmenter) Options() Options { return s.opts }

// Process builds the edge graph of src, merges it and returns the labelling.
//
// Steps:
//  1. Validate src (ErrInvalidInput).
//  2. Build edges under the session connectivity.
//  3. Run the greedy merge (see Merge).
//  4. Flatten the forest into a Result.
func (s *Segmenter) Process(src edges.Weigher) (*Result, error) {
	if src == nil {
		return nil, fmt.Errorf("%s: nil source: %w", methodProcess, ErrInvalidInput)
	}
	w, h := src.Bounds()
	if w < 1 || h < 1 || w > math.MaxInt32/h {
		return nil, fmt.Errorf("%s: %d×%d image: %w", methodProcess, w, h, ErrInvalidInput)
	}

	start := time.Now()
	list, err := edges.AppendCompute(s.edges, src, s.opts.Conn, edges.WithWorkers(s.opts.Workers))
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodProcess, err, ErrInvalidInput)
	}
	s.edges = list
	s.log.Debug("edges built",
		zap.Int("width", w),
		zap.Int("height", h),
		zap.Stringer("conn", s.opts.Conn),
		zap.Int("edges", len(list)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return s.ProcessEdges(list, w, h)
}

// ProcessEdges segments a width×height image described by an existing edge
// list. list is sorted in place. Returns ErrOutOfRange, before touching any
// state, if an edge references a pixel outside the image.
func (s *Segmenter) ProcessEdges(list edges.List, width, height int) (*Result, error) {
	if width < 1 || height < 1 || width > math.MaxInt32/height {
		return nil, fmt.Errorf("%s: %d×%d image: %w", methodProcess, width, height, ErrInvalidInput)
	}
	n := width * height
	if err := checkRange(list, n); err != nil {
		return nil, fmt.Errorf("%s: %w", methodProcess, err)
	}
	if err := s.forest.Reset(n); err != nil {
		return nil, fmt.Errorf("%s: %w: %w", methodProcess, err, ErrInvalidInput)
	}

	start := time.Now()
	sortEdges(list)
	s.rejected = firstPass(list, s.forest, s.opts.K, s.rejected)
	s.log.Debug("first pass",
		zap.Float64("k", s.opts.K),
		zap.Int("rejected", len(s.rejected)),
		zap.Int("segments", s.forest.Count()),
		zap.Duration("elapsed", time.Since(start)),
	)

	if s.opts.MinSize > 0 {
		start = time.Now()
		secondPass(s.rejected, s.forest, s.opts.MinSize)
		s.log.Debug("second pass",
			zap.Int("min_size", s.opts.MinSize),
			zap.Int("segments", s.forest.Count()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	return extract(s.forest, width, height), nil
}
