// SPDX-License-Identifier: MIT
// Package: fhseg/segment
//
// merge.go - the greedy minimum-spanning-forest merge.
//
// Contract:
//   • Edges are sorted ascending by weight (stable, so equal weights keep
//     builder order and the result is reproducible).
//   • Pass 1 merges (a,b,w) iff w ≤ min(τ(ra), τ(rb)), τ(r) = internal(r) + K/size(r).
//     Rejected edges are kept, in sorted order.
//   • Pass 2 (MinSize > 0) walks only the rejected edges: every accepted edge
//     already joins one set, so the rejected list holds every edge that can
//     still cross two segments. A pair is forced together when either side
//     is smaller than MinSize.
//   • After pass 2 no segment is smaller than MinSize unless the whole image is.

package segment

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/fhseg/disjointset"
	"github.com/katalvlaran/fhseg/edges"
)

// Merge runs both passes over list into forest. list is sorted in place.
//
// Returns ErrInvalidInput for a nil forest, k ≤ 0 or minSize < 0, and
// ErrOutOfRange if an edge references an element outside the forest; in
// both cases forest is left untouched.
func Merge(list edges.List, forest *disjointset.Forest, k float64, minSize int) error {
	if forest == nil {
		return fmt.Errorf("%s: nil forest: %w", methodMerge, ErrInvalidInput)
	}
	if !(k > 0) || math.IsInf(k, 0) {
		return fmt.Errorf("%s: granularity %v: %w", methodMerge, k, ErrInvalidInput)
	}
	if minSize < 0 {
		return fmt.Errorf("%s: minimum size %d: %w", methodMerge, minSize, ErrInvalidInput)
	}
	if err := checkRange(list, forest.Len()); err != nil {
		return fmt.Errorf("%s: %w", methodMerge, err)
	}
	merge(list, forest, k, minSize, nil)
	return nil
}

// checkRange verifies that every endpoint lies in [0, n).
func checkRange(list edges.List, n int) error {
	for i, e := range list {
		if e.A < 0 || int(e.A) >= n || e.B < 0 || int(e.B) >= n {
			return fmt.Errorf("edge %d (%d,%d) outside [0,%d): %w", i, e.A, e.B, n, ErrOutOfRange)
		}
	}
	return nil
}

// sortEdges orders list ascending by weight.
func sortEdges(list edges.List) {
	slices.SortStableFunc(list, func(a, b edges.Edge) int {
		return cmp.Compare(a.Weight, b.Weight)
	})
}

// threshold is τ(r) = internal(r) + k/size(r).
func threshold(f *disjointset.Forest, root int32, k float64) float64 {
	return float64(f.InternalDiff(root)) + k/float64(f.Size(root))
}

// merge performs both passes without validation. rejected is scratch
// storage; the grown buffer is returned for reuse.
func merge(list edges.List, f *disjointset.Forest, k float64, minSize int, rejected edges.List) edges.List {
	sortEdges(list)
	rejected = firstPass(list, f, k, rejected)
	secondPass(rejected, f, minSize)
	return rejected
}

// firstPass merges sorted edges under the adaptive threshold and returns the
// rejected ones, in order, appended to rejected[:0].
func firstPass(sorted edges.List, f *disjointset.Forest, k float64, rejected edges.List) edges.List {
	rejected = rejected[:0]
	for _, e := range sorted {
		ra, rb := f.Find(e.A), f.Find(e.B)
		if ra == rb {
			continue
		}
		if float64(e.Weight) <= min(threshold(f, ra, k), threshold(f, rb, k)) {
			f.Union(ra, rb, e.Weight)
		} else {
			rejected = append(rejected, e)
		}
	}
	return rejected
}

// secondPass forces together any rejected pair with a side below minSize.
func secondPass(rejected edges.List, f *disjointset.Forest, minSize int) {
	if minSize <= 0 {
		return
	}
	for _, e := range rejected {
		ra, rb := f.Find(e.A), f.Find(e.B)
		if ra == rb {
			continue
		}
		if int(f.Size(ra)) < minSize || int(f.Size(rb)) < minSize {
			f.Union(ra, rb, e.Weight)
		}
	}
}
