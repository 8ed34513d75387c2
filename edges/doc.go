// Package edges builds the weighted pixel-adjacency graph consumed by the
// graph-based segmenter.
//
// What:
//
//	Compute visits every pixel of a W×H image once and pairs it with its
//	forward neighbors (see gridgraph.Connectivity.ForwardOffsets), producing
//	an unsorted List of Edge{A, B, Weight}. A and B are dense pixel indices
//	(y*W + x); Weight is a non-negative dissimilarity.
//
// How:
//
//   - Interior sweep: the block y∈[0,H-1), x∈[startX,W-1) (startX = 0 for
//     Conn4, 1 for Conn8) never touches the image border, so it walks raw
//     source offsets with no per-pixel bounds checks and emits a fixed number
//     of edges per cell (2 or 4). Rows may be split across goroutines
//     (WithWorkers); each worker writes a disjoint, pre-computed region of
//     the output, so the result is identical for any worker count.
//   - Border sweep: the last column, the last row and (for Conn8) the first
//     column go through checkAround/check, which probe only forward
//     neighbors and drop out-of-bounds targets.
//
// The two sweeps together emit exactly gridgraph.ForwardEdgeCount(W, H, conn)
// edges with no duplicates.
//
// Weights:
//
//   - Gray images: |a - b|.
//   - Planar images: a band-wise aggregate chosen from the Metric table
//     (Euclidean, Manhattan, Chebyshev). CIELAB ΔE76 is Euclidean over the
//     output of pixel.ToLab.
//
// Complexity: O(W×H) time; memory O(E) for the output only.
//
// Errors:
//
//   - ErrInvalidInput: nil source, non-positive dimensions, bad geometry,
//     invalid connectivity, or an incomplete Metric. Reported before any
//     edge is written.
package edges
