// Package gridgraph treats the pixel lattice of a raster image as a graph.
//
// What:
//
//   - Connectivity selects which neighbors are adjacent: Conn4 (N/E/S/W) or
//     Conn8 (all eight surrounding pixels).
//   - ForwardOffsets lists only the "forward/down" half of a neighborhood, so
//     that sweeping every pixel once emits every undirected adjacency exactly once.
//   - Lattice maps (x,y) to row-major pixel indices and back, and answers
//     bounds queries for border handling.
//   - LabelComponents groups equal-labelled pixels into spatially connected
//     components (used to check that segments are contiguous).
//
// Complexity:
//
//   - Index, Coordinate, InBounds: O(1).
//   - ForwardEdgeCount:            O(1), closed form.
//   - LabelComponents:             O(W×H×d), Memory: O(W×H) (d = 4 or 8).
//
// Errors:
//
//   - ErrEmptyGrid: width or height below one.
//   - ErrBadConnectivity: connectivity is neither Conn4 nor Conn8.
//   - ErrLabelLength: label slice does not cover the lattice exactly.
package gridgraph
