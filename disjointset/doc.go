// Package disjointset provides the segment registry used by graph-based
// segmentation: a union-find forest over dense pixel indices that tracks,
// for every root, the number of members and the internal difference (the
// largest edge weight absorbed into the set).
//
// Find uses path halving; Union links by size, so tree height stays
// logarithmic without a separate rank array.
//
// A Forest is not safe for concurrent use. Reset reuses its storage for a
// new image.
//
// Errors:
//
//   - ErrInvalidSize: New or Reset called with n < 1.
package disjointset
