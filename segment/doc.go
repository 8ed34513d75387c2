// Package segment implements graph-based image segmentation in the style of
// Felzenszwalb and Huttenlocher.
//
// The image becomes a graph with one vertex per pixel and one weighted edge
// per adjacent pair (see package edges). Edges are visited in ascending
// weight order; two segments merge when the connecting weight does not
// exceed either side's adaptive threshold
//
//	τ(C) = Int(C) + K/|C|
//
// where Int(C) is the largest edge already absorbed by C. A second pass then
// folds every segment smaller than MinSize into a neighbour.
//
// Entry points:
//
//   - Run, RunGray, RunPlanar, RunImage: one-shot segmentation.
//   - Segmenter: a session that reuses its buffers across images.
//   - Merge: the greedy passes over a caller-built edge list and forest.
//
// Results carry dense labels in first-appearance order; ComputeStats and
// Result.Render turn them into per-segment colours and a preview image.
//
// Errors:
//
//   - ErrInvalidInput: bad image, options or arguments; nothing is computed.
//   - ErrOutOfRange: an edge points outside the image.
//   - ErrInvalidResult: Result.Validate found an inconsistent labelling.
package segment
