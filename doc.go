// Package fhseg segments raster images into regions of similar pixels with
// the graph-based method of Felzenszwalb and Huttenlocher.
//
// What is fhseg?
//
//	A pure-Go pipeline that turns an image into a pixel graph and greedily
//	merges it into segments:
//		• gridgraph   - four/eight connectivity, lattice geometry, component labelling
//		• pixel       - generic single- and multi-band containers, image.Image and Lab adapters
//		• edges       - interior/border edge sweep with pluggable band metrics
//		• disjointset - union-find forest tracking segment size and internal difference
//		• segment     - the two-pass merge, sessions, results, stats and previews
//		• cmd/fhseg   - command-line front end
//
// Quick example:
//
//	img, _ := pixel.GrayFrom[uint8](w, h, pix)
//	res, err := segment.RunGray(img, segment.WithGranularity(300), segment.WithMinSize(30))
//	// res.Labels[y*w+x] is the segment of (x,y); res.Sizes[id] its pixel count.
//
// Larger K yields fewer, larger segments; MinSize folds away specks.
//
//	go install github.com/katalvlaran/fhseg/cmd/fhseg@latest
package fhseg
