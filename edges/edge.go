package edges

// Edge is an undirected adjacency between two distinct pixels.
// A and B are dense row-major pixel indices; Weight is their dissimilarity.
type Edge struct {
	A, B   int32
	Weight float32
}

// List is an edge buffer. Builders append into it so callers can reuse
// capacity across images.
type List []Edge
