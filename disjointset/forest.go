package disjointset

import (
	"fmt"
	"math"
)

// Forest is a union-find forest over [0, n).
//
// Only root entries carry meaningful size and internal values; a non-root
// entry keeps only its parent link.
type Forest struct {
	parent   []int32
	size     []uint32
	internal []float32
	sets     int
}

// New returns a forest of n singletons, each with size 1 and internal
// difference 0.
func New(n int) (*Forest, error) {
	f := &Forest{}
	if err := f.Reset(n); err != nil {
		return nil, err
	}
	return f, nil
}

// Reset reinitializes f to n singletons, reusing its storage when it is
// large enough.
func (f *Forest) Reset(n int) error {
	if n < 1 || n > math.MaxInt32 {
		return fmt.Errorf("Reset(%d): %w", n, ErrInvalidSize)
	}
	f.parent = grow(f.parent, n)
	f.size = grow(f.size, n)
	f.internal = grow(f.internal, n)
	for i := range f.parent {
		f.parent[i] = int32(i)
		f.size[i] = 1
		f.internal[i] = 0
	}
	f.sets = n
	return nil
}

func grow[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	return s[:n]
}

// Len returns the number of elements.
func (f *Forest) Len() int { return len(f.parent) }

// Count returns the number of disjoint sets.
func (f *Forest) Count() int { return f.sets }

// Contains reports whether p is an element of f.
func (f *Forest) Contains(p int32) bool {
	return p >= 0 && int(p) < len(f.parent)
}

// Find returns the root of the set containing p, halving the path on the way.
func (f *Forest) Find(p int32) int32 {
	parent := f.parent
	for parent[p] != p {
		parent[p] = parent[parent[p]]
		p = parent[p]
	}
	return p
}

// Union merges the sets containing a and b after an edge of weight w and
// returns the surviving root. If a and b already share a root, nothing
// changes and that root is returned.
//
// The survivor is the larger set (ties keep a's root). Its size becomes the
// sum and its internal difference max(w, internal(a), internal(b)); when edges
// arrive in ascending order that is simply w.
func (f *Forest) Union(a, b int32, w float32) int32 {
	ra, rb := f.Find(a), f.Find(b)
	if ra == rb {
		return ra
	}
	if f.size[ra] < f.size[rb] {
		ra, rb = rb, ra
	}
	f.parent[rb] = ra
	f.size[ra] += f.size[rb]
	f.internal[ra] = max(w, f.internal[ra], f.internal[rb])
	f.sets--
	return ra
}

// Size returns the member count of the set rooted at root.
func (f *Forest) Size(root int32) uint32 { return f.size[root] }

// InternalDiff returns the largest edge weight merged into the set rooted
// at root, or 0 for a singleton.
func (f *Forest) InternalDiff(root int32) float32 { return f.internal[root] }

// IsRoot reports whether p is the root of its set.
func (f *Forest) IsRoot(p int32) bool { return f.parent[p] == p }
