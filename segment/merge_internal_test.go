package segment

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/fhseg/disjointset"
	"github.com/katalvlaran/fhseg/edges"
	"github.com/katalvlaran/fhseg/gridgraph"
	"github.com/katalvlaran/fhseg/pixel"
)

func noisyEdges(t *testing.T, w, h int, conn gridgraph.Connectivity) edges.List {
	t.Helper()
	r := rand.New(rand.NewSource(int64(w * h)))
	img := pixel.NewGray[uint8](w, h)
	for i := range img.Pix {
		img.Pix[i] = uint8(r.Intn(64))
	}
	src, err := edges.NewGray(img)
	require.NoError(t, err)
	list, err := edges.Compute(src, conn)
	require.NoError(t, err)
	return list
}

// TestFirstPass_InternalMonotone replays every prefix of the sorted edge
// list and checks that the internal difference seen from each pixel never
// decreases as more edges are processed, and that after pass 2 it is still
// no smaller.
func TestFirstPass_InternalMonotone(t *testing.T) {
	const w, h = 8, 7
	for _, conn := range []gridgraph.Connectivity{gridgraph.Conn4, gridgraph.Conn8} {
		list := noisyEdges(t, w, h, conn)
		sortEdges(list)
		f, err := disjointset.New(w * h)
		require.NoError(t, err)

		prev := make([]float32, w*h)
		var rejected edges.List
		for i := 0; i <= len(list); i++ {
			require.NoError(t, f.Reset(w*h))
			rejected = firstPass(list[:i], f, 20, rejected)
			for p := range prev {
				cur := f.InternalDiff(f.Find(int32(p)))
				require.GreaterOrEqual(t, cur, prev[p], "%v prefix %d pixel %d", conn, i, p)
				prev[p] = cur
			}
		}

		secondPass(rejected, f, 10)
		for p := range prev {
			assert.GreaterOrEqual(t, f.InternalDiff(f.Find(int32(p))), prev[p])
		}
	}
}

// TestFirstPass_RejectedCoversCrossEdges checks that every edge joining two
// segments after pass 1 is in the rejected list, in sorted order.
func TestFirstPass_RejectedCoversCrossEdges(t *testing.T) {
	list := noisyEdges(t, 12, 9, gridgraph.Conn8)
	sortEdges(list)
	f, err := disjointset.New(12 * 9)
	require.NoError(t, err)
	rejected := firstPass(list, f, 10, nil)

	in := make(map[edges.Edge]bool, len(rejected))
	for i, e := range rejected {
		in[e] = true
		if i > 0 {
			assert.LessOrEqual(t, rejected[i-1].Weight, e.Weight)
		}
	}
	for _, e := range list {
		if f.Find(e.A) != f.Find(e.B) {
			assert.True(t, in[e], "cross edge %v not rejected", e)
		}
	}
}

// TestExtract_FirstEncounterOrder pins the dense renumbering.
func TestExtract_FirstEncounterOrder(t *testing.T) {
	f, err := disjointset.New(6)
	require.NoError(t, err)
	f.Union(5, 4, 0)
	f.Union(1, 2, 0)
	f.Union(0, 3, 0)

	r := extract(f, 3, 2)
	assert.Equal(t, []int32{0, 1, 1, 0, 2, 2}, r.Labels)
	assert.Equal(t, []uint32{2, 2, 2}, r.Sizes)
	for id, root := range r.Roots {
		assert.True(t, f.IsRoot(root))
		assert.Equal(t, int32(id), r.Labels[root])
	}
}
