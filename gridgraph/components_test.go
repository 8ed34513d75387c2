// File: gridgraph/components_test.go
package gridgraph

import (
	"errors"
	"reflect"
	"sort"
	"testing"
)

// TestLabelComponents_Simple4 tests LabelComponents on a 4×3 label grid
// with orthogonal connectivity (Conn4).
//
// Labels:
//
//	0 1 1 0
//	1 1 0 0
//	0 0 1 1
//
// Expected: label 0 splits into 3 pieces, label 1 into 2 pieces.
func TestLabelComponents_Simple4(t *testing.T) {
	labels := []int32{
		0, 1, 1, 0,
		1, 1, 0, 0,
		0, 0, 1, 1,
	}
	l := Lattice{Width: 4, Height: 3, Conn: Conn4}

	comps, err := l.LabelComponents(labels)
	if err != nil {
		t.Fatalf("LabelComponents failed: %v", err)
	}
	if len(comps) != 5 {
		t.Fatalf("got %d components; want 5", len(comps))
	}

	sizes := make([]int, len(comps))
	for i, c := range comps {
		sizes[i] = len(c)
	}
	sort.Ints(sizes)
	want := []int{1, 2, 2, 3, 4}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("component sizes = %v; want %v", sizes, want)
	}
}

// TestLabelComponents_Diagonal8 checks that Conn8 joins pixels touching at corners.
//
//	1 0 0 0 1
//	0 1 0 1 0
//	0 0 1 0 0
//	0 1 0 1 0
//	1 0 0 0 1
//
// With Conn8 all nine ones form one component and the zeros form four.
func TestLabelComponents_Diagonal8(t *testing.T) {
	labels := []int32{
		1, 0, 0, 0, 1,
		0, 1, 0, 1, 0,
		0, 0, 1, 0, 0,
		0, 1, 0, 1, 0,
		1, 0, 0, 0, 1,
	}
	l := Lattice{Width: 5, Height: 5, Conn: Conn8}
	comps, err := l.LabelComponents(labels)
	if err != nil {
		t.Fatalf("LabelComponents failed: %v", err)
	}
	ones := 0
	for _, c := range comps {
		if labels[c[0]] == 1 {
			ones++
			if len(c) != 9 {
				t.Errorf("ones component size = %d; want 9", len(c))
			}
		}
	}
	if ones != 1 {
		t.Errorf("ones components = %d; want 1", ones)
	}
}

// TestLabelComponents_Uniform covers the single-label and single-pixel cases.
func TestLabelComponents_Uniform(t *testing.T) {
	l := Lattice{Width: 3, Height: 2, Conn: Conn4}
	comps, _ := l.LabelComponents(make([]int32, 6))
	if len(comps) != 1 || len(comps[0]) != 6 {
		t.Errorf("uniform: got %v; want one component of 6", comps)
	}

	one := Lattice{Width: 1, Height: 1, Conn: Conn8}
	comps, _ = one.LabelComponents([]int32{42})
	if len(comps) != 1 || comps[0][0] != 0 {
		t.Errorf("single pixel: got %v", comps)
	}
}

// TestLabelComponents_BadLength ensures mismatched slices are rejected.
func TestLabelComponents_BadLength(t *testing.T) {
	l := Lattice{Width: 2, Height: 2, Conn: Conn4}
	if _, err := l.LabelComponents([]int32{0, 0, 0}); !errors.Is(err, ErrLabelLength) {
		t.Errorf("got %v; want ErrLabelLength", err)
	}
}
