package libsym_test

import (
	"sort"
	"testing"

	"github.com/joelgibson/SymmetricAlgebra/libsym"
	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

func sortedShapes(parts []symalg.Partition) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		out[i] = p.String()
	}
	sort.Strings(out)
	return out
}

func equalShapes(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExpandInGL(t *testing.T) {
	words := libsym.ExpandInGL(3, symalg.Word{1, 1})
	want := map[string]bool{"11": true, "21": true, "22": true, "31": true, "32": true, "33": true}
	if len(words) != len(want) {
		t.Fatalf("got %d words: %v", len(words), words)
	}
	for _, w := range words {
		if !want[w.String()] {
			t.Fatalf("unexpected word %q", w.String())
		}
	}
}

func TestTensorBoxBox(t *testing.T) {
	terms := libsym.TensorPartitions(2, symalg.Partition{1}, symalg.Partition{1})
	want := []string{"[1, 1]", "[2]"}
	if !equalShapes(sortedShapes(terms), want) {
		t.Fatalf("[1] x [1] = %v, want %v", terms, want)
	}
}

func TestTensorRowBox(t *testing.T) {
	terms := libsym.TensorPartitions(3, symalg.Partition{2}, symalg.Partition{1})
	want := []string{"[2, 1]", "[3]"}
	if !equalShapes(sortedShapes(terms), want) {
		t.Fatalf("[2] x [1] = %v, want %v", terms, want)
	}
}

func TestTensorWithMultiplicity(t *testing.T) {
	// [2,1] x [2,1] in GL(3) = [4,2] + [4,1,1] + [3,3] + 2[3,2,1] + [2,2,2].
	terms := libsym.TensorPartitions(3, symalg.Partition{2, 1}, symalg.Partition{2, 1})
	byShape := make(map[string]int)
	for _, p := range terms {
		byShape[p.String()]++
	}
	if byShape["[3, 2, 1]"] != 2 {
		t.Fatalf("[3, 2, 1] should carry multiplicity 2, got %d (all: %v)", byShape["[3, 2, 1]"], byShape)
	}
}

func TestTensorDimensionBalance(t *testing.T) {
	cases := []struct {
		n    int
		p, q symalg.Partition
	}{
		{2, symalg.Partition{1}, symalg.Partition{1}},
		{3, symalg.Partition{2}, symalg.Partition{2}},
		{3, symalg.Partition{2, 1}, symalg.Partition{1}},
		{3, symalg.Partition{2, 1}, symalg.Partition{2, 1}},
		{4, symalg.Partition{2, 1}, symalg.Partition{1, 1}},
	}
	for _, c := range cases {
		sum := int64(0)
		for _, term := range libsym.TensorPartitions(c.n, c.p, c.q) {
			sum += term.DimGL(c.n)
		}
		if want := c.p.DimGL(c.n) * c.q.DimGL(c.n); sum != want {
			t.Fatalf("GL(%d) %v x %v: term dimensions total %d, want %d", c.n, c.p, c.q, sum, want)
		}
	}
}

func TestTensorCommutes(t *testing.T) {
	a := libsym.TensorPartitions(3, symalg.Partition{2, 1}, symalg.Partition{2})
	b := libsym.TensorPartitions(3, symalg.Partition{2}, symalg.Partition{2, 1})
	if !equalShapes(sortedShapes(a), sortedShapes(b)) {
		t.Fatalf("tensor should commute: %v vs %v", a, b)
	}
}

func TestTensorEmptyFactor(t *testing.T) {
	terms := libsym.TensorPartitions(3, symalg.Partition{2, 1}, symalg.Partition{})
	if len(terms) != 1 || !terms[0].Equal(symalg.Partition{2, 1}) {
		t.Fatalf("tensoring with the trivial module gave %v", terms)
	}
}
