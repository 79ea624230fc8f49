package symalg_test

import (
	"testing"

	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

func TestPartitionValidity(t *testing.T) {
	valid := []symalg.Partition{
		{},
		{1},
		{4, 3, 3},
		{2, 2, 1, 1},
	}
	for _, p := range valid {
		if !p.IsValid() {
			t.Fatalf("%v should be valid", p)
		}
	}

	invalid := []symalg.Partition{
		{0},
		{-1},
		{1, 2},
		{3, 1, 2},
		{2, 0},
	}
	for _, p := range invalid {
		if p.IsValid() {
			t.Fatalf("%v should be invalid", p)
		}
	}
}

func TestPartitionCompare(t *testing.T) {
	ordered := []symalg.Partition{
		{},
		{1},
		{1, 1},
		{2},
		{2, 1},
		{3},
	}
	for i, p := range ordered {
		for j, q := range ordered {
			cmp := p.Compare(q)
			switch {
			case i < j && cmp >= 0:
				t.Fatalf("%v should order below %v (got %d)", p, q, cmp)
			case i > j && cmp <= 0:
				t.Fatalf("%v should order above %v (got %d)", p, q, cmp)
			case i == j && cmp != 0:
				t.Fatalf("%v should equal itself (got %d)", p, cmp)
			}
		}
	}
}

func TestHighestWeight(t *testing.T) {
	cases := []struct {
		part symalg.Partition
		want string
	}{
		{symalg.Partition{}, ""},
		{symalg.Partition{1}, "1"},
		{symalg.Partition{2}, "11"},
		{symalg.Partition{1, 1}, "12"},
		{symalg.Partition{2, 1}, "112"},
		{symalg.Partition{3, 2, 1}, "112233"},
	}
	for _, c := range cases {
		w := c.part.HighestWeight()
		if w.String() != c.want {
			t.Fatalf("HighestWeight(%v) = %q, want %q", c.part, w.String(), c.want)
		}
		if len(w) != c.part.NumCells() {
			t.Fatalf("HighestWeight(%v) has %d letters, want %d cells", c.part, len(w), c.part.NumCells())
		}
	}
}

func TestPartitionString(t *testing.T) {
	if s := (symalg.Partition{4, 3, 3}).String(); s != "[4, 3, 3]" {
		t.Fatalf("got %q", s)
	}
	if s := (symalg.Partition{}).String(); s != "[]" {
		t.Fatalf("got %q", s)
	}
}

func TestDimGL(t *testing.T) {
	cases := []struct {
		n    int
		part symalg.Partition
		want int64
	}{
		{3, symalg.Partition{}, 1},
		{3, symalg.Partition{1}, 3},
		{2, symalg.Partition{1, 1}, 1},
		{3, symalg.Partition{2}, 6},
		{3, symalg.Partition{2, 1}, 8},
		{3, symalg.Partition{2, 2}, 6},
		{3, symalg.Partition{3, 1}, 15},
		{3, symalg.Partition{1, 1, 1}, 1},
		{4, symalg.Partition{2, 1}, 20},
	}
	for _, c := range cases {
		if got := c.part.DimGL(c.n); got != c.want {
			t.Fatalf("DimGL(%d, %v) = %d, want %d", c.n, c.part, got, c.want)
		}
	}
}

func TestDimSym(t *testing.T) {
	cases := []struct {
		part symalg.Partition
		want int64
	}{
		{symalg.Partition{}, 1},
		{symalg.Partition{1}, 1},
		{symalg.Partition{4}, 1},
		{symalg.Partition{2, 1}, 2},
		{symalg.Partition{2, 2}, 2},
		{symalg.Partition{3, 2}, 5},
		{symalg.Partition{3, 1, 1}, 6},
	}
	for _, c := range cases {
		if got := c.part.DimSym(); got != c.want {
			t.Fatalf("DimSym(%v) = %d, want %d", c.part, got, c.want)
		}
	}
}

func TestWordBasics(t *testing.T) {
	w := symalg.Word{1, 1, 2}
	if w.Height() != 2 {
		t.Fatalf("Height = %d", w.Height())
	}
	if (symalg.Word{}).Height() != 0 {
		t.Fatal("empty word should have height 0")
	}

	dup := w.Clone()
	dup[0] = 3
	if !w.Equal(symalg.Word{1, 1, 2}) {
		t.Fatal("Clone should be independent")
	}
	if w.Equal(dup) || w.Equal(symalg.Word{1, 1}) {
		t.Fatal("Equal should detect differences")
	}

	wide := symalg.Word{9, 10, 11}
	if wide.String() != "9.10.11" {
		t.Fatalf("wide word renders %q", wide.String())
	}
}
