package symalg

import (
	"math"
	"strconv"
	"strings"
)

// Partition is a finite weakly-decreasing sequence of strictly positive
// integers.  The empty Partition is the valid "zero" shape.
//
// A Partition names an irreducible representation: of GL(n) when it has at
// most n rows, and of the symmetric group on NumCells() symbols.
type Partition []int

// IsValid reports whether p is weakly decreasing with all rows >= 1.
func (p Partition) IsValid() bool {
	for i, row := range p {
		if row < 1 {
			return false
		}
		if i > 0 && p[i-1] < row {
			return false
		}
	}
	return true
}

// Clone returns an independently owned copy of p.
func (p Partition) Clone() Partition {
	return append(Partition{}, p...)
}

// Equal returns whether p and q are the same shape.
func (p Partition) Equal(q Partition) bool {
	return p.Compare(q) == 0
}

// Compare orders partitions lexicographically by row lengths.
// If one is a prefix of the other, the longer partition is the greater.
// Returns <0 if p < q, 0 if equal, >0 if p > q.
func (p Partition) Compare(q Partition) int {
	for i, row := range p {
		if i >= len(q) {
			return 1
		}
		if d := row - q[i]; d != 0 {
			return d
		}
	}
	if len(p) < len(q) {
		return -1
	}
	return 0
}

// NumCells returns the total cell count of p's Young diagram.
func (p Partition) NumCells() int {
	cells := 0
	for _, row := range p {
		cells += row
	}
	return cells
}

// HighestWeight returns the highest-weight Word of p's crystal: row i of the
// diagram contributes p[i] copies of the letter i+1, rows in increasing order
// so the smaller letters come first.  E.g. [2, 1] => 112.
func (p Partition) HighestWeight() Word {
	w := make(Word, 0, p.NumCells())
	for i, row := range p {
		for j := 0; j < row; j++ {
			w = append(w, Letter(i+1))
		}
	}
	return w
}

// String renders p as a bracketed weakly-decreasing list, e.g. "[4, 3, 3]".
func (p Partition) String() string {
	b := strings.Builder{}
	b.Grow(4 * len(p))
	b.WriteByte('[')
	for i, row := range p {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(row))
	}
	b.WriteByte(']')
	return b.String()
}

// hookLength returns the hook length of cell (i, j): the arm to the right,
// the leg below, and the cell itself.
func (p Partition) hookLength(i, j int) int {
	leg := 0
	for r := i + 1; r < len(p); r++ {
		if p[r] > j {
			leg++
		}
	}
	return leg + p[i] - j
}

// DimGL returns the dimension of the GL(n) irreducible with shape p, via the
// product formula dim = prod (n + j - i) / hook(i, j) over all cells.
//
// The product is accumulated in floating point and rounded at the end; the
// true value is an integer, so rounding recovers exactness.
func (p Partition) DimGL(n int) int64 {
	dim := float64(1)
	for i, row := range p {
		for j := 0; j < row; j++ {
			dim *= float64(n+j-i) / float64(p.hookLength(i, j))
		}
	}
	return int64(math.Round(dim))
}

// DimSym returns the dimension of the symmetric-group irreducible with shape
// p (the number of standard Young tableaux), via the hook length formula.
func (p Partition) DimSym() int64 {
	dim := float64(1)
	rank := 0
	for i, row := range p {
		for j := 0; j < row; j++ {
			rank++
			dim *= float64(rank) / float64(p.hookLength(i, j))
		}
	}
	return int64(math.Round(dim))
}
