package symalg

import (
	"strings"
)

// Letter is a one-based symbol of a crystal alphabet (1..n for GL(n)).
type Letter byte

// Word is an ordered sequence of Letters.
//
// A Word is a vertex of a crystal graph.  During a crystal walk the engine
// mutates a single working Word in place, so a Word handed to a Visitor is
// only valid for the duration of that call -- retain a Clone(), never the
// Word itself.
type Word []Letter

// Visitor receives each Word discovered by a crystal walk.
// Returning false stops the walk.
//
// The Word passed in is a transient view into live walker state.
type Visitor func(w Word) bool

// VertexSet tracks which Words a crystal walk has already visited.
//
// TryAdd adds the given Word if it is not already present.
// If an equal Word was added before, TryAdd() has no effect and returns false.
// After one or more calls to TryAdd(), call Close() for cleanup.
type VertexSet interface {
	TryAdd(w Word) bool
	Close()
}

// Height returns the largest Letter in w (0 for the empty Word).
func (w Word) Height() Letter {
	h := Letter(0)
	for _, c := range w {
		if c > h {
			h = c
		}
	}
	return h
}

// Clone returns an independently owned copy of w.
func (w Word) Clone() Word {
	return append(Word{}, w...)
}

// Equal returns whether w and other have identical letters.
func (w Word) Equal(other Word) bool {
	if len(w) != len(other) {
		return false
	}
	for i, c := range w {
		if c != other[i] {
			return false
		}
	}
	return true
}

// String prints w as a run of digits, e.g. "1123".
// Letters above 9 are dot-separated to stay unambiguous.
func (w Word) String() string {
	b := strings.Builder{}
	b.Grow(2 * len(w))
	wide := w.Height() > 9
	for i, c := range w {
		if wide && i > 0 {
			b.WriteByte('.')
		}
		if c > 9 {
			b.WriteByte('0' + byte(c/10))
		}
		b.WriteByte('0' + byte(c%10))
	}
	return b.String()
}
