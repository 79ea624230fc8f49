package libsym

import (
	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// LowerTarget locates the letter the crystal lowering operator f_i would
// raise from i to i+1, scanning w once left to right.
//
// Every i is an opening bracket and every i+1 a closing bracket, closers
// matching the most recent unmatched opener.  The target is the left-most
// never-closed opener.  Only the bottom-most unmatched position is needed,
// so a running balance and one saved index replace an explicit stack.
//
// If every opener is matched (or none exist) the edge does not exist:
// applying f_i would kill the vertex, and (0, false) is returned.
//
// LowerTarget is pure: it reports where a mutation would occur and never
// touches w.  Applying the edge means setting w[target] = i+1.
func LowerTarget(i int, w symalg.Word) (int, bool) {
	opener := symalg.Letter(i)
	closer := symalg.Letter(i + 1)

	pos := -1
	open := 0
	for j, c := range w {
		switch c {
		case opener:
			if open == 0 {
				pos = j
			}
			open++
		case closer:
			if open > 0 {
				open--
			}
		}
	}
	if open == 0 {
		return 0, false
	}
	return pos, true
}

// Lower applies f_i to w in place, returning false if the edge does not
// exist.  Convenience wrapper over LowerTarget; the walker inlines the same
// two steps so it can undo them.
func Lower(i int, w symalg.Word) bool {
	j, ok := LowerTarget(i, w)
	if !ok {
		return false
	}
	w[j] = symalg.Letter(i + 1)
	return true
}
