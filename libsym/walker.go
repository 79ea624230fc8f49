package libsym

import (
	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// walkStep records one edge application on the walker's working word:
// which index was rewritten to descend, and which operator to resume
// trying once that edge is undone.
type walkStep struct {
	modified int
	resume   int
}

// Walk enumerates, exactly once each, every word reachable from start by any
// finite sequence of lowering operators f_1..f_{n-1}, invoking onVertex on
// each (start included, in DFS preorder).  onVertex returning false stops
// the walk.
//
// The walk keeps a single working word and an explicit backtracking stack,
// so auxiliary memory is O(depth) plus the visited set.  Crystal graphs for
// even modest shapes have multinomial-scale vertex counts; nothing besides
// the visited set may grow with the graph.
//
// Preconditions (panic, caller defect): start is a lattice word and
// start.Height() <= n.
func Walk(n int, start symalg.Word, onVertex symalg.Visitor) {
	seen := NewWordSet()
	defer seen.Close()
	WalkWithSet(n, start, seen, onVertex)
}

// WalkWithSet is Walk with a caller-supplied visited set, letting huge
// traversals use an LSM-backed set (see NewLSMWordSet).  The set must be
// empty and is left holding every visited word; the caller closes it.
func WalkWithSet(n int, start symalg.Word, seen symalg.VertexSet, onVertex symalg.Visitor) {
	if !IsLatticeWord(start) {
		panic("crystal walk: start is not a lattice word")
	}
	if int(start.Height()) > n {
		panic("crystal walk: start height exceeds rank")
	}

	work := start.Clone()
	seen.TryAdd(work)
	if !onVertex(work) {
		return
	}

	var stack []walkStep
	nextOp := 1

	for {
		if nextOp >= n {
			// All operators tried here: undo the edge that got us to this
			// depth and resume its parent's operator sweep.
			last := len(stack) - 1
			if last < 0 {
				return
			}
			work[stack[last].modified]--
			nextOp = stack[last].resume
			stack = stack[:last]
			continue
		}

		j, ok := LowerTarget(nextOp, work)
		if !ok {
			nextOp++
			continue
		}

		// Tentatively apply f_nextOp.
		work[j] = symalg.Letter(nextOp + 1)
		if !seen.TryAdd(work) {
			// Reached before via another path; revert the single letter.
			work[j] = symalg.Letter(nextOp)
			nextOp++
			continue
		}

		if !onVertex(work) {
			return
		}
		stack = append(stack, walkStep{modified: j, resume: nextOp + 1})
		nextOp = 1
	}
}

// CountVertices walks the crystal of start in GL(n) and returns the number
// of distinct reachable words.  For start = p.HighestWeight() with at most n
// rows this equals p.DimGL(n).
func CountVertices(n int, start symalg.Word) int64 {
	count := int64(0)
	Walk(n, start, func(w symalg.Word) bool {
		count++
		return true
	})
	return count
}
