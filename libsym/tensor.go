package libsym

import (
	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// ExpandInGL returns every word of the GL(n) crystal generated from start,
// i.e. all words reachable from it by lowering operators.  For
// start = p.HighestWeight() the result has exactly p.DimGL(n) entries when
// p has at most n rows.
func ExpandInGL(n int, start symalg.Word) []symalg.Word {
	words := make([]symalg.Word, 0, 16)
	Walk(n, start, func(w symalg.Word) bool {
		words = append(words, w.Clone())
		return true
	})
	return words
}

// TensorPartitions decomposes the GL(n) tensor product of the irreducibles
// with shapes p and q.  Each returned Partition is one term of multiplicity
// one; a shape appearing with multiplicity m appears m times.  Callers
// aggregate (see Algebra.Mul).
//
// The factor whose crystal is actually walked is the one with the smaller
// GL(n) dimension -- the result set is symmetric in p and q, only the
// traversal cost differs.  Each visited word w of that crystal contributes
// the term Extend(other, w) when the concatenation stays a lattice word.
//
// Both shapes must have at most n rows (caller defect otherwise).
func TensorPartitions(n int, p, q symalg.Partition) []symalg.Partition {
	if len(p) > n || len(q) > n {
		panic("TensorPartitions: shape has more rows than the rank")
	}

	if p.DimGL(n) < q.DimGL(n) {
		p, q = q, p
	}

	terms := make([]symalg.Partition, 0, 8)
	Walk(n, q.HighestWeight(), func(w symalg.Word) bool {
		if term, ok := Extend(p, w); ok {
			terms = append(terms, term)
		}
		return true
	})
	return terms
}
