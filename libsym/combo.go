package libsym

import (
	"strconv"
	"strings"

	"github.com/emirpasic/gods/trees/redblacktree"

	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// LinCombo is a formal Z-linear combination of partitions: a sparse vector
// over the free abelian group on Partition.  Terms live in a red-black tree
// ordered descending-lexicographically, so iteration and String() are always
// canonical.  Zero-weight terms are removed as they arise.
//
// Every operation returns a fresh, independently owned value.
type LinCombo struct {
	terms *redblacktree.Tree
}

// Descending lexicographic order: [3] before [2, 1] before [1, 1, 1].
func comparePartitionsDesc(a, b interface{}) int {
	return b.(symalg.Partition).Compare(a.(symalg.Partition))
}

// NewLinCombo returns the empty (zero) combination.
func NewLinCombo() *LinCombo {
	return &LinCombo{
		terms: redblacktree.NewWith(comparePartitionsDesc),
	}
}

// One returns the multiplicative identity: the empty partition with weight 1.
func One() *LinCombo {
	lc := NewLinCombo()
	lc.AddTerm(symalg.Partition{}, 1)
	return lc
}

// Scalar returns k times the multiplicative identity.
func Scalar(k int64) *LinCombo {
	lc := NewLinCombo()
	lc.AddTerm(symalg.Partition{}, k)
	return lc
}

// AddTerm accumulates weight onto the term for p, cloning p so lc owns its
// keys outright.
func (lc *LinCombo) AddTerm(p symalg.Partition, weight int64) {
	if weight == 0 {
		return
	}
	if have, found := lc.terms.Get(p); found {
		sum := have.(int64) + weight
		if sum == 0 {
			lc.terms.Remove(p)
		} else {
			lc.terms.Put(p, sum)
		}
		return
	}
	lc.terms.Put(p.Clone(), weight)
}

// Weight returns the multiplicity of p in lc (0 if absent).
func (lc *LinCombo) Weight(p symalg.Partition) int64 {
	if have, found := lc.terms.Get(p); found {
		return have.(int64)
	}
	return 0
}

// NumTerms returns the number of nonzero terms.
func (lc *LinCombo) NumTerms() int {
	return lc.terms.Size()
}

// Each calls fn on every term in canonical (descending) order until fn
// returns false.
func (lc *LinCombo) Each(fn func(p symalg.Partition, weight int64) bool) {
	it := lc.terms.Iterator()
	for it.Next() {
		if !fn(it.Key().(symalg.Partition), it.Value().(int64)) {
			return
		}
	}
}

// Clone returns a deep copy of lc.
func (lc *LinCombo) Clone() *LinCombo {
	out := NewLinCombo()
	lc.Each(func(p symalg.Partition, weight int64) bool {
		out.AddTerm(p, weight)
		return true
	})
	return out
}

// Plus returns lc + other.
func (lc *LinCombo) Plus(other *LinCombo) *LinCombo {
	out := lc.Clone()
	other.Each(func(p symalg.Partition, weight int64) bool {
		out.AddTerm(p, weight)
		return true
	})
	return out
}

// Minus returns lc - other.
func (lc *LinCombo) Minus(other *LinCombo) *LinCombo {
	out := lc.Clone()
	other.Each(func(p symalg.Partition, weight int64) bool {
		out.AddTerm(p, -weight)
		return true
	})
	return out
}

// Scale returns k * lc.
func (lc *LinCombo) Scale(k int64) *LinCombo {
	out := NewLinCombo()
	if k == 0 {
		return out
	}
	lc.Each(func(p symalg.Partition, weight int64) bool {
		out.AddTerm(p, k*weight)
		return true
	})
	return out
}

// Normalize drops any zero-weight terms.  Terms are kept normalized as they
// are built, so normalizing an already-normalized combination is a no-op;
// the pass exists so externally assembled trees can be repaired.
func (lc *LinCombo) Normalize() *LinCombo {
	drop := make([]symalg.Partition, 0)
	lc.Each(func(p symalg.Partition, weight int64) bool {
		if weight == 0 {
			drop = append(drop, p)
		}
		return true
	})
	for _, p := range drop {
		lc.terms.Remove(p)
	}
	return lc
}

// String renders lc in canonical order, e.g. "[3] + 2[2, 1] - [1, 1, 1]".
// The empty-partition term renders as a bare integer (it is the
// multiplicative identity, not the shape "[]"), and the zero combination
// renders as "0".
func (lc *LinCombo) String() string {
	if lc.NumTerms() == 0 {
		return "0"
	}

	b := strings.Builder{}
	b.Grow(16 * lc.NumTerms())
	first := true
	lc.Each(func(p symalg.Partition, weight int64) bool {
		mag := weight
		if weight < 0 {
			mag = -weight
		}
		switch {
		case first && weight < 0:
			b.WriteByte('-')
		case !first && weight < 0:
			b.WriteString(" - ")
		case !first:
			b.WriteString(" + ")
		}
		first = false

		if len(p) == 0 {
			b.WriteString(strconv.FormatInt(mag, 10))
			return true
		}
		if mag != 1 {
			b.WriteString(strconv.FormatInt(mag, 10))
		}
		b.WriteString(p.String())
		return true
	})
	return b.String()
}

// Algebra fixes the ambient ring for products of partitions.
//
// Rank n > 0 selects GL(n): shapes with more than n rows are the zero
// module and vanish from all results.  Rank 0 selects the symmetric-algebra
// ("stable") regime, where each pairwise product runs in a GL(m) large
// enough that no term is ever truncated.
type Algebra struct {
	Rank int
}

// rankFor picks the GL rank a single pairwise product p (x) q runs under.
func (alg *Algebra) rankFor(p, q symalg.Partition) int {
	if alg.Rank > 0 {
		return alg.Rank
	}
	// Every term of p (x) q has at most len(p)+len(q) rows.
	n := len(p) + len(q)
	if n < 1 {
		n = 1
	}
	return n
}

// admits reports whether p is a nonzero module in this algebra.
func (alg *Algebra) admits(p symalg.Partition) bool {
	return alg.Rank <= 0 || len(p) <= alg.Rank
}

// Term returns the combination holding just p, or zero if p vanishes at
// this rank.
func (alg *Algebra) Term(p symalg.Partition) *LinCombo {
	lc := NewLinCombo()
	if alg.admits(p) {
		lc.AddTerm(p, 1)
	}
	return lc
}

// Tensor decomposes p (x) q at this algebra's rank.  Duplicates in the
// result carry multiplicity one each.
func (alg *Algebra) Tensor(p, q symalg.Partition) []symalg.Partition {
	if !alg.admits(p) || !alg.admits(q) {
		return nil
	}
	return TensorPartitions(alg.rankFor(p, q), p, q)
}

// Mul returns the product a * b, delegating each pairwise partition product
// to the crystal engine and aggregating multiplicities.
func (alg *Algebra) Mul(a, b *LinCombo) *LinCombo {
	out := NewLinCombo()
	a.Each(func(p symalg.Partition, wa int64) bool {
		b.Each(func(q symalg.Partition, wb int64) bool {
			for _, term := range alg.Tensor(p, q) {
				if alg.admits(term) {
					out.AddTerm(term, wa*wb)
				}
			}
			return true
		})
		return true
	})
	return out
}

// Dim returns the total dimension of a: the weighted sum over its terms of
// each shape's dimension, GL(Rank) for a positive rank and symmetric-group
// otherwise.
func (alg *Algebra) Dim(a *LinCombo) int64 {
	total := int64(0)
	a.Each(func(p symalg.Partition, weight int64) bool {
		if alg.Rank > 0 {
			total += weight * p.DimGL(alg.Rank)
		} else {
			total += weight * p.DimSym()
		}
		return true
	})
	return total
}

// Pow returns a raised to the k-th power, k >= 0.
func (alg *Algebra) Pow(a *LinCombo, k int) (*LinCombo, error) {
	if k < 0 {
		return nil, symalg.ErrBadExponent
	}
	out := One()
	for i := 0; i < k; i++ {
		out = alg.Mul(out, a)
	}
	return out, nil
}
