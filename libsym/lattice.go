// Package libsym is the computational core of SymmetricAlgebra: crystal
// graph traversal over words, lattice-word recognition, tensor product
// decomposition, and the formal linear-combination algebra on partitions.
package libsym

import (
	"github.com/joelgibson/SymmetricAlgebra/symalg"
)

// Extend folds the letters of w over base, growing the partition one cell
// per letter under the row-building rule:
//
//   - a letter r lands on row r-1 (zero-based), which must exist or be the
//     next fresh row, and the row above must stay strictly longer.
//
// On success the grown partition is returned as a fresh value; base is never
// modified.  Failure is a normal, frequent outcome -- it is how tensor terms
// get filtered -- so it is reported as a bool, not an error.
func Extend(base symalg.Partition, w symalg.Word) (symalg.Partition, bool) {
	p := base.Clone()
	for _, c := range w {
		r := int(c)
		switch {
		case r-1 == len(p):
			p = append(p, 1)
		case r-1 > len(p):
			return nil, false // skips a row
		case r == 1:
			p[0]++
		default:
			if p[r-2] <= p[r-1] {
				return nil, false // row above would no longer be longer
			}
			p[r-1]++
		}
	}
	return p, true
}

// IsLatticeWord reports whether every prefix of w builds a valid partition
// from scratch, i.e. whether w is a highest-weight word.
func IsLatticeWord(w symalg.Word) bool {
	_, ok := Extend(nil, w)
	return ok
}

// MustPartition converts a highest-weight word back to its partition.
// Calling it with a non-lattice word is a caller defect and panics.
func MustPartition(w symalg.Word) symalg.Partition {
	p, ok := Extend(nil, w)
	if !ok {
		panic("MustPartition: not a lattice word")
	}
	return p
}
