package visited

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Set tracks visited Morton keys.
//
// Keys are sparse 64-bit values, so the set is a compressed bitmap rather than
// a dense bitset sized by the key universe.
type Set struct {
	bits *roaring64.Bitmap
}

// New creates an empty visited set.
func New() *Set {
	return &Set{bits: roaring64.New()}
}

// Visit marks key as visited. It reports whether the key was newly added.
func (v *Set) Visit(key uint64) bool {
	return v.bits.CheckedAdd(key)
}

// Len returns the number of visited keys.
func (v *Set) Len() int {
	return int(v.bits.GetCardinality())
}
