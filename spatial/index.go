package spatial

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/sightline/morton"
)

// Index is a point index over entity ids.
//
// Invariants:
//   - id is in cells[k] iff keys[id] == k
//   - cells never holds an empty set
//   - occupied contains exactly the keys of cells
type Index[ID comparable] struct {
	cells    map[uint64]map[ID]struct{}
	keys     map[ID]uint64
	occupied *roaring64.Bitmap
}

// New creates an empty index.
func New[ID comparable]() *Index[ID] {
	return &Index[ID]{
		cells:    make(map[uint64]map[ID]struct{}),
		keys:     make(map[ID]uint64),
		occupied: roaring64.New(),
	}
}

// Set inserts id at pos or moves it there.
func (idx *Index[ID]) Set(id ID, pos morton.Point) error {
	key, err := morton.Key(pos)
	if err != nil {
		return fmt.Errorf("spatial: set %v: %w", id, err)
	}

	if old, ok := idx.keys[id]; ok {
		if old == key {
			return nil
		}
		idx.unlink(id, old)
	}

	set, ok := idx.cells[key]
	if !ok {
		set = make(map[ID]struct{}, 1)
		idx.cells[key] = set
		idx.occupied.Add(key)
	}
	set[id] = struct{}{}
	idx.keys[id] = key
	return nil
}

// Delete removes id from the index.
func (idx *Index[ID]) Delete(id ID) {
	key, ok := idx.keys[id]
	if !ok {
		return
	}
	idx.unlink(id, key)
	delete(idx.keys, id)
}

// Clear removes every id.
func (idx *Index[ID]) Clear() {
	clear(idx.cells)
	clear(idx.keys)
	idx.occupied.Clear()
}

func (idx *Index[ID]) unlink(id ID, key uint64) {
	set := idx.cells[key]
	delete(set, id)
	if len(set) == 0 {
		delete(idx.cells, key)
		idx.occupied.Remove(key)
	}
}

// Len returns the number of tracked ids.
func (idx *Index[ID]) Len() int {
	return len(idx.keys)
}

// Cells returns the number of distinct occupied positions.
func (idx *Index[ID]) Cells() int {
	return len(idx.cells)
}

// Has reports whether id is tracked.
func (idx *Index[ID]) Has(id ID) bool {
	_, ok := idx.keys[id]
	return ok
}

// Get returns the position of id.
func (idx *Index[ID]) Get(id ID) (morton.Point, bool) {
	key, ok := idx.keys[id]
	if !ok {
		return morton.Point{}, false
	}
	return morton.PointOf(key), true
}

// Entries iterates over every (id, position) pair in ascending key order.
// Ids sharing a position are yielded in unspecified order.
func (idx *Index[ID]) Entries() iter.Seq2[ID, morton.Point] {
	return func(yield func(ID, morton.Point) bool) {
		it := idx.occupied.Iterator()
		for it.HasNext() {
			key := it.Next()
			p := morton.PointOf(key)
			for _, id := range idx.snapshot(key) {
				if !yield(id, p) {
					return
				}
			}
		}
	}
}

// At returns the ids positioned exactly at pos.
func (idx *Index[ID]) At(pos morton.Point) []ID {
	key, err := morton.Key(pos)
	if err != nil {
		return nil
	}
	return idx.snapshot(key)
}

// Within iterates over the occupied positions inside r, in ascending key
// order, together with the ids at each position.
//
// The occupied-key bitmap is advanced to the Morton key of r's min corner and
// scanned up to the key of its max corner. Keys in that Z-range that fall
// outside r are skipped.
func (idx *Index[ID]) Within(r Rect) iter.Seq2[morton.Point, []ID] {
	return func(yield func(morton.Point, []ID) bool) {
		lo, hi, ok := r.keyRange()
		if !ok {
			return
		}
		it := idx.occupied.Iterator()
		it.AdvanceIfNeeded(lo)
		for it.HasNext() {
			key := it.Next()
			if key > hi {
				return
			}
			p := morton.PointOf(key)
			if !r.Contains(p) {
				continue
			}
			if !yield(p, idx.snapshot(key)) {
				return
			}
		}
	}
}

func (idx *Index[ID]) snapshot(key uint64) []ID {
	set, ok := idx.cells[key]
	if !ok {
		return nil
	}
	return slices.Collect(maps.Keys(set))
}
