package spatial

import (
	"iter"

	"github.com/hupe1980/sightline/morton"
)

// ReadOnly is a read and query view over an Index fed by a Source.
//
// Every read first calls Source.Sync with the index's Writer facet, so
// the results always reflect the Source's latest state. Sync errors are kept
// and reported by Err; reads then proceed against the last good contents.
type ReadOnly[ID comparable] struct {
	index  *Index[ID]
	source Source[ID]
	err    error
}

// NewReadOnly creates a ReadOnly over a fresh Index. init receives the Writer
// facet once and returns the Source that keeps it up to date.
func NewReadOnly[ID comparable](init func(w Writer[ID]) Source[ID]) *ReadOnly[ID] {
	idx := New[ID]()
	return &ReadOnly[ID]{
		index:  idx,
		source: init(idx),
	}
}

// Freeze wraps an existing index.
func Freeze[ID comparable](idx *Index[ID], src Source[ID]) *ReadOnly[ID] {
	return &ReadOnly[ID]{index: idx, source: src}
}

// Sync asks the source to push pending changes and returns its error.
func (ro *ReadOnly[ID]) Sync() error {
	if ro.source == nil {
		return nil
	}
	ro.err = ro.source.Sync(ro.index)
	return ro.err
}

// Err returns the error from the most recent sync, if any.
func (ro *ReadOnly[ID]) Err() error {
	return ro.err
}

// Current returns the index as of the most recent sync. Reads through it do
// not sync, so a batch of reads sees one consistent state.
func (ro *ReadOnly[ID]) Current() View[ID] {
	return ro.index
}

// Len returns the number of tracked ids.
func (ro *ReadOnly[ID]) Len() int {
	_ = ro.Sync()
	return ro.index.Len()
}

// Cells returns the number of distinct occupied positions.
func (ro *ReadOnly[ID]) Cells() int {
	_ = ro.Sync()
	return ro.index.Cells()
}

// Has reports whether id is tracked.
func (ro *ReadOnly[ID]) Has(id ID) bool {
	_ = ro.Sync()
	return ro.index.Has(id)
}

// Get returns the position of id.
func (ro *ReadOnly[ID]) Get(id ID) (morton.Point, bool) {
	_ = ro.Sync()
	return ro.index.Get(id)
}

// Entries iterates over every (id, position) pair.
func (ro *ReadOnly[ID]) Entries() iter.Seq2[ID, morton.Point] {
	_ = ro.Sync()
	return ro.index.Entries()
}

// At returns the ids positioned exactly at pos.
func (ro *ReadOnly[ID]) At(pos morton.Point) []ID {
	_ = ro.Sync()
	return ro.index.At(pos)
}

// Within iterates over the occupied positions inside r.
func (ro *ReadOnly[ID]) Within(r Rect) iter.Seq2[morton.Point, []ID] {
	_ = ro.Sync()
	return ro.index.Within(r)
}
