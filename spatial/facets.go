package spatial

import (
	"iter"

	"github.com/hupe1980/sightline/morton"
)

// Writer mutates an index.
type Writer[ID comparable] interface {
	// Set inserts id at pos, moving it if it was already present.
	Set(id ID, pos morton.Point) error
	// Delete removes id. Unknown ids are ignored.
	Delete(id ID)
	// Clear removes every id.
	Clear()
}

// Reader inspects an index by id.
type Reader[ID comparable] interface {
	Len() int
	Has(id ID) bool
	Get(id ID) (morton.Point, bool)
	Entries() iter.Seq2[ID, morton.Point]
}

// Querier inspects an index by position.
type Querier[ID comparable] interface {
	At(pos morton.Point) []ID
	Within(r Rect) iter.Seq2[morton.Point, []ID]
}

// View is the read side of an index.
type View[ID comparable] interface {
	Reader[ID]
	Querier[ID]
}

// Source is an authoritative position store that feeds an index.
type Source[ID comparable] interface {
	// Sync pushes pending position changes through w.
	Sync(w Writer[ID]) error
}

// SourceFunc adapts a plain function to the Source interface.
type SourceFunc[ID comparable] func(w Writer[ID]) error

// Sync calls f(w).
func (f SourceFunc[ID]) Sync(w Writer[ID]) error {
	return f(w)
}

var (
	_ Writer[int]  = (*Index[int])(nil)
	_ Reader[int]  = (*Index[int])(nil)
	_ Querier[int] = (*Index[int])(nil)
	_ View[int]    = (*Index[int])(nil)
	_ Reader[int]  = (*ReadOnly[int])(nil)
	_ Querier[int] = (*ReadOnly[int])(nil)
)
