// Package spatial provides a Morton-keyed point index over entity ids.
//
// An Index keeps a forward map (key -> set of ids) and a backward map
// (id -> key) in lock step. Its API is split into three facets:
//
//   - Writer: Set, Delete, Clear
//   - Reader: Len, Has, Get, Entries
//   - Querier: At, Within
//
// ReadOnly exposes the Reader and Querier facets of an index whose contents
// are owned by an external Source. Every read first lets the Source push its
// pending changes through the Writer facet:
//
//	idx := spatial.NewReadOnly(func(w spatial.Writer[string]) spatial.Source[string] {
//	    return myScene // implements Sync(w Writer[string]) error
//	})
//	for p, ids := range idx.Within(spatial.Rect{X: 0, Y: 0, W: 40, H: 25}) {
//	    draw(p, ids)
//	}
//
// # Concurrency
//
// Index and ReadOnly are not safe for concurrent use. Sources run
// synchronously inside read calls and must not call back into the ReadOnly
// that invoked them.
package spatial
