package sightline

import (
	"context"
	"time"

	"github.com/hupe1980/sightline/fov"
	"github.com/hupe1980/sightline/morton"
)

// Sighting is a visible cell together with the entities standing on it.
type Sighting[ID comparable, T any] struct {
	Pos morton.Point
	At  T
	IDs []ID
}

// Observe computes the field of view from origin over the world described by
// query and joins every visible cell with the tracker's entities.
//
// Entities are joined against the positions as of the single sync at the
// start of the call. The tracker's max depth applies unless opts override it. The scan checks ctx
// between cells and returns the cells found so far with ctx's error.
func Observe[ID comparable, T any](ctx context.Context, t *Tracker[ID], origin morton.Point, query fov.Query[T], opts ...fov.Option) ([]Sighting[ID, T], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.syncLocked(ctx); err != nil {
		return nil, err
	}

	opts = append([]fov.Option{fov.WithMaxDepth(t.maxDepth)}, opts...)

	view := t.index.Current()
	start := time.Now()
	var out []Sighting[ID, T]
	var err error
	for cell := range fov.ShadowField(origin, query, opts...).All() {
		if err = ctx.Err(); err != nil {
			break
		}
		out = append(out, Sighting[ID, T]{
			Pos: cell.Pos,
			At:  cell.At,
			IDs: view.At(cell.Pos),
		})
	}

	t.metrics.RecordField(len(out), time.Since(start))
	t.logger.LogField(ctx, origin, len(out), err)
	return out, err
}

// Spotted returns the ids found in sightings, in sighting order.
func Spotted[ID comparable, T any](sightings []Sighting[ID, T]) []ID {
	var out []ID
	for _, s := range sightings {
		out = append(out, s.IDs...)
	}
	return out
}
