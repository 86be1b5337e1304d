package fov

import (
	"context"
	"runtime"

	"github.com/hupe1980/sightline/morton"
	"golang.org/x/sync/errgroup"
)

// Survey computes the field of view of every origin concurrently and returns
// the cells in the same order as origins. query is shared by all scans and must
// be safe for concurrent use.
//
// The scans stop early when ctx is cancelled.
func Survey[T any](ctx context.Context, origins []morton.Point, query Query[T], opts ...Option) ([][]Cell[T], error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	limit := o.parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([][]Cell[T], len(origins))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, origin := range origins {
		g.Go(func() error {
			var cells []Cell[T]
			c := ShadowField(origin, query, opts...)
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				cell, ok := c.Next()
				if !ok {
					break
				}
				cells = append(cells, cell)
			}
			results[i] = cells
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
