package sightline

import (
	"context"
	"sync"
	"time"

	"github.com/hupe1980/sightline/morton"
	"github.com/hupe1980/sightline/scene"
	"github.com/hupe1980/sightline/spatial"
)

// Region is one occupied position returned by Within.
type Region[ID comparable] struct {
	Pos morton.Point
	IDs []ID
}

// Tracker keeps entity positions in a scene and answers spatial queries from
// an index that is synchronized with the scene on demand.
//
// Tracker is safe for concurrent use. Writes go to the scene and never touch
// the index; reads synchronize once and then read the synchronized index.
type Tracker[ID comparable] struct {
	mu    sync.Mutex // guards index
	scene *scene.Scene[ID]
	index *spatial.ReadOnly[ID]

	logger   *Logger
	metrics  MetricsCollector
	maxDepth int
}

// New creates an empty Tracker.
func New[ID comparable](optFns ...Option) *Tracker[ID] {
	opts := applyOptions(optFns)

	sc := scene.New[ID]()
	return &Tracker[ID]{
		scene:    sc,
		index:    spatial.NewReadOnly(func(spatial.Writer[ID]) spatial.Source[ID] { return sc }),
		logger:   opts.logger,
		metrics:  opts.metricsCollector,
		maxDepth: opts.maxDepth,
	}
}

// Place inserts id at pos or moves it there.
func (t *Tracker[ID]) Place(ctx context.Context, id ID, pos morton.Point) error {
	err := translateError(t.scene.Set(id, pos), pos)
	t.logger.LogPlace(ctx, id, pos, err)
	return err
}

// Remove deletes id. Unknown ids are ignored.
func (t *Tracker[ID]) Remove(ctx context.Context, id ID) {
	t.scene.Remove(id)
	t.logger.LogRemove(ctx, id)
}

// Reset removes every entity.
func (t *Tracker[ID]) Reset(ctx context.Context) {
	t.scene.Clear()
	t.logger.InfoContext(ctx, "tracker reset")
}

// Pending returns the number of scene changes not yet applied to the index.
func (t *Tracker[ID]) Pending() int {
	return t.scene.Pending()
}

// Sync applies pending scene changes to the index.
func (t *Tracker[ID]) Sync(ctx context.Context) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.syncLocked(ctx)
}

func (t *Tracker[ID]) syncLocked(ctx context.Context) error {
	applied := t.scene.Pending()
	start := time.Now()
	err := t.index.Sync()
	t.metrics.RecordSync(applied, time.Since(start), err)
	t.logger.LogSync(ctx, applied, err)
	return err
}

// Len returns the number of tracked entities.
func (t *Tracker[ID]) Len(ctx context.Context) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.syncLocked(ctx)
	return t.index.Current().Len()
}

// Position returns the indexed position of id.
func (t *Tracker[ID]) Position(ctx context.Context, id ID) (morton.Point, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.syncLocked(ctx)
	p, ok := t.index.Current().Get(id)
	if !ok {
		return morton.Point{}, ErrNotFound
	}
	return p, nil
}

// At returns the ids standing at pos.
func (t *Tracker[ID]) At(ctx context.Context, pos morton.Point) []ID {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.syncLocked(ctx)
	start := time.Now()
	ids := t.index.Current().At(pos)
	t.metrics.RecordQuery("at", len(ids), time.Since(start))
	t.logger.LogQuery(ctx, "at", len(ids))
	return ids
}

// Within returns the occupied positions inside r in ascending Morton order.
// r is inclusive on both edges.
func (t *Tracker[ID]) Within(ctx context.Context, r spatial.Rect) []Region[ID] {
	t.mu.Lock()
	defer t.mu.Unlock()

	_ = t.syncLocked(ctx)
	start := time.Now()
	var out []Region[ID]
	for p, ids := range t.index.Current().Within(r) {
		out = append(out, Region[ID]{Pos: p, IDs: ids})
	}
	t.metrics.RecordQuery("within", len(out), time.Since(start))
	t.logger.LogQuery(ctx, "within", len(out))
	return out
}
