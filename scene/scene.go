// Package scene provides an authoritative id -> position store that keeps a
// spatial index up to date by pushing only the ids that changed since the
// previous sync.
package scene

import (
	"errors"
	"iter"
	"maps"
	"sync"

	"github.com/hupe1980/sightline/morton"
	"github.com/hupe1980/sightline/spatial"
)

// Scene owns entity positions and tracks which ids are dirty.
// It is safe for concurrent use.
type Scene[ID comparable] struct {
	mu        sync.Mutex
	positions map[ID]morton.Point
	dirty     map[ID]struct{}
	cleared   bool
}

// New creates an empty scene.
func New[ID comparable]() *Scene[ID] {
	return &Scene[ID]{
		positions: make(map[ID]morton.Point),
		dirty:     make(map[ID]struct{}),
	}
}

// Set places id at pos. Positions outside the codec domain are rejected here so
// that a later Sync never fails on them.
func (s *Scene[ID]) Set(id ID, pos morton.Point) error {
	if _, err := morton.Key(pos); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if old, ok := s.positions[id]; ok && old == pos {
		return nil
	}
	s.positions[id] = pos
	s.dirty[id] = struct{}{}
	return nil
}

// Remove deletes id. Unknown ids are ignored.
func (s *Scene[ID]) Remove(id ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.positions[id]; !ok {
		return
	}
	delete(s.positions, id)
	s.dirty[id] = struct{}{}
}

// Clear removes every id. The next Sync clears the target index once instead of
// deleting ids one by one.
func (s *Scene[ID]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.positions)
	clear(s.dirty)
	s.cleared = true
}

// Get returns the authoritative position of id.
func (s *Scene[ID]) Get(id ID) (morton.Point, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.positions[id]
	return p, ok
}

// Len returns the number of ids in the scene.
func (s *Scene[ID]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.positions)
}

// Pending returns the number of writes the next Sync will issue.
func (s *Scene[ID]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.dirty)
	if s.cleared {
		n++
	}
	return n
}

// All returns a snapshot iterator over the scene's positions.
func (s *Scene[ID]) All() iter.Seq2[ID, morton.Point] {
	s.mu.Lock()
	snap := maps.Clone(s.positions)
	s.mu.Unlock()

	return maps.All(snap)
}

// Sync implements spatial.Source. Ids whose write fails stay dirty.
func (s *Scene[ID]) Sync(w spatial.Writer[ID]) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cleared {
		w.Clear()
		s.cleared = false
	}

	var errs []error
	for id := range s.dirty {
		if p, ok := s.positions[id]; ok {
			if err := w.Set(id, p); err != nil {
				errs = append(errs, err)
				continue
			}
		} else {
			w.Delete(id)
		}
		delete(s.dirty, id)
	}
	return errors.Join(errs...)
}

var _ spatial.Source[int] = (*Scene[int])(nil)
