package fov

import (
	"iter"
	"slices"

	"github.com/hupe1980/sightline/internal/visited"
	"github.com/hupe1980/sightline/morton"
)

// Datum describes one cell of the world.
type Datum[T any] struct {
	Blocked bool
	At      T
}

// Query reports the cell at pos. depth is the row distance from the origin
// along the quadrant axis and may be ignored. ok is false for positions outside
// the world.
//
// A Query must be a pure function of position for the duration of a scan.
type Query[T any] func(pos morton.Point, depth int) (d Datum[T], ok bool)

// Cell is a visible position and its payload.
type Cell[T any] struct {
	Pos morton.Point
	At  T
}

type prevState int8

const (
	prevNone prevState = iota
	prevOpen
	prevBlocked
)

// Cursor is a single-use, pull-based shadowcasting traversal.
type Cursor[T any] struct {
	origin   morton.Point
	query    Query[T]
	maxDepth int64
	seen     *visited.Set

	started  bool
	done     bool
	quadrant Quadrant
	stack    []row

	// current row
	inRow   bool
	cur     row
	col     int64
	lastCol int64
	prev    prevState
	restart slope
}

// ShadowField starts a field-of-view traversal from origin. No work happens
// until the first call to Next.
func ShadowField[T any](origin morton.Point, query Query[T], opts ...Option) *Cursor[T] {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return &Cursor[T]{
		origin:   origin,
		query:    query,
		maxDepth: int64(o.maxDepth),
		seen:     visited.New(),
		quadrant: -1,
	}
}

// Collect drains a traversal into a slice.
func Collect[T any](origin morton.Point, query Query[T], opts ...Option) []Cell[T] {
	return slices.Collect(ShadowField(origin, query, opts...).All())
}

// Next returns the next visible cell. ok is false once the traversal is
// exhausted.
func (c *Cursor[T]) Next() (cell Cell[T], ok bool) {
	if c.done {
		return cell, false
	}
	if !c.started {
		return c.begin()
	}

	for {
		if c.inRow {
			if c.col > c.lastCol {
				c.endRow()
				continue
			}
			col := c.col
			c.col++
			if cell, ok := c.scan(col); ok {
				return cell, true
			}
			continue
		}

		if n := len(c.stack); n > 0 {
			r := c.stack[n-1]
			c.stack = c.stack[:n-1]
			c.beginRow(r)
			continue
		}

		if !c.nextQuadrant() {
			c.finish()
			return cell, false
		}
	}
}

// All adapts the cursor to a range-over-func iterator.
func (c *Cursor[T]) All() iter.Seq[Cell[T]] {
	return func(yield func(Cell[T]) bool) {
		for {
			cell, ok := c.Next()
			if !ok || !yield(cell) {
				return
			}
		}
	}
}

// Done reports whether the traversal is exhausted.
func (c *Cursor[T]) Done() bool { return c.done }

// Quadrant returns the quadrant being scanned.
func (c *Cursor[T]) Quadrant() Quadrant { return c.quadrant }

// Depth returns the depth of the row being scanned, or 0 between rows.
func (c *Cursor[T]) Depth() int {
	if !c.inRow {
		return 0
	}
	return int(c.cur.depth)
}

// Pending returns the number of rows waiting on the current quadrant's stack.
func (c *Cursor[T]) Pending() int { return len(c.stack) }

// Seen returns the number of positions yielded so far.
func (c *Cursor[T]) Seen() int { return c.seen.Len() }

func (c *Cursor[T]) begin() (cell Cell[T], ok bool) {
	c.started = true

	d, ok := c.lookup(c.origin, 0)
	if !ok {
		c.finish()
		return cell, false
	}
	c.seen.Visit(morton.MustKey(c.origin))
	if d.Blocked {
		c.finish()
	}
	return Cell[T]{Pos: c.origin, At: d.At}, true
}

func (c *Cursor[T]) nextQuadrant() bool {
	c.quadrant++
	if c.quadrant > West {
		return false
	}
	if c.descend(0) {
		c.stack = append(c.stack, row{depth: 1, start: slopeMin, end: slopeMax})
	}
	return true
}

func (c *Cursor[T]) beginRow(r row) {
	c.inRow = true
	c.cur = r
	c.col = r.minCol()
	c.lastCol = r.maxCol()
	c.prev = prevNone
	c.restart = r.start
}

func (c *Cursor[T]) endRow() {
	c.inRow = false
	if c.prev == prevOpen && c.descend(c.cur.depth) {
		c.stack = append(c.stack, row{depth: c.cur.depth + 1, start: c.restart, end: c.cur.end})
	}
}

// scan processes one column of the current row.
func (c *Cursor[T]) scan(col int64) (cell Cell[T], ok bool) {
	depth := c.cur.depth
	pos := c.quadrant.transform(c.origin, depth, col)

	d, ok := c.lookup(pos, depth)
	if !ok {
		return cell, false
	}

	emit := false
	if d.Blocked {
		emit = c.visit(pos)
		if c.prev == prevOpen && c.descend(depth) {
			c.stack = append(c.stack, row{depth: depth + 1, start: c.restart, end: tileSlope(depth, col)})
		}
		c.prev = prevBlocked
	} else {
		if symmetric(depth, col, c.restart, c.cur.end) {
			emit = c.visit(pos)
		}
		if c.prev == prevBlocked {
			c.restart = tileSlope(depth, col)
		}
		c.prev = prevOpen
	}

	if !emit {
		return cell, false
	}
	return Cell[T]{Pos: pos, At: d.At}, true
}

// lookup queries pos. Positions the codec cannot key are outside every world.
func (c *Cursor[T]) lookup(pos morton.Point, depth int64) (Datum[T], bool) {
	if !pos.Valid() {
		return Datum[T]{}, false
	}
	return c.query(pos, int(depth))
}

func (c *Cursor[T]) visit(pos morton.Point) bool {
	return c.seen.Visit(morton.MustKey(pos))
}

// descend reports whether a row below depth may be scanned.
func (c *Cursor[T]) descend(depth int64) bool {
	return c.maxDepth < 0 || depth < c.maxDepth
}

func (c *Cursor[T]) finish() {
	c.done = true
	c.inRow = false
	c.stack = nil
}
