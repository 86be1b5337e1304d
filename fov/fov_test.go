package fov

import (
	"context"
	"testing"

	"github.com/hupe1980/sightline/morton"
	"github.com/hupe1980/sightline/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textMap is a world built from rows of glyphs. '#' and '+' block sight,
// ' ' and anything past the end of a row is outside the world.
type textMap []string

func (m textMap) query(pos morton.Point, _ int) (Datum[rune], bool) {
	g, ok := testutil.Glyph(m, pos)
	if !ok || g == ' ' {
		return Datum[rune]{}, false
	}
	return Datum[rune]{Blocked: g == '#' || g == '+', At: g}, true
}

func visibleSet(cells []Cell[rune]) map[morton.Point]rune {
	out := make(map[morton.Point]rune, len(cells))
	for _, c := range cells {
		out[c.Pos] = c.At
	}
	return out
}

func openWorld(pos morton.Point, _ int) (Datum[struct{}], bool) {
	return Datum[struct{}]{}, true
}

func TestShadowField_OriginUnsupported(t *testing.T) {
	calls := 0
	q := func(morton.Point, int) (Datum[int], bool) {
		calls++
		return Datum[int]{}, false
	}

	cells := Collect(morton.Pt(5, 5), q)

	assert.Empty(t, cells)
	assert.Equal(t, 1, calls)
}

func TestShadowField_OriginBlocked(t *testing.T) {
	calls := 0
	q := func(pos morton.Point, _ int) (Datum[string], bool) {
		calls++
		return Datum[string]{Blocked: true, At: "rock"}, true
	}

	c := ShadowField(morton.Pt(5, 5), q)
	cell, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, Cell[string]{Pos: morton.Pt(5, 5), At: "rock"}, cell)

	_, ok = c.Next()
	assert.False(t, ok)
	assert.True(t, c.Done())
	assert.Equal(t, 1, calls)
}

func TestShadowField_MaxDepthZero(t *testing.T) {
	calls := 0
	q := func(pos morton.Point, depth int) (Datum[struct{}], bool) {
		calls++
		assert.Equal(t, 0, depth)
		return Datum[struct{}]{}, true
	}

	cells := Collect(morton.Pt(5, 5), q, WithMaxDepth(0))

	require.Len(t, cells, 1)
	assert.Equal(t, morton.Pt(5, 5), cells[0].Pos)
	assert.Equal(t, 1, calls)
}

func TestShadowField_OpenWorldIsSquare(t *testing.T) {
	for _, depth := range []int{1, 2, 3, 7} {
		cells := Collect(morton.Pt(100, 100), openWorld, WithMaxDepth(depth))

		side := 2*depth + 1
		require.Len(t, cells, side*side, "depth %d", depth)

		seen := make(map[morton.Point]bool)
		for _, c := range cells {
			assert.False(t, seen[c.Pos], "duplicate %v", c.Pos)
			seen[c.Pos] = true
			dx, dy := c.Pos.X-100, c.Pos.Y-100
			assert.LessOrEqual(t, max(dx, -dx, dy, -dy), int64(depth))
		}
	}
}

func TestShadowField_DefaultDepth(t *testing.T) {
	c := ShadowField(morton.Pt(1000, 1000), openWorld)
	n := 0
	maxSeen := 0
	for cell := range c.All() {
		n++
		d := int(max(cell.Pos.X-1000, 1000-cell.Pos.X, cell.Pos.Y-1000, 1000-cell.Pos.Y))
		maxSeen = max(maxSeen, d)
	}
	assert.Equal(t, DefaultMaxDepth, maxSeen)
	assert.Equal(t, (2*DefaultMaxDepth+1)*(2*DefaultMaxDepth+1), n)
}

func TestShadowField_ClipsAtCodecDomain(t *testing.T) {
	var invalid []morton.Point
	q := func(pos morton.Point, _ int) (Datum[struct{}], bool) {
		if !pos.Valid() {
			invalid = append(invalid, pos)
		}
		return Datum[struct{}]{}, true
	}

	cells := Collect(morton.Pt(0, 0), q, WithMaxDepth(3))

	assert.Empty(t, invalid, "query must not see unencodable positions")
	assert.Len(t, cells, 16)
}

func TestShadowField_UnboundedFiniteWorld(t *testing.T) {
	q := func(pos morton.Point, _ int) (Datum[struct{}], bool) {
		if pos.X >= 10 || pos.Y >= 10 {
			return Datum[struct{}]{}, false
		}
		return Datum[struct{}]{}, true
	}

	cells := Collect(morton.Pt(4, 6), q, WithMaxDepth(Unbounded))

	assert.Len(t, cells, 100)
}

func TestShadowField_PillarCastsShadow(t *testing.T) {
	m := textMap{
		".....",
		".....",
		"..#..",
		"..@..",
	}

	vis := visibleSet(Collect(morton.Pt(2, 3), m.query))

	assert.Contains(t, vis, morton.Pt(2, 2), "the pillar itself is seen")
	assert.NotContains(t, vis, morton.Pt(2, 1))
	assert.NotContains(t, vis, morton.Pt(2, 0))
	assert.Contains(t, vis, morton.Pt(1, 1))
	assert.Contains(t, vis, morton.Pt(3, 1))
	assert.Contains(t, vis, morton.Pt(0, 0))
	assert.Contains(t, vis, morton.Pt(4, 0))
}

func TestShadowField_DoorHidesNPC(t *testing.T) {
	closed := textMap{
		"#######",
		"#·····#",
		"#·@···+N",
		"#·····#",
		"#######",
	}
	open := textMap{
		"#######",
		"#·····#",
		"#·@···-N",
		"#·····#",
		"#######",
	}
	player, npc := morton.Pt(2, 2), morton.Pt(7, 2)

	vis := visibleSet(Collect(player, closed.query))
	assert.Equal(t, '+', vis[morton.Pt(6, 2)], "closed door is visible")
	assert.NotContains(t, vis, npc)

	vis = visibleSet(Collect(player, open.query))
	assert.Equal(t, '-', vis[morton.Pt(6, 2)])
	assert.Equal(t, 'N', vis[npc])

	// And back again.
	back := visibleSet(Collect(npc, open.query))
	assert.Equal(t, '@', back[player])
}

func TestShadowField_WallsVisibleFromInside(t *testing.T) {
	m := textMap{
		"#####",
		"#...#",
		"#...#",
		"#...#",
		"#####",
	}

	vis := visibleSet(Collect(morton.Pt(2, 2), m.query))

	assert.Len(t, vis, 25)
	for _, p := range testutil.Cells(m, '#') {
		assert.Equal(t, '#', vis[p])
	}
}

func TestShadowField_MutualVisibility(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for round := 0; round < 6; round++ {
		m := textMap(rng.WalledMap(18, 12, 0.22))
		floor := testutil.Cells(m, testutil.Floor)

		sight := make(map[morton.Point]map[morton.Point]rune, len(floor))
		for _, p := range floor {
			sight[p] = visibleSet(Collect(p, m.query))
		}

		for _, a := range floor {
			for _, b := range floor {
				_, ab := sight[a][b]
				_, ba := sight[b][a]
				if ab != ba {
					t.Fatalf("round %d: asymmetric visibility %v->%v=%v %v->%v=%v\n%s",
						round, a, b, ab, b, a, ba, joinRows(m))
				}
			}
		}
	}
}

func TestShadowField_GapsDoNotCastShadows(t *testing.T) {
	m := textMap{
		".....",
		"..  .",
		"..@..",
	}

	vis := visibleSet(Collect(morton.Pt(2, 2), m.query))

	assert.Len(t, vis, 13)
	assert.NotContains(t, vis, morton.Pt(2, 1))
	assert.NotContains(t, vis, morton.Pt(3, 1))
	for x := int64(0); x < 5; x++ {
		assert.Contains(t, vis, morton.Pt(x, 0), "cell behind the gap")
	}
}

// recursiveField is the textbook recursive form of the scan, used as a
// reference for the cursor.
func recursiveField(m textMap, origin morton.Point, maxDepth int64) map[morton.Point]rune {
	out := make(map[morton.Point]rune)
	d, ok := m.query(origin, 0)
	if !ok {
		return out
	}
	out[origin] = d.At
	if d.Blocked {
		return out
	}

	for _, q := range []Quadrant{North, East, South, West} {
		var scan func(r row)
		scan = func(r row) {
			if r.depth > maxDepth {
				return
			}
			var prev *Datum[rune]
			for col := r.minCol(); col <= r.maxCol(); col++ {
				pos := q.transform(origin, r.depth, col)
				d, ok := m.query(pos, int(r.depth))
				if !ok {
					continue
				}
				if d.Blocked || symmetric(r.depth, col, r.start, r.end) {
					out[pos] = d.At
				}
				if prev != nil && prev.Blocked && !d.Blocked {
					r.start = tileSlope(r.depth, col)
				}
				if prev != nil && !prev.Blocked && d.Blocked {
					scan(row{depth: r.depth + 1, start: r.start, end: tileSlope(r.depth, col)})
				}
				prev = &d
			}
			if prev != nil && !prev.Blocked {
				scan(row{depth: r.depth + 1, start: r.start, end: r.end})
			}
		}
		scan(row{depth: 1, start: slopeMin, end: slopeMax})
	}
	return out
}

func TestShadowField_MatchesRecursiveScan(t *testing.T) {
	rng := testutil.NewRNG(2024)

	for round := 0; round < 8; round++ {
		m := textMap(rng.WalledMap(16, 11, 0.2))
		if round%2 == 1 {
			m = textMap(rng.Punch(m, 0.15))
		}

		for _, origin := range testutil.Cells(m, testutil.Floor) {
			cells := Collect(origin, m.query, WithMaxDepth(6))
			got := visibleSet(cells)

			require.Len(t, cells, len(got), "duplicate cells from %v", origin)
			if !assert.Equal(t, recursiveField(m, origin, 6), got, "origin %v", origin) {
				t.Fatalf("round %d:\n%s", round, joinRows(m))
			}
		}
	}
}

func joinRows(m textMap) string {
	s := ""
	for _, r := range m {
		s += r + "\n"
	}
	return s
}

func TestCursor_PartialConsumptionIsDeterministic(t *testing.T) {
	rng := testutil.NewRNG(99)
	m := textMap(rng.WalledMap(30, 30, 0.15))
	origin := testutil.Cells(m, testutil.Floor)[0]

	a := ShadowField(origin, m.query)
	b := ShadowField(origin, m.query)
	n := 0
	for i := 0; i < 10; i++ {
		ca, okA := a.Next()
		cb, okB := b.Next()
		require.Equal(t, okA, okB)
		require.Equal(t, ca, cb)
		if okA {
			n++
		}
	}

	rest := visibleSet(Collect(origin, m.query))
	for range a.All() {
		n++
	}
	assert.Equal(t, len(rest), n)
	assert.True(t, a.Done())
	assert.Equal(t, n, a.Seen())

	_, ok := a.Next()
	assert.False(t, ok)
}

func TestCursor_Inspection(t *testing.T) {
	c := ShadowField(morton.Pt(50, 50), openWorld, WithMaxDepth(2))
	assert.Equal(t, 0, c.Depth())

	_, ok := c.Next() // origin
	require.True(t, ok)

	_, ok = c.Next()
	require.True(t, ok)
	assert.Equal(t, North, c.Quadrant())
	assert.Equal(t, 1, c.Depth())
	assert.Equal(t, "north", c.Quadrant().String())
}

func TestSurvey(t *testing.T) {
	rng := testutil.NewRNG(7)
	m := textMap(rng.WalledMap(16, 16, 0.2))
	origins := testutil.Cells(m, testutil.Floor)[:8]

	got, err := Survey(context.Background(), origins, m.query, WithParallelism(3), WithMaxDepth(10))
	require.NoError(t, err)
	require.Len(t, got, len(origins))

	for i, o := range origins {
		assert.Equal(t, Collect(o, m.query, WithMaxDepth(10)), got[i])
	}
}

func TestSurvey_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Survey(ctx, []morton.Point{morton.Pt(10, 10)}, openWorld)
	assert.ErrorIs(t, err, context.Canceled)
}
