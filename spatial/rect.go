package spatial

import "github.com/hupe1980/sightline/morton"

// Rect is an axis-aligned region anchored at (X, Y).
//
// Both edges are inclusive on both axes: a point p is inside when
// X <= p.X <= X+W and Y <= p.Y <= Y+H. A Rect with W == H == 2 therefore
// covers a 3x3 block of cells.
type Rect struct {
	X, Y int64
	W, H int64
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p morton.Point) bool {
	return r.X <= p.X && p.X <= r.X+r.W &&
		r.Y <= p.Y && p.Y <= r.Y+r.H
}

// keyRange returns the Morton keys of the lowest and highest encodable corners
// of r. Every encodable point inside r has a key in [lo, hi]; ok is false when
// r contains no encodable point.
func (r Rect) keyRange() (lo, hi uint64, ok bool) {
	minX, minY := max(r.X, 0), max(r.Y, 0)
	maxX, maxY := min(r.X+r.W, morton.MaxCoord), min(r.Y+r.H, morton.MaxCoord)
	if minX > maxX || minY > maxY {
		return 0, 0, false
	}
	return morton.MustKey(morton.Pt(minX, minY)), morton.MustKey(morton.Pt(maxX, maxY)), true
}
