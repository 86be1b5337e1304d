package fov

// slope is the exact rational num/den with den > 0.
type slope struct {
	num int64
	den int64
}

var (
	slopeMin = slope{num: -1, den: 1}
	slopeMax = slope{num: 1, den: 1}
)

// tileSlope is the slope of the near edge of the tile at (depth, col):
// (2*col - 1) / (2*depth).
func tileSlope(depth, col int64) slope {
	return slope{num: 2*col - 1, den: 2 * depth}
}

// row is one pending row of a quadrant scan.
type row struct {
	depth int64
	start slope
	end   slope
}

// minCol is floor(depth*start + 1/2): a tile centred exactly on the start
// edge is included.
func (r row) minCol() int64 {
	return floorDiv(2*r.depth*r.start.num+r.start.den, 2*r.start.den)
}

// maxCol is ceil(depth*end - 1/2): a tile centred exactly on the end edge is
// included.
func (r row) maxCol() int64 {
	return ceilDiv(2*r.depth*r.end.num-r.end.den, 2*r.end.den)
}

// symmetric reports whether the centre of the tile at col lies inside
// [depth*start, depth*end].
func symmetric(depth, col int64, start, end slope) bool {
	return col*start.den >= depth*start.num && col*end.den <= depth*end.num
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func ceilDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && a > 0 {
		q++
	}
	return q
}
