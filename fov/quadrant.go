package fov

import "github.com/hupe1980/sightline/morton"

// Quadrant is one of the four cardinal wedges scanned around the origin.
type Quadrant int

const (
	North Quadrant = iota
	East
	South
	West
)

func (q Quadrant) String() string {
	switch q {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// transform maps a (depth, col) pair local to q onto the world grid.
func (q Quadrant) transform(origin morton.Point, depth, col int64) morton.Point {
	switch q {
	case North:
		return morton.Pt(origin.X+col, origin.Y-depth)
	case South:
		return morton.Pt(origin.X+col, origin.Y+depth)
	case East:
		return morton.Pt(origin.X+depth, origin.Y+col)
	default:
		return morton.Pt(origin.X-depth, origin.Y+col)
	}
}
