package morton

import (
	"fmt"
	"math"
)

// MaxCoord is the largest coordinate value that can be encoded on either axis.
const MaxCoord = 1<<32 - 1

// Point is an integer grid position.
type Point struct {
	X int64
	Y int64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int64) Point {
	return Point{X: x, Y: y}
}

// FromFloat floors x and y onto the integer grid. NaN, infinities and
// magnitudes beyond 2^53 map to -1 so that Key rejects them.
func FromFloat(x, y float64) Point {
	return Point{X: floorCoord(x), Y: floorCoord(y)}
}

func floorCoord(v float64) int64 {
	f := math.Floor(v)
	if math.IsNaN(f) || math.Abs(f) > 1<<53 {
		return -1
	}
	return int64(f)
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Valid reports whether p lies inside the encodable domain.
func (p Point) Valid() bool {
	return inRange(p.X) && inRange(p.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func inRange(v int64) bool {
	return v >= 0 && v <= MaxCoord
}

// Key interleaves the bits of p into a Morton key.
// It returns a *RangeError if either coordinate lies outside [0, MaxCoord].
func Key(p Point) (uint64, error) {
	if !inRange(p.X) {
		return 0, &RangeError{Axis: "x", Value: p.X}
	}
	if !inRange(p.Y) {
		return 0, &RangeError{Axis: "y", Value: p.Y}
	}
	return spread(uint64(p.X)) | spread(uint64(p.Y))<<1, nil
}

// MustKey is like Key but panics if p is out of range.
func MustKey(p Point) uint64 {
	k, err := Key(p)
	if err != nil {
		panic(err)
	}
	return k
}

// PointOf decodes a Morton key back into its point.
func PointOf(key uint64) Point {
	return Point{
		X: int64(compact(key)),
		Y: int64(compact(key >> 1)),
	}
}

// spread moves bit i of the low 32 bits of v to bit 2i.
func spread(v uint64) uint64 {
	v &= 0x00000000FFFFFFFF
	v = (v | v<<16) & 0x0000FFFF0000FFFF
	v = (v | v<<8) & 0x00FF00FF00FF00FF
	v = (v | v<<4) & 0x0F0F0F0F0F0F0F0F
	v = (v | v<<2) & 0x3333333333333333
	v = (v | v<<1) & 0x5555555555555555
	return v
}

// compact is the inverse of spread: it gathers the even bits of v.
func compact(v uint64) uint64 {
	v &= 0x5555555555555555
	v = (v | v>>1) & 0x3333333333333333
	v = (v | v>>2) & 0x0F0F0F0F0F0F0F0F
	v = (v | v>>4) & 0x00FF00FF00FF00FF
	v = (v | v>>8) & 0x0000FFFF0000FFFF
	v = (v | v>>16) & 0x00000000FFFFFFFF
	return v
}
