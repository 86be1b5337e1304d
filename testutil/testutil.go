package testutil

import (
	"math/rand"
	"strings"
	"sync"

	"github.com/hupe1980/sightline/morton"
)

// Map glyphs produced by WalledMap.
const (
	Wall  = '#'
	Floor = '.'
	Gap   = ' '
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a random point in the encodable domain.
func (r *RNG) Point() morton.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return morton.Pt(int64(r.rand.Uint32()), int64(r.rand.Uint32()))
}

// Points returns n random points with 0 <= X < w and 0 <= Y < h.
// Locks only once per call.
func (r *RNG) Points(n, w, h int) []morton.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]morton.Point, n)
	for i := range out {
		out[i] = morton.Pt(int64(r.rand.Intn(w)), int64(r.rand.Intn(h)))
	}
	return out
}

// WalledMap returns a w x h map enclosed by walls whose interior cells are
// walls with probability density.
func (r *RNG) WalledMap(w, h int, density float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := make([]string, h)
	var sb strings.Builder
	for y := 0; y < h; y++ {
		sb.Reset()
		for x := 0; x < w; x++ {
			border := x == 0 || y == 0 || x == w-1 || y == h-1
			if border || r.rand.Float64() < density {
				sb.WriteByte(Wall)
			} else {
				sb.WriteByte(Floor)
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

// Punch returns a copy of rows where each interior cell is replaced by Gap
// with probability density. Border cells are kept.
func (r *RNG) Punch(rows []string, density float64) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(rows))
	for y, line := range rows {
		cells := []rune(line)
		for x := range cells {
			border := x == 0 || y == 0 || x == len(cells)-1 || y == len(rows)-1
			if !border && r.rand.Float64() < density {
				cells[x] = Gap
			}
		}
		out[y] = string(cells)
	}
	return out
}

// Glyph returns the rune at p, or false if p is outside rows.
func Glyph(rows []string, p morton.Point) (rune, bool) {
	if p.Y < 0 || p.Y >= int64(len(rows)) || p.X < 0 {
		return 0, false
	}
	line := []rune(rows[p.Y])
	if p.X >= int64(len(line)) {
		return 0, false
	}
	return line[p.X], true
}

// Cells returns every position in rows holding glyph g.
func Cells(rows []string, g rune) []morton.Point {
	var out []morton.Point
	for y, line := range rows {
		x := 0
		for _, c := range line {
			if c == g {
				out = append(out, morton.Pt(int64(x), int64(y)))
			}
			x++
		}
	}
	return out
}
