// Package grid is a text-map world for field-of-view scans.
//
// A map is a list of rows of glyphs. A Legend says which glyphs block sight,
// which mark actors standing on open floor, and which are outside the world.
// Rows may be ragged; positions past the end of a row are outside the world.
package grid

import (
	"errors"
	"fmt"
	"maps"

	"github.com/hupe1980/sightline/fov"
	"github.com/hupe1980/sightline/morton"
)

var (
	// ErrEmptyMap is returned when a map has no rows.
	ErrEmptyMap = errors.New("grid: empty map")
	// ErrUnknownGlyph is returned for glyphs missing from the legend.
	ErrUnknownGlyph = errors.New("grid: unknown glyph")
	// ErrOutOfBounds is returned when writing outside the map.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
)

// ParseError locates an unknown glyph.
type ParseError struct {
	Row   int
	Col   int
	Glyph rune
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s %q at row %d col %d", ErrUnknownGlyph, e.Glyph, e.Row, e.Col)
}

func (e *ParseError) Unwrap() error { return ErrUnknownGlyph }

// Kind describes how a glyph behaves.
type Kind struct {
	Blocked bool
	Actor   bool
	Void    bool
}

// Legend maps glyphs to their behaviour.
type Legend map[rune]Kind

// DefaultLegend covers walls, floors, doors and actor markers.
var DefaultLegend = Legend{
	'#': {Blocked: true},
	'·': {},
	'.': {},
	'+': {Blocked: true},
	'-': {},
	' ': {Void: true},
	'@': {Actor: true},
	'N': {Actor: true},
}

// Clone returns a copy of l.
func (l Legend) Clone() Legend {
	return maps.Clone(l)
}

// Tile is the payload a Grid passes through a field-of-view scan.
type Tile struct {
	Glyph   rune
	Blocked bool
}

// Grid is a mutable text map.
type Grid struct {
	rows   [][]rune
	width  int
	legend Legend
}

// Parse builds a Grid from rows. A nil legend means DefaultLegend.
func Parse(rows []string, legend Legend) (*Grid, error) {
	if len(rows) == 0 {
		return nil, ErrEmptyMap
	}
	if legend == nil {
		legend = DefaultLegend
	}

	g := &Grid{
		rows:   make([][]rune, len(rows)),
		legend: legend,
	}
	for y, line := range rows {
		r := []rune(line)
		for x, c := range r {
			if _, ok := legend[c]; !ok {
				return nil, &ParseError{Row: y, Col: x, Glyph: c}
			}
		}
		g.rows[y] = r
		g.width = max(g.width, len(r))
	}
	return g, nil
}

// MustParse is like Parse but panics on error.
func MustParse(rows []string, legend Legend) *Grid {
	g, err := Parse(rows, legend)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the length of the longest row.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// At returns the glyph at pos.
func (g *Grid) At(pos morton.Point) (rune, bool) {
	if pos.Y < 0 || pos.Y >= int64(len(g.rows)) || pos.X < 0 {
		return 0, false
	}
	row := g.rows[pos.Y]
	if pos.X >= int64(len(row)) {
		return 0, false
	}
	return row[pos.X], true
}

// Set replaces the glyph at pos, e.g. to open a door.
func (g *Grid) Set(pos morton.Point, glyph rune) error {
	if _, ok := g.At(pos); !ok {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	if _, ok := g.legend[glyph]; !ok {
		return fmt.Errorf("%w %q", ErrUnknownGlyph, glyph)
	}
	g.rows[pos.Y][pos.X] = glyph
	return nil
}

// Query implements fov.Query. Void glyphs and positions outside the map are
// not part of the world.
func (g *Grid) Query(pos morton.Point, _ int) (fov.Datum[Tile], bool) {
	c, ok := g.At(pos)
	if !ok {
		return fov.Datum[Tile]{}, false
	}
	k := g.legend[c]
	if k.Void {
		return fov.Datum[Tile]{}, false
	}
	return fov.Datum[Tile]{
		Blocked: k.Blocked,
		At:      Tile{Glyph: c, Blocked: k.Blocked},
	}, true
}

// Find returns every position holding glyph, in row-major order.
func (g *Grid) Find(glyph rune) []morton.Point {
	var out []morton.Point
	for y, row := range g.rows {
		for x, c := range row {
			if c == glyph {
				out = append(out, morton.Pt(int64(x), int64(y)))
			}
		}
	}
	return out
}

// Actors returns the positions of every actor glyph, keyed by glyph.
func (g *Grid) Actors() map[rune][]morton.Point {
	out := make(map[rune][]morton.Point)
	for y, row := range g.rows {
		for x, c := range row {
			if g.legend[c].Actor {
				out[c] = append(out[c], morton.Pt(int64(x), int64(y)))
			}
		}
	}
	return out
}

// Render draws the map, replacing every position for which visible returns
// false with hidden. Void glyphs are drawn as they are.
func (g *Grid) Render(visible func(morton.Point) bool, hidden rune) []string {
	out := make([]string, len(g.rows))
	for y, row := range g.rows {
		line := make([]rune, len(row))
		for x, c := range row {
			p := morton.Pt(int64(x), int64(y))
			switch {
			case g.legend[c].Void, visible(p):
				line[x] = c
			default:
				line[x] = hidden
			}
		}
		out[y] = string(line)
	}
	return out
}
