// Package sightline provides an embeddable spatial index and symmetric
// field-of-view engine for grid worlds.
//
// Sightline combines a Morton-keyed point index over entity ids with a
// symmetric shadowcasting scan. Entity positions live in an authoritative
// scene; the index is refreshed from it lazily, applying only the ids that
// changed.
//
// # Quick Start
//
//	ctx := context.Background()
//	tr := sightline.New[string](sightline.WithMaxDepth(16))
//
//	_ = tr.Place(ctx, "player", morton.Pt(2, 2))
//	_ = tr.Place(ctx, "guard", morton.Pt(7, 2))
//
//	world := grid.MustParse(rows, nil)
//	sightings, _ := sightline.Observe(ctx, tr, morton.Pt(2, 2), world.Query)
//	for _, s := range sightings {
//	    fmt.Println(s.Pos, s.At.Glyph, s.IDs)
//	}
//
// # Spatial Queries
//
//	ids := tr.At(ctx, morton.Pt(7, 2))
//	regions := tr.Within(ctx, spatial.Rect{X: 0, Y: 0, W: 40, H: 25})
//
// Rectangles are inclusive on both edges: {X: 0, Y: 0, W: 2, H: 2} covers
// a 3x3 block of cells.
//
// # Subpackages
//
//   - morton: Z-order codec
//   - spatial: the index, its facets and the freshening ReadOnly view
//   - scene: dirty-tracking position authority
//   - fov: symmetric shadowcasting cursor
//   - grid: text-map worlds and YAML scenarios
package sightline
