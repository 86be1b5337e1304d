// Package fov computes field of view on a grid with symmetric shadowcasting.
//
// Visibility is mutual: for any two open cells A and B within range, B is
// visible from A exactly when A is visible from B.
//
// The caller supplies a Query that reports, for each position, whether the
// cell blocks sight and an opaque payload to pass through. Returning false from
// the Query marks the position as outside the world.
//
//	c := fov.ShadowField(origin, world.Query, fov.WithMaxDepth(12))
//	for c := range c.All() {
//	    reveal(c.Pos, c.At)
//	}
//
// The traversal is an explicit cursor: each of the four cardinal quadrants is
// scanned row by row from a LIFO stack of pending rows, so memory use does not
// depend on recursion depth and a caller can stop at any point. Results come in
// depth-first order per quadrant, not sorted by radius.
package fov
