// Package morton implements the Z-order (Morton) codec used to pack a 2D grid
// point into a single 64-bit key.
//
// The bits of X occupy the even bit positions of the key and the bits of Y the
// odd positions:
//
//	key := morton.MustKey(morton.Pt(3, 5)) // 0b100111 == 39
//	p := morton.PointOf(key)               // {3 5}
//
// Keys are only defined for coordinates in [0, MaxCoord] on both axes. Within
// that domain Key and PointOf are exact inverses of each other.
package morton
