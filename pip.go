// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

// insidePolygon implements the ray casting point in polygon test, cf.
// https://en.wikipedia.org/wiki/Point_in_polygon#Ray_casting_algorithm,
// expressed in closed-half-open form so results are stable on shared edges
// a point exactly on a boundary edge is classified as inside by exactly
// one of the two polygons sharing that edge.
//
// coords is a flat [x0,y0,x1,y1,...] array, the polygon implicitly closed
// (the last vertex connects back to the first).
//
// Overflow: the slope comparison below needs 64-bit arithmetic. In int32
// lattice coordinates delta_y_max*delta_x_max is about 65*10^17, which
// overflows int32/uint32 but fits comfortably in int64.
func insidePolygon(x, y int32, coords []int32) bool {
	n := len(coords) / 2
	if n < 3 {
		return false
	}
	contained := false

	x1 := coords[2*(n-1)]
	y1 := coords[2*(n-1)+1]
	yGtY1 := y > y1

	for i := 0; i < n; i++ {
		x2 := coords[2*i]
		y2 := coords[2*i+1]
		yGtY2 := y > y2

		if yGtY1 != yGtY2 {
			xLeX1 := x <= x1
			xLeX2 := x <= x2
			if xLeX1 || xLeX2 {
				if xLeX1 && xLeX2 {
					contained = !contained
				} else {
					y64, y164, y264 := int64(y), int64(y1), int64(y2)
					x64, x164, x264 := int64(x), int64(x1), int64(x2)
					slope1 := (y264 - y64) * (x264 - x164)
					slope2 := (y264 - y164) * (x264 - x64)
					if yGtY1 {
						if slope1 <= slope2 {
							contained = !contained
						}
					} else if slope1 >= slope2 {
						contained = !contained
					}
				}
			}
		}

		x1, y1, yGtY1 = x2, y2, yGtY2
	}
	return contained
}

// getLastChangeIdx returns the smallest k such that zones[k:] is constant,
// or 0 if zones is empty, has one element, or is already constant
// throughout: once the zone id stops changing, every remaining candidate
// would resolve to the same zone, so testing them is unnecessary.
func getLastChangeIdx(zones []uint16) int {
	n := len(zones)
	if n <= 1 {
		return 0
	}
	last := zones[n-1]
	for ptr := 2; ptr <= n; ptr++ {
		if zones[n-ptr] != last {
			return n - ptr + 1
		}
	}
	return 0
}
