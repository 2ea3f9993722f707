// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import "testing"

func TestGetLastChangeIdx(t *testing.T) {
	cases := []struct {
		zones []uint16
		want  int
	}{
		{nil, 0},
		{[]uint16{1}, 0},
		{[]uint16{1, 1}, 0},
		{[]uint16{1, 2}, 1},
		{[]uint16{1, 3, 3}, 1},
		{[]uint16{1, 3, 3, 0}, 3},
		{[]uint16{1, 3, 3, 0, 0, 0, 0}, 3},
	}
	for _, c := range cases {
		if got := getLastChangeIdx(c.zones); got != c.want {
			t.Errorf("getLastChangeIdx(%v) = %d, want %d", c.zones, got, c.want)
		}
	}
}

func TestInsidePolygonSquare(t *testing.T) {
	// a closed 10x10 square in the int32 lattice, CCW: (0,0)-(10,0)-(10,10)-(0,10)
	square := []int32{0, 0, 10, 0, 10, 10, 0, 10}

	cases := []struct {
		x, y int32
		want bool
	}{
		{5, 5, true},    // center
		{0, 0, false},   // vertex: the closed-half-open convention excludes it
		{10, 10, true},  // opposite vertex: included
		{10, 0, false},  // vertex
		{0, 10, false},  // vertex
		{-1, 5, false},  // west of the square
		{11, 5, false},  // east of the square
		{5, -1, false},  // south of the square
		{5, 11, false},  // north of the square
	}
	for _, c := range cases {
		if got := insidePolygon(c.x, c.y, square); got != c.want {
			t.Errorf("insidePolygon(%d,%d, square) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestInsidePolygonOrientationAgnostic(t *testing.T) {
	ccw := []int32{0, 0, 10, 0, 10, 10, 0, 10}
	cw := []int32{0, 0, 0, 10, 10, 10, 10, 0}
	for _, pt := range [][2]int32{{5, 5}, {-1, -1}, {20, 20}} {
		a := insidePolygon(pt[0], pt[1], ccw)
		b := insidePolygon(pt[0], pt[1], cw)
		if a != b {
			t.Errorf("insidePolygon(%v) disagrees between winding orders: ccw=%v cw=%v", pt, a, b)
		}
	}
}

func TestInsidePolygonHoleSubtraction(t *testing.T) {
	outer := []int32{0, 0, 100, 0, 100, 100, 0, 100}
	hole := []int32{40, 40, 60, 40, 60, 60, 40, 60}

	if !insidePolygon(50, 50, outer) {
		t.Fatal("center point should be inside the outer polygon")
	}
	if !insidePolygon(50, 50, hole) {
		t.Fatal("center point should be inside the hole")
	}
	// A point inside the outer polygon and inside the hole is not in the
	// zone; callers subtract by checking both and treating the hole hit
	// as disqualifying (see Finder.pointInAnyHole).
}
