// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

// BBox is the axis-aligned bounding box of a polygon in the int32 lattice.
type BBox struct {
	XMin, XMax, YMin, YMax int32
}

// Contains reports whether (x, y) lies within the box, inclusive of the
// edges. It is the negation of bboxTable.outside, the fast rejection
// TimezoneAt runs before any PIP test.
func (b BBox) Contains(x, y int32) bool {
	return x >= b.XMin && x <= b.XMax && y >= b.YMin && y <= b.YMax
}

// bboxTable is a parallel four-vector layout: cache-friendly column
// storage rather than an array of BBox structs, so the outside-bbox fast
// path only ever touches the vectors it needs.
type bboxTable struct {
	xmin, xmax, ymin, ymax []int32
}

func (t *bboxTable) len() int { return len(t.xmin) }

func (t *bboxTable) at(i uint16) BBox {
	return BBox{
		XMin: t.xmin[i],
		XMax: t.xmax[i],
		YMin: t.ymin[i],
		YMax: t.ymax[i],
	}
}

func (t *bboxTable) outside(i uint16, x, y int32) bool {
	return x < t.xmin[i] || x > t.xmax[i] || y < t.ymin[i] || y > t.ymax[i]
}
