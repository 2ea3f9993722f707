// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

// ZoneID is an index into the zone-name list.
type ZoneID uint16

// PolyID is an index into the outer-polygon store. Always 16 bits: the
// dataset has fewer than 65536 polygons.
type PolyID uint16

// zoneIDWidth records whether poly_zone_ids.npy was built with 1 or 2
// bytes per entry, so readers can auto-detect from the file's own dtype
// header rather than trusting a side channel.
type zoneIDWidth int

const (
	zoneIDWidth1 zoneIDWidth = 1
	zoneIDWidth2 zoneIDWidth = 2
)
