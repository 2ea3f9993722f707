// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"path/filepath"
	"strconv"
)

// holeRange is the (hole_count, first_hole_id) pair a registry entry maps
// an outer polygon id to: the contiguous run of hole polygon ids
// subtracted from it.
type holeRange struct {
	count       int
	firstHoleID PolyID
}

// holeRegistry is a sparse outer-polygon-id -> holeRange map backed by
// hole_registry.json, plus the hole polygon store itself.
type holeRegistry struct {
	ranges map[PolyID]holeRange
	polys  *polygonStore
}

func openHoleRegistry(dir string, mode LoadMode) (*holeRegistry, error) {
	raw := map[string][2]int{}
	if err := loadJSON(filepath.Join(dir, "hole_registry.json"), &raw); err != nil {
		return nil, err
	}
	ranges := make(map[PolyID]holeRange, len(raw))
	for k, v := range raw {
		polyID, err := parsePolyIDKey(k)
		if err != nil {
			return nil, dataErrorf("hole_registry.json", err)
		}
		ranges[polyID] = holeRange{count: v[0], firstHoleID: PolyID(v[1])}
	}

	polys, err := openPolygonStore(dir, mode, "holes", filepath.Join("holes", "coordinates.fbs"))
	if err != nil {
		return nil, err
	}

	return &holeRegistry{ranges: ranges, polys: polys}, nil
}

func (h *holeRegistry) Close() error { return h.polys.Close() }

// HolesOf returns the coordinate vectors of every hole belonging to poly,
// or nil if it has none.
func (h *holeRegistry) HolesOf(poly PolyID) [][]int32 {
	r, ok := h.ranges[poly]
	if !ok || r.count == 0 {
		return nil
	}
	out := make([][]int32, r.count)
	for i := 0; i < r.count; i++ {
		out[i] = h.polys.CoordsOf(r.firstHoleID + PolyID(i))
	}
	return out
}

func parsePolyIDKey(s string) (PolyID, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, err
	}
	return PolyID(n), nil
}
