// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

// Package buildidx assembles the on-disk artefacts a Finder loads: the
// npy bounding-box and zone vectors, the JSON name and hole tables, the
// FlatBuffers polygon and shortcut collections. It is the build-time
// counterpart of the root package's runtime loaders, used by cmd/tzbuild
// and exercised directly by tests that need a small, self-contained
// dataset rather than a multi-gigabyte real-world extract.
package buildidx

import (
	"fmt"
	"path/filepath"
	"sort"

	h3 "github.com/uber/h3-go/v3"

	timezonefinder "github.com/evanoberholster/timezonefinder"
	"github.com/evanoberholster/timezonefinder/internal/buildcache"
)

// PolygonInput is one outer boundary polygon in a to-be-built dataset,
// flattened as [x0,y0,x1,y1,...] in the int32 coordinate lattice.
type PolygonInput struct {
	ZoneID uint16
	Coords []int32
}

// HoleInput is one hole polygon, associated with the outer polygon at
// OwnerIndex (an index into the Dataset.Polygons slice as originally
// supplied, before zone-sorting).
type HoleInput struct {
	OwnerIndex int
	Coords     []int32
}

// Dataset is the complete input to Build: zone names indexed by zone id,
// every outer polygon, and every hole.
type Dataset struct {
	ZoneNames []string
	Polygons  []PolygonInput
	Holes     []HoleInput
}

// Options controls Build's output.
type Options struct {
	OutDir   string
	Compress bool // zstd-compress the two coordinate FlatBuffers files
	Cache    *buildcache.Cache
}

// Build writes every artefact timezonefinder.Open expects into
// opts.OutDir: timezone_names.json, hole_registry.json,
// poly_zone_ids.npy, zone_positions.npy, boundaries/*, holes/*, and the
// hybrid_shortcuts_uint{8,16}.fbs shortcut index.
func Build(opts Options, ds Dataset) error {
	if err := validate(ds); err != nil {
		return err
	}

	order := sortedPolygonOrder(ds.Polygons)
	sorted := make([]PolygonInput, len(ds.Polygons))
	oldToNew := make([]int, len(ds.Polygons))
	for newIdx, oldIdx := range order {
		sorted[newIdx] = ds.Polygons[oldIdx]
		oldToNew[oldIdx] = newIdx
	}

	polyZoneIDs := make([]uint16, len(sorted))
	for i, p := range sorted {
		polyZoneIDs[i] = p.ZoneID
	}
	zonePositions := buildZonePositions(polyZoneIDs, len(ds.ZoneNames))

	holesByOwner := remapHoles(ds.Holes, oldToNew)

	if err := writeBoundaries(opts, sorted, ds.ZoneNames, polyZoneIDs, zonePositions, holesByOwner); err != nil {
		return err
	}

	records, width, err := buildShortcuts(sorted, polyZoneIDs, len(ds.ZoneNames), opts.Cache)
	if err != nil {
		return err
	}
	if width == 2 {
		return WriteHybridShortcuts16(filepath.Join(opts.OutDir, "hybrid_shortcuts_uint16.fbs"), records)
	}
	return WriteHybridShortcuts8(filepath.Join(opts.OutDir, "hybrid_shortcuts_uint8.fbs"), records)
}

func validate(ds Dataset) error {
	if len(ds.ZoneNames) == 0 {
		return fmt.Errorf("buildidx: dataset has no zones")
	}
	for i, p := range ds.Polygons {
		if int(p.ZoneID) >= len(ds.ZoneNames) {
			return fmt.Errorf("buildidx: polygon %d references zone %d, have %d zones", i, p.ZoneID, len(ds.ZoneNames))
		}
		if len(p.Coords) < 6 || len(p.Coords)%2 != 0 {
			return fmt.Errorf("buildidx: polygon %d has %d coordinate values, want an even count >= 6", i, len(p.Coords))
		}
	}
	for i, h := range ds.Holes {
		if h.OwnerIndex < 0 || h.OwnerIndex >= len(ds.Polygons) {
			return fmt.Errorf("buildidx: hole %d has out-of-range owner %d", i, h.OwnerIndex)
		}
	}
	return nil
}

// sortedPolygonOrder returns the permutation of polygon indices, stable,
// ascending by zone id -- the sortedness invariant poly_zone_ids depends on.
func sortedPolygonOrder(polys []PolygonInput) []int {
	order := make([]int, len(polys))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return polys[order[i]].ZoneID < polys[order[j]].ZoneID
	})
	return order
}

func buildZonePositions(polyZoneIDs []uint16, nrZones int) []uint16 {
	positions := make([]uint16, nrZones+1)
	zone := 0
	for i, zid := range polyZoneIDs {
		for zone < int(zid) {
			zone++
			positions[zone] = uint16(i)
		}
	}
	for z := zone + 1; z <= nrZones; z++ {
		positions[z] = uint16(len(polyZoneIDs))
	}
	return positions
}

// remapHoles renumbers hole owners to post-sort polygon ids and groups
// them stably by owner, the contiguous layout hole_registry.json assumes.
func remapHoles(holes []HoleInput, oldToNew []int) map[int][]HoleInput {
	remapped := make([]HoleInput, len(holes))
	for i, h := range holes {
		remapped[i] = HoleInput{OwnerIndex: oldToNew[h.OwnerIndex], Coords: h.Coords}
	}
	sort.SliceStable(remapped, func(i, j int) bool {
		return remapped[i].OwnerIndex < remapped[j].OwnerIndex
	})
	byOwner := make(map[int][]HoleInput)
	for _, h := range remapped {
		byOwner[h.OwnerIndex] = append(byOwner[h.OwnerIndex], h)
	}
	return byOwner
}

// h3CellsOf over-approximates the set of H3 cells a polygon's boundary and
// interior occupy at ShortcutResolution: the interior fill from Polyfill,
// widened with a 1-ring pad around both the interior cells and each
// vertex's own cell. This trades shortcut-list precision (a few extra
// candidates per cell) for simplicity; it is not the full pole/antimeridian
// bbox-widening construction a production indexer needs for whole-planet
// coverage, only enough to build correct, exercised small/medium datasets.
func h3CellsOf(coords []int32) map[h3.H3Index]struct{} {
	n := len(coords) / 2
	geofence := make([]h3.GeoCoord, n)
	for i := 0; i < n; i++ {
		lng := timezonefinder.IntToCoord(coords[i*2])
		lat := timezonefinder.IntToCoord(coords[i*2+1])
		geofence[i] = h3.GeoCoord{Latitude: lat, Longitude: lng}
	}

	cells := make(map[h3.H3Index]struct{})
	for _, cell := range h3.Polyfill(h3.GeoPolygon{Geofence: geofence}, timezonefinder.ShortcutResolution) {
		cells[cell] = struct{}{}
		for _, ring := range h3.KRing(cell, 1) {
			cells[ring] = struct{}{}
		}
	}
	for _, v := range geofence {
		cell := h3.FromGeo(v, timezonefinder.ShortcutResolution)
		cells[cell] = struct{}{}
		for _, ring := range h3.KRing(cell, 1) {
			cells[ring] = struct{}{}
		}
	}
	return cells
}

// cellsOfCached returns the H3 cells h3CellsOf(coords) would compute for
// polygon polyID, consulting cache first. Rebuilding the full shortcut
// index after a small source edit would otherwise recompute every
// polygon's H3 cover from scratch; the cache lets cmd/tzbuild skip
// polygons it has already covered in a prior run.
func cellsOfCached(cache *buildcache.Cache, polyID int, coords []int32) ([]h3.H3Index, error) {
	if cache != nil {
		key := fmt.Sprintf("poly:%d:res%d", polyID, timezonefinder.ShortcutResolution)
		var stored []uint64
		ok, err := cache.Get(key, &stored)
		if err != nil {
			return nil, err
		}
		if ok {
			cells := make([]h3.H3Index, len(stored))
			for i, v := range stored {
				cells[i] = h3.H3Index(v)
			}
			return cells, nil
		}
		cellSet := h3CellsOf(coords)
		cells := make([]h3.H3Index, 0, len(cellSet))
		raw := make([]uint64, 0, len(cellSet))
		for c := range cellSet {
			cells = append(cells, c)
			raw = append(raw, uint64(c))
		}
		if err := cache.Put(key, raw); err != nil {
			return nil, err
		}
		return cells, nil
	}

	cellSet := h3CellsOf(coords)
	cells := make([]h3.H3Index, 0, len(cellSet))
	for c := range cellSet {
		cells = append(cells, c)
	}
	return cells, nil
}

// buildShortcuts computes, for every H3 cell any polygon occupies, the
// ordered candidate list or the unique zone id, per the grouping and
// ordering rules: candidates are grouped by zone, zones ordered ascending
// by the total vertex count their candidates contribute to this cell, and
// candidates within a zone ordered ascending by their own vertex count.
func buildShortcuts(polys []PolygonInput, polyZoneIDs []uint16, nrZones int, cache *buildcache.Cache) ([]ShortcutRecord, int, error) {
	cellCandidates := make(map[h3.H3Index][]uint16) // hex -> poly ids

	for polyID, p := range polys {
		cells, err := cellsOfCached(cache, polyID, p.Coords)
		if err != nil {
			return nil, 0, err
		}
		for _, cell := range cells {
			cellCandidates[cell] = append(cellCandidates[cell], uint16(polyID))
		}
	}

	width := 1
	if nrZones > 256 {
		width = 2
	}

	records := make([]ShortcutRecord, 0, len(cellCandidates))
	for cell, ids := range cellCandidates {
		zoneOf := make(map[uint16]bool)
		for _, id := range ids {
			zoneOf[polyZoneIDs[id]] = true
		}
		if len(zoneOf) == 1 {
			var z uint16
			for zid := range zoneOf {
				z = zid
			}
			records = append(records, ShortcutRecord{HexID: uint64(cell), Unique: true, ZoneID: z})
			continue
		}

		zoneVertexTotal := make(map[uint16]int)
		for _, id := range ids {
			zoneVertexTotal[polyZoneIDs[id]] += len(polys[id].Coords) / 2
		}
		sort.SliceStable(ids, func(i, j int) bool {
			zi, zj := polyZoneIDs[ids[i]], polyZoneIDs[ids[j]]
			if zi != zj {
				if zoneVertexTotal[zi] != zoneVertexTotal[zj] {
					return zoneVertexTotal[zi] < zoneVertexTotal[zj]
				}
				return zi < zj
			}
			return len(polys[ids[i]].Coords) < len(polys[ids[j]].Coords)
		})
		records = append(records, ShortcutRecord{HexID: uint64(cell), PolyIDs: append([]uint16(nil), ids...)})
	}
	return records, width, nil
}
