// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildidx

import (
	"path/filepath"
)

func bboxOf(coords []int32) (xmin, xmax, ymin, ymax int32) {
	xmin, xmax = coords[0], coords[0]
	ymin, ymax = coords[1], coords[1]
	for i := 0; i < len(coords); i += 2 {
		x, y := coords[i], coords[i+1]
		if x < xmin {
			xmin = x
		}
		if x > xmax {
			xmax = x
		}
		if y < ymin {
			ymin = y
		}
		if y > ymax {
			ymax = y
		}
	}
	return
}

func writeBBoxVectors(dir string, polys [][]int32) error {
	n := len(polys)
	xmin := make([]int32, n)
	xmax := make([]int32, n)
	ymin := make([]int32, n)
	ymax := make([]int32, n)
	for i, coords := range polys {
		xmin[i], xmax[i], ymin[i], ymax[i] = bboxOf(coords)
	}
	if err := WriteNpyI32(filepath.Join(dir, "xmin.npy"), xmin); err != nil {
		return err
	}
	if err := WriteNpyI32(filepath.Join(dir, "xmax.npy"), xmax); err != nil {
		return err
	}
	if err := WriteNpyI32(filepath.Join(dir, "ymin.npy"), ymin); err != nil {
		return err
	}
	return WriteNpyI32(filepath.Join(dir, "ymax.npy"), ymax)
}

// writeBoundaries emits every npy/JSON/FlatBuffers artefact except the
// shortcut index: zone names and positions, poly_zone_ids, the outer
// boundary table, the hole table, and the hole registry.
func writeBoundaries(
	opts Options,
	sorted []PolygonInput,
	zoneNames []string,
	polyZoneIDs []uint16,
	zonePositions []uint16,
	holesByOwner map[int][]HoleInput,
) error {
	if err := WriteJSON(filepath.Join(opts.OutDir, "timezone_names.json"), zoneNames); err != nil {
		return err
	}

	nrZones := len(zoneNames)
	if nrZones <= 256 {
		u8 := make([]uint8, len(polyZoneIDs))
		for i, z := range polyZoneIDs {
			u8[i] = uint8(z)
		}
		if err := WriteNpyU8(filepath.Join(opts.OutDir, "poly_zone_ids.npy"), u8); err != nil {
			return err
		}
	} else {
		if err := WriteNpyU16(filepath.Join(opts.OutDir, "poly_zone_ids.npy"), polyZoneIDs); err != nil {
			return err
		}
	}
	if err := WriteNpyU16(filepath.Join(opts.OutDir, "zone_positions.npy"), zonePositions); err != nil {
		return err
	}

	boundariesDir := filepath.Join(opts.OutDir, "boundaries")
	if err := mkdirAll(boundariesDir); err != nil {
		return err
	}
	outerCoords := make([][]int32, len(sorted))
	for i, p := range sorted {
		outerCoords[i] = p.Coords
	}
	if err := writeBBoxVectors(boundariesDir, outerCoords); err != nil {
		return err
	}
	if err := WritePolygonCollection(filepath.Join(boundariesDir, "coordinates.fbs"), outerCoords, opts.Compress); err != nil {
		return err
	}

	holesDir := filepath.Join(opts.OutDir, "holes")
	if err := mkdirAll(holesDir); err != nil {
		return err
	}
	var holeCoords [][]int32
	registry := make(map[string][2]int, len(holesByOwner))
	for owner := 0; owner < len(sorted); owner++ {
		hs, ok := holesByOwner[owner]
		if !ok || len(hs) == 0 {
			continue
		}
		first := len(holeCoords)
		for _, h := range hs {
			holeCoords = append(holeCoords, h.Coords)
		}
		registry[itoa(owner)] = [2]int{len(hs), first}
	}
	if err := writeBBoxVectors(holesDir, holeCoords); err != nil {
		return err
	}
	if err := WritePolygonCollection(filepath.Join(holesDir, "coordinates.fbs"), holeCoords, opts.Compress); err != nil {
		return err
	}

	return WriteJSON(filepath.Join(opts.OutDir, "hole_registry.json"), registry)
}
