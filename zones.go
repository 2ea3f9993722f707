// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"fmt"
	"path/filepath"
	"strings"
)

// oceanTimezonePrefix identifies ocean zones by name: every ocean zone is
// named "Etc/GMT" plus a signed UTC offset.
const oceanTimezonePrefix = "Etc/GMT"

// zoneTable maps polygon id -> zone id -> zone name, and enforces the
// sortedness invariant of poly_zone_ids: the zone id of polygon i must
// never decrease as i increases.
type zoneTable struct {
	names []string

	// polyZoneIDs is always widened to uint16 in memory regardless of the
	// on-disk width (1 or 2 bytes); the width only affects the wire format.
	polyZoneIDs []ZoneID
	width       zoneIDWidth

	// zonePositions[z] is the first polygon id of zone z; length nr_zones+1.
	zonePositions []uint16
}

func openZoneTable(dir string) (*zoneTable, error) {
	var names []string
	if err := loadJSON(filepath.Join(dir, "timezone_names.json"), &names); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "poly_zone_ids.npy")
	raw, err := loadRawNpy(path)
	if err != nil {
		return nil, err
	}
	polyZoneIDs, width, err := decodePolyZoneIDs(raw)
	if err != nil {
		return nil, dataErrorf(path, err)
	}

	zonePositions, err := loadU16Npy(filepath.Join(dir, "zone_positions.npy"))
	if err != nil {
		return nil, err
	}

	zt := &zoneTable{
		names:         names,
		polyZoneIDs:   polyZoneIDs,
		width:         width,
		zonePositions: zonePositions,
	}
	if err := zt.validate(); err != nil {
		return nil, dataErrorf(dir, err)
	}
	return zt, nil
}

func (z *zoneTable) validate() error {
	if len(z.zonePositions) != len(z.names)+1 {
		return fmt.Errorf("zone_positions has length %d, want %d (nr_zones+1)", len(z.zonePositions), len(z.names)+1)
	}
	if int(z.zonePositions[len(z.zonePositions)-1]) != len(z.polyZoneIDs) {
		return fmt.Errorf("zone_positions[nr_zones]=%d != nr_polygons=%d", z.zonePositions[len(z.zonePositions)-1], len(z.polyZoneIDs))
	}
	var prev ZoneID
	for i, zid := range z.polyZoneIDs {
		if i > 0 && zid < prev {
			return fmt.Errorf("poly_zone_ids not sorted at polygon %d: %d < %d", i, zid, prev)
		}
		prev = zid
	}
	return nil
}

func (z *zoneTable) ZoneIDOf(poly PolyID) ZoneID { return z.polyZoneIDs[poly] }

func (z *zoneTable) ZoneNameOf(zone ZoneID) (string, error) {
	if int(zone) >= len(z.names) {
		return "", fmt.Errorf("timezonefinder: zone id %d out of range", zone)
	}
	return z.names[zone], nil
}

// PolygonRangeOf returns [first, end) polygon ids belonging to zone.
func (z *zoneTable) PolygonRangeOf(zone ZoneID) (PolyID, PolyID) {
	return PolyID(z.zonePositions[zone]), PolyID(z.zonePositions[zone+1])
}

func (z *zoneTable) ZoneCount() int { return len(z.names) }

func (z *zoneTable) PolygonCount() int { return len(z.polyZoneIDs) }

// IsOceanZone reports whether name follows the Etc/GMT ocean-zone naming
// convention.
func IsOceanZone(name string) bool {
	return strings.HasPrefix(name, oceanTimezonePrefix)
}

func loadRawNpy(path string) ([]byte, error) {
	return loadBytes(path)
}

func decodePolyZoneIDs(buf []byte) ([]ZoneID, zoneIDWidth, error) {
	hdr, _, err := parseNpyHeader(buf)
	if err != nil {
		return nil, 0, err
	}
	switch hdr.descr {
	case "<u1", "=u1", "|u1":
		u8, err := readNpyU8(buf)
		if err != nil {
			return nil, 0, err
		}
		out := make([]ZoneID, len(u8))
		for i, v := range u8 {
			out[i] = ZoneID(v)
		}
		return out, zoneIDWidth1, nil
	case "<u2", "=u2":
		u16, err := readNpyU16(buf)
		if err != nil {
			return nil, 0, err
		}
		out := make([]ZoneID, len(u16))
		for i, v := range u16 {
			out[i] = ZoneID(v)
		}
		return out, zoneIDWidth2, nil
	default:
		return nil, 0, fmt.Errorf("poly_zone_ids.npy: unsupported dtype %q", hdr.descr)
	}
}
