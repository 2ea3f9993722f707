// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"os"
	"path/filepath"
)

// dataDirEnvVar overrides Config.DataDir when set and DataDir is empty.
const dataDirEnvVar = "TIMEZONEFINDER_DATA_DIR"

// Config selects the on-disk data directory and loading strategy.
type Config struct {
	// DataDir holds the npy/JSON/FlatBuffers artefacts a Finder loads. If
	// empty, TIMEZONEFINDER_DATA_DIR is consulted before falling back to ".".
	DataDir string
	// Mode selects ModeMmap (default) or ModeMemory.
	Mode LoadMode
}

func (c Config) resolveDataDir() string {
	if c.DataDir != "" {
		return c.DataDir
	}
	if env := os.Getenv(dataDirEnvVar); env != "" {
		return env
	}
	return "."
}

// Finder is the query engine: it owns the mapped/loaded buffers for its
// lifetime and answers queries without further I/O. A *Finder is safe for
// concurrent read-only use once constructed.
type Finder struct {
	zones     *zoneTable
	polys     *polygonStore
	holes     *holeRegistry
	shortcuts *shortcutIndex
}

// Open constructs a Finder from the on-disk artefacts in cfg.DataDir. It
// performs blocking file I/O; queries performed on the returned Finder do
// not.
func Open(cfg Config) (*Finder, error) {
	dir := cfg.resolveDataDir()

	zones, err := openZoneTable(dir)
	if err != nil {
		return nil, err
	}
	polys, err := openPolygonStore(dir, cfg.Mode, "boundaries", filepath.Join("boundaries", "coordinates.fbs"))
	if err != nil {
		return nil, err
	}
	holes, err := openHoleRegistry(dir, cfg.Mode)
	if err != nil {
		polys.Close()
		return nil, err
	}
	shortcuts, err := openShortcutIndex(dir)
	if err != nil {
		polys.Close()
		holes.Close()
		return nil, err
	}

	return &Finder{zones: zones, polys: polys, holes: holes, shortcuts: shortcuts}, nil
}

// Close releases every file handle and mapped buffer the Finder holds.
// Safe to call more than once.
func (f *Finder) Close() error {
	var err error
	if e := f.polys.Close(); e != nil {
		err = e
	}
	if e := f.holes.Close(); e != nil {
		err = e
	}
	return err
}

func (f *Finder) ZoneCount() int    { return f.zones.ZoneCount() }
func (f *Finder) PolygonCount() int { return f.zones.PolygonCount() }

// TimezoneAt resolves the IANA zone name containing (lng, lat): a shortcut
// lookup, immediate return on a unique cell, else a bounded point-in-polygon
// loop over ordered candidates up to the last zone change.
func (f *Finder) TimezoneAt(lng, lat float64) (string, error) {
	if err := ValidateCoordinate(lng, lat); err != nil {
		return "", err
	}

	cell := h3CellOf(lng, lat)
	entry, ok := f.shortcuts.Lookup(cell)
	if !ok {
		return "", nil // only possible with a non-global dataset
	}
	if entry.Unique {
		return f.zones.ZoneNameOf(entry.ZoneID)
	}

	ids := entry.PolyIDs
	if len(ids) == 0 {
		return "", nil
	}
	zones := make([]uint16, len(ids))
	for i, id := range ids {
		zones[i] = uint16(f.zones.ZoneIDOf(id))
	}
	if len(zones) == 1 {
		return f.zones.ZoneNameOf(ZoneID(zones[0]))
	}

	lastChange := getLastChangeIdx(zones)
	if lastChange == 0 {
		return f.zones.ZoneNameOf(ZoneID(zones[0]))
	}

	x, y := CoordToInt(lng), CoordToInt(lat)
	for i := 0; i < lastChange; i++ {
		polyID := ids[i]
		if f.polys.outsideBBox(polyID, x, y) {
			continue
		}
		coords := f.polys.CoordsOf(polyID)
		if !insidePolygon(x, y, coords) {
			continue
		}
		if f.pointInAnyHole(polyID, x, y) {
			continue
		}
		return f.zones.ZoneNameOf(ZoneID(zones[i]))
	}

	// The trailing constant run covers whatever the earlier candidates did
	// not: testing it is unnecessary.
	return f.zones.ZoneNameOf(ZoneID(zones[len(zones)-1]))
}

func (f *Finder) pointInAnyHole(poly PolyID, x, y int32) bool {
	for _, hole := range f.holes.HolesOf(poly) {
		if insidePolygon(x, y, hole) {
			return true
		}
	}
	return false
}

// TimezoneAtLand behaves like TimezoneAt, but ocean zones are reported as
// "" (no match) rather than by name.
func (f *Finder) TimezoneAtLand(lng, lat float64) (string, error) {
	name, err := f.TimezoneAt(lng, lat)
	if err != nil {
		return "", err
	}
	if name != "" && IsOceanZone(name) {
		return "", nil
	}
	return name, nil
}

// UniqueTimezoneAt returns the zone name only if the shortcut cell is a
// UniqueZone; it never runs a point-in-polygon test.
func (f *Finder) UniqueTimezoneAt(lng, lat float64) (string, error) {
	if err := ValidateCoordinate(lng, lat); err != nil {
		return "", err
	}
	cell := h3CellOf(lng, lat)
	entry, ok := f.shortcuts.Lookup(cell)
	if !ok || !entry.Unique {
		return "", nil
	}
	return f.zones.ZoneNameOf(entry.ZoneID)
}

// QuickTimezoneAt returns the zone of the last candidate in the shortcut
// cell without ever running a point-in-polygon test -- a "most common
// zone" fast-path for callers that can tolerate occasional inaccuracy near
// borders. Because shortcut candidates are ordered ascending by vertex
// count within a zone and zones are ordered ascending by total vertex
// count, the last candidate belongs to the zone with the largest vertex
// total in the cell.
func (f *Finder) QuickTimezoneAt(lng, lat float64) (string, error) {
	if err := ValidateCoordinate(lng, lat); err != nil {
		return "", err
	}
	cell := h3CellOf(lng, lat)
	entry, ok := f.shortcuts.Lookup(cell)
	if !ok {
		return "", nil
	}
	if entry.Unique {
		return f.zones.ZoneNameOf(entry.ZoneID)
	}
	if len(entry.PolyIDs) == 0 {
		return "", nil
	}
	last := entry.PolyIDs[len(entry.PolyIDs)-1]
	return f.zones.ZoneNameOf(f.zones.ZoneIDOf(last))
}

// ZonePolygons iterates the polygon ids belonging to zone, for
// introspection and debugging tooling.
func (f *Finder) ZonePolygons(zone ZoneID) []PolyID {
	first, end := f.zones.PolygonRangeOf(zone)
	out := make([]PolyID, 0, int(end-first))
	for id := first; id < end; id++ {
		out = append(out, id)
	}
	return out
}

// ZoneName returns the name of zone, or an error if it is out of range.
func (f *Finder) ZoneName(zone ZoneID) (string, error) { return f.zones.ZoneNameOf(zone) }
