// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder_test

import (
	"testing"

	timezonefinder "github.com/evanoberholster/timezonefinder"
	"github.com/evanoberholster/timezonefinder/internal/buildidx"
)

// square returns a CCW outer ring [x0,y0,x1,y1,x2,y2,x3,y3] in the int32
// lattice for the degree bounding box [lngMin,lngMax] x [latMin,latMax].
func square(lngMin, latMin, lngMax, latMax float64) []int32 {
	return []int32{
		timezonefinder.CoordToInt(lngMin), timezonefinder.CoordToInt(latMin),
		timezonefinder.CoordToInt(lngMax), timezonefinder.CoordToInt(latMin),
		timezonefinder.CoordToInt(lngMax), timezonefinder.CoordToInt(latMax),
		timezonefinder.CoordToInt(lngMin), timezonefinder.CoordToInt(latMax),
	}
}

func buildTestFinder(t *testing.T) *timezonefinder.Finder {
	t.Helper()
	dir := t.TempDir()

	ds := buildidx.Dataset{
		ZoneNames: []string{"Europe/Berlin", "Etc/GMT+12"},
		Polygons: []buildidx.PolygonInput{
			{ZoneID: 0, Coords: square(13.0, 52.0, 13.5, 52.5)},
			{ZoneID: 1, Coords: square(170.0, 10.0, 170.5, 10.5)},
		},
		Holes: []buildidx.HoleInput{
			{OwnerIndex: 0, Coords: square(13.2, 52.2, 13.3, 52.3)},
		},
	}

	if err := buildidx.Build(buildidx.Options{OutDir: dir}, ds); err != nil {
		t.Fatalf("buildidx.Build: %v", err)
	}

	f, err := timezonefinder.Open(timezonefinder.Config{DataDir: dir})
	if err != nil {
		t.Fatalf("timezonefinder.Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestFinderCounts(t *testing.T) {
	f := buildTestFinder(t)
	if got := f.ZoneCount(); got != 2 {
		t.Errorf("ZoneCount() = %d, want 2", got)
	}
	if got := f.PolygonCount(); got != 2 {
		t.Errorf("PolygonCount() = %d, want 2", got)
	}
	if got := f.ZonePolygons(0); len(got) != 1 || got[0] != 0 {
		t.Errorf("ZonePolygons(0) = %v, want [0]", got)
	}
	if got := f.ZonePolygons(1); len(got) != 1 || got[0] != 1 {
		t.Errorf("ZonePolygons(1) = %v, want [1]", got)
	}
}

func TestFinderTimezoneAt(t *testing.T) {
	f := buildTestFinder(t)

	name, err := f.TimezoneAt(13.05, 52.05)
	if err != nil {
		t.Fatalf("TimezoneAt: %v", err)
	}
	if name != "Europe/Berlin" {
		t.Errorf("TimezoneAt(13.05, 52.05) = %q, want Europe/Berlin", name)
	}

	name, err = f.TimezoneAt(170.25, 10.25)
	if err != nil {
		t.Fatalf("TimezoneAt: %v", err)
	}
	if name != "Etc/GMT+12" {
		t.Errorf("TimezoneAt(170.25, 10.25) = %q, want Etc/GMT+12", name)
	}

	name, err = f.TimezoneAt(-70.0, -30.0)
	if err != nil {
		t.Fatalf("TimezoneAt: %v", err)
	}
	if name != "" {
		t.Errorf("TimezoneAt(-70.0, -30.0) = %q, want no match", name)
	}

	if _, err := f.TimezoneAt(200.0, 10.0); err == nil {
		t.Error("TimezoneAt(200.0, 10.0) = nil error, want InvalidCoordinateError")
	}
}

// TestFinderUniqueZoneSkipsHoles documents a deliberate consequence of the
// shortcut index's UniqueZone fast path: since the only candidate polygon
// in this cell belongs to one zone, the cell is stored as UniqueZone and
// TimezoneAt returns it without ever running the hole test, even for a
// point that falls inside the hole cut out of that polygon.
func TestFinderUniqueZoneSkipsHoles(t *testing.T) {
	f := buildTestFinder(t)

	name, err := f.TimezoneAt(13.25, 52.25) // center of the hole
	if err != nil {
		t.Fatalf("TimezoneAt: %v", err)
	}
	if name != "Europe/Berlin" {
		t.Errorf("TimezoneAt(13.25, 52.25) = %q, want Europe/Berlin (unique cell bypasses hole test)", name)
	}
}

func TestFinderTimezoneAtLand(t *testing.T) {
	f := buildTestFinder(t)

	name, err := f.TimezoneAtLand(170.25, 10.25)
	if err != nil {
		t.Fatalf("TimezoneAtLand: %v", err)
	}
	if name != "" {
		t.Errorf("TimezoneAtLand(170.25, 10.25) = %q, want no match (ocean zone)", name)
	}

	name, err = f.TimezoneAtLand(13.05, 52.05)
	if err != nil {
		t.Fatalf("TimezoneAtLand: %v", err)
	}
	if name != "Europe/Berlin" {
		t.Errorf("TimezoneAtLand(13.05, 52.05) = %q, want Europe/Berlin", name)
	}
}

func TestFinderUniqueTimezoneAt(t *testing.T) {
	f := buildTestFinder(t)

	name, err := f.UniqueTimezoneAt(13.05, 52.05)
	if err != nil {
		t.Fatalf("UniqueTimezoneAt: %v", err)
	}
	if name != "Europe/Berlin" {
		t.Errorf("UniqueTimezoneAt(13.05, 52.05) = %q, want Europe/Berlin", name)
	}
}

func TestFinderQuickTimezoneAt(t *testing.T) {
	f := buildTestFinder(t)

	name, err := f.QuickTimezoneAt(13.05, 52.05)
	if err != nil {
		t.Fatalf("QuickTimezoneAt: %v", err)
	}
	if name != "Europe/Berlin" {
		t.Errorf("QuickTimezoneAt(13.05, 52.05) = %q, want Europe/Berlin", name)
	}
}

func TestFinderZoneName(t *testing.T) {
	f := buildTestFinder(t)

	name, err := f.ZoneName(1)
	if err != nil {
		t.Fatalf("ZoneName(1): %v", err)
	}
	if name != "Etc/GMT+12" {
		t.Errorf("ZoneName(1) = %q, want Etc/GMT+12", name)
	}
	if !timezonefinder.IsOceanZone(name) {
		t.Errorf("IsOceanZone(%q) = false, want true", name)
	}

	if _, err := f.ZoneName(99); err == nil {
		t.Error("ZoneName(99) = nil error, want out-of-range error")
	}
}
