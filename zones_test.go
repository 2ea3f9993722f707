// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import "testing"

func TestZoneTableValidate(t *testing.T) {
	zt := &zoneTable{
		names:         []string{"Europe/Berlin", "Etc/GMT+12"},
		polyZoneIDs:   []ZoneID{0, 0, 1},
		zonePositions: []uint16{0, 2, 3},
	}
	if err := zt.validate(); err != nil {
		t.Fatalf("validate() = %v, want nil", err)
	}

	if got := zt.ZoneIDOf(0); got != 0 {
		t.Errorf("ZoneIDOf(0) = %d, want 0", got)
	}
	if got := zt.ZoneIDOf(2); got != 1 {
		t.Errorf("ZoneIDOf(2) = %d, want 1", got)
	}

	first, end := zt.PolygonRangeOf(0)
	if first != 0 || end != 2 {
		t.Errorf("PolygonRangeOf(0) = (%d,%d), want (0,2)", first, end)
	}
	first, end = zt.PolygonRangeOf(1)
	if first != 2 || end != 3 {
		t.Errorf("PolygonRangeOf(1) = (%d,%d), want (2,3)", first, end)
	}

	name, err := zt.ZoneNameOf(1)
	if err != nil || name != "Etc/GMT+12" {
		t.Errorf("ZoneNameOf(1) = (%q, %v), want (Etc/GMT+12, nil)", name, err)
	}
	if _, err := zt.ZoneNameOf(99); err == nil {
		t.Error("ZoneNameOf(99) = nil error, want out-of-range error")
	}
}

func TestZoneTableValidateRejectsUnsortedZoneIDs(t *testing.T) {
	zt := &zoneTable{
		names:         []string{"A", "B"},
		polyZoneIDs:   []ZoneID{1, 0},
		zonePositions: []uint16{0, 1, 2},
	}
	if err := zt.validate(); err == nil {
		t.Error("validate() = nil, want error for unsorted poly_zone_ids")
	}
}

func TestZoneTableValidateRejectsLengthMismatch(t *testing.T) {
	zt := &zoneTable{
		names:         []string{"A", "B"},
		polyZoneIDs:   []ZoneID{0, 1},
		zonePositions: []uint16{0, 1}, // want length 3 (nr_zones+1)
	}
	if err := zt.validate(); err == nil {
		t.Error("validate() = nil, want error for wrong zone_positions length")
	}
}

func TestIsOceanZone(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Etc/GMT+12", true},
		{"Etc/GMT-1", true},
		{"Etc/GMT", true},
		{"Europe/Berlin", false},
		{"America/New_York", false},
		{"", false},
	}
	for _, c := range cases {
		if got := IsOceanZone(c.name); got != c.want {
			t.Errorf("IsOceanZone(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}
