// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"testing"

	flatbuffers "github.com/google/flatbuffers/go"
	h3 "github.com/uber/h3-go/v3"

	shortcut8 "github.com/evanoberholster/timezonefinder/internal/fb/shortcut8"
)

func buildShortcuts8Fixture(t *testing.T) []byte {
	t.Helper()
	b := flatbuffers.NewBuilder(256)

	shortcut8.UniqueZoneStart(b)
	shortcut8.UniqueZoneAddZoneID(b, 7)
	uzOff := shortcut8.UniqueZoneEnd(b)

	shortcut8.HybridShortcutEntryStart(b)
	shortcut8.HybridShortcutEntryAddHexID(b, 111)
	shortcut8.HybridShortcutEntryAddValueType(b, shortcut8.ShortcutValueUniqueZone)
	shortcut8.HybridShortcutEntryAddValue(b, uzOff)
	uniqueEntry := shortcut8.HybridShortcutEntryEnd(b)

	ids := []uint16{3, 1, 2}
	shortcut8.PolygonListStartPolyIDsVector(b, len(ids))
	for i := len(ids) - 1; i >= 0; i-- {
		b.PrependUint16(ids[i])
	}
	idsVec := b.EndVector(len(ids))
	shortcut8.PolygonListStart(b)
	shortcut8.PolygonListAddPolyIDs(b, idsVec)
	plOff := shortcut8.PolygonListEnd(b)

	shortcut8.HybridShortcutEntryStart(b)
	shortcut8.HybridShortcutEntryAddHexID(b, 222)
	shortcut8.HybridShortcutEntryAddValueType(b, shortcut8.ShortcutValuePolygonList)
	shortcut8.HybridShortcutEntryAddValue(b, plOff)
	listEntry := shortcut8.HybridShortcutEntryEnd(b)

	entries := []flatbuffers.UOffsetT{uniqueEntry, listEntry}
	shortcut8.HybridShortcutCollectionStartEntriesVector(b, len(entries))
	for i := len(entries) - 1; i >= 0; i-- {
		b.PrependUOffsetT(entries[i])
	}
	entriesVec := b.EndVector(len(entries))

	shortcut8.HybridShortcutCollectionStart(b)
	shortcut8.HybridShortcutCollectionAddEntries(b, entriesVec)
	root := shortcut8.HybridShortcutCollectionEnd(b)
	b.Finish(root)

	return b.FinishedBytes()
}

func TestDecodeShortcuts8(t *testing.T) {
	buf := buildShortcuts8Fixture(t)

	entries, err := decodeShortcuts8(buf)
	if err != nil {
		t.Fatalf("decodeShortcuts8: %v", err)
	}

	unique, ok := entries[h3.H3Index(111)]
	if !ok {
		t.Fatal("missing entry for hex 111")
	}
	if !unique.Unique || unique.ZoneID != 7 {
		t.Errorf("entries[111] = %+v, want Unique zone 7", unique)
	}

	list, ok := entries[h3.H3Index(222)]
	if !ok {
		t.Fatal("missing entry for hex 222")
	}
	if list.Unique {
		t.Errorf("entries[222].Unique = true, want false")
	}
	want := []PolyID{3, 1, 2}
	if len(list.PolyIDs) != len(want) {
		t.Fatalf("entries[222].PolyIDs = %v, want %v", list.PolyIDs, want)
	}
	for i, id := range want {
		if list.PolyIDs[i] != id {
			t.Errorf("entries[222].PolyIDs[%d] = %d, want %d", i, list.PolyIDs[i], id)
		}
	}
}

func TestShortcutIndexLookup(t *testing.T) {
	buf := buildShortcuts8Fixture(t)
	entries, err := decodeShortcuts8(buf)
	if err != nil {
		t.Fatalf("decodeShortcuts8: %v", err)
	}
	idx := &shortcutIndex{entries: entries}

	if _, ok := idx.Lookup(h3.H3Index(111)); !ok {
		t.Error("Lookup(111) missing")
	}
	if _, ok := idx.Lookup(h3.H3Index(999)); ok {
		t.Error("Lookup(999) = found, want not found")
	}
}
