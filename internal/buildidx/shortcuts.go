// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildidx

import (
	"sort"

	flatbuffers "github.com/google/flatbuffers/go"

	shortcut16 "github.com/evanoberholster/timezonefinder/internal/fb/shortcut16"
	shortcut8 "github.com/evanoberholster/timezonefinder/internal/fb/shortcut8"
)

// ShortcutRecord is one H3-cell -> candidate-set entry, pre-ordered by the
// caller (see buildShortcuts). Exactly one of Unique/PolyIDs
// applies, mirroring the ShortcutEntry tagged union the runtime decodes.
type ShortcutRecord struct {
	HexID   uint64
	Unique  bool
	ZoneID  uint16
	PolyIDs []uint16
}

// WriteHybridShortcuts8 writes records to a hybrid_shortcuts_uint8.fbs file
// (zone ids narrowed to a single byte).
func WriteHybridShortcuts8(path string, records []ShortcutRecord) error {
	sort.Slice(records, func(i, j int) bool { return records[i].HexID < records[j].HexID })

	b := flatbuffers.NewBuilder(4096)
	entryOffsets := make([]flatbuffers.UOffsetT, len(records))
	for i, rec := range records {
		var valueOff flatbuffers.UOffsetT
		var valueType shortcut8.ShortcutValue
		if rec.Unique {
			shortcut8.UniqueZoneStart(b)
			shortcut8.UniqueZoneAddZoneID(b, uint8(rec.ZoneID))
			valueOff = shortcut8.UniqueZoneEnd(b)
			valueType = shortcut8.ShortcutValueUniqueZone
		} else {
			shortcut8.PolygonListStartPolyIDsVector(b, len(rec.PolyIDs))
			for j := len(rec.PolyIDs) - 1; j >= 0; j-- {
				b.PrependUint16(rec.PolyIDs[j])
			}
			idsVec := b.EndVector(len(rec.PolyIDs))
			shortcut8.PolygonListStart(b)
			shortcut8.PolygonListAddPolyIDs(b, idsVec)
			valueOff = shortcut8.PolygonListEnd(b)
			valueType = shortcut8.ShortcutValuePolygonList
		}

		shortcut8.HybridShortcutEntryStart(b)
		shortcut8.HybridShortcutEntryAddHexID(b, rec.HexID)
		shortcut8.HybridShortcutEntryAddValueType(b, valueType)
		shortcut8.HybridShortcutEntryAddValue(b, valueOff)
		entryOffsets[i] = shortcut8.HybridShortcutEntryEnd(b)
	}

	shortcut8.HybridShortcutCollectionStartEntriesVector(b, len(entryOffsets))
	for i := len(entryOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(entryOffsets[i])
	}
	entriesVec := b.EndVector(len(entryOffsets))

	shortcut8.HybridShortcutCollectionStart(b)
	shortcut8.HybridShortcutCollectionAddEntries(b, entriesVec)
	root := shortcut8.HybridShortcutCollectionEnd(b)
	b.Finish(root)

	return writeMaybeCompressed(path, b.FinishedBytes(), false)
}

// WriteHybridShortcuts16 writes records to a hybrid_shortcuts_uint16.fbs
// file (zone ids at full width), for datasets with more than 256 zones.
func WriteHybridShortcuts16(path string, records []ShortcutRecord) error {
	sort.Slice(records, func(i, j int) bool { return records[i].HexID < records[j].HexID })

	b := flatbuffers.NewBuilder(4096)
	entryOffsets := make([]flatbuffers.UOffsetT, len(records))
	for i, rec := range records {
		var valueOff flatbuffers.UOffsetT
		var valueType shortcut16.ShortcutValue
		if rec.Unique {
			shortcut16.UniqueZoneStart(b)
			shortcut16.UniqueZoneAddZoneID(b, rec.ZoneID)
			valueOff = shortcut16.UniqueZoneEnd(b)
			valueType = shortcut16.ShortcutValueUniqueZone
		} else {
			shortcut16.PolygonListStartPolyIDsVector(b, len(rec.PolyIDs))
			for j := len(rec.PolyIDs) - 1; j >= 0; j-- {
				b.PrependUint16(rec.PolyIDs[j])
			}
			idsVec := b.EndVector(len(rec.PolyIDs))
			shortcut16.PolygonListStart(b)
			shortcut16.PolygonListAddPolyIDs(b, idsVec)
			valueOff = shortcut16.PolygonListEnd(b)
			valueType = shortcut16.ShortcutValuePolygonList
		}

		shortcut16.HybridShortcutEntryStart(b)
		shortcut16.HybridShortcutEntryAddHexID(b, rec.HexID)
		shortcut16.HybridShortcutEntryAddValueType(b, valueType)
		shortcut16.HybridShortcutEntryAddValue(b, valueOff)
		entryOffsets[i] = shortcut16.HybridShortcutEntryEnd(b)
	}

	shortcut16.HybridShortcutCollectionStartEntriesVector(b, len(entryOffsets))
	for i := len(entryOffsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(entryOffsets[i])
	}
	entriesVec := b.EndVector(len(entryOffsets))

	shortcut16.HybridShortcutCollectionStart(b)
	shortcut16.HybridShortcutCollectionAddEntries(b, entriesVec)
	root := shortcut16.HybridShortcutCollectionEnd(b)
	b.Finish(root)

	return writeMaybeCompressed(path, b.FinishedBytes(), false)
}
