// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"fmt"
	"os"
	"path/filepath"

	flatbuffers "github.com/google/flatbuffers/go"
	h3 "github.com/uber/h3-go/v3"

	shortcut16 "github.com/evanoberholster/timezonefinder/internal/fb/shortcut16"
	shortcut8 "github.com/evanoberholster/timezonefinder/internal/fb/shortcut8"
)

// ShortcutEntry is the value a shortcut cell resolves to. Exactly one of
// the two fields is meaningful; Unique reports which.
type ShortcutEntry struct {
	Unique  bool
	ZoneID  ZoneID   // valid iff Unique
	PolyIDs []PolyID // valid iff !Unique, grouped by zone (zones ascending by total vertex count), ascending by vertex count within a zone
}

// shortcutIndex is the H3-cell -> ShortcutEntry dictionary. It is decoded
// fully into a Go map at construction time: the file format does not
// require entries to be sorted by hex_id, and a linear scan per query
// would dominate lookup cost. Like the npy vectors (see loaders.go), the
// shortcut file is read fully into memory regardless of LoadMode rather
// than going through the mmap/in-memory source split.
type shortcutIndex struct {
	entries map[h3.H3Index]ShortcutEntry
}

func openShortcutIndex(dir string) (*shortcutIndex, error) {
	path, width, err := locateShortcutFile(dir)
	if err != nil {
		return nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	raw, err := maybeDecompress(buf)
	if err != nil {
		return nil, dataErrorf(path, err)
	}

	var entries map[h3.H3Index]ShortcutEntry
	switch width {
	case zoneIDWidth1:
		entries, err = decodeShortcuts8(raw)
	case zoneIDWidth2:
		entries, err = decodeShortcuts16(raw)
	}
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	return &shortcutIndex{entries: entries}, nil
}

func locateShortcutFile(dir string) (string, zoneIDWidth, error) {
	p8 := filepath.Join(dir, "hybrid_shortcuts_uint8.fbs")
	p16 := filepath.Join(dir, "hybrid_shortcuts_uint16.fbs")
	if _, err := os.Stat(p8); err == nil {
		return p8, zoneIDWidth1, nil
	}
	if _, err := os.Stat(p16); err == nil {
		return p16, zoneIDWidth2, nil
	}
	return "", 0, dataErrorf(dir, fmt.Errorf("neither hybrid_shortcuts_uint8.fbs nor hybrid_shortcuts_uint16.fbs found"))
}

func decodeShortcuts8(buf []byte) (map[h3.H3Index]ShortcutEntry, error) {
	coll := shortcut8.GetRootAsHybridShortcutCollection(buf, flatbuffers.UOffsetT(0))
	n := coll.EntriesLength()
	out := make(map[h3.H3Index]ShortcutEntry, n)
	var entry shortcut8.HybridShortcutEntry
	for i := 0; i < n; i++ {
		if !coll.Entries(&entry, i) {
			continue
		}
		hex := h3.H3Index(entry.HexID())
		switch entry.ValueType() {
		case shortcut8.ShortcutValueUniqueZone:
			var uz shortcut8.UniqueZone
			var tab flatbuffers.Table
			if entry.Value(&tab) {
				uz.Init(tab.Bytes, tab.Pos)
				out[hex] = ShortcutEntry{Unique: true, ZoneID: ZoneID(uz.ZoneID())}
			}
		case shortcut8.ShortcutValuePolygonList:
			var pl shortcut8.PolygonList
			var tab flatbuffers.Table
			if entry.Value(&tab) {
				pl.Init(tab.Bytes, tab.Pos)
				out[hex] = ShortcutEntry{PolyIDs: toPolyIDs(pl.PolyIDsAsSlice())}
			}
		default:
			return nil, fmt.Errorf("unknown ShortcutValue type %d at entry %d", entry.ValueType(), i)
		}
	}
	return out, nil
}

func decodeShortcuts16(buf []byte) (map[h3.H3Index]ShortcutEntry, error) {
	coll := shortcut16.GetRootAsHybridShortcutCollection(buf, flatbuffers.UOffsetT(0))
	n := coll.EntriesLength()
	out := make(map[h3.H3Index]ShortcutEntry, n)
	var entry shortcut16.HybridShortcutEntry
	for i := 0; i < n; i++ {
		if !coll.Entries(&entry, i) {
			continue
		}
		hex := h3.H3Index(entry.HexID())
		switch entry.ValueType() {
		case shortcut16.ShortcutValueUniqueZone:
			var uz shortcut16.UniqueZone
			var tab flatbuffers.Table
			if entry.Value(&tab) {
				uz.Init(tab.Bytes, tab.Pos)
				out[hex] = ShortcutEntry{Unique: true, ZoneID: ZoneID(uz.ZoneID())}
			}
		case shortcut16.ShortcutValuePolygonList:
			var pl shortcut16.PolygonList
			var tab flatbuffers.Table
			if entry.Value(&tab) {
				pl.Init(tab.Bytes, tab.Pos)
				out[hex] = ShortcutEntry{PolyIDs: toPolyIDs(pl.PolyIDsAsSlice())}
			}
		default:
			return nil, fmt.Errorf("unknown ShortcutValue type %d at entry %d", entry.ValueType(), i)
		}
	}
	return out, nil
}

func toPolyIDs(u16 []uint16) []PolyID {
	if u16 == nil {
		return nil
	}
	out := make([]PolyID, len(u16))
	for i, v := range u16 {
		out[i] = PolyID(v)
	}
	return out
}

// Lookup resolves the shortcut entry for the given H3 cell and returns it
// as stored. A length-1 PolygonList is passed through unchanged; the build
// tool normalizes such cells to UniqueZone, and TimezoneAt handles a
// length-1 list from other producers defensively.
func (s *shortcutIndex) Lookup(cell h3.H3Index) (ShortcutEntry, bool) {
	e, ok := s.entries[cell]
	return e, ok
}
