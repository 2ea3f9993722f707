// Code styled after flatc-generated Go bindings (see
// internal/fb/polygon/polygon.go for provenance) for the narrow-zone-id
// variant of the shortcut schema:
//
//	union ShortcutValue { UniqueZone, PolygonList }
//	table UniqueZone { zone_id: uint8; }
//	table PolygonList { poly_ids: [uint16]; }
//	table HybridShortcutEntry {
//	  hex_id: uint64;
//	  value: ShortcutValue;
//	}
//	table HybridShortcutCollection {
//	  entries: [HybridShortcutEntry];
//	}
//
// Emitted to hybrid_shortcuts_uint8.fbs when a dataset has 256 or fewer
// zones.
package shortcut8

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// ShortcutValue is the union discriminator byte.
type ShortcutValue byte

const (
	ShortcutValueNONE        ShortcutValue = 0
	ShortcutValueUniqueZone  ShortcutValue = 1
	ShortcutValuePolygonList ShortcutValue = 2
)

// UniqueZone holds a single zone id covering an entire H3 cell.
type UniqueZone struct {
	_tab flatbuffers.Table
}

func (rcv *UniqueZone) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *UniqueZone) ZoneID() uint8 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint8(o + rcv._tab.Pos)
	}
	return 0
}

func UniqueZoneStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func UniqueZoneAddZoneID(builder *flatbuffers.Builder, zoneID uint8) {
	builder.PrependUint8Slot(0, zoneID, 0)
}
func UniqueZoneEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// PolygonList holds the ordered candidate polygon ids for a mixed-zone cell.
type PolygonList struct {
	_tab flatbuffers.Table
}

func (rcv *PolygonList) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *PolygonList) PolyIDs(j int) uint16 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetUint16(a + flatbuffers.UOffsetT(j*2))
	}
	return 0
}

func (rcv *PolygonList) PolyIDsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func (rcv *PolygonList) PolyIDsAsSlice() []uint16 {
	n := rcv.PolyIDsLength()
	if n == 0 {
		return nil
	}
	out := make([]uint16, n)
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	a := rcv._tab.Vector(o)
	for i := 0; i < n; i++ {
		out[i] = rcv._tab.GetUint16(a + flatbuffers.UOffsetT(i*2))
	}
	return out
}

func PolygonListStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func PolygonListAddPolyIDs(builder *flatbuffers.Builder, polyIDs flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, polyIDs, 0)
}
func PolygonListStartPolyIDsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(2, numElems, 2)
}
func PolygonListEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT { return builder.EndObject() }

// HybridShortcutEntry is one H3-cell -> ShortcutValue mapping.
type HybridShortcutEntry struct {
	_tab flatbuffers.Table
}

func (rcv *HybridShortcutEntry) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *HybridShortcutEntry) HexID() uint64 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.GetUint64(o + rcv._tab.Pos)
	}
	return 0
}

func (rcv *HybridShortcutEntry) ValueType() ShortcutValue {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(6))
	if o != 0 {
		return ShortcutValue(rcv._tab.GetByte(o + rcv._tab.Pos))
	}
	return ShortcutValueNONE
}

func (rcv *HybridShortcutEntry) Value(obj *flatbuffers.Table) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(8))
	if o != 0 {
		rcv._tab.Union(obj, o)
		return true
	}
	return false
}

func HybridShortcutEntryStart(builder *flatbuffers.Builder) { builder.StartObject(3) }
func HybridShortcutEntryAddHexID(builder *flatbuffers.Builder, hexID uint64) {
	builder.PrependUint64Slot(0, hexID, 0)
}
func HybridShortcutEntryAddValueType(builder *flatbuffers.Builder, valueType ShortcutValue) {
	builder.PrependByteSlot(1, byte(valueType), 0)
}
func HybridShortcutEntryAddValue(builder *flatbuffers.Builder, value flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(2, value, 0)
}
func HybridShortcutEntryEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}

// HybridShortcutCollection is the root table of the shortcut file.
type HybridShortcutCollection struct {
	_tab flatbuffers.Table
}

func GetRootAsHybridShortcutCollection(buf []byte, offset flatbuffers.UOffsetT) *HybridShortcutCollection {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &HybridShortcutCollection{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *HybridShortcutCollection) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *HybridShortcutCollection) Entries(obj *HybridShortcutEntry, j int) bool {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o == 0 {
		return false
	}
	x := rcv._tab.Vector(o)
	x += flatbuffers.UOffsetT(j) * 4
	x = rcv._tab.Indirect(x)
	obj.Init(rcv._tab.Bytes, x)
	return true
}

func (rcv *HybridShortcutCollection) EntriesLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func HybridShortcutCollectionStart(builder *flatbuffers.Builder) { builder.StartObject(1) }
func HybridShortcutCollectionAddEntries(builder *flatbuffers.Builder, entries flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, entries, 0)
}
func HybridShortcutCollectionStartEntriesVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}
func HybridShortcutCollectionEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
