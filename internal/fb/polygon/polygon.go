// Code styled after flatc-generated Go bindings for a small schema:
//
//	table Polygon {
//	  coords: [int32];
//	}
//
// Hand-written (no flatc available in this environment) but structurally
// identical to what flatc emits: a flatbuffers.Table wrapper plus vtable
// slot accessors, matching the accessor shapes already exercised by
// github.com/evanoberholster/timezoneLookup's own generated fb package.
package polygon

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// Polygon is a read-only view over a single flattened [x0,y0,x1,y1,...]
// coordinate vector stored in a FlatBuffers table.
type Polygon struct {
	_tab flatbuffers.Table
}

func GetRootAsPolygon(buf []byte, offset flatbuffers.UOffsetT) *Polygon {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &Polygon{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *Polygon) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Polygon) Table() flatbuffers.Table { return rcv._tab }

// Coords returns the j-th int32 of the flattened coordinate vector.
func (rcv *Polygon) Coords(j int) int32 {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		a := rcv._tab.Vector(o)
		return rcv._tab.GetInt32(a + flatbuffers.UOffsetT(j*4))
	}
	return 0
}

func (rcv *Polygon) CoordsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

// CoordsAsSlice copies the whole flat coordinate vector out. Not part of
// flatc's default output but a mechanical extension of it: callers need
// the whole vector on every PIP test, so copying once here beats N calls
// to Coords(j).
func (rcv *Polygon) CoordsAsSlice() []int32 {
	n := rcv.CoordsLength()
	if n == 0 {
		return nil
	}
	out := make([]int32, n)
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	a := rcv._tab.Vector(o)
	for i := 0; i < n; i++ {
		out[i] = rcv._tab.GetInt32(a + flatbuffers.UOffsetT(i*4))
	}
	return out
}

func PolygonStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func PolygonAddCoords(builder *flatbuffers.Builder, coords flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, coords, 0)
}

func PolygonStartCoordsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func PolygonEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
