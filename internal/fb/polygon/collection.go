// See polygon.go for provenance notes. Schema:
//
//	table PolygonCollection {
//	  polygons: [Polygon];
//	}
package polygon

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

type PolygonCollection struct {
	_tab flatbuffers.Table
}

func GetRootAsPolygonCollection(buf []byte, offset flatbuffers.UOffsetT) *PolygonCollection {
	n := flatbuffers.GetUOffsetT(buf[offset:])
	x := &PolygonCollection{}
	x.Init(buf, n+offset)
	return x
}

func (rcv *PolygonCollection) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *PolygonCollection) Polygons(obj *Polygon, j int) bool {
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

func (rcv *PolygonCollection) PolygonsLength() int {
	o := flatbuffers.UOffsetT(rcv._tab.Offset(4))
	if o != 0 {
		return rcv._tab.VectorLen(o)
	}
	return 0
}

func PolygonCollectionStart(builder *flatbuffers.Builder) {
	builder.StartObject(1)
}

func PolygonCollectionAddPolygons(builder *flatbuffers.Builder, polygons flatbuffers.UOffsetT) {
	builder.PrependUOffsetTSlot(0, polygons, 0)
}

func PolygonCollectionStartPolygonsVector(builder *flatbuffers.Builder, numElems int) flatbuffers.UOffsetT {
	return builder.StartVector(4, numElems, 4)
}

func PolygonCollectionEnd(builder *flatbuffers.Builder) flatbuffers.UOffsetT {
	return builder.EndObject()
}
