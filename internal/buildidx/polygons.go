// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildidx

import (
	"os"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"

	fbpolygon "github.com/evanoberholster/timezonefinder/internal/fb/polygon"
)

// WritePolygonCollection serializes polys (each a flattened [x0,y0,x1,y1,...]
// coordinate vector) as a FlatBuffers PolygonCollection. When compress is
// true the output is Zstandard-framed, matching the magic number the
// runtime's zstd.go auto-detects.
func WritePolygonCollection(path string, polys [][]int32, compress bool) error {
	b := flatbuffers.NewBuilder(1024)

	offsets := make([]flatbuffers.UOffsetT, len(polys))
	for i, coords := range polys {
		fbpolygon.PolygonStartCoordsVector(b, len(coords))
		for j := len(coords) - 1; j >= 0; j-- {
			b.PrependInt32(coords[j])
		}
		coordsVec := b.EndVector(len(coords))

		fbpolygon.PolygonStart(b)
		fbpolygon.PolygonAddCoords(b, coordsVec)
		offsets[i] = fbpolygon.PolygonEnd(b)
	}

	fbpolygon.PolygonCollectionStartPolygonsVector(b, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		b.PrependUOffsetT(offsets[i])
	}
	polysVec := b.EndVector(len(offsets))

	fbpolygon.PolygonCollectionStart(b)
	fbpolygon.PolygonCollectionAddPolygons(b, polysVec)
	root := fbpolygon.PolygonCollectionEnd(b)
	b.Finish(root)

	return writeMaybeCompressed(path, b.FinishedBytes(), compress)
}

func writeMaybeCompressed(path string, buf []byte, compress bool) error {
	if !compress {
		return os.WriteFile(path, buf, 0o644)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return err
	}
	defer enc.Close()
	return os.WriteFile(path, enc.EncodeAll(buf, nil), 0o644)
}
