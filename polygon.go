// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"path/filepath"

	flatbuffers "github.com/google/flatbuffers/go"

	fbpolygon "github.com/evanoberholster/timezonefinder/internal/fb/polygon"
)

// polygonStore is a polygon table (outer boundaries or holes): a
// parallel bbox table plus a FlatBuffers PolygonCollection holding the
// flattened coordinate vectors.
type polygonStore struct {
	bbox       bboxTable
	collection *fbpolygon.PolygonCollection
	src        source
}

func openPolygonStore(dir string, mode LoadMode, boxPrefix, coordFile string) (*polygonStore, error) {
	xmin, err := loadI32Npy(filepath.Join(dir, boxPrefix, "xmin.npy"))
	if err != nil {
		return nil, err
	}
	xmax, err := loadI32Npy(filepath.Join(dir, boxPrefix, "xmax.npy"))
	if err != nil {
		return nil, err
	}
	ymin, err := loadI32Npy(filepath.Join(dir, boxPrefix, "ymin.npy"))
	if err != nil {
		return nil, err
	}
	ymax, err := loadI32Npy(filepath.Join(dir, boxPrefix, "ymax.npy"))
	if err != nil {
		return nil, err
	}
	if len(xmin) != len(xmax) || len(xmin) != len(ymin) || len(xmin) != len(ymax) {
		return nil, dataErrorf(boxPrefix, errBBoxLengthMismatch)
	}

	coordPath := filepath.Join(dir, coordFile)
	src, err := openSource(mode, coordPath)
	if err != nil {
		return nil, dataErrorf(coordPath, err)
	}
	raw, err := maybeDecompress(src.Bytes())
	if err != nil {
		src.Close()
		return nil, dataErrorf(coordPath, err)
	}

	coll := fbpolygon.GetRootAsPolygonCollection(raw, flatbuffers.UOffsetT(0))

	ps := &polygonStore{
		bbox: bboxTable{
			xmin: xmin, xmax: xmax, ymin: ymin, ymax: ymax,
		},
		collection: coll,
		src:        src,
	}
	return ps, nil
}

func (p *polygonStore) Close() error {
	if p.src == nil {
		return nil
	}
	return p.src.Close()
}

func (p *polygonStore) Count() int { return p.bbox.len() }

func (p *polygonStore) BBoxOf(id PolyID) BBox { return p.bbox.at(uint16(id)) }

func (p *polygonStore) outsideBBox(id PolyID, x, y int32) bool {
	return p.bbox.outside(uint16(id), x, y)
}

// CoordsOf returns the flattened [x0,y0,x1,y1,...] coordinate vector of the
// given polygon id.
func (p *polygonStore) CoordsOf(id PolyID) []int32 {
	var poly fbpolygon.Polygon
	if !p.collection.Polygons(&poly, int(id)) {
		return nil
	}
	return poly.CoordsAsSlice()
}
