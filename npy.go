// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"encoding/binary"
	"fmt"
	"regexp"
	"strconv"
)

// npy implements just enough of the NumPy .npy format to read the
// flat, single-dtype vectors this package needs: the bounding-box arrays,
// poly_zone_ids, and zone_positions. No library in the reference corpus
// reads NumPy files, so this is a deliberate, narrow stdlib reader rather
// than a general-purpose npy package — see DESIGN.md.

var npyMagic = []byte{0x93, 'N', 'U', 'M', 'P', 'Y'}

var npyShapeRe = regexp.MustCompile(`'shape':\s*\(([^)]*)\)`)
var npyDescrRe = regexp.MustCompile(`'descr':\s*'([^']*)'`)

type npyHeader struct {
	descr string
	count int
}

// parseNpyHeader reads and validates the magic, version, and header
// dictionary of an .npy buffer and returns the dtype string and element
// count, plus the offset at which raw array data begins.
func parseNpyHeader(buf []byte) (npyHeader, int, error) {
	if len(buf) < 10 || string(buf[:6]) != string(npyMagic) {
		return npyHeader{}, 0, fmt.Errorf("not a valid .npy file: bad magic")
	}
	major := buf[6]
	var headerLen int
	var dataStart int
	switch major {
	case 1:
		headerLen = int(binary.LittleEndian.Uint16(buf[8:10]))
		dataStart = 10 + headerLen
	case 2, 3:
		if len(buf) < 12 {
			return npyHeader{}, 0, fmt.Errorf("truncated .npy header")
		}
		headerLen = int(binary.LittleEndian.Uint32(buf[8:12]))
		dataStart = 12 + headerLen
	default:
		return npyHeader{}, 0, fmt.Errorf("unsupported .npy version %d", major)
	}
	if dataStart > len(buf) {
		return npyHeader{}, 0, fmt.Errorf("truncated .npy header")
	}
	headerStr := string(buf[dataStart-headerLen : dataStart])

	descrMatch := npyDescrRe.FindStringSubmatch(headerStr)
	if descrMatch == nil {
		return npyHeader{}, 0, fmt.Errorf("missing descr in .npy header")
	}
	shapeMatch := npyShapeRe.FindStringSubmatch(headerStr)
	if shapeMatch == nil {
		return npyHeader{}, 0, fmt.Errorf("missing shape in .npy header")
	}
	count, err := parseShape1D(shapeMatch[1])
	if err != nil {
		return npyHeader{}, 0, err
	}
	return npyHeader{descr: descrMatch[1], count: count}, dataStart, nil
}

func parseShape1D(s string) (int, error) {
	// shapes of interest are always 1-D: "(1234,)"
	trimmed := regexp.MustCompile(`[,\s]+$`).ReplaceAllString(s, "")
	trimmed = regexp.MustCompile(`^[,\s]+`).ReplaceAllString(trimmed, "")
	if trimmed == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("unsupported multi-dimensional .npy shape %q", s)
	}
	return n, nil
}

func readNpyI32(buf []byte) ([]int32, error) {
	hdr, off, err := parseNpyHeader(buf)
	if err != nil {
		return nil, err
	}
	if hdr.descr != "<i4" && hdr.descr != "=i4" {
		return nil, fmt.Errorf("expected <i4 .npy array, got %q", hdr.descr)
	}
	need := off + hdr.count*4
	if need > len(buf) {
		return nil, fmt.Errorf("truncated .npy data: need %d bytes, have %d", need, len(buf))
	}
	out := make([]int32, hdr.count)
	for i := 0; i < hdr.count; i++ {
		out[i] = int32(binary.LittleEndian.Uint32(buf[off+i*4:]))
	}
	return out, nil
}

func readNpyU16(buf []byte) ([]uint16, error) {
	hdr, off, err := parseNpyHeader(buf)
	if err != nil {
		return nil, err
	}
	if hdr.descr != "<u2" && hdr.descr != "=u2" {
		return nil, fmt.Errorf("expected <u2 .npy array, got %q", hdr.descr)
	}
	need := off + hdr.count*2
	if need > len(buf) {
		return nil, fmt.Errorf("truncated .npy data: need %d bytes, have %d", need, len(buf))
	}
	out := make([]uint16, hdr.count)
	for i := 0; i < hdr.count; i++ {
		out[i] = binary.LittleEndian.Uint16(buf[off+i*2:])
	}
	return out, nil
}

func readNpyU8(buf []byte) ([]uint8, error) {
	hdr, off, err := parseNpyHeader(buf)
	if err != nil {
		return nil, err
	}
	if hdr.descr != "<u1" && hdr.descr != "=u1" && hdr.descr != "|u1" {
		return nil, fmt.Errorf("expected <u1 .npy array, got %q", hdr.descr)
	}
	need := off + hdr.count
	if need > len(buf) {
		return nil, fmt.Errorf("truncated .npy data: need %d bytes, have %d", need, len(buf))
	}
	out := make([]uint8, hdr.count)
	copy(out, buf[off:need])
	return out, nil
}
