// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildidx

import (
	"encoding/binary"
	"fmt"
	"os"
)

// npyHeaderLine builds a version-1.0 .npy header padded to a 16-byte
// boundary (magic + version + 2-byte header length + header text), the
// inverse of the reader in npy.go.
func npyHeaderLine(descr string, count int) []byte {
	body := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%d,), }", descr, count)
	// 10 bytes of preamble (magic+version+u16 length) precede the header text.
	total := 10 + len(body) + 1 // +1 for the trailing newline
	pad := (16 - total%16) % 16
	for i := 0; i < pad; i++ {
		body += " "
	}
	body += "\n"
	return []byte(body)
}

func writeNpyHeader(f *os.File, descr string, count int) error {
	if _, err := f.Write([]byte{0x93, 'N', 'U', 'M', 'P', 'Y', 1, 0}); err != nil {
		return err
	}
	header := npyHeaderLine(descr, count)
	var lenBuf [2]byte
	binary.LittleEndian.PutUint16(lenBuf[:], uint16(len(header)))
	if _, err := f.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := f.Write(header)
	return err
}

// WriteNpyI32 writes data as a little-endian <i4 .npy array.
func WriteNpyI32(path string, data []int32) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := writeNpyHeader(f, "<i4", len(data)); err != nil {
		return err
	}
	buf := make([]byte, 4*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	_, err = f.Write(buf)
	return err
}

// WriteNpyU16 writes data as a little-endian <u2 .npy array.
func WriteNpyU16(path string, data []uint16) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := writeNpyHeader(f, "<u2", len(data)); err != nil {
		return err
	}
	buf := make([]byte, 2*len(data))
	for i, v := range data {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	_, err = f.Write(buf)
	return err
}

// WriteNpyU8 writes data as a |u1 .npy array.
func WriteNpyU8(path string, data []uint8) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := writeNpyHeader(f, "|u1", len(data)); err != nil {
		return err
	}
	_, err = f.Write(data)
	return err
}
