// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// zstdMagic is the 4-byte frame magic number; coordinate files may be
// stored compressed with it and readers must transparently decompress.
var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func maybeDecompress(buf []byte) ([]byte, error) {
	if len(buf) < 4 || !bytes.Equal(buf[:4], zstdMagic) {
		return buf, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: init decoder: %w", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(buf, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd: decompress: %w", err)
	}
	return out, nil
}
