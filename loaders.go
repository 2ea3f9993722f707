// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"errors"
	"os"

	json "github.com/goccy/go-json"
)

var errBBoxLengthMismatch = errors.New("bounding box vectors have mismatched lengths")

// loadI32Npy, loadU16Npy, and loadU8Npy always read their file fully into
// memory: the bounding-box vectors and zone index are small and consulted
// on every query, so keeping them as owned slices (rather than behind the
// mmap/in-memory source split used for the bulk coordinate data) avoids a
// page fault per access regardless of LoadMode.
func loadI32Npy(path string) ([]int32, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	out, err := readNpyI32(buf)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	return out, nil
}

func loadU16Npy(path string) ([]uint16, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	out, err := readNpyU16(buf)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	return out, nil
}

func loadU8Npy(path string) ([]uint8, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	out, err := readNpyU8(buf)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	return out, nil
}

func loadBytes(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, dataErrorf(path, err)
	}
	return buf, nil
}

func loadJSON(path string, v any) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return dataErrorf(path, err)
	}
	if err := json.Unmarshal(buf, v); err != nil {
		return dataErrorf(path, err)
	}
	return nil
}
