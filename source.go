// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	"os"

	mmapgo "github.com/edsrzf/mmap-go"
)

// LoadMode selects how on-disk artefacts are brought into the process,
// selecting between a memory-mapped view of the file and a fully
// in-memory copy of its bytes.
type LoadMode int

const (
	// ModeMmap memory-maps the outer-boundary and hole coordinate files;
	// the OS backs the pages and the Finder holds the mapping for its
	// lifetime. The npy vectors, JSON tables and shortcut file are read
	// fully into memory in either mode. Default.
	ModeMmap LoadMode = iota
	// ModeMemory reads each artefact fully into an owned buffer up front
	// and releases the file handle immediately.
	ModeMemory
)

// source is the byte-slice provider abstraction: the PIP engine, polygon
// store, and shortcut index never see a *os.File or an mmap.MMap, only a
// []byte, so both backends satisfy identical call sites.
type source interface {
	Bytes() []byte
	Close() error
}

type mmapSource struct {
	f *os.File
	m mmapgo.MMap
}

func openMmapSource(path string) (*mmapSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	m, err := mmapgo.Map(f, mmapgo.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &mmapSource{f: f, m: m}, nil
}

func (s *mmapSource) Bytes() []byte { return s.m }

func (s *mmapSource) Close() error {
	err := s.m.Unmap()
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

type memSource struct {
	buf []byte
}

func openMemSource(path string) (*memSource, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &memSource{buf: buf}, nil
}

func (s *memSource) Bytes() []byte { return s.buf }

func (s *memSource) Close() error { return nil }

func openSource(mode LoadMode, path string) (source, error) {
	if mode == ModeMemory {
		return openMemSource(path)
	}
	return openMmapSource(path)
}
