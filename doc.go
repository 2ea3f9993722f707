// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

// Package timezonefinder resolves the IANA time-zone name for any point on
// the Earth's surface, including oceans (filled by Etc/GMT±X zones so every
// coordinate has an answer).
//
// A Finder loads a compact on-disk geospatial index -- polygon boundaries,
// holes, a zone table, and an H3-keyed shortcut index -- and answers
// queries with a shortcut lookup plus, at most, a handful of point-in-polygon
// tests:
//
//	f, err := timezonefinder.Open(timezonefinder.Config{DataDir: "testdata"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer f.Close()
//
//	name, err := f.TimezoneAt(13.358, 52.5061) // "Europe/Berlin"
package timezonefinder

//go:generate flatc --go --gen-onefile -o internal/fb/polygon fbschema/polygon.fbs
//go:generate flatc --go --gen-onefile -o internal/fb/shortcut8 fbschema/hybrid_shortcuts_uint8.fbs
//go:generate flatc --go --gen-onefile -o internal/fb/shortcut16 fbschema/hybrid_shortcuts_uint16.fbs
