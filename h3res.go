// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import (
	h3 "github.com/uber/h3-go/v3"
)

// shortcutResolution is the build-time-fixed H3 resolution the shortcut
// index is keyed at (typical value 3, ~41000 cells globally).
const shortcutResolution = 3

// ShortcutResolution exposes shortcutResolution to tooling that must key
// its H3 cells at the same fixed level this package reads at, such as the
// build-time indexer in cmd/tzbuild.
const ShortcutResolution = shortcutResolution

// h3CellOf returns the H3 cell id of (lng, lat) at shortcutResolution.
func h3CellOf(lng, lat float64) h3.H3Index {
	return h3.FromGeo(h3.GeoCoord{Latitude: lat, Longitude: lng}, shortcutResolution)
}
