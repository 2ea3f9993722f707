// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import "math"

// decimalPlacesShift fixes the scale factor used to map WGS84 degrees onto
// the int32 lattice every polygon and PIP test operates on. 7 decimal
// places gives ~1cm resolution at the equator and keeps every representable
// value comfortably inside int32 (see maxLngValInt below).
const decimalPlacesShift = 7

const (
	coord2intFactor = 1e7
	int2coordFactor = 1e-7

	maxLngVal = 180.0
	maxLatVal = 90.0

	maxLngValInt int32 = 180 * 1e7
	maxLatValInt int32 = 90 * 1e7
)

// CoordToInt converts a WGS84 degree value to the fixed-point int32 lattice.
func CoordToInt(d float64) int32 {
	return int32(math.Round(d * coord2intFactor))
}

// IntToCoord converts a lattice value back to WGS84 degrees.
func IntToCoord(i int32) float64 {
	return float64(i) * int2coordFactor
}

// ValidateCoordinate checks lng/lat are within the codec's domain. Exact
// boundary values ([-180,180] and [-90,90]) are accepted.
func ValidateCoordinate(lng, lat float64) error {
	if lng < -maxLngVal || lng > maxLngVal || math.IsNaN(lng) {
		return &InvalidCoordinateError{Lng: lng, Lat: lat}
	}
	if lat < -maxLatVal || lat > maxLatVal || math.IsNaN(lat) {
		return &InvalidCoordinateError{Lng: lng, Lat: lat}
	}
	return nil
}
