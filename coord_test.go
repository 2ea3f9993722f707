// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder

import "testing"

func TestCoordRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 180, -180, 90, -90, 13.358, -74.006, 52.5061, 0.0000001, -0.0000001}
	for _, d := range values {
		got := IntToCoord(CoordToInt(d))
		if diff := got - d; diff > 1e-6 || diff < -1e-6 {
			t.Errorf("round-trip %v -> %v -> %v, diff %v exceeds 1e-7 resolution", d, CoordToInt(d), got, diff)
		}
	}
}

func TestCoordToIntBoundaries(t *testing.T) {
	if CoordToInt(180) != maxLngValInt {
		t.Errorf("CoordToInt(180) = %d, want %d", CoordToInt(180), maxLngValInt)
	}
	if CoordToInt(-180) != -maxLngValInt {
		t.Errorf("CoordToInt(-180) = %d, want %d", CoordToInt(-180), -maxLngValInt)
	}
	if CoordToInt(90) != maxLatValInt {
		t.Errorf("CoordToInt(90) = %d, want %d", CoordToInt(90), maxLatValInt)
	}
}

func TestValidateCoordinate(t *testing.T) {
	valid := [][2]float64{
		{0, 0}, {180, 90}, {-180, -90}, {13.358, 52.5061}, {179.9999, 65.2}, {-179.9999, 65.2},
	}
	for _, v := range valid {
		if err := ValidateCoordinate(v[0], v[1]); err != nil {
			t.Errorf("ValidateCoordinate(%v, %v) = %v, want nil", v[0], v[1], err)
		}
	}

	invalid := [][2]float64{
		{180.01, 0}, {-180.01, 0}, {0, 90.01}, {0, -90.01}, {181, 0}, {0, 91},
	}
	for _, v := range invalid {
		if err := ValidateCoordinate(v[0], v[1]); err == nil {
			t.Errorf("ValidateCoordinate(%v, %v) = nil, want InvalidCoordinateError", v[0], v[1])
		} else if _, ok := err.(*InvalidCoordinateError); !ok {
			t.Errorf("ValidateCoordinate(%v, %v) returned %T, want *InvalidCoordinateError", v[0], v[1], err)
		}
	}
}
