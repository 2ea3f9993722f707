// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder_test

import (
	"os"
	"testing"

	timezonefinder "github.com/evanoberholster/timezonefinder"
)

func BenchmarkLookup(b *testing.B) {
	if _, err := os.Stat("testdata/timezone_names.json"); err != nil {
		b.Skip("testdata/ not populated; run cmd/tzbuild to generate fixtures")
	}

	for _, mode := range []struct {
		name string
		mode timezonefinder.LoadMode
	}{
		{"mmap", timezonefinder.ModeMmap},
		{"memory", timezonefinder.ModeMemory},
	} {
		b.Run(mode.name, func(b *testing.B) {
			f, err := timezonefinder.Open(timezonefinder.Config{DataDir: "testdata", Mode: mode.mode})
			if err != nil {
				b.Fatalf("%+v", err)
			}
			defer f.Close()

			benchLookup(b, f)
		})
	}
}

func benchLookup(b *testing.B, f *timezonefinder.Finder) {
	queries := []struct{ lng, lat float64 }{
		{-3.925778, 5.261417},   // Abidjan Airport
		{34.973889, -15.678889}, // Blantyre Airport
		{18.25674, -12.65945},
		{-87.6205, 41.8976},
		{-122.4023, 47.6897},
		{-73.6931, 42.7235},
		{-83.0223, 42.5807},
		{-84.8500, 36.8381},
		{-85.3583, 40.1674},
		{-86.7453, 37.9643},
		{-90.2417, 38.6043},
		{-104.8261, 41.1591},
		{-111.6348, 35.1991},
		{-115.6750, 43.1432},
		{-122.3382, 47.5886},
		{-134.4397, 58.3168},
		{-158.0493, 21.4381},
		{-80.0000, 42.7000},
		{-114.0161, 51.0036},
		{-68.1702, -16.4965},
		{115.8453, -31.9369},
		{-87.5000, 42.0000},
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q := queries[i%len(queries)]
		if _, err := f.TimezoneAt(q.lng, q.lat); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()
}
