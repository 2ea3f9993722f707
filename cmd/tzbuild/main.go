// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

// Command tzbuild turns a small JSON polygon description into the on-disk
// artefacts a Finder loads: npy bounding-box and zone vectors, JSON name
// and hole tables, and the FlatBuffers polygon and shortcut collections.
// It is intentionally not a GeoJSON ingestion pipeline -- reading the
// source geometry is a separate collaborator's job -- so its input format
// is a flattened intermediate representation:
//
//	{
//	  "zones": ["Europe/Berlin", "Etc/GMT-1"],
//	  "polygons": [{"zone": 0, "coords": [130000000, 525000000, ...]}],
//	  "holes": [{"owner": 0, "coords": [...]}]
//	}
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	json "github.com/goccy/go-json"

	"github.com/evanoberholster/timezonefinder/internal/buildcache"
	"github.com/evanoberholster/timezonefinder/internal/buildidx"
)

type inputPolygon struct {
	Zone   uint16  `json:"zone"`
	Coords []int32 `json:"coords"`
}

type inputHole struct {
	Owner  int     `json:"owner"`
	Coords []int32 `json:"coords"`
}

type inputDataset struct {
	Zones    []string       `json:"zones"`
	Polygons []inputPolygon `json:"polygons"`
	Holes    []inputHole    `json:"holes"`
}

func main() {
	in := flag.String("in", "", "path to the input dataset JSON file")
	out := flag.String("out", ".", "output directory for the built artefacts")
	compress := flag.Bool("compress", false, "zstd-compress the coordinate FlatBuffers files")
	cachePath := flag.String("cache", "", "optional bbolt cache file for incremental rebuilds")
	encoding := flag.String("cache-encoding", "msgpack", "cache value encoding: msgpack or cbor")
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: tzbuild -in dataset.json -out outdir")
		os.Exit(2)
	}

	buf, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("tzbuild: %v", err)
	}
	var input inputDataset
	if err := json.Unmarshal(buf, &input); err != nil {
		log.Fatalf("tzbuild: parsing %s: %v", *in, err)
	}

	if err := os.MkdirAll(*out, 0o755); err != nil {
		log.Fatalf("tzbuild: %v", err)
	}

	opts := buildidx.Options{OutDir: *out, Compress: *compress}
	if *cachePath != "" {
		enc, err := buildcache.EncodingFromString(*encoding)
		if err != nil {
			log.Fatalf("tzbuild: %v", err)
		}
		cache, err := buildcache.Open(*cachePath, enc)
		if err != nil {
			log.Fatalf("tzbuild: opening cache: %v", err)
		}
		defer cache.Close()
		opts.Cache = cache
	}

	ds := buildidx.Dataset{ZoneNames: input.Zones}
	for _, p := range input.Polygons {
		ds.Polygons = append(ds.Polygons, buildidx.PolygonInput{ZoneID: p.Zone, Coords: p.Coords})
	}
	for _, h := range input.Holes {
		ds.Holes = append(ds.Holes, buildidx.HoleInput{OwnerIndex: h.Owner, Coords: h.Coords})
	}

	start := time.Now()
	fmt.Printf("tzbuild: building %d zones, %d polygons, %d holes into %s\n",
		len(ds.ZoneNames), len(ds.Polygons), len(ds.Holes), *out)
	if err := buildidx.Build(opts, ds); err != nil {
		log.Fatalf("tzbuild: %v", err)
	}
	fmt.Printf("tzbuild: done in %s\n", time.Since(start))
}
