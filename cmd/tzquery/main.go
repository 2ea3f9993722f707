// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

// Command tzquery is a minimal CLI wrapper around Finder.TimezoneAt: given
// a longitude and latitude, it prints the resolved zone name, or an empty
// line if none was found. Exit code 0 on success, non-zero on invalid
// coordinates or a construction failure. Not a normative interface --
// library callers should use package timezonefinder directly.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	timezonefinder "github.com/evanoberholster/timezonefinder"
)

func main() {
	dataDir := flag.String("data", "", "data directory (defaults to TIMEZONEFINDER_DATA_DIR or \".\")")
	memory := flag.Bool("memory", false, "load artefacts fully into memory instead of memory-mapping them")
	land := flag.Bool("land", false, "use timezone_at_land (ocean zones report no match)")
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: tzquery [-data dir] [-memory] [-land] <lng> <lat>")
		os.Exit(2)
	}
	lng, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzquery: invalid longitude %q\n", args[0])
		os.Exit(1)
	}
	lat, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzquery: invalid latitude %q\n", args[1])
		os.Exit(1)
	}

	mode := timezonefinder.ModeMmap
	if *memory {
		mode = timezonefinder.ModeMemory
	}
	f, err := timezonefinder.Open(timezonefinder.Config{DataDir: *dataDir, Mode: mode})
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzquery: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	query := f.TimezoneAt
	if *land {
		query = f.TimezoneAtLand
	}
	name, err := query(lng, lat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tzquery: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(name)
}
