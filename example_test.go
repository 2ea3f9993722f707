// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package timezonefinder_test

import (
	"fmt"

	timezonefinder "github.com/evanoberholster/timezonefinder"
)

func ExampleFinder_TimezoneAt() {
	f, err := timezonefinder.Open(timezonefinder.Config{
		DataDir: "testdata",
		Mode:    timezonefinder.ModeMmap,
	})
	if err != nil {
		fmt.Println(err)
	}
	defer f.Close()

	res, err := f.TimezoneAt(-3.925778, 5.261417)
	if err != nil {
		fmt.Println(err)
	}
	fmt.Println("Query Result: ", res)
}
