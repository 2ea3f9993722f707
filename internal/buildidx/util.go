// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildidx

import (
	"os"
	"strconv"
)

func mkdirAll(dir string) error { return os.MkdirAll(dir, 0o755) }

func itoa(n int) string { return strconv.Itoa(n) }
