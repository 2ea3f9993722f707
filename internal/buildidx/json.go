// Copyright 2018 Evan Oberholster.
//
// SPDX-License-Identifier: MIT

package buildidx

import (
	"os"

	json "github.com/goccy/go-json"
)

// WriteJSON marshals v and writes it to path, the same library the
// runtime side uses to read timezone_names.json and hole_registry.json.
func WriteJSON(path string, v any) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0o644)
}
