// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
)

// Config for the period command. A JSON file given with -c overrides flags.
type Config struct {
	Size    int    `json:"size"`
	Period  *int   `json:"period,omitempty"`
	Seed    *int64 `json:"seed,omitempty"`
	Phrase  string `json:"phrase"`
	Shots   int    `json:"shots"`
	Plain   bool   `json:"plain"`
	Circuit bool   `json:"circuit"`
	Log     string `json:"log"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
