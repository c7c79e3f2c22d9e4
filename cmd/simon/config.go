// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"os"
)

// Config for the simon command. A JSON file given with -c overrides flags.
type Config struct {
	Size     int    `json:"size"`
	Secret   string `json:"secret"`
	Seed     *int64 `json:"seed,omitempty"`
	Phrase   string `json:"phrase"`
	Shots    int    `json:"shots"`
	Attempts int    `json:"attempts"`
	Circuit  bool   `json:"circuit"`
	Log      string `json:"log"`
}

func parseJSONConfig(config *Config, path string) error {
	file, err := os.Open(path) // For read access.
	if err != nil {
		return err
	}
	defer file.Close()

	return json.NewDecoder(file).Decode(config)
}
