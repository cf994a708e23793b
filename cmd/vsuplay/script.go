package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// writeStep is one entry in a register-write script: a register offset, a
// byte value, and the number of master cycles to advance before it takes
// effect.
type writeStep struct {
	AdvanceCycles uint32 `json:"advanceCycles"`
	Offset        uint16 `json:"offset"`
	Value         uint8  `json:"value"`
}

// script is a scripted sequence of register writes, used to drive the VSU
// from a file instead of from a live register interface.
type script struct {
	Steps       []writeStep `json:"steps"`
	TrailCycles uint32      `json:"trailCycles"`
}

// loadScript reads and parses a script file from path.
func loadScript(path string) (*script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("vsuplay: read script: %w", err)
	}

	var s script
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("vsuplay: parse script: %w", err)
	}
	return &s, nil
}
