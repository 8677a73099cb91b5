// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadTowerDefinitions reads a balance file and overrides the matching entries of TowerLibrary.
// It must be called once at startup, before any game is created. Returns the number of
// definitions applied.
func LoadTowerDefinitions(path string) (int, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return 0, fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	library := TowerLibrary
	for _, def := range towerDefs {
		t, ok := ParseTowerType(def.ID)
		if !ok {
			return 0, fmt.Errorf("unknown tower id %q", def.ID)
		}
		if def.Cost <= 0 || def.FireInterval <= 0 || def.Range <= 0 || def.Damage < 0 {
			return 0, fmt.Errorf("invalid stats for tower %q", def.ID)
		}
		if def.Name == "" {
			def.Name = library[t].Name
		}
		def.Color = library[t].Color
		library[t] = def
	}

	TowerLibrary = library
	return len(towerDefs), nil
}
