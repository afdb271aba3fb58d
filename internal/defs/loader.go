// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"elemental-td/internal/config"
)

//go:embed default_level.json
var defaultLevelJSON []byte

// DefaultLevel returns a fresh copy of the built-in level.
func DefaultLevel() (*Level, error) {
	l, err := ParseLevel(defaultLevelJSON)
	if err != nil {
		return nil, fmt.Errorf("built-in level: %w", err)
	}
	return l, nil
}

// LoadLevel reads and validates a level file.
func LoadLevel(path string) (*Level, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file: %w", err)
	}
	l, err := ParseLevel(file)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return l, nil
}

// ParseLevel decodes a level, fills defaults and validates it.
// Defaults apply only to keys missing from the file: an explicit 0 gold,
// a free fusion or an empty wave list are kept as written.
func ParseLevel(data []byte) (*Level, error) {
	l := Level{
		StartingGold:   config.StartingGold,
		StartingHealth: config.StartingHealth,
		Fusion:         RecipeBook{Cost: config.FusionCost},
		Waves:          DefaultWaves(),
	}
	if err := json.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to unmarshal level: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	log.Printf("Loaded level %q: %d towers, %d enemy types, %d recipes, %d waves",
		l.Name, len(l.Towers), len(l.Enemies), len(l.Fusion.Recipes), len(l.Waves))
	return &l, nil
}
