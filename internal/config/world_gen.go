package config

import "cubic/internal/world"

// WorldGenSettings holds world generation configuration
type WorldGenSettings struct {
	Seed int64 `yaml:"seed"`
	// Flat replaces noise terrain with a flat grass plane at FlatHeight.
	Flat       bool `yaml:"flat"`
	FlatHeight int  `yaml:"flat_height"`
	// Layers is the number of vertical chunks generated per column.
	Layers int `yaml:"layers"`
}

// Generator returns the terrain generator described by the settings.
func (s WorldGenSettings) Generator() world.TerrainGenerator {
	if s.Flat {
		return world.NewFlatGenerator(s.FlatHeight)
	}
	return world.NewGenerator(s.Seed)
}
