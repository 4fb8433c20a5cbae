// Package config reads the run description that drives a pathfinding run:
// grid dimensions, start and goal cells, and the rendering scale factor.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"grid_router/pkg/grid"
)

// ErrBadDimensions is returned for negative grid dimensions.
var ErrBadDimensions = errors.New("config: width and height must be non-negative")

// ErrBadScale is returned when a rendering output is requested with a
// non-positive scale.
var ErrBadScale = errors.New("config: scale must be positive")

// Config describes one pathfinding run.
type Config struct {
	Start  grid.Coordinate `json:"start"`
	Goal   grid.Coordinate `json:"goal"`
	Height int             `json:"height"`
	Width  int             `json:"width"`
	Scale  int             `json:"scale"`
}

// Parse decodes and validates a run description. Zero-area grids are legal
// (they produce an empty graph); negative dimensions are not.
func Parse(data []byte) (Config, error) {
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if cfg.Width < 0 || cfg.Height < 0 {
		return Config{}, ErrBadDimensions
	}
	return cfg, nil
}

// Load reads and parses the run description at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// ValidateScale checks the scale factor. Only the renderers consume it, so it
// is validated separately from Parse.
func (c Config) ValidateScale() error {
	if c.Scale <= 0 {
		return ErrBadScale
	}
	return nil
}
