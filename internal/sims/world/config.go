package world

import (
	"strconv"

	"lifescape/internal/sims/ecology"
	"lifescape/internal/sims/life"
	"lifescape/internal/sims/terrain"
)

// Config bundles the per-engine configurations with session settings.
type Config struct {
	Width  int
	Height int
	Seed   int64

	// MaxBrush caps the half extent accepted by PaintRegion.
	MaxBrush int

	Life    life.Config
	Terrain terrain.Config
	Eco     ecology.Config
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return FromMap(nil)
}

// FromMap populates the config from a string map. Keys are shared with the
// individual engines, so "w", "h" and "seed" reach all of them.
func FromMap(cfg map[string]string) Config {
	c := Config{
		Life:     life.FromMap(cfg),
		Terrain:  terrain.FromMap(cfg),
		Eco:      ecology.FromMap(cfg),
		MaxBrush: 64,
	}
	c.Width = c.Life.Width
	c.Height = c.Life.Height
	c.Seed = c.Life.Seed
	if v, ok := cfg["max_brush"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MaxBrush = parsed
		}
	}
	c.sync()
	return c
}

// sync pushes the session-wide dimensions and seed into every engine.
func (c *Config) sync() {
	c.Life.Width, c.Life.Height, c.Life.Seed = c.Width, c.Height, c.Seed
	c.Terrain.Width, c.Terrain.Height = c.Width, c.Height
	c.Eco.Width, c.Eco.Height, c.Eco.Seed = c.Width, c.Height, c.Seed
}
