package terrain

import "strconv"

// Thresholds splits the height range into ordered biome bands.
type Thresholds struct {
	OceanMax    float64
	BeachMax    float64
	MountainMin float64
	SnowMin     float64
}

// Config controls terrain synthesis.
type Config struct {
	// Width and Height describe the canvas the height field must cover.
	Width  int
	Height int

	Seed int64

	// Roughness is the initial perturbation amplitude; Damping multiplies it
	// after every diamond-square round and must be below 1.
	Roughness float64
	Damping   float64

	// ColorJitter bounds the per-cell brightness offset of textured bands.
	ColorJitter int

	Bands Thresholds
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:       320,
		Height:      240,
		Seed:        1337,
		Roughness:   1.0,
		Damping:     0.55,
		ColorJitter: 12,
		Bands: Thresholds{
			OceanMax:    -0.08,
			BeachMax:    -0.02,
			MountainMin: 0.32,
			SnowMin:     0.52,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["terrain_seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	} else if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["roughness"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Roughness = parsed
		}
	}
	if v, ok := cfg["damping"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 && parsed < 1 {
			c.Damping = parsed
		}
	}
	if v, ok := cfg["color_jitter"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ColorJitter = parsed
		}
	}
	parseBand := func(key string, dst *float64) {
		if v, ok := cfg[key]; ok {
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= -1 && parsed <= 1 {
				*dst = parsed
			}
		}
	}
	parseBand("ocean_max", &c.Bands.OceanMax)
	parseBand("beach_max", &c.Bands.BeachMax)
	parseBand("mountain_min", &c.Bands.MountainMin)
	parseBand("snow_min", &c.Bands.SnowMin)
	c.Bands = c.Bands.normalized()
	return c
}

// normalized keeps the bands ordered so classification stays well defined.
func (t Thresholds) normalized() Thresholds {
	if t.BeachMax < t.OceanMax {
		t.BeachMax = t.OceanMax
	}
	if t.MountainMin < t.BeachMax {
		t.MountainMin = t.BeachMax
	}
	if t.SnowMin < t.MountainMin {
		t.SnowMin = t.MountainMin
	}
	return t
}
