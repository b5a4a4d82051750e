package life

import "strconv"

// Config controls the sparse Life simulation. Width and Height only size the
// viewport; the plane itself is unbounded.
type Config struct {
	Width  int
	Height int

	Seed int64
	Rule string

	// SoupRadius and SoupDensity describe the random region stimulated on
	// Reset. A zero radius or density leaves the plane empty.
	SoupRadius  int
	SoupDensity float64

	// BrushRadius and BrushDensity describe the region painted by
	// PaintRegion when the caller does not supply its own window.
	BrushRadius  int
	BrushDensity float64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:        320,
		Height:       240,
		Seed:         42,
		Rule:         "B3/S23",
		SoupRadius:   40,
		SoupDensity:  0.35,
		BrushRadius:  50,
		BrushDensity: 0.5,
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["rule"]; ok && v != "" {
		c.Rule = v
	}
	if v, ok := cfg["soup_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SoupRadius = parsed
		}
	}
	if v, ok := cfg["soup_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SoupDensity = parsed
		}
	}
	if v, ok := cfg["brush_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.BrushRadius = parsed
		}
	}
	if v, ok := cfg["brush_density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.BrushDensity = parsed
		}
	}
	return c
}
