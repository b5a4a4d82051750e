package ecology

import "strconv"

// Params holds tunable thresholds and probabilities for the ecosystem.
type Params struct {
	InitialPrey      int `yaml:"prey"`
	InitialPredators int `yaml:"predators"`

	// Breed timers must exceed these values before an agent reproduces.
	PreyBreedAfter     int `yaml:"prey_breed_after"`
	PredatorBreedAfter int `yaml:"predator_breed_after"`
	// StarveAfter is the number of ticks a predator survives without eating.
	StarveAfter int `yaml:"starve_after"`

	SightRadius   int     `yaml:"sight_radius"`
	ExploreChance float64 `yaml:"explore_chance"`

	// CamouflageJitter perturbs the color a prey tries to blend into.
	CamouflageJitter int `yaml:"camouflage_jitter"`
	// OffspringVariance bounds the per-channel color drift of newborns.
	OffspringVariance int `yaml:"offspring_variance"`

	PreyLitterMax     int `yaml:"prey_litter_max"`
	PredatorLitterMax int `yaml:"predator_litter_max"`

	// Population caps; zero disables the cap.
	MaxPrey      int `yaml:"max_prey"`
	MaxPredators int `yaml:"max_predators"`
}

// Config controls the ecosystem dimensions and tunables.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  320,
		Height: 240,
		Seed:   1337,
		Params: Params{
			InitialPrey:        400,
			InitialPredators:   40,
			PreyBreedAfter:     8,
			PredatorBreedAfter: 20,
			StarveAfter:        25,
			SightRadius:        6,
			ExploreChance:      0.15,
			CamouflageJitter:   24,
			OffspringVariance:  12,
			PreyLitterMax:      7,
			PredatorLitterMax:  3,
			MaxPrey:            20000,
			MaxPredators:       4000,
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
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	ints := []struct {
		key string
		dst *int
		min int
	}{
		{"prey", &c.Params.InitialPrey, 0},
		{"predators", &c.Params.InitialPredators, 0},
		{"prey_breed_after", &c.Params.PreyBreedAfter, 0},
		{"predator_breed_after", &c.Params.PredatorBreedAfter, 0},
		{"starve_after", &c.Params.StarveAfter, 0},
		{"sight_radius", &c.Params.SightRadius, 0},
		{"camouflage_jitter", &c.Params.CamouflageJitter, 0},
		{"offspring_variance", &c.Params.OffspringVariance, 0},
		{"prey_litter_max", &c.Params.PreyLitterMax, 1},
		{"predator_litter_max", &c.Params.PredatorLitterMax, 1},
		{"max_prey", &c.Params.MaxPrey, 0},
		{"max_predators", &c.Params.MaxPredators, 0},
	}
	for _, spec := range ints {
		if v, ok := cfg[spec.key]; ok {
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= spec.min {
				*spec.dst = parsed
			}
		}
	}
	if v, ok := cfg["explore_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.ExploreChance = parsed
		}
	}
	return c
}
