package ecology

import (
	"fmt"

	simcore "lifescape/internal/core"
	"lifescape/pkg/core"
)

// Parameters reports the current tunables.
func (e *Ecosystem) Parameters() simcore.ParameterSnapshot {
	params := e.cfg.Params
	groups := []simcore.ParameterGroup{
		{
			Name: "World",
			Params: []simcore.Parameter{
				simcore.IntParam("w", "Width", e.cfg.Width),
				simcore.IntParam("h", "Height", e.cfg.Height),
				simcore.Int64Param("seed", "Seed", e.cfg.Seed),
			},
		},
		{
			Name: "Prey",
			Params: []simcore.Parameter{
				simcore.IntParam("prey", "Initial prey", params.InitialPrey),
				simcore.IntParam("prey_breed_after", "Prey breed after", params.PreyBreedAfter),
				simcore.IntParam("prey_litter_max", "Prey litter max", params.PreyLitterMax),
				simcore.FloatParam("explore_chance", "Explore chance", params.ExploreChance),
				simcore.IntParam("camouflage_jitter", "Camouflage jitter", params.CamouflageJitter),
				simcore.IntParam("max_prey", "Prey cap", params.MaxPrey),
			},
		},
		{
			Name: "Predators",
			Params: []simcore.Parameter{
				simcore.IntParam("predators", "Initial predators", params.InitialPredators),
				simcore.IntParam("predator_breed_after", "Predator breed after", params.PredatorBreedAfter),
				simcore.IntParam("predator_litter_max", "Predator litter max", params.PredatorLitterMax),
				simcore.IntParam("starve_after", "Starve after", params.StarveAfter),
				simcore.IntParam("sight_radius", "Sight radius", params.SightRadius),
				simcore.IntParam("max_predators", "Predator cap", params.MaxPredators),
			},
		},
		{
			Name: "Offspring",
			Params: []simcore.Parameter{
				simcore.IntParam("offspring_variance", "Color variance", params.OffspringVariance),
			},
		},
	}
	return simcore.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables adjustable from the HUD.
func (e *Ecosystem) ParameterControls() []simcore.ParameterControl {
	return []simcore.ParameterControl{
		{Key: "prey_breed_after", Label: "Prey breed", Type: simcore.ParamTypeInt, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "predator_breed_after", Label: "Hunter breed", Type: simcore.ParamTypeInt, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "starve_after", Label: "Starve after", Type: simcore.ParamTypeInt, Step: 1, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "sight_radius", Label: "Sight radius", Type: simcore.ParamTypeInt, Step: 1, Min: 0, Max: 32, HasMin: true, HasMax: true},
		{Key: "explore_chance", Label: "Explore", Type: simcore.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (e *Ecosystem) SetIntParameter(key string, value int) bool {
	if value < 0 {
		value = 0
	}
	p := &e.cfg.Params
	switch key {
	case "prey_breed_after":
		p.PreyBreedAfter = value
	case "predator_breed_after":
		p.PredatorBreedAfter = value
	case "starve_after":
		p.StarveAfter = value
	case "sight_radius":
		p.SightRadius = value
	case "camouflage_jitter":
		p.CamouflageJitter = value
	case "offspring_variance":
		p.OffspringVariance = value
	case "prey_litter_max":
		p.PreyLitterMax = max(value, 1)
	case "predator_litter_max":
		p.PredatorLitterMax = max(value, 1)
	case "max_prey":
		p.MaxPrey = value
	case "max_predators":
		p.MaxPredators = value
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable.
func (e *Ecosystem) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "explore_chance":
		if value < 0 {
			value = 0
		}
		if value > 1 {
			value = 1
		}
		e.cfg.Params.ExploreChance = value
		return true
	}
	return false
}

// Status returns the HUD status lines.
func (e *Ecosystem) Status() []string {
	s := e.stats
	return []string{
		fmt.Sprintf("Tick: %d", s.Tick),
		fmt.Sprintf("Prey: %d  Predators: %d", s.Prey, s.Predators),
		fmt.Sprintf("Born: %d/%d  Eaten: %d  Starved: %d", s.Last.PreyBorn, s.Last.PredatorsBorn, s.Last.Eaten, s.Last.Starved),
	}
}

// PaintCell drops a prey tinted like the ground beneath it.
func (e *Ecosystem) PaintCell(pos core.Cell) {
	e.Spawn(Prey, pos, varyColor(e.ground.ColorAt(pos), e.rng, e.cfg.Params.OffspringVariance))
}

// PaintRegion drops prey over a square window with probability p per cell.
func (e *Ecosystem) PaintRegion(center core.Cell, halfExtent int, p float64) {
	for dy := -halfExtent; dy <= halfExtent; dy++ {
		for dx := -halfExtent; dx <= halfExtent; dx++ {
			if e.rng.Chance(p) {
				e.PaintCell(center.Add(dx, dy))
			}
		}
	}
}

// ClearAll removes every agent.
func (e *Ecosystem) ClearAll() { e.Clear() }

// Brush reports the region used for painting prey.
func (e *Ecosystem) Brush() (int, float64) { return 4, 0.3 }
