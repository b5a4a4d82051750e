package world

import (
	"fmt"
	"image/color"
	"log"

	simcore "lifescape/internal/core"
	"lifescape/internal/sims/ecology"
	"lifescape/internal/sims/life"
	"lifescape/internal/sims/terrain"
	"lifescape/pkg/core"
)

// Stats collects the counters of every engine after the latest tick.
type Stats struct {
	Tick      int
	Active    int
	Potential int
	Eco       ecology.Stats
}

// Session owns one seeded RNG and the three engines it drives. It is not safe
// for concurrent use; a tick always runs to completion.
type Session struct {
	cfg Config
	rng *core.RNG

	terrain *terrain.Terrain
	life    *life.Life
	eco     *ecology.Ecosystem

	tick int
}

// New builds a session and generates its first world from cfg.Seed.
func New(cfg Config) *Session {
	cfg.sync()
	s := &Session{cfg: cfg}
	s.Reset(0)
	return s
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "world" }

// Size returns the viewport dimensions.
func (s *Session) Size() simcore.Size { return simcore.Size{W: s.cfg.Width, H: s.cfg.Height} }

// Reset regenerates terrain, soup and populations from seed. A zero seed
// reuses the configured one.
func (s *Session) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.rng = core.NewRNG(seed)
	s.terrain = terrain.NewWithRNG(s.cfg.Terrain, s.rng)
	s.life = life.NewWithRNG(s.cfg.Life, s.rng)
	s.life.Soup()
	s.eco = ecology.New(s.cfg.Eco, s.terrain, s.rng)
	s.eco.Populate()
	s.tick = 0
	log.Printf("world: reset with seed %d (%d live cells, %d prey, %d predators)",
		seed, s.life.ActiveCount(), len(s.eco.Prey()), len(s.eco.Predators()))
}

// Step advances one tick.
func (s *Session) Step() { s.AdvanceTick() }

// AdvanceTick runs one automaton epoch followed by one ecosystem tick.
func (s *Session) AdvanceTick() {
	s.life.Advance()
	s.eco.Tick()
	s.tick++
}

// PaintCell stimulates one automaton cell.
func (s *Session) PaintCell(pos core.Cell) { s.life.StimulateCell(pos) }

// PaintRegion stochastically stimulates a square window. The half extent is
// clamped to the session's MaxBrush.
func (s *Session) PaintRegion(center core.Cell, halfExtent int, p float64) {
	if halfExtent > s.cfg.MaxBrush {
		halfExtent = s.cfg.MaxBrush
	}
	s.life.StimulateRegion(center, halfExtent, p)
}

// ClearAll empties the automaton. Terrain and populations are untouched.
func (s *Session) ClearAll() { s.life.Clear() }

// Brush reports the region painted by PaintRegion callers.
func (s *Session) Brush() (int, float64) {
	radius, density := s.life.Brush()
	return min(radius, s.cfg.MaxBrush), density
}

// HeightAt returns the terrain height at c.
func (s *Session) HeightAt(c core.Cell) float64 { return s.terrain.HeightAt(c) }

// BiomeAt returns the terrain biome at c.
func (s *Session) BiomeAt(c core.Cell) terrain.Biome { return s.terrain.BiomeAt(c) }

// IsWalkable reports whether agents may occupy c.
func (s *Session) IsWalkable(c core.Cell) bool { return s.terrain.IsWalkable(c) }

// ColorAt returns the cached terrain color at c.
func (s *Session) ColorAt(c core.Cell) color.RGBA { return s.terrain.ColorAt(c) }

// Heights exposes the terrain height field.
func (s *Session) Heights() *core.Grid[float64] { return s.terrain.Heights() }

// EachActive calls fn for every live automaton cell.
func (s *Session) EachActive(fn func(core.Cell)) { s.life.EachActive(fn) }

// EachPotential calls fn for every cell queued for reexamination.
func (s *Session) EachPotential(fn func(core.Cell)) { s.life.EachPotential(fn) }

// EachAgent calls fn with the position and color of every live agent.
func (s *Session) EachAgent(fn func(core.Cell, color.RGBA)) { s.eco.EachAgent(fn) }

// Terrain returns the session's terrain.
func (s *Session) Terrain() *terrain.Terrain { return s.terrain }

// Life returns the session's automaton.
func (s *Session) Life() *life.Life { return s.life }

// Ecosystem returns the session's ecosystem.
func (s *Session) Ecosystem() *ecology.Ecosystem { return s.eco }

// Stats returns the counters after the latest tick.
func (s *Session) Stats() Stats {
	return Stats{
		Tick:      s.tick,
		Active:    s.life.ActiveCount(),
		Potential: s.life.PotentialCount(),
		Eco:       s.eco.Stats(),
	}
}

// Status returns the HUD status lines.
func (s *Session) Status() []string {
	lines := []string{fmt.Sprintf("Tick: %d  Walkable: %.0f%%", s.tick, 100*s.terrain.WalkableFraction())}
	lines = append(lines, s.life.Status()...)
	st := s.eco.Stats()
	lines = append(lines,
		fmt.Sprintf("Prey: %d  Predators: %d", st.Prey, st.Predators),
		fmt.Sprintf("Eaten: %d  Starved: %d", st.Total.Eaten, st.Total.Starved),
	)
	return lines
}

// Parameters merges the engine snapshots.
func (s *Session) Parameters() simcore.ParameterSnapshot {
	var groups []simcore.ParameterGroup
	groups = append(groups, s.life.Parameters().Groups...)
	groups = append(groups, s.terrain.Parameters().Groups...)
	for _, g := range s.eco.Parameters().Groups {
		if g.Name == "World" {
			continue
		}
		groups = append(groups, g)
	}
	return simcore.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable tunables of every engine.
func (s *Session) ParameterControls() []simcore.ParameterControl {
	controls := append([]simcore.ParameterControl(nil), s.life.ParameterControls()...)
	return append(controls, s.eco.ParameterControls()...)
}

// SetIntParameter forwards to whichever engine owns key.
func (s *Session) SetIntParameter(key string, value int) bool {
	if key == "brush_radius" && value > s.cfg.MaxBrush {
		value = s.cfg.MaxBrush
	}
	return s.life.SetIntParameter(key, value) || s.eco.SetIntParameter(key, value)
}

// SetFloatParameter forwards to whichever engine owns key.
func (s *Session) SetFloatParameter(key string, value float64) bool {
	return s.life.SetFloatParameter(key, value) || s.eco.SetFloatParameter(key, value)
}

func init() {
	simcore.Register("world", func(cfg map[string]string) simcore.Sim {
		return New(FromMap(cfg))
	})
}
