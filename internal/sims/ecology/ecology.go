package ecology

import (
	"image/color"
	"log"

	simcore "lifescape/internal/core"
	"lifescape/pkg/core"
)

// Ground is the terrain the agents walk on.
type Ground interface {
	Size() simcore.Size
	IsWalkable(c core.Cell) bool
	ColorAt(c core.Cell) color.RGBA
}

// TickStats counts what happened during ticks.
type TickStats struct {
	PreyBorn      int `yaml:"prey_born"`
	PredatorsBorn int `yaml:"predators_born"`
	Eaten         int `yaml:"eaten"`
	Starved       int `yaml:"starved"`
}

func (s *TickStats) add(o TickStats) {
	s.PreyBorn += o.PreyBorn
	s.PredatorsBorn += o.PredatorsBorn
	s.Eaten += o.Eaten
	s.Starved += o.Starved
}

// Stats summarizes the populations after the most recent tick.
type Stats struct {
	Tick      int
	Prey      int
	Predators int
	Last      TickStats
	Total     TickStats
}

// Ecosystem advances predator and prey populations over a Ground. Agents are
// owned by the two population slices; the occupancy index only refers to
// them by handle.
type Ecosystem struct {
	cfg    Config
	ground Ground
	rng    *core.RNG

	prey      []Agent
	predators []Agent
	index     occupancy

	nextID uint64
	live   [2]int
	stats  Stats
}

// New returns an empty ecosystem on ground. The caller keeps ownership of
// rng and must not use it concurrently.
func New(cfg Config, ground Ground, rng *core.RNG) *Ecosystem {
	return &Ecosystem{cfg: cfg, ground: ground, rng: rng, index: occupancy{}}
}

// Name returns the simulation identifier.
func (e *Ecosystem) Name() string { return "ecosystem" }

// Size reports the ground dimensions.
func (e *Ecosystem) Size() simcore.Size { return e.ground.Size() }

// Reset reseeds the RNG and repopulates. A zero seed reuses the configured one.
func (e *Ecosystem) Reset(seed int64) {
	if seed == 0 {
		seed = e.cfg.Seed
	}
	e.rng = core.NewRNG(seed)
	e.Populate()
}

// Step advances one tick.
func (e *Ecosystem) Step() { e.Tick() }

// Populate removes every agent and scatters the initial populations over
// random walkable cells.
func (e *Ecosystem) Populate() {
	e.Clear()
	placed := e.scatter(Prey, e.cfg.Params.InitialPrey)
	hunters := e.scatter(Predator, e.cfg.Params.InitialPredators)
	e.stats.Prey, e.stats.Predators = placed, hunters
	if placed < e.cfg.Params.InitialPrey || hunters < e.cfg.Params.InitialPredators {
		log.Printf("ecosystem: placed %d/%d prey and %d/%d predators; not enough open ground",
			placed, e.cfg.Params.InitialPrey, hunters, e.cfg.Params.InitialPredators)
	}
}

// Clear removes every agent and resets the counters.
func (e *Ecosystem) Clear() {
	e.prey = e.prey[:0]
	e.predators = e.predators[:0]
	clear(e.index)
	e.nextID = 0
	e.live = [2]int{}
	e.stats = Stats{}
}

func (e *Ecosystem) scatter(s Species, count int) int {
	size := e.ground.Size()
	if count <= 0 || size.W <= 0 || size.H <= 0 {
		return 0
	}
	placed := 0
	for attempts := count * 20; attempts > 0 && placed < count; attempts-- {
		c := core.Cell{X: e.rng.IntN(size.W), Y: e.rng.IntN(size.H)}
		if !e.ground.IsWalkable(c) || e.occupied(c) {
			continue
		}
		col := predatorColor
		if s == Prey {
			col = varyColor(e.ground.ColorAt(c), e.rng, e.cfg.Params.OffspringVariance)
		}
		e.add(Agent{Species: s, Pos: c, Prev: c, Color: col})
		placed++
	}
	return placed
}

// Spawn places one agent at c if the cell is walkable and free.
func (e *Ecosystem) Spawn(s Species, c core.Cell, col color.RGBA) bool {
	if !e.ground.IsWalkable(c) || e.occupied(c) {
		return false
	}
	e.add(Agent{Species: s, Pos: c, Prev: c, Color: col})
	return true
}

// add appends a to its population and indexes it.
func (e *Ecosystem) add(a Agent) Handle {
	e.nextID++
	a.ID = e.nextID
	a.Alive = true
	h := Handle{Species: a.Species}
	if a.Species == Predator {
		h.Slot = len(e.predators)
		e.predators = append(e.predators, a)
	} else {
		h.Slot = len(e.prey)
		e.prey = append(e.prey, a)
	}
	e.index[a.Pos] = h
	e.live[a.Species]++
	return h
}

// Tick runs one full ecosystem step: the prey phase, a prey cleanup, the
// predator phase and a final cleanup that rebuilds the occupancy index.
func (e *Ecosystem) Tick() {
	var ts TickStats

	for i, n := 0, len(e.prey); i < n; i++ {
		e.stepPrey(i, &ts)
	}
	e.prey = compact(e.prey)
	e.rebuildIndex()

	for i, n := 0, len(e.predators); i < n; i++ {
		e.stepPredator(i, &ts)
	}
	e.prey = compact(e.prey)
	e.predators = compact(e.predators)
	e.rebuildIndex()

	e.stats.Tick++
	e.stats.Prey = len(e.prey)
	e.stats.Predators = len(e.predators)
	e.stats.Last = ts
	e.stats.Total.add(ts)
}

func (e *Ecosystem) stepPrey(i int, ts *TickStats) {
	p := &e.prey[i]
	if !p.Alive {
		return
	}
	p.Breed++
	h := Handle{Species: Prey, Slot: i}
	e.vacate(p.Pos, h)
	if dest := e.avoid(*p); dest != p.Pos {
		p.Prev = p.Pos
		p.Pos = dest
	}
	e.index[p.Pos] = h

	if p.Breed > e.cfg.Params.PreyBreedAfter {
		parent := *p
		if born := e.reproduce(parent, e.cfg.Params.PreyLitterMax, e.cfg.Params.MaxPrey); born > 0 {
			e.prey[i].Breed = 0
			ts.PreyBorn += born
		}
	}
}

func (e *Ecosystem) stepPredator(i int, ts *TickStats) {
	d := &e.predators[i]
	if !d.Alive {
		return
	}
	d.Hunger++
	d.Breed++
	h := Handle{Species: Predator, Slot: i}

	if moves := e.predatorMoves(d.Pos); len(moves) > 0 {
		var dest core.Cell
		if target, seen := e.nearestPrey(d.Pos); seen {
			dest = pursue(moves, target)
		} else {
			dest = moves[e.rng.IntN(len(moves))]
		}
		if victim, ok := e.liveAt(dest); ok && victim.Species == Prey {
			e.prey[victim.Slot].Alive = false
			e.live[Prey]--
			d.Hunger = 0
			ts.Eaten++
		}
		e.vacate(d.Pos, h)
		d.Prev = d.Pos
		d.Pos = dest
		e.index[dest] = h
	}

	if d.Hunger > e.cfg.Params.StarveAfter {
		// The stale index entry reads as empty until the cleanup rebuild.
		d.Alive = false
		e.live[Predator]--
		ts.Starved++
		return
	}

	if d.Breed > e.cfg.Params.PredatorBreedAfter {
		parent := *d
		if born := e.reproduce(parent, e.cfg.Params.PredatorLitterMax, e.cfg.Params.MaxPredators); born > 0 {
			e.predators[i].Breed = 0
			ts.PredatorsBorn += born
		}
	}
}

// reproduce places 1..litterMax offspring of parent on free neighbors,
// bounded by the free cells and the population cap. Offspring join the end
// of the population and first act on the next tick.
func (e *Ecosystem) reproduce(parent Agent, litterMax, popCap int) int {
	free := e.freeNeighbors(parent.Pos)
	if len(free) == 0 {
		return 0
	}
	litter := e.rng.Between(1, max(litterMax, 1))
	litter = min(litter, len(free))
	if popCap > 0 {
		room := popCap - e.live[parent.Species]
		litter = min(litter, room)
	}
	if litter <= 0 {
		return 0
	}
	e.rng.Shuffle(len(free), func(a, b int) { free[a], free[b] = free[b], free[a] })
	for _, c := range free[:litter] {
		e.add(Agent{
			Species: parent.Species,
			Pos:     c,
			Prev:    c,
			Color:   varyColor(parent.Color, e.rng, e.cfg.Params.OffspringVariance),
		})
	}
	return litter
}

// Stats returns the counters from the most recent tick.
func (e *Ecosystem) Stats() Stats { return e.stats }

// Prey returns the prey population. The slice must be treated as read-only
// and is invalidated by the next tick.
func (e *Ecosystem) Prey() []Agent { return e.prey }

// Predators returns the predator population under the same terms as Prey.
func (e *Ecosystem) Predators() []Agent { return e.predators }

// AgentAt returns a copy of the live agent standing on c.
func (e *Ecosystem) AgentAt(c core.Cell) (Agent, bool) {
	h, ok := e.liveAt(c)
	if !ok {
		return Agent{}, false
	}
	return *e.agent(h), true
}

// EachAgent calls fn with the position and color of every live agent, prey
// first.
func (e *Ecosystem) EachAgent(fn func(core.Cell, color.RGBA)) {
	for i := range e.prey {
		if e.prey[i].Alive {
			fn(e.prey[i].Pos, e.prey[i].Color)
		}
	}
	for i := range e.predators {
		if e.predators[i].Alive {
			fn(e.predators[i].Pos, e.predators[i].Color)
		}
	}
}

// ColorAt returns the ground color so the ecosystem can be drawn standalone.
func (e *Ecosystem) ColorAt(c core.Cell) color.RGBA { return e.ground.ColorAt(c) }
