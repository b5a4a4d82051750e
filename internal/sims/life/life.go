package life

import (
	"log"
	"slices"

	simcore "lifescape/internal/core"
	"lifescape/pkg/core"
)

type cellSet map[core.Cell]struct{}

func (s cellSet) add(c core.Cell) { s[c] = struct{}{} }

func (s cellSet) addBlock(c core.Cell) {
	for _, n := range c.Block3() {
		s[n] = struct{}{}
	}
}

func (s cellSet) has(c core.Cell) bool {
	_, ok := s[c]
	return ok
}

// generation holds the cells alive in one epoch and the cells whose neighbor
// counts must be reexamined when computing the following epoch.
type generation struct {
	active    cellSet
	potential cellSet
}

// Life runs a life-like rule over a sparse, unbounded plane. Only cells in the
// potential set (plus the live cells) are examined per epoch, so stable
// regions cost nothing once they stop changing.
type Life struct {
	cfg  Config
	rule Rule
	rng  *core.RNG

	gens  [2]generation
	cur   int
	epoch int
}

// New returns a Life simulation with the provided viewport using defaults.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation with its own RNG seeded from cfg.
func NewWithConfig(cfg Config) *Life {
	return NewWithRNG(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRNG returns a Life simulation that draws stimulation randomness from
// rng. The caller keeps ownership of rng and must not use it concurrently.
func NewWithRNG(cfg Config, rng *core.RNG) *Life {
	rule, err := ParseRule(cfg.Rule)
	if err != nil {
		log.Printf("life: %v; falling back to %s", err, Conway)
		rule = Conway
	}
	l := &Life{cfg: cfg, rule: rule, rng: rng}
	for i := range l.gens {
		l.gens[i] = generation{active: cellSet{}, potential: cellSet{}}
	}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the viewport dimensions.
func (l *Life) Size() simcore.Size { return simcore.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Rule returns the rule being applied.
func (l *Life) Rule() Rule { return l.rule }

// Generation returns how many epochs have been advanced since the last reset.
func (l *Life) Generation() int { return l.epoch }

// Reset clears the plane and, when configured, stimulates a random soup
// centred in the viewport.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.cfg.Seed
	}
	l.rng = core.NewRNG(seed)
	l.Clear()
	l.Soup()
}

// Soup stimulates the configured random soup centred in the viewport.
func (l *Life) Soup() {
	if l.cfg.SoupRadius > 0 && l.cfg.SoupDensity > 0 {
		center := core.Cell{X: l.cfg.Width / 2, Y: l.cfg.Height / 2}
		l.StimulateRegion(center, l.cfg.SoupRadius, l.cfg.SoupDensity)
	}
}

// Step advances one epoch.
func (l *Life) Step() { l.Advance() }

func (l *Life) front() *generation { return &l.gens[l.cur] }

// StimulateCell marks pos alive and queues its neighborhood for reexamination.
func (l *Life) StimulateCell(pos core.Cell) {
	g := l.front()
	g.active.add(pos)
	g.potential.addBlock(pos)
}

// StimulateRegion stimulates each cell of the square window
// [center-halfExtent, center+halfExtent]² independently with probability p.
func (l *Life) StimulateRegion(center core.Cell, halfExtent int, p float64) {
	if halfExtent < 0 || p <= 0 {
		return
	}
	for dy := -halfExtent; dy <= halfExtent; dy++ {
		for dx := -halfExtent; dx <= halfExtent; dx++ {
			if l.rng.Chance(p) {
				l.StimulateCell(center.Add(dx, dy))
			}
		}
	}
}

// Clear empties every set in both generations.
func (l *Life) Clear() {
	for i := range l.gens {
		clear(l.gens[i].active)
		clear(l.gens[i].potential)
	}
	l.epoch = 0
}

// Advance computes the next epoch. Reads go to the frozen current generation
// and writes land in the other buffer, which becomes current at the end.
func (l *Life) Advance() {
	in := &l.gens[l.cur]
	out := &l.gens[l.cur^1]
	clear(out.active)
	clear(out.potential)

	// Every live cell is a candidate regardless of what changed around it.
	for c := range in.active {
		in.potential.add(c)
	}

	for c := range in.potential {
		n := liveNeighbors(in.active, c)
		if in.active.has(c) {
			if l.rule.Survives(n) {
				out.active.add(c)
				continue
			}
			out.potential.addBlock(c)
			continue
		}
		if l.rule.Born(n) {
			out.active.add(c)
			out.potential.addBlock(c)
		}
	}

	l.cur ^= 1
	l.epoch++
}

func liveNeighbors(active cellSet, c core.Cell) int {
	n := 0
	for _, nb := range c.Neighbors8() {
		if active.has(nb) {
			n++
		}
	}
	return n
}

// Alive reports whether pos is alive in the current epoch.
func (l *Life) Alive(pos core.Cell) bool { return l.front().active.has(pos) }

// Potential reports whether pos is queued for reexamination next epoch.
func (l *Life) Potential(pos core.Cell) bool { return l.front().potential.has(pos) }

// ActiveCount returns the number of live cells.
func (l *Life) ActiveCount() int { return len(l.front().active) }

// PotentialCount returns the number of cells queued by state changes.
func (l *Life) PotentialCount() int { return len(l.front().potential) }

// ExaminedCount returns how many cells the next Advance examines: the
// potential set plus the live cells outside it.
func (l *Life) ExaminedCount() int {
	g := l.front()
	n := len(g.potential)
	for c := range g.active {
		if !g.potential.has(c) {
			n++
		}
	}
	return n
}

// EachActive calls fn for every live cell in unspecified order.
func (l *Life) EachActive(fn func(core.Cell)) {
	for c := range l.front().active {
		fn(c)
	}
}

// EachPotential calls fn for every queued cell in unspecified order.
func (l *Life) EachPotential(fn func(core.Cell)) {
	for c := range l.front().potential {
		fn(c)
	}
}

// ActiveCells returns the live cells sorted by row, then column.
func (l *Life) ActiveCells() []core.Cell {
	out := make([]core.Cell, 0, len(l.front().active))
	for c := range l.front().active {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b core.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func init() {
	simcore.Register("life", func(cfg map[string]string) simcore.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
