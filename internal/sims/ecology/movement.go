package ecology

import "lifescape/pkg/core"

// avoid picks the next position of prey p. Visible predators are the live
// predators in its 8-neighborhood.
func (e *Ecosystem) avoid(p Agent) core.Cell {
	var candidates, threats []core.Cell
	for _, n := range p.Pos.Neighbors8() {
		if h, ok := e.liveAt(n); ok {
			if h.Species == Predator {
				threats = append(threats, n)
			}
			continue
		}
		if e.ground.IsWalkable(n) {
			candidates = append(candidates, n)
		}
	}
	switch len(candidates) {
	case 0:
		return p.Pos
	case 1:
		return candidates[0]
	}
	if len(threats) > 0 {
		return flee(candidates, threats)
	}
	if e.rng.Chance(e.cfg.Params.ExploreChance) {
		return candidates[e.rng.IntN(len(candidates))]
	}
	return e.camouflage(p, candidates)
}

// camouflage returns the candidate whose terrain color best matches the prey's
// own color plus jitter. The cell just left is skipped.
func (e *Ecosystem) camouflage(p Agent, candidates []core.Cell) core.Cell {
	target := varyColor(p.Color, e.rng, e.cfg.Params.CamouflageJitter)
	best := core.Cell{}
	bestDist := -1
	for _, c := range candidates {
		if c == p.Prev {
			continue
		}
		d := colorDistSq(e.ground.ColorAt(c), target)
		if bestDist < 0 || d < bestDist {
			best, bestDist = c, d
		}
	}
	if bestDist < 0 {
		return candidates[0]
	}
	return best
}

// flee maximizes the distance to the closest threat. Ties go to the earlier
// candidate in neighbor scan order.
func flee(candidates, threats []core.Cell) core.Cell {
	best := candidates[0]
	bestScore := -1
	for _, c := range candidates {
		score := -1
		for _, t := range threats {
			if d := c.DistSq(t); score < 0 || d < score {
				score = d
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

// nearestPrey scans the sight disc around pos in row-major order and returns
// the closest live prey.
func (e *Ecosystem) nearestPrey(pos core.Cell) (core.Cell, bool) {
	r := e.cfg.Params.SightRadius
	best := core.Cell{}
	bestDist := -1
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			d := dx*dx + dy*dy
			if d > r*r {
				continue
			}
			c := pos.Add(dx, dy)
			h, ok := e.liveAt(c)
			if !ok || h.Species != Prey {
				continue
			}
			if bestDist < 0 || d < bestDist {
				best, bestDist = c, d
			}
		}
	}
	return best, bestDist >= 0
}

// predatorMoves lists walkable neighbors not held by another live predator.
func (e *Ecosystem) predatorMoves(pos core.Cell) []core.Cell {
	var moves []core.Cell
	for _, n := range pos.Neighbors8() {
		if !e.ground.IsWalkable(n) {
			continue
		}
		if h, ok := e.liveAt(n); ok && h.Species == Predator {
			continue
		}
		moves = append(moves, n)
	}
	return moves
}

// pursue returns the move that ends closest to target.
func pursue(moves []core.Cell, target core.Cell) core.Cell {
	best := moves[0]
	bestDist := best.DistSq(target)
	for _, m := range moves[1:] {
		if d := m.DistSq(target); d < bestDist {
			best, bestDist = m, d
		}
	}
	return best
}

// freeNeighbors lists walkable, unoccupied neighbors of pos.
func (e *Ecosystem) freeNeighbors(pos core.Cell) []core.Cell {
	var free []core.Cell
	for _, n := range pos.Neighbors8() {
		if e.ground.IsWalkable(n) && !e.occupied(n) {
			free = append(free, n)
		}
	}
	return free
}
