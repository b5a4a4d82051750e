package ecology

import "lifescape/pkg/core"

// occupancy maps a cell to the agent standing on it. It never owns agents;
// entries point into the population slices and are rebuilt wholesale after
// every compaction.
type occupancy map[core.Cell]Handle

func (e *Ecosystem) agent(h Handle) *Agent {
	if h.Species == Predator {
		return &e.predators[h.Slot]
	}
	return &e.prey[h.Slot]
}

// liveAt returns the handle of the live agent on c. Entries for agents that
// died earlier in the tick read as empty.
func (e *Ecosystem) liveAt(c core.Cell) (Handle, bool) {
	h, ok := e.index[c]
	if !ok || !e.agent(h).Alive {
		return Handle{}, false
	}
	return h, true
}

func (e *Ecosystem) occupied(c core.Cell) bool {
	_, ok := e.liveAt(c)
	return ok
}

func (e *Ecosystem) vacate(c core.Cell, h Handle) {
	if cur, ok := e.index[c]; ok && cur == h {
		delete(e.index, c)
	}
}

// rebuildIndex recreates the index from the live populations.
func (e *Ecosystem) rebuildIndex() {
	clear(e.index)
	for i := range e.prey {
		if e.prey[i].Alive {
			e.index[e.prey[i].Pos] = Handle{Species: Prey, Slot: i}
		}
	}
	for i := range e.predators {
		if e.predators[i].Alive {
			e.index[e.predators[i].Pos] = Handle{Species: Predator, Slot: i}
		}
	}
}

// compact drops dead agents while keeping survivors in their original order.
func compact(agents []Agent) []Agent {
	kept := agents[:0]
	for _, a := range agents {
		if a.Alive {
			kept = append(kept, a)
		}
	}
	clear(agents[len(kept):])
	return kept
}
