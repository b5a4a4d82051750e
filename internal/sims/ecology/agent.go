package ecology

import (
	"image/color"

	"lifescape/pkg/core"
)

// Species tags which branch of the agent behaviour applies.
type Species uint8

const (
	Prey Species = iota
	Predator
)

func (s Species) String() string {
	switch s {
	case Prey:
		return "prey"
	case Predator:
		return "predator"
	default:
		return "unknown"
	}
}

// Agent is a single animal. Hunger is only advanced for predators.
type Agent struct {
	ID      uint64
	Species Species
	Pos     core.Cell
	Prev    core.Cell
	Color   color.RGBA
	Alive   bool
	Breed   int
	Hunger  int
}

// Handle identifies an agent by its slot in the owning population slice.
// Handles are only valid until the next compaction.
type Handle struct {
	Species Species
	Slot    int
}

var predatorColor = color.RGBA{R: 214, G: 38, B: 46, A: 255}

func varyColor(c color.RGBA, rng *core.RNG, amp int) color.RGBA {
	if amp <= 0 {
		return c
	}
	return color.RGBA{
		R: clampChannel(int(c.R) + rng.Between(-amp, amp)),
		G: clampChannel(int(c.G) + rng.Between(-amp, amp)),
		B: clampChannel(int(c.B) + rng.Between(-amp, amp)),
		A: 255,
	}
}

func colorDistSq(a, b color.RGBA) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
