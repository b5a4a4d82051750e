package ui

import (
	"image/color"
	"strings"

	"lifescape/internal/render"
)

var potentialTint = color.RGBA{R: 255, G: 196, B: 40, A: 255}

// Layers tracks which debugging overlays are enabled.
type Layers struct {
	Heights   bool
	Potential bool
}

// Apply draws the enabled overlays that sim can supply into f. The height
// view replaces the composed frame; the potential view tints it.
func (l Layers) Apply(f *render.Frame, sim any) {
	if l.Heights {
		if src, ok := sim.(render.HeightSource); ok {
			f.ShadeHeights(src)
			if cells, ok := sim.(render.CellSource); ok {
				f.PlotCells(cells, color.RGBA{R: 255, G: 255, B: 255, A: 255})
			}
		}
	}
	if l.Potential {
		if src, ok := sim.(render.PotentialSource); ok {
			f.TintPotential(src, potentialTint, 0.45)
		}
	}
}

// Legend names the enabled overlays for the HUD.
func (l Layers) Legend() string {
	var on []string
	if l.Heights {
		on = append(on, "heights")
	}
	if l.Potential {
		on = append(on, "potential")
	}
	if len(on) == 0 {
		return "Overlays: off (1/2)"
	}
	return "Overlays: " + strings.Join(on, ", ")
}
