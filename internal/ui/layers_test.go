package ui

import (
	"image/color"
	"testing"

	"lifescape/internal/render"
	"lifescape/pkg/core"
)

type layerSim struct {
	heights *core.Grid[float64]
	queued  []core.Cell
}

func (s layerSim) Heights() *core.Grid[float64] { return s.heights }

func (s layerSim) EachPotential(fn func(core.Cell)) {
	for _, c := range s.queued {
		fn(c)
	}
}

func TestLayersApply(t *testing.T) {
	g := core.NewGrid[float64](2, 2)
	g.Fill(1)
	sim := layerSim{heights: g, queued: []core.Cell{{X: 0, Y: 0}}}
	f := render.NewFrame(2, 2)
	f.Clear(color.RGBA{A: 255})

	Layers{}.Apply(f, sim)
	if got, _ := f.At(core.Cell{X: 1, Y: 1}); got.R != 0 {
		t.Fatalf("expected disabled layers to leave the frame alone, got %v", got)
	}

	Layers{Heights: true}.Apply(f, sim)
	if got, _ := f.At(core.Cell{X: 1, Y: 1}); got.R != 255 {
		t.Fatalf("expected height shading, got %v", got)
	}

	f.Clear(color.RGBA{A: 255})
	Layers{Potential: true}.Apply(f, sim)
	tinted, _ := f.At(core.Cell{X: 0, Y: 0})
	plain, _ := f.At(core.Cell{X: 1, Y: 0})
	if tinted.R == 0 || plain.R != 0 {
		t.Fatalf("expected only queued cells tinted, got %v and %v", tinted, plain)
	}
}

func TestLayersLegend(t *testing.T) {
	if got := (Layers{}).Legend(); got != "Overlays: off (1/2)" {
		t.Fatalf("unexpected legend %q", got)
	}
	if got := (Layers{Heights: true, Potential: true}).Legend(); got != "Overlays: heights, potential" {
		t.Fatalf("unexpected legend %q", got)
	}
}
