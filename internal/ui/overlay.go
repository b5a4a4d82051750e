//go:build ebiten

package ui

import (
	"image/color"

	"lifescape/internal/core"
	"lifescape/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var brushColor = color.RGBA{R: 255, G: 255, B: 255, A: 160}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim    core.Sim
	layers Layers
	pixel  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim) *Overlay {
	o := &Overlay{sim: sim}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles layers from the number keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.layers.Heights = !o.layers.Heights
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.layers.Potential = !o.layers.Potential
	}
}

// Apply draws the enabled layers into the frame before it is uploaded.
func (o *Overlay) Apply(f *render.Frame) { o.layers.Apply(f, o.sim) }

// Legend names the enabled layers.
func (o *Overlay) Legend() string { return o.layers.Legend() }

// DrawBrush outlines the square brush window centred on screen pixel (x, y).
func (o *Overlay) DrawBrush(screen *ebiten.Image, x, y, halfExtent, scale int) {
	if halfExtent < 0 || scale <= 0 {
		return
	}
	side := float64((2*halfExtent + 1) * scale)
	left := float64(x/scale*scale - halfExtent*scale)
	top := float64(y/scale*scale - halfExtent*scale)
	o.fillRect(screen, left, top, side, 1)
	o.fillRect(screen, left, top+side-1, side, 1)
	o.fillRect(screen, left, top, 1, side)
	o.fillRect(screen, left+side-1, top, 1, side)
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(brushColor)
	screen.DrawImage(o.pixel, op)
}
