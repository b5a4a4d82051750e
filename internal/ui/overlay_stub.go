//go:build !ebiten

package ui

import "lifescape/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{}

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim) *Overlay { return &Overlay{} }

// Update is a no-op in headless builds.
func (o *Overlay) Update() {}

// Legend reports that overlays are unavailable.
func (o *Overlay) Legend() string { return "" }
