//go:build ebiten

package render

import "github.com/hajimehoshi/ebiten/v2"

// GridPainter uploads a Frame into a single RGBA image and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
}

// NewGridPainter allocates a painter for a frame of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{w: w, h: h, img: ebiten.NewImage(w, h)}
}

// Blit uploads f and draws it at the top left of dst.
func (gp *GridPainter) Blit(dst *ebiten.Image, f *Frame, scale int) {
	if f == nil || f.W != gp.w || f.H != gp.h {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	gp.img.WritePixels(f.Buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
