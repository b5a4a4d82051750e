package render

import (
	"image/color"

	"lifescape/pkg/core"
)

// Backdrop supplies a per-cell base color, usually terrain.
type Backdrop interface {
	ColorAt(c core.Cell) color.RGBA
}

// CellSource enumerates live automaton cells.
type CellSource interface {
	EachActive(fn func(core.Cell))
}

// PotentialSource enumerates cells queued for reexamination.
type PotentialSource interface {
	EachPotential(fn func(core.Cell))
}

// AgentSource enumerates agents with their colors.
type AgentSource interface {
	EachAgent(fn func(core.Cell, color.RGBA))
}

// HeightSource exposes a height field in [-1, 1].
type HeightSource interface {
	Heights() *core.Grid[float64]
}

// Frame is an RGBA pixel buffer showing a W×H window of the plane whose top
// left corner is Origin.
type Frame struct {
	W, H   int
	Origin core.Cell
	Buf    []byte
}

// NewFrame allocates a frame of the given dimensions.
func NewFrame(w, h int) *Frame {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return &Frame{W: w, H: h, Buf: make([]byte, 4*w*h)}
}

func (f *Frame) offset(c core.Cell) (int, bool) {
	x, y := c.X-f.Origin.X, c.Y-f.Origin.Y
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return 0, false
	}
	return 4 * (y*f.W + x), true
}

// Set paints world cell c if it falls inside the window.
func (f *Frame) Set(c core.Cell, col color.RGBA) {
	if base, ok := f.offset(c); ok {
		f.Buf[base+0] = col.R
		f.Buf[base+1] = col.G
		f.Buf[base+2] = col.B
		f.Buf[base+3] = col.A
	}
}

// At returns the pixel for world cell c.
func (f *Frame) At(c core.Cell) (color.RGBA, bool) {
	base, ok := f.offset(c)
	if !ok {
		return color.RGBA{}, false
	}
	return color.RGBA{R: f.Buf[base], G: f.Buf[base+1], B: f.Buf[base+2], A: f.Buf[base+3]}, true
}

// Clear fills the whole frame with col.
func (f *Frame) Clear(col color.RGBA) {
	for i := 0; i < len(f.Buf); i += 4 {
		f.Buf[i+0] = col.R
		f.Buf[i+1] = col.G
		f.Buf[i+2] = col.B
		f.Buf[i+3] = col.A
	}
}

// FillBackdrop paints every pixel from b.
func (f *Frame) FillBackdrop(b Backdrop) {
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := core.Cell{X: f.Origin.X + x, Y: f.Origin.Y + y}
			f.Set(c, b.ColorAt(c))
		}
	}
}

// PlotCells paints each live cell with col.
func (f *Frame) PlotCells(src CellSource, col color.RGBA) {
	src.EachActive(func(c core.Cell) { f.Set(c, col) })
}

// PlotAgents paints each agent with its own color.
func (f *Frame) PlotAgents(src AgentSource) {
	src.EachAgent(f.Set)
}

// TintPotential blends col over every queued cell with the given weight.
func (f *Frame) TintPotential(src PotentialSource, col color.RGBA, weight float64) {
	src.EachPotential(func(c core.Cell) {
		if cur, ok := f.At(c); ok {
			f.Set(c, blend(cur, col, weight))
		}
	})
}

// ShadeHeights paints the height field in grayscale, low is dark.
func (f *Frame) ShadeHeights(src HeightSource) {
	g := src.Heights()
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := core.Cell{X: f.Origin.X + x, Y: f.Origin.Y + y}
			h, ok := g.Get(c)
			if !ok {
				h = -1
			}
			v := uint8((h + 1) * 127.5)
			f.Set(c, color.RGBA{R: v, G: v, B: v, A: 255})
		}
	}
}

// Compose draws sim into f: its backdrop (or background when it has none),
// then live cells, then agents. Missing layers are skipped.
func Compose(f *Frame, sim any, cellColor, background color.RGBA) {
	if b, ok := sim.(Backdrop); ok {
		f.FillBackdrop(b)
	} else {
		f.Clear(background)
	}
	if cells, ok := sim.(CellSource); ok {
		f.PlotCells(cells, cellColor)
	}
	if agents, ok := sim.(AgentSource); ok {
		f.PlotAgents(agents)
	}
}

func blend(base, overlay color.RGBA, w float64) color.RGBA {
	if w <= 0 {
		return base
	}
	if w >= 1 {
		return overlay
	}
	inv := 1 - w
	return color.RGBA{
		R: uint8(float64(base.R)*inv + float64(overlay.R)*w + 0.5),
		G: uint8(float64(base.G)*inv + float64(overlay.G)*w + 0.5),
		B: uint8(float64(base.B)*inv + float64(overlay.B)*w + 0.5),
		A: base.A,
	}
}
