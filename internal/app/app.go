//go:build ebiten

package app

import (
	"fmt"
	"image/color"
	"log"
	"time"

	simcore "lifescape/internal/core"
	"lifescape/internal/render"
	"lifescape/internal/ui"
	"lifescape/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// painter is implemented by sims that accept brush input.
type painter interface {
	PaintCell(pos core.Cell)
	PaintRegion(center core.Cell, halfExtent int, p float64)
	ClearAll()
	Brush() (int, float64)
}

const panStep = 4

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     simcore.Sim
	painter *render.GridPainter
	frame   *render.Frame
	overlay *ui.Overlay
	hud     *ui.HUD
	stepper *simcore.FixedStep

	cellColor  color.RGBA
	background color.RGBA

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	seed     int64

	dragging  bool
	dragStart core.Cell
	dragFrom  [2]int
}

// New constructs a Game for the provided simulation.
func New(sim simcore.Sim, cfg *Config) *Game {
	size := sim.Size()
	g := &Game{
		sim:        sim,
		painter:    render.NewGridPainter(size.W, size.H),
		frame:      render.NewFrame(size.W, size.H),
		overlay:    ui.NewOverlay(sim),
		hud:        ui.NewHUD(sim, cfg.HUD),
		stepper:    simcore.NewFixedStep(cfg.SPS),
		cellColor:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
		background: color.RGBA{A: 255},
		scale:      cfg.Scale,
		hudWidth:   cfg.HUD,
		seed:       cfg.Seed,
		paused:     true,
	}
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	log.Printf("%s: reset with seed %d", g.sim.Name(), seed)
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.stepper.SetTPS(g.stepper.TPS() * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.stepper.SetTPS(max(g.stepper.TPS()/2, 1))
	}

	g.handlePan()
	g.handlePaint()
	g.overlay.Update()

	state := "paused"
	if !g.paused {
		state = "running"
	}
	g.hud.Update(g.viewWidth(),
		fmt.Sprintf("Sim %s at %d/s", state, g.stepper.TPS()),
		fmt.Sprintf("View: %d,%d", g.frame.Origin.X, g.frame.Origin.Y),
		g.overlay.Legend(),
	)

	if (!g.paused && g.stepper.ShouldStep()) || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	return nil
}

func (g *Game) handlePan() {
	dx, dy := 0, 0
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dx -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dx += panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dy -= panStep
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dy += panStep
	}
	g.frame.Origin = g.frame.Origin.Add(dx, dy)

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle) && !g.hud.Contains(mx) {
		g.dragging = true
		g.dragStart = g.frame.Origin
		g.dragFrom = [2]int{mx, my}
	}
	if g.dragging {
		if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
			g.dragging = false
			return
		}
		g.frame.Origin = g.dragStart.Add((g.dragFrom[0]-mx)/g.scale, (g.dragFrom[1]-my)/g.scale)
	}
}

func (g *Game) handlePaint() {
	p, ok := g.sim.(painter)
	if !ok {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		p.ClearAll()
	}
	cell, inView := g.cursorCell()
	if !inView {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		p.PaintCell(cell)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		radius, density := p.Brush()
		p.PaintRegion(cell, radius, density)
	}
}

// cursorCell maps the mouse position to a plane cell.
func (g *Game) cursorCell() (core.Cell, bool) {
	mx, my := ebiten.CursorPosition()
	size := g.sim.Size()
	if mx < 0 || my < 0 || mx >= size.W*g.scale || my >= size.H*g.scale {
		return core.Cell{}, false
	}
	return g.frame.Origin.Add(mx/g.scale, my/g.scale), true
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Compose(g.frame, g.sim, g.cellColor, g.background)
	g.overlay.Apply(g.frame)
	g.painter.Blit(screen, g.frame, g.scale)

	if p, ok := g.sim.(painter); ok {
		if _, inView := g.cursorCell(); inView {
			mx, my := ebiten.CursorPosition()
			radius, _ := p.Brush()
			g.overlay.DrawBrush(screen, mx, my, radius, g.scale)
		}
	}
	g.hud.Draw(screen, g.viewWidth(), g.sim.Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}
