package terrain

import (
	"fmt"
	"image/color"
	"log"

	simcore "lifescape/internal/core"
	"lifescape/pkg/core"
)

// Terrain is a diamond-square height field classified into biome bands. The
// field is generated once per reset and read-only afterwards.
type Terrain struct {
	cfg Config

	gridSize int
	heights  *core.Grid[float64]
	biomes   *core.Grid[Biome]
	colors   *core.Grid[color.RGBA]
	counts   [biomeCount]int
}

// New returns terrain covering a w×h canvas using defaults.
func New(w, h int) *Terrain {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig generates terrain from cfg.Seed.
func NewWithConfig(cfg Config) *Terrain {
	return NewWithRNG(cfg, core.NewRNG(cfg.Seed))
}

// NewWithRNG generates terrain drawing all randomness from rng. The caller
// keeps ownership of rng.
func NewWithRNG(cfg Config, rng *core.RNG) *Terrain {
	t := &Terrain{cfg: cfg}
	t.Generate(rng)
	return t
}

// GridSizeFor returns the smallest 2^k+1 (k >= 1) that is at least max(w, h).
func GridSizeFor(w, h int) int {
	target := max(w, h)
	n := 2
	for n+1 < target {
		n *= 2
	}
	return n + 1
}

// Generate rebuilds the height field, biome classification and color cache.
// All randomness is drawn from rng.
func (t *Terrain) Generate(rng *core.RNG) {
	n := GridSizeFor(t.cfg.Width, t.cfg.Height)
	t.gridSize = n
	t.heights = core.NewGrid[float64](n, n)
	diamondSquare(t.heights, rng, t.cfg.Roughness, t.cfg.Damping)

	t.biomes = core.NewGrid[Biome](n, n)
	t.colors = core.NewGrid[color.RGBA](n, n)
	t.counts = [biomeCount]int{}
	heights := t.heights.Cells()
	biomes := t.biomes.Cells()
	colors := t.colors.Cells()
	for i, h := range heights {
		b := t.cfg.Bands.Classify(h)
		biomes[i] = b
		colors[i] = t.cfg.Bands.shade(h, rng, t.cfg.ColorJitter)
		x, y := i%n, i/n
		if x < t.cfg.Width && y < t.cfg.Height {
			t.counts[b]++
		}
	}
	log.Printf("terrain: generated %dx%d field for %dx%d canvas (roughness %.2f, damping %.2f, %.0f%% walkable)",
		n, n, t.cfg.Width, t.cfg.Height, t.cfg.Roughness, t.cfg.Damping, 100*t.WalkableFraction())
}

// diamondSquare fills g, whose side must be 2^k+1, leaving the four corners
// at zero. Each round perturbs by a symmetric sample of the current
// roughness, which is then multiplied by damping.
func diamondSquare(g *core.Grid[float64], rng *core.RNG, roughness, damping float64) {
	n := g.W
	g.Fill(0)
	for cellLen := n - 1; cellLen >= 2; cellLen /= 2 {
		half := cellLen / 2

		// Diamond: centers of each square take the mean of its four corners.
		for y := half; y < n; y += cellLen {
			for x := half; x < n; x += cellLen {
				a, _ := g.At(x-half, y-half)
				b, _ := g.At(x+half, y-half)
				c, _ := g.At(x-half, y+half)
				d, _ := g.At(x+half, y+half)
				g.Set(x, y, (a+b+c+d)/4+rng.Symmetric(roughness))
			}
		}

		// Square: edge midpoints average whichever axis neighbors exist.
		for y := 0; y < n; y += half {
			start := half
			if (y/half)%2 == 1 {
				start = 0
			}
			for x := start; x < n; x += cellLen {
				sum, count := 0.0, 0
				for _, d := range [4][2]int{{0, -half}, {-half, 0}, {half, 0}, {0, half}} {
					if v, ok := g.At(x+d[0], y+d[1]); ok {
						sum += v
						count++
					}
				}
				g.Set(x, y, sum/float64(count)+rng.Symmetric(roughness))
			}
		}
		roughness *= damping
	}

	cells := g.Cells()
	for i, v := range cells {
		cells[i] = clampUnit(v)
	}
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}

// GridSize returns the side of the square height field.
func (t *Terrain) GridSize() int { return t.gridSize }

// HeightAt returns the height at c, or -1 outside the field.
func (t *Terrain) HeightAt(c core.Cell) float64 {
	if v, ok := t.heights.Get(c); ok {
		return v
	}
	return -1
}

// BiomeAt returns the biome at c. Cells outside the field are ocean.
func (t *Terrain) BiomeAt(c core.Cell) Biome {
	if b, ok := t.biomes.Get(c); ok {
		return b
	}
	return Ocean
}

// IsWalkable reports whether agents may occupy c.
func (t *Terrain) IsWalkable(c core.Cell) bool { return t.BiomeAt(c).Walkable() }

// ColorAt returns the cached display color at c.
func (t *Terrain) ColorAt(c core.Cell) color.RGBA {
	if v, ok := t.colors.Get(c); ok {
		return v
	}
	return toRGBA(deepWater)
}

// Heights exposes the height field for read-only rendering.
func (t *Terrain) Heights() *core.Grid[float64] { return t.heights }

// Colors exposes the color cache for read-only rendering.
func (t *Terrain) Colors() *core.Grid[color.RGBA] { return t.colors }

// BiomeCount returns how many canvas cells fall in biome b.
func (t *Terrain) BiomeCount(b Biome) int {
	if b >= biomeCount {
		return 0
	}
	return t.counts[b]
}

// WalkableFraction returns the share of canvas cells that are walkable.
func (t *Terrain) WalkableFraction() float64 {
	total := 0
	for _, c := range t.counts {
		total += c
	}
	if total == 0 {
		return 0
	}
	return float64(total-t.counts[Ocean]) / float64(total)
}

// Name returns the simulation identifier.
func (t *Terrain) Name() string { return "terrain" }

// Size returns the canvas dimensions.
func (t *Terrain) Size() simcore.Size { return simcore.Size{W: t.cfg.Width, H: t.cfg.Height} }

// Reset regenerates the field. A zero seed reuses the configured one.
func (t *Terrain) Reset(seed int64) {
	if seed == 0 {
		seed = t.cfg.Seed
	}
	t.Generate(core.NewRNG(seed))
}

// Step is a no-op; terrain is static between resets.
func (t *Terrain) Step() {}

// Status returns the HUD status lines.
func (t *Terrain) Status() []string {
	lines := []string{fmt.Sprintf("Field: %dx%d  Walkable: %.0f%%", t.gridSize, t.gridSize, 100*t.WalkableFraction())}
	for b := Ocean; b < biomeCount; b++ {
		lines = append(lines, fmt.Sprintf("%s: %d", b, t.BiomeCount(b)))
	}
	return lines
}

// Parameters reports the synthesis settings.
func (t *Terrain) Parameters() simcore.ParameterSnapshot {
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{
		{
			Name: "Terrain",
			Params: []simcore.Parameter{
				simcore.Int64Param("terrain_seed", "Seed", t.cfg.Seed),
				simcore.FloatParam("roughness", "Roughness", t.cfg.Roughness),
				simcore.FloatParam("damping", "Damping", t.cfg.Damping),
				simcore.IntParam("color_jitter", "Color jitter", t.cfg.ColorJitter),
			},
		},
		{
			Name: "Bands",
			Params: []simcore.Parameter{
				simcore.FloatParam("ocean_max", "Ocean below", t.cfg.Bands.OceanMax),
				simcore.FloatParam("beach_max", "Beach below", t.cfg.Bands.BeachMax),
				simcore.FloatParam("mountain_min", "Mountain from", t.cfg.Bands.MountainMin),
				simcore.FloatParam("snow_min", "Snow from", t.cfg.Bands.SnowMin),
			},
		},
	}}
}

func init() {
	simcore.Register("terrain", func(cfg map[string]string) simcore.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
