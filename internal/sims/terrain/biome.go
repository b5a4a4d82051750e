package terrain

import (
	"image/color"

	"lifescape/pkg/core"
)

// Biome enumerates the terrain classification bands, lowest first.
type Biome uint8

const (
	Ocean Biome = iota
	Beach
	Forest
	Mountain
	Snow

	biomeCount
)

var biomeNames = [biomeCount]string{"ocean", "beach", "forest", "mountain", "snow"}

func (b Biome) String() string {
	if b >= biomeCount {
		return "unknown"
	}
	return biomeNames[b]
}

// Walkable reports whether agents may stand on the biome.
func (b Biome) Walkable() bool { return b != Ocean }

// Classify maps a height onto its band. It depends on nothing but h.
func (t Thresholds) Classify(h float64) Biome {
	switch {
	case h < t.OceanMax:
		return Ocean
	case h < t.BeachMax:
		return Beach
	case h >= t.SnowMin:
		return Snow
	case h >= t.MountainMin:
		return Mountain
	default:
		return Forest
	}
}

var (
	deepWater    = color.NRGBA{R: 12, G: 34, B: 92, A: 255}
	shallowWater = color.NRGBA{R: 48, G: 110, B: 178, A: 255}
	sand         = color.NRGBA{R: 214, G: 198, B: 142, A: 255}
	lowForest    = color.NRGBA{R: 72, G: 150, B: 64, A: 255}
	highForest   = color.NRGBA{R: 28, G: 92, B: 40, A: 255}
	lowRock      = color.NRGBA{R: 118, G: 108, B: 98, A: 255}
	highRock     = color.NRGBA{R: 172, G: 166, B: 160, A: 255}
	lowSnow      = color.NRGBA{R: 222, G: 224, B: 234, A: 255}
	highSnow     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// shade picks the display color of a cell: a gradient across its band plus,
// for the textured bands, a bounded brightness jitter.
func (t Thresholds) shade(h float64, rng *core.RNG, jitter int) color.RGBA {
	switch t.Classify(h) {
	case Ocean:
		return toRGBA(blendColors(deepWater, shallowWater, bandPosition(h, -1, t.OceanMax)))
	case Beach:
		return toRGBA(jitterColor(sand, rng, jitter/2))
	case Forest:
		base := blendColors(lowForest, highForest, bandPosition(h, t.BeachMax, t.MountainMin))
		return toRGBA(jitterColor(base, rng, jitter))
	case Mountain:
		base := blendColors(lowRock, highRock, bandPosition(h, t.MountainMin, t.SnowMin))
		return toRGBA(jitterColor(base, rng, jitter/2))
	default:
		return toRGBA(blendColors(lowSnow, highSnow, bandPosition(h, t.SnowMin, 1)))
	}
}

func bandPosition(h, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	return (h - lo) / (hi - lo)
}

func jitterColor(c color.NRGBA, rng *core.RNG, amp int) color.NRGBA {
	if amp <= 0 || rng == nil {
		return c
	}
	d := rng.Between(-amp, amp)
	return color.NRGBA{R: clampChannel(int(c.R) + d), G: clampChannel(int(c.G) + d), B: clampChannel(int(c.B) + d), A: c.A}
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

func toRGBA(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func blendColors(base, overlay color.NRGBA, overlayWeight float64) color.NRGBA {
	if overlayWeight <= 0 {
		return base
	}
	if overlayWeight >= 1 {
		return overlay
	}
	br, bg, bb, ba := float64(base.R), float64(base.G), float64(base.B), float64(base.A)
	or, og, ob, oa := float64(overlay.R), float64(overlay.G), float64(overlay.B), float64(overlay.A)
	w := overlayWeight
	inv := 1 - w
	return color.NRGBA{
		R: uint8(br*inv + or*w + 0.5),
		G: uint8(bg*inv + og*w + 0.5),
		B: uint8(bb*inv + ob*w + 0.5),
		A: uint8(ba*inv + oa*w + 0.5),
	}
}
