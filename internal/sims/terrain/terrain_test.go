package terrain

import (
	"testing"

	"lifescape/pkg/core"
)

func TestGridSizeFor(t *testing.T) {
	cases := []struct {
		w, h int
		want int
	}{
		{1, 1, 3},
		{3, 2, 3},
		{4, 4, 5},
		{5, 1, 5},
		{6, 6, 9},
		{320, 240, 513},
		{100, 257, 257},
	}
	for _, tc := range cases {
		if got := GridSizeFor(tc.w, tc.h); got != tc.want {
			t.Fatalf("GridSizeFor(%d,%d): expected %d, got %d", tc.w, tc.h, tc.want, got)
		}
	}
}

func TestCornersStayAtZero(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 64, 48
	tr := NewWithConfig(cfg)
	n := tr.GridSize()
	for _, c := range []core.Cell{{X: 0, Y: 0}, {X: n - 1, Y: 0}, {X: 0, Y: n - 1}, {X: n - 1, Y: n - 1}} {
		if h := tr.HeightAt(c); h != 0 {
			t.Fatalf("expected corner %v at height 0, got %f", c, h)
		}
	}
}

func TestHeightsClampedToUnitRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 65, 65
	cfg.Roughness = 4
	tr := NewWithConfig(cfg)
	for i, h := range tr.Heights().Cells() {
		if h < -1 || h > 1 {
			t.Fatalf("height %d out of range: %f", i, h)
		}
	}
}

func TestGenerationIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 40, 30
	a := NewWithConfig(cfg)
	b := NewWithConfig(cfg)
	ha, hb := a.Heights().Cells(), b.Heights().Cells()
	for i := range ha {
		if ha[i] != hb[i] {
			t.Fatalf("height mismatch at %d: %f vs %f", i, ha[i], hb[i])
		}
	}
	ca, cb := a.Colors().Cells(), b.Colors().Cells()
	for i := range ca {
		if ca[i] != cb[i] {
			t.Fatalf("color mismatch at %d: %v vs %v", i, ca[i], cb[i])
		}
	}

	cfg.Seed++
	c := NewWithConfig(cfg)
	same := true
	for i, h := range c.Heights().Cells() {
		if h != ha[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatalf("expected a different seed to produce a different field")
	}
}

func TestResetRegenerates(t *testing.T) {
	tr := New(33, 33)
	before := append([]float64(nil), tr.Heights().Cells()...)
	tr.Reset(99)
	tr.Reset(0)
	for i, h := range tr.Heights().Cells() {
		if h != before[i] {
			t.Fatalf("expected reset with zero seed to restore configured field at %d", i)
		}
	}
}

func TestSquareStepAveragesInBoundsNeighbors(t *testing.T) {
	// With zero roughness every perturbation vanishes, so a field seeded at
	// zero stays zero regardless of how many neighbors an edge cell has.
	g := core.NewGrid[float64](9, 9)
	diamondSquare(g, core.NewRNG(3), 0, 0.5)
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("expected flat field without roughness, got %f at %d", v, i)
		}
	}

	// A single round on a 3x3 grid: the center gets one perturbation, and each
	// edge midpoint averages three neighbors (two corners and the center).
	g = core.NewGrid[float64](3, 3)
	rng := core.NewRNG(11)
	diamondSquare(g, rng, 0.5, 0.5)
	mirror := core.NewRNG(11)
	center := mirror.Symmetric(0.5)
	if v, _ := g.At(1, 1); v != center {
		t.Fatalf("expected center %f, got %f", center, v)
	}
	top := center/3 + mirror.Symmetric(0.5)
	if v, _ := g.At(1, 0); v != top {
		t.Fatalf("expected top edge %f, got %f", top, v)
	}
}

func TestClassifyIsPure(t *testing.T) {
	bands := DefaultConfig().Bands
	cases := []struct {
		h    float64
		want Biome
	}{
		{-1, Ocean},
		{bands.OceanMax - 0.001, Ocean},
		{bands.OceanMax, Beach},
		{bands.BeachMax, Forest},
		{bands.MountainMin - 0.001, Forest},
		{bands.MountainMin, Mountain},
		{bands.SnowMin, Snow},
		{1, Snow},
	}
	for _, tc := range cases {
		for i := 0; i < 3; i++ {
			if got := bands.Classify(tc.h); got != tc.want {
				t.Fatalf("Classify(%f): expected %s, got %s", tc.h, tc.want, got)
			}
		}
	}
}

func TestWalkabilityFollowsBiome(t *testing.T) {
	tr := New(48, 48)
	n := tr.GridSize()
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := core.Cell{X: x, Y: y}
			if tr.IsWalkable(c) != (tr.BiomeAt(c) != Ocean) {
				t.Fatalf("walkability mismatch at %v (%s)", c, tr.BiomeAt(c))
			}
		}
	}
	outside := core.Cell{X: -1, Y: 5}
	if tr.IsWalkable(outside) || tr.BiomeAt(outside) != Ocean || tr.HeightAt(outside) != -1 {
		t.Fatalf("expected out-of-field cells to be deep ocean")
	}
}

func TestBiomeCountCoversCanvas(t *testing.T) {
	tr := New(40, 30)
	want := [biomeCount]int{}
	for y := 0; y < 30; y++ {
		for x := 0; x < 40; x++ {
			want[tr.BiomeAt(core.Cell{X: x, Y: y})]++
		}
	}
	total := 0
	for b := Ocean; b < biomeCount; b++ {
		if got := tr.BiomeCount(b); got != want[b] {
			t.Fatalf("expected %d %s cells, got %d", want[b], b, got)
		}
		total += tr.BiomeCount(b)
	}
	if total != 40*30 {
		t.Fatalf("expected counts to cover the %d canvas cells, got %d", 40*30, total)
	}
	if got := tr.BiomeCount(biomeCount); got != 0 {
		t.Fatalf("expected 0 for an unknown biome, got %d", got)
	}
	if got := len(tr.Status()); got != 1+int(biomeCount) {
		t.Fatalf("expected a status line per biome, got %d lines", got)
	}
}

func TestFromMapKeepsBandsOrdered(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":            "10",
		"roughness":    "0.7",
		"damping":      "1.5",
		"ocean_max":    "0.4",
		"mountain_min": "0.1",
	})
	if cfg.Width != 10 || cfg.Roughness != 0.7 {
		t.Fatalf("expected overrides to apply, got %+v", cfg)
	}
	if cfg.Damping != DefaultConfig().Damping {
		t.Fatalf("expected out-of-range damping to be ignored, got %f", cfg.Damping)
	}
	b := cfg.Bands
	if !(b.OceanMax <= b.BeachMax && b.BeachMax <= b.MountainMin && b.MountainMin <= b.SnowMin) {
		t.Fatalf("expected ordered bands, got %+v", b)
	}
}
