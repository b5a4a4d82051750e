package life

import (
	"errors"
	"slices"
	"testing"

	"lifescape/pkg/core"
)

func cells(pairs ...[2]int) []core.Cell {
	out := make([]core.Cell, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, core.Cell{X: p[0], Y: p[1]})
	}
	return out
}

func sortedCells(in []core.Cell) []core.Cell {
	out := slices.Clone(in)
	slices.SortFunc(out, func(a, b core.Cell) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}

func stimulateAll(l *Life, cs []core.Cell) {
	for _, c := range cs {
		l.StimulateCell(c)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	life := New(5, 5)
	vertical := cells([2]int{2, 1}, [2]int{2, 2}, [2]int{2, 3})
	horizontal := cells([2]int{1, 2}, [2]int{2, 2}, [2]int{3, 2})
	stimulateAll(life, vertical)

	life.Advance()
	if got, want := life.ActiveCells(), sortedCells(horizontal); !slices.Equal(got, want) {
		t.Fatalf("after first step expected %v, got %v", want, got)
	}

	life.Advance()
	if got, want := life.ActiveCells(), sortedCells(vertical); !slices.Equal(got, want) {
		t.Fatalf("after second step expected %v, got %v", want, got)
	}
	if life.Generation() != 2 {
		t.Fatalf("expected generation 2, got %d", life.Generation())
	}
}

func TestIsolatedCellDiesAndQueuesNeighborhood(t *testing.T) {
	life := New(8, 8)
	origin := core.Cell{X: 0, Y: 0}
	life.StimulateCell(origin)

	life.Advance()

	if life.Alive(origin) {
		t.Fatal("expected isolated cell to die")
	}
	if life.ActiveCount() != 0 {
		t.Fatalf("expected no active cells, got %d", life.ActiveCount())
	}
	for _, nb := range origin.Neighbors8() {
		if !life.Potential(nb) {
			t.Fatalf("expected neighbor %v to be queued for reexamination", nb)
		}
	}
	if life.PotentialCount() != 9 {
		t.Fatalf("expected 3x3 potential set, got %d cells", life.PotentialCount())
	}
}

func TestBlockIsStableAndFrontierEmpties(t *testing.T) {
	life := New(8, 8)
	block := cells([2]int{-1, -1}, [2]int{0, -1}, [2]int{-1, 0}, [2]int{0, 0})
	stimulateAll(life, block)

	for step := 1; step <= 6; step++ {
		life.Advance()
		if got, want := life.ActiveCells(), sortedCells(block); !slices.Equal(got, want) {
			t.Fatalf("step %d: expected block %v, got %v", step, want, got)
		}
		if life.PotentialCount() != 0 {
			t.Fatalf("step %d: expected empty potential set once stable, got %d", step, life.PotentialCount())
		}
		if life.ExaminedCount() != 4 {
			t.Fatalf("step %d: expected the 4 live cells to still be examined, got %d", step, life.ExaminedCount())
		}
	}
}

func TestExaminedCountUnionsActiveAndPotential(t *testing.T) {
	life := New(8, 8)
	if life.ExaminedCount() != 0 {
		t.Fatalf("expected nothing to examine on an empty plane, got %d", life.ExaminedCount())
	}
	block := cells([2]int{-1, -1}, [2]int{0, -1}, [2]int{-1, 0}, [2]int{0, 0})
	stimulateAll(life, block)
	if got := life.ExaminedCount(); got != 16 || got != life.PotentialCount() {
		t.Fatalf("expected the 4x4 potential set to cover the block, got %d (potential %d)", got, life.PotentialCount())
	}
}

func TestGliderTranslatesDiagonally(t *testing.T) {
	life := New(16, 16)
	glider := cells([2]int{1, 0}, [2]int{2, 1}, [2]int{0, 2}, [2]int{1, 2}, [2]int{2, 2})
	stimulateAll(life, glider)

	for i := 0; i < 40; i++ {
		life.Advance()
	}

	want := make([]core.Cell, 0, len(glider))
	for _, c := range glider {
		want = append(want, c.Add(10, 10))
	}
	if got := life.ActiveCells(); !slices.Equal(got, sortedCells(want)) {
		t.Fatalf("expected glider at %v, got %v", sortedCells(want), got)
	}
}

func TestCellsOutsidePotentialKeepState(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 64
	cfg.Height = 64
	cfg.SoupRadius = 20
	cfg.SoupDensity = 0.4
	life := NewWithConfig(cfg)
	life.Reset(5)

	for i := 0; i < 4; i++ {
		life.Advance()
	}

	type probe struct {
		cell  core.Cell
		alive bool
	}
	var probes []probe
	for y := -10; y < 74; y++ {
		for x := -10; x < 74; x++ {
			c := core.Cell{X: x, Y: y}
			if life.Potential(c) {
				continue
			}
			probes = append(probes, probe{cell: c, alive: life.Alive(c)})
		}
	}
	if len(probes) == 0 {
		t.Fatal("expected some cells outside the potential set")
	}

	life.Advance()
	for _, p := range probes {
		if life.Alive(p.cell) != p.alive {
			t.Fatalf("cell %v outside potential set changed state (was alive=%v)", p.cell, p.alive)
		}
	}
}

func TestStimulateRegionProbabilityBounds(t *testing.T) {
	life := New(32, 32)
	life.StimulateRegion(core.Cell{X: 3, Y: -4}, 2, 1)
	if got := life.ActiveCount(); got != 25 {
		t.Fatalf("expected 25 cells for probability 1, got %d", got)
	}

	life.Clear()
	life.StimulateRegion(core.Cell{}, 10, 0)
	if got := life.ActiveCount(); got != 0 {
		t.Fatalf("expected no cells for probability 0, got %d", got)
	}
}

func TestStimulateRegionDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	a := NewWithRNG(cfg, core.NewRNG(99))
	b := NewWithRNG(cfg, core.NewRNG(99))
	a.StimulateRegion(core.Cell{}, 12, 0.5)
	b.StimulateRegion(core.Cell{}, 12, 0.5)
	if !slices.Equal(a.ActiveCells(), b.ActiveCells()) {
		t.Fatal("expected identical seeds to stimulate identical cells")
	}
	for i := 0; i < 10; i++ {
		a.Advance()
		b.Advance()
	}
	if !slices.Equal(a.ActiveCells(), b.ActiveCells()) {
		t.Fatal("expected identical evolution for identical seeds")
	}
}

func TestClearEmptiesAllSets(t *testing.T) {
	life := New(8, 8)
	life.StimulateRegion(core.Cell{}, 4, 1)
	life.Advance()
	life.Clear()
	if life.ActiveCount() != 0 || life.PotentialCount() != 0 || life.Generation() != 0 {
		t.Fatalf("expected empty automaton, got active=%d potential=%d generation=%d",
			life.ActiveCount(), life.PotentialCount(), life.Generation())
	}
	life.Advance()
	if life.ActiveCount() != 0 {
		t.Fatalf("expected cleared plane to stay empty, got %d", life.ActiveCount())
	}
}

func TestResetIsDeterministic(t *testing.T) {
	life := New(48, 48)
	life.Reset(17)
	first := life.ActiveCells()
	if len(first) == 0 {
		t.Fatal("expected reset to stimulate a soup")
	}
	life.Advance()
	life.Reset(17)
	if !slices.Equal(first, life.ActiveCells()) {
		t.Fatal("expected reset with the same seed to reproduce the soup")
	}
}

func TestInvalidRuleFallsBackToConway(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Rule = "nonsense"
	life := NewWithConfig(cfg)
	if life.Rule() != Conway {
		t.Fatalf("expected fallback to %s, got %s", Conway, life.Rule())
	}
}

func TestParseRule(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "conway", in: "B3/S23", want: "B3/S23"},
		{name: "lowercase highlife", in: "b36/s23", want: "B36/S23"},
		{name: "whitespace", in: "  B3 / S23 ", want: "B3/S23"},
		{name: "no survivors", in: "B2/S", want: "B2/S"},
		{name: "unordered digits", in: "B63/S32", want: "B36/S23"},
		{name: "missing birth", in: "S23", wantErr: true},
		{name: "birth on zero", in: "B0/S8", wantErr: true},
		{name: "count out of range", in: "B9/S2", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule, err := ParseRule(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q, got rule %s", tt.in, rule)
				}
				if !errors.Is(err, ErrInvalidRule) {
					t.Fatalf("expected ErrInvalidRule, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if rule.String() != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, rule)
			}
		})
	}
}

func TestFromMapParsesOverrides(t *testing.T) {
	cfg := FromMap(map[string]string{
		"w":             "100",
		"h":             "-5",
		"rule":          "B36/S23",
		"brush_density": "2",
		"soup_radius":   "7",
	})
	if cfg.Width != 100 {
		t.Fatalf("expected width 100, got %d", cfg.Width)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("expected invalid height to keep default, got %d", cfg.Height)
	}
	if cfg.Rule != "B36/S23" || cfg.SoupRadius != 7 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.BrushDensity != DefaultConfig().BrushDensity {
		t.Fatalf("expected out-of-range density to be ignored, got %f", cfg.BrushDensity)
	}
}
