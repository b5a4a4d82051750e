package ecology

import (
	"slices"
	"testing"
)

func TestRunCensusIsDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.InitialPrey = 60
	cfg.Params.InitialPredators = 8
	ground := newTestGround(30, 30)

	a := RunCensus(cfg, ground, 50, 10)
	b := RunCensus(cfg, ground, 50, 10)
	if !slices.Equal(a.Samples, b.Samples) || a.Totals != b.Totals {
		t.Fatalf("expected identical census for identical seeds")
	}
	if a.Samples[0].Tick != 0 || a.Samples[0].Prey != 60 || a.Samples[0].Predators != 8 {
		t.Fatalf("expected initial sample to record the seeded populations, got %+v", a.Samples[0])
	}
	if a.PeakPrey < 60 {
		t.Fatalf("expected peak prey to include the initial population, got %d", a.PeakPrey)
	}
}

func TestRunCensusStopsOnTotalExtinction(t *testing.T) {
	cfg := quietConfig()
	cfg.Params.InitialPredators = 1
	cfg.Params.StarveAfter = 3
	res := RunCensus(cfg, newTestGround(10, 10), 100, 0)
	if res.TicksSimulated != 4 {
		t.Fatalf("expected the run to stop once the predator starved, got %d ticks", res.TicksSimulated)
	}
	if res.PredatorExtinctAt != 4 {
		t.Fatalf("unexpected extinction ticks %+v", res)
	}
	if res.Survived() {
		t.Fatalf("expected an extinct census")
	}
}

func TestCensusSweepKeepsSeedOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.InitialPrey = 20
	cfg.Params.InitialPredators = 2
	seeds := []int64{5, 1, 9, 3}
	results := CensusSweep(cfg, seeds, 10, 0, 2, func(int64) Ground { return newTestGround(16, 16) })
	if len(results) != len(seeds) {
		t.Fatalf("expected %d results, got %d", len(seeds), len(results))
	}
	for i, res := range results {
		if res.Seed != seeds[i] {
			t.Fatalf("result %d: expected seed %d, got %d", i, seeds[i], res.Seed)
		}
		cfg.Seed = seeds[i]
		if want := RunCensus(cfg, newTestGround(16, 16), 10, 0); want.Totals != res.Totals || want.FinalPrey != res.FinalPrey {
			t.Fatalf("result %d differs from a sequential run", i)
		}
	}
}
