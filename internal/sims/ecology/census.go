package ecology

import (
	"sync"

	"lifescape/pkg/core"
)

// CensusSample is one population reading.
type CensusSample struct {
	Tick      int `yaml:"tick"`
	Prey      int `yaml:"prey"`
	Predators int `yaml:"predators"`
}

// CensusResult captures telemetry from a deterministic headless run.
type CensusResult struct {
	Seed int64 `yaml:"seed"`
	// TicksSimulated may fall short of the request when both species die out.
	TicksSimulated int `yaml:"ticks"`

	PeakPrey       int `yaml:"peak_prey"`
	PeakPredators  int `yaml:"peak_predators"`
	FinalPrey      int `yaml:"final_prey"`
	FinalPredators int `yaml:"final_predators"`

	// Extinction ticks stay zero while the species survives or if it started empty.
	PreyExtinctAt     int `yaml:"prey_extinct_at,omitempty"`
	PredatorExtinctAt int `yaml:"predators_extinct_at,omitempty"`

	Totals  TickStats      `yaml:"totals"`
	Samples []CensusSample `yaml:"samples,omitempty"`
}

// Survived reports whether both species were alive at the end of the run.
func (r CensusResult) Survived() bool { return r.FinalPrey > 0 && r.FinalPredators > 0 }

// RunCensus populates an ecosystem on ground and advances it for up to ticks
// steps, sampling the populations every sampleEvery ticks (0 disables).
func RunCensus(cfg Config, ground Ground, ticks, sampleEvery int) CensusResult {
	result := CensusResult{Seed: cfg.Seed}
	if ticks <= 0 {
		return result
	}
	eco := New(cfg, ground, core.NewRNG(cfg.Seed))
	eco.Populate()

	measure := func(tick int) {
		s := eco.Stats()
		result.PeakPrey = max(result.PeakPrey, s.Prey)
		result.PeakPredators = max(result.PeakPredators, s.Predators)
		if s.Prey == 0 && result.PreyExtinctAt == 0 {
			result.PreyExtinctAt = tick
		}
		if s.Predators == 0 && result.PredatorExtinctAt == 0 {
			result.PredatorExtinctAt = tick
		}
		if sampleEvery > 0 && tick%sampleEvery == 0 {
			result.Samples = append(result.Samples, CensusSample{Tick: tick, Prey: s.Prey, Predators: s.Predators})
		}
	}

	measure(0)
	for tick := 1; tick <= ticks; tick++ {
		eco.Tick()
		result.TicksSimulated = tick
		measure(tick)
		if s := eco.Stats(); s.Prey == 0 && s.Predators == 0 {
			break
		}
	}

	s := eco.Stats()
	result.FinalPrey = s.Prey
	result.FinalPredators = s.Predators
	result.Totals = s.Total
	return result
}

// CensusSweep runs one census per seed on up to workers goroutines. Each run
// gets a fresh ground from groundFor. Results keep the order of seeds.
func CensusSweep(base Config, seeds []int64, ticks, sampleEvery, workers int, groundFor func(seed int64) Ground) []CensusResult {
	if workers <= 0 {
		workers = 1
	}
	results := make([]CensusResult, len(seeds))
	var wg sync.WaitGroup
	sem := make(chan struct{}, workers)
	for idx, seed := range seeds {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, s int64) {
			defer wg.Done()
			cfg := base
			cfg.Seed = s
			results[i] = RunCensus(cfg, groundFor(s), ticks, sampleEvery)
			<-sem
		}(idx, seed)
	}
	wg.Wait()
	return results
}
