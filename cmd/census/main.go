package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strings"
	"time"

	"lifescape/internal/sims/ecology"
	"lifescape/internal/sims/terrain"

	"gopkg.in/yaml.v3"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

type report struct {
	Ticks   int                    `yaml:"ticks"`
	Params  ecology.Params         `yaml:"params"`
	Runs    []ecology.CensusResult `yaml:"runs"`
	Survive int                    `yaml:"survived"`
}

func main() {
	ticks := flag.Int("ticks", 500, "ticks to simulate per seed")
	count := flag.Int("count", 8, "number of seeds to run")
	firstSeed := flag.Int64("seed", 1, "first seed; runs use seed, seed+1, ...")
	sample := flag.Int("sample", 50, "record populations every N ticks (0 disables)")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel runs")
	width := flag.Int("width", 160, "map width")
	height := flag.Int("height", 120, "map height")
	out := flag.String("out", "", "write a YAML report to this file (- for stdout)")
	var overrides kvList
	flag.Var(&overrides, "set", "ecosystem or terrain parameter in key=value form (repeatable)")
	flag.Parse()

	params, err := parseOverrides(overrides)
	if err != nil {
		log.Fatal(err)
	}

	cfg := ecology.FromMap(params)
	cfg.Width = *width
	cfg.Height = *height
	terrainCfg := terrain.FromMap(params)
	terrainCfg.Width = *width
	terrainCfg.Height = *height

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *firstSeed + int64(i)
	}

	start := time.Now()
	results := ecology.CensusSweep(cfg, seeds, *ticks, *sample, *workers, func(seed int64) ecology.Ground {
		tc := terrainCfg
		tc.Seed = seed
		return terrain.NewWithConfig(tc)
	})
	log.Printf("census: %d runs of %d ticks in %s", len(results), *ticks, time.Since(start).Round(time.Millisecond))

	rep := buildReport(*ticks, cfg.Params, results)
	rep.writeTable(os.Stdout)

	if *out == "" {
		return
	}
	data, err := yaml.Marshal(rep)
	if err != nil {
		log.Fatalf("encode report: %v", err)
	}
	if *out == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatalf("write report: %v", err)
	}
}

func parseOverrides(kvs []string) (map[string]string, error) {
	params := map[string]string{}
	for _, kv := range kvs {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("bad -set %q: expected key=value", kv)
		}
		params[key] = value
	}
	return params, nil
}

func buildReport(ticks int, params ecology.Params, runs []ecology.CensusResult) report {
	rep := report{Ticks: ticks, Params: params, Runs: runs}
	for _, r := range runs {
		if r.Survived() {
			rep.Survive++
		}
	}
	return rep
}

func (rep report) writeTable(w io.Writer) {
	fmt.Fprintf(w, "%6s %6s %8s %8s %8s %8s %10s %10s\n", "seed", "ticks", "prey", "preds", "peakPy", "peakPd", "eaten", "starved")
	for _, r := range rep.Runs {
		fmt.Fprintf(w, "%6d %6d %8d %8d %8d %8d %10d %10d\n",
			r.Seed, r.TicksSimulated, r.FinalPrey, r.FinalPredators, r.PeakPrey, r.PeakPredators, r.Totals.Eaten, r.Totals.Starved)
	}
	fmt.Fprintf(w, "\nBoth species survived in %d/%d runs.\n", rep.Survive, len(rep.Runs))
}
