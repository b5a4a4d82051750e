package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"

	"lifescape/internal/sims/life"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

type ruleSummary struct {
	Rule         string            `yaml:"rule"`
	MeanFinal    float64           `yaml:"mean_final_active"`
	MeanPeak     float64           `yaml:"mean_peak_potential"`
	Settled      int               `yaml:"settled"`
	MeanWorkRate float64           `yaml:"mean_work_rate"`
	Soups        []life.SoupResult `yaml:"soups"`
}

func main() {
	rules := flag.String("rules", "B3/S23,B36/S23,B3678/S34678,B2/S,B368/S245", "comma separated rules to scan")
	soups := flag.Int("soups", 6, "random soups per rule")
	steps := flag.Int("steps", 400, "epochs per soup")
	radius := flag.Int("radius", 24, "soup half extent")
	density := flag.Float64("density", 0.35, "soup fill probability")
	seed := flag.Int64("seed", 1, "first soup seed")
	workers := flag.Int("workers", runtime.NumCPU(), "parallel soups")
	out := flag.String("out", "", "write a YAML report to this file (- for stdout)")
	flag.Parse()

	var parsed []life.Rule
	for _, text := range strings.Split(*rules, ",") {
		rule, err := life.ParseRule(text)
		if err != nil {
			log.Fatal(err)
		}
		parsed = append(parsed, rule)
	}

	summaries, err := scan(context.Background(), parsed, *soups, *steps, *radius, *density, *seed, *workers)
	if err != nil {
		log.Fatal(err)
	}
	sort.SliceStable(summaries, func(i, j int) bool { return summaries[i].MeanFinal > summaries[j].MeanFinal })

	fmt.Printf("%-16s %12s %12s %8s %10s\n", "rule", "final", "peakPot", "settled", "work")
	for _, s := range summaries {
		fmt.Printf("%-16s %12.1f %12.1f %5d/%-2d %10.3f\n", s.Rule, s.MeanFinal, s.MeanPeak, s.Settled, len(s.Soups), s.MeanWorkRate)
	}

	if *out == "" {
		return
	}
	data, err := yaml.Marshal(summaries)
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

// scan runs every rule against the same soups. Each goroutine owns its own
// Life, so nothing is shared besides the result slots.
func scan(ctx context.Context, rules []life.Rule, soups, steps, radius int, density float64, seed int64, workers int) ([]ruleSummary, error) {
	if workers <= 0 {
		workers = 1
	}
	results := make([][]life.SoupResult, len(rules))
	for i := range results {
		results[i] = make([]life.SoupResult, soups)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for ri, rule := range rules {
		cfg := life.DefaultConfig()
		cfg.Rule = rule.String()
		cfg.SoupRadius = radius
		cfg.SoupDensity = density
		for si := 0; si < soups; si++ {
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				results[ri][si] = life.RunSoup(cfg, seed+int64(si), steps)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	window := (2*radius + 1) * (2*radius + 1)
	summaries := make([]ruleSummary, len(rules))
	for ri, rule := range rules {
		s := ruleSummary{Rule: rule.String(), Soups: results[ri]}
		for _, r := range results[ri] {
			s.MeanFinal += float64(r.FinalActive)
			s.MeanPeak += float64(r.PeakPotential)
			s.MeanWorkRate += r.Efficiency(window)
			if r.SettledAt > 0 {
				s.Settled++
			}
		}
		if n := float64(len(results[ri])); n > 0 {
			s.MeanFinal /= n
			s.MeanPeak /= n
			s.MeanWorkRate /= n
		}
		summaries[ri] = s
	}
	return summaries, nil
}
