package life

// SoupResult captures how a rule behaves on one random soup.
type SoupResult struct {
	Rule string `yaml:"rule"`
	Seed int64  `yaml:"seed"`

	Steps          int `yaml:"steps"`
	InitialActive  int `yaml:"initial_active"`
	FinalActive    int `yaml:"final_active"`
	PeakActive     int `yaml:"peak_active"`
	PeakPotential  int `yaml:"peak_potential"`
	FinalPotential int `yaml:"final_potential"`
	// SettledAt is the first epoch with an empty potential set, or zero.
	SettledAt int `yaml:"settled_at,omitempty"`
	// Examined sums the cells each epoch examined, live cells included.
	Examined int `yaml:"examined"`
}

// Efficiency is the share of examined cells relative to a dense update of
// the soup's bounding window for the same number of epochs.
func (r SoupResult) Efficiency(window int) float64 {
	if r.Steps == 0 || window <= 0 {
		return 0
	}
	return float64(r.Examined) / float64(window*r.Steps)
}

// RunSoup resets a Life from cfg with seed and advances it steps epochs,
// stopping early once nothing is left to examine.
func RunSoup(cfg Config, seed int64, steps int) SoupResult {
	l := NewWithConfig(cfg)
	l.Reset(seed)
	res := SoupResult{Rule: l.Rule().String(), Seed: seed, InitialActive: l.ActiveCount()}
	res.PeakActive = res.InitialActive
	res.PeakPotential = l.PotentialCount()
	for step := 1; step <= steps; step++ {
		res.Examined += l.ExaminedCount()
		l.Advance()
		res.Steps = step
		res.PeakActive = max(res.PeakActive, l.ActiveCount())
		res.PeakPotential = max(res.PeakPotential, l.PotentialCount())
		if l.PotentialCount() == 0 {
			res.SettledAt = step
			break
		}
	}
	res.FinalActive = l.ActiveCount()
	res.FinalPotential = l.PotentialCount()
	return res
}
