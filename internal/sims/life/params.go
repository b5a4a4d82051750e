package life

import (
	"fmt"

	simcore "lifescape/internal/core"
	"lifescape/pkg/core"
)

// PaintCell stimulates a single cell.
func (l *Life) PaintCell(pos core.Cell) { l.StimulateCell(pos) }

// PaintRegion stochastically stimulates a square window.
func (l *Life) PaintRegion(center core.Cell, halfExtent int, p float64) {
	l.StimulateRegion(center, halfExtent, p)
}

// ClearAll empties the automaton.
func (l *Life) ClearAll() { l.Clear() }

// Brush reports the default region painted by PaintRegion callers.
func (l *Life) Brush() (int, float64) { return l.cfg.BrushRadius, l.cfg.BrushDensity }

// Status returns the HUD status lines.
func (l *Life) Status() []string {
	return []string{
		fmt.Sprintf("Rule: %s  Epoch: %d", l.rule, l.epoch),
		fmt.Sprintf("Active: %d / %d", l.ActiveCount(), l.PotentialCount()),
	}
}

// Parameters reports the current tunables.
func (l *Life) Parameters() simcore.ParameterSnapshot {
	return simcore.ParameterSnapshot{Groups: []simcore.ParameterGroup{
		{
			Name: "Life",
			Params: []simcore.Parameter{
				simcore.StringParam("rule", "Rule", l.rule.String()),
				simcore.Int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name: "Brush",
			Params: []simcore.Parameter{
				simcore.IntParam("brush_radius", "Brush radius", l.cfg.BrushRadius),
				simcore.FloatParam("brush_density", "Brush density", l.cfg.BrushDensity),
				simcore.IntParam("soup_radius", "Soup radius", l.cfg.SoupRadius),
				simcore.FloatParam("soup_density", "Soup density", l.cfg.SoupDensity),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable brush settings.
func (l *Life) ParameterControls() []simcore.ParameterControl {
	return []simcore.ParameterControl{
		{Key: "brush_radius", Label: "Brush radius", Type: simcore.ParamTypeInt, Step: 5, Min: 0, Max: 200, HasMin: true, HasMax: true},
		{Key: "brush_density", Label: "Brush density", Type: simcore.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush_radius":
		l.cfg.BrushRadius = clampInt(value, 0, 200)
		return true
	case "soup_radius":
		l.cfg.SoupRadius = clampInt(value, 0, 1000)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point tunable.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	switch key {
	case "brush_density":
		l.cfg.BrushDensity = clamp01(value)
		return true
	case "soup_density":
		l.cfg.SoupDensity = clamp01(value)
		return true
	}
	return false
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
