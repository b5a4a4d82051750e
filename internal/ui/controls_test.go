package ui

import (
	"testing"

	"lifescape/internal/core"
)

type fakeSetter struct {
	ints   map[string]int
	floats map[string]float64
}

func (f *fakeSetter) SetIntParameter(key string, value int) bool {
	if key == "locked" {
		return false
	}
	f.ints[key] = value
	return true
}

func (f *fakeSetter) SetFloatParameter(key string, value float64) bool {
	f.floats[key] = value
	return true
}

func snapshot(params ...core.Parameter) core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{Name: "test", Params: params}}}
}

func TestControlLoadsAndFormats(t *testing.T) {
	v := controlValue{control: core.ParameterControl{Key: "density", Type: core.ParamTypeFloat, Step: 0.05}}
	v.load(snapshot(core.FloatParam("density", "Density", 0.35)))
	if !v.hasValue || v.text() != "0.35" {
		t.Fatalf("expected 0.35, got %q", v.text())
	}
	v.load(snapshot())
	if v.hasValue || v.text() != "--" {
		t.Fatalf("expected missing value placeholder, got %q", v.text())
	}
}

func TestIntControlClampsToBounds(t *testing.T) {
	setter := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	v := controlValue{control: core.ParameterControl{Key: "radius", Type: core.ParamTypeInt, Step: 5, Max: 12, HasMax: true}}
	v.load(snapshot(core.IntParam("radius", "Radius", 10)))

	if !v.adjust(1, setter, setter) {
		t.Fatalf("expected adjustment to apply")
	}
	if v.intValue != 12 || setter.ints["radius"] != 12 {
		t.Fatalf("expected clamp to 12, got %d", v.intValue)
	}
	if v.canAdjust(1, setter, setter) {
		t.Fatalf("expected no further increase at the max")
	}
	if !v.canAdjust(-1, setter, setter) {
		t.Fatalf("expected decrease to remain possible")
	}
}

func TestFloatControlStepsDown(t *testing.T) {
	setter := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	v := controlValue{control: core.ParameterControl{Key: "p", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true}}
	v.load(snapshot(core.FloatParam("p", "P", 0.1)))
	if !v.adjust(-1, setter, setter) || setter.floats["p"] != 0 {
		t.Fatalf("expected clamp to 0, got %v", setter.floats["p"])
	}
	if v.adjust(-1, setter, setter) {
		t.Fatalf("expected no change below the minimum")
	}
}

func TestRejectedAdjustmentKeepsValue(t *testing.T) {
	setter := &fakeSetter{ints: map[string]int{}, floats: map[string]float64{}}
	v := controlValue{control: core.ParameterControl{Key: "locked", Type: core.ParamTypeInt, Step: 1}}
	v.load(snapshot(core.IntParam("locked", "Locked", 3)))
	if v.adjust(1, setter, setter) || v.intValue != 3 {
		t.Fatalf("expected rejected adjustment to keep 3, got %d", v.intValue)
	}
	if v.adjust(1, nil, nil) {
		t.Fatalf("expected nil setter to make the control read-only")
	}
}
