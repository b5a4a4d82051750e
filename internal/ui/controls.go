package ui

import (
	"math"
	"strconv"

	"lifescape/internal/core"
)

// controlValue is the HUD's view of one adjustable parameter.
type controlValue struct {
	control core.ParameterControl

	intValue   int
	floatValue float64
	hasValue   bool
}

// load reads the parameter's current value from snap.
func (v *controlValue) load(snap core.ParameterSnapshot) {
	v.hasValue = false
	param, ok := snap.Lookup(v.control.Key)
	if !ok {
		return
	}
	switch v.control.Type {
	case core.ParamTypeInt:
		parsed, err := strconv.Atoi(param.Value)
		if err != nil {
			return
		}
		v.intValue = parsed
		v.floatValue = float64(parsed)
		v.hasValue = true
	case core.ParamTypeFloat:
		parsed, err := strconv.ParseFloat(param.Value, 64)
		if err != nil {
			return
		}
		v.floatValue = parsed
		v.hasValue = true
	}
}

// text renders the value with a precision suited to the control's step.
func (v *controlValue) text() string {
	if !v.hasValue {
		return "--"
	}
	if v.control.Type == core.ParamTypeInt {
		return strconv.Itoa(v.intValue)
	}
	precision := 1
	switch step := floatStep(v.control); {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v.floatValue, 'f', precision, 64)
}

// nextInt returns the clamped value one step in direction and whether it
// differs from the current value.
func (v *controlValue) nextInt(direction int) (int, bool) {
	step := int(math.Round(v.control.Step))
	if step <= 0 {
		step = 1
	}
	target := v.intValue + direction*step
	if v.control.HasMin {
		target = max(target, int(math.Round(v.control.Min)))
	}
	if v.control.HasMax {
		target = min(target, int(math.Round(v.control.Max)))
	}
	return target, target != v.intValue
}

// nextFloat is nextInt for floating point controls.
func (v *controlValue) nextFloat(direction int) (float64, bool) {
	target := v.floatValue + float64(direction)*floatStep(v.control)
	if v.control.HasMin && target < v.control.Min {
		target = v.control.Min
	}
	if v.control.HasMax && target > v.control.Max {
		target = v.control.Max
	}
	return target, math.Abs(target-v.floatValue) >= 1e-9
}

// adjust applies one step through the setters and reports whether the sim
// accepted it. Nil setters make the matching control read-only.
func (v *controlValue) adjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !v.hasValue || direction == 0 {
		return false
	}
	switch v.control.Type {
	case core.ParamTypeInt:
		target, changed := v.nextInt(direction)
		if !changed || ints == nil || !ints.SetIntParameter(v.control.Key, target) {
			return false
		}
		v.intValue = target
		v.floatValue = float64(target)
		return true
	case core.ParamTypeFloat:
		target, changed := v.nextFloat(direction)
		if !changed || floats == nil || !floats.SetFloatParameter(v.control.Key, target) {
			return false
		}
		v.floatValue = target
		return true
	}
	return false
}

// canAdjust reports whether a step in direction would change anything.
func (v *controlValue) canAdjust(direction int, ints core.IntParameterSetter, floats core.FloatParameterSetter) bool {
	if !v.hasValue || direction == 0 {
		return false
	}
	switch v.control.Type {
	case core.ParamTypeInt:
		_, changed := v.nextInt(direction)
		return changed && ints != nil
	case core.ParamTypeFloat:
		_, changed := v.nextFloat(direction)
		return changed && floats != nil
	}
	return false
}

func floatStep(ctrl core.ParameterControl) float64 {
	if ctrl.Step <= 0 {
		return 0.05
	}
	return ctrl.Step
}
