package cinescroll

import (
	"fmt"
	"sort"

	"github.com/tanema/gween/ease"
)

// EasingFunc maps a normalized progress value to an eased value. Inputs are
// not clamped; callers clamp to [0, 1].
type EasingFunc func(t float64) float64

// EaseOutQuart returns 1 - (1-t)^4.
func EaseOutQuart(t float64) float64 {
	return unit(ease.OutQuart, t)
}

// EaseInOutCubic returns 4t^3 below 0.5 and 1 - (-2t+2)^3/2 above.
func EaseInOutCubic(t float64) float64 {
	return unit(ease.InOutCubic, t)
}

// EaseLinear returns t.
func EaseLinear(t float64) float64 {
	return t
}

// unit evaluates a gween easing over the unit interval (begin 0, change 1,
// duration 1). gween works in float32, so results agree with the float64
// closed forms to within 1e-6 on [0, 1].
func unit(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(t), 0, 1, 1))
}

func wrap(fn ease.TweenFunc) EasingFunc {
	return func(t float64) float64 { return unit(fn, t) }
}

var easings = map[string]EasingFunc{
	"linear":     EaseLinear,
	"outQuart":   EaseOutQuart,
	"inOutCubic": EaseInOutCubic,
	"outCubic":   wrap(ease.OutCubic),
	"inOutQuad":  wrap(ease.InOutQuad),
	"inOutSine":  wrap(ease.InOutSine),
}

// EasingByName returns the easing registered under name. An empty name
// selects inOutCubic, the default for parameter windows.
func EasingByName(name string) (EasingFunc, error) {
	if name == "" {
		return EaseInOutCubic, nil
	}
	fn, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("unknown easing %q (known: %v)", name, EasingNames())
	}
	return fn, nil
}

// EasingNames lists the registered easing names in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
