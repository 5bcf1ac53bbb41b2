package cinescroll

import "math"

// nominalFPS ties smoothing rates to a 60 fps baseline so the same rate
// settles in the same wall-clock time at any frame rate.
const nominalFPS = 60

// SmoothDamp moves current toward target by an exponential decay step:
//
//	current + (target-current) * (1 - exp(-rate*dt*60))
//
// The result approaches target monotonically and never overshoots for
// positive rate and dt.
func SmoothDamp(current, target, rate, dt float64) float64 {
	return current + (target-current)*(1-math.Exp(-rate*dt*nominalFPS))
}

// SceneOpacity returns the visibility weight of a scene centered at sceneZ
// when the camera is at cameraZ. The weight is 1 at the scene depth, eases
// out to 0 at fadeRange, and is 0 beyond it. It is symmetric in the sign of
// cameraZ - sceneZ.
func SceneOpacity(cameraZ, sceneZ, fadeRange float64) float64 {
	d := math.Abs(cameraZ - sceneZ)
	if fadeRange <= 0 {
		if d == 0 {
			return 1
		}
		return 0
	}
	if d >= fadeRange {
		return 0
	}
	return EaseOutQuart(1 - d/fadeRange)
}

// nearestTurn returns the angle equal to a modulo 2π that lies within π of
// ref, so a damped roll never unwinds a full turn.
func nearestTurn(a, ref float64) float64 {
	return ref + math.Remainder(a-ref, 2*math.Pi)
}

// DampedScalar is a value that chases a target at a fixed smoothing rate.
// It is owned by exactly one component and stepped once per frame.
type DampedScalar struct {
	Current float64
	Target  float64
	Rate    float64
}

// NewDampedScalar returns a scalar at rest on value.
func NewDampedScalar(value, rate float64) DampedScalar {
	return DampedScalar{Current: value, Target: value, Rate: rate}
}

// Step advances Current toward Target by dt seconds and returns it.
func (d *DampedScalar) Step(dt float64) float64 {
	if dt <= 0 {
		return d.Current
	}
	d.Current = SmoothDamp(d.Current, d.Target, d.Rate, dt)
	return d.Current
}

// Snap jumps Current to Target.
func (d *DampedScalar) Snap() {
	d.Current = d.Target
}

// Settled reports whether Current is within eps of Target.
func (d *DampedScalar) Settled(eps float64) bool {
	return math.Abs(d.Target-d.Current) <= eps
}
