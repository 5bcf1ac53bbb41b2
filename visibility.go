package cinescroll

const (
	// DefaultVisibilityRate is the opacity smoothing rate of a layer.
	DefaultVisibilityRate = 0.1
	// DefaultInvisibleThreshold is the damped opacity below which a layer
	// counts as invisible and skips its per-frame work.
	DefaultInvisibleThreshold = 0.01
)

// SceneVisibility tracks how visible one decorative scene is. Each instance
// owns its opacity; it reads the camera depth straight from the camera so
// the opacity never lags the camera by a frame.
type SceneVisibility struct {
	// SceneDepth is where the scene is centered on the depth axis.
	SceneDepth float64
	// FadeRange is the depth distance over which opacity falls to 0.
	FadeRange float64
	// Threshold is the damped opacity below which the scene is invisible.
	Threshold float64

	// OnVisibleUpdate runs once per Update while the scene is visible. It is
	// the place for per-element work such as particle integration.
	OnVisibleUpdate func(dt, opacity float64)

	opacity DampedScalar
	camera  *Camera

	skipped int
}

// NewSceneVisibility creates a visibility driver for a scene at sceneDepth
// read from cam. The opacity starts at its settled value for the camera's
// current depth.
func NewSceneVisibility(cam *Camera, sceneDepth, fadeRange float64) *SceneVisibility {
	v := &SceneVisibility{
		SceneDepth: sceneDepth,
		FadeRange:  fadeRange,
		Threshold:  DefaultInvisibleThreshold,
		camera:     cam,
	}
	v.opacity = NewDampedScalar(v.TargetOpacity(), DefaultVisibilityRate)
	return v
}

// SetRate changes the opacity smoothing rate.
func (v *SceneVisibility) SetRate(rate float64) {
	v.opacity.Rate = rate
}

// TargetOpacity returns the undamped opacity for the camera's current depth.
func (v *SceneVisibility) TargetOpacity() float64 {
	if v.camera == nil {
		return 0
	}
	return SceneOpacity(v.camera.Z, v.SceneDepth, v.FadeRange)
}

// Update damps the opacity toward its target and runs OnVisibleUpdate when
// the scene is visible. It returns the damped opacity.
func (v *SceneVisibility) Update(dt float64) float64 {
	v.opacity.Target = v.TargetOpacity()
	o := v.opacity.Step(dt)
	if v.Invisible() {
		v.skipped++
		return o
	}
	if v.OnVisibleUpdate != nil {
		v.OnVisibleUpdate(dt, o)
	}
	return o
}

// Opacity returns the damped opacity.
func (v *SceneVisibility) Opacity() float64 {
	return v.opacity.Current
}

// Invisible reports whether the damped opacity is below the threshold.
func (v *SceneVisibility) Invisible() bool {
	return v.opacity.Current < v.Threshold
}

// SkippedFrames returns how many updates skipped OnVisibleUpdate.
func (v *SceneVisibility) SkippedFrames() int {
	return v.skipped
}

// detach drops the camera reference; the scene reads as invisible after.
func (v *SceneVisibility) detach() {
	v.camera = nil
	v.OnVisibleUpdate = nil
	v.opacity = NewDampedScalar(0, v.opacity.Rate)
}
