package cinescroll

import "errors"

// Sentinel errors returned by the package. Callers match them with errors.Is.
var (
	// ErrInvalidTimeline wraps every timeline configuration error.
	ErrInvalidTimeline = errors.New("cinescroll: invalid timeline")
	// ErrDisposed is returned when reading state after the scene was disposed.
	ErrDisposed = errors.New("cinescroll: disposed")
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint.
var ColorWhite = Color{1, 1, 1, 1}

// Vec3 is a 3D vector used for layer anchors and particle positions.
type Vec3 struct {
	X, Y, Z float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Range is a general-purpose min/max range.
// Used by the particle field config.
type Range struct {
	Min, Max float64
}

// EventType identifies a kind of timeline event.
type EventType uint8

const (
	EventSectionEnter EventType = iota // the resolved section changed
	EventPauseEnter                    // raw progress entered a pause zone band
	EventPauseExit                     // raw progress left a pause zone band
)

// String returns the event name used in logs.
func (e EventType) String() string {
	switch e {
	case EventSectionEnter:
		return "section-enter"
	case EventPauseEnter:
		return "pause-enter"
	case EventPauseExit:
		return "pause-exit"
	default:
		return "unknown"
	}
}

// CameraParam selects which camera parameter a window drives.
type CameraParam uint8

const (
	ParamFOV  CameraParam = iota // vertical field of view in degrees
	ParamY                       // vertical offset in world units
	ParamRoll                    // roll angle in radians
)

// String returns the name used in configuration files.
func (p CameraParam) String() string {
	switch p {
	case ParamFOV:
		return "fov"
	case ParamY:
		return "y"
	case ParamRoll:
		return "roll"
	default:
		return "unknown"
	}
}

// parseCameraParam is the inverse of CameraParam.String.
func parseCameraParam(s string) (CameraParam, bool) {
	switch s {
	case "fov":
		return ParamFOV, true
	case "y":
		return ParamY, true
	case "roll":
		return ParamRoll, true
	}
	return 0, false
}

// clamp01 restricts v to [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
