package cinescroll

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a perspective camera travelling down the depth axis. A camera
// depth of Z places it at world z = -Z, looking toward negative z.
type Camera struct {
	// Z is the camera depth along the timeline.
	Z float64
	// Y is the vertical offset in world units.
	Y float64
	// Roll is the rotation around the view axis in radians.
	Roll float64
	// Viewport is the screen-space rectangle this camera renders into.
	Viewport Rect

	fov    float64
	near   float64
	far    float64
	aspect float64

	projMatrix mgl64.Mat4
	projDirty  bool
	projCount  int
}

const (
	defaultNear = 0.1
	defaultFar  = 2000
)

// NewCamera creates a camera at depth 0 with the given viewport and field of
// view in degrees.
func NewCamera(viewport Rect, fov float64) *Camera {
	c := &Camera{
		Viewport: viewport,
		fov:      fov,
		near:     defaultNear,
		far:      defaultFar,
	}
	c.aspect = viewportAspect(viewport)
	c.projDirty = true
	return c
}

func viewportAspect(vp Rect) float64 {
	if vp.Height <= 0 {
		return 1
	}
	return vp.Width / vp.Height
}

// FOV returns the vertical field of view in degrees.
func (c *Camera) FOV() float64 {
	return c.fov
}

// SetFOV changes the vertical field of view. The projection is recomputed
// lazily on the next read.
func (c *Camera) SetFOV(fov float64) {
	if fov == c.fov {
		return
	}
	c.fov = fov
	c.projDirty = true
}

// SetClip changes the near and far clip distances.
func (c *Camera) SetClip(near, far float64) {
	c.near, c.far = near, far
	c.projDirty = true
}

// SetViewport changes the viewport and the aspect ratio derived from it.
func (c *Camera) SetViewport(vp Rect) {
	c.Viewport = vp
	c.aspect = viewportAspect(vp)
	c.projDirty = true
}

// Pose returns the camera's current pose.
func (c *Camera) Pose() CameraPose {
	return CameraPose{Z: c.Z, Y: c.Y, FOV: c.fov, Roll: c.Roll}
}

// ProjectionMatrix returns the perspective projection, recomputing it if the
// field of view, clip planes or viewport changed since the last call.
func (c *Camera) ProjectionMatrix() mgl64.Mat4 {
	if c.projDirty {
		c.projMatrix = mgl64.Perspective(mgl64.DegToRad(c.fov), c.aspect, c.near, c.far)
		c.projDirty = false
		c.projCount++
	}
	return c.projMatrix
}

// ViewMatrix returns Rotate(-roll) * Translate(0, -Y, Z).
func (c *Camera) ViewMatrix() mgl64.Mat4 {
	return mgl64.HomogRotate3DZ(-c.Roll).Mul4(mgl64.Translate3D(0, -c.Y, c.Z))
}

// Project maps a world point to viewport pixels. scale is the size in pixels
// of one world unit at the point's distance. ok is false for points behind
// the near plane.
func (c *Camera) Project(p Vec3) (sx, sy, scale float64, ok bool) {
	proj := c.ProjectionMatrix()
	clip := proj.Mul4(c.ViewMatrix()).Mul4x1(mgl64.Vec4{p.X, p.Y, p.Z, 1})
	w := clip.W()
	if w < c.near {
		return 0, 0, 0, false
	}
	nx, ny := clip.X()/w, clip.Y()/w
	vp := c.Viewport
	sx = vp.X + (nx+1)/2*vp.Width
	sy = vp.Y + (1-ny)/2*vp.Height
	scale = vp.Height / 2 * proj.At(1, 1) / w
	return sx, sy, scale, true
}

// DepthWorldZ converts a timeline depth to a world z coordinate.
func DepthWorldZ(depth float64) float64 {
	return -depth
}

// DistanceTo returns the signed distance along the view axis from the camera
// to a timeline depth. Positive values lie ahead of the camera.
func (c *Camera) DistanceTo(depth float64) float64 {
	return depth - c.Z
}

// Facing reports whether a timeline depth lies ahead of the camera within
// the far plane.
func (c *Camera) Facing(depth float64) bool {
	d := c.DistanceTo(depth)
	return d >= c.near && d <= c.far && !math.IsNaN(d)
}
