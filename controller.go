package cinescroll

import "time"

// Clock returns the current wall-clock time. Injected so velocity can be
// tested deterministically.
type Clock func() time.Time

// CameraController turns scroll events into camera targets and damps the
// camera toward them every frame. It is the only writer of the scroll state.
type CameraController struct {
	timeline *Timeline
	camera   *Camera
	clock    Clock
	store    stateStore

	depth DampedScalar
	y     DampedScalar
	fov   DampedScalar
	roll  DampedScalar

	lastProgress float64
	lastScroll   time.Time
	haveScroll   bool

	pauseZone  int
	pausePhase PausePhase

	// onSection fires after the resolved section changes.
	onSection func(prev, next string, st ScrollState)
	// onPause fires when the raw progress enters or leaves a pause zone.
	onPause func(zone int, entered bool, st ScrollState)
}

// NewCameraController creates a controller for tl driving cam. tl must
// already be valid.
func NewCameraController(tl *Timeline, cam *Camera, clock Clock) *CameraController {
	if clock == nil {
		clock = time.Now
	}
	b := tl.Baselines
	r := tl.Rates
	return &CameraController{
		timeline:  tl,
		camera:    cam,
		clock:     clock,
		depth:     NewDampedScalar(0, r.Depth),
		y:         NewDampedScalar(b.Y, r.Y),
		fov:       NewDampedScalar(b.FOV, r.FOV),
		roll:      NewDampedScalar(b.Roll, r.Roll),
		pauseZone: -1,
	}
}

// Mount attaches the scroll state and processes the initial scroll
// position, snapping the camera onto it.
func (c *CameraController) Mount(m *ScrollMetrics) {
	c.store.init()
	c.haveScroll = false
	c.pauseZone, c.pausePhase = -1, PauseNone
	c.OnScroll(m)
	c.depth.Snap()
	c.y.Snap()
	c.fov.Snap()
	c.roll.Snap()
	c.apply()
}

// Dispose detaches the scroll state. Later scroll events are ignored.
func (c *CameraController) Dispose() {
	c.store.dispose()
}

// State returns the read-only scroll state.
func (c *CameraController) State() StateReader {
	return &c.store
}

// OnScroll handles a scroll event: it recomputes raw and adjusted progress,
// writes the scroll state and sets the camera targets. A nil metrics value
// is a missing container and reads as progress 0.
func (c *CameraController) OnScroll(m *ScrollMetrics) {
	if !c.store.attached {
		return
	}
	now := c.clock()
	tl := c.timeline

	raw := m.RawProgress()
	progress := tl.ApplyScrollPauses(raw)
	z := tl.DepthAt(progress)

	prev := c.store.state
	velocity := prev.Velocity
	if c.haveScroll {
		if dt := now.Sub(c.lastScroll).Seconds(); dt > 0 {
			velocity = (progress - c.lastProgress) / dt
		}
	}
	c.lastProgress = progress
	c.lastScroll = now
	c.haveScroll = true

	st := ScrollState{
		Progress: progress,
		CameraZ:  z,
		Section:  tl.ResolveSection(z),
		Velocity: velocity,
	}
	c.store.write(st)

	target := tl.CameraTargets(z)
	c.depth.Target = target.Z
	c.y.Target = target.Y
	c.fov.Target = target.FOV
	c.roll.Target = target.Roll
	c.roll.Current = nearestTurn(c.roll.Current, c.roll.Target)

	if st.Section != prev.Section && c.onSection != nil {
		c.onSection(prev.Section, st.Section, st)
	}
	c.trackPause(raw, st)
}

func (c *CameraController) trackPause(raw float64, st ScrollState) {
	zone, phase, _ := c.timeline.PauseZoneAt(raw)
	if zone == c.pauseZone {
		c.pausePhase = phase
		return
	}
	if c.onPause != nil {
		if c.pauseZone >= 0 {
			c.onPause(c.pauseZone, false, st)
		}
		if zone >= 0 {
			c.onPause(zone, true, st)
		}
	}
	c.pauseZone, c.pausePhase = zone, phase
}

// PauseStatus returns the pause zone and phase of the last scroll event.
// zone is -1 outside every zone.
func (c *CameraController) PauseStatus() (zone int, phase PausePhase) {
	return c.pauseZone, c.pausePhase
}

// Update damps the camera scalars toward their targets by dt seconds and
// writes them into the camera.
func (c *CameraController) Update(dt float64) {
	c.depth.Step(dt)
	c.y.Step(dt)
	c.fov.Step(dt)
	c.roll.Step(dt)
	c.apply()
}

func (c *CameraController) apply() {
	c.camera.Z = c.depth.Current
	c.camera.Y = c.y.Current
	c.camera.Roll = c.roll.Current
	c.camera.SetFOV(c.fov.Current)
}

// Targets returns the pose the camera is moving toward.
func (c *CameraController) Targets() CameraPose {
	return CameraPose{Z: c.depth.Target, Y: c.y.Target, FOV: c.fov.Target, Roll: c.roll.Target}
}

// Camera returns the driven camera.
func (c *CameraController) Camera() *Camera {
	return c.camera
}
