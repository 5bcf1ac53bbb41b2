package cinescroll

import (
	"errors"
	"math"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// metricsAt returns container metrics scrolled to raw progress.
func metricsAt(raw float64) *ScrollMetrics {
	return &ScrollMetrics{Offset: raw * 1000, ScrollHeight: 1100, ViewportHeight: 100}
}

func newTestController() (*CameraController, *fakeClock) {
	clock := newFakeClock()
	tl := DefaultTimeline()
	c := NewCameraController(tl, NewCamera(Rect{Width: 1280, Height: 720}, tl.Baselines.FOV), clock.Now)
	c.Mount(metricsAt(0))
	return c, clock
}

func TestControllerMount(t *testing.T) {
	c, _ := newTestController()
	st, err := c.State().State()
	if err != nil {
		t.Fatalf("State(): %v", err)
	}
	if st.Section != "portal" || st.Progress != 0 || st.CameraZ != 0 || st.Velocity != 0 {
		t.Errorf("state after mount = %+v", st)
	}
	if c.Camera().FOV() != 50 {
		t.Errorf("FOV = %v, want 50", c.Camera().FOV())
	}
}

func TestControllerMountSnapsCamera(t *testing.T) {
	clock := newFakeClock()
	tl := DefaultTimeline()
	cam := NewCamera(Rect{Width: 1280, Height: 720}, 50)
	c := NewCameraController(tl, cam, clock.Now)
	c.Mount(metricsAt(tl.RawProgressForDepth(4499)))
	if !approxEqual(cam.Z, 4499, 1e-6) || !approxEqual(cam.FOV(), 75, 1e-3) {
		t.Errorf("camera after mount = %+v, want z 4499 fov 75", cam.Pose())
	}
}

func TestControllerVelocity(t *testing.T) {
	c, clock := newTestController()
	tl := c.timeline

	clock.advance(500 * time.Millisecond)
	c.OnScroll(metricsAt(0.05))
	st := c.State().Snapshot()
	wantProgress := tl.ApplyScrollPauses(0.05)
	if !approxEqual(st.Progress, wantProgress, 1e-12) {
		t.Fatalf("Progress = %v, want %v", st.Progress, wantProgress)
	}
	wantVelocity := wantProgress / 0.5
	if !approxEqual(st.Velocity, wantVelocity, 1e-9) {
		t.Errorf("Velocity = %v, want %v", st.Velocity, wantVelocity)
	}

	// Same timestamp: velocity keeps its previous value.
	c.OnScroll(metricsAt(0.06))
	st = c.State().Snapshot()
	if !approxEqual(st.Velocity, wantVelocity, 1e-9) {
		t.Errorf("Velocity with dt 0 = %v, want %v", st.Velocity, wantVelocity)
	}
	if !approxEqual(st.Progress, tl.ApplyScrollPauses(0.06), 1e-12) {
		t.Errorf("Progress with dt 0 = %v, not updated", st.Progress)
	}

	// Scrolling back up gives a negative velocity.
	clock.advance(time.Second)
	c.OnScroll(metricsAt(0.05))
	st = c.State().Snapshot()
	want := (tl.ApplyScrollPauses(0.05) - tl.ApplyScrollPauses(0.06)) / 1
	if !approxEqual(st.Velocity, want, 1e-9) || st.Velocity >= 0 {
		t.Errorf("Velocity = %v, want %v", st.Velocity, want)
	}
}

func TestControllerNilContainer(t *testing.T) {
	c, clock := newTestController()
	clock.advance(time.Second)
	c.OnScroll(metricsAt(0.5))
	clock.advance(time.Second)
	c.OnScroll(nil)
	st := c.State().Snapshot()
	if st.Progress != 0 || st.Section != "portal" {
		t.Errorf("state for nil container = %+v, want progress 0", st)
	}
}

func TestControllerDamping(t *testing.T) {
	c, clock := newTestController()
	cam := c.Camera()
	tl := c.timeline

	clock.advance(time.Second)
	c.OnScroll(metricsAt(tl.RawProgressForDepth(4250)))
	target := c.Targets()
	if !approxEqual(target.FOV, 62.5, 1e-3) {
		t.Errorf("target FOV = %v, want 62.5", target.FOV)
	}

	c.Update(0)
	if cam.Z != 0 {
		t.Errorf("Update(0) moved the camera to %v", cam.Z)
	}

	c.Update(1.0 / 60)
	if cam.Z <= 0 || cam.Z >= target.Z {
		t.Errorf("after one frame z = %v, want in (0, %v)", cam.Z, target.Z)
	}
	for i := 0; i < 1200; i++ {
		c.Update(1.0 / 60)
	}
	if !approxEqual(cam.Z, target.Z, 1e-6) || !approxEqual(cam.FOV(), target.FOV, 1e-6) {
		t.Errorf("settled pose = %+v, want %+v", cam.Pose(), target)
	}
}

func TestControllerCallbacks(t *testing.T) {
	c, clock := newTestController()
	tl := c.timeline

	var sections []string
	var pauses []string
	c.onSection = func(prev, next string, _ ScrollState) {
		sections = append(sections, prev+">"+next)
	}
	c.onPause = func(zone int, entered bool, _ ScrollState) {
		if entered {
			pauses = append(pauses, "enter")
		} else {
			pauses = append(pauses, "exit")
		}
	}

	for _, z := range []float64{250, 750, 1250} {
		clock.advance(100 * time.Millisecond)
		c.OnScroll(metricsAt(tl.RawProgressForDepth(z)))
	}
	if len(sections) != 2 || sections[0] != "portal>eventX" || sections[1] != "eventX>vortex" {
		t.Errorf("sections = %v", sections)
	}
	if len(pauses) != 2 || pauses[0] != "enter" || pauses[1] != "exit" {
		t.Errorf("pauses = %v", pauses)
	}
	if zone, phase := c.PauseStatus(); zone != -1 || phase != PauseNone {
		t.Errorf("PauseStatus() = %d, %v, want -1, none", zone, phase)
	}
}

func TestControllerRollTakesShortWayAfterSpin(t *testing.T) {
	c, clock := newTestController()
	tl := c.timeline

	clock.advance(100 * time.Millisecond)
	c.OnScroll(metricsAt(tl.RawProgressForDepth(6499)))
	c.roll.Snap()
	if !approxEqual(c.roll.Current, 2*math.Pi, 0.01) {
		t.Fatalf("roll near end of spin = %v, want about 2π", c.roll.Current)
	}

	clock.advance(100 * time.Millisecond)
	c.OnScroll(metricsAt(tl.RawProgressForDepth(6600)))
	if c.roll.Target != 0 {
		t.Fatalf("roll target past spin = %v, want 0", c.roll.Target)
	}
	if math.Abs(c.roll.Current) > 0.01 {
		t.Errorf("roll after leaving spin = %v, want within 0.01 of 0", c.roll.Current)
	}
	for range 60 {
		c.Update(1.0 / 60)
		if math.Abs(c.Camera().Roll) > 0.01 {
			t.Fatalf("camera roll = %v, unwinding a full turn", c.Camera().Roll)
		}
	}
}

func TestControllerDispose(t *testing.T) {
	c, clock := newTestController()
	c.Dispose()
	clock.advance(time.Second)
	c.OnScroll(metricsAt(0.5))
	if _, err := c.State().State(); !errors.Is(err, ErrDisposed) {
		t.Errorf("State() after Dispose = %v, want ErrDisposed", err)
	}
	if c.State().Snapshot() != (ScrollState{}) {
		t.Errorf("Snapshot() after Dispose = %+v", c.State().Snapshot())
	}
}
