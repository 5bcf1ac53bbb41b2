package cinescroll

import (
	"fmt"
	"time"
)

// EventStore is the interface for optional ECS integration.
// When set on a Scene, timeline events are forwarded to it.
type EventStore interface {
	EmitEvent(event TimelineEvent)
}

// TimelineEvent carries a timeline transition for the ECS bridge.
type TimelineEvent struct {
	Type EventType
	// Section is the section entered (EventSectionEnter) or the section the
	// camera is in when a pause zone is entered or left.
	Section string
	// PrevSection is the section left (EventSectionEnter only).
	PrevSection string
	// Zone is the pause zone index (EventPauseEnter, EventPauseExit only).
	Zone     int
	Progress float64
	CameraZ  float64
	Velocity float64
	Frame    uint64
}

// Layer is one decorative scene on the timeline: a visibility driver plus
// an optional particle field that integrates only while the layer is
// visible. Payload is free for the drawing front end.
type Layer struct {
	Name       string
	Depth      float64
	Tint       Color
	Visibility *SceneVisibility
	Particles  *ParticleField
	Payload    any
}

// Opacity returns the layer's damped opacity.
func (l *Layer) Opacity() float64 {
	return l.Visibility.Opacity()
}

// Invisible reports whether the layer currently skips its per-frame work.
func (l *Layer) Invisible() bool {
	return l.Visibility.Invisible()
}

// SceneConfig sizes the scene's viewport and virtual scroll document.
type SceneConfig struct {
	ViewportWidth  float64
	ViewportHeight float64
	// ScrollHeight is the height of the virtual document. Zero selects
	// DefaultScrollPages viewport heights.
	ScrollHeight float64
	// Clock supplies wall-clock time for scroll velocity. Nil uses time.Now.
	Clock Clock
}

// DefaultScrollPages is the default document height in viewport heights.
const DefaultScrollPages = 15

// Scene is the top-level object: it owns the timeline, the virtual scroll
// container, the camera and its controller, the decorative layers and the
// listener registry. Update is the single per-frame tick.
type Scene struct {
	timeline   *Timeline
	scroller   *Scroller
	camera     *Camera
	controller *CameraController
	layers     []*Layer

	handlers handlerRegistry
	store    EventStore
	debug    bool
	disposed bool
	frame    uint64

	injectQueue []syntheticScrollEvent
	testRunner  *TestRunner
	screenshot  func(label string)

	stats frameStats
}

// NewScene validates tl, creates the camera and scroll container and mounts
// the controller on the initial scroll position.
func NewScene(tl *Timeline, cfg SceneConfig) (*Scene, error) {
	if tl == nil {
		return nil, fmt.Errorf("%w: nil timeline", ErrInvalidTimeline)
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = 720
	}
	if cfg.ViewportWidth <= 0 {
		cfg.ViewportWidth = cfg.ViewportHeight * 16 / 9
	}
	if cfg.ScrollHeight <= 0 {
		cfg.ScrollHeight = cfg.ViewportHeight * DefaultScrollPages
	}

	tl = tl.Clone()
	cam := NewCamera(Rect{Width: cfg.ViewportWidth, Height: cfg.ViewportHeight}, tl.Baselines.FOV)
	s := &Scene{
		timeline:   tl,
		scroller:   NewScroller(cfg.ScrollHeight, cfg.ViewportHeight),
		camera:     cam,
		controller: NewCameraController(tl, cam, cfg.Clock),
	}
	s.controller.onSection = s.sectionChanged
	s.controller.onPause = s.pauseChanged
	s.scroller.onScroll = s.handleScroll

	m := s.scroller.Metrics()
	s.controller.Mount(&m)
	return s, nil
}

// Timeline returns the scene's timeline. It MUST NOT be mutated.
func (s *Scene) Timeline() *Timeline {
	return s.timeline
}

// Scroller returns the virtual scroll container.
func (s *Scene) Scroller() *Scroller {
	return s.scroller
}

// Camera returns the scene camera.
func (s *Scene) Camera() *Camera {
	return s.camera
}

// Controller returns the camera controller.
func (s *Scene) Controller() *CameraController {
	return s.controller
}

// State returns the read-only scroll state.
func (s *Scene) State() StateReader {
	return s.controller.State()
}

// Frame returns the number of completed Update calls.
func (s *Scene) Frame() uint64 {
	return s.frame
}

// Disposed reports whether Dispose has been called.
func (s *Scene) Disposed() bool {
	return s.disposed
}

// SetEventStore sets the optional ECS bridge.
func (s *Scene) SetEventStore(store EventStore) {
	s.store = store
}

// SetScreenshotFunc installs the front end's screenshot hook used by the
// test runner's screenshot action.
func (s *Scene) SetScreenshotFunc(fn func(label string)) {
	s.screenshot = fn
}

// SetDebugMode enables or disables per-frame stats logging to stderr.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// Resize updates the viewport size. The raw scroll progress is kept.
func (s *Scene) Resize(width, height float64) {
	if s.disposed || width <= 0 || height <= 0 {
		return
	}
	vp := s.camera.Viewport
	if vp.Width == width && vp.Height == height {
		return
	}
	m := s.scroller.Metrics()
	pages := m.ScrollHeight / m.ViewportHeight
	s.camera.SetViewport(Rect{Width: width, Height: height})
	s.scroller.Resize(pages*height, height)
}

// AddLayer adds a decorative layer centered at depth that fades out over
// fadeRange.
func (s *Scene) AddLayer(name string, depth, fadeRange float64) *Layer {
	l := &Layer{
		Name:       name,
		Depth:      depth,
		Tint:       ColorWhite,
		Visibility: NewSceneVisibility(s.camera, depth, fadeRange),
	}
	s.layers = append(s.layers, l)
	return l
}

// AddParticleLayer adds a layer whose particle field integrates only while
// the layer is visible.
func (s *Scene) AddParticleLayer(name string, depth, fadeRange float64, cfg ParticleConfig) *Layer {
	l := s.AddLayer(name, depth, fadeRange)
	l.Particles = NewParticleField(depth, cfg)
	field := l.Particles
	l.Visibility.OnVisibleUpdate = func(dt, _ float64) {
		field.Update(dt)
	}
	return l
}

// RemoveLayer detaches a layer from the scene.
func (s *Scene) RemoveLayer(l *Layer) {
	for i, c := range s.layers {
		if c == l {
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			l.Visibility.detach()
			return
		}
	}
}

// Layers returns the scene's layers. The returned slice MUST NOT be mutated.
func (s *Scene) Layers() []*Layer {
	return s.layers
}

// Update runs one frame: scripted input, scroll animation, camera damping,
// layer visibility and frame listeners, in that order. dt is the elapsed
// time since the previous frame in seconds.
func (s *Scene) Update(dt float64) {
	if s.disposed {
		return
	}
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInjectedScroll()
	s.scroller.Update(float32(dt))
	s.controller.Update(dt)

	visible := 0
	for _, l := range s.layers {
		l.Visibility.Update(dt)
		if !l.Visibility.Invisible() {
			visible++
		}
	}
	s.fireFrame(dt)
	s.frame++

	if s.debug {
		s.stats = frameStats{
			frame:        s.frame,
			state:        s.controller.store.Snapshot(),
			camera:       s.camera.Pose(),
			visible:      visible,
			layers:       len(s.layers),
			listeners:    s.handlers.count(),
			updateTime:   time.Since(t0),
			pauseZone:    s.controller.pauseZone,
			pausePhase:   s.controller.pausePhase,
			scrollOffset: s.scroller.Offset(),
		}
		s.debugLog(s.stats)
	}
}

// Dispose releases every listener, detaches the scroll state and the
// layers. Update and scroll events are no-ops afterwards.
func (s *Scene) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.handlers.clear()
	s.scroller.onScroll = nil
	s.controller.Dispose()
	for _, l := range s.layers {
		l.Visibility.detach()
	}
	s.layers = nil
	s.injectQueue = nil
	s.testRunner = nil
	s.store = nil
}

// handleScroll is the scroller's scroll hook.
func (s *Scene) handleScroll(m *ScrollMetrics) {
	if s.disposed {
		return
	}
	s.controller.OnScroll(m)
	s.fireScroll(s.controller.store.Snapshot())
}

func (s *Scene) sectionChanged(prev, next string, st ScrollState) {
	if s.debug {
		s.debugSection(prev, next, st)
	}
	s.fireSection(SectionChange{Prev: prev, Next: next, State: st})
	s.emit(TimelineEvent{Type: EventSectionEnter, Section: next, PrevSection: prev, Zone: -1}, st)
}

func (s *Scene) pauseChanged(zone int, entered bool, st ScrollState) {
	typ := EventPauseExit
	if entered {
		typ = EventPauseEnter
	}
	s.emit(TimelineEvent{Type: typ, Section: st.Section, Zone: zone}, st)
}

func (s *Scene) emit(ev TimelineEvent, st ScrollState) {
	if s.store == nil {
		return
	}
	ev.Progress = st.Progress
	ev.CameraZ = st.CameraZ
	ev.Velocity = st.Velocity
	ev.Frame = s.frame
	s.store.EmitEvent(ev)
}
