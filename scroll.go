package cinescroll

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ScrollMetrics describes a scroll container: how far it is scrolled, the
// total height of its content and the height of the viewport showing it.
type ScrollMetrics struct {
	Offset         float64
	ScrollHeight   float64
	ViewportHeight float64
}

// Scrollable returns the scrollable distance, never negative.
func (m *ScrollMetrics) Scrollable() float64 {
	if m == nil {
		return 0
	}
	return math.Max(0, m.ScrollHeight-m.ViewportHeight)
}

// RawProgress returns the scroll position as a fraction of the scrollable
// distance, clamped to [0, 1]. A missing container or one that cannot scroll
// reports 0.
func (m *ScrollMetrics) RawProgress() float64 {
	d := m.Scrollable()
	if d <= 0 || math.IsNaN(m.Offset) {
		return 0
	}
	return clamp01(m.Offset / d)
}

// scrollAnim holds an active scroll-to tween.
type scrollAnim struct {
	tween *gween.Tween
}

// Scroller is a virtual scroll container: a tall document of ScrollHeight
// viewed through a viewport. Every change of the offset is reported to the
// onScroll hook, the same way a browser fires scroll events.
type Scroller struct {
	metrics ScrollMetrics
	anim    *scrollAnim

	onScroll func(*ScrollMetrics)
}

// NewScroller creates a scroller at offset 0.
func NewScroller(scrollHeight, viewportHeight float64) *Scroller {
	return &Scroller{metrics: ScrollMetrics{
		ScrollHeight:   scrollHeight,
		ViewportHeight: viewportHeight,
	}}
}

// Metrics returns the current container metrics.
func (s *Scroller) Metrics() ScrollMetrics {
	return s.metrics
}

// Offset returns the current scroll offset.
func (s *Scroller) Offset() float64 {
	return s.metrics.Offset
}

// SetOffset jumps to offset, clamped to the scrollable range, and cancels
// any running scroll animation.
func (s *Scroller) SetOffset(offset float64) {
	s.anim = nil
	s.setOffset(offset)
}

// ScrollBy moves the offset by delta pixels. Positive delta scrolls down.
func (s *Scroller) ScrollBy(delta float64) {
	if delta == 0 {
		return
	}
	s.SetOffset(s.metrics.Offset + delta)
}

// Resize updates the viewport and content heights, keeping the current
// raw progress, and fires a scroll notification.
func (s *Scroller) Resize(scrollHeight, viewportHeight float64) {
	p := s.metrics.RawProgress()
	s.metrics.ScrollHeight = scrollHeight
	s.metrics.ViewportHeight = viewportHeight
	s.metrics.Offset = s.clampOffset(p * s.metrics.Scrollable())
	s.notify()
}

// ScrollTo animates the offset to target over duration seconds.
func (s *Scroller) ScrollTo(target float64, duration float32, easeFn ease.TweenFunc) {
	target = s.clampOffset(target)
	if duration <= 0 {
		s.SetOffset(target)
		return
	}
	if easeFn == nil {
		easeFn = ease.InOutCubic
	}
	s.anim = &scrollAnim{
		tween: gween.New(float32(s.metrics.Offset), float32(target), duration, easeFn),
	}
}

// ScrollToProgress animates to a raw progress in [0, 1].
func (s *Scroller) ScrollToProgress(raw float64, duration float32, easeFn ease.TweenFunc) {
	s.ScrollTo(clamp01(raw)*s.metrics.Scrollable(), duration, easeFn)
}

// ScrollToSection animates to the raw progress at which the camera reaches
// the center of the named section. It reports false for unknown sections.
func (s *Scroller) ScrollToSection(tl *Timeline, name string, duration float32, easeFn ease.TweenFunc) bool {
	z, ok := tl.SectionCenter(name)
	if !ok {
		return false
	}
	s.ScrollToProgress(tl.RawProgressForDepth(z), duration, easeFn)
	return true
}

// Animating reports whether a scroll-to animation is running.
func (s *Scroller) Animating() bool {
	return s.anim != nil
}

// Update advances a running scroll-to animation by dt seconds.
func (s *Scroller) Update(dt float32) {
	if s.anim == nil {
		return
	}
	val, done := s.anim.tween.Update(dt)
	if done {
		s.anim = nil
	}
	s.setOffset(float64(val))
}

func (s *Scroller) clampOffset(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return math.Max(0, math.Min(offset, s.metrics.Scrollable()))
}

// setOffset stores the clamped offset and notifies only when it changed.
func (s *Scroller) setOffset(offset float64) {
	offset = s.clampOffset(offset)
	if offset == s.metrics.Offset {
		return
	}
	s.metrics.Offset = offset
	s.notify()
}

func (s *Scroller) notify() {
	if s.onScroll != nil {
		m := s.metrics
		s.onScroll(&m)
	}
}
