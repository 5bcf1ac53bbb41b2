package cinescroll

// syntheticScrollEvent is a queued scroll change. Either a relative delta
// or an absolute offset.
type syntheticScrollEvent struct {
	delta    float64
	offset   float64
	absolute bool
}

// InjectScroll queues a wheel-style scroll by delta pixels. The event is
// consumed on the next Update.
func (s *Scene) InjectScroll(delta float64) {
	s.injectQueue = append(s.injectQueue, syntheticScrollEvent{delta: delta})
}

// InjectScrollTo queues a linear scroll from the current offset (as of the
// first consumed event) to offset, spread over frames frames. Minimum
// frames is 1.
func (s *Scene) InjectScrollTo(offset float64, frames int) {
	if frames < 1 {
		frames = 1
	}
	from := s.scroller.Offset()
	if len(s.injectQueue) > 0 {
		from = s.projectedOffset()
	}
	for i := 1; i <= frames; i++ {
		t := float64(i) / float64(frames)
		s.injectQueue = append(s.injectQueue, syntheticScrollEvent{
			offset:   lerp(from, offset, t),
			absolute: true,
		})
	}
}

// InjectScrollToProgress is InjectScrollTo with a raw progress in [0, 1].
func (s *Scene) InjectScrollToProgress(raw float64, frames int) {
	m := s.scroller.Metrics()
	s.InjectScrollTo(clamp01(raw)*m.Scrollable(), frames)
}

// PendingInjections returns the number of queued synthetic scroll events.
func (s *Scene) PendingInjections() int {
	return len(s.injectQueue)
}

// projectedOffset returns the offset the scroller will have once the queue
// drains, ignoring clamping of intermediate steps.
func (s *Scene) projectedOffset() float64 {
	off := s.scroller.Offset()
	for _, ev := range s.injectQueue {
		if ev.absolute {
			off = ev.offset
		} else {
			off += ev.delta
		}
	}
	return off
}

// processInjectedScroll pops one event from the inject queue and applies it
// to the scroller. Returns true if an event was consumed.
func (s *Scene) processInjectedScroll() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	if evt.absolute {
		s.scroller.SetOffset(evt.offset)
	} else {
		s.scroller.ScrollBy(evt.delta)
	}
	return true
}
