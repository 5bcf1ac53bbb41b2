package cinescroll

// handlerKind identifies which listener list a CallbackHandle belongs to.
type handlerKind uint8

const (
	handlerFrame handlerKind = iota
	handlerScroll
	handlerSection
)

// SectionChange describes a transition between two sections.
type SectionChange struct {
	Prev  string
	Next  string
	State ScrollState
}

type frameHandler struct {
	id uint32
	fn func(dt float64)
}

type scrollHandler struct {
	id uint32
	fn func(ScrollState)
}

type sectionHandler struct {
	id uint32
	fn func(SectionChange)
}

// --- Handler registry ---

type handlerRegistry struct {
	frame   []frameHandler
	scroll  []scrollHandler
	section []sectionHandler
	nextID  uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id   uint32
	reg  *handlerRegistry
	kind handlerKind
}

// Remove unregisters this callback so it no longer fires. Removing twice,
// or removing after the scene was disposed, is a no-op.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.kind {
	case handlerFrame:
		h.reg.frame = removeHandler(h.reg.frame, h.id, func(f frameHandler) uint32 { return f.id })
	case handlerScroll:
		h.reg.scroll = removeHandler(h.reg.scroll, h.id, func(f scrollHandler) uint32 { return f.id })
	case handlerSection:
		h.reg.section = removeHandler(h.reg.section, h.id, func(f sectionHandler) uint32 { return f.id })
	}
}

func removeHandler[T any](s []T, id uint32, idOf func(T) uint32) []T {
	for i := range s {
		if idOf(s[i]) == id {
			var zero T
			copy(s[i:], s[i+1:])
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) next() uint32 {
	r.nextID++
	return r.nextID
}

// count returns the number of registered listeners of every kind.
func (r *handlerRegistry) count() int {
	return len(r.frame) + len(r.scroll) + len(r.section)
}

// clear drops every listener.
func (r *handlerRegistry) clear() {
	clear(r.frame)
	clear(r.scroll)
	clear(r.section)
	r.frame = r.frame[:0]
	r.scroll = r.scroll[:0]
	r.section = r.section[:0]
}

// OnFrame registers fn to run at the end of every Update with the frame's
// elapsed seconds.
func (s *Scene) OnFrame(fn func(dt float64)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.frame = append(s.handlers.frame, frameHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerFrame}
}

// OnScroll registers fn to run after every scroll event with the new state.
func (s *Scene) OnScroll(fn func(ScrollState)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.scroll = append(s.handlers.scroll, scrollHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerScroll}
}

// OnSectionChange registers fn to run when the resolved section changes.
func (s *Scene) OnSectionChange(fn func(SectionChange)) CallbackHandle {
	id := s.handlers.next()
	s.handlers.section = append(s.handlers.section, sectionHandler{id: id, fn: fn})
	return CallbackHandle{id: id, reg: &s.handlers, kind: handlerSection}
}

// ListenerCount returns the number of registered scene listeners.
func (s *Scene) ListenerCount() int {
	return s.handlers.count()
}

// Handlers run over a copy so a callback may remove itself.

func (s *Scene) fireFrame(dt float64) {
	for _, h := range append([]frameHandler(nil), s.handlers.frame...) {
		h.fn(dt)
	}
}

func (s *Scene) fireScroll(st ScrollState) {
	for _, h := range append([]scrollHandler(nil), s.handlers.scroll...) {
		h.fn(st)
	}
}

func (s *Scene) fireSection(c SectionChange) {
	for _, h := range append([]sectionHandler(nil), s.handlers.section...) {
		h.fn(c)
	}
}
