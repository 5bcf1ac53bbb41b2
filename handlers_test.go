package cinescroll

import "testing"

func TestOnFrame(t *testing.T) {
	s := newTestScene(t)
	var got []float64
	h := s.OnFrame(func(dt float64) { got = append(got, dt) })
	s.Update(0.5)
	s.Update(0.25)
	if len(got) != 2 || got[0] != 0.5 || got[1] != 0.25 {
		t.Errorf("frame dts = %v, want [0.5 0.25]", got)
	}
	h.Remove()
	s.Update(0.1)
	if len(got) != 2 {
		t.Errorf("removed handler still fired: %v", got)
	}
	h.Remove()
}

func TestOnScrollReceivesState(t *testing.T) {
	s := newTestScene(t)
	var states []ScrollState
	s.OnScroll(func(st ScrollState) { states = append(states, st) })
	m := s.Scroller().Metrics()
	s.Scroller().SetOffset(m.Scrollable() / 2)
	if len(states) != 1 {
		t.Fatalf("scroll handler calls = %d, want 1", len(states))
	}
	if states[0] != s.State().Snapshot() {
		t.Errorf("handler state %+v != snapshot %+v", states[0], s.State().Snapshot())
	}
}

func TestHandlerRemoveDuringDispatch(t *testing.T) {
	s := newTestScene(t)
	calls := 0
	var h CallbackHandle
	h = s.OnFrame(func(float64) {
		calls++
		h.Remove()
	})
	other := 0
	s.OnFrame(func(float64) { other++ })

	s.Update(1.0 / 60)
	s.Update(1.0 / 60)
	if calls != 1 {
		t.Errorf("self-removing handler ran %d times, want 1", calls)
	}
	if other != 2 {
		t.Errorf("other handler ran %d times, want 2", other)
	}
}

func TestRemoveKeepsOtherKinds(t *testing.T) {
	s := newTestScene(t)
	a := s.OnFrame(func(float64) {})
	s.OnScroll(func(ScrollState) {})
	c := s.OnSectionChange(func(SectionChange) {})
	if s.ListenerCount() != 3 {
		t.Fatalf("ListenerCount() = %d, want 3", s.ListenerCount())
	}
	a.Remove()
	c.Remove()
	if s.ListenerCount() != 1 || len(s.handlers.scroll) != 1 {
		t.Errorf("after removing frame and section: %d listeners", s.ListenerCount())
	}
}

func TestZeroCallbackHandle(t *testing.T) {
	var h CallbackHandle
	h.Remove() // must not panic
}
