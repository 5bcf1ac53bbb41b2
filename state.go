package cinescroll

// ScrollState is a snapshot of the scroll timeline.
type ScrollState struct {
	// Progress is the adjusted scroll progress in [0, 1], after pause zones.
	Progress float64
	// CameraZ is Progress * TotalDepth, the undamped camera depth target.
	CameraZ float64
	// Section is the name of the section containing CameraZ.
	Section string
	// Velocity is the change of Progress per second between the last two
	// scroll events.
	Velocity float64
}

// StateReader gives read-only access to the scroll state. Consumers poll it
// from their own per-frame callbacks.
type StateReader interface {
	Snapshot() ScrollState
	State() (ScrollState, error)
}

// stateStore holds the single scroll state of a scene. Only the camera
// controller writes it.
type stateStore struct {
	state    ScrollState
	attached bool
}

// init attaches the store at mount with a zero state.
func (s *stateStore) init() {
	s.state = ScrollState{}
	s.attached = true
}

// dispose detaches the store at unmount.
func (s *stateStore) dispose() {
	s.state = ScrollState{}
	s.attached = false
}

func (s *stateStore) write(st ScrollState) {
	if !s.attached {
		return
	}
	s.state = st
}

// Snapshot returns the current state, or the zero state once detached.
func (s *stateStore) Snapshot() ScrollState {
	return s.state
}

// State returns the current state, or ErrDisposed once detached.
func (s *stateStore) State() (ScrollState, error) {
	if !s.attached {
		return ScrollState{}, ErrDisposed
	}
	return s.state, nil
}
