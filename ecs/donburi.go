package ecs

import (
	"github.com/phanxgames/cinescroll"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SectionEntered is published when the camera crosses into a new section.
type SectionEntered struct {
	Section string
	Prev    string
	CameraZ float64
	Frame   uint64
}

// PauseChanged is published when raw progress enters or leaves a pause
// zone band.
type PauseChanged struct {
	Zone     int
	Entered  bool
	Section  string
	Progress float64
	Frame    uint64
}

var (
	// TimelineEventType carries every forwarded timeline event unchanged.
	TimelineEventType = events.NewEventType[cinescroll.TimelineEvent]()
	// SectionEventType carries section transitions only.
	SectionEventType = events.NewEventType[SectionEntered]()
	// PauseEventType carries pause zone transitions only.
	PauseEventType = events.NewEventType[PauseChanged]()
)

type donburiStore struct {
	world donburi.World
	// mask has one bit per cinescroll.EventType; zero forwards every type.
	mask uint8
}

// NewDonburiStore creates an EventStore backed by a Donburi world. Every
// forwarded event is published to TimelineEventType and to the typed
// SectionEventType or PauseEventType. When only is non-empty, events of
// other types are dropped.
func NewDonburiStore(world donburi.World, only ...cinescroll.EventType) cinescroll.EventStore {
	s := &donburiStore{world: world}
	for _, t := range only {
		s.mask |= 1 << t
	}
	return s
}

func (s *donburiStore) forwards(t cinescroll.EventType) bool {
	return s.mask == 0 || s.mask&(1<<t) != 0
}

func (s *donburiStore) EmitEvent(event cinescroll.TimelineEvent) {
	if !s.forwards(event.Type) {
		return
	}
	TimelineEventType.Publish(s.world, event)
	switch event.Type {
	case cinescroll.EventSectionEnter:
		SectionEventType.Publish(s.world, SectionEntered{
			Section: event.Section,
			Prev:    event.PrevSection,
			CameraZ: event.CameraZ,
			Frame:   event.Frame,
		})
	case cinescroll.EventPauseEnter, cinescroll.EventPauseExit:
		PauseEventType.Publish(s.world, PauseChanged{
			Zone:     event.Zone,
			Entered:  event.Type == cinescroll.EventPauseEnter,
			Section:  event.Section,
			Progress: event.Progress,
			Frame:    event.Frame,
		})
	}
}
