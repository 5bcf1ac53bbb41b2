// Package ecs provides ECS adapters for cinescroll's timeline events.
//
// The primary adapter is [NewDonburiStore], which bridges timeline events
// (section enter, pause zone enter and exit) into a [Donburi] world as typed
// events. Subscribe to [TimelineEventType] in your ECS systems to receive all
// of them, or to [SectionEventType] and [PauseEventType] for typed payloads.
// Passing event types to NewDonburiStore forwards only those types.
//
// Usage:
//
//	store := ecs.NewDonburiStore(world, cinescroll.EventSectionEnter)
//	scene.SetEventStore(store)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
