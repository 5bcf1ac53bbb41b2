// Package cinescroll is a scroll-driven camera timeline for cinematic,
// single-page experiences.
//
// A cinescroll experience maps one scroll offset onto a 3D camera travelling
// along a depth axis. The camera passes through a sequence of named sections,
// slows down near configured pause zones, and changes field of view, height
// and roll inside parameter windows. Decorative layers read the camera depth
// every frame and fade in and out as the camera approaches them.
//
// The package itself is headless: it owns the timeline math, the damped
// camera and the per-layer visibility state, and never imports a rendering
// engine. The [Ebitengine] front end lives in cinescroll/stage and the
// [Donburi] event bridge in cinescroll/ecs.
//
// # Quick start
//
//	tl := cinescroll.DefaultTimeline()
//	scene, err := cinescroll.NewScene(tl, cinescroll.SceneConfig{ViewportHeight: 720})
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer scene.Dispose()
//
//	portal := scene.AddLayer("portal", 250, 600)
//	portal.OnVisibleUpdate = func(dt, opacity float64) { ... }
//
//	// once per frame:
//	scene.Scroller().ScrollBy(wheelDelta)
//	scene.Update(dt)
//	snap := scene.State().Snapshot()
//
// # Timeline
//
// A [Timeline] holds the total depth range, the ordered section breakpoint
// table, the pause zones and the parameter windows. Timelines are validated
// up front; overlapping pause zones or windows are rejected by
// [Timeline.Validate] instead of producing inconsistent camera motion.
// Timelines can be loaded from YAML with [LoadTimelineFile].
//
// # Frame model
//
// [Scene.Update] is the single scheduler tick. Scroll changes update the
// camera targets immediately; the per-frame tick damps the camera toward
// them with [SmoothDamp] and then updates every layer's [SceneVisibility].
// Layers whose damped opacity falls below their threshold skip their
// per-frame payload entirely.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package cinescroll
