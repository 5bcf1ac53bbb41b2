// Package stage runs a cinescroll Scene inside an Ebitengine window.
//
// The stage owns everything that needs a graphics context: it reads the
// mouse wheel, keyboard and touch input and feeds it to the scene's
// scroller, ticks the scene once per game update, projects every visible
// layer through the scene camera and draws it with [vector], and writes PNG
// screenshots on request.
//
// Quick start:
//
//	scene, err := cinescroll.NewScene(cinescroll.DefaultTimeline(), cinescroll.SceneConfig{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	scene.AddLayer("portal", 250, 600)
//	if err := stage.Run(scene, stage.RunConfig{Title: "festival"}); err != nil {
//		log.Fatal(err)
//	}
//
// # Input
//
// The wheel scrolls by [RunConfig].WheelStep pixels per notch (four times
// that with Shift held). PageUp, PageDown and Space move one viewport;
// the arrow keys move a fraction of one. Home and End jump to the ends of
// the document, the digit keys 1-9 and 0 jump to the first ten sections,
// F12 queues a screenshot and F3 toggles debug stats. A one-finger drag
// scrolls on touch screens.
//
// [vector]: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2/vector
package stage
