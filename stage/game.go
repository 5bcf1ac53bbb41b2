package stage

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/cinescroll"
)

// RunConfig configures the window and the input mapping.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// Background fills the screen before layers are drawn.
	Background color.Color
	// WheelStep is the scroll distance in pixels per wheel notch.
	WheelStep float64
	// ShowFPS draws the FPS/TPS overlay in the top-right corner.
	ShowFPS bool
	// ShowHUD draws the scroll state in the top-left corner.
	ShowHUD bool
	// Debug enables the scene's per-frame stats logging.
	Debug bool
	// ScreenshotDir is where screenshots are written.
	ScreenshotDir string
	// TestRunner, when set, is attached to the scene before the first frame.
	TestRunner *cinescroll.TestRunner
	// ExitWhenDone ends the game loop once TestRunner has run every step.
	ExitWhenDone bool
}

const (
	defaultWidth         = 1280
	defaultHeight        = 720
	defaultWheelStep     = 120
	defaultScreenshotDir = "screenshots"
)

func (c RunConfig) withDefaults() RunConfig {
	if c.Width <= 0 {
		c.Width = defaultWidth
	}
	if c.Height <= 0 {
		c.Height = defaultHeight
	}
	if c.WheelStep <= 0 {
		c.WheelStep = defaultWheelStep
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = defaultScreenshotDir
	}
	if c.Background == nil {
		c.Background = color.RGBA{0x08, 0x06, 0x12, 0xff}
	}
	if c.Title == "" {
		c.Title = "cinescroll"
	}
	return c
}

// Game adapts a Scene to ebiten.Game.
type Game struct {
	scene *cinescroll.Scene
	cfg   RunConfig

	touch           touchDrag
	screenshotQueue []string
	fps             *fpsOverlay
}

// NewGame wraps scene. The scene's screenshot hook is pointed at the game.
func NewGame(scene *cinescroll.Scene, cfg RunConfig) *Game {
	cfg = cfg.withDefaults()
	g := &Game{scene: scene, cfg: cfg}
	scene.SetScreenshotFunc(g.Screenshot)
	scene.SetDebugMode(cfg.Debug)
	if cfg.TestRunner != nil {
		scene.SetTestRunner(cfg.TestRunner)
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	return g
}

// Run opens a window and runs scene until the window is closed, the scene
// is disposed, or an attached test runner finishes with ExitWhenDone set.
func Run(scene *cinescroll.Scene, cfg RunConfig) error {
	g := NewGame(scene, cfg)
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %s: %w", g.cfg.Title, err)
	}
	return nil
}

// Scene returns the wrapped scene.
func (g *Game) Scene() *cinescroll.Scene {
	return g.scene
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.scene.Disposed() {
		return ebiten.Termination
	}
	g.processInput()
	dt := 1.0 / float64(ebiten.TPS())
	g.scene.Update(dt)
	if g.fps != nil {
		g.fps.update(dt)
	}
	if g.cfg.ExitWhenDone && g.cfg.TestRunner != nil && g.cfg.TestRunner.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.Background)
	drawLayers(screen, g.scene)
	if g.cfg.ShowHUD {
		ebitenutil.DebugPrint(screen, hudText(g.scene))
	}
	if g.fps != nil {
		g.fps.draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The scene's viewport follows the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// hudText formats the scroll state for the debug HUD.
func hudText(s *cinescroll.Scene) string {
	st := s.State().Snapshot()
	pose := s.Camera().Pose()
	text := fmt.Sprintf("%s\nprogress %.3f  z %.0f  v %+.3f/s\nfov %.1f  y %.0f  roll %.2f",
		st.Section, st.Progress, st.CameraZ, st.Velocity, pose.FOV, pose.Y, pose.Roll)
	if zone, phase := s.Controller().PauseStatus(); zone >= 0 {
		text += fmt.Sprintf("\npause %d %s", zone, phase)
	}
	if sum := s.DebugSummary(); sum != "" {
		text += "\n" + sum
	}
	return text
}
