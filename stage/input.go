package stage

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween/ease"
)

// commandKind identifies what a key press does to the scroller.
type commandKind uint8

const (
	cmdScrollBy     commandKind = iota // move by amount viewport heights
	cmdHome                            // animate to the top
	cmdEnd                             // animate to the bottom
	cmdSection                         // animate to the center of section index
	cmdScreenshot                      // queue a screenshot
	cmdToggleDebug                     // flip the scene's debug mode
)

type command struct {
	kind    commandKind
	amount  float64
	section int
}

const (
	arrowStep       = 0.15 // viewport heights per arrow key press
	keyScrollTime   = 0.35 // seconds for page and arrow scrolls
	jumpScrollTime  = 1.2  // seconds for home, end and section jumps
	shiftMultiplier = 4
)

// keyBindings maps just-pressed keys to commands, checked in order.
var keyBindings = []struct {
	key ebiten.Key
	cmd command
}{
	{ebiten.KeyPageDown, command{kind: cmdScrollBy, amount: 1}},
	{ebiten.KeySpace, command{kind: cmdScrollBy, amount: 1}},
	{ebiten.KeyPageUp, command{kind: cmdScrollBy, amount: -1}},
	{ebiten.KeyArrowDown, command{kind: cmdScrollBy, amount: arrowStep}},
	{ebiten.KeyArrowUp, command{kind: cmdScrollBy, amount: -arrowStep}},
	{ebiten.KeyHome, command{kind: cmdHome}},
	{ebiten.KeyEnd, command{kind: cmdEnd}},
	{ebiten.KeyDigit1, command{kind: cmdSection, section: 0}},
	{ebiten.KeyDigit2, command{kind: cmdSection, section: 1}},
	{ebiten.KeyDigit3, command{kind: cmdSection, section: 2}},
	{ebiten.KeyDigit4, command{kind: cmdSection, section: 3}},
	{ebiten.KeyDigit5, command{kind: cmdSection, section: 4}},
	{ebiten.KeyDigit6, command{kind: cmdSection, section: 5}},
	{ebiten.KeyDigit7, command{kind: cmdSection, section: 6}},
	{ebiten.KeyDigit8, command{kind: cmdSection, section: 7}},
	{ebiten.KeyDigit9, command{kind: cmdSection, section: 8}},
	{ebiten.KeyDigit0, command{kind: cmdSection, section: 9}},
	{ebiten.KeyF12, command{kind: cmdScreenshot}},
	{ebiten.KeyF3, command{kind: cmdToggleDebug}},
}

// commandForKey returns the command bound to key.
func commandForKey(key ebiten.Key) (command, bool) {
	for _, b := range keyBindings {
		if b.key == key {
			return b.cmd, true
		}
	}
	return command{}, false
}

// shiftPressed reads the current Shift state.
func shiftPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftLeft) ||
		ebiten.IsKeyPressed(ebiten.KeyShiftRight)
}

// processInput is called from Game.Update before the scene ticks.
func (g *Game) processInput() {
	shift := shiftPressed()

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.wheel(dy, shift)
	}
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.apply(b.cmd, shift)
		}
	}

	ids := ebiten.AppendTouchIDs(g.touch.ids[:0])
	g.touch.ids = ids
	if d := g.touch.update(ids, ebiten.TouchPosition); d != 0 {
		g.scene.Scroller().ScrollBy(d)
	}
}

// wheel scrolls by a wheel delta. Ebitengine reports positive dy when the
// wheel moves away from the user, which scrolls up.
func (g *Game) wheel(dy float64, shift bool) {
	step := g.cfg.WheelStep
	if shift {
		step *= shiftMultiplier
	}
	g.scene.Scroller().ScrollBy(-dy * step)
}

// apply runs a key command against the scene's scroller.
func (g *Game) apply(cmd command, shift bool) {
	sc := g.scene.Scroller()
	m := sc.Metrics()
	switch cmd.kind {
	case cmdScrollBy:
		amount := cmd.amount
		if shift {
			amount *= shiftMultiplier
		}
		sc.ScrollTo(m.Offset+amount*m.ViewportHeight, keyScrollTime, ease.OutCubic)
	case cmdHome:
		sc.ScrollTo(0, jumpScrollTime, ease.InOutCubic)
	case cmdEnd:
		sc.ScrollTo(m.Scrollable(), jumpScrollTime, ease.InOutCubic)
	case cmdSection:
		tl := g.scene.Timeline()
		if cmd.section < len(tl.Sections) {
			sc.ScrollToSection(tl, tl.Sections[cmd.section].Name, jumpScrollTime, ease.InOutCubic)
		}
	case cmdScreenshot:
		g.Screenshot("manual")
	case cmdToggleDebug:
		g.cfg.Debug = !g.cfg.Debug
		g.scene.SetDebugMode(g.cfg.Debug)
	}
}

// touchDrag turns a one-finger vertical drag into scroll deltas. Dragging
// up scrolls down, like a touch screen page.
type touchDrag struct {
	ids    []ebiten.TouchID
	id     ebiten.TouchID
	lastY  int
	active bool
}

// update follows the first touch in ids and returns the scroll delta since
// the previous frame. A new touch starts a new drag with no delta.
func (d *touchDrag) update(ids []ebiten.TouchID, pos func(ebiten.TouchID) (int, int)) float64 {
	if d.active {
		for _, id := range ids {
			if id == d.id {
				_, y := pos(id)
				delta := d.lastY - y
				d.lastY = y
				return float64(delta)
			}
		}
		d.active = false
	}
	if len(ids) == 0 {
		return 0
	}
	d.id = ids[0]
	_, d.lastY = pos(d.id)
	d.active = true
	return 0
}
