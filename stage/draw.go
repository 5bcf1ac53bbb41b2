package stage

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/cinescroll"
)

// Decor describes how the stage draws a layer. Set it as the layer's
// Payload; layers without one are drawn as a plain ring.
type Decor struct {
	// Radius of the ring in world units.
	Radius float64
	// Stroke is the ring width in world units.
	Stroke float64
	// Spokes draws that many radial lines inside the ring.
	Spokes int
	// Filled draws a filled disc instead of a ring.
	Filled bool
}

var defaultDecor = Decor{Radius: 40, Stroke: 3}

// minDrawScale skips layers that would project to less than a pixel.
const minDrawScale = 1e-3

// toRGBA converts a straight-alpha color to premultiplied color.RGBA with
// its alpha scaled by opacity.
func toRGBA(c cinescroll.Color, opacity float64) color.RGBA {
	a := clamp01(c.A * opacity)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// decorOf returns the layer's Decor payload or the default.
func decorOf(l *cinescroll.Layer) Decor {
	switch d := l.Payload.(type) {
	case Decor:
		return d
	case *Decor:
		if d != nil {
			return *d
		}
	}
	return defaultDecor
}

// drawLayers draws every visible layer in front of the camera, farthest
// first.
func drawLayers(screen *ebiten.Image, s *cinescroll.Scene) {
	cam := s.Camera()
	layers := s.Layers()
	order := make([]*cinescroll.Layer, 0, len(layers))
	for _, l := range layers {
		if l.Invisible() || !cam.Facing(l.Depth) {
			continue
		}
		order = append(order, l)
	}
	sortByDepthDesc(order)

	for _, l := range order {
		drawLayer(screen, cam, l)
	}
}

func sortByDepthDesc(ls []*cinescroll.Layer) {
	// Insertion sort: layer counts are small and usually already ordered.
	for i := 1; i < len(ls); i++ {
		for j := i; j > 0 && ls[j].Depth > ls[j-1].Depth; j-- {
			ls[j], ls[j-1] = ls[j-1], ls[j]
		}
	}
}

func drawLayer(screen *ebiten.Image, cam *cinescroll.Camera, l *cinescroll.Layer) {
	sx, sy, scale, ok := cam.Project(cinescroll.Vec3{Z: cinescroll.DepthWorldZ(l.Depth)})
	if !ok || scale < minDrawScale {
		return
	}
	d := decorOf(l)
	clr := toRGBA(l.Tint, l.Opacity())
	r := float32(d.Radius * scale)
	cx, cy := float32(sx), float32(sy)

	if d.Filled {
		vector.DrawFilledCircle(screen, cx, cy, r, clr, true)
	} else {
		stroke := float32(math.Max(1, d.Stroke*scale))
		vector.StrokeCircle(screen, cx, cy, r, stroke, clr, true)
	}
	for i := 0; i < d.Spokes; i++ {
		a := cam.Roll + 2*math.Pi*float64(i)/float64(d.Spokes)
		sin, cos := math.Sincos(a)
		vector.StrokeLine(screen, cx, cy, cx+r*float32(cos), cy+r*float32(sin), 1, clr, true)
	}

	if l.Particles != nil {
		drawParticles(screen, cam, l)
	}
}

func drawParticles(screen *ebiten.Image, cam *cinescroll.Camera, l *cinescroll.Layer) {
	tint := l.Particles.Config().Color
	if tint == (cinescroll.Color{}) {
		tint = l.Tint
	}
	opacity := l.Opacity()
	l.Particles.Each(func(p cinescroll.Particle) {
		px, py, scale, ok := cam.Project(p.Pos)
		if !ok {
			return
		}
		r := float32(math.Max(0.5, p.Size*scale))
		vector.DrawFilledCircle(screen, float32(px), float32(py), r, toRGBA(tint, opacity*p.Alpha), true)
	})
}
