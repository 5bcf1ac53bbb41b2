package stage

import (
	"image/color"
	"strings"
	"testing"

	"github.com/phanxgames/cinescroll"
)

func TestToRGBA(t *testing.T) {
	tests := []struct {
		name    string
		c       cinescroll.Color
		opacity float64
		want    color.RGBA
	}{
		{"opaque white", cinescroll.ColorWhite, 1, color.RGBA{255, 255, 255, 255}},
		{"half opacity", cinescroll.ColorWhite, 0.5, color.RGBA{128, 128, 128, 128}},
		{"invisible", cinescroll.Color{R: 1, A: 1}, 0, color.RGBA{}},
		{"clamped", cinescroll.Color{R: 2, G: -1, B: 0, A: 1}, 1.5, color.RGBA{255, 0, 0, 255}},
	}
	for _, tt := range tests {
		if got := toRGBA(tt.c, tt.opacity); got != tt.want {
			t.Errorf("%s: toRGBA = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDecorOf(t *testing.T) {
	l := &cinescroll.Layer{}
	if decorOf(l) != defaultDecor {
		t.Error("layer without payload did not get the default decor")
	}
	l.Payload = Decor{Radius: 5, Filled: true}
	if d := decorOf(l); d.Radius != 5 || !d.Filled {
		t.Errorf("decorOf(value) = %+v", d)
	}
	l.Payload = &Decor{Spokes: 6}
	if d := decorOf(l); d.Spokes != 6 {
		t.Errorf("decorOf(pointer) = %+v", d)
	}
	l.Payload = "other"
	if decorOf(l) != defaultDecor {
		t.Error("foreign payload did not fall back to the default decor")
	}
}

func TestSortByDepthDesc(t *testing.T) {
	ls := []*cinescroll.Layer{{Depth: 100}, {Depth: 900}, {Depth: 500}, {Depth: 900}}
	sortByDepthDesc(ls)
	for i := 1; i < len(ls); i++ {
		if ls[i].Depth > ls[i-1].Depth {
			t.Fatalf("not sorted: %v before %v", ls[i-1].Depth, ls[i].Depth)
		}
	}
}

func TestHUDText(t *testing.T) {
	g := newTestGame(t)
	text := hudText(g.scene)
	if !strings.HasPrefix(text, "portal\n") {
		t.Errorf("hudText = %q", text)
	}
	if !strings.Contains(text, "fov 50.0") {
		t.Errorf("hudText missing fov: %q", text)
	}
}
