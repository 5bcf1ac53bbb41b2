package cinescroll

import (
	"fmt"
	"math"
)

// Section names a contiguous depth range. A camera depth resolves to the
// first section whose UpperBound is greater than it; the last section of a
// table catches every depth beyond the table.
type Section struct {
	UpperBound float64 `yaml:"upper"`
	Name       string  `yaml:"name"`
}

// ParamWindow overrides one camera parameter inside [Low, High] of camera
// depth. Inside the window the target is Baseline + Delta*ease(p), with p the
// normalized position in the window. Outside every window a parameter
// returns to its timeline baseline.
type ParamWindow struct {
	Name     string      `yaml:"name"`
	Param    CameraParam `yaml:"param"`
	Low      float64     `yaml:"low"`
	High     float64     `yaml:"high"`
	Baseline float64     `yaml:"baseline"`
	Delta    float64     `yaml:"delta"`
	// Easing names a registered easing; empty selects inOutCubic.
	Easing string `yaml:"easing,omitempty"`
}

// Contains reports whether depth z lies inside the window.
func (w ParamWindow) Contains(z float64) bool {
	return z >= w.Low && z <= w.High
}

// Value returns the window's target at depth z. z must lie inside the window.
func (w ParamWindow) Value(z float64) float64 {
	fn, err := EasingByName(w.Easing)
	if err != nil {
		fn = EaseInOutCubic
	}
	p := fn(clamp01((z - w.Low) / (w.High - w.Low)))
	return w.Baseline + w.Delta*p
}

// CameraPose is a camera depth, vertical offset, vertical field of view in
// degrees, and roll in radians.
type CameraPose struct {
	Z    float64 `yaml:"z"`
	Y    float64 `yaml:"y"`
	FOV  float64 `yaml:"fov"`
	Roll float64 `yaml:"roll"`
}

// SmoothingRates holds the SmoothDamp rate of each camera scalar.
type SmoothingRates struct {
	Depth float64 `yaml:"depth"`
	Y     float64 `yaml:"y"`
	FOV   float64 `yaml:"fov"`
	Roll  float64 `yaml:"roll"`
}

// yRateFactor derives the Y rate from the depth rate so the camera height
// trails its travel slightly.
const yRateFactor = 0.7

// DefaultSmoothingRates returns depth 0.08, Y 0.056, FOV 0.04 and roll 0.06.
func DefaultSmoothingRates() SmoothingRates {
	const depth = 0.08
	return SmoothingRates{
		Depth: depth,
		Y:     depth * yRateFactor,
		FOV:   0.04,
		Roll:  0.06,
	}
}

// Timeline is the static description of an experience: the depth range the
// scroll maps onto, the section table, the pause zones and the parameter
// windows. A Timeline is immutable once handed to a Scene.
type Timeline struct {
	TotalDepth float64
	Sections   []Section
	PauseZones []PauseZone
	Windows    []ParamWindow
	// Baselines holds the FOV, Y and roll used outside every window.
	Baselines CameraPose
	Rates     SmoothingRates
}

// DefaultBaselines returns FOV 50, Y 0, roll 0.
func DefaultBaselines() CameraPose {
	return CameraPose{FOV: 50}
}

// ResolveSection returns the name of the section containing depth z.
func (tl *Timeline) ResolveSection(z float64) string {
	if len(tl.Sections) == 0 {
		return ""
	}
	return tl.Sections[tl.sectionIndexAt(z)].Name
}

func (tl *Timeline) sectionIndexAt(z float64) int {
	for i, s := range tl.Sections {
		if z < s.UpperBound {
			return i
		}
	}
	return len(tl.Sections) - 1
}

// SectionIndex returns the position of the named section in the table, or -1.
func (tl *Timeline) SectionIndex(name string) int {
	for i, s := range tl.Sections {
		if s.Name == name {
			return i
		}
	}
	return -1
}

// SectionRange returns the depth range [low, high) of the named section. The
// catch-all section ends at TotalDepth.
func (tl *Timeline) SectionRange(name string) (low, high float64, ok bool) {
	i := tl.SectionIndex(name)
	if i < 0 {
		return 0, 0, false
	}
	if i > 0 {
		low = tl.Sections[i-1].UpperBound
	}
	high = tl.Sections[i].UpperBound
	if i == len(tl.Sections)-1 || high > tl.TotalDepth {
		high = tl.TotalDepth
	}
	return low, high, true
}

// SectionCenter returns the depth midway through the named section.
func (tl *Timeline) SectionCenter(name string) (float64, bool) {
	low, high, ok := tl.SectionRange(name)
	if !ok {
		return 0, false
	}
	return (low + high) / 2, true
}

// Param returns the pose value driven by p.
func (p CameraPose) Param(param CameraParam) float64 {
	switch param {
	case ParamFOV:
		return p.FOV
	case ParamY:
		return p.Y
	case ParamRoll:
		return p.Roll
	}
	return 0
}

// CameraTargets returns the camera pose the controller steers toward when
// the camera depth is z.
func (tl *Timeline) CameraTargets(z float64) CameraPose {
	pose := tl.Baselines
	pose.Z = z
	for _, w := range tl.Windows {
		if !w.Contains(z) {
			continue
		}
		switch w.Param {
		case ParamFOV:
			pose.FOV = w.Value(z)
		case ParamY:
			pose.Y = w.Value(z)
		case ParamRoll:
			pose.Roll = w.Value(z)
		}
	}
	return pose
}

// DepthAt converts adjusted progress to camera depth.
func (tl *Timeline) DepthAt(progress float64) float64 {
	return progress * tl.TotalDepth
}

// RawProgressForDepth inverts the pause transform by bisection, returning
// the smallest raw progress whose camera depth reaches z.
func (tl *Timeline) RawProgressForDepth(z float64) float64 {
	lo, hi := 0.0, 1.0
	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		if tl.DepthAt(tl.ApplyScrollPauses(mid)) < z {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// Validate checks the timeline and returns an error wrapping
// ErrInvalidTimeline describing the first problem found.
func (tl *Timeline) Validate() error {
	if err := tl.validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeline, err)
	}
	return nil
}

func (tl *Timeline) validate() error {
	if !(tl.TotalDepth > 0) || math.IsInf(tl.TotalDepth, 0) {
		return fmt.Errorf("total depth %g must be positive and finite", tl.TotalDepth)
	}
	if len(tl.Sections) == 0 {
		return fmt.Errorf("no sections")
	}
	seen := make(map[string]bool, len(tl.Sections))
	for i, s := range tl.Sections {
		if s.Name == "" {
			return fmt.Errorf("section %d has no name", i)
		}
		if seen[s.Name] {
			return fmt.Errorf("duplicate section %q", s.Name)
		}
		seen[s.Name] = true
		if i < len(tl.Sections)-1 {
			if s.UpperBound <= 0 {
				return fmt.Errorf("section %q: upper bound %g must be positive", s.Name, s.UpperBound)
			}
			if i > 0 && s.UpperBound <= tl.Sections[i-1].UpperBound {
				return fmt.Errorf("section %q: upper bound %g not after %g",
					s.Name, s.UpperBound, tl.Sections[i-1].UpperBound)
			}
		}
	}
	if err := ValidatePauseZones(tl.PauseZones, tl.TotalDepth); err != nil {
		return err
	}
	if err := validateWindows(tl.Windows, tl.Baselines); err != nil {
		return err
	}
	r := tl.Rates
	if r.Depth <= 0 || r.Y <= 0 || r.FOV <= 0 || r.Roll <= 0 {
		return fmt.Errorf("smoothing rates must be positive: %+v", r)
	}
	return nil
}

// validateWindows rejects empty windows, unknown easings, windows whose
// baseline differs from the timeline baseline of their parameter and windows
// that overlap another window driving the same parameter.
func validateWindows(windows []ParamWindow, baselines CameraPose) error {
	for i, w := range windows {
		if !(w.Low < w.High) {
			return fmt.Errorf("window %q: low %g must be below high %g", w.Name, w.Low, w.High)
		}
		if b := baselines.Param(w.Param); w.Baseline != b {
			return fmt.Errorf("window %q: baseline %g differs from %s baseline %g", w.Name, w.Baseline, w.Param, b)
		}
		if _, err := EasingByName(w.Easing); err != nil {
			return fmt.Errorf("window %q: %w", w.Name, err)
		}
		for _, o := range windows[:i] {
			if o.Param != w.Param {
				continue
			}
			if w.Low <= o.High && o.Low <= w.High {
				return fmt.Errorf("window %q overlaps %q on %s", w.Name, o.Name, w.Param)
			}
		}
	}
	return nil
}

// FestivalSections lists the default section names in timeline order.
var FestivalSections = []string{
	"portal", "eventX", "vortex", "battle", "curtain", "spotlight", "paintTunnel",
	"mural", "dollyZoom", "unveil", "falling", "beatTheStreet", "glitch", "parody",
}

const (
	defaultTotalDepth   = 7000
	defaultSectionDepth = 500
	defaultPauseAmount  = 0.015
)

// DefaultTimeline returns the festival timeline: 7000 units of depth split
// into fourteen 500-unit sections, a pause zone in the middle of every other
// section starting with eventX, a dolly zoom, a fall and a glitch spin.
func DefaultTimeline() *Timeline {
	tl := &Timeline{
		TotalDepth: defaultTotalDepth,
		Baselines:  DefaultBaselines(),
		Rates:      DefaultSmoothingRates(),
	}
	for i, name := range FestivalSections {
		tl.Sections = append(tl.Sections, Section{
			UpperBound: float64(i+1) * defaultSectionDepth,
			Name:       name,
		})
	}
	for i := 1; i < len(FestivalSections); i += 2 {
		tl.PauseZones = append(tl.PauseZones, PauseZone{
			Center:      float64(i)*defaultSectionDepth + defaultSectionDepth/2,
			PauseAmount: defaultPauseAmount,
		})
	}
	tl.Windows = []ParamWindow{
		{Name: "dollyZoom", Param: ParamFOV, Low: 4000, High: 4500, Baseline: 50, Delta: 25},
		{Name: "falling", Param: ParamY, Low: 5000, High: 5500, Baseline: 0, Delta: -300},
		{Name: "glitchSpin", Param: ParamRoll, Low: 6000, High: 6500, Baseline: 0, Delta: 2 * math.Pi},
	}
	return tl
}

// Clone returns a deep copy of the timeline.
func (tl *Timeline) Clone() *Timeline {
	c := *tl
	c.Sections = append([]Section(nil), tl.Sections...)
	c.PauseZones = append([]PauseZone(nil), tl.PauseZones...)
	c.Windows = append([]ParamWindow(nil), tl.Windows...)
	return &c
}
