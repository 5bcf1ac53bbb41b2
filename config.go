package cinescroll

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// timelineFile is the on-disk layout of a timeline.
type timelineFile struct {
	TotalDepth float64         `yaml:"totalDepth"`
	Sections   []Section       `yaml:"sections"`
	PauseZones []PauseZone     `yaml:"pauseZones,omitempty"`
	Windows    []ParamWindow   `yaml:"windows,omitempty"`
	Baselines  *CameraPose     `yaml:"baselines,omitempty"`
	Rates      *SmoothingRates `yaml:"rates,omitempty"`
}

// MarshalYAML writes the parameter by name.
func (p CameraParam) MarshalYAML() (any, error) {
	return p.String(), nil
}

// UnmarshalYAML reads a parameter name: fov, y or roll.
func (p *CameraParam) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, ok := parseCameraParam(s)
	if !ok {
		return fmt.Errorf("line %d: unknown camera parameter %q", value.Line, s)
	}
	*p = v
	return nil
}

// LoadTimeline decodes a YAML timeline and validates it. Omitted baselines
// and smoothing rates take their default values; an omitted Y rate is
// derived from the depth rate.
func LoadTimeline(r io.Reader) (*Timeline, error) {
	var f timelineFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode timeline: %w", err)
	}

	tl := &Timeline{
		TotalDepth: f.TotalDepth,
		Sections:   f.Sections,
		PauseZones: f.PauseZones,
		Windows:    f.Windows,
		Baselines:  DefaultBaselines(),
		Rates:      DefaultSmoothingRates(),
	}
	if f.Baselines != nil {
		tl.Baselines = *f.Baselines
		if tl.Baselines.FOV == 0 {
			tl.Baselines.FOV = DefaultBaselines().FOV
		}
	}
	if f.Rates != nil {
		tl.Rates = mergeRates(*f.Rates)
	}
	if err := tl.Validate(); err != nil {
		return nil, err
	}
	return tl, nil
}

// mergeRates fills zero rates from the defaults.
func mergeRates(r SmoothingRates) SmoothingRates {
	d := DefaultSmoothingRates()
	if r.Depth == 0 {
		r.Depth = d.Depth
	}
	if r.Y == 0 {
		r.Y = r.Depth * yRateFactor
	}
	if r.FOV == 0 {
		r.FOV = d.FOV
	}
	if r.Roll == 0 {
		r.Roll = d.Roll
	}
	return r
}

// LoadTimelineFile reads and validates the YAML timeline at path.
func LoadTimelineFile(path string) (*Timeline, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read timeline: %w", err)
	}
	tl, err := LoadTimeline(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tl, nil
}

// MarshalTimeline encodes tl as YAML.
func MarshalTimeline(tl *Timeline) ([]byte, error) {
	baselines := tl.Baselines
	rates := tl.Rates
	f := timelineFile{
		TotalDepth: tl.TotalDepth,
		Sections:   tl.Sections,
		PauseZones: tl.PauseZones,
		Windows:    tl.Windows,
		Baselines:  &baselines,
		Rates:      &rates,
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&f); err != nil {
		return nil, fmt.Errorf("encode timeline: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode timeline: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteTimelineFile writes tl to path as YAML.
func WriteTimelineFile(path string, tl *Timeline) error {
	data, err := MarshalTimeline(tl)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
