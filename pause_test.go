package cinescroll

import "testing"

func TestApplyScrollPausesEndpoints(t *testing.T) {
	tl := DefaultTimeline()
	if got := tl.ApplyScrollPauses(0); got != 0 {
		t.Errorf("ApplyScrollPauses(0) = %v, want 0", got)
	}
	if got := tl.ApplyScrollPauses(1); !approxEqual(got, 1, 1e-9) {
		t.Errorf("ApplyScrollPauses(1) = %v, want 1", got)
	}
}

func TestApplyScrollPausesNoZones(t *testing.T) {
	tl := DefaultTimeline()
	tl.PauseZones = nil
	for _, raw := range []float64{0, 0.1, 0.5, 0.73, 1} {
		if got := tl.ApplyScrollPauses(raw); got != raw {
			t.Errorf("ApplyScrollPauses(%v) = %v, want identity", raw, got)
		}
	}
}

func TestApplyScrollPausesMonotonic(t *testing.T) {
	tl := DefaultTimeline()
	prev := tl.ApplyScrollPauses(0)
	for i := 1; i <= 20000; i++ {
		raw := float64(i) / 20000
		v := tl.ApplyScrollPauses(raw)
		if v < prev-1e-12 {
			t.Fatalf("raw %v: %v < previous %v", raw, v, prev)
		}
		if v < 0 || v > 1+1e-9 {
			t.Fatalf("raw %v: %v out of [0,1]", raw, v)
		}
		prev = v
	}
}

// bandRaw returns the raw progress at fraction frac through the first
// zone's band.
func bandRaw(tl *Timeline, frac float64) float64 {
	z := tl.PauseZones[0]
	start, end := pauseBand(z.Center/tl.TotalDepth, z.PauseAmount)
	return (start + frac*(end-start)) / (1 + tl.TotalPause())
}

func TestPauseZoneAtCenter750(t *testing.T) {
	tl := DefaultTimeline()
	center := 750 / tl.TotalDepth

	if got := tl.ApplyScrollPauses(bandRaw(tl, 0.5)); got != center {
		t.Errorf("band midpoint = %v, want zone center %v", got, center)
	}

	// The whole hold band pins the camera to the center.
	for _, frac := range []float64{0.31, 0.4, 0.5, 0.6, 0.69} {
		if got := tl.ApplyScrollPauses(bandRaw(tl, frac)); got != center {
			t.Errorf("frac %v = %v, want %v", frac, got, center)
		}
	}

	// Monotonic across the band and its surroundings.
	prev := tl.ApplyScrollPauses(bandRaw(tl, -0.5))
	for frac := -0.5; frac <= 1.5; frac += 0.01 {
		v := tl.ApplyScrollPauses(bandRaw(tl, frac))
		if v < prev-1e-12 {
			t.Fatalf("frac %v: %v < previous %v", frac, v, prev)
		}
		prev = v
	}

	// Entering is slowed: the adjusted value moves at 0.3x through the
	// entering band.
	a := tl.ApplyScrollPauses(bandRaw(tl, 0.05))
	b := tl.ApplyScrollPauses(bandRaw(tl, 0.25))
	rawSpan := (bandRaw(tl, 0.25) - bandRaw(tl, 0.05)) * (1 + tl.TotalPause())
	if !approxEqual(b-a, rawSpan*pauseEnterSpeed, 1e-9) {
		t.Errorf("entering slope = %v, want %v", (b-a)/rawSpan, pauseEnterSpeed)
	}

	// Exiting ends one ramp past the center.
	if got := tl.ApplyScrollPauses(bandRaw(tl, 1)); !approxEqual(got, center+pauseExitRamp, 1e-9) {
		t.Errorf("band end = %v, want %v", got, center+pauseExitRamp)
	}
}

func TestPauseZoneAt(t *testing.T) {
	tl := DefaultTimeline()
	tests := []struct {
		frac  float64
		phase PausePhase
	}{
		{-0.2, PauseNone},
		{0.1, PauseEntering},
		{0.5, PauseHolding},
		{0.9, PauseExiting},
		{1.2, PauseNone},
	}
	for _, tt := range tests {
		zone, phase, ok := tl.PauseZoneAt(bandRaw(tl, tt.frac))
		if phase != tt.phase {
			t.Errorf("frac %v: phase = %v, want %v", tt.frac, phase, tt.phase)
		}
		if ok != (tt.phase != PauseNone) {
			t.Errorf("frac %v: ok = %v", tt.frac, ok)
		}
		if ok && zone != 0 {
			t.Errorf("frac %v: zone = %d, want 0", tt.frac, zone)
		}
		if !ok && zone != -1 {
			t.Errorf("frac %v: zone = %d, want -1", tt.frac, zone)
		}
	}
}

func TestPausePhaseString(t *testing.T) {
	tests := []struct {
		p    PausePhase
		want string
	}{
		{PauseNone, "none"},
		{PauseEntering, "entering"},
		{PauseHolding, "holding"},
		{PauseExiting, "exiting"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.p, got, tt.want)
		}
	}
}

func TestValidatePauseZones(t *testing.T) {
	tests := []struct {
		name    string
		zones   []PauseZone
		wantErr bool
	}{
		{"none", nil, false},
		{"default spacing", DefaultTimeline().PauseZones, false},
		{"overlapping", []PauseZone{{750, 0.015}, {800, 0.015}}, true},
		{"barely apart", []PauseZone{{750, 0.015}, {750 + 0.021*7000, 0.015}}, false},
		{"out of order", []PauseZone{{1750, 0.015}, {750, 0.015}}, true},
		{"duplicate", []PauseZone{{750, 0.015}, {750, 0.015}}, true},
		{"zero pause", []PauseZone{{750, 0}}, true},
		{"negative pause", []PauseZone{{750, -0.01}}, true},
		{"at start", []PauseZone{{10, 0.015}}, true},
		{"at end", []PauseZone{{6990, 0.015}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePauseZones(tt.zones, 7000)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePauseZones() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTotalPause(t *testing.T) {
	tl := DefaultTimeline()
	if got := tl.TotalPause(); !approxEqual(got, 7*0.015, 1e-12) {
		t.Errorf("TotalPause() = %v, want %v", got, 7*0.015)
	}
}
