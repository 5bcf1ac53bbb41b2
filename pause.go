package cinescroll

import (
	"fmt"
	"math"
)

// PauseZone slows the camera near a depth so the viewer can dwell on a scene
// without scrolling further. PauseAmount is the fraction of the whole
// progress range spent dwelling there.
type PauseZone struct {
	Center      float64 `yaml:"center"`
	PauseAmount float64 `yaml:"pause"`
}

// PausePhase is the sub-band of a pause zone that claims a progress value.
type PausePhase uint8

const (
	PauseNone     PausePhase = iota // outside every pause zone
	PauseEntering                   // first 30% of the band, slowed to 0.3x
	PauseHolding                    // middle 40%, pinned to the zone center
	PauseExiting                    // last 30%, ramps out of the zone
)

// String returns the phase name used in logs.
func (p PausePhase) String() string {
	switch p {
	case PauseEntering:
		return "entering"
	case PauseHolding:
		return "holding"
	case PauseExiting:
		return "exiting"
	default:
		return "none"
	}
}

const (
	pauseMargin     = 0.01 // progress padding on both sides of a zone band
	pauseEnterFrac  = 0.3
	pauseHoldFrac   = 0.4
	pauseEnterSpeed = 0.3
	pauseExitRamp   = 0.01
)

// ApplyScrollPauses maps raw scroll progress in [0, 1] to adjusted progress.
// The raw range is stretched by the total pause amount and every zone the
// value has fully passed gives its pause back, so the camera covers the same
// depth range while dwelling near each zone center.
func (tl *Timeline) ApplyScrollPauses(raw float64) float64 {
	v, _, _ := tl.locatePause(raw)
	return v
}

// PauseZoneAt reports which zone and phase claim raw progress. ok is false
// when raw lies outside every zone band.
func (tl *Timeline) PauseZoneAt(raw float64) (index int, phase PausePhase, ok bool) {
	_, index, phase = tl.locatePause(raw)
	return index, phase, phase != PauseNone
}

// TotalPause returns the sum of all pause amounts.
func (tl *Timeline) TotalPause() float64 {
	total := 0.0
	for _, z := range tl.PauseZones {
		total += z.PauseAmount
	}
	return total
}

// locatePause walks the ascending zone list. Zones must not overlap; see
// ValidatePauseZones.
func (tl *Timeline) locatePause(raw float64) (float64, int, PausePhase) {
	adjusted := raw * (1 + tl.TotalPause())
	accumulated := 0.0

	for i, z := range tl.PauseZones {
		center := z.Center / tl.TotalDepth
		start, end := pauseBand(center, z.PauseAmount)
		v := adjusted - accumulated

		if v >= start && v <= end {
			local := v - start
			frac := local / (end - start)
			switch {
			case frac < pauseEnterFrac:
				return start + local*pauseEnterSpeed, i, PauseEntering
			case frac < pauseEnterFrac+pauseHoldFrac:
				return center, i, PauseHolding
			default:
				exit := (frac - pauseEnterFrac - pauseHoldFrac) / (1 - pauseEnterFrac - pauseHoldFrac)
				return center + exit*pauseExitRamp, i, PauseExiting
			}
		}
		if v > end {
			accumulated += z.PauseAmount
		}
	}
	return math.Max(0, math.Min(1, adjusted-accumulated)), -1, PauseNone
}

// pauseBand returns the progress band a zone claims, before the pause of
// earlier zones is subtracted.
func pauseBand(center, amount float64) (start, end float64) {
	return center - pauseMargin, center + amount + pauseMargin
}

// ValidatePauseZones rejects zone lists the pause walk cannot handle: zones
// out of order, non-positive amounts, bands that leave the (0, 1) progress
// range, and bands that overlap the next zone once earlier pauses have been
// given back.
func ValidatePauseZones(zones []PauseZone, totalDepth float64) error {
	for i, z := range zones {
		if z.PauseAmount <= 0 {
			return fmt.Errorf("pause zone %d: pause amount %g must be positive", i, z.PauseAmount)
		}
		center := z.Center / totalDepth
		start, _ := pauseBand(center, z.PauseAmount)
		if start <= 0 || center+pauseMargin >= 1 {
			return fmt.Errorf("pause zone %d: center %g too close to the timeline ends", i, z.Center)
		}
		if i == 0 {
			continue
		}
		prev := zones[i-1]
		if z.Center <= prev.Center {
			return fmt.Errorf("pause zone %d: center %g not after %g", i, z.Center, prev.Center)
		}
		// The walk compares zone i in coordinates shifted by prev's pause, so
		// prev's band end must stay below this zone's start plus that pause.
		_, prevEnd := pauseBand(prev.Center/totalDepth, prev.PauseAmount)
		if prevEnd >= start+prev.PauseAmount {
			return fmt.Errorf("pause zone %d (center %g) overlaps zone %d (center %g)",
				i, z.Center, i-1, prev.Center)
		}
	}
	return nil
}
