package cinescroll

import (
	"fmt"
	"io"
	"os"
	"time"
)

// frameStats holds one frame's timeline state and timing.
// Only populated when Scene.debug is true.
type frameStats struct {
	frame        uint64
	state        ScrollState
	camera       CameraPose
	visible      int
	layers       int
	listeners    int
	updateTime   time.Duration
	pauseZone    int
	pausePhase   PausePhase
	scrollOffset float64
}

// debugOut is where debug logging goes. Tests swap it.
var debugOut io.Writer = os.Stderr

// debugLog prints per-frame stats to stderr.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	_, _ = fmt.Fprintf(debugOut,
		"[cinescroll] frame %d | offset %.1f | progress %.4f | z %.1f | section %s | velocity %.3f/s\n",
		stats.frame, stats.scrollOffset, stats.state.Progress, stats.state.CameraZ,
		stats.state.Section, stats.state.Velocity)
	_, _ = fmt.Fprintf(debugOut,
		"[cinescroll] camera z %.1f y %.1f fov %.2f roll %.3f | pause %d %s | layers %d/%d | listeners %d | update %v\n",
		stats.camera.Z, stats.camera.Y, stats.camera.FOV, stats.camera.Roll,
		stats.pauseZone, stats.pausePhase, stats.visible, stats.layers, stats.listeners, stats.updateTime)
}

func (s *Scene) debugSection(prev, next string, st ScrollState) {
	_, _ = fmt.Fprintf(debugOut, "[cinescroll] section %q -> %q at z %.1f\n", prev, next, st.CameraZ)
}

// DebugSummary returns a one-line description of the last frame, for HUDs.
// It is empty unless debug mode is on.
func (s *Scene) DebugSummary() string {
	if !s.debug {
		return ""
	}
	st := s.stats
	return fmt.Sprintf("%s  z=%.0f  p=%.3f  v=%.2f/s  pause=%s  layers=%d/%d",
		st.state.Section, st.state.CameraZ, st.state.Progress, st.state.Velocity,
		st.pausePhase, st.visible, st.layers)
}
