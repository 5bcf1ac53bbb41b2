package cinescroll

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Label    string  `json:"label,omitempty"`
	Delta    float64 `json:"delta,omitempty"`
	Offset   float64 `json:"offset,omitempty"`
	Progress float64 `json:"progress,omitempty"`
	Section  string  `json:"section,omitempty"`
	Frames   int     `json:"frames,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot":    true,
	"scroll":        true,
	"scrollTo":      true,
	"wait":          true,
	"expectSection": true,
}

// TestRunner sequences injected scroll events, section checks and
// screenshots across frames for automated testing. Attach to a Scene via
// SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner.
//
//	{"steps": [
//		{"action": "scrollTo", "progress": 0.5, "frames": 30},
//		{"action": "wait", "frames": 120},
//		{"action": "expectSection", "section": "mural"},
//		{"action": "screenshot", "label": "mural"}
//	]}
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i, st := range script.Steps {
		if !knownActions[st.Action] {
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before injected scroll events are processed.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of failed expectSection steps.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "screenshot":
		if s.screenshot != nil {
			s.screenshot(st.Label)
		}
	case "scroll":
		s.InjectScroll(st.Delta)
	case "scrollTo":
		if st.Progress > 0 {
			s.InjectScrollToProgress(st.Progress, st.Frames)
		} else {
			s.InjectScrollTo(st.Offset, st.Frames)
		}
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expectSection":
		got := s.State().Snapshot().Section
		if got != st.Section {
			r.failures = append(r.failures,
				fmt.Sprintf("step %d: section = %q, want %q", r.cursor-1, got, st.Section))
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
