package photowall

import (
	"encoding/json"
	"errors"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Tile   *int    `json:"tile,omitempty"`
	Frames int     `json:"frames,omitempty"`
	Label  string  `json:"label,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences injected input and state assertions across frames
// for automated checks of a running wall. Attach to a Wall via SetTestRunner.
//
// Supported actions:
//
//	{"action": "move", "x": 100, "y": 80}      pointer move in screen pixels
//	{"action": "click", "x": 100, "y": 80}     press and release
//	{"action": "clickTile", "tile": 112}       click the tile's screen center
//	{"action": "reset"}                        clear the selection
//	{"action": "wait", "frames": 30}           idle for n frames
//	{"action": "expectFocused", "tile": 112}   assert the focused tile
//	{"action": "expectIdle"}                   assert nothing is focused
//	{"action": "screenshot", "label": "idle"}  capture the next frame
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
	failures  []string
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Wall via SetTestRunner.
func LoadTestScript(jsonData []byte) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, errors.New("parse test script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "move", "click", "reset", "wait", "expectIdle", "screenshot":
		case "clickTile", "expectFocused":
			if st.Tile == nil {
				return nil, fmt.Errorf("parse test script: step %d: %s needs a tile", i, st.Action)
			}
		default:
			return nil, fmt.Errorf("parse test script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &TestRunner{steps: script.Steps}, nil
}

// SetTestRunner attaches a TestRunner to the wall. The runner's step method
// is called from Update before input processing each frame.
func (w *Wall) SetTestRunner(runner *TestRunner) {
	w.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Failures returns the messages of failed expectations.
func (r *TestRunner) Failures() []string {
	return r.failures
}

// step advances the test runner by one frame. Called from Wall.Update.
func (r *TestRunner) step(w *Wall) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(w.injectQueue) > 0 {
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
	case "move":
		w.InjectMove(st.X, st.Y)
	case "click":
		w.InjectClick(st.X, st.Y)
	case "clickTile":
		if !w.InjectClickTile(TileID(*st.Tile)) {
			r.failf("step %d: tile %d is not clickable", r.cursor-1, *st.Tile)
		}
	case "reset":
		w.ctrl.Reset()
	case "screenshot":
		w.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "expectFocused":
		if got, ok := w.ctrl.Active(); !ok || got != TileID(*st.Tile) {
			r.failf("step %d: focused = %d, want %d", r.cursor-1, w.ctrl.State().Active, *st.Tile)
		}
	case "expectIdle":
		if got, ok := w.ctrl.Active(); ok {
			r.failf("step %d: focused = %d, want idle", r.cursor-1, got)
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(w.injectQueue) == 0 {
		r.done = true
	}
}

func (r *TestRunner) failf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}
