package nodegraph

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	FromX  float64 `json:"fromX,omitempty"`
	FromY  float64 `json:"fromY,omitempty"`
	ToX    float64 `json:"toX,omitempty"`
	ToY    float64 `json:"toY,omitempty"`
	Frames int     `json:"frames,omitempty"`
	// Node addresses a graph node id instead of X/Y: the action targets the
	// center of that node's current bounds.
	Node *int64 `json:"node,omitempty"`
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

var knownActions = map[string]bool{
	"screenshot": true, "press": true, "move": true, "release": true,
	"click": true, "drag": true, "wait": true,
}

// TestRunner sequences injected pointer events and screenshots across frames
// for automated visual checks. Attach to a Diagram via SetTestRunner.
type TestRunner struct {
	steps     []testStep
	cursor    int
	waitCount int
	done      bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Diagram via SetTestRunner.
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

// SetTestRunner attaches a TestRunner. Its step method runs from
// Diagram.Step before injected input is consumed.
func (d *Diagram) SetTestRunner(runner *TestRunner) {
	d.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// target resolves a step's point, preferring its node reference.
func (st testStep) target(d *Diagram) (x, y float64, ok bool) {
	if st.Node == nil {
		return st.X, st.Y, true
	}
	e, found := d.EntityFor(*st.Node)
	if !found {
		return 0, 0, false
	}
	c := d.store.Bounds(e).Center()
	return c.X, c.Y, true
}

// step advances the test runner by one frame. Called from Diagram.Step.
func (r *TestRunner) step(d *Diagram) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(d.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		r.finishIfIdle(d)
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	x, y, ok := st.target(d)
	if !ok {
		d.logger.Warn("test script: unknown node, step skipped", "action", st.Action, "node", *st.Node)
	} else {
		switch st.Action {
		case "screenshot":
			d.Screenshot(st.Label)
		case "press":
			d.InjectPress(x, y)
		case "move":
			d.InjectMove(x, y)
		case "release":
			d.InjectRelease(x, y)
		case "click":
			d.InjectClick(x, y)
		case "drag":
			fromX, fromY := st.FromX, st.FromY
			if st.Node != nil {
				fromX, fromY = x, y
			}
			d.InjectDrag(fromX, fromY, st.ToX, st.ToY, st.Frames)
		case "wait":
			if st.Frames > 0 {
				r.waitCount = st.Frames - 1 // this frame counts as one
			}
		}
	}

	r.finishIfIdle(d)
}

// finishIfIdle marks the runner done once every step has run and nothing
// is left to wait for.
func (r *TestRunner) finishIfIdle(d *Diagram) {
	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(d.injectQueue) == 0 {
		r.done = true
	}
}
