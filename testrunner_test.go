package nodegraph

import (
	"strings"
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "click", "x": 100, "y": 200},
			{"action": "wait", "frames": 3},
			{"action": "drag", "node": 2, "toX": 10, "toY": 10, "frames": 4}
		]
	}`)

	runner, err := LoadTestScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "click" || runner.steps[1].X != 100 || runner.steps[1].Y != 200 {
		t.Error("step 1 mismatch")
	}
	if st := runner.steps[3]; st.Node == nil || *st.Node != 2 || st.Frames != 4 {
		t.Error("step 3 mismatch")
	}
}

func TestLoadTestScript_Rejects(t *testing.T) {
	tests := []struct {
		name, data, want string
	}{
		{"invalid json", `not json`, "parse test script"},
		{"empty", `{"steps": []}`, "no steps"},
		{"unknown action", `{"steps": [{"action": "jump"}]}`, `unknown action "jump"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadTestScript([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func runScript(t *testing.T, d *Diagram, script string, maxFrames int) *TestRunner {
	t.Helper()
	runner, err := LoadTestScript([]byte(script))
	if err != nil {
		t.Fatal(err)
	}
	d.SetTestRunner(runner)
	for i := 0; i < maxFrames && !runner.Done(); i++ {
		d.Step()
	}
	if !runner.Done() {
		t.Fatalf("script not done after %d frames", maxFrames)
	}
	return runner
}

func TestRunnerDragByNode(t *testing.T) {
	d := newLoadedDiagram(t)
	e, _ := d.EntityFor(2)

	runScript(t, d, `{"steps": [{"action": "drag", "node": 2, "toX": 100, "toY": 120, "frames": 5}]}`, 50)

	if got := *d.Store().Position(e); got != (Position{X: 100, Y: 120}) {
		t.Errorf("position = %+v, want {100 120}", got)
	}
}

func TestRunnerClickAtPoint(t *testing.T) {
	d := newLoadedDiagram(t)
	e, _ := d.EntityFor(1)
	var pressed bool
	d.OnTransition(func(tr Transition) {
		if tr.Entity == e && tr.To == StatePressed {
			pressed = true
		}
	})

	runScript(t, d, `{"steps": [{"action": "click", "x": 20, "y": 20}]}`, 20)
	if !pressed {
		t.Error("click did not press the root")
	}
	if d.Store().Interactable(e).State != StateHovering {
		t.Errorf("state = %v, want hovering", d.Store().Interactable(e).State)
	}
}

func TestRunnerWait(t *testing.T) {
	d := newLoadedDiagram(t)
	runner, err := LoadTestScript([]byte(`{"steps": [{"action": "wait", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	d.SetTestRunner(runner)
	frames := 0
	for !runner.Done() && frames < 10 {
		d.Step()
		frames++
	}
	if frames != 3 {
		t.Errorf("wait took %d frames, want 3", frames)
	}
}

func TestRunnerUnknownNodeSkipped(t *testing.T) {
	d := newLoadedDiagram(t)
	runScript(t, d, `{"steps": [{"action": "press", "node": 99}, {"action": "screenshot", "label": "after"}]}`, 10)
	if d.Pending() != 0 {
		t.Errorf("Pending = %d, want 0", d.Pending())
	}
	if len(d.screenshotQueue) != 1 || d.screenshotQueue[0] != "after" {
		t.Errorf("screenshotQueue = %v", d.screenshotQueue)
	}
}
