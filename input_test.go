package nodegraph

import "testing"

// --- Transition table ---

func TestNextState(t *testing.T) {
	ptr := PointerState{X: 12, Y: 15}
	pos := Position{X: 10, Y: 10}

	tests := []struct {
		name     string
		cur      InteractionState
		hovering bool
		sig      InputSignal
		want     InteractionState
		released bool
	}{
		{"idle enters hover", StateIdle, true, SignalMove, StateHovering, false},
		{"idle stays idle", StateIdle, false, SignalMove, StateIdle, false},
		{"hover leaves", StateHovering, false, SignalMove, StateIdle, false},
		{"hover stays", StateHovering, true, SignalNone, StateHovering, false},
		{"press while hovering", StateHovering, true, SignalPressDown, StatePressed, false},
		{"press from idle on entry", StateIdle, true, SignalPressDown, StatePressed, false},
		{"press off node", StateIdle, false, SignalPressDown, StateIdle, false},
		{"pressed survives move", StatePressed, true, SignalMove, StatePressed, false},
		{"pressed survives leaving", StatePressed, false, SignalMove, StatePressed, false},
		{"pressed ignores second press", StatePressed, true, SignalPressDown, StatePressed, false},
		{"release over node", StatePressed, true, SignalPressUp, StateHovering, true},
		{"release off node", StatePressed, false, SignalPressUp, StateIdle, true},
		{"released settles hovering", StateReleased, true, SignalNone, StateHovering, false},
		{"released settles idle", StateReleased, false, SignalMove, StateIdle, false},
		{"press-up without press", StateHovering, true, SignalPressUp, StateHovering, false},
		{"click is inert", StateHovering, true, SignalClick, StateHovering, false},
		{"double click is inert", StateIdle, false, SignalDoubleClick, StateIdle, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cur := Interactable{State: tt.cur}
			if tt.cur == StatePressed {
				cur.GrabX, cur.GrabY = 1, 1
			}
			got, released := nextState(cur, tt.hovering, tt.sig, ptr, pos)
			if got.State != tt.want {
				t.Errorf("state = %v, want %v", got.State, tt.want)
			}
			if released != tt.released {
				t.Errorf("viaReleased = %v, want %v", released, tt.released)
			}
		})
	}
}

func TestNextStatePressRecordsGrab(t *testing.T) {
	got, _ := nextState(Interactable{State: StateHovering}, true, SignalPressDown,
		PointerState{X: 12, Y: 15}, Position{X: 10, Y: 10})
	if got.GrabX != 2 || got.GrabY != 5 {
		t.Errorf("grab = (%v, %v), want (2, 5)", got.GrabX, got.GrabY)
	}
}

func TestNextStateFixedPoint(t *testing.T) {
	ptr := PointerState{X: 5, Y: 5}
	pos := Position{}
	states := []InteractionState{StateIdle, StateHovering, StatePressed, StateReleased}
	for _, s := range states {
		for _, hovering := range []bool{true, false} {
			once, _ := nextState(Interactable{State: s}, hovering, SignalNone, ptr, pos)
			twice, _ := nextState(once, hovering, SignalNone, ptr, pos)
			if once != twice {
				t.Errorf("%v hovering=%v: %v then %v, want a fixed point", s, hovering, once.State, twice.State)
			}
		}
	}
}

// --- UpdateInteraction ---

func TestUpdateInteractionHoverBoundsTopLeft(t *testing.T) {
	s := NewStore()
	e := s.CreateNode(Position{X: 100, Y: 100}, Dimension{W: 20, H: 20}, OriginTopLeft, Label{})

	tests := []struct {
		name string
		x, y float64
		want InteractionState
	}{
		{"left edge", 100, 110, StateHovering},
		{"right edge", 120, 110, StateIdle},
		{"top edge", 110, 100, StateHovering},
		{"bottom edge", 110, 120, StateIdle},
		{"inside", 119.5, 119.5, StateHovering},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.Interactable(e).State = StateIdle
			UpdateInteraction(s, PointerState{X: tt.x, Y: tt.y}, SignalMove)
			if got := s.Interactable(e).State; got != tt.want {
				t.Errorf("state = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUpdateInteractionHoverBoundsCenter(t *testing.T) {
	s := NewStore()
	e := s.CreateNode(Position{X: 100, Y: 100}, Dimension{W: 20, H: 20}, OriginCenter, Label{})

	tests := []struct {
		x    float64
		want InteractionState
	}{
		{90, StateHovering},
		{89.9, StateIdle},
		{109.9, StateHovering},
		{110, StateIdle},
	}
	for _, tt := range tests {
		s.Interactable(e).State = StateIdle
		UpdateInteraction(s, PointerState{X: tt.x, Y: 100}, SignalMove)
		if got := s.Interactable(e).State; got != tt.want {
			t.Errorf("x=%v: state = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestUpdateInteractionReleaseEmitsTwoTransitions(t *testing.T) {
	s := NewStore()
	e := newTestNode(s, 50, 50)
	ptr := PointerState{X: 50, Y: 50}

	UpdateInteraction(s, ptr, SignalMove)
	ts := UpdateInteraction(s, ptr, SignalPressDown)
	if len(ts) != 1 || ts[0].To != StatePressed || ts[0].From != StateHovering {
		t.Fatalf("press transitions = %+v", ts)
	}

	ts = UpdateInteraction(s, ptr, SignalPressUp)
	if len(ts) != 2 {
		t.Fatalf("release transitions = %+v, want 2", ts)
	}
	if ts[0].From != StatePressed || ts[0].To != StateReleased {
		t.Errorf("first = %v->%v, want pressed->released", ts[0].From, ts[0].To)
	}
	if ts[1].From != StateReleased || ts[1].To != StateHovering {
		t.Errorf("second = %v->%v, want released->hovering", ts[1].From, ts[1].To)
	}
	if ts[0].Entity != e || ts[1].Signal != SignalPressUp {
		t.Error("transition metadata mismatch")
	}
	if s.Interactable(e).State != StateHovering {
		t.Errorf("state = %v, want hovering", s.Interactable(e).State)
	}
}

func TestUpdateInteractionNoChangeNoTransitions(t *testing.T) {
	s := NewStore()
	newTestNode(s, 50, 50)
	if ts := UpdateInteraction(s, PointerState{X: 300, Y: 300}, SignalMove); len(ts) != 0 {
		t.Errorf("transitions = %+v, want none", ts)
	}
}

func TestUpdateInteractionPressedSurvivesLeavingHover(t *testing.T) {
	s := NewStore()
	e := newTestNode(s, 50, 50)
	UpdateInteraction(s, PointerState{X: 50, Y: 50}, SignalPressDown)
	UpdateInteraction(s, PointerState{X: 300, Y: 300}, SignalMove)
	if !s.Interactable(e).Pressed() {
		t.Errorf("state = %v, want pressed", s.Interactable(e).State)
	}
}

func TestUpdateInteraction_OverlappingNodesPressTogether(t *testing.T) {
	s := NewStore()
	a := newTestNode(s, 50, 50)
	b := newTestNode(s, 55, 55)
	c := newTestNode(s, 200, 200)

	UpdateInteraction(s, PointerState{X: 52, Y: 52}, SignalPressDown)
	if !s.Interactable(a).Pressed() || !s.Interactable(b).Pressed() {
		t.Error("both overlapping nodes should be pressed")
	}
	if s.Interactable(c).Pressed() {
		t.Error("distant node should not be pressed")
	}
	if g := *s.Interactable(b); g.GrabX != -3 || g.GrabY != -3 {
		t.Errorf("grab of b = (%v, %v), want (-3, -3)", g.GrabX, g.GrabY)
	}
}
