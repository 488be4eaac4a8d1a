package nodegraph

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// Transition records one state change of one node during a tick.
type Transition struct {
	Entity   Entity
	From, To InteractionState
	Signal   InputSignal
	// GrabX and GrabY are the stored offset when To is StatePressed.
	GrabX, GrabY float64
}

// TransitionEvent is the donburi event type on which UpdateInteraction
// publishes every Transition. Subscribe with TransitionEvent.Subscribe and
// deliver with events.ProcessAllEvents (Diagram does the latter after each
// tick).
var TransitionEvent = events.NewEventType[Transition]()

// nextState applies the transition table to one node. It returns the new
// interactable value and, when the node passed through StateReleased on the
// way, reports that so the caller can record both steps.
//
// Precedence:
//  1. PressDown while hovering and Idle/Hovering: Pressed{pointer - pos}.
//  2. PressUp while Pressed: Released, then Hovering or Idle by hover.
//  3. Hovering and Idle/Released: Hovering.
//  4. Not hovering and Hovering/Released: Idle.
//
// Pressed survives losing hover; only PressUp clears it.
func nextState(cur Interactable, hovering bool, sig InputSignal, ptr PointerState, pos Position) (next Interactable, viaReleased bool) {
	switch {
	case sig == SignalPressDown && hovering && (cur.State == StateIdle || cur.State == StateHovering):
		return Interactable{State: StatePressed, GrabX: ptr.X - pos.X, GrabY: ptr.Y - pos.Y}, false
	case sig == SignalPressUp && cur.State == StatePressed:
		return settle(hovering), true
	case cur.State == StateReleased:
		return settle(hovering), false
	case hovering && cur.State == StateIdle:
		return Interactable{State: StateHovering}, false
	case !hovering && cur.State == StateHovering:
		return Interactable{State: StateIdle}, false
	}
	return cur, false
}

func settle(hovering bool) Interactable {
	if hovering {
		return Interactable{State: StateHovering}
	}
	return Interactable{State: StateIdle}
}

// UpdateInteraction runs the interaction state machine over every node for
// one tick and returns the transitions it made, in node iteration order.
// A release is reported as two transitions, Pressed->Released followed by
// Released->Hovering (or Idle).
//
// Every node is evaluated independently, so overlapping nodes under the
// pointer are all pressed, and dragged, together.
func UpdateInteraction(store *Store, ptr PointerState, sig InputSignal) []Transition {
	var out []Transition
	store.EachNode(func(n NodeView) {
		hovering := n.Bounds().Contains(ptr.X, ptr.Y)
		cur := *n.Interactable
		next, viaReleased := nextState(cur, hovering, sig, ptr, *n.Position)
		if next == cur {
			return
		}
		if viaReleased {
			out = append(out, Transition{Entity: n.Entity, From: cur.State, To: StateReleased, Signal: sig})
			cur.State = StateReleased
		}
		out = append(out, Transition{
			Entity: n.Entity, From: cur.State, To: next.State, Signal: sig,
			GrabX: next.GrabX, GrabY: next.GrabY,
		})
		*n.Interactable = next
	})
	publishTransitions(store.World(), out)
	return out
}

func publishTransitions(w donburi.World, ts []Transition) {
	for _, t := range ts {
		TransitionEvent.Publish(w, t)
	}
}
