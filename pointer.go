package nodegraph

import "fmt"

// InputSignal identifies the kind of pointer event that started a tick.
// Signals are what happened; InteractionState is what a node is.
type InputSignal uint8

const (
	SignalNone        InputSignal = iota // no event; re-evaluate hover only
	SignalMove                           // pointer moved
	SignalPressDown                      // primary button pressed
	SignalPressUp                        // primary button released
	SignalClick                          // click; no effect on interaction state
	SignalDoubleClick                    // double click; no effect on interaction state
)

func (s InputSignal) String() string {
	switch s {
	case SignalNone:
		return "none"
	case SignalMove:
		return "move"
	case SignalPressDown:
		return "press-down"
	case SignalPressUp:
		return "press-up"
	case SignalClick:
		return "click"
	case SignalDoubleClick:
		return "double-click"
	default:
		return fmt.Sprintf("InputSignal(%d)", uint8(s))
	}
}

// PointerEvent is a raw pointer event as delivered by a host, in page
// coordinates.
type PointerEvent struct {
	Signal       InputSignal
	PageX, PageY float64
}

// PointerState is the last known pointer position in canvas-local
// coordinates. A Diagram owns one and passes it to each system explicitly.
type PointerState struct {
	X, Y float64
}

// Viewport describes where the canvas sits relative to the page coordinates
// carried by PointerEvent. CanvasLeft/CanvasTop are the canvas's page
// offset; ScrollX/ScrollY the document scroll. Hosts whose events are
// already canvas-local use the zero Viewport.
type Viewport struct {
	CanvasLeft, CanvasTop float64
	ScrollX, ScrollY      float64
}

// ToCanvas translates a page coordinate into canvas-local coordinates.
func (v Viewport) ToCanvas(pageX, pageY float64) (x, y float64) {
	return pageX - v.CanvasLeft - v.ScrollX, pageY - v.CanvasTop - v.ScrollY
}

// BroadcastPointer overwrites state with the event's canvas-local position.
// It runs first in every tick.
func BroadcastPointer(state *PointerState, ev PointerEvent, view Viewport) {
	state.X, state.Y = view.ToCanvas(ev.PageX, ev.PageY)
}
