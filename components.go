package nodegraph

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// Entity is an opaque handle owned by a Store.
type Entity = donburi.Entity

// Position is a node's location in canvas pixels. What point of the node it
// denotes depends on the node's Origin.
type Position struct {
	X, Y float64
}

// Dimension is a node's width and height in canvas pixels.
type Dimension struct {
	W, H float64
}

// InteractionState is the per-node hover/press state.
type InteractionState uint8

const (
	StateIdle     InteractionState = iota // pointer elsewhere, not pressed
	StateHovering                         // pointer over the node
	StatePressed                          // grabbed; follows the pointer until released
	StateReleased                         // just released; settles to Hovering or Idle
)

func (s InteractionState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateHovering:
		return "hovering"
	case StatePressed:
		return "pressed"
	case StateReleased:
		return "released"
	default:
		return fmt.Sprintf("InteractionState(%d)", uint8(s))
	}
}

// Interactable holds a node's interaction state. GrabX and GrabY are only
// meaningful in StatePressed: they are the pointer position minus the node
// position at the moment of press.
type Interactable struct {
	State        InteractionState
	GrabX, GrabY float64
}

// Pressed reports whether the node is currently grabbed.
func (i Interactable) Pressed() bool {
	return i.State == StatePressed
}

// Edge connects two node entities. It lives on its own entity.
type Edge struct {
	Left, Right Entity
	ID          int64
	Weight      float64
}

// Label carries the source graph node's identity on its entity.
type Label struct {
	ID     int64
	Text   string
	Weight float64
}

// Component types registered with donburi.
var (
	positionComponent     = donburi.NewComponentType[Position]()
	dimensionComponent    = donburi.NewComponentType[Dimension]()
	originComponent       = donburi.NewComponentType[Origin]()
	interactableComponent = donburi.NewComponentType[Interactable]()
	edgeComponent         = donburi.NewComponentType[Edge]()
	labelComponent        = donburi.NewComponentType[Label]()
)
