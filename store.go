package nodegraph

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// Store owns every entity of a diagram and the components attached to them.
// It is backed by a donburi world: one table per component kind, O(1) lookup
// and removal by handle.
//
// Store methods that take an Entity panic when the entity does not exist or
// lacks the requested component. Those are invariant violations, not runtime
// conditions.
type Store struct {
	world donburi.World
	nodes *donburi.Query
	edges *donburi.Query
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		world: donburi.NewWorld(),
		nodes: donburi.NewQuery(filter.Contains(
			positionComponent, dimensionComponent, originComponent, interactableComponent,
		)),
		edges: donburi.NewQuery(filter.Contains(edgeComponent)),
	}
}

// World returns the underlying donburi world. Systems outside this package
// may query it directly; the component tables are not exported, so doing so
// is limited to entity bookkeeping and events.
func (s *Store) World() donburi.World {
	return s.world
}

// CreateNode allocates a node entity with the four required components plus
// its source label. The interaction state starts at StateIdle.
func (s *Store) CreateNode(pos Position, dim Dimension, origin Origin, label Label) Entity {
	e := s.world.Create(positionComponent, dimensionComponent, originComponent, interactableComponent, labelComponent)
	entry := s.world.Entry(e)
	positionComponent.SetValue(entry, pos)
	dimensionComponent.SetValue(entry, dim)
	originComponent.SetValue(entry, origin)
	interactableComponent.SetValue(entry, Interactable{State: StateIdle})
	labelComponent.SetValue(entry, label)
	return e
}

// CreateEdge allocates an edge entity between two existing node entities.
// Panics if either endpoint is missing.
func (s *Store) CreateEdge(edge Edge) Entity {
	s.mustNode(edge.Left, "CreateEdge left")
	s.mustNode(edge.Right, "CreateEdge right")
	e := s.world.Create(edgeComponent)
	edgeComponent.SetValue(s.world.Entry(e), edge)
	return e
}

// Valid reports whether e refers to a live entity.
func (s *Store) Valid(e Entity) bool {
	return s.world.Valid(e)
}

// IsNode reports whether e is a live node entity.
func (s *Store) IsNode(e Entity) bool {
	return s.world.Valid(e) && s.world.Entry(e).HasComponent(interactableComponent)
}

// IsEdge reports whether e is a live edge entity.
func (s *Store) IsEdge(e Entity) bool {
	return s.world.Valid(e) && s.world.Entry(e).HasComponent(edgeComponent)
}

// Position returns a pointer to the node's position. Writes through the
// pointer update the store.
func (s *Store) Position(e Entity) *Position {
	return positionComponent.Get(s.mustEntry(e, positionComponent, "Position"))
}

// Dimension returns the node's dimension.
func (s *Store) Dimension(e Entity) Dimension {
	return dimensionComponent.GetValue(s.mustEntry(e, dimensionComponent, "Dimension"))
}

// Origin returns the node's origin.
func (s *Store) Origin(e Entity) Origin {
	return originComponent.GetValue(s.mustEntry(e, originComponent, "Origin"))
}

// Interactable returns a pointer to the node's interaction state.
func (s *Store) Interactable(e Entity) *Interactable {
	return interactableComponent.Get(s.mustEntry(e, interactableComponent, "Interactable"))
}

// Label returns the node's source label.
func (s *Store) Label(e Entity) Label {
	return labelComponent.GetValue(s.mustEntry(e, labelComponent, "Label"))
}

// Edge returns the edge component of an edge entity.
func (s *Store) Edge(e Entity) Edge {
	return edgeComponent.GetValue(s.mustEntry(e, edgeComponent, "Edge"))
}

// Bounds returns the node's rectangle in canvas coordinates.
func (s *Store) Bounds(e Entity) Rect {
	entry := s.mustNode(e, "Bounds")
	return Bounds(positionComponent.GetValue(entry), dimensionComponent.GetValue(entry), originComponent.GetValue(entry))
}

// NodeView is the set of node components handed to EachNode callbacks.
// Position and Interactable point into the store and may be written.
type NodeView struct {
	Entity       Entity
	Position     *Position
	Dimension    Dimension
	Origin       Origin
	Interactable *Interactable
}

// Bounds returns the node's rectangle in canvas coordinates.
func (v NodeView) Bounds() Rect {
	return Bounds(*v.Position, v.Dimension, v.Origin)
}

// EachNode calls fn for every node entity. fn must not create or remove
// entities.
func (s *Store) EachNode(fn func(NodeView)) {
	s.nodes.Each(s.world, func(entry *donburi.Entry) {
		fn(NodeView{
			Entity:       entry.Entity(),
			Position:     positionComponent.Get(entry),
			Dimension:    dimensionComponent.GetValue(entry),
			Origin:       originComponent.GetValue(entry),
			Interactable: interactableComponent.Get(entry),
		})
	})
}

// EachEdge calls fn for every edge entity. fn must not create or remove
// entities.
func (s *Store) EachEdge(fn func(Entity, Edge)) {
	s.edges.Each(s.world, func(entry *donburi.Entry) {
		fn(entry.Entity(), edgeComponent.GetValue(entry))
	})
}

// NodeCount returns the number of node entities.
func (s *Store) NodeCount() int {
	return s.nodes.Count(s.world)
}

// EdgeCount returns the number of edge entities.
func (s *Store) EdgeCount() int {
	return s.edges.Count(s.world)
}

// Remove deletes an entity. Removing a node that an edge still references
// leaves the edge dangling; callers remove edges first.
func (s *Store) Remove(e Entity) {
	if !s.world.Valid(e) {
		panic(fmt.Sprintf("nodegraph: Remove on invalid entity %v", e))
	}
	s.world.Remove(e)
}

// Clear removes every node and edge entity.
func (s *Store) Clear() {
	var all []Entity
	s.edges.Each(s.world, func(entry *donburi.Entry) {
		all = append(all, entry.Entity())
	})
	s.nodes.Each(s.world, func(entry *donburi.Entry) {
		all = append(all, entry.Entity())
	})
	for _, e := range all {
		s.world.Remove(e)
	}
}

func (s *Store) mustEntry(e Entity, c donburi.IComponentType, op string) *donburi.Entry {
	if !s.world.Valid(e) {
		panic(fmt.Sprintf("nodegraph: %s on invalid entity %v", op, e))
	}
	entry := s.world.Entry(e)
	if !entry.HasComponent(c) {
		panic(fmt.Sprintf("nodegraph: %s: entity %v has no such component", op, e))
	}
	return entry
}

func (s *Store) mustNode(e Entity, op string) *donburi.Entry {
	return s.mustEntry(e, interactableComponent, op)
}
