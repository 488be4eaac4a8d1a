// Package nodegraph renders a directed graph as an interactive node-link
// diagram: nodes can be hovered and dragged, edges are drawn as lines
// between connected nodes, and node positions come from the graph's
// connectivity.
//
// # Quick start
//
// The simplest way to get started is [Run], which opens an [Ebitengine]
// window and drives the diagram for you:
//
//	d := nodegraph.New(nodegraph.DefaultOptions())
//	if err := d.Load(graph); err != nil {
//		log.Fatal(err)
//	}
//	nodegraph.Run(d, nodegraph.RunConfig{Title: "graph"})
//
// For other hosts, feed pointer events to [Diagram.HandleEvent] and attach a
// render loop with [Diagram.AttachLoop] using any [FrameScheduler] and
// [Canvas]. cmd/nodegraph-wasm does this for a DOM canvas driven by
// requestAnimationFrame.
//
// # Entities
//
// Every node and edge is an entity in a [Store], backed by a [Donburi]
// world. Node entities carry [Position], [Dimension], [Origin], and
// [Interactable]; edge entities carry a single [Edge] that references two
// node entities.
//
// [Layout] is the only way entities are created: it walks the graph
// breadth-first from its root and places nodes on a row-major grid in
// discovery order. Nodes not reachable from the root are omitted.
//
// # Ticks
//
// Each pointer event runs one tick, in order:
//
//   - [BroadcastPointer] translates the page coordinate to the canvas and
//     stores it in the diagram's [PointerState].
//   - [UpdateInteraction] moves each node between Idle, Hovering, Pressed,
//     and Released and publishes a [Transition] per change on
//     [TransitionEvent].
//   - [ResolveDrag] moves pressed nodes to follow the pointer.
//
// Rendering is separate: [Renderer.Render] runs once per animation frame
// through a [RenderLoop], which keeps re-arming itself until stopped.
//
// [Ebitengine]: https://ebitengine.org
// [Donburi]: https://github.com/yohamta/donburi
package nodegraph
