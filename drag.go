package nodegraph

// ResolveDrag moves every pressed node so that it keeps the grab offset it
// had at press time: Position = pointer - grab. Nodes in any other state are
// left alone. Running it twice with the same pointer changes nothing.
func ResolveDrag(store *Store, ptr PointerState) {
	store.EachNode(func(n NodeView) {
		if !n.Interactable.Pressed() {
			return
		}
		n.Position.X = ptr.X - n.Interactable.GrabX
		n.Position.Y = ptr.Y - n.Interactable.GrabY
	})
}
