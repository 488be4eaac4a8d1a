package nodegraph

import "fmt"

// --- Constants ---

const (
	DefaultWidth      = 450 // canvas width in pixels
	DefaultHeight     = 300 // canvas height in pixels
	DefaultNodeRadius = 10  // half the default node size
)

// LayoutConfig controls grid placement of laid-out nodes.
type LayoutConfig struct {
	// NodeSize is the width and height given to every node.
	NodeSize float64
	// CellSize is the side of one grid cell. Nodes are centered in cells.
	CellSize float64
	// Columns is the number of cells per row. Zero derives it from
	// CanvasWidth / CellSize.
	Columns int
	// CanvasWidth is used only to derive Columns.
	CanvasWidth float64
	// Origin is assigned to every node entity.
	Origin Origin
}

// DefaultLayoutConfig returns the grid used when nothing is configured:
// 20px nodes in 40px cells, as many columns as fit the default canvas width.
func DefaultLayoutConfig() LayoutConfig {
	return LayoutConfig{
		NodeSize:    2 * DefaultNodeRadius,
		CellSize:    4 * DefaultNodeRadius,
		CanvasWidth: DefaultWidth,
		Origin:      OriginCenter,
	}
}

// columns returns the effective column count, at least 1.
func (c LayoutConfig) columns() int {
	if c.Columns > 0 {
		return c.Columns
	}
	if c.CellSize <= 0 {
		return 1
	}
	n := int(c.CanvasWidth / c.CellSize)
	if n < 1 {
		return 1
	}
	return n
}

// cellPosition returns the Position for the node allocated index-th.
func (c LayoutConfig) cellPosition(index int) Position {
	cols := c.columns()
	cx := (float64(index%cols) + 0.5) * c.CellSize
	cy := (float64(index/cols) + 0.5) * c.CellSize
	if c.Origin == OriginTopLeft {
		return Position{X: cx - c.NodeSize/2, Y: cy - c.NodeSize/2}
	}
	return Position{X: cx, Y: cy}
}

// LayoutResult reports what Layout created.
type LayoutResult struct {
	// Nodes maps each reachable graph node id to its entity.
	Nodes map[int64]Entity
	// Order lists node entities in allocation order (grid order).
	Order []Entity
	// Edges lists edge entities in creation order.
	Edges []Entity
	// Omitted lists graph node ids not reachable from the root.
	Omitted []int64
}

// Layout validates g and adds one node entity per node reachable from the
// root, plus one edge entity per outgoing edge of a reachable node.
//
// Nodes are discovered breadth-first from the root, following outgoing
// edges in payload order. Each node is placed in the grid cell matching its
// allocation index, so the root takes cell 0. Nodes not reachable from the
// root get no entity and are listed in LayoutResult.Omitted.
//
// The store is not touched when validation fails.
func Layout(store *Store, g Graph, cfg LayoutConfig) (LayoutResult, error) {
	rootIdx, err := g.Validate()
	if err != nil {
		return LayoutResult{}, err
	}
	if cfg.NodeSize <= 0 || cfg.CellSize <= 0 {
		return LayoutResult{}, fmt.Errorf("layout: node size %v and cell size %v must be positive", cfg.NodeSize, cfg.CellSize)
	}

	byID := make(map[int64]GraphNode, len(g.Nodes))
	for _, n := range g.Nodes {
		byID[n.ID] = n
	}
	out := make(map[int64][]GraphEdge, len(g.Nodes))
	for _, e := range g.Edges {
		out[e.Left] = append(out[e.Left], e)
	}

	res := LayoutResult{Nodes: make(map[int64]Entity, len(g.Nodes))}
	dim := Dimension{W: cfg.NodeSize, H: cfg.NodeSize}

	allocate := func(n GraphNode) Entity {
		e := store.CreateNode(cfg.cellPosition(len(res.Order)), dim, cfg.Origin,
			Label{ID: n.ID, Text: n.Label, Weight: n.Weight})
		res.Nodes[n.ID] = e
		res.Order = append(res.Order, e)
		return e
	}

	root := g.Nodes[rootIdx]
	allocate(root)
	queue := []int64{root.ID}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		from := res.Nodes[id]

		for _, ge := range out[id] {
			to, ok := res.Nodes[ge.Right]
			if !ok {
				to = allocate(byID[ge.Right])
				queue = append(queue, ge.Right)
			}
			res.Edges = append(res.Edges, store.CreateEdge(Edge{
				Left: from, Right: to, ID: ge.ID, Weight: ge.Weight,
			}))
		}
	}

	for _, n := range g.Nodes {
		if _, ok := res.Nodes[n.ID]; !ok {
			res.Omitted = append(res.Omitted, n.ID)
		}
	}
	return res, nil
}
