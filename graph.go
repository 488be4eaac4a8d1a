package nodegraph

import (
	"errors"
	"fmt"
)

// GraphNode is a node of the input graph. Exactly one node of a graph has
// IsRoot set.
type GraphNode struct {
	ID     int64   `json:"id"`
	Label  string  `json:"label,omitempty"`
	IsRoot bool    `json:"is_root,omitempty"`
	Weight float64 `json:"weight,omitempty"`
}

// GraphEdge is a directed edge Left -> Right of the input graph.
type GraphEdge struct {
	ID     int64   `json:"id"`
	Left   int64   `json:"left"`
	Right  int64   `json:"right"`
	Weight float64 `json:"weight,omitempty"`
}

// Graph is the payload the layout builder consumes. It is not modified.
type Graph struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// Errors reported for graphs that cannot be laid out.
var (
	ErrNoRoot        = errors.New("no root node")
	ErrMultipleRoots = errors.New("more than one root node")
	ErrDuplicateNode = errors.New("duplicate node id")
	ErrUnknownNode   = errors.New("edge references unknown node")
)

// GraphError describes why a graph was rejected. Err is one of the sentinel
// errors above; NodeID and EdgeID identify the offending element when there
// is one.
type GraphError struct {
	Err    error
	NodeID int64
	EdgeID int64
}

func (e *GraphError) Error() string {
	switch {
	case errors.Is(e.Err, ErrUnknownNode):
		return fmt.Sprintf("graph: edge %d: %v %d", e.EdgeID, e.Err, e.NodeID)
	case errors.Is(e.Err, ErrDuplicateNode), errors.Is(e.Err, ErrMultipleRoots):
		return fmt.Sprintf("graph: node %d: %v", e.NodeID, e.Err)
	default:
		return "graph: " + e.Err.Error()
	}
}

func (e *GraphError) Unwrap() error { return e.Err }

// Validate checks the graph's structural invariants and returns the root
// node's index in g.Nodes.
func (g Graph) Validate() (int, error) {
	seen := make(map[int64]struct{}, len(g.Nodes))
	root := -1
	for i, n := range g.Nodes {
		if _, dup := seen[n.ID]; dup {
			return -1, &GraphError{Err: ErrDuplicateNode, NodeID: n.ID}
		}
		seen[n.ID] = struct{}{}
		if n.IsRoot {
			if root >= 0 {
				return -1, &GraphError{Err: ErrMultipleRoots, NodeID: n.ID}
			}
			root = i
		}
	}
	for _, e := range g.Edges {
		if _, ok := seen[e.Left]; !ok {
			return -1, &GraphError{Err: ErrUnknownNode, NodeID: e.Left, EdgeID: e.ID}
		}
		if _, ok := seen[e.Right]; !ok {
			return -1, &GraphError{Err: ErrUnknownNode, NodeID: e.Right, EdgeID: e.ID}
		}
	}
	if root < 0 {
		return -1, &GraphError{Err: ErrNoRoot}
	}
	return root, nil
}
