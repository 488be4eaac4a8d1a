// Package source loads the graph payload a nodegraph.Diagram lays out, from
// a file or over HTTP.
//
// The payload is JSON, either an object
//
//	{"nodes": [{"id": 1, "label": "a", "is_root": true}], "edges": [{"id": 7, "left": 1, "right": 2, "weight": 1}]}
//
// or a two-element array [[nodes...], [edges...]]. Edge endpoints may also be
// spelled left_id and right_id.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/phanxgames/nodegraph"
)

// PayloadError reports a payload that is not a graph.
type PayloadError struct {
	Source string // file path or URL; empty for Decode
	Err    error
}

func (e *PayloadError) Error() string {
	if e.Source == "" {
		return "malformed graph payload: " + e.Err.Error()
	}
	return fmt.Sprintf("malformed graph payload from %s: %v", e.Source, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// wireEdge accepts both endpoint spellings.
type wireEdge struct {
	ID      int64   `json:"id"`
	Left    *int64  `json:"left"`
	Right   *int64  `json:"right"`
	LeftID  *int64  `json:"left_id"`
	RightID *int64  `json:"right_id"`
	Weight  float64 `json:"weight"`
}

func (w wireEdge) edge() (nodegraph.GraphEdge, error) {
	left, right := w.Left, w.Right
	if left == nil {
		left = w.LeftID
	}
	if right == nil {
		right = w.RightID
	}
	if left == nil || right == nil {
		return nodegraph.GraphEdge{}, fmt.Errorf("edge %d: missing endpoint", w.ID)
	}
	return nodegraph.GraphEdge{ID: w.ID, Left: *left, Right: *right, Weight: w.Weight}, nil
}

type wireGraph struct {
	Nodes []nodegraph.GraphNode `json:"nodes"`
	Edges []wireEdge            `json:"edges"`
}

// Decode reads one graph payload from r.
func Decode(r io.Reader) (nodegraph.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nodegraph.Graph{}, &PayloadError{Err: err}
	}
	g, err := decode(data)
	if err != nil {
		return nodegraph.Graph{}, &PayloadError{Err: err}
	}
	return g, nil
}

func decode(data []byte) (nodegraph.Graph, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nodegraph.Graph{}, errors.New("empty payload")
	}

	var wg wireGraph
	switch data[0] {
	case '{':
		if err := json.Unmarshal(data, &wg); err != nil {
			return nodegraph.Graph{}, err
		}
	case '[':
		var tuple []json.RawMessage
		if err := json.Unmarshal(data, &tuple); err != nil {
			return nodegraph.Graph{}, err
		}
		if len(tuple) != 2 {
			return nodegraph.Graph{}, fmt.Errorf("tuple payload has %d elements, want 2", len(tuple))
		}
		if err := json.Unmarshal(tuple[0], &wg.Nodes); err != nil {
			return nodegraph.Graph{}, fmt.Errorf("nodes: %w", err)
		}
		if err := json.Unmarshal(tuple[1], &wg.Edges); err != nil {
			return nodegraph.Graph{}, fmt.Errorf("edges: %w", err)
		}
	default:
		return nodegraph.Graph{}, fmt.Errorf("unexpected %q at start of payload", data[0])
	}

	g := nodegraph.Graph{Nodes: wg.Nodes, Edges: make([]nodegraph.GraphEdge, 0, len(wg.Edges))}
	for _, we := range wg.Edges {
		e, err := we.edge()
		if err != nil {
			return nodegraph.Graph{}, err
		}
		g.Edges = append(g.Edges, e)
	}
	return g, nil
}

// LoadFile reads a graph payload from a file.
func LoadFile(path string) (nodegraph.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nodegraph.Graph{}, fmt.Errorf("load graph: %w", err)
	}
	g, err := decode(data)
	if err != nil {
		return nodegraph.Graph{}, &PayloadError{Source: path, Err: err}
	}
	return g, nil
}
