package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const objectPayload = `{
	"nodes": [{"id": 1, "label": "a", "is_root": true}, {"id": 2, "label": "b", "weight": 0.5}],
	"edges": [{"id": 7, "left": 1, "right": 2, "weight": 3}]
}`

func TestDecodeObject(t *testing.T) {
	g, err := Decode(strings.NewReader(objectPayload))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes %d edges", len(g.Nodes), len(g.Edges))
	}
	if !g.Nodes[0].IsRoot || g.Nodes[0].Label != "a" || g.Nodes[1].Weight != 0.5 {
		t.Errorf("nodes = %+v", g.Nodes)
	}
	if e := g.Edges[0]; e.ID != 7 || e.Left != 1 || e.Right != 2 || e.Weight != 3 {
		t.Errorf("edge = %+v", e)
	}
}

func TestDecodeTuple(t *testing.T) {
	g, err := Decode(strings.NewReader(`[[{"id": 1, "is_root": true}, {"id": 2}], [{"id": 3, "left_id": 1, "right_id": 2}]]`))
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 2 || len(g.Edges) != 1 {
		t.Fatalf("got %d nodes %d edges", len(g.Nodes), len(g.Edges))
	}
	if e := g.Edges[0]; e.Left != 1 || e.Right != 2 {
		t.Errorf("edge = %+v", e)
	}
	if _, err := g.Validate(); err != nil {
		t.Errorf("decoded graph invalid: %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name, data string
	}{
		{"empty", ""},
		{"whitespace", "  \n"},
		{"not json", "nodes: 1"},
		{"truncated", `{"nodes": [`},
		{"tuple arity", `[[], [], []]`},
		{"tuple nodes", `[{}, []]`},
		{"missing endpoint", `{"nodes": [], "edges": [{"id": 1, "left": 1}]}`},
		{"wrong type", `{"nodes": "x"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.data))
			var pe *PayloadError
			if !errors.As(err, &pe) {
				t.Fatalf("err = %v (%T), want *PayloadError", err, err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "graph.json")
	if err := os.WriteFile(path, []byte(objectPayload), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(g.Nodes) != 2 {
		t.Errorf("nodes = %d, want 2", len(g.Nodes))
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadFile(filepath.Join(dir, "missing.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file err = %v, want os.ErrNotExist", err)
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte("{"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err = LoadFile(bad)
	var pe *PayloadError
	if !errors.As(err, &pe) || pe.Source != bad {
		t.Errorf("bad file err = %v, want *PayloadError from %s", err, bad)
	}
}
