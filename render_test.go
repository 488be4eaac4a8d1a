package nodegraph

import "testing"

// recordingCanvas records every draw call in order.
type recordingCanvas struct {
	ops []drawOp
}

type drawOp struct {
	kind  string // "clear", "rect", "line"
	color Color
	a, b  Vec2 // rect: position and size; line: endpoints
	width float64
}

func (c *recordingCanvas) Clear(col Color) {
	c.ops = append(c.ops, drawOp{kind: "clear", color: col})
}

func (c *recordingCanvas) FillRect(x, y, w, h float64, col Color) {
	c.ops = append(c.ops, drawOp{kind: "rect", color: col, a: Vec2{x, y}, b: Vec2{w, h}})
}

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, col Color) {
	c.ops = append(c.ops, drawOp{kind: "line", color: col, a: Vec2{x0, y0}, b: Vec2{x1, y1}, width: width})
}

func (c *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range c.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func TestRenderEmptyStoreOnlyClears(t *testing.T) {
	c := &recordingCanvas{}
	stats := NewRenderer(DefaultPalette()).Render(c, NewStore())
	if len(c.ops) != 1 || c.ops[0].kind != "clear" || c.ops[0].color != ColorWhite {
		t.Errorf("ops = %+v, want a single white clear", c.ops)
	}
	if stats != (RenderStats{}) {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRenderOrderClearEdgesNodes(t *testing.T) {
	s := NewStore()
	a := newTestNode(s, 20, 20)
	b := newTestNode(s, 60, 20)
	s.CreateEdge(Edge{Left: a, Right: b})

	c := &recordingCanvas{}
	stats := NewRenderer(DefaultPalette()).Render(c, s)

	kinds := make([]string, len(c.ops))
	for i, op := range c.ops {
		kinds[i] = op.kind
	}
	want := []string{"clear", "line", "rect", "rect"}
	if len(kinds) != len(want) {
		t.Fatalf("ops = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("ops = %v, want %v", kinds, want)
		}
	}
	if stats.Nodes != 2 || stats.Edges != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRenderEdgeJoinsCenters(t *testing.T) {
	s := NewStore()
	a := s.CreateNode(Position{X: 0, Y: 0}, Dimension{W: 20, H: 20}, OriginTopLeft, Label{})
	b := newTestNode(s, 100, 50)
	s.CreateEdge(Edge{Left: a, Right: b})

	c := &recordingCanvas{}
	NewRenderer(DefaultPalette()).Render(c, s)
	line := c.ops[1]
	if line.a != (Vec2{10, 10}) || line.b != (Vec2{100, 50}) {
		t.Errorf("line = %v -> %v, want {10 10} -> {100 50}", line.a, line.b)
	}
	if line.width != 1 || line.color != ColorBlack {
		t.Errorf("line width %v color %+v", line.width, line.color)
	}
}

func TestRenderNodeColorsByState(t *testing.T) {
	tests := []struct {
		state InteractionState
		want  Color
	}{
		{StateIdle, ColorBlack},
		{StateHovering, ColorRed},
		{StatePressed, ColorGreen},
		{StateReleased, ColorBlack},
	}
	for _, tt := range tests {
		s := NewStore()
		e := newTestNode(s, 20, 20)
		s.Interactable(e).State = tt.state

		c := &recordingCanvas{}
		NewRenderer(DefaultPalette()).Render(c, s)
		rect := c.ops[len(c.ops)-1]
		if rect.color != tt.want {
			t.Errorf("%v: color = %+v, want %+v", tt.state, rect.color, tt.want)
		}
		if rect.a != (Vec2{10, 10}) || rect.b != (Vec2{20, 20}) {
			t.Errorf("%v: rect = %v %v", tt.state, rect.a, rect.b)
		}
	}
}

func TestRenderDanglingEdgePanics(t *testing.T) {
	s := NewStore()
	a := newTestNode(s, 20, 20)
	b := newTestNode(s, 60, 20)
	s.CreateEdge(Edge{Left: a, Right: b})
	s.Remove(b)
	expectPanic(t, func() { NewRenderer(DefaultPalette()).Render(&recordingCanvas{}, s) })
}

func TestRenderNilCanvasPanics(t *testing.T) {
	expectPanic(t, func() { NewRenderer(DefaultPalette()).Render(nil, NewStore()) })
}

func TestRenderCustomPalette(t *testing.T) {
	p := DefaultPalette()
	p.Background = Color{R: 0.1, G: 0.1, B: 0.1, A: 1}
	p.EdgeWidth = 3
	s := NewStore()
	a := newTestNode(s, 20, 20)
	s.CreateEdge(Edge{Left: a, Right: a})

	c := &recordingCanvas{}
	NewRenderer(p).Render(c, s)
	if c.ops[0].color != p.Background {
		t.Errorf("clear color = %+v", c.ops[0].color)
	}
	if c.count("line") != 1 || c.ops[1].width != 3 {
		t.Errorf("line ops = %+v", c.ops)
	}
}
