package nodegraph

import "fmt"

// Canvas is the drawing surface a Renderer paints on. Coordinates are
// canvas-local pixels.
type Canvas interface {
	// Clear fills the whole canvas with c.
	Clear(c Color)
	// FillRect fills an axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// StrokeLine draws a line segment of the given width.
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
}

// Palette maps interaction states and edges to colors.
type Palette struct {
	Background Color
	Idle       Color // also used for StateReleased
	Hovering   Color
	Pressed    Color
	Edge       Color
	EdgeWidth  float64
}

// DefaultPalette returns black nodes on white, red while hovered and green
// while pressed.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorWhite,
		Idle:       ColorBlack,
		Hovering:   ColorRed,
		Pressed:    ColorGreen,
		Edge:       ColorBlack,
		EdgeWidth:  1,
	}
}

// NodeColor returns the fill color for a node in state s.
func (p Palette) NodeColor(s InteractionState) Color {
	switch s {
	case StateHovering:
		return p.Hovering
	case StatePressed:
		return p.Pressed
	default:
		return p.Idle
	}
}

// RenderStats counts what one Render call drew.
type RenderStats struct {
	Nodes int
	Edges int
}

// Renderer paints a Store onto a Canvas.
type Renderer struct {
	Palette Palette
}

// NewRenderer creates a renderer with the given palette.
func NewRenderer(p Palette) *Renderer {
	return &Renderer{Palette: p}
}

// Render clears the canvas, strokes every edge between its endpoints'
// centers, then fills every node. Edges go first so they never cover a
// node's fill.
//
// Panics if an edge references a node that no longer exists.
func (r *Renderer) Render(c Canvas, store *Store) RenderStats {
	if c == nil {
		panic("nodegraph: Render with nil canvas")
	}
	var stats RenderStats
	p := r.Palette
	c.Clear(p.Background)

	store.EachEdge(func(e Entity, edge Edge) {
		if !store.IsNode(edge.Left) || !store.IsNode(edge.Right) {
			panic(fmt.Sprintf("nodegraph: edge %v references missing node (left %v, right %v)", e, edge.Left, edge.Right))
		}
		a := store.Bounds(edge.Left).Center()
		b := store.Bounds(edge.Right).Center()
		c.StrokeLine(a.X, a.Y, b.X, b.Y, p.EdgeWidth, p.Edge)
		stats.Edges++
	})

	store.EachNode(func(n NodeView) {
		b := n.Bounds()
		c.FillRect(b.X, b.Y, b.Width, b.Height, p.NodeColor(n.Interactable.State))
		stats.Nodes++
	})
	return stats
}
