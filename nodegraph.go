package nodegraph

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs when the color is handed to an ebiten image.
type Color struct {
	R, G, B, A float64
}

// Palette colors used by the default renderer.
var (
	ColorBlack = Color{0, 0, 0, 1}
	ColorWhite = Color{1, 1, 1, 1}
	ColorRed   = Color{1, 0, 0, 1}
	ColorGreen = Color{0, 1, 0, 1}
)

// ParseHexColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return Color{}, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

// Hex formats the color as "#rrggbb", dropping alpha. This is the form the
// DOM canvas accepts for fillStyle and strokeStyle.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

// RGBA implements color.Color with premultiplied components.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.toRGBA().RGBA()
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: to8(c.R * c.A),
		G: to8(c.G * c.A),
		B: to8(c.B * c.A),
		A: to8(c.A),
	}
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, and sizes.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// The left and top edges are inside; the right and bottom edges are not, so
// two rectangles sharing an edge never both contain a point on it.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Origin declares which point of a node's rectangle its Position denotes.
type Origin uint8

const (
	OriginCenter  Origin = iota // Position is the rectangle's center (layout default)
	OriginTopLeft               // Position is the rectangle's top-left corner
)

// String returns the config-file spelling of the origin.
func (o Origin) String() string {
	switch o {
	case OriginCenter:
		return "center"
	case OriginTopLeft:
		return "top-left"
	default:
		return fmt.Sprintf("Origin(%d)", uint8(o))
	}
}

// ParseOrigin parses "center" or "top-left" (also "topleft", "top_left").
func ParseOrigin(s string) (Origin, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "center":
		return OriginCenter, nil
	case "top-left", "topleft", "top_left":
		return OriginTopLeft, nil
	default:
		return 0, fmt.Errorf("parse origin %q: want \"center\" or \"top-left\"", s)
	}
}

// Bounds returns the rectangle covered by a node with the given position,
// dimension, and origin. Hit testing, rendering, and edge anchoring all go
// through this function.
func Bounds(pos Position, dim Dimension, origin Origin) Rect {
	switch origin {
	case OriginTopLeft:
		return Rect{X: pos.X, Y: pos.Y, Width: dim.W, Height: dim.H}
	case OriginCenter:
		return Rect{X: pos.X - dim.W/2, Y: pos.Y - dim.H/2, Width: dim.W, Height: dim.H}
	default:
		panic(fmt.Sprintf("nodegraph: unknown origin %d", uint8(origin)))
	}
}
