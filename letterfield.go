package letterfield

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default glyph tint.
var ColorWhite = Color{1, 1, 1, 1}

// Lerp returns the component-wise interpolation between c and to at t.
// t is clamped to [0, 1].
func (c Color) Lerp(to Color, t float64) Color {
	t = clamp(t, 0, 1)
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// RGBA converts to a non-premultiplied 8-bit color for ebiten fills.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// Vec2 is a 2D vector used for positions, offsets and glyph centers.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// EventType identifies a kind of pointer event delivered to the title.
type EventType uint8

const (
	EventPointerMove  EventType = iota // fires when the pointer moves over the title
	EventPointerEnter                  // fires when the pointer enters the title bounds
	EventPointerLeave                  // fires when the pointer leaves the title bounds
)

// String returns the event name used in debug logs.
func (e EventType) String() string {
	switch e {
	case EventPointerMove:
		return "move"
	case EventPointerEnter:
		return "enter"
	case EventPointerLeave:
		return "leave"
	default:
		return "unknown"
	}
}
