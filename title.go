package letterfield

import (
	"unicode"
	"unicode/utf8"
)

// SpaceWidthEm is the fixed width of a whitespace glyph, in ems.
const SpaceWidthEm = 0.35

// TextAlign controls horizontal placement of the glyph row inside the title
// container.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // glyph row starts at the container's left edge (default)
	TextAlignCenter                  // glyph row is centered in the container
	TextAlignRight                   // glyph row ends at the container's right edge
)

// Glyph is one visible character of the title.
type Glyph struct {
	Index int
	Char  rune

	// Layout box relative to the title container, before Transform.
	Box Rect

	// Transform is animated by the engine through an Animator.
	Transform Transform
}

// Bounds returns the rendered bounding box relative to the container: the
// layout box translated by the offset and scaled about its own center.
func (g *Glyph) Bounds() Rect {
	s := g.Transform.Scale
	w, h := g.Box.Width*s, g.Box.Height*s
	c := g.Box.Center()
	return Rect{
		X:      c.X + g.Transform.OffsetX - w/2,
		Y:      c.Y + g.Transform.OffsetY - h/2,
		Width:  w,
		Height: h,
	}
}

// IsSpace reports whether the glyph renders as fixed-width whitespace.
func (g *Glyph) IsSpace() bool {
	return unicode.IsSpace(g.Char)
}

// Title is a line of text decomposed into individually animated glyphs.
type Title struct {
	Content string
	Font    Font
	Align   TextAlign
	Color   Color

	// Transform moves, scales and fades the whole row about the container
	// center. It is visual only: hit testing and glyph centers ignore it.
	Transform Transform

	box         Rect // container in screen space
	glyphs      []*Glyph
	rowWidth    float64
	layoutDirty bool
}

// NewTitle creates a title with the given content and font. Glyphs are not
// created until Decompose is called.
func NewTitle(content string, font Font) *Title {
	return &Title{Content: content, Font: font, Color: ColorWhite, Transform: Rest}
}

// Decompose splits Content into one Glyph per rune, in order. It is a no-op
// if the title already has glyphs or has no font, and safe on a nil title.
func (t *Title) Decompose() {
	if t == nil || t.Font == nil || len(t.glyphs) > 0 {
		return
	}
	t.glyphs = make([]*Glyph, 0, utf8.RuneCountInString(t.Content))
	for _, r := range t.Content {
		t.glyphs = append(t.glyphs, &Glyph{
			Index:     len(t.glyphs),
			Char:      r,
			Transform: Rest,
		})
	}
	t.layoutDirty = true
	t.layout()
}

// Glyphs returns the decomposed glyphs in index order. The returned slice
// MUST NOT be mutated.
func (t *Title) Glyphs() []*Glyph {
	if t == nil {
		return nil
	}
	return t.glyphs
}

// Len returns the number of glyphs.
func (t *Title) Len() int {
	if t == nil {
		return 0
	}
	return len(t.glyphs)
}

// Bounds returns the container rectangle in screen space.
func (t *Title) Bounds() Rect {
	if t == nil {
		return Rect{}
	}
	t.layout()
	return t.box
}

// SetBounds moves or resizes the container and re-lays out the glyph row.
func (t *Title) SetBounds(r Rect) {
	if t == nil {
		return
	}
	t.box = r
	t.layoutDirty = true
	t.layout()
}

// ToLocal converts a screen-space point to container-relative coordinates.
func (t *Title) ToLocal(x, y float64) Vec2 {
	b := t.Bounds()
	return Vec2{X: x - b.X, Y: y - b.Y}
}

// GlyphCenters returns each glyph's rendered center relative to the
// container's top-left corner, index-aligned with Glyphs.
func (t *Title) GlyphCenters() []Vec2 {
	if t == nil || len(t.glyphs) == 0 {
		return nil
	}
	t.layout()
	centers := make([]Vec2, len(t.glyphs))
	for i, g := range t.glyphs {
		centers[i] = g.Bounds().Center()
	}
	return centers
}

// glyphWidth returns the advance of a single glyph. Whitespace uses the fixed
// SpaceWidthEm width so spacing does not depend on the face.
func (t *Title) glyphWidth(r rune) float64 {
	if unicode.IsSpace(r) {
		return SpaceWidthEm * t.Font.Size()
	}
	w, _ := t.Font.MeasureString(string(r))
	return w
}

// layout recomputes glyph boxes if dirty.
func (t *Title) layout() {
	if !t.layoutDirty || t.Font == nil {
		return
	}
	t.layoutDirty = false

	lh := t.Font.LineHeight()
	x := 0.0
	for _, g := range t.glyphs {
		w := t.glyphWidth(g.Char)
		g.Box = Rect{X: x, Y: 0, Width: w, Height: lh}
		x += w
	}
	t.rowWidth = x

	if t.box.Width < t.rowWidth {
		t.box.Width = t.rowWidth
	}
	if t.box.Height < lh {
		t.box.Height = lh
	}

	var shift float64
	switch t.Align {
	case TextAlignCenter:
		shift = (t.box.Width - t.rowWidth) / 2
	case TextAlignRight:
		shift = t.box.Width - t.rowWidth
	}
	shiftY := (t.box.Height - lh) / 2
	for _, g := range t.glyphs {
		g.Box.X += shift
		g.Box.Y += shiftY
	}
}
