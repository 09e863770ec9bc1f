// SPDX-License-Identifier: Unlicense OR MIT

// Package paint defines the drawing primitives produced by widget
// draw passes. A primitive tree is backend agnostic except for the
// Custom variant, which carries a job only its origin backend can
// draw.
package paint

import (
	"image/color"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/text"
)

// Primitive is the marker interface for drawing primitives. A nil
// Primitive draws nothing.
type Primitive interface {
	ImplementsPrimitive()
}

// Group draws its items in order: later items paint over earlier
// ones.
type Group struct {
	Items []Primitive
}

// Text is a paragraph of text laid out inside Bounds.
type Text struct {
	Content string
	Bounds  f32.Rectangle
	Color   color.NRGBA
	// Size is the text size in pixels per em. Zero selects the
	// backend default.
	Size   float32
	Font   font.Font
	HAlign text.Alignment
	VAlign text.Alignment
}

// Quad is an axis-aligned rectangle with a background and an
// optional border.
type Quad struct {
	Bounds       f32.Rectangle
	Background   color.NRGBA
	BorderRadius float32
	BorderWidth  float32
	BorderColor  color.NRGBA
}

// Image displays a raster image scaled to fill Bounds.
type Image struct {
	Handle ImageHandle
	Bounds f32.Rectangle
}

// Svg displays a vector image scaled to fill Bounds.
type Svg struct {
	Handle SvgHandle
	Bounds f32.Rectangle
}

// Clip confines Content to Bounds. Offset translates the content
// towards the origin, which scrolling viewports use to bring distant
// content into view.
type Clip struct {
	Bounds  f32.Rectangle
	Offset  f32.Point
	Content Primitive
}

// Translate displaces Content by Offset.
type Translate struct {
	Offset  f32.Point
	Content Primitive
}

// Vertex is a single mesh vertex with a position in mesh coordinates
// and an associated color.
type Vertex struct {
	Position f32.Point
	Color    color.NRGBA
}

// Mesh is a triangle mesh with per-vertex colors. Geometry outside
// Size is clipped.
type Mesh struct {
	Vertices []Vertex
	// Indices address Vertices in groups of three, each group
	// forming a triangle.
	Indices []uint32
	Size    f32.Point
}

// Cached wraps a primitive subtree built once and shared between
// frames. The content must not be mutated after construction.
type Cached struct {
	Content Primitive
}

// Custom carries a backend-specific drawing job. Only the backend
// the job was built for can draw it.
type Custom struct {
	Job any
}

func (Group) ImplementsPrimitive()     {}
func (Text) ImplementsPrimitive()      {}
func (Quad) ImplementsPrimitive()      {}
func (Image) ImplementsPrimitive()     {}
func (Svg) ImplementsPrimitive()       {}
func (Clip) ImplementsPrimitive()      {}
func (Translate) ImplementsPrimitive() {}
func (Mesh) ImplementsPrimitive()      {}
func (Cached) ImplementsPrimitive()    {}
func (Custom) ImplementsPrimitive()    {}

// Portable returns a deep copy of p with no backend ties, suitable
// for caching or for replay on a different backend. It panics if the
// tree contains a Custom primitive: backend-specific jobs cannot
// outlive their backend.
func Portable(p Primitive) Primitive {
	switch p := p.(type) {
	case nil:
		return nil
	case Group:
		items := make([]Primitive, len(p.Items))
		for i, item := range p.Items {
			items[i] = Portable(item)
		}
		return Group{Items: items}
	case Text:
		return p
	case Quad:
		return p
	case Image:
		return p
	case Svg:
		return p
	case Clip:
		p.Content = Portable(p.Content)
		return p
	case Translate:
		p.Content = Portable(p.Content)
		return p
	case Mesh:
		vertices := make([]Vertex, len(p.Vertices))
		copy(vertices, p.Vertices)
		indices := make([]uint32, len(p.Indices))
		copy(indices, p.Indices)
		return Mesh{Vertices: vertices, Indices: indices, Size: p.Size}
	case Cached:
		// Cached content is immutable and may be shared as is.
		return p
	case Custom:
		panic("paint: backend-specific primitive cannot be made portable")
	default:
		panic("paint: unknown primitive")
	}
}
