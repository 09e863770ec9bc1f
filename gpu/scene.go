// SPDX-License-Identifier: Unlicense OR MIT

package gpu

import (
	"math"

	"golang.org/x/image/math/fixed"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/font/gofont"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/text"
)

// defaultTextSize matches the headless backend.
const defaultTextSize = 16

// Layer is a flattened slice of a frame: the primitives that share
// one clip region, batched by kind in their paint order within each
// batch. Layers are drawn in slice order.
type Layer struct {
	// Bounds is the clip region of the layer in logical pixels.
	Bounds f32.Rectangle
	Quads  []paint.Quad
	Texts  []paint.Text
	Images []paint.Image
	Svgs   []paint.Svg
	Meshes []MeshDraw
	Jobs   []*Job
}

// MeshDraw is a mesh with the absolute origin it is drawn at.
type MeshDraw struct {
	Mesh   paint.Mesh
	Origin f32.Point
}

func (l *Layer) empty() bool {
	return len(l.Quads) == 0 && len(l.Texts) == 0 && len(l.Images) == 0 &&
		len(l.Svgs) == 0 && len(l.Meshes) == 0 && len(l.Jobs) == 0
}

// Backend is the GPU rendering front-end. It measures text with a
// shaper shared with the rest of the frame and flattens primitive
// trees into Layers for a device renderer to execute.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	shaper *text.Shaper
}

// New constructs a backend measuring text against collection. An
// empty collection defaults to the Go fonts.
func New(collection []font.FontFace) *Backend {
	if len(collection) == 0 {
		collection = gofont.Collection()
	}
	return &Backend{shaper: text.NewShaper(collection)}
}

// TrimMeasurements evicts text measurements not used since the
// previous call.
func (b *Backend) TrimMeasurements() {
	b.shaper.Trim()
}

// DefaultTextSize implements the text capability contract.
func (b *Backend) DefaultTextSize() float32 {
	return defaultTextSize
}

// MeasureText returns the dimensions of contents shaped at size with
// fnt, wrapped to the width of bounds.
func (b *Backend) MeasureText(contents string, size float32, fnt font.Font, bounds f32.Point) f32.Point {
	return b.shaper.MeasureString(params(size, fnt, bounds), contents)
}

// HitTestText locates the character of contents at point.
func (b *Backend) HitTestText(contents string, size float32, fnt font.Font, bounds f32.Point, point f32.Point, nearestOnly bool) (text.Hit, bool) {
	return b.shaper.HitTest(params(size, fnt, bounds), contents, point, nearestOnly)
}

func params(size float32, fnt font.Font, bounds f32.Point) text.Parameters {
	if size <= 0 {
		size = defaultTextSize
	}
	maxWidth := math.MaxInt32
	if !math.IsInf(float64(bounds.X), 1) && bounds.X < math.MaxInt32 {
		maxWidth = int(bounds.X)
	}
	return text.Parameters{
		Font:     fnt,
		PxPerEm:  fixed.Int26_6(size * 64),
		MaxWidth: maxWidth,
	}
}

// Scene flattens one frame into draw layers: the regular primitive
// tree confined to the viewport, followed by the overlay layers in
// their paint order. Nested clips intersect and open new layers;
// translations compose. A Custom primitive must carry a *Job; any
// other payload belongs to a different backend and panics.
func (b *Backend) Scene(viewport f32.Rectangle, root paint.Primitive, overlays []render.Layer) []Layer {
	s := sceneBuilder{}
	base := s.open(viewport)
	s.walk(root, f32.Point{}, base)
	for _, overlay := range overlays {
		idx := s.open(overlay.Bounds.Intersect(viewport))
		s.walk(overlay.Content, f32.Point{}, idx)
	}
	layers := s.layers[:0]
	for _, l := range s.layers {
		if !l.empty() {
			layers = append(layers, l)
		}
	}
	return layers
}

type sceneBuilder struct {
	layers []Layer
}

func (s *sceneBuilder) open(bounds f32.Rectangle) int {
	s.layers = append(s.layers, Layer{Bounds: bounds})
	return len(s.layers) - 1
}

func (s *sceneBuilder) walk(p paint.Primitive, off f32.Point, layer int) {
	switch p := p.(type) {
	case nil:
	case paint.Group:
		for _, item := range p.Items {
			s.walk(item, off, layer)
		}
	case paint.Translate:
		s.walk(p.Content, off.Add(p.Offset), layer)
	case paint.Clip:
		bounds := p.Bounds.Add(off).Intersect(s.layers[layer].Bounds)
		inner := s.open(bounds)
		s.walk(p.Content, off.Sub(p.Offset), inner)
	case paint.Quad:
		p.Bounds = p.Bounds.Add(off)
		s.layers[layer].Quads = append(s.layers[layer].Quads, p)
	case paint.Text:
		p.Bounds = p.Bounds.Add(off)
		s.layers[layer].Texts = append(s.layers[layer].Texts, p)
	case paint.Image:
		p.Bounds = p.Bounds.Add(off)
		s.layers[layer].Images = append(s.layers[layer].Images, p)
	case paint.Svg:
		p.Bounds = p.Bounds.Add(off)
		s.layers[layer].Svgs = append(s.layers[layer].Svgs, p)
	case paint.Mesh:
		s.layers[layer].Meshes = append(s.layers[layer].Meshes, MeshDraw{Mesh: p, Origin: off})
	case paint.Cached:
		s.walk(p.Content, off, layer)
	case paint.Custom:
		job, ok := p.Job.(*Job)
		if !ok {
			panic("gpu: custom primitive built for a different backend")
		}
		moved := *job
		moved.Bounds = moved.Bounds.Add(off)
		s.layers[layer].Jobs = append(s.layers[layer].Jobs, &moved)
	default:
		panic("gpu: unknown primitive")
	}
}
