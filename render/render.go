// SPDX-License-Identifier: Unlicense OR MIT

// Package render provides the renderer front-end shared by all
// backends: drawing defaults, overlay layers and the capability
// contracts a backend may implement.
package render

import (
	"image"
	"image/color"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/paint"
	"frostui.org/text"
)

// Backend is the minimal contract of a rendering backend. Optional
// capabilities are advertised by also implementing TextBackend,
// ImageBackend or SvgBackend.
type Backend interface {
	// TrimMeasurements evicts measurement cache entries not used
	// since the previous call. It is called once per layout pass.
	TrimMeasurements()
}

// TextBackend is implemented by backends that can measure text.
type TextBackend interface {
	Backend
	// DefaultTextSize is the text size used when a widget does not
	// specify one.
	DefaultTextSize() float32
	// MeasureText returns the size of contents laid out with size
	// and fnt, wrapped to fit the width of bounds.
	MeasureText(contents string, size float32, fnt font.Font, bounds f32.Point) f32.Point
	// HitTestText locates the character of contents at point. See
	// text.Shaper.HitTest for the meaning of nearestOnly.
	HitTestText(contents string, size float32, fnt font.Font, bounds f32.Point, point f32.Point, nearestOnly bool) (text.Hit, bool)
}

// ImageBackend is implemented by backends that can draw raster
// images.
type ImageBackend interface {
	Backend
	// ImageDimensions returns the pixel dimensions of the image
	// behind handle, or the zero point if the image cannot be read.
	ImageDimensions(handle paint.ImageHandle) image.Point
}

// SvgBackend is implemented by backends that can draw vector images.
type SvgBackend interface {
	Backend
	// SvgDimensions returns the viewport dimensions of the document
	// behind handle, or the zero point if the document cannot be
	// read.
	SvgDimensions(handle paint.SvgHandle) image.Point
}

// Defaults are the inherited drawing parameters a widget receives
// from its ancestors.
type Defaults struct {
	// TextColor is the color of text that does not specify its own.
	TextColor color.NRGBA
}

// NewDefaults returns the root drawing defaults: black text.
func NewDefaults() Defaults {
	return Defaults{TextColor: color.NRGBA{A: 0xff}}
}

// Layer is a primitive subtree drawn above the regular tree, clipped
// to Bounds.
type Layer struct {
	Bounds  f32.Rectangle
	Content paint.Primitive
}

// Renderer carries the state shared by the layout, event and draw
// passes of a frame: the rendering backend and the overlay layers
// collected while drawing.
//
// A Renderer is not safe for concurrent use.
type Renderer struct {
	backend Backend
	layers  []Layer
	stack   []int
}

// New constructs a Renderer over backend. A nil backend is valid; it
// measures nothing and reports zero dimensions.
func New(backend Backend) *Renderer {
	return &Renderer{backend: backend}
}

// Backend returns the rendering backend.
func (r *Renderer) Backend() Backend {
	return r.backend
}

// AfterLayout trims the backend measurement caches. It is called
// once after each layout pass.
func (r *Renderer) AfterLayout() {
	if r.backend != nil {
		r.backend.TrimMeasurements()
	}
}

// BeginLayer opens an overlay drawn above the regular primitive tree
// and clipped to bounds. Overlays paint in the order their brackets
// were begun, so an overlay begun within another draws above it.
// Each BeginLayer must be matched by an EndLayer.
func (r *Renderer) BeginLayer(bounds f32.Rectangle) {
	r.layers = append(r.layers, Layer{Bounds: bounds})
	r.stack = append(r.stack, len(r.layers)-1)
}

// EndLayer closes the most recently begun overlay, attaching its
// content.
func (r *Renderer) EndLayer(content paint.Primitive) {
	if len(r.stack) == 0 {
		panic("render: unbalanced EndLayer")
	}
	idx := r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
	r.layers[idx].Content = content
}

// Layers returns the overlay layers collected since the last Reset,
// in paint order.
func (r *Renderer) Layers() []Layer {
	if len(r.stack) > 0 {
		panic("render: unbalanced BeginLayer")
	}
	return r.layers
}

// Reset discards collected layers in preparation for a new frame.
func (r *Renderer) Reset() {
	r.layers = r.layers[:0]
	r.stack = r.stack[:0]
}

// DefaultTextSize returns the backend default text size, or zero
// without a text backend.
func (r *Renderer) DefaultTextSize() float32 {
	if tb, ok := r.backend.(TextBackend); ok {
		return tb.DefaultTextSize()
	}
	return 0
}

// MeasureText measures contents with the text backend, or reports
// zero size without one.
func (r *Renderer) MeasureText(contents string, size float32, fnt font.Font, bounds f32.Point) f32.Point {
	if tb, ok := r.backend.(TextBackend); ok {
		return tb.MeasureText(contents, size, fnt, bounds)
	}
	return f32.Point{}
}

// HitTestText hit tests contents with the text backend, or reports
// no hit without one.
func (r *Renderer) HitTestText(contents string, size float32, fnt font.Font, bounds f32.Point, point f32.Point, nearestOnly bool) (text.Hit, bool) {
	if tb, ok := r.backend.(TextBackend); ok {
		return tb.HitTestText(contents, size, fnt, bounds, point, nearestOnly)
	}
	return text.Hit{}, false
}

// ImageDimensions returns the dimensions of the image behind handle,
// or the zero point without an image backend.
func (r *Renderer) ImageDimensions(handle paint.ImageHandle) image.Point {
	if ib, ok := r.backend.(ImageBackend); ok {
		return ib.ImageDimensions(handle)
	}
	return image.Point{}
}

// SvgDimensions returns the dimensions of the document behind handle,
// or the zero point without an SVG backend.
func (r *Renderer) SvgDimensions(handle paint.SvgHandle) image.Point {
	if sb, ok := r.backend.(SvgBackend); ok {
		return sb.SvgDimensions(handle)
	}
	return image.Point{}
}
