// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"
	"image"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
)

// Image displays a raster image scaled into the space offered,
// preserving its aspect ratio.
type Image struct {
	Handle paint.ImageHandle
	W, H   layout.Length
}

func (im *Image) Width() layout.Length  { return im.W }
func (im *Image) Height() layout.Length { return im.H }

func (im *Image) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	dims := r.ImageDimensions(im.Handle)
	return layout.NewNode(fitDimensions(limits.Width(im.W).Height(im.H), dims))
}

func (im *Image) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashImage)
	hashUint64(h, im.Handle.ID())
	im.W.Hash(h)
	im.H.Hash(h)
}

func (im *Image) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (im *Image) Draw(_ *render.Renderer, _ render.Defaults, lay layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	return paint.Image{Handle: im.Handle, Bounds: lay.Bounds()}, pointer.CursorDefault
}

// Svg displays a vector image scaled into the space offered,
// preserving its aspect ratio.
type Svg struct {
	Handle paint.SvgHandle
	W, H   layout.Length
}

func (s *Svg) Width() layout.Length  { return s.W }
func (s *Svg) Height() layout.Length { return s.H }

func (s *Svg) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	dims := r.SvgDimensions(s.Handle)
	return layout.NewNode(fitDimensions(limits.Width(s.W).Height(s.H), dims))
}

func (s *Svg) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashSvg)
	hashUint64(h, s.Handle.ID())
	s.W.Hash(h)
	s.H.Hash(h)
}

func (s *Svg) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (s *Svg) Draw(_ *render.Renderer, _ render.Defaults, lay layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	return paint.Svg{Handle: s.Handle, Bounds: lay.Bounds()}, pointer.CursorDefault
}

// fitDimensions resolves natural pixel dimensions into limits,
// preserving the aspect ratio. Unknown dimensions resolve to the
// smallest acceptable size.
func fitDimensions(limits layout.Limits, dims image.Point) f32.Point {
	if dims.X <= 0 || dims.Y <= 0 {
		return limits.Resolve(f32.Point{})
	}
	w, h := float32(dims.X), float32(dims.Y)
	size := limits.Resolve(f32.Pt(w, h))
	if size.X <= 0 || size.Y <= 0 {
		return size
	}
	aspect := w / h
	viewAspect := size.X / size.Y
	if viewAspect > aspect {
		size.X = w * size.Y / h
	} else if viewAspect < aspect {
		size.Y = h * size.X / w
	}
	return size
}
