// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"frostui.org/f32"
	"frostui.org/internal/f32color"
	"frostui.org/paint"
	"frostui.org/render"
)

// Present rasterizes a frame into target: first the regular
// primitive tree, then the overlay layers in their paint order, each
// clipped to its bounds. Quads and images are drawn faithfully
// except that border radii are ignored; text and SVG content occupy
// their measured space but are not rasterized; meshes are
// approximated by a solid fill of their extent.
func (b *Backend) Present(target *image.RGBA, root paint.Primitive, layers []render.Layer) {
	frame := f32.Rect(
		float32(target.Rect.Min.X), float32(target.Rect.Min.Y),
		float32(target.Rect.Dx()), float32(target.Rect.Dy()),
	)
	b.raster(target, root, f32.Point{}, frame)
	for _, layer := range layers {
		b.raster(target, layer.Content, f32.Point{}, layer.Bounds.Intersect(frame))
	}
}

func (b *Backend) raster(dst *image.RGBA, p paint.Primitive, off f32.Point, clip f32.Rectangle) {
	if clip.Empty() {
		return
	}
	switch p := p.(type) {
	case nil:
	case paint.Group:
		for _, item := range p.Items {
			b.raster(dst, item, off, clip)
		}
	case paint.Translate:
		b.raster(dst, p.Content, off.Add(p.Offset), clip)
	case paint.Clip:
		bounds := p.Bounds.Add(off)
		b.raster(dst, p.Content, off.Sub(p.Offset), bounds.Intersect(clip))
	case paint.Quad:
		b.quad(dst, p, off, clip)
	case paint.Image:
		b.image(dst, p, off, clip)
	case paint.Svg:
	case paint.Text:
	case paint.Mesh:
		bounds := f32.Rectangle{Max: p.Size}.Add(off)
		if len(p.Vertices) > 0 {
			fill(dst, bounds.Intersect(clip), p.Vertices[0].Color)
		}
	case paint.Cached:
		b.raster(dst, p.Content, off, clip)
	case paint.Custom:
		panic("headless: cannot execute a backend-specific primitive")
	default:
		panic("headless: unknown primitive")
	}
}

func (b *Backend) quad(dst *image.RGBA, q paint.Quad, off f32.Point, clip f32.Rectangle) {
	bounds := q.Bounds.Add(off)
	fill(dst, bounds.Intersect(clip), q.Background)
	if q.BorderWidth <= 0 {
		return
	}
	w := q.BorderWidth
	edges := []f32.Rectangle{
		{Min: bounds.Min, Max: f32.Pt(bounds.Max.X, bounds.Min.Y+w)},
		{Min: f32.Pt(bounds.Min.X, bounds.Max.Y-w), Max: bounds.Max},
		{Min: bounds.Min, Max: f32.Pt(bounds.Min.X+w, bounds.Max.Y)},
		{Min: f32.Pt(bounds.Max.X-w, bounds.Min.Y), Max: bounds.Max},
	}
	for _, edge := range edges {
		fill(dst, edge.Intersect(clip), q.BorderColor)
	}
}

func (b *Backend) image(dst *image.RGBA, p paint.Image, off f32.Point, clip f32.Rectangle) {
	src := b.decodeImage(p.Handle)
	if src == nil {
		return
	}
	rect := iRect(p.Bounds.Add(off))
	window, ok := dst.SubImage(iRect(clip)).(*image.RGBA)
	if !ok || window.Rect.Empty() {
		return
	}
	xdraw.ApproxBiLinear.Scale(window, rect, src, src.Bounds(), xdraw.Over, nil)
}

// fill blends col over every pixel of area.
func fill(dst *image.RGBA, area f32.Rectangle, col color.NRGBA) {
	if col.A == 0 {
		return
	}
	rect := iRect(area).Intersect(dst.Rect)
	if rect.Empty() {
		return
	}
	src := f32color.LinearFromSRGB(col)
	opaque := col.A == 0xff
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if opaque {
				dst.SetRGBA(x, y, color.RGBA(col))
				continue
			}
			c := dst.RGBAAt(x, y)
			base := f32color.LinearFromSRGB(color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
			dst.Set(x, y, f32color.Over(base, src).SRGB())
		}
	}
}

func iRect(r f32.Rectangle) image.Rectangle {
	return image.Rect(
		int(r.Min.X+.5), int(r.Min.Y+.5),
		int(r.Max.X+.5), int(r.Max.Y+.5),
	)
}
