// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/exp/shiny/iconvg"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
)

// Icon displays an IconVG graphic, rasterized at the laid-out size
// on first draw and reused until the size or color changes.
type Icon struct {
	// Color tints the icon.
	Color color.RGBA
	// Size is the icon side length. Zero means 24.
	Size float32
	src  []byte

	// Cached raster.
	handle   paint.ImageHandle
	imgSize  int
	imgColor color.RGBA
}

// NewIcon returns a new Icon from IconVG data.
func NewIcon(data []byte) (*Icon, error) {
	_, err := iconvg.DecodeMetadata(data)
	if err != nil {
		return nil, err
	}
	return &Icon{src: data, Color: color.RGBA{A: 0xff}}, nil
}

func (ic *Icon) Width() layout.Length  { return layout.Fixed(ic.side()) }
func (ic *Icon) Height() layout.Length { return layout.Fixed(ic.side()) }

func (ic *Icon) Layout(_ *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(ic.Width()).Height(ic.Height())
	return layout.NewNode(limits.Resolve(f32.Point{}))
}

func (ic *Icon) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashIcon)
	hashFloat(h, ic.side())
}

func (ic *Icon) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (ic *Icon) Draw(_ *render.Renderer, _ render.Defaults, lay layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	bounds := lay.Bounds()
	sz := int(bounds.Dx() + .5)
	if sz <= 0 {
		return nil, pointer.CursorDefault
	}
	return paint.Image{Handle: ic.image(sz), Bounds: bounds}, pointer.CursorDefault
}

func (ic *Icon) side() float32 {
	if ic.Size > 0 {
		return ic.Size
	}
	return 24
}

func (ic *Icon) image(sz int) paint.ImageHandle {
	if sz == ic.imgSize && ic.Color == ic.imgColor {
		return ic.handle
	}
	m, _ := iconvg.DecodeMetadata(ic.src)
	dx, dy := m.ViewBox.AspectRatio()
	img := image.NewRGBA(image.Rectangle{Max: image.Point{X: sz, Y: int(float32(sz) * dy / dx)}})
	var ico iconvg.Rasterizer
	ico.SetDstImage(img, img.Bounds(), draw.Src)
	m.Palette[0] = ic.Color
	iconvg.Decode(&ico, ic.src, &iconvg.DecodeOptions{
		Palette: &m.Palette,
	})
	ic.handle = paint.ImageFromImage(img)
	ic.imgSize = sz
	ic.imgColor = ic.Color
	return ic.handle
}
