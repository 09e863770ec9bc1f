// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"
	"image/color"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/text"
)

// Text is a paragraph of read-only text.
type Text struct {
	Content string
	// Size is the text size. Zero selects the renderer default.
	Size float32
	// Color overrides the inherited text color when non-zero.
	Color  color.NRGBA
	Font   font.Font
	HAlign text.Alignment
	VAlign text.Alignment
	W, H   layout.Length
}

func (t *Text) Width() layout.Length  { return t.W }
func (t *Text) Height() layout.Length { return t.H }

func (t *Text) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(t.W).Height(t.H)
	measured := r.MeasureText(t.Content, t.size(r), t.Font, limits.Max())
	return layout.NewNode(limits.Resolve(measured))
}

func (t *Text) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashText)
	h.WriteString(t.Content)
	hashFloat(h, t.Size)
	hashFont(h, t.Font)
	t.W.Hash(h)
	t.H.Hash(h)
}

func (t *Text) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (t *Text) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	col := t.Color
	if col == (color.NRGBA{}) {
		col = defaults.TextColor
	}
	return paint.Text{
		Content: t.Content,
		Bounds:  lay.Bounds(),
		Color:   col,
		Size:    t.size(r),
		Font:    t.Font,
		HAlign:  t.HAlign,
		VAlign:  t.VAlign,
	}, pointer.CursorDefault
}

func (t *Text) size(r *render.Renderer) float32 {
	if t.Size != 0 {
		return t.Size
	}
	return r.DefaultTextSize()
}
