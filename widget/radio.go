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

// Radio is a circular button representing one choice of several.
// Clicking it pushes the pre-bound OnClick message.
type Radio struct {
	// Selected reports whether this choice is the current one.
	Selected bool
	Label    string
	// OnClick is the message pushed when the radio is clicked.
	OnClick any
	// Size is the button diameter. Zero means 28.
	Size float32
	// Spacing is the gap between the button and the label. Zero
	// means 15.
	Spacing float32
	// TextSize is the label size. Zero selects the renderer default.
	TextSize float32
	Font     font.Font
	Style    RadioStyleSheet
	W        layout.Length
}

func (ra *Radio) Width() layout.Length  { return ra.W }
func (ra *Radio) Height() layout.Length { return layout.Shrink }

func (ra *Radio) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	d := ra.diameter()
	row := Row{
		W:         ra.W,
		Spacing:   ra.spacing(),
		Alignment: layout.Middle,
		Children: []Widget{
			&Space{W: layout.Fixed(d), H: layout.Fixed(d)},
			&Text{Content: ra.Label, Size: ra.TextSize, Font: ra.Font, W: ra.W},
		},
	}
	return row.Layout(r, limits)
}

func (ra *Radio) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashRadio)
	h.WriteString(ra.Label)
	hashFloat(h, ra.diameter())
	hashFloat(h, ra.spacing())
	hashFloat(h, ra.TextSize)
	hashFont(h, ra.Font)
	ra.W.Hash(h)
}

func (ra *Radio) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, _ *render.Renderer, q *event.Queue) event.Status {
	if isClickPress(e) && lay.Bounds().Contains(cursor) {
		q.Push(ra.OnClick)
		return event.Captured
	}
	return event.Ignored
}

func (ra *Radio) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	bounds := lay.Bounds()
	circleBounds := lay.Child(0).Bounds()
	labelBounds := lay.Child(1).Bounds()

	hovered := bounds.Contains(cursor)
	style := radioStyle(ra.Style, hovered)
	textColor := style.TextColor
	if textColor == (color.NRGBA{}) {
		textColor = defaults.TextColor
	}

	d := circleBounds.Dx()
	items := []paint.Primitive{
		paint.Quad{
			Bounds:       circleBounds,
			Background:   style.Background,
			BorderRadius: d / 2,
			BorderWidth:  style.BorderWidth,
			BorderColor:  style.BorderColor,
		},
	}
	if ra.Selected {
		inset := d / 4
		items = append(items, paint.Quad{
			Bounds:       f32.Rect(circleBounds.Min.X+inset, circleBounds.Min.Y+inset, d-2*inset, d-2*inset),
			Background:   style.DotColor,
			BorderRadius: (d - 2*inset) / 2,
		})
	}
	items = append(items, paint.Text{
		Content: ra.Label,
		Bounds:  labelBounds,
		Color:   textColor,
		Size:    textSize(r, ra.TextSize),
		Font:    ra.Font,
		VAlign:  text.Middle,
	})

	shape := pointer.CursorDefault
	if hovered {
		shape = pointer.CursorPointer
	}
	return paint.Group{Items: items}, shape
}

func (ra *Radio) diameter() float32 {
	if ra.Size > 0 {
		return ra.Size
	}
	return 28
}

func (ra *Radio) spacing() float32 {
	if ra.Spacing > 0 {
		return ra.Spacing
	}
	return 15
}

func textSize(r *render.Renderer, size float32) float32 {
	if size != 0 {
		return size
	}
	return r.DefaultTextSize()
}
