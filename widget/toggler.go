// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/text"
)

// Toggler is a switch showing an on/off value. Clicking it pushes
// the message produced by OnToggle for the flipped value.
type Toggler struct {
	On    bool
	Label string
	// OnToggle produces the message pushed when the toggler is
	// clicked, given the new value.
	OnToggle func(on bool) any
	// Size is the switch height; the switch is twice as wide. Zero
	// means 20.
	Size float32
	// Spacing is the gap between the label and the switch. Zero
	// means 10.
	Spacing float32
	// TextSize is the label size. Zero selects the renderer default.
	TextSize  float32
	Font      font.Font
	TextAlign text.Alignment
	Style     TogglerStyleSheet
	W         layout.Length
}

func (to *Toggler) Width() layout.Length  { return to.W }
func (to *Toggler) Height() layout.Length { return layout.Shrink }

func (to *Toggler) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	sz := to.size()
	children := []Widget{}
	if to.Label != "" {
		children = append(children, &Text{
			Content: to.Label,
			Size:    to.TextSize,
			Font:    to.Font,
			HAlign:  to.TextAlign,
			W:       to.W,
		})
	}
	children = append(children, &Space{W: layout.Fixed(2 * sz), H: layout.Fixed(sz)})
	row := Row{
		W:         to.W,
		Spacing:   to.spacing(),
		Alignment: layout.Middle,
		Children:  children,
	}
	return row.Layout(r, limits)
}

func (to *Toggler) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashToggler)
	h.WriteString(to.Label)
	hashFloat(h, to.size())
	hashFloat(h, to.spacing())
	hashFloat(h, to.TextSize)
	hashFont(h, to.Font)
	to.W.Hash(h)
}

func (to *Toggler) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, _ *render.Renderer, q *event.Queue) event.Status {
	if isClickPress(e) && lay.Bounds().Contains(cursor) {
		q.Push(to.OnToggle(!to.On))
		return event.Captured
	}
	return event.Ignored
}

func (to *Toggler) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	bounds := lay.Bounds()
	hovered := bounds.Contains(cursor)
	style := togglerStyle(to.Style, hovered, to.On)

	var items []paint.Primitive
	switchIdx := 0
	if to.Label != "" {
		items = append(items, paint.Text{
			Content: to.Label,
			Bounds:  lay.Child(0).Bounds(),
			Color:   defaults.TextColor,
			Size:    textSize(r, to.TextSize),
			Font:    to.Font,
			HAlign:  to.TextAlign,
			VAlign:  text.Middle,
		})
		switchIdx = 1
	}

	switchBounds := lay.Child(switchIdx).Bounds()
	h := switchBounds.Dy()
	pad := h / 10
	items = append(items, paint.Quad{
		Bounds:       switchBounds,
		Background:   style.Background,
		BorderRadius: h / 2,
		BorderWidth:  1,
		BorderColor:  style.BackgroundBorder,
	})

	knob := h - 2*pad
	knobX := switchBounds.Min.X + pad
	if to.On {
		knobX = switchBounds.Max.X - pad - knob
	}
	items = append(items, paint.Quad{
		Bounds:       f32.Rect(knobX, switchBounds.Min.Y+pad, knob, knob),
		Background:   style.Foreground,
		BorderRadius: knob / 2,
		BorderWidth:  1,
		BorderColor:  style.ForegroundBorder,
	})

	shape := pointer.CursorDefault
	if hovered {
		shape = pointer.CursorPointer
	}
	return paint.Group{Items: items}, shape
}

func (to *Toggler) size() float32 {
	if to.Size > 0 {
		return to.Size
	}
	return 20
}

func (to *Toggler) spacing() float32 {
	if to.Spacing > 0 {
		return to.Spacing
	}
	return 10
}
