// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
)

// Rule is a horizontal or vertical line dividing content. Use
// HorizontalRule or VerticalRule to construct one.
type Rule struct {
	W, H       layout.Length
	Style      RuleStyleSheet
	horizontal bool
}

// HorizontalRule returns a rule dividing content stacked vertically,
// occupying the given vertical spacing.
func HorizontalRule(spacing float32) *Rule {
	return &Rule{W: layout.Fill, H: layout.Fixed(spacing), horizontal: true}
}

// VerticalRule returns a rule dividing content laid out side by
// side, occupying the given horizontal spacing.
func VerticalRule(spacing float32) *Rule {
	return &Rule{W: layout.Fixed(spacing), H: layout.Fill}
}

func (ru *Rule) Width() layout.Length  { return ru.W }
func (ru *Rule) Height() layout.Length { return ru.H }

func (ru *Rule) Layout(_ *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(ru.W).Height(ru.H)
	return layout.NewNode(limits.Resolve(f32.Point{}))
}

func (ru *Rule) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashRule)
	ru.W.Hash(h)
	ru.H.Hash(h)
}

func (ru *Rule) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (ru *Rule) Draw(_ *render.Renderer, _ render.Defaults, lay layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	style := ruleStyle(ru.Style)
	bounds := lay.Bounds()
	var line f32.Rectangle
	if ru.horizontal {
		offset, length := style.Mode.Fill(bounds.Dx())
		y := bounds.Min.Y + bounds.Dy()/2 - style.Width/2
		line = f32.Rect(bounds.Min.X+offset, y, length, style.Width)
	} else {
		offset, length := style.Mode.Fill(bounds.Dy())
		x := bounds.Min.X + bounds.Dx()/2 - style.Width/2
		line = f32.Rect(x, bounds.Min.Y+offset, style.Width, length)
	}
	return paint.Quad{
		Bounds:       line,
		Background:   style.Color,
		BorderRadius: style.Radius,
	}, pointer.CursorDefault
}
