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

// Column lays out children stacked vertically.
type Column struct {
	Children []Widget
	W, H     layout.Length
	// Spacing is the gap between adjacent children.
	Spacing float32
	// Padding surrounds the children.
	Padding layout.Inset
	// Alignment aligns children horizontally.
	Alignment layout.Alignment
}

func (co *Column) Width() layout.Length  { return co.W }
func (co *Column) Height() layout.Length { return co.H }

func (co *Column) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(co.W).Height(co.H)
	flex := layout.Flex{Axis: layout.Vertical, Spacing: co.Spacing, Alignment: co.Alignment}
	return flex.Layout(r, limits, co.Padding, flexItems(co.Children)...)
}

func (co *Column) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashColumn)
	hashFlex(h, co.W, co.H, co.Spacing, co.Padding, co.Alignment, co.Children)
}

func (co *Column) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	return dispatchChildren(co.Children, e, lay, cursor, r, q)
}

func (co *Column) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	return drawChildren(co.Children, r, defaults, lay, cursor, viewport)
}
