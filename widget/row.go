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

// Row lays out children side by side.
type Row struct {
	Children []Widget
	W, H     layout.Length
	// Spacing is the gap between adjacent children.
	Spacing float32
	// Padding surrounds the children.
	Padding layout.Inset
	// Alignment aligns children vertically.
	Alignment layout.Alignment
}

func (ro *Row) Width() layout.Length  { return ro.W }
func (ro *Row) Height() layout.Length { return ro.H }

func (ro *Row) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(ro.W).Height(ro.H)
	flex := layout.Flex{Axis: layout.Horizontal, Spacing: ro.Spacing, Alignment: ro.Alignment}
	return flex.Layout(r, limits, ro.Padding, flexItems(ro.Children)...)
}

func (ro *Row) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashRow)
	hashFlex(h, ro.W, ro.H, ro.Spacing, ro.Padding, ro.Alignment, ro.Children)
}

func (ro *Row) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	return dispatchChildren(ro.Children, e, lay, cursor, r, q)
}

func (ro *Row) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	return drawChildren(ro.Children, r, defaults, lay, cursor, viewport)
}

func flexItems(children []Widget) []layout.Item {
	items := make([]layout.Item, len(children))
	for i, c := range children {
		items[i] = c
	}
	return items
}

func hashFlex(h *maphash.Hash, w, ht layout.Length, spacing float32, padding layout.Inset, alignment layout.Alignment, children []Widget) {
	w.Hash(h)
	ht.Hash(h)
	hashFloat(h, spacing)
	h.WriteByte(byte(alignment))
	hashFloat(h, padding.Top)
	hashFloat(h, padding.Right)
	hashFloat(h, padding.Bottom)
	hashFloat(h, padding.Left)
	for _, child := range children {
		child.HashLayout(h)
	}
}

// dispatchChildren offers the event to every child in declared order
// and merges their statuses.
func dispatchChildren(children []Widget, e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	status := event.Ignored
	for i, child := range children {
		status = status.Merge(child.OnEvent(e, lay.Child(i), cursor, r, q))
	}
	return status
}

// drawChildren collects child primitives into a group in declared
// order, which is also paint order.
func drawChildren(children []Widget, r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	items := make([]paint.Primitive, 0, len(children))
	c := pointer.CursorDefault
	for i, child := range children {
		prim, childCursor := child.Draw(r, defaults, lay.Child(i), cursor, viewport)
		if prim != nil {
			items = append(items, prim)
		}
		c = mergeCursor(c, childCursor)
	}
	return paint.Group{Items: items}, c
}
