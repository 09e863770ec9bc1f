// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"
	"image/color"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
)

// Container decorates a single child with padding, a styled
// background and alignment within the space it is given.
type Container struct {
	Child   Widget
	W, H    layout.Length
	Padding layout.Inset
	// MaxWidth and MaxHeight bound the container size. Zero means
	// unbounded.
	MaxWidth, MaxHeight float32
	// HAlign and VAlign position the child inside spare space.
	HAlign, VAlign layout.Alignment
	Style          ContainerStyleSheet
}

func (c *Container) Width() layout.Length  { return c.W }
func (c *Container) Height() layout.Length { return c.H }

func (c *Container) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Loose()
	if c.MaxWidth > 0 {
		limits = limits.MaxWidth(c.MaxWidth)
	}
	if c.MaxHeight > 0 {
		limits = limits.MaxHeight(c.MaxHeight)
	}
	limits = limits.Width(c.W).Height(c.H).Inset(c.Padding)

	child := c.Child.Layout(r, limits.Loose())
	size := limits.Resolve(child.Size())
	child.Move(f32.Pt(c.Padding.Left, c.Padding.Top))
	child.Align(c.HAlign, c.VAlign, size)
	return layout.NewNodeChildren(
		size.Add(f32.Pt(c.Padding.Horizontal(), c.Padding.Vertical())),
		[]layout.Node{child},
	)
}

func (c *Container) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashContainer)
	c.W.Hash(h)
	c.H.Hash(h)
	hashFloat(h, c.MaxWidth)
	hashFloat(h, c.MaxHeight)
	hashFloat(h, c.Padding.Top)
	hashFloat(h, c.Padding.Right)
	hashFloat(h, c.Padding.Bottom)
	hashFloat(h, c.Padding.Left)
	h.WriteByte(byte(c.HAlign))
	h.WriteByte(byte(c.VAlign))
	c.Child.HashLayout(h)
}

func (c *Container) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	return c.Child.OnEvent(e, lay.Child(0), cursor, r, q)
}

func (c *Container) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	style := containerStyle(c.Style)
	if style.TextColor != (color.NRGBA{}) {
		defaults.TextColor = style.TextColor
	}
	child, cur := c.Child.Draw(r, defaults, lay.Child(0), cursor, viewport)

	var items []paint.Primitive
	if style.Background != (color.NRGBA{}) || style.BorderWidth > 0 {
		items = append(items, paint.Quad{
			Bounds:       lay.Bounds(),
			Background:   style.Background,
			BorderRadius: style.BorderRadius,
			BorderWidth:  style.BorderWidth,
			BorderColor:  style.BorderColor,
		})
	}
	if child != nil {
		items = append(items, child)
	}
	return paint.Group{Items: items}, cur
}
