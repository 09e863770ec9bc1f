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
)

// Position is where a tooltip appears relative to the widget it
// describes.
type Position uint8

const (
	// FollowCursor positions the tooltip at the cursor.
	FollowCursor Position = iota
	// Top positions the tooltip above the widget.
	Top
	// Bottom positions the tooltip below the widget.
	Bottom
	// Left positions the tooltip to the left of the widget.
	Left
	// Right positions the tooltip to the right of the widget.
	Right
)

// Tooltip displays a line of text over its content while the cursor
// hovers over it. The tooltip is drawn in an overlay layer above the
// regular tree and kept fully inside the viewport.
type Tooltip struct {
	Content Widget
	Tip     string
	// Position places the tip relative to the content bounds.
	Position Position
	// Gap separates the tip from the content bounds.
	Gap float32
	// Padding surrounds the tip text. Zero means 5.
	Padding float32
	// TextSize is the tip size. Zero selects the renderer default.
	TextSize float32
	Font     font.Font
	// Style decorates the tip surface. Its text color, if any,
	// overrides the inherited default for the tip.
	Style ContainerStyleSheet
}

func (t *Tooltip) Width() layout.Length  { return t.Content.Width() }
func (t *Tooltip) Height() layout.Length { return t.Content.Height() }

func (t *Tooltip) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	return t.Content.Layout(r, limits)
}

// HashLayout folds only the content: the tip is measured at draw
// time and does not affect the tree layout.
func (t *Tooltip) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashTooltip)
	t.Content.HashLayout(h)
}

func (t *Tooltip) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	return t.Content.OnEvent(e, lay, cursor, r, q)
}

func (t *Tooltip) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	bounds := lay.Bounds()
	if bounds.Contains(cursor) {
		t.drawTip(r, defaults, bounds, cursor, viewport)
	}
	return t.Content.Draw(r, defaults, lay, cursor, viewport)
}

func (t *Tooltip) drawTip(r *render.Renderer, defaults render.Defaults, bounds f32.Rectangle, cursor f32.Point, viewport f32.Rectangle) {
	pad := t.padding()
	style := containerStyle(t.Style)
	textColor := style.TextColor
	if textColor == (color.NRGBA{}) {
		textColor = defaults.TextColor
	}

	size := textSize(r, t.TextSize)
	limits := layout.NewLimits(f32.Point{}, viewport.Size()).
		Shrink(f32.Pt(2*pad, 2*pad))
	textDims := r.MeasureText(t.Tip, size, t.Font, limits.Max())

	xCenter := bounds.Min.X + (bounds.Dx()-textDims.X)/2
	yCenter := bounds.Min.Y + (bounds.Dy()-textDims.Y)/2

	var origin f32.Point
	switch t.Position {
	case Top:
		origin = f32.Pt(xCenter, bounds.Min.Y-textDims.Y-t.Gap-pad)
	case Bottom:
		origin = f32.Pt(xCenter, bounds.Max.Y+t.Gap+pad)
	case Left:
		origin = f32.Pt(bounds.Min.X-textDims.X-t.Gap-pad, yCenter)
	case Right:
		origin = f32.Pt(bounds.Max.X+t.Gap+pad, yCenter)
	case FollowCursor:
		origin = f32.Pt(cursor.X, cursor.Y-textDims.Y)
	}

	tipBounds := f32.Rect(origin.X-pad, origin.Y-pad, textDims.X+2*pad, textDims.Y+2*pad)
	tipBounds = shiftInside(tipBounds, viewport)

	var items []paint.Primitive
	if style.Background != (color.NRGBA{}) || style.BorderWidth > 0 {
		items = append(items, paint.Quad{
			Bounds:       tipBounds,
			Background:   style.Background,
			BorderRadius: style.BorderRadius,
			BorderWidth:  style.BorderWidth,
			BorderColor:  style.BorderColor,
		})
	}
	items = append(items, paint.Text{
		Content: t.Tip,
		Bounds: f32.Rect(
			tipBounds.Min.X+pad, tipBounds.Min.Y+pad,
			textDims.X, textDims.Y,
		),
		Color: textColor,
		Size:  size,
		Font:  t.Font,
	})

	r.BeginLayer(viewport)
	r.EndLayer(paint.Group{Items: items})
}

func (t *Tooltip) padding() float32 {
	if t.Padding > 0 {
		return t.Padding
	}
	return 5
}

// shiftInside translates r the minimal distance on each axis that
// places it inside bounds. It never resizes r.
func shiftInside(r, bounds f32.Rectangle) f32.Rectangle {
	if r.Min.X < bounds.Min.X {
		r = r.Add(f32.Pt(bounds.Min.X-r.Min.X, 0))
	} else if r.Max.X > bounds.Max.X {
		r = r.Add(f32.Pt(bounds.Max.X-r.Max.X, 0))
	}
	if r.Min.Y < bounds.Min.Y {
		r = r.Add(f32.Pt(0, bounds.Min.Y-r.Min.Y))
	} else if r.Max.Y > bounds.Max.Y {
		r = r.Add(f32.Pt(0, bounds.Max.Y-r.Max.Y))
	}
	return r
}
