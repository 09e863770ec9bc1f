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

// Modal layers overlay content over a base widget. While shown, the
// overlay is exclusively input: events inside the overlay bounds
// dispatch to the overlay, and a press anywhere else dismisses the
// modal.
type Modal struct {
	Base    Widget
	Overlay Widget
	Show    bool
	// OnDismiss is the message pushed when a press lands outside
	// the overlay.
	OnDismiss any
	// Backdrop dims the base content while the modal is shown. The
	// zero value means translucent black.
	Backdrop color.NRGBA
	// Style decorates the overlay surface.
	Style ContainerStyleSheet
}

func (m *Modal) Width() layout.Length  { return m.Base.Width() }
func (m *Modal) Height() layout.Length { return m.Base.Height() }

func (m *Modal) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	base := m.Base.Layout(r, limits)
	size := base.Size()
	if !m.Show {
		return layout.NewNodeChildren(size, []layout.Node{base})
	}
	overlay := m.Overlay.Layout(r, layout.NewLimits(f32.Point{}, size))
	overlay.Align(layout.Middle, layout.Middle, size)
	return layout.NewNodeChildren(size, []layout.Node{base, overlay})
}

func (m *Modal) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashModal)
	hashBool(h, m.Show)
	m.Base.HashLayout(h)
	if m.Show {
		m.Overlay.HashLayout(h)
	}
}

func (m *Modal) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	if !m.Show {
		return m.Base.OnEvent(e, lay.Child(0), cursor, r, q)
	}
	overlay := lay.Child(1)
	if overlay.Bounds().Contains(cursor) {
		return m.Overlay.OnEvent(e, overlay, cursor, r, q)
	}
	if isClickPress(e) {
		q.Push(m.OnDismiss)
		return event.Captured
	}
	return event.Ignored
}

func (m *Modal) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	if !m.Show {
		return m.Base.Draw(r, defaults, lay.Child(0), cursor, viewport)
	}

	// The base is inert while the modal is shown; suppress its
	// hover feedback.
	base, _ := m.Base.Draw(r, defaults, lay.Child(0), f32.Pt(-1, -1), viewport)
	overlayLay := lay.Child(1)

	style := containerStyle(m.Style)
	overlayDefaults := defaults
	if style.TextColor != (color.NRGBA{}) {
		overlayDefaults.TextColor = style.TextColor
	}
	content, cur := m.Overlay.Draw(r, overlayDefaults, overlayLay, cursor, viewport)

	backdrop := m.Backdrop
	if backdrop == (color.NRGBA{}) {
		backdrop = color.NRGBA{A: 0x80}
	}
	items := []paint.Primitive{
		paint.Quad{Bounds: viewport, Background: backdrop},
	}
	if style.Background != (color.NRGBA{}) || style.BorderWidth > 0 {
		items = append(items, paint.Quad{
			Bounds:       overlayLay.Bounds(),
			Background:   style.Background,
			BorderRadius: style.BorderRadius,
			BorderWidth:  style.BorderWidth,
			BorderColor:  style.BorderColor,
		})
	}
	if content != nil {
		items = append(items, content)
	}

	r.BeginLayer(viewport)
	r.EndLayer(paint.Group{Items: items})
	return base, cur
}
