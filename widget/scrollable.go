// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"hash/maphash"
	"math"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
)

// ScrollState is the scroll position of a Scrollable. It is owned by
// the application and survives across frames; the Scrollable widget
// referring to it is rebuilt every frame.
type ScrollState struct {
	offset float32

	dragging    bool
	dragStart   float32
	startOffset float32
}

// Offset returns the distance the content is scrolled from the top.
func (s *ScrollState) Offset() float32 {
	return s.offset
}

// ScrollTo sets the scroll offset. The offset is clamped against the
// content during the next event or draw pass.
func (s *ScrollState) ScrollTo(offset float32) {
	if offset < 0 {
		offset = 0
	}
	s.offset = offset
}

func (s *ScrollState) clamp(max float32) {
	if s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// Scrollable is a vertical viewport over a child taller than the
// space available. Content is scrolled with the wheel or by touch
// dragging, and clipped to the viewport bounds.
type Scrollable struct {
	State *ScrollState
	Child Widget
	W, H  layout.Length
	// MaxHeight bounds the viewport height. Zero means unbounded.
	MaxHeight float32
}

func (s *Scrollable) Width() layout.Length  { return s.W }
func (s *Scrollable) Height() layout.Length { return s.H }

func (s *Scrollable) Layout(r *render.Renderer, limits layout.Limits) layout.Node {
	if s.MaxHeight > 0 {
		limits = limits.MaxHeight(s.MaxHeight)
	}
	limits = limits.Width(s.W).Height(s.H)

	// The child is offered unbounded height; the viewport clips it.
	childLimits := layout.NewLimits(
		f32.Pt(limits.Min().X, 0),
		f32.Pt(limits.Max().X, float32(math.Inf(1))),
	)
	child := s.Child.Layout(r, childLimits)
	size := limits.Resolve(child.Size())
	return layout.NewNodeChildren(size, []layout.Node{child})
}

func (s *Scrollable) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashScrollable)
	s.W.Hash(h)
	s.H.Hash(h)
	hashFloat(h, s.MaxHeight)
	s.Child.HashLayout(h)
}

func (s *Scrollable) OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status {
	bounds := lay.Bounds()
	content := lay.Child(0)
	maxOffset := positiveDelta(content.Bounds().Dy(), bounds.Dy())
	s.State.clamp(maxOffset)
	inside := bounds.Contains(cursor)

	if pe, ok := e.(pointer.Event); ok {
		switch pe.Kind {
		case pointer.Scroll:
			if inside && maxOffset > 0 {
				s.State.offset += pe.Scroll.Y
				s.State.clamp(maxOffset)
				return event.Captured
			}
		case pointer.Press:
			if inside && pe.Source == pointer.Touch {
				s.State.dragging = true
				s.State.dragStart = pe.Position.Y
				s.State.startOffset = s.State.offset
			}
		case pointer.Move:
			if s.State.dragging {
				s.State.offset = s.State.startOffset - (pe.Position.Y - s.State.dragStart)
				s.State.clamp(maxOffset)
				return event.Captured
			}
		case pointer.Release, pointer.Cancel:
			if s.State.dragging {
				s.State.dragging = false
				return event.Captured
			}
		}
	}

	if !inside {
		return event.Ignored
	}
	// Content sees the cursor in its own, scrolled coordinates.
	return s.Child.OnEvent(e, content, cursor.Add(f32.Pt(0, s.State.offset)), r, q)
}

func (s *Scrollable) Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	bounds := lay.Bounds()
	content := lay.Child(0)
	maxOffset := positiveDelta(content.Bounds().Dy(), bounds.Dy())
	s.State.clamp(maxOffset)

	childCursor := f32.Pt(-1, -1)
	if bounds.Contains(cursor) {
		childCursor = cursor.Add(f32.Pt(0, s.State.offset))
	}
	child, cur := s.Child.Draw(r, defaults, content, childCursor, viewport)
	return paint.Clip{
		Bounds:  bounds,
		Offset:  f32.Pt(0, s.State.offset),
		Content: child,
	}, cur
}

func positiveDelta(content, view float32) float32 {
	if content > view {
		return content - view
	}
	return 0
}
