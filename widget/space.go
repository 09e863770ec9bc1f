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

// Space is an empty widget used to separate or fill.
type Space struct {
	W, H layout.Length
}

func (s *Space) Width() layout.Length  { return s.W }
func (s *Space) Height() layout.Length { return s.H }

func (s *Space) Layout(_ *render.Renderer, limits layout.Limits) layout.Node {
	limits = limits.Width(s.W).Height(s.H)
	return layout.NewNode(limits.Resolve(f32.Point{}))
}

func (s *Space) HashLayout(h *maphash.Hash) {
	h.WriteByte(hashSpace)
	s.W.Hash(h)
	s.H.Hash(h)
}

func (s *Space) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (s *Space) Draw(_ *render.Renderer, _ render.Defaults, _ layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	return nil, pointer.CursorDefault
}
