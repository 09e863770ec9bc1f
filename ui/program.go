// SPDX-License-Identifier: Unlicense OR MIT

package ui

import (
	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/io/system"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/widget"
)

// Program is an application driven by the frame loop: View builds
// the widget tree for the current application state and Update folds
// one message into that state.
type Program interface {
	Update(message any)
	View() widget.Widget
}

// State runs a Program one frame at a time. All methods must be
// called from a single goroutine; the frame passes never overlap.
type State struct {
	program Program
	cache   Cache
	queue   event.Queue
}

// NewState returns the frame loop state for a program.
func NewState(program Program) *State {
	return &State{program: program}
}

// Frame performs one complete frame pass: layout, event dispatch,
// message processing and drawing. Events gathered since the last
// frame are dispatched through the laid-out tree; the messages they
// produce are folded into the program, and if any arrived the tree
// is rebuilt before drawing. The returned primitive tree and the
// renderer's layers together form the frame's scene.
//
// System events are consumed here rather than dispatched to widgets:
// a system.ResizeEvent overrides bounds for this frame.
func (s *State) Frame(r *render.Renderer, bounds f32.Point, cursor f32.Point, events []event.Event) (paint.Primitive, pointer.Cursor) {
	events = s.filterSystem(events, &bounds)
	r.Reset()
	ui := New(s.program.View(), bounds, r, s.cache)
	if len(events) > 0 {
		ui.Update(events, cursor, r, &s.queue)
		if msgs := s.queue.Drain(); len(msgs) > 0 {
			for _, msg := range msgs {
				s.program.Update(msg)
			}
			// The state changed; rebuild the tree before drawing.
			ui = New(s.program.View(), bounds, r, ui.IntoCache())
		}
	}
	prim, cur := ui.Draw(r, cursor)
	s.cache = ui.IntoCache()
	return prim, cur
}

// filterSystem strips system events from the dispatch list, applying
// their effects. The input slice is not modified.
func (s *State) filterSystem(events []event.Event, bounds *f32.Point) []event.Event {
	found := false
	for _, e := range events {
		switch e.(type) {
		case system.ResizeEvent, system.StageEvent, system.DestroyEvent:
			found = true
		}
	}
	if !found {
		return events
	}
	filtered := make([]event.Event, 0, len(events))
	for _, e := range events {
		switch e := e.(type) {
		case system.ResizeEvent:
			*bounds = f32.Pt(float32(e.Size.X), float32(e.Size.Y))
		case system.StageEvent, system.DestroyEvent:
		default:
			filtered = append(filtered, e)
		}
	}
	return filtered
}
