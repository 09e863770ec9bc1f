// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"testing"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/widget"
)

func wheel(pos f32.Point, dy float32) pointer.Event {
	return pointer.Event{
		Kind:     pointer.Scroll,
		Source:   pointer.Mouse,
		Position: pos,
		Scroll:   f32.Pt(0, dy),
	}
}

func TestScrollableWheel(t *testing.T) {
	r := render.New(nil)
	state := new(widget.ScrollState)
	s := &widget.Scrollable{
		State: state,
		Child: &widget.Space{W: layout.Fixed(50), H: layout.Fixed(300)},
		H:     layout.Fill,
	}
	lay := layoutRoot(r, s, f32.Pt(50, 100))
	if got, want := lay.Bounds().Size(), f32.Pt(50, 100); got != want {
		t.Fatalf("got viewport size %v, expected %v", got, want)
	}

	var q event.Queue
	if got, want := s.OnEvent(wheel(f32.Pt(10, 10), 30), lay, f32.Pt(10, 10), r, &q), event.Captured; got != want {
		t.Errorf("wheel inside: got %v, expected %v", got, want)
	}
	if got, want := state.Offset(), float32(30); got != want {
		t.Errorf("got offset %f, expected %f", got, want)
	}

	// Scrolling clamps against the end of the content.
	s.OnEvent(wheel(f32.Pt(10, 10), 1000), lay, f32.Pt(10, 10), r, &q)
	if got, want := state.Offset(), float32(200); got != want {
		t.Errorf("got clamped offset %f, expected %f", got, want)
	}
	s.OnEvent(wheel(f32.Pt(10, 10), -1000), lay, f32.Pt(10, 10), r, &q)
	if got, want := state.Offset(), float32(0); got != want {
		t.Errorf("got clamped offset %f, expected %f", got, want)
	}

	if got, want := s.OnEvent(wheel(f32.Pt(200, 200), 30), lay, f32.Pt(200, 200), r, &q), event.Ignored; got != want {
		t.Errorf("wheel outside: got %v, expected %v", got, want)
	}
}

func TestScrollableTouchDrag(t *testing.T) {
	r := render.New(nil)
	state := new(widget.ScrollState)
	s := &widget.Scrollable{
		State: state,
		Child: &widget.Space{W: layout.Fixed(50), H: layout.Fixed(300)},
		H:     layout.Fill,
	}
	lay := layoutRoot(r, s, f32.Pt(50, 100))

	var q event.Queue
	s.OnEvent(touchPress(f32.Pt(25, 80)), lay, f32.Pt(25, 80), r, &q)
	move := pointer.Event{Kind: pointer.Move, Source: pointer.Touch, Position: f32.Pt(25, 30)}
	if got, want := s.OnEvent(move, lay, f32.Pt(25, 30), r, &q), event.Captured; got != want {
		t.Errorf("drag move: got %v, expected %v", got, want)
	}
	if got, want := state.Offset(), float32(50); got != want {
		t.Errorf("got drag offset %f, expected %f", got, want)
	}

	release := pointer.Event{Kind: pointer.Release, Source: pointer.Touch, Position: f32.Pt(25, 30)}
	s.OnEvent(release, lay, f32.Pt(25, 30), r, &q)
	far := pointer.Event{Kind: pointer.Move, Source: pointer.Touch, Position: f32.Pt(25, 10)}
	s.OnEvent(far, lay, f32.Pt(25, 10), r, &q)
	if got, want := state.Offset(), float32(50); got != want {
		t.Errorf("offset moved after release: got %f, expected %f", got, want)
	}
}

func TestScrollableOffsetsChildEvents(t *testing.T) {
	r := render.New(nil)
	state := new(widget.ScrollState)
	state.ScrollTo(150)
	child := &recorder{w: layout.Fixed(50), h: layout.Fixed(300), status: event.Captured}
	s := &widget.Scrollable{State: state, Child: child, H: layout.Fill}
	lay := layoutRoot(r, s, f32.Pt(50, 100))

	var q event.Queue
	if got, want := s.OnEvent(press(f32.Pt(10, 10)), lay, f32.Pt(10, 10), r, &q), event.Captured; got != want {
		t.Errorf("press inside: got %v, expected %v", got, want)
	}
	if got, want := len(child.cursors), 1; got != want {
		t.Fatalf("child saw %d events, expected %d", got, want)
	}
	if got, want := child.cursors[0], f32.Pt(10, 160); got != want {
		t.Errorf("child saw cursor %v, expected scrolled %v", got, want)
	}
}

func TestScrollableDrawClips(t *testing.T) {
	r := render.New(nil)
	state := new(widget.ScrollState)
	state.ScrollTo(40)
	s := &widget.Scrollable{
		State: state,
		Child: &widget.Space{W: layout.Fixed(50), H: layout.Fixed(300)},
		H:     layout.Fill,
	}
	lay := layoutRoot(r, s, f32.Pt(50, 100))
	prim, _ := s.Draw(r, render.NewDefaults(), lay, f32.Pt(-1, -1), f32.Rect(0, 0, 50, 100))

	clip, ok := prim.(paint.Clip)
	if !ok {
		t.Fatalf("got %T, expected a clip primitive", prim)
	}
	if got, want := clip.Bounds, f32.Rect(0, 0, 50, 100); got != want {
		t.Errorf("got clip bounds %v, expected %v", got, want)
	}
	if got, want := clip.Offset, f32.Pt(0, 40); got != want {
		t.Errorf("got clip offset %v, expected %v", got, want)
	}
}
