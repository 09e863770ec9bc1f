// SPDX-License-Identifier: Unlicense OR MIT

package ui_test

import (
	"hash/maphash"
	"image"
	"image/color"
	"testing"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/io/system"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/ui"
	"frostui.org/widget"
)

// countingWidget is a fixed-size widget counting its layout passes.
type countingWidget struct {
	size    f32.Point
	layouts *int
}

func (c countingWidget) Width() layout.Length  { return layout.Fixed(c.size.X) }
func (c countingWidget) Height() layout.Length { return layout.Fixed(c.size.Y) }

func (c countingWidget) Layout(_ *render.Renderer, limits layout.Limits) layout.Node {
	*c.layouts++
	limits = limits.Width(c.Width()).Height(c.Height())
	return layout.NewNode(limits.Resolve(f32.Point{}))
}

func (c countingWidget) HashLayout(h *maphash.Hash) {
	h.WriteByte(0xc0)
	c.Width().Hash(h)
	c.Height().Hash(h)
}

func (c countingWidget) OnEvent(_ event.Event, _ layout.Layout, _ f32.Point, _ *render.Renderer, _ *event.Queue) event.Status {
	return event.Ignored
}

func (c countingWidget) Draw(_ *render.Renderer, _ render.Defaults, _ layout.Layout, _ f32.Point, _ f32.Rectangle) (paint.Primitive, pointer.Cursor) {
	return nil, pointer.CursorDefault
}

func TestLayoutCacheReuse(t *testing.T) {
	r := render.New(nil)
	var layouts int
	view := func(content string, col color.NRGBA) widget.Widget {
		return &widget.Column{Children: []widget.Widget{
			countingWidget{size: f32.Pt(10, 10), layouts: &layouts},
			&widget.Text{Content: content, Size: 16, Color: col},
		}}
	}
	bounds := f32.Pt(100, 100)
	black := color.NRGBA{A: 0xff}
	red := color.NRGBA{R: 0xff, A: 0xff}

	first := ui.New(view("hello", black), bounds, r, ui.Cache{})
	if got, want := layouts, 1; got != want {
		t.Fatalf("got %d layout passes, expected %d", got, want)
	}

	// Identical tree: the cached layout is reused.
	second := ui.New(view("hello", black), bounds, r, first.IntoCache())
	if got, want := layouts, 1; got != want {
		t.Errorf("identical tree relaid out: %d passes, expected %d", got, want)
	}

	// A color change does not affect layout and reuses the cache.
	third := ui.New(view("hello", red), bounds, r, second.IntoCache())
	if got, want := layouts, 1; got != want {
		t.Errorf("color change relaid out: %d passes, expected %d", got, want)
	}

	// A content change does affect layout and recomputes.
	fourth := ui.New(view("goodbye", red), bounds, r, third.IntoCache())
	if got, want := layouts, 2; got != want {
		t.Errorf("content change: got %d layout passes, expected %d", got, want)
	}

	// New bounds invalidate the cache too.
	ui.New(view("goodbye", red), f32.Pt(50, 50), r, fourth.IntoCache())
	if got, want := layouts, 3; got != want {
		t.Errorf("bounds change: got %d layout passes, expected %d", got, want)
	}
}

// Widget fields that change the laid-out shape must invalidate the
// cache, or events would hit-test against stale bounds.
func TestLayoutCacheWidgetFields(t *testing.T) {
	r := render.New(nil)
	bounds := f32.Pt(200, 200)
	view := func(size float32) widget.Widget {
		return &widget.Column{Children: []widget.Widget{
			&widget.Radio{Label: "choice", OnClick: "picked", Size: size},
		}}
	}
	first := ui.New(view(28), bounds, r, ui.Cache{})
	second := ui.New(view(100), bounds, r, first.IntoCache())

	var q event.Queue
	press := pointer.Event{
		Kind: pointer.Press, Buttons: pointer.ButtonPrimary,
		Position: f32.Pt(60, 60),
	}
	statuses := second.Update([]event.Event{press}, f32.Pt(60, 60), r, &q)
	if got, want := statuses[0], event.Captured; got != want {
		t.Errorf("press inside the enlarged radio: got %v, expected %v", got, want)
	}
	if got, want := q.Len(), 1; got != want {
		t.Errorf("got %d messages, expected %d", got, want)
	}
}

// A font change alters text measurement, so it recomputes the layout
// even though the content is unchanged.
func TestLayoutCacheFontChange(t *testing.T) {
	r := render.New(nil)
	var layouts int
	view := func(f font.Font) widget.Widget {
		return &widget.Column{Children: []widget.Widget{
			countingWidget{size: f32.Pt(10, 10), layouts: &layouts},
			&widget.Text{Content: "hello", Size: 16, Font: f},
		}}
	}
	bounds := f32.Pt(100, 100)
	first := ui.New(view(font.Font{}), bounds, r, ui.Cache{})
	if got, want := layouts, 1; got != want {
		t.Fatalf("got %d layout passes, expected %d", got, want)
	}
	ui.New(view(font.Font{Style: font.Italic}), bounds, r, first.IntoCache())
	if got, want := layouts, 2; got != want {
		t.Errorf("font change: got %d layout passes, expected %d", got, want)
	}
}

func TestUpdateDispatchOrder(t *testing.T) {
	r := render.New(nil)
	root := &widget.Column{Children: []widget.Widget{
		&widget.Radio{Label: "a", OnClick: "a", W: layout.Fixed(50)},
	}}
	u := ui.New(root, f32.Pt(100, 100), r, ui.Cache{})

	var q event.Queue
	pressInside := pointer.Event{
		Kind: pointer.Press, Buttons: pointer.ButtonPrimary,
		Position: f32.Pt(10, 10),
	}
	moveOutside := pointer.Event{Kind: pointer.Move, Position: f32.Pt(90, 90)}
	statuses := u.Update(
		[]event.Event{pressInside, moveOutside},
		f32.Pt(10, 10), r, &q,
	)
	if got, want := len(statuses), 2; got != want {
		t.Fatalf("got %d statuses, expected %d", got, want)
	}
	if got, want := statuses[0], event.Captured; got != want {
		t.Errorf("press: got %v, expected %v", got, want)
	}
	if got, want := statuses[1], event.Ignored; got != want {
		t.Errorf("move: got %v, expected %v", got, want)
	}
	if got, want := q.Len(), 1; got != want {
		t.Errorf("got %d messages, expected %d", got, want)
	}
}

// counterProgram is a Program that counts radio clicks.
type counterProgram struct {
	clicks int
}

func (p *counterProgram) Update(message any) {
	if message == "clicked" {
		p.clicks++
	}
}

func (p *counterProgram) View() widget.Widget {
	return &widget.Column{Children: []widget.Widget{
		&widget.Radio{Label: "count", OnClick: "clicked", Selected: p.clicks > 0},
	}}
}

func TestProgramFrame(t *testing.T) {
	program := &counterProgram{}
	state := ui.NewState(program)
	r := render.New(nil)
	bounds := f32.Pt(100, 100)

	prim, _ := state.Frame(r, bounds, f32.Point{}, nil)
	if prim == nil {
		t.Fatal("frame produced no primitives")
	}
	if got, want := program.clicks, 0; got != want {
		t.Fatalf("got %d clicks before input, expected %d", got, want)
	}

	click := pointer.Event{
		Kind: pointer.Press, Buttons: pointer.ButtonPrimary,
		Position: f32.Pt(10, 10),
	}
	state.Frame(r, bounds, f32.Pt(10, 10), []event.Event{click})
	if got, want := program.clicks, 1; got != want {
		t.Errorf("got %d clicks, expected %d", got, want)
	}

	// A press outside the radio produces no message.
	state.Frame(r, bounds, f32.Pt(90, 90), []event.Event{
		pointer.Event{
			Kind: pointer.Press, Buttons: pointer.ButtonPrimary,
			Position: f32.Pt(90, 90),
		},
	})
	if got, want := program.clicks, 1; got != want {
		t.Errorf("got %d clicks after outside press, expected %d", got, want)
	}
}

// sizedProgram shows a single counting widget.
type sizedProgram struct {
	layouts int
}

func (p *sizedProgram) Update(any) {}

func (p *sizedProgram) View() widget.Widget {
	return countingWidget{size: f32.Pt(10, 10), layouts: &p.layouts}
}

func TestFrameResize(t *testing.T) {
	program := &sizedProgram{}
	state := ui.NewState(program)
	r := render.New(nil)
	bounds := f32.Pt(100, 100)

	state.Frame(r, bounds, f32.Point{}, nil)
	if got, want := program.layouts, 1; got != want {
		t.Fatalf("got %d layout passes, expected %d", got, want)
	}

	// An unchanged frame reuses the cached layout.
	state.Frame(r, bounds, f32.Point{}, nil)
	if got, want := program.layouts, 1; got != want {
		t.Errorf("unchanged frame relaid out: %d passes, expected %d", got, want)
	}

	// A resize overrides the bounds, invalidating the cache. The
	// event itself is consumed rather than dispatched.
	state.Frame(r, bounds, f32.Point{}, []event.Event{
		system.ResizeEvent{Size: image.Pt(50, 50)},
	})
	if got, want := program.layouts, 2; got != want {
		t.Errorf("resize: got %d layout passes, expected %d", got, want)
	}
}
