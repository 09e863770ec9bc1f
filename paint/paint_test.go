// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image/color"
	"reflect"
	"testing"

	"frostui.org/f32"
)

func samplePrimitive() Primitive {
	return Group{Items: []Primitive{
		Quad{
			Bounds:       f32.Rect(0, 0, 100, 40),
			Background:   color.NRGBA{R: 0xff, A: 0xff},
			BorderRadius: 4,
			BorderWidth:  1,
			BorderColor:  color.NRGBA{A: 0xff},
		},
		Text{
			Content: "ok",
			Bounds:  f32.Rect(10, 10, 80, 20),
			Color:   color.NRGBA{A: 0xff},
			Size:    16,
		},
		Clip{
			Bounds: f32.Rect(0, 0, 50, 50),
			Offset: f32.Pt(0, 25),
			Content: Translate{
				Offset:  f32.Pt(5, 5),
				Content: Image{Handle: ImageFromBytes([]byte("not a real image")), Bounds: f32.Rect(0, 0, 10, 10)},
			},
		},
		Svg{Handle: SvgFromPath("icon.svg"), Bounds: f32.Rect(0, 0, 24, 24)},
		Mesh{
			Vertices: []Vertex{
				{Position: f32.Pt(0, 0), Color: color.NRGBA{R: 0xff, A: 0xff}},
				{Position: f32.Pt(10, 0), Color: color.NRGBA{G: 0xff, A: 0xff}},
				{Position: f32.Pt(0, 10), Color: color.NRGBA{B: 0xff, A: 0xff}},
			},
			Indices: []uint32{0, 1, 2},
			Size:    f32.Pt(10, 10),
		},
		Cached{Content: Quad{Bounds: f32.Rect(1, 1, 2, 2)}},
		nil,
	}}
}

func TestPortableRoundTrip(t *testing.T) {
	p := samplePrimitive()
	q := Portable(p)
	if !reflect.DeepEqual(p, q) {
		t.Errorf("portable copy differs from original:\n got %#v\nwant %#v", q, p)
	}
	if Portable(nil) != nil {
		t.Error("portable copy of nil is not nil")
	}
}

func TestPortableCopies(t *testing.T) {
	orig := Group{Items: []Primitive{Quad{Bounds: f32.Rect(0, 0, 1, 1)}}}
	cp := Portable(orig).(Group)
	orig.Items[0] = Quad{Bounds: f32.Rect(5, 5, 1, 1)}
	if got, want := cp.Items[0].(Quad).Bounds, f32.Rect(0, 0, 1, 1); got != want {
		t.Errorf("copy shares item storage with original: got %v, want %v", got, want)
	}
}

func TestPortableCustomPanics(t *testing.T) {
	defer func() {
		if err := recover(); err == nil {
			t.Error("portable copy of a backend-specific primitive didn't panic")
		}
	}()
	Portable(Group{Items: []Primitive{Custom{Job: 42}}})
}

func TestHandleIdentity(t *testing.T) {
	a := ImageFromBytes([]byte("same"))
	b := ImageFromBytes([]byte("same"))
	c := ImageFromBytes([]byte("different"))
	if a.ID() != b.ID() {
		t.Error("handles over identical data have different IDs")
	}
	if a.ID() == c.ID() {
		t.Error("handles over different data share an ID")
	}
	p1 := SvgFromPath("a.svg")
	p2 := SvgFromPath("a.svg")
	if p1.ID() != p2.ID() {
		t.Error("handles over the same path have different IDs")
	}
	u1 := ImageFromImage(nil)
	u2 := ImageFromImage(nil)
	if u1.ID() == u2.ID() {
		t.Error("decoded-image handles share an ID")
	}
}
