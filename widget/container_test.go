// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image/color"
	"testing"

	"frostui.org/f32"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/widget"
)

type testContainerSheet struct {
	style widget.ContainerStyle
}

func (s testContainerSheet) Style() widget.ContainerStyle { return s.style }

func TestContainerAlignment(t *testing.T) {
	r := render.New(nil)
	child := &widget.Space{W: layout.Fixed(10), H: layout.Fixed(10)}
	c := &widget.Container{
		Child:   child,
		W:       layout.Fixed(50),
		H:       layout.Fixed(40),
		Padding: layout.UniformInset(5),
		HAlign:  layout.End,
		VAlign:  layout.End,
	}
	lay := layoutRoot(r, c, f32.Pt(100, 100))

	if got, want := lay.Bounds().Size(), f32.Pt(50, 40); got != want {
		t.Errorf("got container size %v, expected %v", got, want)
	}
	if got, want := lay.Child(0).Bounds(), f32.Rect(35, 25, 10, 10); got != want {
		t.Errorf("got child bounds %v, expected %v", got, want)
	}
}

func TestContainerShrinksToChild(t *testing.T) {
	r := render.New(nil)
	c := &widget.Container{
		Child:   &widget.Space{W: layout.Fixed(20), H: layout.Fixed(10)},
		Padding: layout.UniformInset(2),
	}
	lay := layoutRoot(r, c, f32.Pt(100, 100))
	if got, want := lay.Bounds().Size(), f32.Pt(24, 14); got != want {
		t.Errorf("got container size %v, expected %v", got, want)
	}
}

func TestContainerStyleOverridesDefaults(t *testing.T) {
	r := render.New(nil)
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	c := &widget.Container{
		Child: &widget.Text{Content: "styled"},
		Style: testContainerSheet{widget.ContainerStyle{
			TextColor:  red,
			Background: blue,
		}},
	}
	lay := layoutRoot(r, c, f32.Pt(100, 100))
	prim, _ := c.Draw(r, render.NewDefaults(), lay, f32.Pt(-1, -1), f32.Rect(0, 0, 100, 100))

	var quad *paint.Quad
	var text *paint.Text
	for _, p := range flatten(prim) {
		switch p := p.(type) {
		case paint.Quad:
			q := p
			quad = &q
		case paint.Text:
			txt := p
			text = &txt
		}
	}
	if quad == nil {
		t.Fatal("styled container painted no background")
	}
	if got, want := quad.Background, blue; got != want {
		t.Errorf("got background %v, expected %v", got, want)
	}
	if text == nil {
		t.Fatal("container painted no text")
	}
	if got, want := text.Color, red; got != want {
		t.Errorf("got text color %v, expected inherited override %v", got, want)
	}
}
