// SPDX-License-Identifier: Unlicense OR MIT

package headless

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/paint"
	"frostui.org/render"
)

func TestMeasureText(t *testing.T) {
	b := New(nil)
	size := b.MeasureText("hello", 16, font.Font{}, f32.Pt(1000, 1000))
	if size.X <= 0 || size.Y <= 0 {
		t.Fatalf("got non-positive measurement %v", size)
	}
	narrow := b.MeasureText("hello hello hello", 16, font.Font{}, f32.Pt(size.X, 1000))
	if narrow.Y <= size.Y {
		t.Errorf("got unwrapped height %f, expected more than %f", narrow.Y, size.Y)
	}
	if got := b.MeasureText("", 16, font.Font{}, f32.Pt(1000, 1000)); got.X != 0 {
		t.Errorf("got width %f for empty text, expected zero", got.X)
	}
}

func TestMeasureTextUnboundedWidth(t *testing.T) {
	b := New(nil)
	inf := f32.Pt(float32(1e30), float32(1e30))
	size := b.MeasureText("unbounded", 16, font.Font{}, inf)
	if size.X <= 0 || size.Y <= 0 {
		t.Fatalf("got non-positive measurement %v", size)
	}
}

func TestHitTestText(t *testing.T) {
	b := New(nil)
	bounds := f32.Pt(1000, 1000)
	hit, ok := b.HitTestText("hello", 16, font.Font{}, bounds, f32.Pt(1, 5), false)
	if !ok {
		t.Fatal("got no hit on the first character")
	}
	if got, want := hit.Index, 0; got != want {
		t.Errorf("got hit index %d, expected %d", got, want)
	}
	if _, ok := b.HitTestText("", 16, font.Font{}, bounds, f32.Pt(1, 5), true); ok {
		t.Error("got a hit on empty text")
	}
}

func TestImageDimensions(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 40, 30))); err != nil {
		t.Fatal(err)
	}
	b := New(nil)
	handle := paint.ImageFromBytes(buf.Bytes())
	if got, want := b.ImageDimensions(handle), image.Pt(40, 30); got != want {
		t.Errorf("got dimensions %v, expected %v", got, want)
	}
	if got, want := b.ImageDimensions(paint.ImageFromBytes([]byte("not an image"))), (image.Point{}); got != want {
		t.Errorf("got dimensions %v for junk data, expected %v", got, want)
	}
}

func TestSvgDimensions(t *testing.T) {
	for _, test := range []struct {
		label string
		doc   string
		want  image.Point
	}{
		{
			label: "width and height",
			doc:   `<svg xmlns="http://www.w3.org/2000/svg" width="120" height="80"></svg>`,
			want:  image.Pt(120, 80),
		},
		{
			label: "px units",
			doc:   `<svg width="12px" height="8px"/>`,
			want:  image.Pt(12, 8),
		},
		{
			label: "view box fallback",
			doc:   `<svg viewBox="0 0 64 48"></svg>`,
			want:  image.Pt(64, 48),
		},
		{
			label: "malformed",
			doc:   `<p>not svg</p>`,
			want:  image.Point{},
		},
		{
			label: "unresolvable units",
			doc:   `<svg width="10em" height="10em"/>`,
			want:  image.Point{},
		},
	} {
		t.Run(test.label, func(t *testing.T) {
			if got := svgDimensions(strings.NewReader(test.doc)); got != test.want {
				t.Errorf("got %v, expected %v", got, test.want)
			}
		})
	}
}

func TestTrimEvictsDimensions(t *testing.T) {
	b := New(nil)
	handle := paint.SvgFromBytes([]byte(`<svg width="10" height="10"/>`))
	b.SvgDimensions(handle)
	if _, ok := b.dims.res[handle.ID()]; !ok {
		t.Fatal("dimensions not cached")
	}
	// Used this frame: survives one trim.
	b.TrimMeasurements()
	if _, ok := b.dims.res[handle.ID()]; !ok {
		t.Fatal("dimensions evicted while in use")
	}
	// Unused since the last trim: evicted.
	b.TrimMeasurements()
	if _, ok := b.dims.res[handle.ID()]; ok {
		t.Error("stale dimensions not evicted")
	}
}

func TestPresentPaintOrder(t *testing.T) {
	b := New(nil)
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	target := image.NewRGBA(image.Rect(0, 0, 20, 20))
	scene := paint.Group{Items: []paint.Primitive{
		paint.Quad{Bounds: f32.Rect(0, 0, 20, 20), Background: red},
		paint.Quad{Bounds: f32.Rect(5, 5, 10, 10), Background: blue},
	}}
	b.Present(target, scene, nil)

	if got, want := target.RGBAAt(1, 1), (color.RGBA{R: 0xff, A: 0xff}); got != want {
		t.Errorf("got %v outside the inner quad, expected %v", got, want)
	}
	if got, want := target.RGBAAt(10, 10), (color.RGBA{B: 0xff, A: 0xff}); got != want {
		t.Errorf("got %v inside the inner quad, expected later paint %v", got, want)
	}
}

func TestPresentClips(t *testing.T) {
	b := New(nil)
	green := color.NRGBA{G: 0xff, A: 0xff}
	target := image.NewRGBA(image.Rect(0, 0, 20, 20))
	scene := paint.Clip{
		Bounds: f32.Rect(0, 0, 10, 10),
		Content: paint.Quad{
			Bounds:     f32.Rect(0, 0, 20, 20),
			Background: green,
		},
	}
	b.Present(target, scene, nil)

	if got, want := target.RGBAAt(5, 5), (color.RGBA{G: 0xff, A: 0xff}); got != want {
		t.Errorf("got %v inside the clip, expected %v", got, want)
	}
	if got, want := target.RGBAAt(15, 15), (color.RGBA{}); got != want {
		t.Errorf("got %v outside the clip, expected untouched %v", got, want)
	}
}

func TestPresentClipOffsetScrolls(t *testing.T) {
	b := New(nil)
	green := color.NRGBA{G: 0xff, A: 0xff}
	target := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// The quad sits at y 20 in content space; an offset of 20
	// scrolls it to the top of the viewport.
	scene := paint.Clip{
		Bounds: f32.Rect(0, 0, 10, 10),
		Offset: f32.Pt(0, 20),
		Content: paint.Quad{
			Bounds:     f32.Rect(0, 20, 10, 10),
			Background: green,
		},
	}
	b.Present(target, scene, nil)
	if got, want := target.RGBAAt(5, 5), (color.RGBA{G: 0xff, A: 0xff}); got != want {
		t.Errorf("got %v, expected scrolled content %v", got, want)
	}
}

func TestPresentLayersPaintLast(t *testing.T) {
	b := New(nil)
	red := color.NRGBA{R: 0xff, A: 0xff}
	blue := color.NRGBA{B: 0xff, A: 0xff}
	target := image.NewRGBA(image.Rect(0, 0, 20, 20))
	scene := paint.Quad{Bounds: f32.Rect(0, 0, 20, 20), Background: red}
	layers := []render.Layer{{
		Bounds:  f32.Rect(0, 0, 10, 10),
		Content: paint.Quad{Bounds: f32.Rect(0, 0, 20, 20), Background: blue},
	}}
	b.Present(target, scene, layers)

	if got, want := target.RGBAAt(5, 5), (color.RGBA{B: 0xff, A: 0xff}); got != want {
		t.Errorf("got %v under the layer, expected %v", got, want)
	}
	if got, want := target.RGBAAt(15, 15), (color.RGBA{R: 0xff, A: 0xff}); got != want {
		t.Errorf("got %v outside the layer bounds, expected clipped %v", got, want)
	}
}

func TestPresentCustomPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic drawing a custom primitive")
		}
	}()
	b := New(nil)
	target := image.NewRGBA(image.Rect(0, 0, 10, 10))
	b.Present(target, paint.Custom{Job: 42}, nil)
}
