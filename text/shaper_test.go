// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"testing"

	nsareg "eliasnaur.com/font/noto/sans/arabic/regular"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/font/opentype"
)

func testShaper(t *testing.T, fonts ...[]byte) *Shaper {
	t.Helper()
	var collection []font.FontFace
	for _, data := range fonts {
		face, err := opentype.Parse(data)
		if err != nil {
			t.Fatalf("failed parsing test font: %v", err)
		}
		collection = append(collection, font.FontFace{Face: face})
	}
	return NewShaper(collection)
}

func TestMeasureWrapping(t *testing.T) {
	s := testShaper(t, goregular.TTF)
	params := Parameters{PxPerEm: fixed.I(16), MaxWidth: 2000}
	txt := "hello beautiful world"
	wide := s.MeasureString(params, txt)
	if wide.X <= 0 || wide.Y <= 0 {
		t.Fatalf("got non-positive size %v", wide)
	}
	params.MaxWidth = int(wide.X) / 2
	narrow := s.MeasureString(params, txt)
	if narrow.Y <= wide.Y {
		t.Errorf("wrapped height %v, want greater than unwrapped %v", narrow.Y, wide.Y)
	}
	if narrow.X > float32(params.MaxWidth) {
		t.Errorf("wrapped width %v exceeds max width %d", narrow.X, params.MaxWidth)
	}
}

func TestMeasureNewlines(t *testing.T) {
	s := testShaper(t, goregular.TTF)
	params := Parameters{PxPerEm: fixed.I(14), MaxWidth: 2000}
	one := s.MeasureString(params, "alpha")
	three := s.MeasureString(params, "alpha\nbeta\ngamma")
	if three.Y <= one.Y*2 {
		t.Errorf("three-line height %v, want more than twice single-line height %v", three.Y, one.Y)
	}
	if three.X < one.X {
		t.Errorf("three-line width %v narrower than single line %v", three.X, one.X)
	}
}

func TestHitTest(t *testing.T) {
	s := testShaper(t, goregular.TTF)
	params := Parameters{PxPerEm: fixed.I(16), MaxWidth: 2000}
	txt := "abc def"
	sz := s.MeasureString(params, txt)

	hit, ok := s.HitTest(params, txt, f32.Pt(1, sz.Y/2), false)
	if !ok {
		t.Fatal("no hit for interior point")
	}
	if hit.Nearest {
		t.Error("expected direct hit for interior point, got nearest")
	}
	if got, want := hit.Index, 0; got != want {
		t.Errorf("got index %d, want %d", got, want)
	}

	hit, ok = s.HitTest(params, txt, f32.Pt(sz.X+100, sz.Y/2), false)
	if !ok {
		t.Fatal("no hit for outside point")
	}
	if !hit.Nearest {
		t.Error("expected nearest hit for outside point")
	}
	if got, want := hit.Index, len(txt)-1; got != want {
		t.Errorf("got index %d, want %d", got, want)
	}
	if hit.Delta == (f32.Point{}) {
		t.Error("nearest hit has zero delta")
	}

	hit, ok = s.HitTest(params, txt, f32.Pt(1, sz.Y/2), true)
	if !ok || !hit.Nearest {
		t.Error("nearest-only hit test did not report a nearest hit")
	}

	if _, ok := s.HitTest(params, "", f32.Pt(0, 0), false); ok {
		t.Error("got a hit in empty text")
	}
}

func TestMeasureBidi(t *testing.T) {
	s := testShaper(t, goregular.TTF, nsareg.TTF)
	params := Parameters{PxPerEm: fixed.I(16), MaxWidth: 2000}
	mixed := "hello مرحبا world"
	sz := s.MeasureString(params, mixed)
	if sz.X <= 0 || sz.Y <= 0 {
		t.Fatalf("got non-positive size %v", sz)
	}
	latin := s.MeasureString(params, "hello  world")
	if sz.X <= latin.X {
		t.Errorf("mixed-direction width %v, want greater than latin-only %v", sz.X, latin.X)
	}
	hit, ok := s.HitTest(params, mixed, f32.Pt(sz.X/2, sz.Y/2), false)
	if !ok {
		t.Fatal("no hit in mixed-direction text")
	}
	if hit.Index < 0 || hit.Index >= len([]rune(mixed)) {
		t.Errorf("hit index %d out of range", hit.Index)
	}
}

func TestShaperTrim(t *testing.T) {
	s := testShaper(t, goregular.TTF)
	params := Parameters{PxPerEm: fixed.I(16), MaxWidth: 200}
	s.MeasureString(params, "one")
	s.MeasureString(params, "two")
	s.Trim()
	s.MeasureString(params, "one")
	s.Trim()
	if got, want := len(s.cache.m), 1; got != want {
		t.Errorf("got %d cached layouts, want %d", got, want)
	}
	if _, ok := s.cache.Get(layoutKey{ppem: params.PxPerEm, maxWidth: params.MaxWidth, str: "one"}); !ok {
		t.Error("recently used layout was evicted")
	}
}
