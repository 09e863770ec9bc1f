// SPDX-License-Identifier: Unlicense OR MIT

// Package headless implements a software rendering backend usable
// without a display. It measures text with a real shaper, resolves
// image and SVG dimensions, and can rasterize a primitive tree into
// an image for tests and server-side rendering.
package headless

import (
	"bytes"
	"image"
	"io"
	"math"
	"os"

	_ "image/jpeg"
	_ "image/png"

	"golang.org/x/image/math/fixed"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/font/gofont"
	"frostui.org/paint"
	"frostui.org/text"
)

// defaultTextSize is the size used by widgets that do not specify
// their own.
const defaultTextSize = 16

// Backend is a software rendering backend. It implements the
// renderer capability contracts for text, images and SVG documents.
//
// A Backend is not safe for concurrent use.
type Backend struct {
	shaper *text.Shaper

	images *resourceCache[image.Image]
	dims   *resourceCache[image.Point]
}

// New constructs a backend measuring text against collection. An
// empty collection defaults to the Go fonts.
func New(collection []font.FontFace) *Backend {
	if len(collection) == 0 {
		collection = gofont.Collection()
	}
	return &Backend{
		shaper: text.NewShaper(collection),
		images: newResourceCache[image.Image](),
		dims:   newResourceCache[image.Point](),
	}
}

// TrimMeasurements evicts text measurements and decoded resources
// not used since the previous call.
func (b *Backend) TrimMeasurements() {
	b.shaper.Trim()
	b.images.frame()
	b.dims.frame()
}

// DefaultTextSize implements the text capability contract.
func (b *Backend) DefaultTextSize() float32 {
	return defaultTextSize
}

// MeasureText returns the dimensions of contents shaped at size with
// fnt, wrapped to the width of bounds.
func (b *Backend) MeasureText(contents string, size float32, fnt font.Font, bounds f32.Point) f32.Point {
	return b.shaper.MeasureString(b.params(size, fnt, bounds), contents)
}

// HitTestText locates the character of contents at point.
func (b *Backend) HitTestText(contents string, size float32, fnt font.Font, bounds f32.Point, point f32.Point, nearestOnly bool) (text.Hit, bool) {
	return b.shaper.HitTest(b.params(size, fnt, bounds), contents, point, nearestOnly)
}

func (b *Backend) params(size float32, fnt font.Font, bounds f32.Point) text.Parameters {
	if size <= 0 {
		size = defaultTextSize
	}
	maxWidth := math.MaxInt32
	if !math.IsInf(float64(bounds.X), 1) && bounds.X < math.MaxInt32 {
		maxWidth = int(bounds.X)
	}
	return text.Parameters{
		Font:     fnt,
		PxPerEm:  fixed.Int26_6(size * 64),
		MaxWidth: maxWidth,
	}
}

// ImageDimensions returns the pixel dimensions of the image behind
// handle, or the zero point if it cannot be decoded.
func (b *Backend) ImageDimensions(handle paint.ImageHandle) image.Point {
	if dims, ok := b.dims.get(handle.ID()); ok {
		return dims
	}
	var dims image.Point
	if img := handle.Image(); img != nil {
		dims = img.Bounds().Size()
	} else if r := handleReader(handle.Bytes(), handle.Path()); r != nil {
		if cfg, _, err := image.DecodeConfig(r); err == nil {
			dims = image.Pt(cfg.Width, cfg.Height)
		}
	}
	b.dims.put(handle.ID(), dims)
	return dims
}

// SvgDimensions returns the viewport dimensions of the document
// behind handle, or the zero point if it cannot be parsed.
func (b *Backend) SvgDimensions(handle paint.SvgHandle) image.Point {
	if dims, ok := b.dims.get(handle.ID()); ok {
		return dims
	}
	var dims image.Point
	if r := handleReader(handle.Bytes(), handle.Path()); r != nil {
		dims = svgDimensions(r)
	}
	b.dims.put(handle.ID(), dims)
	return dims
}

// decodeImage resolves the pixels behind handle, caching the decoded
// image across frames.
func (b *Backend) decodeImage(handle paint.ImageHandle) image.Image {
	if img, ok := b.images.get(handle.ID()); ok {
		return img
	}
	img := handle.Image()
	if img == nil {
		if r := handleReader(handle.Bytes(), handle.Path()); r != nil {
			img, _, _ = image.Decode(r)
		}
	}
	b.images.put(handle.ID(), img)
	return img
}

func handleReader(data []byte, path string) io.Reader {
	if data != nil {
		return bytes.NewReader(data)
	}
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			return bytes.NewReader(b)
		}
	}
	return nil
}

// resourceCache retains resources used since the previous frame.
// The frame method evicts stale entries and starts a new frame.
type resourceCache[T any] struct {
	res    map[uint64]T
	newRes map[uint64]T
}

func newResourceCache[T any]() *resourceCache[T] {
	return &resourceCache[T]{
		res:    make(map[uint64]T),
		newRes: make(map[uint64]T),
	}
}

func (r *resourceCache[T]) get(key uint64) (T, bool) {
	v, exists := r.res[key]
	if exists {
		r.newRes[key] = v
	}
	return v, exists
}

func (r *resourceCache[T]) put(key uint64, val T) {
	r.res[key] = val
	r.newRes[key] = val
}

func (r *resourceCache[T]) frame() {
	for k := range r.res {
		if _, exists := r.newRes[k]; !exists {
			delete(r.res, k)
		}
	}
	for k, v := range r.newRes {
		delete(r.newRes, k)
		r.res[k] = v
	}
}
