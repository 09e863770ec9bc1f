// SPDX-License-Identifier: Unlicense OR MIT

// Package ui assembles widget trees into frames. A UserInterface
// owns one frame's positioned layout; it reuses the previous frame's
// layout when a structural hash of the tree shows nothing that could
// affect it has changed.
package ui

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"frostui.org/f32"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
	"frostui.org/widget"
)

var hashSeed = maphash.MakeSeed()

// Cache carries a positioned layout from one frame to the next along
// with the structural hash of the tree that produced it.
type Cache struct {
	hash  uint64
	node  layout.Node
	valid bool
}

// UserInterface is the state of a single frame: the root widget and
// its positioned layout.
type UserInterface struct {
	root   widget.Widget
	bounds f32.Point
	node   layout.Node
	hash   uint64
}

// New builds the interface for a frame. The root tree is hashed over
// its layout-relevant fields and the logical bounds; when the hash
// matches cache, the cached layout is reused without laying out
// again. Otherwise the root is laid out afresh and the renderer's
// measurement caches are trimmed.
func New(root widget.Widget, bounds f32.Point, r *render.Renderer, cache Cache) *UserInterface {
	var h maphash.Hash
	h.SetSeed(hashSeed)
	root.HashLayout(&h)
	var buf [8]byte
	binary.LittleEndian.PutUint32(buf[:4], math.Float32bits(bounds.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(bounds.Y))
	h.Write(buf[:])
	sum := h.Sum64()

	ui := &UserInterface{root: root, bounds: bounds, hash: sum}
	if cache.valid && cache.hash == sum {
		ui.node = cache.node
		return ui
	}
	ui.node = root.Layout(r, layout.NewLimits(f32.Point{}, bounds))
	r.AfterLayout()
	return ui
}

// Update dispatches events through the positioned tree in order,
// accumulating application messages on q. It reports the dispatch
// status of each event.
func (ui *UserInterface) Update(events []event.Event, cursor f32.Point, r *render.Renderer, q *event.Queue) []event.Status {
	lay := layout.NewLayout(&ui.node)
	statuses := make([]event.Status, len(events))
	for i, e := range events {
		statuses[i] = ui.root.OnEvent(e, lay, cursor, r, q)
	}
	return statuses
}

// Draw walks the positioned tree and returns the frame's primitive
// tree along with the cursor shape for the current pointer position.
// Overlay layers opened during the walk are collected by the
// renderer.
func (ui *UserInterface) Draw(r *render.Renderer, cursor f32.Point) (paint.Primitive, pointer.Cursor) {
	lay := layout.NewLayout(&ui.node)
	viewport := f32.Rectangle{Max: ui.bounds}
	return ui.root.Draw(r, render.NewDefaults(), lay, cursor, viewport)
}

// IntoCache releases the layout for reuse by the next frame.
func (ui *UserInterface) IntoCache() Cache {
	return Cache{hash: ui.hash, node: ui.node, valid: true}
}
