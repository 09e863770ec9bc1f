// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the built-in user interface elements:
// leaf widgets such as Text, Rule and Image, and containers such as
// Row, Column, Scrollable and Tooltip. Every widget implements the
// Widget capability set consumed by the ui package.
package widget

import (
	"encoding/binary"
	"hash/maphash"
	"math"

	"frostui.org/f32"
	"frostui.org/font"
	"frostui.org/io/event"
	"frostui.org/io/pointer"
	"frostui.org/layout"
	"frostui.org/paint"
	"frostui.org/render"
)

// Widget is the capability set shared by every element of a user
// interface tree: sizing policy, layout, structural hashing, event
// handling and drawing.
type Widget interface {
	// Width returns the horizontal sizing policy.
	Width() layout.Length
	// Height returns the vertical sizing policy.
	Height() layout.Length
	// Layout measures the widget against limits and returns its
	// positioned node.
	Layout(r *render.Renderer, limits layout.Limits) layout.Node
	// HashLayout folds the fields that affect layout into h. Fields
	// that only affect drawing, such as colors, are left out.
	HashLayout(h *maphash.Hash)
	// OnEvent processes one event against the widget's positioned
	// node, pushing any application messages onto q. The status
	// reports whether the widget consumed the event.
	OnEvent(e event.Event, lay layout.Layout, cursor f32.Point, r *render.Renderer, q *event.Queue) event.Status
	// Draw emits the primitives for the widget within its positioned
	// node, along with the cursor shape for when the pointer is over
	// it.
	Draw(r *render.Renderer, defaults render.Defaults, lay layout.Layout, cursor f32.Point, viewport f32.Rectangle) (paint.Primitive, pointer.Cursor)
}

// Hash tags keep widgets of different kinds from hashing equal.
const (
	hashText uint8 = iota + 1
	hashRule
	hashSpace
	hashImage
	hashSvg
	hashIcon
	hashRadio
	hashToggler
	hashRow
	hashColumn
	hashContainer
	hashScrollable
	hashTooltip
	hashModal
)

func hashFloat(h *maphash.Hash, v float32) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], math.Float32bits(v))
	h.Write(buf[:])
}

func hashUint64(h *maphash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}

// hashFont folds a font descriptor into h. The typeface, variant,
// style and weight all select a different face and so a different
// measured size.
func hashFont(h *maphash.Hash, f font.Font) {
	h.WriteString(string(f.Typeface))
	h.WriteString(string(f.Variant))
	h.WriteByte(byte(f.Style))
	hashUint64(h, uint64(int64(f.Weight)))
}

func hashBool(h *maphash.Hash, v bool) {
	if v {
		h.WriteByte(1)
	} else {
		h.WriteByte(0)
	}
}

// isClickPress reports whether e begins a click: a primary mouse
// button press or a touch press.
func isClickPress(e event.Event) bool {
	pe, ok := e.(pointer.Event)
	if !ok || pe.Kind != pointer.Press {
		return false
	}
	return pe.Source == pointer.Touch || pe.Buttons.Contain(pointer.ButtonPrimary)
}

// mergeCursor prefers the cursor of widgets drawn later, which paint
// in front of earlier ones.
func mergeCursor(base, next pointer.Cursor) pointer.Cursor {
	if next != pointer.CursorDefault {
		return next
	}
	return base
}
