// SPDX-License-Identifier: Unlicense OR MIT

// Package layout computes positioned widget trees from size
// constraints. Containers narrow the limits offered by their parent
// and resolve children depth first; the result is a tree of Nodes
// consumed by the event and draw passes.
package layout

import (
	"encoding/binary"
	"hash/maphash"
	"math"
	"strconv"

	"frostui.org/f32"
)

// Length describes how a widget is sized along one axis relative to
// the space offered by its parent.
//
// The zero value is Shrink.
type Length struct {
	kind   uint8
	amount float32
}

const (
	lengthShrink uint8 = iota
	lengthFill
	lengthFixed
)

var (
	// Shrink sizes the widget to its intrinsic content.
	Shrink = Length{}
	// Fill claims all remaining space, sharing equally with other
	// fill lengths.
	Fill = Length{kind: lengthFill, amount: 1}
)

// FillPortion claims remaining space proportionally to weight
// relative to the other fill lengths on the same axis. Fill is
// FillPortion(1).
func FillPortion(weight uint16) Length {
	return Length{kind: lengthFill, amount: float32(weight)}
}

// Fixed sizes the widget to exactly units, clamped to the limits
// offered.
func Fixed(units float32) Length {
	return Length{kind: lengthFixed, amount: units}
}

// FillFactor returns the weight of a fill length, or zero for Shrink
// and Fixed.
func (l Length) FillFactor() uint16 {
	if l.kind == lengthFill {
		return uint16(l.amount)
	}
	return 0
}

// Hash folds the length into h.
func (l Length) Hash(h *maphash.Hash) {
	var buf [5]byte
	buf[0] = l.kind
	binary.LittleEndian.PutUint32(buf[1:], math.Float32bits(l.amount))
	h.Write(buf[:])
}

func (l Length) String() string {
	switch l.kind {
	case lengthShrink:
		return "Shrink"
	case lengthFill:
		if l.amount == 1 {
			return "Fill"
		}
		return "FillPortion(" + strconv.FormatFloat(float64(l.amount), 'g', -1, 32) + ")"
	case lengthFixed:
		return "Fixed(" + strconv.FormatFloat(float64(l.amount), 'g', -1, 32) + ")"
	default:
		panic("unreachable")
	}
}

// Limits are the acceptable size range offered to a widget during
// layout: a minimum, a maximum and the fill size a fill length
// resolves to.
type Limits struct {
	min, max, fill f32.Point
}

// NewLimits returns limits with the given range. The fill size
// starts at max.
func NewLimits(min, max f32.Point) Limits {
	return Limits{min: min, max: max, fill: max}
}

// Min returns the minimum size.
func (l Limits) Min() f32.Point { return l.min }

// Max returns the maximum size.
func (l Limits) Max() f32.Point { return l.max }

// Loose removes the minimum size.
func (l Limits) Loose() Limits {
	l.min = f32.Point{}
	return l
}

// Width narrows the limits according to a width policy. Fixed pins
// the width, Shrink lowers the fill width to the minimum and fill
// lengths keep it at the maximum.
func (l Limits) Width(width Length) Limits {
	switch width.kind {
	case lengthShrink:
		l.fill.X = l.min.X
	case lengthFill:
		if l.fill.X > l.max.X {
			l.fill.X = l.max.X
		}
	case lengthFixed:
		w := clamp(width.amount, l.min.X, l.max.X)
		l.min.X = w
		l.max.X = w
		l.fill.X = w
	}
	return l
}

// Height narrows the limits according to a height policy. See Width.
func (l Limits) Height(height Length) Limits {
	switch height.kind {
	case lengthShrink:
		l.fill.Y = l.min.Y
	case lengthFill:
		if l.fill.Y > l.max.Y {
			l.fill.Y = l.max.Y
		}
	case lengthFixed:
		h := clamp(height.amount, l.min.Y, l.max.Y)
		l.min.Y = h
		l.max.Y = h
		l.fill.Y = h
	}
	return l
}

// MinWidth raises the minimum width, bounded by the maximum.
func (l Limits) MinWidth(w float32) Limits {
	if w > l.min.X {
		l.min.X = w
	}
	if l.min.X > l.max.X {
		l.min.X = l.max.X
	}
	return l
}

// MaxWidth lowers the maximum width, bounded by the minimum.
func (l Limits) MaxWidth(w float32) Limits {
	if w < l.max.X {
		l.max.X = w
	}
	if l.max.X < l.min.X {
		l.max.X = l.min.X
	}
	if l.fill.X > l.max.X {
		l.fill.X = l.max.X
	}
	return l
}

// MinHeight raises the minimum height, bounded by the maximum.
func (l Limits) MinHeight(h float32) Limits {
	if h > l.min.Y {
		l.min.Y = h
	}
	if l.min.Y > l.max.Y {
		l.min.Y = l.max.Y
	}
	return l
}

// MaxHeight lowers the maximum height, bounded by the minimum.
func (l Limits) MaxHeight(h float32) Limits {
	if h < l.max.Y {
		l.max.Y = h
	}
	if l.max.Y < l.min.Y {
		l.max.Y = l.min.Y
	}
	if l.fill.Y > l.max.Y {
		l.fill.Y = l.max.Y
	}
	return l
}

// Shrink reduces the limits by size on both axes, clamping at zero.
func (l Limits) Shrink(size f32.Point) Limits {
	l.min.X = positive(l.min.X - size.X)
	l.min.Y = positive(l.min.Y - size.Y)
	l.max.X = positive(l.max.X - size.X)
	l.max.Y = positive(l.max.Y - size.Y)
	l.fill.X = positive(l.fill.X - size.X)
	l.fill.Y = positive(l.fill.Y - size.Y)
	return l
}

// Inset reduces the limits by the space an inset occupies.
func (l Limits) Inset(in Inset) Limits {
	return l.Shrink(f32.Pt(in.Horizontal(), in.Vertical()))
}

// Resolve clamps an intrinsic content size into the limits. The fill
// size takes precedence over the content size, so a fixed or fill
// narrowed axis resolves to its pinned size regardless of content.
func (l Limits) Resolve(intrinsic f32.Point) f32.Point {
	w := intrinsic.X
	if w > l.max.X {
		w = l.max.X
	}
	if w < l.fill.X {
		w = l.fill.X
	}
	h := intrinsic.Y
	if h > l.max.Y {
		h = l.max.Y
	}
	if h < l.fill.Y {
		h = l.fill.Y
	}
	return f32.Point{X: w, Y: h}
}

// Inset adds space around a widget.
type Inset struct {
	Top, Right, Bottom, Left float32
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32) Inset {
	return Inset{Top: v, Right: v, Bottom: v, Left: v}
}

// Horizontal returns the width the inset occupies.
func (in Inset) Horizontal() float32 { return in.Left + in.Right }

// Vertical returns the height the inset occupies.
func (in Inset) Vertical() float32 { return in.Top + in.Bottom }

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Main returns the size component along the axis.
func (a Axis) Main(size f32.Point) float32 {
	if a == Horizontal {
		return size.X
	}
	return size.Y
}

// Cross returns the size component across the axis.
func (a Axis) Cross(size f32.Point) float32 {
	if a == Horizontal {
		return size.Y
	}
	return size.X
}

// Pack combines main and cross components into a point.
func (a Axis) Pack(main, cross float32) f32.Point {
	if a == Horizontal {
		return f32.Point{X: main, Y: cross}
	}
	return f32.Point{X: cross, Y: main}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// Alignment is the mutual alignment of a list of widgets.
type Alignment uint8

const (
	Start Alignment = iota
	Middle
	End
)

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case Middle:
		return "Middle"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}

func clamp(v, min, max float32) float32 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}

func positive(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}
