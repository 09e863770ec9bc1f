// SPDX-License-Identifier: Unlicense OR MIT

// Package text implements text measurement and hit testing over a
// collection of font faces.
package text

import (
	"math"

	"golang.org/x/image/math/fixed"

	"frostui.org/f32"
)

// Alignment positions lines of text within their available width.
type Alignment uint8

const (
	Start Alignment = iota
	End
	Middle
)

// Direction is the dominant layout progression of a body of text.
type Direction uint8

const (
	LTR Direction = iota
	RTL
)

// Hit describes the character located by a hit test.
type Hit struct {
	// Index is the rune offset of the character within the text.
	Index int
	// Delta is the vector from the queried point to the centroid of
	// the nearest character. It is zero for direct hits.
	Delta f32.Point
	// Nearest reports whether the hit was resolved to the nearest
	// character instead of a direct one.
	Nearest bool
}

// Range describes the position and quantity of a range of text elements
// within a larger slice. The unit is usually runes of unicode data or
// glyphs of shaped font data.
type Range struct {
	// Count describes the number of items represented by the Range.
	Count int
	// Offset describes the start position of the represented
	// items within a larger list.
	Offset int
}

// glyph holds the measurements of a single shaped glyph.
type glyph struct {
	// clusterIndex is the rune offset of the glyph's cluster within
	// the source text.
	clusterIndex int
	// glyphCount is the number of glyphs in the same cluster as this glyph.
	glyphCount int
	// runeCount is the quantity of runes in the source text that this
	// glyph corresponds to.
	runeCount int
	// xAdvance and yAdvance describe the distance the dot moves when
	// laying out the glyph on the X or Y axis.
	xAdvance, yAdvance fixed.Int26_6
	// xOffset and yOffset are offsets from the dot applied when
	// rendering the glyph.
	xOffset, yOffset fixed.Int26_6
}

// runLayout is a sequence of shaped glyphs with common attributes.
type runLayout struct {
	// visualPosition is the index of this run within its line's
	// visual order.
	visualPosition int
	// x is the visual offset of the dot for the first glyph in this
	// run relative to the beginning of the line.
	x fixed.Int26_6
	// glyphs are ordered from left to right regardless of the
	// direction of the underlying text.
	glyphs []glyph
	// runes is the position of the text data this run represents
	// within the shaped string.
	runes Range
	// advance is the sum of the advances of all clusters in the run.
	advance fixed.Int26_6
	// direction is the layout direction of the glyphs.
	direction Direction
}

// line contains the measurements of a line of text.
type line struct {
	// runs contains sequences of shaped glyphs in logical order,
	// meaning that the first run contains the glyphs corresponding
	// to the first runes of the original text.
	runs []runLayout
	// visualOrder is a slice of indices into runs that describes the
	// visual position of each run. Iterating this slice and accessing
	// runs at each of the stored values traverses the runs in proper
	// visual order from left to right.
	visualOrder []int
	// width is the width of the line.
	width fixed.Int26_6
	// ascent is the height above the baseline.
	ascent fixed.Int26_6
	// descent is the height below the baseline, including
	// the line gap.
	descent fixed.Int26_6
	// direction is the dominant direction of the line. This direction
	// is used to order the line's content, but may not match the
	// direction of individual runs within it.
	direction Direction
	// runeCount is the number of text runes represented by this
	// line's runs.
	runeCount int
	// yOffset is the distance from the top of the text to this
	// line's baseline.
	yOffset int
}

// document holds a collection of shaped lines.
type document struct {
	lines []line
}

// calculateYOffsets positions the baseline of each line relative to
// the top of the document.
func calculateYOffsets(lines []line) {
	currentY := 0
	prevDesc := fixed.I(0)
	for i := range lines {
		ascent, descent := lines[i].ascent, lines[i].descent
		currentY += (prevDesc + ascent).Ceil()
		lines[i].yOffset = currentY
		prevDesc = descent
	}
}

// size returns the dimensions of the laid out text.
func (d document) size() f32.Point {
	var width fixed.Int26_6
	var height int
	for i := range d.lines {
		if w := d.lines[i].width; w > width {
			width = w
		}
	}
	if n := len(d.lines); n > 0 {
		last := &d.lines[n-1]
		height = last.yOffset + last.descent.Ceil()
	}
	return f32.Point{X: float32(width.Ceil()), Y: float32(height)}
}

// hitTest locates the character at point. A character's box spans its
// advance horizontally and its line's height vertically. When the
// point lies within a box and nearestOnly is false, that character is
// a direct hit. Otherwise the character with the nearest box centroid
// is reported. It returns false if the text contains no characters.
func (d document) hitTest(point f32.Point, nearestOnly bool) (Hit, bool) {
	var best Hit
	bestDist := float32(math.MaxFloat32)
	found := false
	for i := range d.lines {
		l := &d.lines[i]
		top := float32(l.yOffset - l.ascent.Ceil())
		bottom := float32(l.yOffset + l.descent.Ceil())
		for _, runIdx := range l.visualOrder {
			run := &l.runs[runIdx]
			x := fixedToFloat(run.x)
			for gi := range run.glyphs {
				g := &run.glyphs[gi]
				adv := fixedToFloat(g.xAdvance)
				if !nearestOnly &&
					x <= point.X && point.X < x+adv &&
					top <= point.Y && point.Y < bottom {
					return Hit{Index: g.clusterIndex}, true
				}
				center := f32.Point{X: x + adv/2, Y: (top + bottom) / 2}
				delta := center.Sub(point)
				if dist := delta.X*delta.X + delta.Y*delta.Y; dist < bestDist {
					bestDist = dist
					best = Hit{Index: g.clusterIndex, Delta: delta, Nearest: true}
					found = true
				}
				x += adv
			}
		}
	}
	return best, found
}

func fixedToFloat(i fixed.Int26_6) float32 {
	return float32(i) / 64.0
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("invalid Alignment")
	}
}

func (d Direction) String() string {
	switch d {
	case LTR:
		return "LTR"
	case RTL:
		return "RTL"
	default:
		panic("invalid Direction")
	}
}
