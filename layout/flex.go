// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"frostui.org/f32"
	"frostui.org/render"
)

// Item is a child of a flex container: the sizing policies of a
// widget together with its layout function.
type Item interface {
	Width() Length
	Height() Length
	Layout(r *render.Renderer, limits Limits) Node
}

// Flex lays out child items along an axis according to their length
// policies: items without a fill factor are measured first against
// the remaining space, then fill items divide what is left in
// proportion to their weights.
type Flex struct {
	// Axis is the main axis, either Horizontal or Vertical.
	Axis Axis
	// Spacing is the gap between adjacent items on the main axis.
	Spacing float32
	// Alignment is the alignment of items in the cross axis.
	Alignment Alignment
}

// Layout resolves children against limits reduced by inset. Layout
// is total: any configuration yields a node with non-negative sizes.
func (f Flex) Layout(r *render.Renderer, limits Limits, inset Inset, children ...Item) Node {
	limits = limits.Inset(inset)
	var totalSpacing float32
	if len(children) > 1 {
		totalSpacing = f.Spacing * float32(len(children)-1)
	}
	maxCross := f.Axis.Cross(limits.Max())

	var fillSum int
	cross := f.Axis.Cross(limits.Min())
	available := f.Axis.Main(limits.Max()) - totalSpacing

	nodes := make([]Node, len(children))
	for i, child := range children {
		factor := f.axisLength(child).FillFactor()
		if factor != 0 {
			fillSum += int(factor)
			continue
		}
		main := positive(available)
		childLimits := NewLimits(f32.Point{}, f.Axis.Pack(main, maxCross))
		node := child.Layout(r, childLimits)
		available -= f.Axis.Main(node.Size())
		if c := f.Axis.Cross(node.Size()); c > cross {
			cross = c
		}
		nodes[i] = node
	}

	remaining := positive(available)
	for i, child := range children {
		factor := f.axisLength(child).FillFactor()
		if factor == 0 {
			continue
		}
		maxMain := remaining * float32(factor) / float32(fillSum)
		minMain := maxMain
		if math.IsInf(float64(maxMain), 1) {
			minMain = 0
		}
		childLimits := NewLimits(
			f.Axis.Pack(minMain, f.Axis.Cross(limits.Min())),
			f.Axis.Pack(maxMain, maxCross),
		)
		node := child.Layout(r, childLimits)
		if c := f.Axis.Cross(node.Size()); c > cross {
			cross = c
		}
		nodes[i] = node
	}

	origin := f32.Pt(inset.Left, inset.Top)
	main := f.Axis.Main(origin)
	for i := range nodes {
		if i > 0 {
			main += f.Spacing
		}
		nodes[i].Move(f.Axis.Pack(main, f.Axis.Cross(origin)))
		if f.Axis == Horizontal {
			nodes[i].Align(Start, f.Alignment, f32.Pt(0, cross))
		} else {
			nodes[i].Align(f.Alignment, Start, f32.Pt(cross, 0))
		}
		main += f.Axis.Main(nodes[i].Size())
	}

	content := f.Axis.Pack(main-f.Axis.Main(origin), cross)
	size := limits.Resolve(content)
	size = size.Add(f32.Pt(inset.Horizontal(), inset.Vertical()))
	return NewNodeChildren(size, nodes)
}

func (f Flex) axisLength(child Item) Length {
	if f.Axis == Horizontal {
		return child.Width()
	}
	return child.Height()
}
