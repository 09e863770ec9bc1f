// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"frostui.org/f32"
)

// Node is the positioned result of laying out a widget: its bounds
// relative to its parent and the nodes of its children. A Node is
// produced fresh by each layout pass and read only afterwards.
type Node struct {
	bounds   f32.Rectangle
	children []Node
}

// NewNode returns a leaf node of the given size, positioned at the
// parent origin.
func NewNode(size f32.Point) Node {
	return Node{bounds: f32.Rectangle{Max: size}}
}

// NewNodeChildren returns a node of the given size owning children.
func NewNodeChildren(size f32.Point, children []Node) Node {
	return Node{bounds: f32.Rectangle{Max: size}, children: children}
}

// Size returns the node size.
func (n *Node) Size() f32.Point {
	return n.bounds.Size()
}

// Bounds returns the node bounds relative to its parent.
func (n *Node) Bounds() f32.Rectangle {
	return n.bounds
}

// Children returns the child nodes.
func (n *Node) Children() []Node {
	return n.children
}

// Move positions the node at pos relative to its parent.
func (n *Node) Move(pos f32.Point) {
	size := n.bounds.Size()
	n.bounds.Min = pos
	n.bounds.Max = pos.Add(size)
}

// Align repositions the node inside a containing space.
func (n *Node) Align(horizontal, vertical Alignment, space f32.Point) {
	size := n.bounds.Size()
	pos := n.bounds.Min
	switch horizontal {
	case Middle:
		pos.X += (space.X - size.X) / 2
	case End:
		pos.X += space.X - size.X
	}
	switch vertical {
	case Middle:
		pos.Y += (space.Y - size.Y) / 2
	case End:
		pos.Y += space.Y - size.Y
	}
	n.Move(pos)
}

// Layout is a positioned view of a Node: the node bounds translated
// into absolute coordinates. It is the form the event and draw
// passes traverse.
type Layout struct {
	offset f32.Point
	node   *Node
}

// NewLayout returns the view of a root node.
func NewLayout(node *Node) Layout {
	return Layout{node: node}
}

// Bounds returns the absolute bounds of the node.
func (l Layout) Bounds() f32.Rectangle {
	return l.node.bounds.Add(l.offset)
}

// ChildCount returns the number of child nodes.
func (l Layout) ChildCount() int {
	return len(l.node.children)
}

// Child returns the positioned view of the i'th child.
func (l Layout) Child(i int) Layout {
	return Layout{
		offset: l.node.bounds.Min.Add(l.offset),
		node:   &l.node.children[i],
	}
}
