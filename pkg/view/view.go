// Package view adapts host views to the layout protocol.
//
// The host view system (rendering, events, hierarchy) is outside this
// module. A host view only has to expose its frame, bounds, center and
// transform; [Leaf] turns it into a [layout.Layoutable] leaf.
// [Node] and [ScrollNode] are in-memory host views for headless use,
// documents and tests.
package view

import (
	"github.com/go-drift/boxkit/pkg/geometry"
)

// View is the host-side surface a leaf writes its resolved geometry into.
type View interface {
	Frame() geometry.Rect
	SetFrame(frame geometry.Rect)
	Bounds() geometry.Rect
	SetBounds(bounds geometry.Rect)
	Center() geometry.Point
	SetCenter(center geometry.Point)
	Transform() Transform
}

// ScrollView is a host view with a scrollable extent.
type ScrollView interface {
	View
	ContentSize() geometry.Size
	SetContentSize(size geometry.Size)
}

// Node is an in-memory host view. Its geometry is stored as bounds size
// plus center, like most retained view systems, so a transformed node keeps
// its untransformed size.
type Node struct {
	bounds    geometry.Rect
	center    geometry.Point
	transform Transform
	writes    int
}

// NewNode returns a node with an identity transform.
func NewNode() *Node {
	return &Node{transform: Identity}
}

// Frame returns the axis-aligned box the node occupies in its parent,
// including the effect of its transform.
func (n *Node) Frame() geometry.Rect {
	size := n.bounds.Size
	rect := geometry.RectFromXYWH(n.center.X-size.Width*0.5, n.center.Y-size.Height*0.5, size.Width, size.Height)
	return n.transform.BoundingBox(rect)
}

// SetFrame assigns the frame directly. Only meaningful for untransformed nodes.
func (n *Node) SetFrame(frame geometry.Rect) {
	n.bounds = geometry.RectFromOriginSize(n.bounds.Origin, frame.Size)
	n.center = frame.Center()
	n.writes++
}

// Bounds returns the node's own coordinate space.
func (n *Node) Bounds() geometry.Rect {
	return n.bounds
}

// SetBounds replaces the node's bounds.
func (n *Node) SetBounds(bounds geometry.Rect) {
	n.bounds = bounds
	n.writes++
}

// Center returns the node's center in its parent's coordinates.
func (n *Node) Center() geometry.Point {
	return n.center
}

// SetCenter moves the node.
func (n *Node) SetCenter(center geometry.Point) {
	n.center = center
	n.writes++
}

// Transform returns the node's affine transform.
func (n *Node) Transform() Transform {
	return n.transform
}

// SetTransform replaces the node's affine transform.
func (n *Node) SetTransform(t Transform) {
	n.transform = t
}

// Writes returns how many geometry writes the node has received.
func (n *Node) Writes() int {
	return n.writes
}

// ScrollNode is an in-memory scrollable host view.
type ScrollNode struct {
	Node
	contentSize geometry.Size
}

// NewScrollNode returns a scroll node with an identity transform.
func NewScrollNode() *ScrollNode {
	return &ScrollNode{Node: Node{transform: Identity}}
}

// ContentSize returns the scrollable extent.
func (s *ScrollNode) ContentSize() geometry.Size {
	return s.contentSize
}

// SetContentSize replaces the scrollable extent.
func (s *ScrollNode) SetContentSize(size geometry.Size) {
	s.contentSize = size
}
