package layout

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
)

// StartLayout resolves the tree rooted at root inside bounds.
//
// The root is measured against the bounds size, the result is clamped so it
// never exceeds the bounds on either axis, and the root is laid out at the
// bounds origin with the clamped size. Nested composites never re-clamp.
func StartLayout(root Layoutable, bounds geometry.Rect) {
	if root == nil {
		return
	}
	measured := root.Measure(bounds.Size).Clamped()
	size := geometry.Size{
		Width:  math.Min(measured.Width, geometry.ClampExtent(bounds.Size.Width)),
		Height: math.Min(measured.Height, geometry.ClampExtent(bounds.Size.Height)),
	}
	root.Layout(geometry.RectFromOriginSize(bounds.Origin, size))
}

// MeasureContent asks child for its content size within available after
// removing the child's margins.
func MeasureContent(child Layoutable, available geometry.Size) geometry.Size {
	if child == nil {
		return geometry.Size{}
	}
	inner := available.Deflate(child.Margins())
	return child.Measure(inner).Clamped()
}

// MeasureFootprint returns the space a parent must reserve for child:
// its content size within available plus its margins.
func MeasureFootprint(child Layoutable, available geometry.Size) geometry.Size {
	if child == nil {
		return geometry.Size{}
	}
	return MeasureContent(child, available).Inflate(child.Margins())
}

// Footprint adds child's margins to an already measured content size.
func Footprint(child Layoutable, content geometry.Size) geometry.Size {
	if child == nil {
		return geometry.Size{}
	}
	return content.Inflate(child.Margins())
}

// ChildFrame returns rect minus child's margins.
func ChildFrame(child Layoutable, rect geometry.Rect) geometry.Rect {
	if child == nil {
		return rect
	}
	return rect.Deflate(child.Margins())
}

// LayoutChild lays child out inside rect after removing its margins.
func LayoutChild(child Layoutable, rect geometry.Rect) {
	if child == nil {
		return
	}
	child.Layout(ChildFrame(child, rect))
}

// FitAxis returns the extent a child occupies along axis inside a slot of
// the given extent: the whole slot for MatchParent children, otherwise the
// measured extent capped by the slot.
func FitAxis(mode SizeMode, measured, slot float64) float64 {
	slot = geometry.ClampExtent(slot)
	if mode == MatchParent {
		return slot
	}
	return math.Min(geometry.ClampExtent(measured), slot)
}

// MaxFootprint returns the component-wise maximum footprint of children.
func MaxFootprint(children []Layoutable, available geometry.Size) geometry.Size {
	var out geometry.Size
	for _, child := range children {
		out = out.Max(MeasureFootprint(child, available))
	}
	return out
}
