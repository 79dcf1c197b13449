package layout

import "github.com/go-drift/boxkit/pkg/geometry"

// PlaceFirst computes the outer rectangle (margins included) of the first child.
type PlaceFirst func(child Layoutable) geometry.Rect

// PlaceNext computes the outer rectangle of the child at index i from the
// previous child and the outer rectangle it was given.
type PlaceNext func(i int, prev Layoutable, prevRect geometry.Rect, child Layoutable) geometry.Rect

// Iterate lays out children in order. The first child is placed by first;
// every following child is placed by next relative to its predecessor.
// Rectangles returned by the callbacks include the child's margins, which
// are removed before the child's Layout is called.
//
// An empty slice is a no-op.
func Iterate(children []Layoutable, first PlaceFirst, next PlaceNext) {
	if len(children) == 0 {
		Debugf("layout.Iterate: no elements to iterate")
		return
	}
	var (
		prev     Layoutable
		prevRect geometry.Rect
	)
	for i, child := range children {
		var rect geometry.Rect
		if i == 0 {
			rect = first(child)
		} else {
			rect = next(i, prev, prevRect, child)
		}
		LayoutChild(child, rect)
		prev, prevRect = child, rect
	}
}
