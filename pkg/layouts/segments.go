package layouts

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// EqualSegments divides its main axis into one equally sized segment per
// child, separated by Spacing. The cross axis is shared by all children.
//
// Inside its segment a MatchParent child fills the segment and a
// WrapContent child keeps its measured extent, capped by the segment.
type EqualSegments struct {
	layout.Box
	Children []layout.Layoutable
	Axis     geometry.Axis
	Spacing  float64

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (e *EqualSegments) LayoutChildren() []layout.Layoutable {
	return e.Children
}

// Measure implements [layout.Layoutable]. Every segment is as long as the
// largest child footprint.
func (e *EqualSegments) Measure(available geometry.Size) geometry.Size {
	children := layout.Compact(e.Children...)
	if len(children) == 0 {
		e.cache.Invalidate()
		layout.Debugf("layouts.EqualSegments: no children to measure")
		return geometry.Size{}
	}
	sizes := make([]geometry.Size, len(children))
	var segment, cross float64
	for i, child := range children {
		sizes[i] = layout.MeasureContent(child, available)
		fp := layout.Footprint(child, sizes[i])
		segment = math.Max(segment, fp.Main(e.Axis))
		cross = math.Max(cross, fp.Cross(e.Axis))
	}
	n := float64(len(children))
	main := segment*n + e.Spacing*(n-1)
	e.cache.Store(available, sizes)
	return e.SizeModes().Resolve(geometry.SizeAlong(e.Axis, main, cross), available)
}

// SegmentLength returns the length of each segment when n children share
// extent with spacing between them. It never returns a negative value.
func SegmentLength(extent, spacing float64, n int) float64 {
	if n <= 0 {
		return 0
	}
	return math.Max(0, (extent-spacing*float64(n-1))/float64(n))
}

// Layout implements [layout.Layoutable].
func (e *EqualSegments) Layout(frame geometry.Rect) {
	e.SetFrame(frame)
	children := layout.Compact(e.Children...)
	axis := e.Axis
	crossAxis := axis.Cross()
	segment := SegmentLength(frame.Size.Main(axis), e.Spacing, len(children))
	crossStart := frame.MinAlong(crossAxis)
	crossSlot := frame.Size.Cross(axis)

	place := func(i int, start float64, child layout.Layoutable) geometry.Rect {
		content := e.cache.ContentSize(i, child, frame.Size)
		m := child.Margins()
		mode := layout.ModesOf(child)
		mainLen := layout.FitAxis(mode.Along(axis), content.Main(axis), segment-m.Along(axis))
		crossLen := layout.FitAxis(mode.Along(crossAxis), content.Cross(axis), crossSlot-m.Along(crossAxis))
		return rectAlong(axis, start, crossStart, mainLen+m.Along(axis), crossLen+m.Along(crossAxis))
	}
	layout.Iterate(children,
		func(child layout.Layoutable) geometry.Rect {
			return place(0, frame.MinAlong(axis), child)
		},
		func(i int, _ layout.Layoutable, prevRect geometry.Rect, child layout.Layoutable) geometry.Rect {
			return place(i, prevRect.MinAlong(axis)+segment+e.Spacing, child)
		})
}
