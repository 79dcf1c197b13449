package layouts

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// Linear places its children one after another along Axis with Spacing
// between neighbours. When Reversed is set the first child sits at the
// trailing edge and later children continue towards the leading edge.
//
// Along the main axis every child gets the extent it measured. Along the
// cross axis a MatchParent child fills the frame (minus its margins) and a
// WrapContent child keeps its measured extent, capped by the frame.
type Linear struct {
	layout.Box
	Children []layout.Layoutable
	Axis     geometry.Axis
	Spacing  float64
	Reversed bool

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (l *Linear) LayoutChildren() []layout.Layoutable {
	return l.Children
}

// Measure implements [layout.Layoutable]. The main extent is the sum of
// child footprints plus spacing between them; the cross extent is the
// largest child footprint.
func (l *Linear) Measure(available geometry.Size) geometry.Size {
	children := layout.Compact(l.Children...)
	if len(children) == 0 {
		l.cache.Invalidate()
		layout.Debugf("layouts.Linear: no children to measure")
		return geometry.Size{}
	}
	sizes := make([]geometry.Size, len(children))
	var main, cross float64
	for i, child := range children {
		sizes[i] = layout.MeasureContent(child, available)
		fp := layout.Footprint(child, sizes[i])
		main += fp.Main(l.Axis)
		cross = math.Max(cross, fp.Cross(l.Axis))
	}
	main += l.Spacing * float64(len(children)-1)
	l.cache.Store(available, sizes)
	return l.SizeModes().Resolve(geometry.SizeAlong(l.Axis, main, cross), available)
}

// Layout implements [layout.Layoutable].
func (l *Linear) Layout(frame geometry.Rect) {
	l.SetFrame(frame)
	axis := l.Axis
	crossStart := frame.MinAlong(axis.Cross())
	crossSlot := frame.Size.Cross(axis)

	outer := func(i int, child layout.Layoutable) (float64, float64) {
		content := l.cache.ContentSize(i, child, frame.Size)
		return outerSize(axis, child, content, crossSlot)
	}

	first := func(child layout.Layoutable) geometry.Rect {
		mainLen, crossLen := outer(0, child)
		start := frame.MinAlong(axis)
		if l.Reversed {
			start = frame.MaxAlong(axis) - mainLen
		}
		return rectAlong(axis, start, crossStart, mainLen, crossLen)
	}
	next := func(i int, _ layout.Layoutable, prevRect geometry.Rect, child layout.Layoutable) geometry.Rect {
		mainLen, crossLen := outer(i, child)
		start := prevRect.MaxAlong(axis) + l.Spacing
		if l.Reversed {
			start = prevRect.MinAlong(axis) - l.Spacing - mainLen
		}
		return rectAlong(axis, start, crossStart, mainLen, crossLen)
	}
	layout.Iterate(layout.Compact(l.Children...), first, next)
}
