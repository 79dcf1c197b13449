package layouts

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// Frame overlays its children at the same origin. Every child is laid out
// in the full frame minus its own margins, so children overlap completely.
//
// Frame measures as the largest child footprint.
type Frame struct {
	layout.Box
	Children []layout.Layoutable
}

// LayoutChildren implements [layout.Parent].
func (f *Frame) LayoutChildren() []layout.Layoutable {
	return f.Children
}

// Measure implements [layout.Layoutable].
func (f *Frame) Measure(available geometry.Size) geometry.Size {
	children := layout.Compact(f.Children...)
	if len(children) == 0 {
		layout.Debugf("layouts.Frame: no children to measure")
		return geometry.Size{}
	}
	size := layout.MaxFootprint(children, available)
	return f.SizeModes().Resolve(size, available)
}

// Layout implements [layout.Layoutable].
func (f *Frame) Layout(frame geometry.Rect) {
	f.SetFrame(frame)
	place := func(layout.Layoutable) geometry.Rect { return frame }
	layout.Iterate(layout.Compact(f.Children...), place,
		func(int, layout.Layoutable, geometry.Rect, layout.Layoutable) geometry.Rect {
			return frame
		})
}

// Group overlays its children at the same origin like [Frame], but each
// child keeps the size it asked for instead of being stretched to the frame.
type Group struct {
	layout.Box
	Children []layout.Layoutable

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (g *Group) LayoutChildren() []layout.Layoutable {
	return g.Children
}

// Measure implements [layout.Layoutable].
func (g *Group) Measure(available geometry.Size) geometry.Size {
	children := layout.Compact(g.Children...)
	if len(children) == 0 {
		g.cache.Invalidate()
		layout.Debugf("layouts.Group: no children to measure")
		return geometry.Size{}
	}
	sizes := make([]geometry.Size, len(children))
	var size geometry.Size
	for i, child := range children {
		sizes[i] = layout.MeasureContent(child, available)
		size = size.Max(layout.Footprint(child, sizes[i]))
	}
	g.cache.Store(available, sizes)
	return g.SizeModes().Resolve(size, available)
}

// Layout implements [layout.Layoutable].
func (g *Group) Layout(frame geometry.Rect) {
	g.SetFrame(frame)
	children := layout.Compact(g.Children...)
	place := func(i int, child layout.Layoutable) geometry.Rect {
		content := g.cache.ContentSize(i, child, frame.Size)
		return geometry.RectFromOriginSize(frame.Origin, layout.Footprint(child, content))
	}
	layout.Iterate(children,
		func(child layout.Layoutable) geometry.Rect { return place(0, child) },
		func(i int, _ layout.Layoutable, _ geometry.Rect, child layout.Layoutable) geometry.Rect {
			return place(i, child)
		})
}
