package layouts

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// HorizontalGravity positions a child along the x axis.
type HorizontalGravity int

const (
	// GravityLeft aligns the child's left margin edge with the frame.
	GravityLeft HorizontalGravity = iota
	// GravityCenterX centers the child between both horizontal margins.
	GravityCenterX
	// GravityRight aligns the child's right margin edge with the frame.
	GravityRight
)

// VerticalGravity positions a child along the y axis.
type VerticalGravity int

const (
	// GravityTop aligns the child's top margin edge with the frame.
	GravityTop VerticalGravity = iota
	// GravityMiddle centers the child between both vertical margins.
	GravityMiddle
	// GravityBottom aligns the child's bottom margin edge with the frame.
	GravityBottom
)

// Gravity combines a horizontal and a vertical alignment.
type Gravity struct {
	Horizontal HorizontalGravity
	Vertical   VerticalGravity
}

// Common gravities.
var (
	GravityTopLeft      = Gravity{GravityLeft, GravityTop}
	GravityTopCenter    = Gravity{GravityCenterX, GravityTop}
	GravityTopRight     = Gravity{GravityRight, GravityTop}
	GravityCenterLeft   = Gravity{GravityLeft, GravityMiddle}
	GravityCenter       = Gravity{GravityCenterX, GravityMiddle}
	GravityCenterRight  = Gravity{GravityRight, GravityMiddle}
	GravityBottomLeft   = Gravity{GravityLeft, GravityBottom}
	GravityBottomCenter = Gravity{GravityCenterX, GravityBottom}
	GravityBottomRight  = Gravity{GravityRight, GravityBottom}
)

func (g HorizontalGravity) offset(slot, extent float64) float64 {
	switch g {
	case GravityCenterX:
		return (slot - extent) * 0.5
	case GravityRight:
		return slot - extent
	default:
		return 0
	}
}

func (g VerticalGravity) offset(slot, extent float64) float64 {
	switch g {
	case GravityMiddle:
		return (slot - extent) * 0.5
	case GravityBottom:
		return slot - extent
	default:
		return 0
	}
}

// WithinRect returns the origin of a box of size placed in rect.
func (g Gravity) WithinRect(rect geometry.Rect, size geometry.Size) geometry.Point {
	return geometry.Point{
		X: rect.MinX() + g.Horizontal.offset(rect.Width(), size.Width),
		Y: rect.MinY() + g.Vertical.offset(rect.Height(), size.Height),
	}
}

// GravityLayout positions a single child inside its frame. The child keeps
// its measured size (capped by the frame minus margins) and is aligned
// within the margin-deflated frame, so centered axes honour both margins.
type GravityLayout struct {
	layout.Box
	Child   layout.Layoutable
	Gravity Gravity

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (g *GravityLayout) LayoutChildren() []layout.Layoutable {
	return layout.Compact(g.Child)
}

// SizeModes mirrors the child's modes, except on axes the layout itself
// declares MatchParent.
func (g *GravityLayout) SizeModes() layout.SizeModes {
	return declaredModes(&g.Box, g.Child)
}

// Measure implements [layout.Layoutable].
func (g *GravityLayout) Measure(available geometry.Size) geometry.Size {
	if g.Child == nil {
		g.cache.Invalidate()
		return geometry.Size{}
	}
	content := layout.MeasureContent(g.Child, available)
	g.cache.StoreOne(available, content)
	return g.Box.SizeModes().Resolve(layout.Footprint(g.Child, content), available)
}

// Layout implements [layout.Layoutable].
func (g *GravityLayout) Layout(frame geometry.Rect) {
	g.SetFrame(frame)
	if g.Child == nil {
		return
	}
	content := g.cache.ContentSize(0, g.Child, frame.Size)
	inner := layout.ChildFrame(g.Child, frame)
	modes := layout.ModesOf(g.Child)
	size := geometry.Size{
		Width:  layout.FitAxis(modes.Width, content.Width, inner.Width()),
		Height: layout.FitAxis(modes.Height, content.Height, inner.Height()),
	}
	g.Child.Layout(geometry.RectFromOriginSize(g.Gravity.WithinRect(inner, size), size))
}
