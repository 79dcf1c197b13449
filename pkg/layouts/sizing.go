package layouts

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// FixedSize overrides one or both axes of its child with a constant
// footprint. Unfixed axes fall back to the child's own measurement.
// A fixed axis wins over a MatchParent child.
type FixedSize struct {
	layout.Box
	Child  layout.Layoutable
	Width  Length
	Height Length

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (f *FixedSize) LayoutChildren() []layout.Layoutable {
	return layout.Compact(f.Child)
}

// SizeModes reports WrapContent on fixed axes. Elsewhere it mirrors the
// child unless the layout itself declares MatchParent.
func (f *FixedSize) SizeModes() layout.SizeModes {
	modes := declaredModes(&f.Box, f.Child)
	if f.Width.IsFixed() {
		modes.Width = layout.WrapContent
	}
	if f.Height.IsFixed() {
		modes.Height = layout.WrapContent
	}
	return modes
}

// constrain substitutes the fixed extents into available.
func (f *FixedSize) constrain(available geometry.Size) geometry.Size {
	if f.Width.IsFixed() {
		available.Width = f.Width.Value()
	}
	if f.Height.IsFixed() {
		available.Height = f.Height.Value()
	}
	return available
}

// Measure implements [layout.Layoutable].
func (f *FixedSize) Measure(available geometry.Size) geometry.Size {
	var footprint geometry.Size
	if f.Child != nil {
		content := layout.MeasureContent(f.Child, f.constrain(available))
		f.cache.StoreOne(available, content)
		footprint = layout.Footprint(f.Child, content)
	} else {
		f.cache.Invalidate()
	}
	own := f.Box.SizeModes()
	if f.Width.IsFixed() {
		own.Width = layout.WrapContent
	}
	if f.Height.IsFixed() {
		own.Height = layout.WrapContent
	}
	return own.Resolve(f.constrain(footprint), available)
}

// Layout implements [layout.Layoutable].
func (f *FixedSize) Layout(frame geometry.Rect) {
	f.SetFrame(frame)
	if f.Child == nil {
		return
	}
	content := f.cache.ContentSize(0, f.Child, f.constrain(frame.Size))
	m := f.Child.Margins()
	modes := layout.ModesOf(f.Child)

	size := geometry.Size{
		Width:  layout.FitAxis(modes.Width, content.Width, frame.Width()-m.Horizontal()),
		Height: layout.FitAxis(modes.Height, content.Height, frame.Height()-m.Vertical()),
	}
	if f.Width.IsFixed() {
		size.Width = geometry.ClampExtent(f.Width.Value() - m.Horizontal())
	}
	if f.Height.IsFixed() {
		size.Height = geometry.ClampExtent(f.Height.Value() - m.Vertical())
	}
	origin := frame.Origin.Add(m.TopLeft())
	f.Child.Layout(geometry.RectFromOriginSize(origin, size))
}

// SizeReport selects how [ProportionalSize] reports its size.
type SizeReport int

const (
	// ReportScaled reports exactly the scaled available size and lays the
	// child out in the whole frame it receives.
	ReportScaled SizeReport = iota
	// ReportAtLeastChild reports the larger of the scaled size and the
	// child's footprint, and lays the child out at its measured size.
	ReportAtLeastChild
)

// ProportionalSize scales the available size by a factor per axis before
// asking its child. Unscaled axes pass through and report the child's
// footprint.
type ProportionalSize struct {
	layout.Box
	Child        layout.Layoutable
	WidthFactor  Factor
	HeightFactor Factor
	Report       SizeReport

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (p *ProportionalSize) LayoutChildren() []layout.Layoutable {
	return layout.Compact(p.Child)
}

// SizeModes mirrors the child's modes, except on axes the layout itself
// declares MatchParent.
func (p *ProportionalSize) SizeModes() layout.SizeModes {
	return declaredModes(&p.Box, p.Child)
}

// Scaled returns available with the factors applied.
func (p *ProportionalSize) Scaled(available geometry.Size) geometry.Size {
	return geometry.Size{
		Width:  p.WidthFactor.Apply(available.Width),
		Height: p.HeightFactor.Apply(available.Height),
	}
}

// reportAxis combines the scaled extent with the child's footprint.
func (p *ProportionalSize) reportAxis(f Factor, scaled, footprint float64) float64 {
	if !f.IsScaled() || !isBounded(scaled) {
		return footprint
	}
	if p.Report == ReportAtLeastChild {
		return math.Max(scaled, footprint)
	}
	return scaled
}

// Measure implements [layout.Layoutable].
func (p *ProportionalSize) Measure(available geometry.Size) geometry.Size {
	scaled := p.Scaled(available)
	var footprint geometry.Size
	if p.Child != nil {
		content := layout.MeasureContent(p.Child, scaled)
		p.cache.StoreOne(available, content)
		footprint = layout.Footprint(p.Child, content)
	} else {
		p.cache.Invalidate()
	}
	report := geometry.Size{
		Width:  p.reportAxis(p.WidthFactor, scaled.Width, footprint.Width),
		Height: p.reportAxis(p.HeightFactor, scaled.Height, footprint.Height),
	}
	return p.Box.SizeModes().Resolve(report, available)
}

// Layout implements [layout.Layoutable].
func (p *ProportionalSize) Layout(frame geometry.Rect) {
	p.SetFrame(frame)
	if p.Child == nil {
		return
	}
	if p.Report == ReportScaled {
		layout.LayoutChild(p.Child, frame)
		return
	}
	// The frame already carries the scaled extent; a fresh measurement
	// must not scale it again.
	content := p.cache.ContentSize(0, p.Child, frame.Size)
	origin := frame.Origin.Add(p.Child.Margins().TopLeft())
	p.Child.Layout(geometry.RectFromOriginSize(origin, content))
}

// MatchParentLayout forces its child to take the whole offered extent on
// the selected axes regardless of what the child measured.
type MatchParentLayout struct {
	layout.Box
	Child  layout.Layoutable
	Width  bool
	Height bool

	cache layout.MeasureCache
}

// LayoutChildren implements [layout.Parent].
func (m *MatchParentLayout) LayoutChildren() []layout.Layoutable {
	return layout.Compact(m.Child)
}

// SizeModes reports MatchParent on forced axes and on axes the layout
// declares MatchParent, and mirrors the child elsewhere.
func (m *MatchParentLayout) SizeModes() layout.SizeModes {
	modes := declaredModes(&m.Box, m.Child)
	if m.Width {
		modes.Width = layout.MatchParent
	}
	if m.Height {
		modes.Height = layout.MatchParent
	}
	return modes
}

// Measure implements [layout.Layoutable].
func (m *MatchParentLayout) Measure(available geometry.Size) geometry.Size {
	var footprint geometry.Size
	if m.Child != nil {
		content := layout.MeasureContent(m.Child, available)
		m.cache.StoreOne(available, content)
		footprint = layout.Footprint(m.Child, content)
	} else {
		m.cache.Invalidate()
	}
	forced := m.Box.SizeModes()
	if m.Width {
		forced.Width = layout.MatchParent
	}
	if m.Height {
		forced.Height = layout.MatchParent
	}
	return forced.Resolve(footprint, available)
}

// Layout implements [layout.Layoutable].
func (m *MatchParentLayout) Layout(frame geometry.Rect) {
	m.SetFrame(frame)
	if m.Child == nil {
		return
	}
	content := m.cache.ContentSize(0, m.Child, frame.Size)
	inner := layout.ChildFrame(m.Child, frame)
	modes := layout.ModesOf(m.Child)
	size := geometry.Size{
		Width:  layout.FitAxis(modes.Width, content.Width, inner.Width()),
		Height: layout.FitAxis(modes.Height, content.Height, inner.Height()),
	}
	if m.Width {
		size.Width = inner.Width()
	}
	if m.Height {
		size.Height = inner.Height()
	}
	m.Child.Layout(geometry.RectFromOriginSize(inner.Origin, size))
}
