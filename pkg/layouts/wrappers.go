package layouts

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// Conditional includes its child only while Predicate returns true. The
// predicate is evaluated on every call, so flipping its input between
// passes shows or hides the child. A hidden child measures as zero with
// zero margins and is not laid out; a nil predicate hides the child.
//
// Hiding does not touch the child, so a host view that was shown keeps its
// last frame. Hosts hide such views themselves, for example by checking
// [Conditional.Visible] after each pass.
type Conditional struct {
	layout.Box
	Child     layout.Layoutable
	Predicate func() bool
}

// Visible evaluates the predicate.
func (c *Conditional) Visible() bool {
	return c.Child != nil && c.Predicate != nil && c.Predicate()
}

// LayoutChildren implements [layout.Parent].
func (c *Conditional) LayoutChildren() []layout.Layoutable {
	return layout.Compact(c.Child)
}

// Margins returns zero while the child is hidden.
func (c *Conditional) Margins() geometry.EdgeInsets {
	if !c.Visible() {
		return geometry.EdgeInsets{}
	}
	return c.Box.Margins()
}

// SizeModes mirrors the child while it is visible, except on axes the
// conditional itself declares MatchParent.
func (c *Conditional) SizeModes() layout.SizeModes {
	if !c.Visible() {
		return layout.SizeModes{}
	}
	return declaredModes(&c.Box, c.Child)
}

// Measure implements [layout.Layoutable].
func (c *Conditional) Measure(available geometry.Size) geometry.Size {
	if !c.Visible() {
		return geometry.Size{}
	}
	return c.Box.SizeModes().Resolve(layout.MeasureFootprint(c.Child, available), available)
}

// Layout implements [layout.Layoutable].
func (c *Conditional) Layout(frame geometry.Rect) {
	if !c.Visible() {
		c.SetFrame(geometry.Rect{})
		return
	}
	c.SetFrame(frame)
	layout.LayoutChild(c.Child, frame)
}

// OriginReset lays its child out in a coordinate space rooted at (0,0),
// for content that lives inside another coordinate system such as a scroll
// container. Frame still reports the real frame the reset received.
type OriginReset struct {
	layout.Box
	Child layout.Layoutable
}

// LayoutChildren implements [layout.Parent].
func (o *OriginReset) LayoutChildren() []layout.Layoutable {
	return layout.Compact(o.Child)
}

// SizeModes mirrors the child's modes, except on axes the reset itself
// declares MatchParent.
func (o *OriginReset) SizeModes() layout.SizeModes {
	return declaredModes(&o.Box, o.Child)
}

// Measure implements [layout.Layoutable].
func (o *OriginReset) Measure(available geometry.Size) geometry.Size {
	var footprint geometry.Size
	if o.Child != nil {
		footprint = layout.MeasureFootprint(o.Child, available)
	}
	return o.Box.SizeModes().Resolve(footprint, available)
}

// Layout implements [layout.Layoutable].
func (o *OriginReset) Layout(frame geometry.Rect) {
	o.SetFrame(frame)
	layout.LayoutChild(o.Child, geometry.RectFromOriginSize(geometry.Point{}, frame.Size))
}

// Square forces its child into a square. The side comes from the width,
// the height, or the smaller of the two, after removing the child's margins.
type Square struct {
	layout.Box
	Child     layout.Layoutable
	Reference geometry.SquareReference
}

// LayoutChildren implements [layout.Parent].
func (s *Square) LayoutChildren() []layout.Layoutable {
	return layout.Compact(s.Child)
}

// SizeModes mirrors the child's modes, except on axes the square itself
// declares MatchParent.
func (s *Square) SizeModes() layout.SizeModes {
	return declaredModes(&s.Box, s.Child)
}

// Measure implements [layout.Layoutable]. MatchParent axes declared on the
// square report the available extent; the child stays square either way.
func (s *Square) Measure(available geometry.Size) geometry.Size {
	if s.Child == nil {
		return s.Box.SizeModes().Resolve(available.Square(s.Reference), available)
	}
	m := s.Child.Margins()
	square := available.Deflate(m).Square(s.Reference)
	s.Child.Measure(square)
	return s.Box.SizeModes().Resolve(square.Inflate(m), available)
}

// Layout implements [layout.Layoutable].
func (s *Square) Layout(frame geometry.Rect) {
	s.SetFrame(frame)
	if s.Child == nil {
		return
	}
	inner := layout.ChildFrame(s.Child, frame)
	s.Child.Layout(geometry.RectFromOriginSize(inner.Origin, inner.Size.Square(s.Reference)))
}

// Margined gives a node margins it cannot declare itself, such as a host
// root view. The wrapper reports the injected margins to its parent and
// passes its frame through to the child unchanged; the child's own
// margins are ignored.
type Margined struct {
	layout.Box
	Child layout.Layoutable
}

// LayoutChildren implements [layout.Parent].
func (w *Margined) LayoutChildren() []layout.Layoutable {
	return layout.Compact(w.Child)
}

// SizeModes mirrors the child's modes, except on axes the wrapper itself
// declares MatchParent.
func (w *Margined) SizeModes() layout.SizeModes {
	return declaredModes(&w.Box, w.Child)
}

// Measure implements [layout.Layoutable].
func (w *Margined) Measure(available geometry.Size) geometry.Size {
	var size geometry.Size
	if w.Child != nil {
		size = w.Child.Measure(available)
	}
	return w.Box.SizeModes().Resolve(size, available)
}

// Layout implements [layout.Layoutable].
func (w *Margined) Layout(frame geometry.Rect) {
	w.SetFrame(frame)
	if w.Child != nil {
		w.Child.Layout(frame)
	}
}
