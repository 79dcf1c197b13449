package layouts

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// WrapAsFrame overlays children in a [Frame].
func WrapAsFrame(children []layout.Layoutable, opts ...Option) *Frame {
	f := &Frame{Children: layout.Compact(children...)}
	applyOptions(&f.Box, opts)
	return f
}

// WrapAsGroup overlays children in a [Group].
func WrapAsGroup(children []layout.Layoutable, opts ...Option) *Group {
	g := &Group{Children: layout.Compact(children...)}
	applyOptions(&g.Box, opts)
	return g
}

// WrapAsLinear places children along axis with spacing between them.
func WrapAsLinear(children []layout.Layoutable, axis geometry.Axis, spacing float64, opts ...Option) *Linear {
	l := &Linear{Children: layout.Compact(children...), Axis: axis, Spacing: spacing}
	applyOptions(&l.Box, opts)
	return l
}

// WrapAsReversedLinear is [WrapAsLinear] starting from the trailing edge.
func WrapAsReversedLinear(children []layout.Layoutable, axis geometry.Axis, spacing float64, opts ...Option) *Linear {
	l := WrapAsLinear(children, axis, spacing, opts...)
	l.Reversed = true
	return l
}

// WrapAsEqualSegments gives every child an equal share of axis.
func WrapAsEqualSegments(children []layout.Layoutable, axis geometry.Axis, spacing float64, opts ...Option) *EqualSegments {
	e := &EqualSegments{Children: layout.Compact(children...), Axis: axis, Spacing: spacing}
	applyOptions(&e.Box, opts)
	return e
}

// WithGravity aligns child inside its parent-provided frame.
func WithGravity(child layout.Layoutable, gravity Gravity, opts ...Option) *GravityLayout {
	g := &GravityLayout{Child: child, Gravity: gravity}
	applyOptions(&g.Box, opts)
	return g
}

// WithFixedSize pins both axes of child's footprint.
func WithFixedSize(child layout.Layoutable, width, height float64, opts ...Option) *FixedSize {
	return withFixed(child, Fixed(width), Fixed(height), opts)
}

// WithFixedWidth pins the width of child's footprint.
func WithFixedWidth(child layout.Layoutable, width float64, opts ...Option) *FixedSize {
	return withFixed(child, Fixed(width), Auto(), opts)
}

// WithFixedHeight pins the height of child's footprint.
func WithFixedHeight(child layout.Layoutable, height float64, opts ...Option) *FixedSize {
	return withFixed(child, Auto(), Fixed(height), opts)
}

func withFixed(child layout.Layoutable, width, height Length, opts []Option) *FixedSize {
	f := &FixedSize{Child: child, Width: width, Height: height}
	applyOptions(&f.Box, opts)
	return f
}

// WithProportionalSize scales the space child is offered on each axis.
func WithProportionalSize(child layout.Layoutable, width, height Factor, report SizeReport, opts ...Option) *ProportionalSize {
	p := &ProportionalSize{Child: child, WidthFactor: width, HeightFactor: height, Report: report}
	applyOptions(&p.Box, opts)
	return p
}

// WithMatchParent forces child to fill the selected axes.
func WithMatchParent(child layout.Layoutable, width, height bool, opts ...Option) *MatchParentLayout {
	m := &MatchParentLayout{Child: child, Width: width, Height: height}
	applyOptions(&m.Box, opts)
	return m
}

// When includes child only while predicate returns true.
func When(child layout.Layoutable, predicate func() bool, opts ...Option) *Conditional {
	c := &Conditional{Child: child, Predicate: predicate}
	applyOptions(&c.Box, opts)
	return c
}

// WithOriginReset lays child out in its own coordinate space.
func WithOriginReset(child layout.Layoutable, opts ...Option) *OriginReset {
	o := &OriginReset{Child: child}
	applyOptions(&o.Box, opts)
	return o
}

// AsSquare forces child into a square derived from ref.
func AsSquare(child layout.Layoutable, ref geometry.SquareReference, opts ...Option) *Square {
	s := &Square{Child: child, Reference: ref}
	applyOptions(&s.Box, opts)
	return s
}

// WithMargins injects margins around child.
func WithMargins(child layout.Layoutable, margins geometry.EdgeInsets, opts ...Option) *Margined {
	w := &Margined{Child: child}
	applyOptions(&w.Box, opts)
	w.SetMargins(margins)
	return w
}

// InScroll pairs container with content scrolling along axis.
func InScroll(container ScrollContainer, content layout.Layoutable, axis geometry.Axis, opts ...Option) *Scroll {
	s := &Scroll{Container: container, Content: content, Axis: axis}
	applyOptions(&s.Box, opts)
	return s
}

// InPagedScroll pairs container with content of pages viewports along axis.
func InPagedScroll(container ScrollContainer, content layout.Layoutable, axis geometry.Axis, pages int, spacing float64, opts ...Option) *PagedScroll {
	p := &PagedScroll{Container: container, Content: content, Axis: axis, Pages: pages, Spacing: spacing}
	applyOptions(&p.Box, opts)
	return p
}

// WrapAsFlexible arranges before, content and after along axis. Before and
// after may be nil.
func WrapAsFlexible(axis geometry.Axis, before, content, after layout.Layoutable, spacing float64, opts ...Option) *Flexible {
	f := &Flexible{Axis: axis, Before: before, Content: content, After: after, Spacing: spacing}
	applyOptions(&f.Box, opts)
	return f
}
