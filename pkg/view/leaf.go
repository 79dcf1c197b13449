package view

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// Sizer reports the size a view would like within the available space.
type Sizer interface {
	SizeThatFits(available geometry.Size) geometry.Size
}

// SizerFunc adapts a function to [Sizer].
type SizerFunc func(available geometry.Size) geometry.Size

// SizeThatFits calls f.
func (f SizerFunc) SizeThatFits(available geometry.Size) geometry.Size {
	return f(available)
}

// Intrinsic returns a Sizer that always asks for size.
func Intrinsic(size geometry.Size) Sizer {
	return SizerFunc(func(geometry.Size) geometry.Size { return size })
}

// Square returns a Sizer for a square of the given side length.
func Square(side float64) Sizer {
	return Intrinsic(geometry.Size{Width: side, Height: side})
}

// Leaf adapts a host [View] to the layout protocol.
//
// Measure asks the sizer for the content size and widens MatchParent axes
// to the available space. Layout writes the frame into the host view; when
// the view carries a non-identity transform only its bounds size and center
// are written, which keeps the transform intact.
type Leaf struct {
	layout.Box
	view  View
	sizer Sizer
}

// LeafOption configures a Leaf.
type LeafOption func(*Leaf)

// WithMargins sets the leaf's margins.
func WithMargins(margins geometry.EdgeInsets) LeafOption {
	return func(l *Leaf) { l.SetMargins(margins) }
}

// WithSizeModes sets the leaf's size modes.
func WithSizeModes(modes layout.SizeModes) LeafOption {
	return func(l *Leaf) { l.SetSizeModes(modes) }
}

// NewLeaf wraps v. A nil sizer reports a zero intrinsic size.
func NewLeaf(v View, sizer Sizer, opts ...LeafOption) *Leaf {
	l := &Leaf{view: v, sizer: sizer}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewSized returns a leaf over a fresh [Node] with a fixed intrinsic size.
func NewSized(width, height float64, opts ...LeafOption) *Leaf {
	return NewLeaf(NewNode(), Intrinsic(geometry.Size{Width: width, Height: height}), opts...)
}

// View returns the wrapped host view.
func (l *Leaf) View() View {
	return l.view
}

// Measure implements [layout.Layoutable].
func (l *Leaf) Measure(available geometry.Size) geometry.Size {
	var measured geometry.Size
	if l.sizer != nil {
		measured = l.sizer.SizeThatFits(available)
	}
	return l.SizeModes().Resolve(measured.Clamped(), available)
}

// Layout implements [layout.Layoutable].
func (l *Leaf) Layout(frame geometry.Rect) {
	l.SetFrame(frame)
	if l.view == nil {
		return
	}
	if !l.view.Transform().IsIdentity() {
		l.view.SetBounds(geometry.RectFromOriginSize(l.view.Bounds().Origin, frame.Size))
		l.view.SetCenter(frame.Center())
		return
	}
	l.view.SetFrame(frame)
}

// ScrollLeaf adapts a host [ScrollView] for use as a scroll container.
type ScrollLeaf struct {
	Leaf
	scroll ScrollView
}

// NewScrollLeaf wraps s. Scroll containers always fill what they are given,
// so the leaf defaults to MatchParent on both axes.
func NewScrollLeaf(s ScrollView, opts ...LeafOption) *ScrollLeaf {
	leaf := &ScrollLeaf{scroll: s}
	leaf.view = s
	leaf.SetSizeModes(layout.MatchParentBoth)
	for _, opt := range opts {
		opt(&leaf.Leaf)
	}
	return leaf
}

// SetContentSize forwards the scrollable extent to the host view.
func (s *ScrollLeaf) SetContentSize(size geometry.Size) {
	if s.scroll != nil {
		s.scroll.SetContentSize(size)
	}
}

// ContentSize returns the host view's scrollable extent.
func (s *ScrollLeaf) ContentSize() geometry.Size {
	if s.scroll == nil {
		return geometry.Size{}
	}
	return s.scroll.ContentSize()
}
