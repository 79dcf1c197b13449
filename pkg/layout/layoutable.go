package layout

import "github.com/go-drift/boxkit/pkg/geometry"

// Layoutable is implemented by every node in a layout tree: primitive view
// adapters and composite layouts alike.
//
// Layout runs in two passes. Measure answers "how big would you like to be
// given this much room" and must not include the node's own margins; the
// parent adds those. Layout hands the node its definitive rectangle (again
// excluding margins) and the node positions itself and its children.
type Layoutable interface {
	// Margins returns the space the parent reserves around this node.
	Margins() geometry.EdgeInsets

	// Frame returns the rectangle assigned by the last Layout call.
	Frame() geometry.Rect

	// Measure returns the content size this node wants within available.
	// The result is never negative.
	Measure(available geometry.Size) geometry.Size

	// Layout assigns the node its final rectangle and lays out children.
	Layout(frame geometry.Rect)
}

// Parent is implemented by composite layouts to expose their children for
// tree walking. Children must not be mutated by callers.
type Parent interface {
	LayoutChildren() []Layoutable
}

// SizeMode describes how a node sizes itself along one axis.
type SizeMode int

const (
	// WrapContent takes the smallest size that fits the content.
	WrapContent SizeMode = iota
	// MatchParent takes all the space offered by the parent.
	MatchParent
)

func (m SizeMode) String() string {
	if m == MatchParent {
		return "match-parent"
	}
	return "wrap-content"
}

// SizeModes pairs the width and height modes of a node.
type SizeModes struct {
	Width  SizeMode
	Height SizeMode
}

// Along returns the mode for axis.
func (m SizeModes) Along(axis geometry.Axis) SizeMode {
	if axis == geometry.Horizontal {
		return m.Width
	}
	return m.Height
}

// Resolve replaces MatchParent axes of measured with the available extent.
// Unbounded available extents fall back to the measured value.
func (m SizeModes) Resolve(measured, available geometry.Size) geometry.Size {
	out := measured
	if m.Width == MatchParent && geometry.ClampExtent(available.Width) == available.Width {
		out.Width = available.Width
	}
	if m.Height == MatchParent && geometry.ClampExtent(available.Height) == available.Height {
		out.Height = available.Height
	}
	return out.Clamped()
}

// MatchParentBoth is the mode pair for nodes that fill their parent.
var MatchParentBoth = SizeModes{Width: MatchParent, Height: MatchParent}

// SizeModer is implemented by nodes that declare their sizing modes.
// Nodes that don't implement it are treated as WrapContent on both axes.
type SizeModer interface {
	SizeModes() SizeModes
}

// ModesOf returns the declared size modes of node.
func ModesOf(node Layoutable) SizeModes {
	if m, ok := node.(SizeModer); ok {
		return m.SizeModes()
	}
	return SizeModes{}
}

// Box provides the state shared by every node: margins, size modes and the
// last assigned frame. Composites embed it the way render objects embed a
// common base.
type Box struct {
	margins geometry.EdgeInsets
	modes   SizeModes
	frame   geometry.Rect
}

// NewBox returns a Box with the given margins and modes.
func NewBox(margins geometry.EdgeInsets, modes SizeModes) Box {
	return Box{margins: margins, modes: modes}
}

// Margins returns the node's margins.
func (b *Box) Margins() geometry.EdgeInsets {
	return b.margins
}

// SetMargins replaces the node's margins. Intended for construction time.
func (b *Box) SetMargins(margins geometry.EdgeInsets) {
	b.margins = margins
}

// SizeModes returns the node's size modes.
func (b *Box) SizeModes() SizeModes {
	return b.modes
}

// SetSizeModes replaces the node's size modes.
func (b *Box) SetSizeModes(modes SizeModes) {
	b.modes = modes
}

// Frame returns the last assigned frame.
func (b *Box) Frame() geometry.Rect {
	return b.frame
}

// SetFrame records the node's frame.
func (b *Box) SetFrame(frame geometry.Rect) {
	b.frame = frame
}
