package geometry

import "math"

// EdgeInsets holds the space reserved around a node on each side.
type EdgeInsets struct {
	Top    float64
	Left   float64
	Bottom float64
	Right  float64
}

// EdgeInsetsAll creates insets with the same value on all sides.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Top: v, Left: v, Bottom: v, Right: v}
}

// EdgeInsetsSymmetric creates insets with horizontal (left/right) and
// vertical (top/bottom) values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Top: vertical, Left: horizontal, Bottom: vertical, Right: horizontal}
}

// EdgeInsetsOnly creates insets from explicit left, top, right, bottom values.
func EdgeInsetsOnly(left, top, right, bottom float64) EdgeInsets {
	return EdgeInsets{Top: top, Left: left, Bottom: bottom, Right: right}
}

// Horizontal returns the sum of Left and Right.
func (e EdgeInsets) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e EdgeInsets) Vertical() float64 {
	return e.Top + e.Bottom
}

// Along returns the total inset along axis.
func (e EdgeInsets) Along(axis Axis) float64 {
	if axis == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// Leading returns the inset before the content along axis.
func (e EdgeInsets) Leading(axis Axis) float64 {
	if axis == Horizontal {
		return e.Left
	}
	return e.Top
}

// Trailing returns the inset after the content along axis.
func (e EdgeInsets) Trailing(axis Axis) float64 {
	if axis == Horizontal {
		return e.Right
	}
	return e.Bottom
}

// TopLeft returns the offset of the content box from the outer box.
func (e EdgeInsets) TopLeft() Point {
	return Point{X: e.Left, Y: e.Top}
}

// IsZero returns true if all inset values are zero.
func (e EdgeInsets) IsZero() bool {
	return e.Top == 0 && e.Left == 0 && e.Bottom == 0 && e.Right == 0
}

// SquareReference selects how a size is reduced to a square.
type SquareReference int

const (
	// SquareSmaller uses the smaller of the two dimensions.
	SquareSmaller SquareReference = iota
	// SquareFromWidth uses the width.
	SquareFromWidth
	// SquareFromHeight uses the height.
	SquareFromHeight
)

func (r SquareReference) String() string {
	switch r {
	case SquareFromWidth:
		return "width"
	case SquareFromHeight:
		return "height"
	default:
		return "smaller"
	}
}

// Side returns the side length of the square derived from s. When the
// reference axis is unbounded the other axis is used, so a square inside
// a scroll still takes its side from the bounded cross axis.
func (r SquareReference) Side(s Size) float64 {
	w, h := s.Width, s.Height
	switch {
	case !isFinite(w) && isFinite(h):
		return ClampExtent(h)
	case !isFinite(h) && isFinite(w):
		return ClampExtent(w)
	}
	switch r {
	case SquareFromWidth:
		return ClampExtent(w)
	case SquareFromHeight:
		return ClampExtent(h)
	default:
		return ClampExtent(math.Min(w, h))
	}
}

func isFinite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// Square reduces s to a square using ref.
func (s Size) Square(ref SquareReference) Size {
	side := ref.Side(s)
	return Size{Width: side, Height: side}
}
