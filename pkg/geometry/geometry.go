// Package geometry provides the value types shared by every layout node:
// points, sizes, rectangles, margins and the axis enum.
package geometry

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Infinity is used as an unbounded extent when measuring scrollable content.
var Infinity = math.Inf(1)

// Axis identifies a layout direction.
type Axis int

const (
	// Horizontal lays out along the x axis.
	Horizontal Axis = iota
	// Vertical lays out along the y axis.
	Vertical
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Cross returns the perpendicular axis.
func (a Axis) Cross() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Point represents a 2D point in pixel coordinates.
type Point struct {
	X float64
	Y float64
}

// Add returns the component-wise sum of two points.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Main returns the extent of s along axis.
func (s Size) Main(axis Axis) float64 {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the extent of s perpendicular to axis.
func (s Size) Cross(axis Axis) float64 {
	return s.Main(axis.Cross())
}

// SizeAlong builds a Size from main and cross extents relative to axis.
func SizeAlong(axis Axis, main, cross float64) Size {
	if axis == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}

// Clamped returns s with negative and non-finite components replaced by zero.
func (s Size) Clamped() Size {
	return Size{Width: ClampExtent(s.Width), Height: ClampExtent(s.Height)}
}

// Min returns the component-wise minimum of s and other.
func (s Size) Min(other Size) Size {
	return Size{Width: math.Min(s.Width, other.Width), Height: math.Min(s.Height, other.Height)}
}

// Max returns the component-wise maximum of s and other.
func (s Size) Max(other Size) Size {
	return Size{Width: math.Max(s.Width, other.Width), Height: math.Max(s.Height, other.Height)}
}

// Deflate subtracts insets from s, clamping each axis at zero.
func (s Size) Deflate(insets EdgeInsets) Size {
	return Size{
		Width:  math.Max(0, s.Width-insets.Horizontal()),
		Height: math.Max(0, s.Height-insets.Vertical()),
	}
}

// Inflate adds insets to s.
func (s Size) Inflate(insets EdgeInsets) Size {
	return Size{
		Width:  s.Width + insets.Horizontal(),
		Height: s.Height + insets.Vertical(),
	}
}

// IsZero reports whether both dimensions are zero.
func (s Size) IsZero() bool {
	return s.Width == 0 && s.Height == 0
}

// Scale multiplies each axis by its factor.
func (s Size) Scale(fx, fy float64) Size {
	return Size{Width: s.Width * fx, Height: s.Height * fy}
}

// Rect represents a rectangle as an origin plus a size.
type Rect struct {
	Origin Point
	Size   Size
}

// RectFromXYWH constructs a Rect from x, y, width, height values.
func RectFromXYWH(x, y, width, height float64) Rect {
	return Rect{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// RectFromOriginSize constructs a Rect from a point and a size.
func RectFromOriginSize(origin Point, size Size) Rect {
	return Rect{Origin: origin, Size: size}
}

// MinX returns the left edge.
func (r Rect) MinX() float64 { return r.Origin.X }

// MinY returns the top edge.
func (r Rect) MinY() float64 { return r.Origin.Y }

// MaxX returns the right edge.
func (r Rect) MaxX() float64 { return r.Origin.X + r.Size.Width }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float64 { return r.Origin.Y + r.Size.Height }

// MidX returns the horizontal center.
func (r Rect) MidX() float64 { return r.Origin.X + r.Size.Width*0.5 }

// MidY returns the vertical center.
func (r Rect) MidY() float64 { return r.Origin.Y + r.Size.Height*0.5 }

// Width returns the width of the rectangle.
func (r Rect) Width() float64 { return r.Size.Width }

// Height returns the height of the rectangle.
func (r Rect) Height() float64 { return r.Size.Height }

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.MidX(), Y: r.MidY()}
}

// MinAlong returns the leading edge along axis.
func (r Rect) MinAlong(axis Axis) float64 {
	if axis == Horizontal {
		return r.Origin.X
	}
	return r.Origin.Y
}

// MaxAlong returns the trailing edge along axis.
func (r Rect) MaxAlong(axis Axis) float64 {
	if axis == Horizontal {
		return r.MaxX()
	}
	return r.MaxY()
}

// Deflate shrinks r by insets, keeping the size non-negative.
func (r Rect) Deflate(insets EdgeInsets) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X + insets.Left, Y: r.Origin.Y + insets.Top},
		Size:   r.Size.Deflate(insets),
	}
}

// Inflate grows r by insets.
func (r Rect) Inflate(insets EdgeInsets) Rect {
	return Rect{
		Origin: Point{X: r.Origin.X - insets.Left, Y: r.Origin.Y - insets.Top},
		Size:   r.Size.Inflate(insets),
	}
}

// Translate returns a new rect offset by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Origin: Point{X: r.Origin.X + dx, Y: r.Origin.Y + dy}, Size: r.Size}
}

// WithOrigin returns r moved to origin.
func (r Rect) WithOrigin(origin Point) Rect {
	return Rect{Origin: origin, Size: r.Size}
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Size.Width <= 0 || r.Size.Height <= 0
}

// Union returns the smallest rect containing both r and other.
func (r Rect) Union(other Rect) Rect {
	minX := math.Min(r.MinX(), other.MinX())
	minY := math.Min(r.MinY(), other.MinY())
	maxX := math.Max(r.MaxX(), other.MaxX())
	maxY := math.Max(r.MaxY(), other.MaxY())
	return RectFromXYWH(minX, minY, maxX-minX, maxY-minY)
}

// ApproxEqual reports whether two rects match within epsilon on every edge.
func (r Rect) ApproxEqual(other Rect) bool {
	return floatEqual(r.Origin.X, other.Origin.X) &&
		floatEqual(r.Origin.Y, other.Origin.Y) &&
		floatEqual(r.Size.Width, other.Size.Width) &&
		floatEqual(r.Size.Height, other.Size.Height)
}

// ClampExtent maps negative, NaN and infinite extents to zero.
func ClampExtent(v float64) float64 {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// Clamp constrains a value between min and max bounds.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// floatEqual returns true if two float64 values are approximately equal.
func floatEqual(a, b float64) bool {
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		return a == b
	}
	return math.Abs(a-b) <= epsilon
}
