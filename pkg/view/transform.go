package view

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
)

// Transform is a 2D affine transform:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Transform struct {
	A, B, C, D float64
	Tx, Ty     float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Transform{A: 1, D: 1}

// Translation returns a transform that moves points by (dx, dy).
func Translation(dx, dy float64) Transform {
	return Transform{A: 1, D: 1, Tx: dx, Ty: dy}
}

// Scaling returns a transform that scales points by (sx, sy).
func Scaling(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Rotation returns a transform that rotates points by radians.
func Rotation(radians float64) Transform {
	sin, cos := math.Sincos(radians)
	return Transform{A: cos, B: sin, C: -sin, D: cos}
}

// IsIdentity reports whether t leaves every point unchanged.
// The zero Transform is treated as identity so unset fields behave.
func (t Transform) IsIdentity() bool {
	return t == Identity || t == Transform{}
}

// Apply maps p through t.
func (t Transform) Apply(p geometry.Point) geometry.Point {
	if t == (Transform{}) {
		return p
	}
	return geometry.Point{
		X: t.A*p.X + t.C*p.Y + t.Tx,
		Y: t.B*p.X + t.D*p.Y + t.Ty,
	}
}

// BoundingBox returns the axis-aligned box of rect after applying t around
// the rect's center, the way host views apply their transform.
func (t Transform) BoundingBox(rect geometry.Rect) geometry.Rect {
	if t.IsIdentity() {
		return rect
	}
	center := rect.Center()
	hw, hh := rect.Width()*0.5, rect.Height()*0.5
	corners := [4]geometry.Point{{X: -hw, Y: -hh}, {X: hw, Y: -hh}, {X: hw, Y: hh}, {X: -hw, Y: hh}}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, c := range corners {
		p := t.Apply(c)
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geometry.RectFromXYWH(center.X+minX, center.Y+minY, maxX-minX, maxY-minY)
}
