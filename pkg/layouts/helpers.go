package layouts

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// Option configures the margins or size modes of a composite.
type Option func(box *layout.Box)

// Margins sets the composite's own margins.
func Margins(margins geometry.EdgeInsets) Option {
	return func(box *layout.Box) { box.SetMargins(margins) }
}

// Modes sets the composite's own size modes.
func Modes(modes layout.SizeModes) Option {
	return func(box *layout.Box) { box.SetSizeModes(modes) }
}

// MatchParentModes makes the composite fill its parent on both axes.
func MatchParentModes() Option {
	return Modes(layout.MatchParentBoth)
}

func applyOptions(box *layout.Box, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(box)
		}
	}
}

// rectAlong builds a rect from main/cross coordinates relative to axis.
func rectAlong(axis geometry.Axis, mainStart, crossStart, mainLen, crossLen float64) geometry.Rect {
	if axis == geometry.Horizontal {
		return geometry.RectFromXYWH(mainStart, crossStart, mainLen, crossLen)
	}
	return geometry.RectFromXYWH(crossStart, mainStart, crossLen, mainLen)
}

// isBounded reports whether v is a usable finite extent.
func isBounded(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}

// mirrorModes returns the modes of child, or the zero modes for nil.
func mirrorModes(child layout.Layoutable) layout.SizeModes {
	if child == nil {
		return layout.SizeModes{}
	}
	return layout.ModesOf(child)
}

// declaredModes returns the child's modes with every axis the wrapper
// itself declares MatchParent forced to MatchParent.
func declaredModes(box *layout.Box, child layout.Layoutable) layout.SizeModes {
	modes := mirrorModes(child)
	own := box.SizeModes()
	if own.Width == layout.MatchParent {
		modes.Width = layout.MatchParent
	}
	if own.Height == layout.MatchParent {
		modes.Height = layout.MatchParent
	}
	return modes
}

// outerSize returns the margin-inclusive size a child occupies inside a
// slot: the main extent comes from its measured content, the cross extent
// is fitted to the slot according to the child's cross-axis mode.
func outerSize(axis geometry.Axis, child layout.Layoutable, content geometry.Size, crossSlot float64) (main, cross float64) {
	m := child.Margins()
	crossAxis := axis.Cross()
	crossLen := layout.FitAxis(layout.ModesOf(child).Along(crossAxis), content.Cross(axis), crossSlot-m.Along(crossAxis))
	return content.Main(axis) + m.Along(axis), crossLen + m.Along(crossAxis)
}

// Length is an optional fixed extent.
type Length struct {
	value float64
	fixed bool
}

// Fixed returns a Length fixed at v. Negative values clamp to zero.
func Fixed(v float64) Length {
	return Length{value: geometry.ClampExtent(v), fixed: true}
}

// Auto returns a Length that defers to the child.
func Auto() Length {
	return Length{}
}

// IsFixed reports whether the length was set.
func (l Length) IsFixed() bool {
	return l.fixed
}

// Value returns the fixed extent, or zero when unset.
func (l Length) Value() float64 {
	return l.value
}

// Factor is an optional scale applied to one axis of the available size.
type Factor struct {
	value  float64
	scaled bool
}

// Scale returns a Factor of f. Values outside 0..1 are clamped.
func Scale(f float64) Factor {
	if math.IsNaN(f) {
		f = 0
	}
	return Factor{value: geometry.Clamp(f, 0, 1), scaled: true}
}

// Unscaled returns a Factor that passes the axis through.
func Unscaled() Factor {
	return Factor{}
}

// IsScaled reports whether the factor applies.
func (f Factor) IsScaled() bool {
	return f.scaled
}

// Value returns the clamped factor, or 1 when unscaled.
func (f Factor) Value() float64 {
	if !f.scaled {
		return 1
	}
	return f.value
}

// Apply scales extent. Unbounded extents pass through unchanged.
func (f Factor) Apply(extent float64) float64 {
	if !f.scaled || !isBounded(extent) {
		return extent
	}
	return extent * f.value
}
