package layouts

import (
	"math"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// Flexible arranges up to three slots along Axis: an optional Before
// element pinned to the leading edge, an optional After element pinned to
// the trailing edge, and Content stretched over whatever lies between.
// Spacing separates Content from each present neighbour; an absent slot
// contributes neither size nor spacing.
//
// Flexible always fills the main axis it is offered.
type Flexible struct {
	layout.Box
	Axis    geometry.Axis
	Before  layout.Layoutable
	Content layout.Layoutable
	After   layout.Layoutable
	Spacing float64

	cache layout.MeasureCache
}

// Cache slots.
const (
	slotBefore = iota
	slotContent
	slotAfter
)

// LayoutChildren implements [layout.Parent].
func (f *Flexible) LayoutChildren() []layout.Layoutable {
	return layout.Compact(f.Before, f.Content, f.After)
}

// Measure implements [layout.Layoutable].
func (f *Flexible) Measure(available geometry.Size) geometry.Size {
	axis := f.Axis
	sizes := make([]geometry.Size, 3)
	var used, cross float64
	gap := f.gap()

	for _, slot := range []int{slotBefore, slotAfter} {
		child := f.slot(slot)
		if child == nil {
			continue
		}
		sizes[slot] = layout.MeasureContent(child, available)
		fp := layout.Footprint(child, sizes[slot])
		used += fp.Main(axis) + gap
		cross = math.Max(cross, fp.Cross(axis))
	}

	total := used
	if f.Content != nil {
		remaining := available.Main(axis)
		if isBounded(remaining) {
			remaining = math.Max(0, remaining-used)
		}
		contentAvailable := geometry.SizeAlong(axis, remaining, available.Cross(axis))
		sizes[slotContent] = layout.MeasureContent(f.Content, contentAvailable)
		fp := layout.Footprint(f.Content, sizes[slotContent])
		total += fp.Main(axis)
		cross = math.Max(cross, fp.Cross(axis))
	}
	f.cache.Store(available, sizes)

	main := total
	if isBounded(available.Main(axis)) {
		main = math.Max(available.Main(axis), total)
	}
	return geometry.SizeAlong(axis, main, cross).Clamped()
}

// gap is the spacing placed after Before and before After. Without
// Content there is nothing to separate.
func (f *Flexible) gap() float64 {
	if f.Content == nil {
		return 0
	}
	return f.Spacing
}

func (f *Flexible) slot(i int) layout.Layoutable {
	switch i {
	case slotBefore:
		return f.Before
	case slotContent:
		return f.Content
	default:
		return f.After
	}
}

// Layout implements [layout.Layoutable].
func (f *Flexible) Layout(frame geometry.Rect) {
	f.SetFrame(frame)
	axis := f.Axis
	crossStart := frame.MinAlong(axis.Cross())
	crossSlot := frame.Size.Cross(axis)
	leading := frame.MinAlong(axis)
	trailing := frame.MaxAlong(axis)
	gap := f.gap()

	if f.Before != nil {
		content := f.cache.ContentSize(slotBefore, f.Before, frame.Size)
		mainLen, crossLen := outerSize(axis, f.Before, content, crossSlot)
		layout.LayoutChild(f.Before, rectAlong(axis, leading, crossStart, mainLen, crossLen))
		leading += mainLen + gap
	}
	if f.After != nil {
		content := f.cache.ContentSize(slotAfter, f.After, frame.Size)
		mainLen, crossLen := outerSize(axis, f.After, content, crossSlot)
		layout.LayoutChild(f.After, rectAlong(axis, trailing-mainLen, crossStart, mainLen, crossLen))
		trailing -= mainLen + gap
	}
	if f.Content != nil {
		content := f.cache.ContentSize(slotContent, f.Content, frame.Size)
		_, crossLen := outerSize(axis, f.Content, content, crossSlot)
		mainLen := math.Max(0, trailing-leading)
		layout.LayoutChild(f.Content, rectAlong(axis, leading, crossStart, mainLen, crossLen))
	}
}
