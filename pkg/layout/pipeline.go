package layout

import "github.com/go-drift/boxkit/pkg/geometry"

// PipelineOwner owns a root node and the bounds it is resolved in, and
// re-runs StartLayout only when something marked it dirty.
//
// Layout itself is synchronous and cheap enough to recompute from the root,
// so there are no relayout boundaries: any change to the tree, the bounds or
// an input a conditional predicate reads calls MarkNeedsLayout and the next
// FlushLayout resolves the whole tree again.
type PipelineOwner struct {
	root        Layoutable
	bounds      geometry.Rect
	needsLayout bool
	passes      int
}

// NewPipelineOwner returns an owner for root that needs an initial layout.
func NewPipelineOwner(root Layoutable, bounds geometry.Rect) *PipelineOwner {
	return &PipelineOwner{root: root, bounds: bounds, needsLayout: true}
}

// Root returns the owned root node.
func (p *PipelineOwner) Root() Layoutable {
	return p.root
}

// SetRoot replaces the root and schedules a layout.
func (p *PipelineOwner) SetRoot(root Layoutable) {
	p.root = root
	p.needsLayout = true
}

// Bounds returns the rectangle the root is resolved in.
func (p *PipelineOwner) Bounds() geometry.Rect {
	return p.bounds
}

// SetBounds updates the bounds, scheduling a layout when they change.
func (p *PipelineOwner) SetBounds(bounds geometry.Rect) {
	if p.bounds == bounds {
		return
	}
	p.bounds = bounds
	p.needsLayout = true
}

// MarkNeedsLayout schedules a layout on the next flush.
func (p *PipelineOwner) MarkNeedsLayout() {
	p.needsLayout = true
}

// NeedsLayout reports whether a flush would run layout.
func (p *PipelineOwner) NeedsLayout() bool {
	return p.needsLayout
}

// Passes returns how many layout passes have run.
func (p *PipelineOwner) Passes() int {
	return p.passes
}

// FlushLayout runs StartLayout on the root if it is dirty. It reports
// whether a pass ran.
func (p *PipelineOwner) FlushLayout() bool {
	if !p.needsLayout || p.root == nil {
		return false
	}
	StartLayout(p.root, p.bounds)
	p.needsLayout = false
	p.passes++
	return true
}
