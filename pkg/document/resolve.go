package document

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
	"github.com/go-drift/boxkit/pkg/layouts"
	"github.com/go-drift/boxkit/pkg/view"
)

// Placement is the resolved rectangle of one document node.
type Placement struct {
	ID    string
	Kind  string
	Depth int
	// Frame is the rectangle in the coordinate space of the node's parent.
	Frame geometry.Rect
	// Screen is Frame translated into canvas coordinates, following
	// origin resets and scroll containers.
	Screen geometry.Rect
	// Hidden is set for conditionals whose predicate is false; their
	// subtree is omitted.
	Hidden bool
}

type nodeInfo struct {
	id   string
	kind string
}

// Tree is a built document ready to be resolved. Changing flags or bounds
// schedules a new layout pass for the next Resolve.
type Tree struct {
	root  layout.Layoutable
	flags Flags
	info  map[layout.Layoutable]nodeInfo
	ids   map[string]layout.Layoutable
	// scrolls maps scroll content to its container; content frames are
	// relative to the container.
	scrolls map[layout.Layoutable]layouts.ScrollContainer
	owner   *layout.PipelineOwner
}

func newTree(flags Flags) *Tree {
	return &Tree{
		flags:   flags,
		info:    make(map[layout.Layoutable]nodeInfo),
		ids:     make(map[string]layout.Layoutable),
		scrolls: make(map[layout.Layoutable]layouts.ScrollContainer),
	}
}

func (t *Tree) register(node layout.Layoutable, id, kind string) {
	t.info[node] = nodeInfo{id: id, kind: kind}
	t.ids[id] = node
}

func (t *Tree) setRoot(root layout.Layoutable) {
	t.root = root
	t.owner = layout.NewPipelineOwner(root, geometry.Rect{})
}

// Root returns the root layout node.
func (t *Tree) Root() layout.Layoutable {
	return t.root
}

// Node returns the layout node with the given id.
func (t *Tree) Node(id string) (layout.Layoutable, bool) {
	n, ok := t.ids[id]
	return n, ok
}

// View returns the host view of the view or scroll-view node with the given id.
func (t *Tree) View(id string) (view.View, bool) {
	switch n := t.ids[id].(type) {
	case *view.Leaf:
		return n.View(), true
	case *view.ScrollLeaf:
		return n.View(), true
	default:
		return nil, false
	}
}

// Flags returns a copy of the current flag values.
func (t *Tree) Flags() Flags {
	return Flags(nil).Merge(t.flags)
}

// SetFlag changes a flag and schedules a layout pass.
func (t *Tree) SetFlag(name string, enabled bool) {
	if v, ok := t.flags[name]; ok && v == enabled {
		return
	}
	t.flags[name] = enabled
	t.owner.MarkNeedsLayout()
}

// Passes returns how many layout passes the tree has run.
func (t *Tree) Passes() int {
	return t.owner.Passes()
}

// Resolve lays the tree out inside bounds, if anything changed since the
// last call, and returns the placements.
func (t *Tree) Resolve(bounds geometry.Rect) []Placement {
	t.owner.SetBounds(bounds)
	t.owner.FlushLayout()
	return t.Placements()
}

// Placements returns the placements of the last layout pass in
// depth-first order.
func (t *Tree) Placements() []Placement {
	var out []Placement
	origins := []geometry.Point{{}}
	screens := make(map[layout.Layoutable]geometry.Rect)

	layout.Walk(t.root, func(node layout.Layoutable, depth int) bool {
		origin := origins[depth]
		if container, ok := t.scrolls[node]; ok {
			if r, ok := screens[container]; ok {
				origin = r.Origin
			}
		}
		frame := node.Frame()
		screen := frame.Translate(origin.X, origin.Y)
		screens[node] = screen

		info := t.info[node]
		p := Placement{ID: info.id, Kind: info.kind, Depth: depth, Frame: frame, Screen: screen}
		if c, ok := node.(*layouts.Conditional); ok && !c.Visible() {
			p.Hidden = true
		}
		out = append(out, p)

		childOrigin := origin
		if _, ok := node.(*layouts.OriginReset); ok {
			childOrigin = screen.Origin
		}
		origins = append(origins[:depth+1], childOrigin)
		return !p.Hidden
	})
	return out
}
