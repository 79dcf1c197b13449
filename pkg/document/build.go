package document

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-drift/boxkit/pkg/errors"
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
	"github.com/go-drift/boxkit/pkg/layouts"
	"github.com/go-drift/boxkit/pkg/view"
)

// Node kinds.
const (
	KindView          = "view"
	KindScrollView    = "scroll-view"
	KindFrame         = "frame"
	KindGroup         = "group"
	KindLinear        = "linear"
	KindEqualSegments = "equal-segments"
	KindGravity       = "gravity"
	KindFixed         = "fixed"
	KindProportional  = "proportional"
	KindMatchParent   = "match-parent"
	KindOriginReset   = "origin-reset"
	KindSquare        = "square"
	KindMargins       = "margins"
	KindScroll        = "scroll"
	KindPagedScroll   = "paged-scroll"
	KindFlexible      = "flexible"

	// KindWhen labels the conditional wrapper created for a node's "when" field.
	KindWhen = "when"
)

type buildFunc func(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error)

var kinds map[string]buildFunc

func init() {
	kinds = map[string]buildFunc{
		KindView:          buildView,
		KindScrollView:    buildScrollView,
		KindFrame:         buildFrame,
		KindGroup:         buildGroup,
		KindLinear:        buildLinear,
		KindEqualSegments: buildEqualSegments,
		KindGravity:       buildGravity,
		KindFixed:         buildFixed,
		KindProportional:  buildProportional,
		KindMatchParent:   buildMatchParent,
		KindOriginReset:   buildOriginReset,
		KindSquare:        buildSquare,
		KindMargins:       buildMargins,
		KindScroll:        buildScroll,
		KindPagedScroll:   buildPagedScroll,
		KindFlexible:      buildFlexible,
	}
}

// Kinds returns every node kind a document may use, excluding [KindWhen].
func Kinds() []string {
	return []string{
		KindView, KindScrollView, KindFrame, KindGroup, KindLinear,
		KindEqualSegments, KindGravity, KindFixed, KindProportional,
		KindMatchParent, KindOriginReset, KindSquare, KindMargins,
		KindScroll, KindPagedScroll, KindFlexible,
	}
}

// Build turns doc into a layout tree. Flags override the document's own
// flag defaults.
func Build(doc *Document, flags Flags) (tree *Tree, err error) {
	defer errors.RecoverTo("document.Build", &err)

	if doc == nil || doc.Root == nil {
		return nil, errors.New("document.Build", errors.KindValidate, "",
			&errors.NodeError{Node: "root", Reason: "missing root node"})
	}
	tree = newTree(Flags(doc.Flags).Merge(flags))
	b := &builder{tree: tree, ids: make(map[string]string)}
	root, err := b.build(doc.Root, "root")
	if err != nil {
		return nil, errors.New("document.Build", errors.KindValidate, "", err)
	}
	tree.setRoot(root)
	return tree, nil
}

type builder struct {
	tree *Tree
	seq  int
	ids  map[string]string
}

func (b *builder) build(n *Node, path string) (layout.Layoutable, error) {
	if n == nil {
		return nil, &errors.NodeError{Node: path, Reason: "missing node"}
	}
	kind := strings.TrimSpace(n.Kind)
	fn, ok := kinds[kind]
	if !ok {
		if kind == "" {
			return nil, &errors.NodeError{Node: path, Field: "kind", Reason: "missing kind"}
		}
		return nil, &errors.NodeError{Node: path, Field: "kind", Reason: fmt.Sprintf("unknown kind %q", kind)}
	}

	id, err := b.claimID(n.ID, kind, path)
	if err != nil {
		return nil, err
	}
	opts := []layouts.Option{layouts.Margins(n.Margins.EdgeInsets())}
	if n.Fill != "" && kind != KindMatchParent {
		modes, err := parseFill(n.Fill)
		if err != nil {
			return nil, &errors.NodeError{Node: path, Field: "fill", Reason: err.Error()}
		}
		opts = append(opts, layouts.Modes(modes))
	}

	node, err := fn(b, n, path, opts)
	if err != nil {
		return nil, err
	}
	b.tree.register(node, id, kind)

	if n.When == "" {
		return node, nil
	}
	expr := n.When
	cond := layouts.When(node, func() bool { return b.tree.flags.Enabled(expr) })
	b.tree.register(cond, id+"?", KindWhen)
	return cond, nil
}

func (b *builder) claimID(id, kind, path string) (string, error) {
	b.seq++
	if id == "" {
		return fmt.Sprintf("%s-%d", kind, b.seq), nil
	}
	if prev, ok := b.ids[id]; ok {
		return "", &errors.NodeError{Node: path, Field: "id", Reason: fmt.Sprintf("duplicate id %q (first used at %s)", id, prev)}
	}
	b.ids[id] = path
	return id, nil
}

func (b *builder) child(n *Node, path string) (layout.Layoutable, error) {
	if len(n.Children) > 0 {
		return nil, &errors.NodeError{Node: path, Field: "children", Reason: fmt.Sprintf("%s takes a single child", n.Kind)}
	}
	if n.Child == nil {
		return nil, &errors.NodeError{Node: path, Field: "child", Reason: "missing child"}
	}
	return b.build(n.Child, path+"/child")
}

func (b *builder) children(n *Node, path string) ([]layout.Layoutable, error) {
	if n.Child != nil {
		return nil, &errors.NodeError{Node: path, Field: "child", Reason: fmt.Sprintf("%s takes children", n.Kind)}
	}
	out := make([]layout.Layoutable, 0, len(n.Children))
	for i, c := range n.Children {
		node, err := b.build(c, fmt.Sprintf("%s/children[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, node)
	}
	return out, nil
}

func (b *builder) optional(n *Node, path string) (layout.Layoutable, error) {
	if n == nil {
		return nil, nil
	}
	return b.build(n, path)
}

func noChildren(n *Node, path string) error {
	if n.Child != nil || len(n.Children) > 0 {
		return &errors.NodeError{Node: path, Reason: fmt.Sprintf("%s cannot have children", n.Kind)}
	}
	return nil
}

func leafOptions(n *Node) ([]view.LeafOption, error) {
	opts := []view.LeafOption{view.WithMargins(n.Margins.EdgeInsets())}
	if n.Fill != "" {
		modes, err := parseFill(n.Fill)
		if err != nil {
			return nil, err
		}
		opts = append(opts, view.WithSizeModes(modes))
	}
	return opts, nil
}

func buildView(b *builder, n *Node, path string, _ []layouts.Option) (layout.Layoutable, error) {
	if err := noChildren(n, path); err != nil {
		return nil, err
	}
	opts, err := leafOptions(n)
	if err != nil {
		return nil, &errors.NodeError{Node: path, Field: "fill", Reason: err.Error()}
	}
	host := view.NewNode()
	if n.Rotation != 0 {
		host.SetTransform(view.Rotation(n.Rotation * math.Pi / 180))
	}
	size := geometry.Size{Width: deref(n.Width), Height: deref(n.Height)}
	return view.NewLeaf(host, view.Intrinsic(size), opts...), nil
}

func buildScrollView(b *builder, n *Node, path string, _ []layouts.Option) (layout.Layoutable, error) {
	if err := noChildren(n, path); err != nil {
		return nil, err
	}
	opts, err := leafOptions(n)
	if err != nil {
		return nil, &errors.NodeError{Node: path, Field: "fill", Reason: err.Error()}
	}
	return view.NewScrollLeaf(view.NewScrollNode(), opts...), nil
}

func buildFrame(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	children, err := b.children(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WrapAsFrame(children, opts...), nil
}

func buildGroup(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	children, err := b.children(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WrapAsGroup(children, opts...), nil
}

func buildLinear(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	axis, err := parseAxis(n.Axis, path)
	if err != nil {
		return nil, err
	}
	children, err := b.children(n, path)
	if err != nil {
		return nil, err
	}
	if n.Reversed {
		return layouts.WrapAsReversedLinear(children, axis, n.Spacing, opts...), nil
	}
	return layouts.WrapAsLinear(children, axis, n.Spacing, opts...), nil
}

func buildEqualSegments(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	axis, err := parseAxis(n.Axis, path)
	if err != nil {
		return nil, err
	}
	children, err := b.children(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WrapAsEqualSegments(children, axis, n.Spacing, opts...), nil
}

func buildGravity(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	g, ok := gravities[strings.TrimSpace(n.Gravity)]
	if !ok {
		return nil, &errors.NodeError{Node: path, Field: "gravity", Reason: fmt.Sprintf("unknown gravity %q", n.Gravity)}
	}
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WithGravity(child, g, opts...), nil
}

func buildFixed(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	if n.Width == nil && n.Height == nil {
		return nil, &errors.NodeError{Node: path, Reason: "fixed needs width, height or both"}
	}
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	switch {
	case n.Width != nil && n.Height != nil:
		return layouts.WithFixedSize(child, *n.Width, *n.Height, opts...), nil
	case n.Width != nil:
		return layouts.WithFixedWidth(child, *n.Width, opts...), nil
	default:
		return layouts.WithFixedHeight(child, *n.Height, opts...), nil
	}
}

func buildProportional(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	var report layouts.SizeReport
	switch strings.TrimSpace(n.Report) {
	case "", "scaled":
		report = layouts.ReportScaled
	case "at-least-child":
		report = layouts.ReportAtLeastChild
	default:
		return nil, &errors.NodeError{Node: path, Field: "report", Reason: fmt.Sprintf("unknown report %q", n.Report)}
	}
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WithProportionalSize(child, factor(n.WidthFactor), factor(n.HeightFactor), report, opts...), nil
}

func buildMatchParent(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	modes, err := parseFill(n.Fill)
	if err != nil || n.Fill == "" {
		return nil, &errors.NodeError{Node: path, Field: "fill", Reason: "match-parent needs fill: width, height or both"}
	}
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WithMatchParent(child, modes.Width == layout.MatchParent, modes.Height == layout.MatchParent, opts...), nil
}

func buildOriginReset(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WithOriginReset(child, opts...), nil
}

func buildSquare(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	var ref geometry.SquareReference
	switch strings.TrimSpace(n.Square) {
	case "", "smaller":
		ref = geometry.SquareSmaller
	case "width":
		ref = geometry.SquareFromWidth
	case "height":
		ref = geometry.SquareFromHeight
	default:
		return nil, &errors.NodeError{Node: path, Field: "square", Reason: fmt.Sprintf("unknown square reference %q", n.Square)}
	}
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.AsSquare(child, ref, opts...), nil
}

func buildMargins(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	child, err := b.child(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.WithMargins(child, n.Margins.EdgeInsets(), opts...), nil
}

func (b *builder) scrollParts(n *Node, path string) (layouts.ScrollContainer, layout.Layoutable, geometry.Axis, error) {
	axis, err := parseAxis(n.Axis, path)
	if err != nil {
		return nil, nil, 0, err
	}
	if n.Child != nil || len(n.Children) > 0 {
		return nil, nil, 0, &errors.NodeError{Node: path, Reason: fmt.Sprintf("%s takes container and content", n.Kind)}
	}
	var container layouts.ScrollContainer
	if n.Container == nil {
		leaf := view.NewScrollLeaf(view.NewScrollNode())
		b.tree.register(leaf, fmt.Sprintf("%s-%d", KindScrollView, b.seq), KindScrollView)
		container = leaf
	} else {
		if n.Container.Kind != KindScrollView || n.Container.When != "" {
			return nil, nil, 0, &errors.NodeError{Node: path + "/container", Field: "kind", Reason: "container must be an unconditional scroll-view"}
		}
		node, err := b.build(n.Container, path+"/container")
		if err != nil {
			return nil, nil, 0, err
		}
		container = node.(layouts.ScrollContainer)
	}
	content, err := b.optional(n.Content, path+"/content")
	if err != nil {
		return nil, nil, 0, err
	}
	if content != nil {
		b.tree.scrolls[content] = container
	}
	return container, content, axis, nil
}

func buildScroll(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	container, content, axis, err := b.scrollParts(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.InScroll(container, content, axis, opts...), nil
}

func buildPagedScroll(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	if n.Pages < 0 {
		return nil, &errors.NodeError{Node: path, Field: "pages", Reason: "pages cannot be negative"}
	}
	container, content, axis, err := b.scrollParts(n, path)
	if err != nil {
		return nil, err
	}
	return layouts.InPagedScroll(container, content, axis, n.Pages, n.Spacing, opts...), nil
}

func buildFlexible(b *builder, n *Node, path string, opts []layouts.Option) (layout.Layoutable, error) {
	axis, err := parseAxis(n.Axis, path)
	if err != nil {
		return nil, err
	}
	if n.Child != nil || len(n.Children) > 0 {
		return nil, &errors.NodeError{Node: path, Reason: "flexible takes before, content and after"}
	}
	before, err := b.optional(n.Before, path+"/before")
	if err != nil {
		return nil, err
	}
	content, err := b.optional(n.Content, path+"/content")
	if err != nil {
		return nil, err
	}
	after, err := b.optional(n.After, path+"/after")
	if err != nil {
		return nil, err
	}
	return layouts.WrapAsFlexible(axis, before, content, after, n.Spacing, opts...), nil
}

var gravities = map[string]layouts.Gravity{
	"top-left":      layouts.GravityTopLeft,
	"top":           layouts.GravityTopCenter,
	"top-right":     layouts.GravityTopRight,
	"left":          layouts.GravityCenterLeft,
	"center":        layouts.GravityCenter,
	"right":         layouts.GravityCenterRight,
	"bottom-left":   layouts.GravityBottomLeft,
	"bottom":        layouts.GravityBottomCenter,
	"bottom-right":  layouts.GravityBottomRight,
	"":              layouts.GravityCenter,
	"center-left":   layouts.GravityCenterLeft,
	"center-right":  layouts.GravityCenterRight,
	"top-center":    layouts.GravityTopCenter,
	"bottom-center": layouts.GravityBottomCenter,
}

// parseAxis reads an axis name. Documents default to vertical.
func parseAxis(s, path string) (geometry.Axis, error) {
	switch strings.TrimSpace(s) {
	case "", "vertical":
		return geometry.Vertical, nil
	case "horizontal":
		return geometry.Horizontal, nil
	default:
		return 0, &errors.NodeError{Node: path, Field: "axis", Reason: fmt.Sprintf("unknown axis %q", s)}
	}
}

func parseFill(s string) (layout.SizeModes, error) {
	switch strings.TrimSpace(s) {
	case "", "none":
		return layout.SizeModes{}, nil
	case "width":
		return layout.SizeModes{Width: layout.MatchParent}, nil
	case "height":
		return layout.SizeModes{Height: layout.MatchParent}, nil
	case "both":
		return layout.MatchParentBoth, nil
	default:
		return layout.SizeModes{}, fmt.Errorf("unknown fill %q", s)
	}
}

func factor(f *float64) layouts.Factor {
	if f == nil {
		return layouts.Unscaled()
	}
	return layouts.Scale(*f)
}

func deref(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
