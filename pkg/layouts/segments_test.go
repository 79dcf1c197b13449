package layouts_test

import (
	"testing"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
	"github.com/go-drift/boxkit/pkg/layouts"
	"github.com/go-drift/boxkit/pkg/view"
)

func TestSegmentLength(t *testing.T) {
	tests := map[string]struct {
		extent, spacing float64
		n               int
		want            float64
	}{
		"even split":     {extent: 200, spacing: 10, n: 3, want: 60},
		"no spacing":     {extent: 90, spacing: 0, n: 3, want: 30},
		"single child":   {extent: 50, spacing: 100, n: 1, want: 50},
		"spacing wins":   {extent: 100, spacing: 100, n: 3, want: 0},
		"no children":    {extent: 100, spacing: 10, n: 0, want: 0},
		"negative space": {extent: -10, spacing: 0, n: 2, want: 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := layouts.SegmentLength(tt.extent, tt.spacing, tt.n); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestEqualSegments_Distribution(t *testing.T) {
	margins := []geometry.EdgeInsets{
		{},
		geometry.EdgeInsetsOnly(4, 0, 0, 0),
		geometry.EdgeInsetsOnly(2, 1, 2, 1),
	}
	children := []*view.Leaf{
		view.NewSized(30, 20, view.WithMargins(margins[0])),
		view.NewSized(10, 20, view.WithMargins(margins[1]), view.WithSizeModes(layout.SizeModes{Width: layout.MatchParent})),
		view.NewSized(100, 20, view.WithMargins(margins[2])),
	}
	nodes := make([]layout.Layoutable, len(children))
	for i, c := range children {
		nodes[i] = c
	}
	segments := layouts.WrapAsEqualSegments(nodes, geometry.Horizontal, 10)

	frame := rect(5, 0, 200, 40)
	segments.Layout(frame)

	const seg = 60.0 // (200 - 10*2) / 3
	for i, c := range children {
		wantX := frame.MinX() + float64(i)*(seg+10) + margins[i].Left
		if got := c.Frame().MinX(); got != wantX {
			t.Errorf("child %d: expected x=%v, got %v", i, wantX, got)
		}
	}
	// WrapContent keeps its measured width, MatchParent fills the segment,
	// an oversized child is capped by the segment.
	if w := children[0].Frame().Width(); w != 30 {
		t.Errorf("child 0: expected width 30, got %v", w)
	}
	if w := children[1].Frame().Width(); w != seg-4 {
		t.Errorf("child 1: expected width %v, got %v", seg-4, w)
	}
	if w := children[2].Frame().Width(); w != seg-4 {
		t.Errorf("child 2: expected width %v, got %v", seg-4, w)
	}
}

func TestEqualSegments_Measure(t *testing.T) {
	segments := layouts.WrapAsEqualSegments([]layout.Layoutable{
		view.NewSized(30, 20),
		view.NewSized(50, 10, view.WithMargins(geometry.EdgeInsetsAll(1))),
	}, geometry.Vertical, 6)

	got := segments.Measure(geometry.Size{Width: 300, Height: 300})
	// segment = max(20, 12) = 20; 2*20 + 6; cross = max(30, 52)
	if got.Width != 52 || got.Height != 46 {
		t.Errorf("expected {52, 46}, got {%v, %v}", got.Width, got.Height)
	}
}

func TestEqualSegments_NegativeSegmentClamps(t *testing.T) {
	a := view.NewSized(10, 10)
	b := view.NewSized(10, 10)
	segments := layouts.WrapAsEqualSegments([]layout.Layoutable{a, b}, geometry.Horizontal, 50)
	segments.Layout(rect(0, 0, 40, 10))

	if a.Frame().Width() != 0 || b.Frame().Width() != 0 {
		t.Errorf("expected zero-width segments, got %v and %v", a.Frame(), b.Frame())
	}
	if b.Frame().MinX() != 50 {
		t.Errorf("expected second segment after spacing, got x=%v", b.Frame().MinX())
	}
}

func TestFrame_OverlaysChildren(t *testing.T) {
	m := geometry.EdgeInsetsAll(10)
	a := view.NewSized(20, 20, view.WithMargins(m))
	b := view.NewSized(60, 30)
	frame := layouts.WrapAsFrame([]layout.Layoutable{a, b})

	got := frame.Measure(geometry.Size{Width: 200, Height: 200})
	if got.Width != 60 || got.Height != 40 {
		t.Errorf("expected {60, 40}, got {%v, %v}", got.Width, got.Height)
	}
	layout.StartLayout(frame, rect(0, 0, 200, 200))
	expectFrame(t, "a", a, rect(10, 10, 40, 20))
	expectFrame(t, "b", b, rect(0, 0, 60, 40))
}

func TestGroup_KeepsRequestedSizes(t *testing.T) {
	m := geometry.EdgeInsetsOnly(3, 4, 0, 0)
	a := view.NewSized(20, 20, view.WithMargins(m))
	b := view.NewSized(60, 30)
	group := layouts.WrapAsGroup([]layout.Layoutable{a, b})

	layout.StartLayout(group, rect(7, 7, 200, 200))
	expectFrame(t, "group", group, rect(7, 7, 60, 30))
	expectFrame(t, "a", a, rect(10, 11, 20, 20))
	expectFrame(t, "b", b, rect(7, 7, 60, 30))
}

func TestGroup_LayoutWithoutMeasure(t *testing.T) {
	a := view.NewSized(20, 20)
	group := &layouts.Group{Children: []layout.Layoutable{a}}
	group.Layout(rect(0, 0, 100, 100))
	expectFrame(t, "a", a, rect(0, 0, 20, 20))
}
