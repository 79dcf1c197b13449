package layouts_test

import (
	"testing"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
	"github.com/go-drift/boxkit/pkg/layouts"
	"github.com/go-drift/boxkit/pkg/view"
)

func fillWidth(w, h float64) *view.Leaf {
	return view.NewSized(w, h, view.WithSizeModes(layout.SizeModes{Width: layout.MatchParent}))
}

func TestFlexible_AllSlots(t *testing.T) {
	before := view.NewSized(30, 20)
	content := fillWidth(10, 20)
	after := view.NewSized(40, 20)
	flex := layouts.WrapAsFlexible(geometry.Horizontal, before, content, after, 5)

	got := flex.Measure(geometry.Size{Width: 200, Height: 100})
	if got.Width != 200 || got.Height != 20 {
		t.Errorf("expected {200, 20}, got %v", got)
	}
	layout.StartLayout(flex, rect(0, 0, 200, 100))

	expectFrame(t, "before", before, rect(0, 0, 30, 20))
	expectFrame(t, "after", after, rect(160, 0, 40, 20))
	expectFrame(t, "content", content, rect(35, 0, 120, 20))
}

func TestFlexible_NoBefore(t *testing.T) {
	content := fillWidth(10, 20)
	after := view.NewSized(40, 20)
	flex := layouts.WrapAsFlexible(geometry.Horizontal, nil, content, after, 5)

	layout.StartLayout(flex, rect(0, 0, 200, 100))

	expectFrame(t, "after", after, rect(160, 0, 40, 20))
	expectFrame(t, "content", content, rect(0, 0, 155, 20))
	if n := len(flex.LayoutChildren()); n != 2 {
		t.Errorf("expected 2 children, got %d", n)
	}
}

func TestFlexible_ContentOnly(t *testing.T) {
	content := view.NewSized(10, 20)
	flex := layouts.WrapAsFlexible(geometry.Vertical, nil, content, nil, 5)

	layout.StartLayout(flex, rect(0, 0, 50, 300))

	expectFrame(t, "content", content, rect(0, 0, 10, 300))
}

func TestFlexible_Margins(t *testing.T) {
	before := view.NewSized(20, 20, view.WithMargins(geometry.EdgeInsetsAll(2)))
	content := fillWidth(10, 24)
	flex := layouts.WrapAsFlexible(geometry.Horizontal, before, content, nil, 6)

	layout.StartLayout(flex, rect(0, 0, 100, 100))

	expectFrame(t, "before", before, rect(2, 2, 20, 20))
	expectFrame(t, "content", content, rect(30, 0, 70, 24))
}

func TestFlexible_OverflowKeepsContentNonNegative(t *testing.T) {
	content := fillWidth(10, 10)
	flex := layouts.WrapAsFlexible(geometry.Horizontal, view.NewSized(80, 10), content, view.NewSized(80, 10), 10)

	flex.Layout(rect(0, 0, 100, 10))

	if w := content.Frame().Width(); w != 0 {
		t.Errorf("expected zero-width content, got %v", w)
	}
}

func TestFlexible_NoContentNoSpacing(t *testing.T) {
	before := view.NewSized(30, 10)
	after := view.NewSized(20, 10)
	flex := layouts.WrapAsFlexible(geometry.Horizontal, before, nil, after, 50)

	got := flex.Measure(geometry.Size{Width: geometry.Infinity, Height: 100})
	if got.Width != 50 || got.Height != 10 {
		t.Errorf("expected {50, 10}, got %v", got)
	}

	solo := layouts.WrapAsFlexible(geometry.Horizontal, view.NewSized(30, 10), nil, nil, 50)
	if got := solo.Measure(geometry.Size{Width: geometry.Infinity, Height: 100}); got.Width != 30 || got.Height != 10 {
		t.Errorf("expected {30, 10}, got %v", got)
	}

	layout.StartLayout(flex, rect(0, 0, 200, 100))
	expectFrame(t, "before", before, rect(0, 0, 30, 10))
	expectFrame(t, "after", after, rect(180, 0, 20, 10))
}
