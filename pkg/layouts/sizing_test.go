package layouts_test

import (
	"math"
	"testing"

	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
	"github.com/go-drift/boxkit/pkg/layouts"
	"github.com/go-drift/boxkit/pkg/view"
)

func TestFixedSize_Width(t *testing.T) {
	child := view.NewSized(30, 30, view.WithMargins(geometry.EdgeInsetsAll(5)))
	fixed := layouts.WithFixedWidth(child, 100)

	got := fixed.Measure(geometry.Size{Width: 200, Height: 200})
	if got.Width != 100 || got.Height != 40 {
		t.Errorf("expected {100, 40}, got %v", got)
	}
	fixed.Layout(rect(0, 0, got.Width, got.Height))
	expectFrame(t, "child", child, rect(5, 5, 90, 30))

	if modes := fixed.SizeModes(); modes.Width != layout.WrapContent {
		t.Errorf("expected fixed width to report wrap-content, got %v", modes.Width)
	}
}

func TestFixedSize_WinsOverMatchParent(t *testing.T) {
	child := view.NewSized(10, 10, view.WithSizeModes(layout.MatchParentBoth))
	fixed := layouts.WithFixedSize(child, 50, 60)
	root := layouts.WrapAsFrame([]layout.Layoutable{fixed}, layouts.MatchParentModes())

	if got := fixed.Measure(geometry.Size{Width: 300, Height: 300}); got.Width != 50 || got.Height != 60 {
		t.Errorf("expected {50, 60}, got %v", got)
	}
	layout.StartLayout(root, rect(0, 0, 300, 300))
	expectFrame(t, "child", child, rect(0, 0, 50, 60))
}

func TestFixedSize_NegativeClamps(t *testing.T) {
	fixed := layouts.WithFixedSize(view.NewSized(10, 10), -5, math.NaN())
	got := fixed.Measure(geometry.Size{Width: 100, Height: 100})
	if !got.IsZero() {
		t.Errorf("expected zero size, got %v", got)
	}
}

func TestProportionalSize_ReportScaled(t *testing.T) {
	child := view.NewSized(10, 10)
	p := layouts.WithProportionalSize(child, layouts.Scale(0.5), layouts.Unscaled(), layouts.ReportScaled)

	got := p.Measure(geometry.Size{Width: 200, Height: 100})
	if got.Width != 100 || got.Height != 10 {
		t.Errorf("expected {100, 10}, got %v", got)
	}
	p.Layout(rect(0, 0, got.Width, got.Height))
	expectFrame(t, "child", child, rect(0, 0, 100, 10))
}

func TestProportionalSize_ReportAtLeastChild(t *testing.T) {
	child := view.NewSized(150, 10, view.WithMargins(geometry.EdgeInsetsAll(2)))
	p := layouts.WithProportionalSize(child, layouts.Scale(0.5), layouts.Unscaled(), layouts.ReportAtLeastChild)

	got := p.Measure(geometry.Size{Width: 200, Height: 100})
	if got.Width != 154 || got.Height != 14 {
		t.Errorf("expected {154, 14}, got %v", got)
	}
	p.Layout(rect(0, 0, got.Width, got.Height))
	expectFrame(t, "child", child, rect(2, 2, 150, 10))
}

func TestProportionalSize_SmallChildReportsScaled(t *testing.T) {
	p := layouts.WithProportionalSize(view.NewSized(10, 10), layouts.Scale(0.25), layouts.Scale(0.5), layouts.ReportAtLeastChild)
	got := p.Measure(geometry.Size{Width: 200, Height: 100})
	if got.Width != 50 || got.Height != 50 {
		t.Errorf("expected {50, 50}, got %v", got)
	}
}

func TestFactor(t *testing.T) {
	tests := map[string]struct {
		factor layouts.Factor
		want   float64
	}{
		"unscaled":  {layouts.Unscaled(), 1},
		"half":      {layouts.Scale(0.5), 0.5},
		"above one": {layouts.Scale(2), 1},
		"negative":  {layouts.Scale(-1), 0},
		"nan":       {layouts.Scale(math.NaN()), 0},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.factor.Value(); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	if got := layouts.Scale(0.5).Apply(geometry.Infinity); !math.IsInf(got, 1) {
		t.Errorf("expected unbounded extent to pass through, got %v", got)
	}
}

func TestMatchParentLayout(t *testing.T) {
	child := view.NewSized(20, 10, view.WithMargins(geometry.EdgeInsetsAll(5)))
	m := layouts.WithMatchParent(child, true, false)

	got := m.Measure(geometry.Size{Width: 200, Height: 100})
	if got.Width != 200 || got.Height != 20 {
		t.Errorf("expected {200, 20}, got %v", got)
	}
	m.Layout(rect(0, 0, got.Width, got.Height))
	expectFrame(t, "child", child, rect(5, 5, 190, 10))

	if modes := m.SizeModes(); modes.Width != layout.MatchParent || modes.Height != layout.WrapContent {
		t.Errorf("unexpected modes %v", modes)
	}
}

func TestMatchParentLayout_Unbounded(t *testing.T) {
	m := layouts.WithMatchParent(view.NewSized(20, 10), true, true)
	got := m.Measure(geometry.Size{Width: geometry.Infinity, Height: 40})
	if got.Width != 20 || got.Height != 40 {
		t.Errorf("expected {20, 40}, got %v", got)
	}
}
