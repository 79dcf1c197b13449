package layouts

import (
	"github.com/go-drift/boxkit/pkg/geometry"
	"github.com/go-drift/boxkit/pkg/layout"
)

// ScrollContainer is a layoutable with a settable scrollable extent, such
// as [view.ScrollLeaf].
type ScrollContainer interface {
	layout.Layoutable
	SetContentSize(size geometry.Size)
}

// Scroll pairs a scroll container with content that is measured without
// a limit along Axis. Content is placed at (0,0) in the container's own
// coordinate space and the container's content size is set to the
// content's footprint.
//
// Scroll always measures as the space it is offered: what it contains
// never influences its parent.
type Scroll struct {
	layout.Box
	Container ScrollContainer
	Content   layout.Layoutable
	Axis      geometry.Axis
}

// LayoutChildren implements [layout.Parent].
func (s *Scroll) LayoutChildren() []layout.Layoutable {
	return scrollChildren(s.Container, s.Content)
}

// Measure implements [layout.Layoutable].
func (s *Scroll) Measure(available geometry.Size) geometry.Size {
	return available.Clamped()
}

// Layout implements [layout.Layoutable].
func (s *Scroll) Layout(frame geometry.Rect) {
	s.SetFrame(frame)
	viewport := frame
	if s.Container != nil {
		viewport = layout.ChildFrame(s.Container, frame)
		s.Container.Layout(viewport)
	}
	if s.Content == nil {
		if s.Container != nil {
			s.Container.SetContentSize(geometry.Size{})
		}
		return
	}
	unbounded := geometry.SizeAlong(s.Axis, geometry.Infinity, viewport.Size.Cross(s.Axis))
	content := layout.MeasureContent(s.Content, unbounded)
	origin := s.Content.Margins().TopLeft()
	s.Content.Layout(geometry.RectFromOriginSize(origin, content))
	if s.Container != nil {
		s.Container.SetContentSize(layout.Footprint(s.Content, content))
	}
}

// PagedScroll is a [Scroll] whose content is exactly Pages viewports long
// with Spacing between pages. The container is widened by one Spacing along
// Axis so every page scrolls together with its trailing gutter, and the
// content size reserves that gutter after the last page.
type PagedScroll struct {
	layout.Box
	Container ScrollContainer
	Content   layout.Layoutable
	Axis      geometry.Axis
	Pages     int
	Spacing   float64
}

// LayoutChildren implements [layout.Parent].
func (p *PagedScroll) LayoutChildren() []layout.Layoutable {
	return scrollChildren(p.Container, p.Content)
}

// Measure implements [layout.Layoutable].
func (p *PagedScroll) Measure(available geometry.Size) geometry.Size {
	return available.Clamped()
}

// ContentExtent returns the length of the content along the paging axis
// for a viewport of the given length.
func (p *PagedScroll) ContentExtent(viewport float64) float64 {
	if p.Pages <= 0 {
		return 0
	}
	pages := float64(p.Pages)
	return geometry.ClampExtent(pages*viewport + p.Spacing*(pages-1))
}

// Layout implements [layout.Layoutable].
func (p *PagedScroll) Layout(frame geometry.Rect) {
	p.SetFrame(frame)
	viewport := frame
	if p.Container != nil {
		viewport = layout.ChildFrame(p.Container, frame)
	}
	main := p.ContentExtent(viewport.Size.Main(p.Axis))
	cross := viewport.Size.Cross(p.Axis)

	if p.Container != nil {
		widened := viewport
		if p.Axis == geometry.Horizontal {
			widened.Size.Width = geometry.ClampExtent(widened.Size.Width + p.Spacing)
		} else {
			widened.Size.Height = geometry.ClampExtent(widened.Size.Height + p.Spacing)
		}
		p.Container.Layout(widened)
	}

	content := geometry.SizeAlong(p.Axis, main, cross)
	if p.Content != nil {
		layout.LayoutChild(p.Content, geometry.RectFromOriginSize(geometry.Point{}, content))
	}
	if p.Container != nil {
		extent := 0.0
		if p.Pages > 0 {
			extent = main + p.Spacing
		}
		p.Container.SetContentSize(geometry.SizeAlong(p.Axis, geometry.ClampExtent(extent), cross))
	}
}

func scrollChildren(container ScrollContainer, content layout.Layoutable) []layout.Layoutable {
	var out []layout.Layoutable
	if container != nil {
		out = append(out, container)
	}
	if content != nil {
		out = append(out, content)
	}
	return out
}
