package render

import (
	"bytes"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/go-drift/boxkit/pkg/document"
	"github.com/go-drift/boxkit/pkg/errors"
	"github.com/go-drift/boxkit/pkg/geometry"
)

func placement(id string, depth int, x, y, w, h float64) document.Placement {
	r := geometry.RectFromXYWH(x, y, w, h)
	return document.Placement{ID: id, Kind: document.KindView, Depth: depth, Frame: r, Screen: r}
}

func TestImage_Outline(t *testing.T) {
	placements := []document.Placement{placement("root", 0, 0, 0, 100, 50)}
	img, err := Image(placements, geometry.Size{Width: 100, Height: 50}, Options{Background: ColorWhite})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 100 || got.Y != 50 {
		t.Fatalf("expected 100x50, got %v", got)
	}

	want := color.RGBA{R: 0xE5, G: 0x39, B: 0x35, A: 0xFF}
	for _, pt := range [][2]int{{0, 0}, {99, 0}, {0, 49}, {99, 49}, {50, 0}} {
		if got := img.RGBAAt(pt[0], pt[1]); got != want {
			t.Errorf("pixel %v: expected outline %v, got %v", pt, want, got)
		}
	}
	if got := img.RGBAAt(50, 25); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("expected untouched interior, got %v", got)
	}
}

func TestImage_SkipsHidden(t *testing.T) {
	hidden := placement("gone", 1, 10, 10, 20, 20)
	hidden.Hidden = true
	img, err := Image([]document.Placement{hidden}, geometry.Size{Width: 40, Height: 40}, DefaultOptions())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.RGBAAt(10, 10); got != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("expected hidden placement to be skipped, got %v", got)
	}
}

func TestImage_FillAndScale(t *testing.T) {
	opts := DefaultOptions()
	opts.Scale = 2
	opts.Labels = false
	img, err := Image([]document.Placement{placement("box", 0, 5, 5, 10, 10)}, geometry.Size{Width: 20, Height: 20}, opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 40 || got.Y != 40 {
		t.Fatalf("expected 40x40, got %v", got)
	}
	if got := img.RGBAAt(10, 10); got.A != 0xFF || got.R != 0xE5 {
		t.Errorf("expected outline at scaled origin, got %v", got)
	}
	inside := img.RGBAAt(20, 20)
	if inside == (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Error("expected translucent fill inside the box")
	}
	if outside := img.RGBAAt(2, 2); outside != (color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}) {
		t.Errorf("expected background outside the box, got %v", outside)
	}
}

func TestImage_InvalidCanvas(t *testing.T) {
	for _, size := range []geometry.Size{{}, {Width: 10}, {Width: MaxSide + 1, Height: 10}} {
		_, err := Image(nil, size, DefaultOptions())
		if err == nil {
			t.Errorf("size %v: expected error", size)
			continue
		}
		if kind := errors.KindOf(err); kind != errors.KindRender {
			t.Errorf("size %v: expected render error, got %v", size, kind)
		}
	}
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	placements := []document.Placement{
		placement("root", 0, 0, 0, 64, 32),
		placement("a-long-label", 1, 4, 4, 100, 20),
	}
	if err := WritePNG(&buf, placements, geometry.Size{Width: 64, Height: 32}, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := img.Bounds().Size(); got.X != 64 || got.Y != 32 {
		t.Errorf("expected 64x32, got %v", got)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := WriteFile(path, nil, geometry.Size{Width: 8, Height: 8}, DefaultOptions()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "out.png"), nil, geometry.Size{Width: 8, Height: 8}, DefaultOptions())
	if errors.KindOf(err) != errors.KindIO {
		t.Errorf("expected io error, got %v", err)
	}
}

func TestDepthColor(t *testing.T) {
	if DepthColor(0) != DepthColor(len(depthPalette)) {
		t.Error("expected palette to cycle")
	}
	if DepthColor(-3) != DepthColor(0) {
		t.Error("expected negative depth to clamp")
	}
}
