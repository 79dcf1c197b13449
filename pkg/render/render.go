// Package render draws resolved document placements into a PNG for
// debugging: one outline per node, coloured by depth and labelled with the
// node id.
package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-drift/boxkit/pkg/document"
	"github.com/go-drift/boxkit/pkg/errors"
	"github.com/go-drift/boxkit/pkg/geometry"
)

// MaxSide caps the rendered image on either axis.
const MaxSide = 8192

// fillAlpha is the alpha of the translucent fill behind each outline.
const fillAlpha = 0x20

// Options controls how placements are drawn.
type Options struct {
	// Scale multiplies every coordinate. Zero means 1.
	Scale float64
	// Background fills the canvas before drawing.
	Background Color
	// Labels draws node ids in the top-left corner of each outline.
	Labels bool
	// Fill draws a translucent fill behind each outline.
	Fill bool
}

// DefaultOptions returns labelled, filled output on white at scale 1.
func DefaultOptions() Options {
	return Options{Scale: 1, Background: ColorWhite, Labels: true, Fill: true}
}

// Image draws placements onto a canvas of the given size. Hidden
// placements are skipped.
func Image(placements []document.Placement, canvas geometry.Size, opts Options) (*image.RGBA, error) {
	scale := opts.Scale
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}
	w := int(math.Ceil(canvas.Width * scale))
	h := int(math.Ceil(canvas.Height * scale))
	if w <= 0 || h <= 0 || w > MaxSide || h > MaxSide {
		return nil, errors.New("render.Image", errors.KindRender, "",
			fmt.Errorf("canvas %dx%d outside 1..%d", w, h, MaxSide))
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background.NRGBA()), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for _, p := range placements {
		if p.Hidden {
			continue
		}
		r := pixelRect(p.Screen, scale).Intersect(img.Bounds())
		if r.Empty() {
			continue
		}
		c := DepthColor(p.Depth)
		if opts.Fill {
			draw.Draw(img, r, image.NewUniform(c.WithAlpha(fillAlpha).NRGBA()), image.Point{}, draw.Over)
		}
		outline(img, r, c)
		if opts.Labels {
			label(img, face, r, p.ID, c)
		}
	}
	return img, nil
}

// WritePNG encodes the rendered placements as PNG.
func WritePNG(w io.Writer, placements []document.Placement, canvas geometry.Size, opts Options) error {
	img, err := Image(placements, canvas, opts)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return errors.New("render.WritePNG", errors.KindRender, "", err)
	}
	return nil
}

// WriteFile renders placements into a PNG file at path.
func WriteFile(path string, placements []document.Placement, canvas geometry.Size, opts Options) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.New("render.WriteFile", errors.KindIO, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.New("render.WriteFile", errors.KindIO, path, cerr)
		}
	}()
	return WritePNG(f, placements, canvas, opts)
}

func pixelRect(r geometry.Rect, scale float64) image.Rectangle {
	return image.Rect(
		int(math.Floor(r.MinX()*scale)),
		int(math.Floor(r.MinY()*scale)),
		int(math.Ceil(r.MaxX()*scale)),
		int(math.Ceil(r.MaxY()*scale)),
	)
}

// outline strokes the 1px border just inside r.
func outline(img draw.Image, r image.Rectangle, c Color) {
	src := image.NewUniform(c.NRGBA())
	edges := []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+1),
		image.Rect(r.Min.X, r.Max.Y-1, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y, r.Min.X+1, r.Max.Y),
		image.Rect(r.Max.X-1, r.Min.Y, r.Max.X, r.Max.Y),
	}
	for _, e := range edges {
		draw.Draw(img, e.Intersect(r), src, image.Point{}, draw.Src)
	}
}

// label draws id inside r when it fits.
func label(img draw.Image, face font.Face, r image.Rectangle, id string, c Color) {
	if id == "" {
		return
	}
	metrics := face.Metrics()
	height := (metrics.Ascent + metrics.Descent).Ceil()
	width := font.MeasureString(face, id).Ceil()
	if r.Dx() < width+4 || r.Dy() < height+4 {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.NRGBA()),
		Face: face,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+2+metrics.Ascent.Ceil()),
	}
	d.DrawString(id)
}
