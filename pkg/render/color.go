package render

import (
	"fmt"
	"image/color"
)

// Color is stored as ARGB (0xAARRGGBB).
type Color uint32

// RGBA constructs a Color from red, green, blue, alpha bytes.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// WithAlpha returns a copy of the color with the given alpha (0-255).
func (c Color) WithAlpha(a uint8) Color {
	return Color(uint32(a)<<24 | uint32(c)&0x00FFFFFF)
}

// NRGBA converts c for use with image/draw.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: uint8(c >> 24)}
}

// Common colors.
var (
	ColorTransparent = Color(0x00000000)
	ColorBlack       = Color(0xFF000000)
	ColorWhite       = Color(0xFFFFFFFF)
)

// depthPalette colours outlines by tree depth, cycling for deep trees.
var depthPalette = []Color{
	RGB(0xE5, 0x39, 0x35),
	RGB(0x1E, 0x88, 0xE5),
	RGB(0x43, 0xA0, 0x47),
	RGB(0xFB, 0x8C, 0x00),
	RGB(0x8E, 0x24, 0xAA),
	RGB(0x00, 0x89, 0x7B),
}

// DepthColor returns the outline colour for nodes at depth.
func DepthColor(depth int) Color {
	if depth < 0 {
		depth = 0
	}
	return depthPalette[depth%len(depthPalette)]
}

// Hex formats the color as "#RRGGBB", ignoring alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%06X", uint32(c)&0x00FFFFFF)
}
