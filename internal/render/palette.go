// Package render holds the 2D drawing helpers for the ebiten viewer.
package render

import "image/color"

var (
	// LiveColor marks cells of the current generation.
	LiveColor = color.RGBA{R: 0xf2, G: 0xf2, B: 0xf2, A: 0xff}
	// HistoryColor is the base shade of retired generations.
	HistoryColor = color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}
	// Background clears the view.
	Background = color.RGBA{R: 0x10, G: 0x10, B: 0x14, A: 0xff}
)

// minHistoryShade is the brightness factor applied to the deepest layer.
const minHistoryShade = 0.35

// DepthColor returns the colour for a layer. Depth 0 always gets LiveColor;
// history layers darken linearly towards the deepest one.
func DepthColor(depth, maxDepth int) color.RGBA {
	if depth <= 0 {
		return LiveColor
	}
	if maxDepth <= 1 {
		return HistoryColor
	}
	if depth > maxDepth {
		depth = maxDepth
	}
	t := float64(depth-1) / float64(maxDepth-1)
	return Shade(HistoryColor, 1-t*(1-minHistoryShade))
}

// Shade scales the RGB channels of c by f, clamped to [0,1].
func Shade(c color.RGBA, f float64) color.RGBA {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
