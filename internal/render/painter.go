//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"stalagmite/internal/core"
	"stalagmite/internal/scene"
)

// StackPainter draws a presented frame as isometric blocks.
type StackPainter struct {
	iso  Isometric
	size float32
}

// NewStackPainter returns a painter drawing unit cells of the given pixel size
// around the origin.
func NewStackPainter(unit int, originX, originY float64) *StackPainter {
	if unit <= 0 {
		unit = 1
	}
	return &StackPainter{
		iso:  Isometric{Unit: float64(unit), OriginX: originX, OriginY: originY},
		size: float32(unit) * 0.8,
	}
}

// Draw paints the proxies in order; the scene already sorts them back to front.
func (p *StackPainter) Draw(dst *ebiten.Image, frame scene.Frame) {
	side := p.size * 0.35
	for _, px := range frame.Proxies {
		sx, sy := p.iso.ProjectProxy(px)
		x := float32(sx) - p.size/2
		y := float32(sy) - p.size/2
		top := DepthColor(px.Depth, frame.MaxDepth)
		vector.FillRect(dst, x, y+p.size, p.size, side, Shade(top, 0.55), false)
		vector.FillRect(dst, x, y, p.size, p.size, top, false)
		vector.StrokeRect(dst, x, y, p.size, p.size, 1, Shade(top, 0.7), false)
	}
}

// GridPainter updates a single RGBA image from grid cells.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it at (x, y).
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, on, off color.Color, scale int, x, y float64) {
	if g == nil || g.W != gp.w || g.H != gp.h {
		return
	}
	fillBinaryRGBA(gp.buf, g.Cells(), on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(x, y)
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
