// Package compositor turns the live grid and its history into depth-ordered
// cell placements for a renderer.
package compositor

import (
	"math"

	"stalagmite/internal/core"
)

// Source provides the generations to composite.
type Source interface {
	// Grid returns the live generation (depth 0).
	Grid() *core.Grid
	// Past returns retired generations, most recent first (depth 1..N).
	Past() []*core.Grid
}

// Placer receives one call per live cell of every layer.
type Placer interface {
	PlaceCell(pos [3]float64, depth int)
}

// Layer is the set of live cells of one generation at a given depth.
type Layer struct {
	Depth int
	Cells []core.Point
}

// Options control the presentation geometry.
type Options struct {
	// Top is the vertical position of the live layer.
	Top float64
	// Spacing is the vertical distance between consecutive layers. It must be
	// positive so that older layers always sit lower.
	Spacing float64
	// Spin is added to the rotation phase after every composite.
	Spin float64
	// Twist scales the rotation phase per unit of depth.
	Twist float64
}

// DefaultOptions returns the standard stalagmite geometry.
func DefaultOptions() Options {
	return Options{Top: 10, Spacing: 1, Spin: 0.01, Twist: 0.02}
}

// Compositor maps layers to positions. The only state it carries between
// ticks is the rotation phase.
type Compositor struct {
	opts  Options
	phase float64
}

// New returns a Compositor using opts. A non-positive spacing falls back to 1.
func New(opts Options) *Compositor {
	if opts.Spacing <= 0 {
		opts.Spacing = 1
	}
	return &Compositor{opts: opts}
}

// Options returns the geometry in use.
func (c *Compositor) Options() Options { return c.opts }

// Phase returns the current rotation phase.
func (c *Compositor) Phase() float64 { return c.phase }

// Reset zeroes the rotation phase.
func (c *Compositor) Reset() { c.phase = 0 }

// Layers lists the live cells of every generation in src, depth 0 first.
func Layers(src Source) []Layer {
	past := src.Past()
	layers := make([]Layer, 0, len(past)+1)
	layers = append(layers, Layer{Depth: 0, Cells: src.Grid().LivePoints()})
	for i, g := range past {
		layers = append(layers, Layer{Depth: i + 1, Cells: g.LivePoints()})
	}
	return layers
}

// VerticalOffset returns the height of the layer at depth d.
func (c *Compositor) VerticalOffset(d int) float64 {
	return c.opts.Top - float64(d)*c.opts.Spacing
}

// Position maps the cell at column col, row row of a rows x cols grid at
// depth d to scene coordinates.
func (c *Compositor) Position(col, row, rows, cols, d int) [3]float64 {
	x := float64(row) - float64(cols)/2
	z := float64(col) - float64(rows)/2
	angle := c.phase * c.opts.Twist * float64(d)
	if angle != 0 {
		sin, cos := math.Sincos(angle)
		x, z = x*cos-z*sin, x*sin+z*cos
	}
	return [3]float64{x, c.VerticalOffset(d), z}
}

// Composite emits a placement for every live cell of every layer, then
// advances the rotation phase. It returns the number of placements.
func (c *Compositor) Composite(src Source, dst Placer) int {
	size := src.Grid().Size()
	placed := 0
	for _, layer := range Layers(src) {
		for _, p := range layer.Cells {
			dst.PlaceCell(c.Position(p.X, p.Y, size.H, size.W, layer.Depth), layer.Depth)
			placed++
		}
	}
	c.phase += c.opts.Spin
	return placed
}
