package core

import "fmt"

// Grid stores one generation of a two-state automaton in row-major order.
// W is the number of columns and H the number of rows; neither changes after
// construction.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates an all-dead grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 || h <= 0 {
		panic(fmt.Sprintf("core: grid dimensions must be positive, got %dx%d", w, h))
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) addresses a cell of the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

func (g *Grid) mustContain(x, y int) {
	if !g.InBounds(x, y) {
		panic(fmt.Sprintf("core: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
}

// Alive reports the state of cell (x, y).
func (g *Grid) Alive(x, y int) bool {
	g.mustContain(x, y)
	return g.data[g.Index(x, y)]
}

// Set assigns the state of cell (x, y).
func (g *Grid) Set(x, y int, alive bool) {
	g.mustContain(x, y)
	g.data[g.Index(x, y)] = alive
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for _, alive := range g.data {
		if alive {
			n++
		}
	}
	return n
}

// LivePoints lists the coordinates of live cells in row-major order.
func (g *Grid) LivePoints() []Point {
	var pts []Point
	for i, alive := range g.data {
		if alive {
			pts = append(pts, Point{X: i % g.W, Y: i / g.W})
		}
	}
	return pts
}

// CountNeighbors returns the number of live cells in the Moore neighborhood of
// (x, y). Positions outside the grid do not contribute; there is no wrapping.
func (g *Grid) CountNeighbors(x, y int) int {
	g.mustContain(x, y)
	neighbors := 0
	for dy := -1; dy <= 1; dy++ {
		ny := y + dy
		if ny < 0 || ny >= g.H {
			continue
		}
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			if nx < 0 || nx >= g.W {
				continue
			}
			if g.data[ny*g.W+nx] {
				neighbors++
			}
		}
	}
	return neighbors
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Equal reports whether both grids have the same dimensions and cell states.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i := range g.data {
		if g.data[i] != o.data[i] {
			return false
		}
	}
	return true
}
