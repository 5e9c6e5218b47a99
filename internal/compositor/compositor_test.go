package compositor

import (
	"math"
	"testing"

	"stalagmite/internal/core"
)

type stubSource struct {
	grid *core.Grid
	past []*core.Grid
}

func (s stubSource) Grid() *core.Grid { return s.grid }

func (s stubSource) Past() []*core.Grid { return s.past }

type placement struct {
	pos   [3]float64
	depth int
}

type recorder struct{ placed []placement }

func (r *recorder) PlaceCell(pos [3]float64, depth int) {
	r.placed = append(r.placed, placement{pos: pos, depth: depth})
}

func singleCell(w, h, x, y int) *core.Grid {
	g := core.NewGrid(w, h)
	g.Set(x, y, true)
	return g
}

func TestLayersDepthOrder(t *testing.T) {
	src := stubSource{
		grid: singleCell(3, 3, 0, 0),
		past: []*core.Grid{singleCell(3, 3, 1, 1), core.NewGrid(3, 3), singleCell(3, 3, 2, 2)},
	}
	layers := Layers(src)
	if len(layers) != 4 {
		t.Fatalf("got %d layers, want 4", len(layers))
	}
	for i, l := range layers {
		if l.Depth != i {
			t.Fatalf("layer %d has depth %d", i, l.Depth)
		}
	}
	if len(layers[2].Cells) != 0 {
		t.Fatal("empty generation produced cells")
	}
	if got := layers[3].Cells; len(got) != 1 || got[0] != (core.Point{X: 2, Y: 2}) {
		t.Fatalf("oldest layer cells = %v", got)
	}
}

func TestCompositeCoordinateMapping(t *testing.T) {
	c := New(Options{Top: 10, Spacing: 1})
	// 4 columns, 2 rows; live cell at column 3, row 1.
	src := stubSource{grid: singleCell(4, 2, 3, 1)}
	rec := &recorder{}
	if n := c.Composite(src, rec); n != 1 {
		t.Fatalf("placed %d cells, want 1", n)
	}
	got := rec.placed[0]
	want := [3]float64{1 - 4.0/2, 10, 3 - 2.0/2}
	if got.pos != want || got.depth != 0 {
		t.Fatalf("placement = %+v, want pos %v depth 0", got, want)
	}
}

func TestCompositeOlderLayersSitLower(t *testing.T) {
	c := New(DefaultOptions())
	full := core.NewGrid(3, 3)
	for i := range full.Cells() {
		full.Cells()[i] = true
	}
	src := stubSource{grid: full, past: []*core.Grid{full, full, full}}
	rec := &recorder{}
	for tick := 0; tick < 3; tick++ {
		rec.placed = rec.placed[:0]
		c.Composite(src, rec)
		if len(rec.placed) != 36 {
			t.Fatalf("placed %d cells, want 36", len(rec.placed))
		}
		heights := map[int]float64{}
		for _, p := range rec.placed {
			if h, ok := heights[p.depth]; ok && h != p.pos[1] {
				t.Fatalf("depth %d placed at heights %v and %v", p.depth, h, p.pos[1])
			}
			heights[p.depth] = p.pos[1]
		}
		for d := 1; d <= 3; d++ {
			if heights[d] >= heights[d-1] {
				t.Fatalf("depth %d at %v is not below depth %d at %v", d, heights[d], d-1, heights[d-1])
			}
		}
	}
}

func TestTwistRotatesDeeperLayersFurther(t *testing.T) {
	c := New(Options{Top: 0, Spacing: 1, Spin: 1, Twist: 0.5})
	c.phase = 1
	flat := c.Position(2, 0, 2, 2, 0)
	if flat != [3]float64{-1, 0, 1} {
		t.Fatalf("live layer rotated: %v", flat)
	}
	p := c.Position(2, 0, 2, 2, 2)
	// Depth 2 rotates by phase*twist*depth = 1 radian; radius is preserved.
	r0 := math.Hypot(flat[0], flat[2])
	r2 := math.Hypot(p[0], p[2])
	if math.Abs(r0-r2) > 1e-9 {
		t.Fatalf("rotation changed radius: %v vs %v", r0, r2)
	}
	wantX := -math.Cos(1) - math.Sin(1)
	if math.Abs(p[0]-wantX) > 1e-9 {
		t.Fatalf("rotated x = %v, want %v", p[0], wantX)
	}
	if p[1] != -2 {
		t.Fatalf("rotation moved layer vertically: %v", p[1])
	}
}

func TestCompositeAdvancesPhase(t *testing.T) {
	c := New(Options{Spacing: 1, Spin: 0.25})
	src := stubSource{grid: core.NewGrid(2, 2)}
	rec := &recorder{}
	c.Composite(src, rec)
	c.Composite(src, rec)
	if c.Phase() != 0.5 {
		t.Fatalf("phase = %v, want 0.5", c.Phase())
	}
	if len(rec.placed) != 0 {
		t.Fatalf("empty grids produced %d placements", len(rec.placed))
	}
	c.Reset()
	if c.Phase() != 0 {
		t.Fatal("Reset did not clear phase")
	}
}

func TestNewFallsBackToUnitSpacing(t *testing.T) {
	c := New(Options{Top: 5, Spacing: 0})
	if c.VerticalOffset(3) != 2 {
		t.Fatalf("offset = %v, want 2", c.VerticalOffset(3))
	}
}
