package core

import (
	"slices"
	"testing"
)

func fill(g *Grid) {
	for i := range g.Cells() {
		g.Cells()[i] = true
	}
}

func TestCountNeighborsExcludesSelf(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)
	if n := g.CountNeighbors(1, 1); n != 0 {
		t.Fatalf("lone cell counted itself: got %d neighbors", n)
	}

	fill(g)
	if n := g.CountNeighbors(1, 1); n != 8 {
		t.Fatalf("center of full 3x3 block: got %d neighbors, want 8", n)
	}
}

func TestCountNeighborsClosedBoundary(t *testing.T) {
	g := NewGrid(4, 3)
	fill(g)

	cases := []struct {
		x, y int
		want int
	}{
		{0, 0, 3},
		{3, 0, 3},
		{0, 2, 3},
		{3, 2, 3},
		{1, 0, 5},
		{0, 1, 5},
		{3, 1, 5},
		{1, 1, 8},
		{2, 1, 8},
	}
	for _, tc := range cases {
		if got := g.CountNeighbors(tc.x, tc.y); got != tc.want {
			t.Fatalf("cell (%d,%d): got %d neighbors, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestCountNeighborsDoesNotWrap(t *testing.T) {
	g := NewGrid(5, 5)
	// Cells on the opposite edges would be neighbors on a torus.
	g.Set(4, 0, true)
	g.Set(0, 4, true)
	g.Set(4, 4, true)
	if n := g.CountNeighbors(0, 0); n != 0 {
		t.Fatalf("corner saw %d neighbors across the boundary", n)
	}
}

func TestCountNeighborsPanicsOutOfBounds(t *testing.T) {
	g := NewGrid(2, 2)
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for out-of-range cell")
		}
	}()
	g.CountNeighbors(2, 0)
}

func TestNewGridRejectsZeroArea(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("NewGrid(%d,%d) did not panic", dims[0], dims[1])
				}
			}()
			NewGrid(dims[0], dims[1])
		}()
	}
}

func TestGridPopulationAndPoints(t *testing.T) {
	g := NewGrid(3, 2)
	g.Set(2, 0, true)
	g.Set(0, 1, true)
	if pop := g.Population(); pop != 2 {
		t.Fatalf("population = %d, want 2", pop)
	}
	want := []Point{{X: 2, Y: 0}, {X: 0, Y: 1}}
	if got := g.LivePoints(); !slices.Equal(got, want) {
		t.Fatalf("LivePoints = %v, want %v", got, want)
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)
	c := g.Clone()
	if !c.Equal(g) {
		t.Fatal("clone differs from source")
	}
	c.Set(0, 0, true)
	if g.Alive(0, 0) {
		t.Fatal("mutating clone leaked into source")
	}
	if c.Equal(g) {
		t.Fatal("Equal ignored differing cell")
	}
	if g.Equal(NewGrid(3, 4)) {
		t.Fatal("Equal ignored differing dimensions")
	}
}
