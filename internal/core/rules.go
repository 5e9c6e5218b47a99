package core

import "fmt"

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// ApplyRules writes the generation following cur into next. Every neighbor
// count is taken from cur, so next must be a separate grid of the same size.
func ApplyRules(cur, next *Grid) {
	if cur == next {
		panic("core: ApplyRules needs distinct current and next grids")
	}
	if cur.W != next.W || cur.H != next.H {
		panic(fmt.Sprintf("core: ApplyRules size mismatch %dx%d vs %dx%d", cur.W, cur.H, next.W, next.H))
	}
	w, h := cur.W, cur.H
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			next.data[idx] = NextState(cur.data[idx], cur.CountNeighbors(x, y))
		}
	}
}

// Advance allocates and returns the generation following cur.
func Advance(cur *Grid) *Grid {
	next := NewGrid(cur.W, cur.H)
	ApplyRules(cur, next)
	return next
}

// Diff counts the cells that were born and died between two generations of
// equal size.
func Diff(prev, next *Grid) (born, died int) {
	for i, was := range prev.data {
		is := next.data[i]
		switch {
		case is && !was:
			born++
		case was && !is:
			died++
		}
	}
	return born, died
}
