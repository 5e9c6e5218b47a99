package life

import "stalagmite/internal/core"

// Intn is the randomness the repopulation policy draws coordinates from.
type Intn interface {
	IntN(n int) int
}

// PopulationFloor is the live-cell minimum enforced for a given seed count.
// Odd counts round down.
func PopulationFloor(cells int) int {
	if cells <= 0 {
		return 0
	}
	return cells / 2
}

// Repopulate tops g up towards floor live cells. When the population is below
// floor it performs exactly floor-population independent draws, each setting
// the cell at a uniformly random coordinate alive. Draws may land on cells that
// are already alive, so the result can stay below floor. It returns the number
// of draws performed.
func Repopulate(g *core.Grid, floor int, rng Intn) int {
	live := g.Population()
	if live >= floor {
		return 0
	}
	delta := floor - live
	scatter(g, delta, rng)
	return delta
}

// scatter sets count random cells alive on g, with replacement.
func scatter(g *core.Grid, count int, rng Intn) {
	for i := 0; i < count; i++ {
		x := rng.IntN(g.W)
		y := rng.IntN(g.H)
		g.Set(x, y, true)
	}
}
