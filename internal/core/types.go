package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Point addresses a single grid cell by column (X) and row (Y).
type Point struct {
	X int
	Y int
}
