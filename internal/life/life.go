// Package life runs Conway's Game of Life on a closed grid with a population
// floor and a bounded record of past generations.
package life

import (
	"stalagmite/internal/core"
	"stalagmite/internal/history"
)

// StepResult summarises one generation transition.
type StepResult struct {
	// Generation is the index of the grid that became live.
	Generation uint64
	// Population is the live-cell count after repopulation.
	Population int
	Born       int
	Died       int
	// Injected is the number of repopulation draws performed.
	Injected int
	// Evicted reports whether pushing the retired grid dropped the oldest
	// history entry.
	Evicted      bool
	HistoryDepth int
}

// Life owns the live grid, the history of retired grids and the RNG.
type Life struct {
	cfg Config

	grid    *core.Grid
	history *history.Buffer
	rng     *core.RNG
	seed    int64

	generation uint64
	last       StepResult
}

// New returns a seeded simulation, or an error when cfg is unusable.
func New(cfg Config) (*Life, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Life{
		cfg:     cfg,
		history: history.New(cfg.Levels),
	}
	l.Reset(0)
	return l, nil
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Cols, H: l.cfg.Rows} }

// Grid exposes the live generation. Callers must treat it as read-only.
func (l *Life) Grid() *core.Grid { return l.grid }

// Past lists retained generations from most recent to oldest.
func (l *Life) Past() []*core.Grid { return l.history.Snapshot() }

// History exposes the retained generations.
func (l *Life) History() *history.Buffer { return l.history }

// Generation returns the index of the live grid; a fresh reset is generation 0.
func (l *Life) Generation() uint64 { return l.generation }

// Seed returns the seed of the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// LastStep returns the summary of the most recent Step.
func (l *Life) LastStep() StepResult { return l.last }

// Reset clears history and seeds a blank grid with Cells random draws. A zero
// seed reuses the configured one.
func (l *Life) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = l.cfg.Seed
	}
	l.seed = effective
	l.rng = core.NewRNG(effective)
	l.grid = core.NewGrid(l.cfg.Cols, l.cfg.Rows)
	scatter(l.grid, l.cfg.Cells, l.rng)
	l.history.Reset()
	l.generation = 0
	l.last = StepResult{Population: l.grid.Population()}
}

// Step advances the simulation by one generation: the rules are applied into
// a fresh grid, the population floor is enforced on it, and the outgoing grid
// is handed to the history buffer.
func (l *Life) Step() StepResult {
	cur := l.grid
	next := core.Advance(cur)
	born, died := core.Diff(cur, next)
	injected := Repopulate(next, l.cfg.Floor(), l.rng)

	evicted := l.history.Push(cur) != nil
	l.grid = next
	l.generation++

	l.last = StepResult{
		Generation:   l.generation,
		Population:   next.Population(),
		Born:         born,
		Died:         died,
		Injected:     injected,
		Evicted:      evicted,
		HistoryDepth: l.history.Len(),
	}
	return l.last
}

// Load replaces the live grid with a copy of g and clears history. It is used
// to start from a known pattern.
func (l *Life) Load(g *core.Grid) {
	if g.W != l.cfg.Cols || g.H != l.cfg.Rows {
		panic("life: Load grid size does not match config")
	}
	l.grid = g.Clone()
	l.history.Reset()
	l.generation = 0
	l.last = StepResult{Population: l.grid.Population()}
}
