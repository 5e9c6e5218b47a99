package telemetry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"stalagmite/internal/life"
)

// Collector accumulates step results and produces WindowStats every window
// generations.
type Collector struct {
	window int

	windowStart uint64
	last        uint64

	populations   []float64
	births        int
	deaths        int
	injected      int
	repopulations int
}

// NewCollector creates a collector flushing every window steps. A window of
// zero or less disables automatic flushing.
func NewCollector(window int) *Collector {
	if window < 0 {
		window = 0
	}
	return &Collector{window: window, populations: make([]float64, 0, window)}
}

// Window returns the number of generations per window.
func (c *Collector) Window() int { return c.window }

// Pending returns the number of steps recorded since the last flush.
func (c *Collector) Pending() int { return len(c.populations) }

// Record adds one step. When the step completes a window the window's stats
// are returned with ok set.
func (c *Collector) Record(res life.StepResult) (stats WindowStats, ok bool) {
	if len(c.populations) == 0 {
		c.windowStart = res.Generation
	}
	c.last = res.Generation
	c.populations = append(c.populations, float64(res.Population))
	c.births += res.Born
	c.deaths += res.Died
	c.injected += res.Injected
	if res.Injected > 0 {
		c.repopulations++
	}
	if c.window > 0 && len(c.populations) >= c.window {
		return c.Flush(), true
	}
	return WindowStats{}, false
}

// Flush produces stats for the steps recorded so far and resets the counters.
// Flushing an empty collector returns zero stats.
func (c *Collector) Flush() WindowStats {
	if len(c.populations) == 0 {
		return WindowStats{}
	}
	mean, std := stat.MeanStdDev(c.populations, nil)
	if len(c.populations) < 2 {
		std = 0
	}
	stats := WindowStats{
		WindowStart:   c.windowStart,
		WindowEnd:     c.last,
		PopMean:       mean,
		PopStd:        std,
		PopMin:        floats.Min(c.populations),
		PopMax:        floats.Max(c.populations),
		Births:        c.births,
		Deaths:        c.deaths,
		Injected:      c.injected,
		Repopulations: c.repopulations,
	}

	c.populations = c.populations[:0]
	c.births = 0
	c.deaths = 0
	c.injected = 0
	c.repopulations = 0
	return stats
}
