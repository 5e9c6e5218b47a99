// Package telemetry turns step results into per-generation records and
// windowed population statistics for logging and CSV output.
package telemetry

import (
	"log/slog"

	"stalagmite/internal/life"
)

// GenerationRecord is one CSV row per generation.
type GenerationRecord struct {
	Generation   uint64 `csv:"generation"`
	Population   int    `csv:"population"`
	Born         int    `csv:"born"`
	Died         int    `csv:"died"`
	Injected     int    `csv:"injected"`
	HistoryDepth int    `csv:"history_depth"`
}

// RecordFromStep converts a step summary into a CSV row.
func RecordFromStep(res life.StepResult) GenerationRecord {
	return GenerationRecord{
		Generation:   res.Generation,
		Population:   res.Population,
		Born:         res.Born,
		Died:         res.Died,
		Injected:     res.Injected,
		HistoryDepth: res.HistoryDepth,
	}
}

// WindowStats holds aggregated statistics for a run of generations.
type WindowStats struct {
	WindowStart uint64 `csv:"window_start"`
	WindowEnd   uint64 `csv:"window_end"`

	// Population sampled after each step
	PopMean float64 `csv:"pop_mean"`
	PopStd  float64 `csv:"pop_std"`
	PopMin  float64 `csv:"pop_min"`
	PopMax  float64 `csv:"pop_max"`

	Births        int `csv:"births"`
	Deaths        int `csv:"deaths"`
	Injected      int `csv:"injected"`
	Repopulations int `csv:"repopulations"` // Steps where the floor injected cells
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStart),
		slog.Uint64("window_end", s.WindowEnd),
		slog.Float64("pop_mean", s.PopMean),
		slog.Float64("pop_std", s.PopStd),
		slog.Float64("pop_min", s.PopMin),
		slog.Float64("pop_max", s.PopMax),
		slog.Int("births", s.Births),
		slog.Int("deaths", s.Deaths),
		slog.Int("injected", s.Injected),
		slog.Int("repopulations", s.Repopulations),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEnd,
		"pop_mean", s.PopMean,
		"pop_std", s.PopStd,
		"pop_min", s.PopMin,
		"pop_max", s.PopMax,
		"births", s.Births,
		"deaths", s.Deaths,
		"injected", s.Injected,
		"repopulations", s.Repopulations,
	)
}
