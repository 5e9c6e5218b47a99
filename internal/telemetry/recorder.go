package telemetry

import (
	"log/slog"

	"stalagmite/internal/life"
)

// Recorder feeds step results to a collector and an optional output manager.
// Its Observe method is meant to be registered with Scheduler.OnStep.
type Recorder struct {
	collector *Collector
	out       *OutputManager
	logStats  bool
	err       error
}

// NewRecorder wires a recorder. out may be nil to disable CSV output.
func NewRecorder(collector *Collector, out *OutputManager, logStats bool) *Recorder {
	return &Recorder{collector: collector, out: out, logStats: logStats}
}

// Observe records one step. Output errors are logged once and retained; later
// writes are skipped.
func (r *Recorder) Observe(res life.StepResult) {
	if res.Injected > 0 {
		slog.Debug("repopulated", "generation", res.Generation, "injected", res.Injected, "population", res.Population)
	}
	if r.err == nil {
		r.fail(r.out.WriteGeneration(RecordFromStep(res)))
	}
	if stats, ok := r.collector.Record(res); ok {
		r.emit(stats)
	}
}

// Finish flushes a partial window, if any.
func (r *Recorder) Finish() {
	if r.collector.Pending() == 0 {
		return
	}
	r.emit(r.collector.Flush())
}

// Err returns the first output error encountered.
func (r *Recorder) Err() error { return r.err }

func (r *Recorder) emit(stats WindowStats) {
	if r.logStats {
		stats.LogStats()
	}
	if r.err == nil {
		r.fail(r.out.WriteWindow(stats))
	}
}

func (r *Recorder) fail(err error) {
	if err == nil {
		return
	}
	r.err = err
	slog.Error("telemetry output failed", "dir", r.out.Dir(), "error", err)
}
