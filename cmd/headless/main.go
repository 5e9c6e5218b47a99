// Command headless runs the simulation without graphics, driving the
// scheduler from a manual clock and writing telemetry.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"stalagmite/internal/compositor"
	"stalagmite/internal/config"
	"stalagmite/internal/life"
	"stalagmite/internal/scene"
	"stalagmite/internal/scheduler"
	"stalagmite/internal/telemetry"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	debug := flag.Bool("debug", false, "Log every repopulation")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	cfg, err := flags.Resolve()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := run(cfg, *maxTicks, *outputDir, *logStats); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, maxTicks int, outputDir string, logStats bool) error {
	sim, err := life.New(cfg.Life())
	if err != nil {
		return err
	}

	out, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer out.Close()
	if err := out.WriteConfig(cfg); err != nil {
		return err
	}

	clock := scene.NewStepClock(time.Now())
	sc := scene.New(clock.Now)
	sched := scheduler.New(sim, compositor.New(cfg.Compositor()), sc, cfg.Scheduler())
	rec := telemetry.NewRecorder(telemetry.NewCollector(cfg.Telemetry.Window), out, logStats)
	sched.OnStep(rec.Observe)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	slog.Info("starting headless simulation",
		"seed", sim.Seed(),
		"rows", cfg.Grid.Rows,
		"cols", cfg.Grid.Cols,
		"floor", cfg.Life().Floor(),
		"levels", cfg.History.Levels,
		"max_ticks", maxTicks,
		"output_dir", out.Dir(),
	)

	start := time.Now()
	for ctx.Err() == nil {
		clock.Advance(sched.Interval())
		sched.Poll()
		if maxTicks > 0 && sched.Ticks() >= uint64(maxTicks) {
			slog.Info("max ticks reached", "tick", sched.Ticks())
			break
		}
	}
	rec.Finish()

	last := sim.LastStep()
	slog.Info("finished",
		"ticks", sched.Ticks(),
		"generation", sim.Generation(),
		"population", last.Population,
		"history_depth", sim.History().Len(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return rec.Err()
}
