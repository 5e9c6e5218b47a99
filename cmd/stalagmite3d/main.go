//go:build raylib

package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"stalagmite/internal/compositor"
	"stalagmite/internal/config"
	"stalagmite/internal/life"
	"stalagmite/internal/render3d"
	"stalagmite/internal/scene"
	"stalagmite/internal/scheduler"
	"stalagmite/internal/telemetry"
)

const (
	buttonW = 110
	buttonH = 30
	pad     = 10
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	maxTicks := flag.Int("max-ticks", 0, "Close after N ticks (0 = unlimited)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := flags.Resolve()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	sim, err := life.New(cfg.Life())
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}

	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "stalagmite 3D")
	defer rl.CloseWindow()
	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	sc := scene.New(nil)
	comp := compositor.New(cfg.Compositor())
	sched := scheduler.New(sim, comp, sc, cfg.Scheduler())
	if *logStats {
		rec := telemetry.NewRecorder(telemetry.NewCollector(cfg.Telemetry.Window), nil, true)
		sched.OnStep(rec.Observe)
	}
	painter := render3d.NewPainter()

	reset := func(seed int64) {
		sim.Reset(seed)
		comp.Reset()
		slog.Info("reset", "seed", sim.Seed())
	}
	seed := sim.Seed()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeySpace) {
			sched.TogglePause()
		}
		if rl.IsKeyPressed(rl.KeyN) && sched.Paused() {
			sched.Tick()
		}
		if rl.IsKeyPressed(rl.KeyW) {
			painter.ToggleWires()
		}
		if rl.IsKeyPressed(rl.KeyC) {
			copyConfig(cfg, sim.Seed())
		}
		sched.Poll()

		rl.BeginDrawing()
		rl.ClearBackground(rl.NewColor(16, 16, 20, 255))
		painter.Draw(sc.Presented())

		x := float32(pad)
		y := float32(cfg.Screen.Height - buttonH - pad)
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: buttonH}, toggleText(sched.Paused(), "Resume", "Pause")) {
			sched.TogglePause()
		}
		x += buttonW + pad
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: buttonH}, "Step") && sched.Paused() {
			sched.Tick()
		}
		x += buttonW + pad
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: buttonH}, "Reset") {
			reset(seed)
		}
		x += buttonW + pad
		if gui.Button(rl.Rectangle{X: x, Y: y, Width: buttonW, Height: buttonH}, "Reseed") {
			seed = time.Now().UnixNano()
			reset(seed)
		}

		last := sim.LastStep()
		rl.DrawText(fmt.Sprintf("generation %d  alive %d  floor %d  depth %d/%d",
			sim.Generation(), last.Population, cfg.Life().Floor(), sim.History().Len(), cfg.History.Levels),
			pad, pad, 16, rl.RayWhite)
		rl.DrawText(fmt.Sprintf("seed %d  tps %d", sim.Seed(), cfg.Schedule.TPS), pad, pad+20, 14, rl.Gray)
		rl.DrawText("Space pause  N step  W wires  C copy config", pad, pad+38, 12, rl.LightGray)
		rl.EndDrawing()

		if *maxTicks > 0 && sched.Ticks() >= uint64(*maxTicks) {
			slog.Info("max ticks reached", "tick", sched.Ticks())
			break
		}
	}
}

func copyConfig(cfg *config.Config, seed int64) {
	c := *cfg
	c.Population.Seed = seed
	data, err := c.YAML()
	if err != nil {
		slog.Error("copy config", "error", err)
		return
	}
	rl.SetClipboardText(string(data))
	slog.Info("config copied to clipboard", "seed", seed)
}

func toggleText(on bool, onText, offText string) string {
	if on {
		return onText
	}
	return offText
}
