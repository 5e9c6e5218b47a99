//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"stalagmite/internal/app"
	"stalagmite/internal/config"
	"stalagmite/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	flags := config.NewFlags()
	flags.Bind(flag.CommandLine)
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := flags.Resolve()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	game, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to start", "error", err)
		os.Exit(1)
	}
	if *logStats {
		rec := telemetry.NewRecorder(telemetry.NewCollector(cfg.Telemetry.Window), nil, true)
		game.Scheduler().OnStep(rec.Observe)
	}

	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("stalagmite")
	ebiten.SetTPS(cfg.Screen.TargetFPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		slog.Error("game exited", "error", err)
		os.Exit(1)
	}
}
