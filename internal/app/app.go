//go:build ebiten

// Package app adapts the scheduler-driven simulation to ebiten.
package app

import (
	"log/slog"
	"time"

	"stalagmite/internal/compositor"
	"stalagmite/internal/config"
	"stalagmite/internal/life"
	"stalagmite/internal/render"
	"stalagmite/internal/scene"
	"stalagmite/internal/scheduler"
	"stalagmite/internal/ui"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	hudWidth   = 220
	minimapPad = 8
)

// Game adapts the simulation to the ebiten.Game interface. ebiten's Update is
// the host frame callback; each one polls the scheduler.
type Game struct {
	cfg   *config.Config
	sim   *life.Life
	comp  *compositor.Compositor
	scene *scene.Scene
	sched *scheduler.Scheduler

	stack   *render.StackPainter
	minimap *render.GridPainter
	hud     *ui.HUD

	width, height int
	tickOnce      bool
	seed          int64
}

// New wires a Game from a validated configuration.
func New(cfg *config.Config) (*Game, error) {
	sim, err := life.New(cfg.Life())
	if err != nil {
		return nil, err
	}
	sc := scene.New(nil)
	comp := compositor.New(cfg.Compositor())
	g := &Game{
		cfg:     cfg,
		sim:     sim,
		comp:    comp,
		scene:   sc,
		sched:   scheduler.New(sim, comp, sc, cfg.Scheduler()),
		minimap: render.NewGridPainter(cfg.Grid.Cols, cfg.Grid.Rows),
		hud:     ui.NewHUD(sim, hudWidth),
		width:   cfg.Screen.Width,
		height:  cfg.Screen.Height,
		seed:    sim.Seed(),
	}
	g.stack = render.NewStackPainter(cfg.Screen.CellSize, float64(g.width)/2, float64(g.height)*0.4)
	return g, nil
}

// Scheduler exposes the tick driver so callers can register observers.
func (g *Game) Scheduler() *scheduler.Scheduler { return g.sched }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.comp.Reset()
	g.tickOnce = false
	slog.Info("reset", "seed", g.sim.Seed())
}

// Update handles input and polls the scheduler.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.sched.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyConfig()
	}

	if g.tickOnce && g.sched.Paused() {
		g.sched.Tick()
	}
	g.tickOnce = false
	g.sched.Poll()

	g.hud.Update(ui.Status{Paused: g.sched.Paused(), Ticks: g.sched.Ticks(), TPS: g.cfg.Schedule.TPS})
	return nil
}

// copyConfig puts the effective configuration, with the current seed, on the
// system clipboard.
func (g *Game) copyConfig() {
	cfg := *g.cfg
	cfg.Population.Seed = g.sim.Seed()
	data, err := cfg.YAML()
	if err != nil {
		slog.Error("copy config", "error", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		slog.Warn("clipboard unavailable", "error", err)
		return
	}
	slog.Info("config copied to clipboard", "seed", cfg.Population.Seed)
}

// Draw paints the last presented frame, a top-down minimap and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(render.Background)
	g.stack.Draw(screen, g.scene.Presented())

	scale := 3
	_, h := g.minimap.Size()
	g.minimap.Blit(screen, g.sim.Grid(), render.LiveColor, render.Background, scale, minimapPad, float64(g.height-h*scale-minimapPad))

	g.hud.Draw(screen, g.width, g.height)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width + g.hud.Width(), g.height
}
