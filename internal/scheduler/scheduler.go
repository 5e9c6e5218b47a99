// Package scheduler drives the simulation and the renderer from a host frame
// callback at a fixed tick rate.
package scheduler

import (
	"time"

	"stalagmite/internal/compositor"
	"stalagmite/internal/core"
	"stalagmite/internal/life"
)

// RenderService is the narrow surface the scheduler drives once per tick.
// BeginFrame and EndFrame bracket the placements of a tick; EndFrame releases
// every proxy created since BeginFrame, even when none were placed.
type RenderService interface {
	BeginFrame()
	PlaceCell(pos [3]float64, depth int)
	Render()
	EndFrame()
	Now() time.Time
}

// Simulation is the automaton being advanced.
type Simulation interface {
	compositor.Source
	Step() life.StepResult
}

// Options configure the tick cadence.
type Options struct {
	TPS int
	// MaxCatchUp bounds the ticks one Poll may run. Zero means unbounded.
	MaxCatchUp int
}

// Scheduler owns the fixed-step accumulator and runs whole ticks.
type Scheduler struct {
	sim  Simulation
	comp *compositor.Compositor
	svc  RenderService
	step *core.FixedStep

	maxCatchUp int
	paused     bool
	ticks      uint64
	observers  []func(life.StepResult)
}

// New wires a scheduler. The render service also supplies the clock.
func New(sim Simulation, comp *compositor.Compositor, svc RenderService, opts Options) *Scheduler {
	maxCatchUp := opts.MaxCatchUp
	if maxCatchUp < 0 {
		maxCatchUp = 0
	}
	return &Scheduler{
		sim:        sim,
		comp:       comp,
		svc:        svc,
		step:       core.NewFixedStep(opts.TPS, svc.Now),
		maxCatchUp: maxCatchUp,
	}
}

// OnStep registers fn to run after every tick with that tick's step summary.
func (s *Scheduler) OnStep(fn func(life.StepResult)) {
	s.observers = append(s.observers, fn)
}

// Interval returns the fixed tick duration.
func (s *Scheduler) Interval() time.Duration { return s.step.Interval() }

// Ticks returns the number of ticks run so far.
func (s *Scheduler) Ticks() uint64 { return s.ticks }

// Paused reports whether polling is suspended.
func (s *Scheduler) Paused() bool { return s.paused }

// Pause suspends polling.
func (s *Scheduler) Pause() { s.paused = true }

// Resume restarts polling without crediting the time spent paused.
func (s *Scheduler) Resume() {
	if !s.paused {
		return
	}
	s.paused = false
	s.step.Resync()
}

// TogglePause flips between paused and running.
func (s *Scheduler) TogglePause() {
	if s.paused {
		s.Resume()
		return
	}
	s.Pause()
}

// Poll banks the time elapsed since the previous poll and runs one tick per
// whole interval banked. It is meant to be called once per host frame and
// returns the number of ticks run.
func (s *Scheduler) Poll() int {
	if s.paused {
		s.step.Resync()
		return 0
	}
	s.step.Accumulate()
	n := 0
	for s.step.ShouldStep() {
		s.Tick()
		n++
		if s.maxCatchUp > 0 && n >= s.maxCatchUp {
			s.step.Fold()
			break
		}
	}
	return n
}

// Tick runs one full tick immediately: the current generations are placed,
// the simulation advances, and the frame is rendered and released.
func (s *Scheduler) Tick() life.StepResult {
	res := s.frame()
	s.ticks++
	for _, fn := range s.observers {
		fn(res)
	}
	return res
}

func (s *Scheduler) frame() life.StepResult {
	s.svc.BeginFrame()
	defer s.svc.EndFrame()
	s.comp.Composite(s.sim, s.svc)
	res := s.sim.Step()
	s.svc.Render()
	return res
}
