package scene

import (
	"testing"
	"time"

	"stalagmite/internal/compositor"
	"stalagmite/internal/life"
	"stalagmite/internal/scheduler"
)

func TestFrameLifecycleReleasesProxies(t *testing.T) {
	s := New(nil)
	s.BeginFrame()
	s.PlaceCell([3]float64{1, 10, 2}, 0)
	s.PlaceCell([3]float64{0, 9, 0}, 1)
	s.PlaceCell([3]float64{3, 8, 1}, 2)
	if s.Live() != 3 {
		t.Fatalf("live proxies = %d, want 3", s.Live())
	}
	s.Render()
	s.EndFrame()
	if s.Live() != 0 {
		t.Fatalf("EndFrame left %d proxies", s.Live())
	}

	f := s.Presented()
	if f.Seq != 1 || len(f.Proxies) != 3 || f.MaxDepth != 2 {
		t.Fatalf("presented frame = %+v", f)
	}
	for i := 1; i < len(f.Proxies); i++ {
		if f.Proxies[i].Depth > f.Proxies[i-1].Depth {
			t.Fatalf("proxies not ordered deepest first: %+v", f.Proxies)
		}
	}
	if f.Proxies[2] != (Proxy{X: 1, Y: 10, Z: 2, Depth: 0}) {
		t.Fatalf("live-layer proxy = %+v", f.Proxies[2])
	}
}

func TestEmptyFrameReplacesPresented(t *testing.T) {
	s := New(nil)
	s.BeginFrame()
	s.PlaceCell([3]float64{}, 0)
	s.Render()
	s.EndFrame()

	s.BeginFrame()
	s.Render()
	s.EndFrame()
	if f := s.Presented(); f.Seq != 2 || len(f.Proxies) != 0 {
		t.Fatalf("empty frame not presented: %+v", f)
	}
}

func TestFrameScopeMisuse(t *testing.T) {
	mustPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s did not panic", name)
			}
		}()
		fn()
	}
	s := New(nil)
	mustPanic("PlaceCell outside frame", func() { s.PlaceCell([3]float64{}, 0) })
	mustPanic("Render outside frame", s.Render)
	mustPanic("EndFrame without BeginFrame", s.EndFrame)
	s.BeginFrame()
	mustPanic("nested BeginFrame", s.BeginFrame)
}

func TestSceneUnderScheduler(t *testing.T) {
	clock := NewStepClock(time.Unix(0, 0).Add(time.Hour))
	s := New(clock.Now)
	sim, err := life.New(life.Config{Rows: 10, Cols: 10, Cells: 30, Levels: 4, Seed: 21})
	if err != nil {
		t.Fatal(err)
	}
	sched := scheduler.New(sim, compositor.New(compositor.DefaultOptions()), s, scheduler.Options{TPS: 30})

	sched.Poll()
	for i := 0; i < 10; i++ {
		drawn := sim.Grid().Population()
		for _, g := range sim.Past() {
			drawn += g.Population()
		}
		before := sched.Ticks()

		clock.Advance(sched.Interval())
		sched.Poll()
		if s.Live() != 0 {
			t.Fatalf("poll %d leaked %d proxies", i, s.Live())
		}
		if sched.Ticks() == before {
			continue
		}
		f := s.Presented()
		if len(f.Proxies) != drawn {
			t.Fatalf("poll %d presented %d proxies, want %d", i, len(f.Proxies), drawn)
		}
		if f.MaxDepth > sim.History().Capacity() {
			t.Fatalf("presented depth %d beyond history capacity", f.MaxDepth)
		}
	}
	if sched.Ticks() == 0 {
		t.Fatal("scheduler never ticked")
	}
}
