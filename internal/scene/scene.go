// Package scene implements the render service on an ECS world. Each tick's
// cell proxies live as entities between BeginFrame and EndFrame; Render
// publishes a copy of them for a graphics backend to paint.
package scene

import (
	"cmp"
	"slices"
	"time"

	"github.com/mlange-42/ark/ecs"
)

// Position is the scene-space location of a proxy.
type Position struct {
	X, Y, Z float64
}

// Layer tags a proxy with the history depth of the generation it shows.
type Layer struct {
	Depth int
}

// Proxy is one cube of a presented frame.
type Proxy struct {
	X, Y, Z float64
	Depth   int
}

// Frame is the set of proxies published by the last Render.
type Frame struct {
	Seq      uint64
	Proxies  []Proxy
	MaxDepth int
}

// Scene tracks proxy lifetimes and the presented frame.
type Scene struct {
	world  *ecs.World
	mapper *ecs.Map2[Position, Layer]
	filter *ecs.Filter2[Position, Layer]
	clock  func() time.Time

	open      bool
	spawned   []ecs.Entity
	seq       uint64
	presented Frame
}

// New returns an empty scene reading time from clock; nil means time.Now.
func New(clock func() time.Time) *Scene {
	if clock == nil {
		clock = time.Now
	}
	world := ecs.NewWorld()
	return &Scene{
		world:  world,
		mapper: ecs.NewMap2[Position, Layer](world),
		filter: ecs.NewFilter2[Position, Layer](world),
		clock:  clock,
	}
}

// Now reports the scene clock.
func (s *Scene) Now() time.Time { return s.clock() }

// BeginFrame opens the per-tick proxy scope.
func (s *Scene) BeginFrame() {
	if s.open {
		panic("scene: BeginFrame called with a frame already open")
	}
	s.open = true
}

// PlaceCell spawns one proxy in the open frame.
func (s *Scene) PlaceCell(pos [3]float64, depth int) {
	if !s.open {
		panic("scene: PlaceCell called outside a frame")
	}
	p := Position{X: pos[0], Y: pos[1], Z: pos[2]}
	l := Layer{Depth: depth}
	s.spawned = append(s.spawned, s.mapper.NewEntity(&p, &l))
}

// Render publishes the proxies of the open frame, deepest layers first.
func (s *Scene) Render() {
	if !s.open {
		panic("scene: Render called outside a frame")
	}
	proxies := make([]Proxy, 0, len(s.spawned))
	maxDepth := 0
	query := s.filter.Query()
	for query.Next() {
		pos, layer := query.Get()
		proxies = append(proxies, Proxy{X: pos.X, Y: pos.Y, Z: pos.Z, Depth: layer.Depth})
		if layer.Depth > maxDepth {
			maxDepth = layer.Depth
		}
	}
	slices.SortStableFunc(proxies, func(a, b Proxy) int {
		if c := cmp.Compare(b.Depth, a.Depth); c != 0 {
			return c
		}
		return cmp.Compare(a.X+a.Z, b.X+b.Z)
	})
	s.seq++
	s.presented = Frame{Seq: s.seq, Proxies: proxies, MaxDepth: maxDepth}
}

// EndFrame removes every proxy spawned since BeginFrame and closes the scope.
func (s *Scene) EndFrame() {
	if !s.open {
		panic("scene: EndFrame called without an open frame")
	}
	for _, e := range s.spawned {
		s.world.RemoveEntity(e)
	}
	s.spawned = s.spawned[:0]
	s.open = false
}

// Presented returns the last rendered frame. The proxies slice is shared and
// must not be modified.
func (s *Scene) Presented() Frame { return s.presented }

// Live returns the number of proxy entities currently in the world.
func (s *Scene) Live() int {
	n := 0
	query := s.filter.Query()
	for query.Next() {
		n++
	}
	return n
}
