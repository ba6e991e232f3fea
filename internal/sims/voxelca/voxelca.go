// Package voxelca hosts the 3D sand/water/life automaton behind the core.Sim
// contract. The cube is exposed to 2D viewers through a projected display
// buffer; external edits are queued and applied between ticks.
package voxelca

import (
	"sync"
	"time"

	"voxel-ca/internal/core"
	"voxel-ca/internal/rules"
	"voxel-ca/internal/voxel"
	pcore "voxel-ca/pkg/core"
)

// sceneSalt separates the scene layout stream from the engine stream.
const sceneSalt = 0x5ce7e

// Observer receives per-tick measurements.
type Observer interface {
	ObserveTick(elapsed time.Duration, stats rules.Stats, counts [voxel.MaterialCount]int)
}

type placement struct {
	x, y, z int
	m       voxel.Material
	column  bool
}

// Sim couples a voxel grid with its rule engine.
type Sim struct {
	cfg     Config
	grid    *voxel.Grid
	engine  *rules.Engine
	display *core.ByteGrid
	scene   Scene

	view  View
	layer int
	brush voxel.Material

	seed     int64
	tick     uint64
	observer Observer
	scratch  []byte

	mu      sync.Mutex
	pending []placement
}

// New returns a Sim using the default configuration.
func New() *Sim {
	s, err := NewWithConfig(DefaultConfig())
	if err != nil {
		panic(err)
	}
	return s
}

// NewWithConfig validates cfg and returns a Sim reset to cfg.Seed.
func NewWithConfig(cfg Config) (*Sim, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scene, _ := lookupScene(cfg.Scene)
	lifeRule, _ := rules.ParseLifeRule(cfg.LifeRule)
	view, _ := ParseView(cfg.View)
	brush, _ := parseBrush(cfg.Brush)

	grid := voxel.NewGrid()
	n := grid.Size()
	s := &Sim{
		cfg:     cfg,
		grid:    grid,
		engine:  rules.New(pcore.NewRNG(cfg.Seed), rules.WithLifeRule(lifeRule)),
		display: core.NewByteGrid(n, n),
		scene:   scene,
		view:    view,
		layer:   cfg.Layer,
		brush:   brush,
	}
	s.Reset(cfg.Seed)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "voxel" }

// Size reports the display dimensions.
func (s *Sim) Size() core.Size { return s.display.Size() }

// Cells exposes the projected display buffer of material values.
func (s *Sim) Cells() []uint8 { return s.display.Cells() }

// Grid exposes the underlying voxel grid. Direct writes bypass the placement
// queue and must happen between ticks.
func (s *Sim) Grid() *voxel.Grid { return s.grid }

// Engine exposes the rule engine.
func (s *Sim) Engine() *rules.Engine { return s.engine }

// Tick returns the number of ticks since the last reset.
func (s *Sim) Tick() uint64 { return s.tick }

// Seed returns the seed of the last reset.
func (s *Sim) Seed() int64 { return s.seed }

// View returns the active projection.
func (s *Sim) View() View { return s.view }

// Layer returns the z layer shown by the slice view.
func (s *Sim) Layer() int { return s.layer }

// Brush returns the material placed by PaintAt.
func (s *Sim) Brush() voxel.Material { return s.brush }

// SetObserver installs o to receive tick measurements; nil disables it.
func (s *Sim) SetObserver(o Observer) { s.observer = o }

// Reset rebuilds the world from the configured scene. A zero seed selects
// the configured seed.
func (s *Sim) Reset(seed int64) {
	if seed == 0 {
		seed = s.cfg.Seed
	}
	s.seed = seed

	s.mu.Lock()
	s.pending = s.pending[:0]
	s.mu.Unlock()

	s.grid.Reset()
	s.engine.Reseed(seed)
	s.scene(s.grid, pcore.NewRNG(seed^sceneSalt), seed)
	s.tick = 0
	s.rebuildDisplay()
}

// ClearGrid empties the interior, keeping the boundary walls and the tick
// counter.
func (s *Sim) ClearGrid() {
	s.mu.Lock()
	s.pending = s.pending[:0]
	s.mu.Unlock()

	s.grid.Reset()
	s.rebuildDisplay()
}

// Step applies queued placements and advances the world by one tick.
func (s *Sim) Step() {
	start := time.Now()
	s.applyPending()
	stats := s.engine.Step(s.grid)
	s.tick++
	s.rebuildDisplay()
	if s.observer != nil {
		s.observer.ObserveTick(time.Since(start), stats, s.grid.Count())
	}
}

// Flush applies queued placements without advancing the world, so a paused
// viewer can show them.
func (s *Sim) Flush() {
	if s.applyPending() > 0 {
		s.rebuildDisplay()
	}
}

// Place queues m for (x, y, z). It is safe to call from any goroutine; the
// write lands at the start of the next Step or Flush.
func (s *Sim) Place(x, y, z int, m voxel.Material) bool {
	if !s.grid.InBounds(x, y, z) || !m.Valid() {
		return false
	}
	s.mu.Lock()
	s.pending = append(s.pending, placement{x: x, y: y, z: z, m: m})
	s.mu.Unlock()
	return true
}

// PaintColumn queues m to land one cell above whatever a downward ray
// through column (x, z) hits first. The ray is cast when the queue is
// applied, against the state current at that tick boundary.
func (s *Sim) PaintColumn(x, z int, m voxel.Material) bool {
	n := s.grid.Size()
	if x <= 0 || x >= n-1 || z <= 0 || z >= n-1 || !m.Valid() {
		return false
	}
	s.mu.Lock()
	s.pending = append(s.pending, placement{x: x, z: z, m: m, column: true})
	s.mu.Unlock()
	return true
}

// PaintAt places the brush at a display coordinate: into the visible slice
// cell, or on top of the column in the top view. Boundary cells are refused.
func (s *Sim) PaintAt(dx, dy int) bool {
	x, y, z, ok := s.displayToGrid(dx, dy)
	if !ok {
		return false
	}
	if s.view == ViewTop {
		return s.PaintColumn(x, z, s.brush)
	}
	if s.grid.IsBoundary(x, y, z) {
		return false
	}
	return s.Place(x, y, z, s.brush)
}

// Pending reports the number of queued placements.
func (s *Sim) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Counts returns the population of each material.
func (s *Sim) Counts() [voxel.MaterialCount]int { return s.grid.Count() }

func (s *Sim) applyPending() int {
	s.mu.Lock()
	queued := s.pending
	s.pending = nil
	s.mu.Unlock()

	n := s.grid.Size()
	for _, p := range queued {
		if !p.column {
			s.grid.Set(p.x, p.y, p.z, p.m)
			continue
		}
		origin := voxel.Vec3{X: float64(p.x) + 0.5, Y: float64(n) - 1.5, Z: float64(p.z) + 0.5}
		hit, ok := s.grid.Raycast(origin, voxel.Vec3{Y: -1}, float64(n), 0)
		if !ok {
			continue
		}
		if y := hit.Y + 1; s.grid.InBounds(p.x, y, p.z) && !s.grid.IsBoundary(p.x, y, p.z) {
			s.grid.Set(p.x, y, p.z, p.m)
		}
	}
	return len(queued)
}

func init() {
	// FromMap drops invalid fields one at a time, so the result always validates.
	core.Register("voxel", func(cfg map[string]string) core.Sim {
		s, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			panic(err)
		}
		return s
	})
}
