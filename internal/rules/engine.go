// Package rules advances a voxel grid by one tick.
//
// Every rule reads neighbour state from the grid's committed buffer and writes
// only into the scratch buffer, so no cell observes another cell's result from
// the same tick. A move into a cell that is Empty in the committed buffer
// always lands unless another mover got there first; it replaces a birth made
// earlier in the same pass. Life updates never overwrite a cell already
// written this tick.
package rules

import (
	"voxel-ca/internal/voxel"
	"voxel-ca/pkg/core"
)

// Stats summarises the writes made during one tick.
type Stats struct {
	Moves  int
	Births int
	Deaths int
}

// claim records which kind of rule wrote a scratch cell during the current
// tick.
type claim uint8

const (
	unclaimed claim = iota
	claimLife
	claimBirth
	claimMove
)

// Engine evaluates the per-material rules. It owns its random stream and is
// not safe for concurrent use.
type Engine struct {
	rng    *core.RNG
	life   LifeRule
	claims []claim
	last   Stats
}

// Option configures an Engine.
type Option func(*Engine)

// WithLifeRule selects the life rule variant.
func WithLifeRule(r LifeRule) Option {
	return func(e *Engine) { e.life = r }
}

// New returns an Engine drawing tie-breaks from rng. A nil rng is replaced by
// a stream seeded with 42.
func New(rng *core.RNG, opts ...Option) *Engine {
	if rng == nil {
		rng = core.NewRNG(42)
	}
	e := &Engine{rng: rng, life: AxisOpen, claims: make([]claim, voxel.N*voxel.N*voxel.N)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// LifeRule reports the active life rule variant.
func (e *Engine) LifeRule() LifeRule { return e.life }

// SetLifeRule switches the life rule variant for subsequent ticks.
func (e *Engine) SetLifeRule(r LifeRule) { e.life = r }

// Reseed restarts the engine's random stream.
func (e *Engine) Reseed(seed int64) { e.rng.Reseed(seed) }

// LastStats returns the statistics of the most recent Step.
func (e *Engine) LastStats() Stats { return e.last }

// Step advances g by one tick: it seeds the scratch buffer from the committed
// one, visits every cell with z ascending, y descending and x ascending, and
// commits the result with a buffer swap.
func (e *Engine) Step(g *voxel.Grid) Stats {
	g.SeedNext()
	for i := range e.claims {
		e.claims[i] = unclaimed
	}
	e.last = Stats{}

	n := g.Size()
	for z := 0; z < n; z++ {
		for y := n - 1; y >= 0; y-- {
			for x := 0; x < n; x++ {
				switch m := g.Get(x, y, z); m {
				case voxel.Sand:
					e.updateSand(g, x, y, z)
				case voxel.Water:
					e.updateWater(g, x, y, z)
				default:
					e.updateLife(g, m, x, y, z)
				}
			}
		}
	}

	g.SwapBuffers()
	return e.last
}

// write stores a life rule's result at idx unless a rule already wrote there
// this tick.
func (e *Engine) write(g *voxel.Grid, idx int, m voxel.Material, kind claim) bool {
	if e.claims[idx] != unclaimed {
		return false
	}
	g.Next()[idx] = m
	e.claims[idx] = kind
	return true
}

// move relocates m from (x,y,z) to (tx,ty,tz). The target must be Empty in
// the committed buffer and not already taken by another mover. A birth
// recorded earlier in the pass is replaced.
func (e *Engine) move(g *voxel.Grid, m voxel.Material, x, y, z, tx, ty, tz int) bool {
	if g.Get(tx, ty, tz) != voxel.Empty {
		return false
	}
	dst := g.Index(tx, ty, tz)
	src := g.Index(x, y, z)
	if e.claims[dst] == claimMove || e.claims[src] == claimMove {
		return false
	}
	if e.claims[dst] == claimBirth {
		e.last.Births--
	}
	next := g.Next()
	next[dst] = m
	next[src] = voxel.Empty
	e.claims[dst] = claimMove
	e.claims[src] = claimMove
	e.last.Moves++
	return true
}
