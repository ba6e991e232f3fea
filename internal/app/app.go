//go:build ebiten

package app

import (
	"time"

	"voxel-ca/internal/core"
	"voxel-ca/internal/render"
	"voxel-ca/internal/ui"
	"voxel-ca/internal/voxel"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HUDWidth is the width in pixels of the parameter panel.
const HUDWidth = 220

var brushKeys = map[ebiten.Key]voxel.Material{
	ebiten.KeyDigit1: voxel.Sand,
	ebiten.KeyDigit2: voxel.Water,
	ebiten.KeyDigit3: voxel.Wall,
	ebiten.KeyDigit4: voxel.Life,
}

type painter interface {
	PaintAt(dx, dy int) bool
}

type flusher interface {
	Flush()
}

type clearer interface {
	ClearGrid()
}

type intParams interface {
	core.IntParameterSetter
	IntParameter(key string) (int, bool)
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation. The simulation advances
// at tps ticks per second independently of the frame rate.
func New(sim core.Sim, scale, tps int, seed int64) *Game {
	gp := render.NewGridPainter(sim.Size().W, sim.Size().H, render.MaterialPalette())
	return &Game{
		sim:     sim,
		painter: gp,
		hud:     ui.NewHUD(sim, HUDWidth),
		overlay: ui.NewOverlay(sim, scale),
		clock:   core.NewFixedStep(tps),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
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
		if c, ok := g.sim.(clearer); ok {
			c.ClearGrid()
		}
	}
	g.handleParamKeys()

	g.overlay.Update()
	clickedHUD := g.hud.Update(g.viewWidth())
	if !clickedHUD && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.paint()
	}

	switch {
	case g.tickOnce:
		g.sim.Step()
		g.tickOnce = false
	case g.paused:
		if f, ok := g.sim.(flusher); ok {
			f.Flush()
		}
	default:
		for g.clock.ShouldStep() {
			g.sim.Step()
		}
	}
	return nil
}

func (g *Game) handleParamKeys() {
	p, ok := g.sim.(intParams)
	if !ok {
		return
	}
	for key, m := range brushKeys {
		if inpututil.IsKeyJustPressed(key) {
			p.SetIntParameter("brush", int(m))
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyV) {
		if v, ok := p.IntParameter("view"); ok {
			if !p.SetIntParameter("view", v+1) {
				p.SetIntParameter("view", 0)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) {
		if l, ok := p.IntParameter("layer"); ok {
			p.SetIntParameter("layer", l+1)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) {
		if l, ok := p.IntParameter("layer"); ok {
			p.SetIntParameter("layer", l-1)
		}
	}
}

func (g *Game) paint() {
	p, ok := g.sim.(painter)
	if !ok {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < 0 || my < 0 || mx >= g.viewWidth() {
		return
	}
	p.PaintAt(mx/g.scale, my/g.scale)
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + HUDWidth, s.H * g.scale
}
