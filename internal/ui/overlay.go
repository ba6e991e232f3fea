//go:build ebiten

package ui

import (
	"image/color"

	"voxel-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type cellDescriber interface {
	Describe(dx, dy int) (string, bool)
}

// Overlay outlines the display cell under the cursor and names the grid cell
// behind it. G toggles it.
type Overlay struct {
	sim   core.Sim
	scale int
	show  bool
	pixel *ebiten.Image

	hoverX, hoverY int
	hovering       bool
	label          string
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{sim: sim, scale: scale, show: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update tracks the hovered cell.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.show = !o.show
	}
	mx, my := ebiten.CursorPosition()
	size := o.sim.Size()
	o.hoverX, o.hoverY = mx/o.scale, my/o.scale
	o.hovering = mx >= 0 && my >= 0 && o.hoverX < size.W && o.hoverY < size.H
	o.label = ""
	if !o.hovering {
		return
	}
	if d, ok := o.sim.(cellDescriber); ok {
		o.label, _ = d.Describe(o.hoverX, o.hoverY)
	}
}

// Draw paints the cursor outline and label over the simulation view.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.show || !o.hovering {
		return
	}
	x := float64(o.hoverX * o.scale)
	y := float64(o.hoverY * o.scale)
	s := float64(o.scale)
	edge := color.RGBA{R: 255, G: 255, B: 255, A: 200}
	o.rect(screen, x, y, s, 1, edge)
	o.rect(screen, x, y+s-1, s, 1, edge)
	o.rect(screen, x, y, 1, s, edge)
	o.rect(screen, x+s-1, y, 1, s, edge)

	if o.label == "" {
		return
	}
	h := o.sim.Size().H * o.scale
	o.rect(screen, 0, float64(h-20), float64(len(o.label)*7+12), 20, color.RGBA{A: 180})
	text.Draw(screen, o.label, basicfont.Face7x13, 6, h-6, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (o *Overlay) rect(dst *ebiten.Image, x, y, w, h float64, c color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(o.pixel, op)
}
