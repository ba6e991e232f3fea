//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"voxel-ca/internal/app"
	"voxel-ca/internal/core"
	"voxel-ca/internal/sims/voxelca"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := app.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	if cfg.Sim == "voxel" {
		if _, err := voxelca.ParseOptions(cfg.SimOptions()); err != nil {
			log.Fatal(err)
		}
	}

	factory, err := core.Lookup(cfg.Sim)
	if err != nil {
		log.Fatal(err)
	}

	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.TPS, cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("voxel-ca: " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+app.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
