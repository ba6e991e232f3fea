package voxelca

import (
	"fmt"
	"sort"

	"github.com/aquilax/go-perlin"

	"voxel-ca/internal/voxel"
	"voxel-ca/pkg/core"
)

// Scene fills a freshly reset grid. The rng is private to the scene so that
// scene layout never shifts the engine's tie-break stream.
type Scene func(g *voxel.Grid, rng *core.RNG, seed int64)

var scenes = map[string]Scene{
	"empty":       func(*voxel.Grid, *core.RNG, int64) {},
	"pool":        scenePool,
	"sandpile":    sceneSandpile,
	"life-random": sceneLifeRandom,
	"life-cube":   sceneLifeCube,
	"life-block":  sceneLifeBlock,
	"dunes":       sceneDunes,
}

// Scenes lists the available scene names in lexical order.
func Scenes() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func lookupScene(name string) (Scene, error) {
	s, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Scenes())
	}
	return s, nil
}

func fillBox(g *voxel.Grid, m voxel.Material, x0, x1, y0, y1, z0, z1 int) {
	for z := z0; z < z1; z++ {
		for y := y0; y < y1; y++ {
			for x := x0; x < x1; x++ {
				g.Set(x, y, z, m)
			}
		}
	}
}

func scenePool(g *voxel.Grid, _ *core.RNG, _ int64) {
	fillBox(g, voxel.Water, 5, 59, 2, 25, 5, 59)
}

func sceneSandpile(g *voxel.Grid, _ *core.RNG, _ int64) {
	fillBox(g, voxel.Sand, 15, 49, 35, 55, 15, 49)
}

func sceneLifeRandom(g *voxel.Grid, rng *core.RNG, _ int64) {
	for z := 24; z < 40; z++ {
		for y := 32; y < 48; y++ {
			for x := 24; x < 40; x++ {
				if rng.Float64() < 0.38 {
					g.Set(x, y, z, voxel.Life)
				}
			}
		}
	}
}

func sceneLifeCube(g *voxel.Grid, _ *core.RNG, _ int64) {
	fillBox(g, voxel.Life, 26, 38, 34, 46, 26, 38)
}

func sceneLifeBlock(g *voxel.Grid, _ *core.RNG, _ int64) {
	fillBox(g, voxel.Life, 32, 34, 40, 42, 32, 34)
}

const (
	duneBase  = 2
	duneRange = 14
	duneScale = 0.08
)

// sceneDunes raises a Perlin heightmap of sand from the floor.
func sceneDunes(g *voxel.Grid, _ *core.RNG, seed int64) {
	noise := perlin.NewPerlin(2, 2, 3, seed)
	n := g.Size()
	for z := 1; z < n-1; z++ {
		for x := 1; x < n-1; x++ {
			v := (noise.Noise2D(float64(x)*duneScale, float64(z)*duneScale) + 1) / 2
			if v < 0 {
				v = 0
			}
			if v > 1 {
				v = 1
			}
			h := duneBase + int(v*duneRange)
			for y := 1; y <= h; y++ {
				g.Set(x, y, z, voxel.Sand)
			}
		}
	}
}
