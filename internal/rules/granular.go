package rules

import "voxel-ca/internal/voxel"

// lateral lists the four horizontal offsets in draw order: +x, -x, +z, -z.
var lateral = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// updateSand drops sand straight down, or else slides it one cell down a
// randomly chosen diagonal. Only the drawn diagonal is tried.
func (e *Engine) updateSand(g *voxel.Grid, x, y, z int) {
	if y == 0 {
		return
	}
	if g.Get(x, y-1, z) == voxel.Empty {
		e.move(g, voxel.Sand, x, y, z, x, y-1, z)
		return
	}
	d := lateral[e.rng.IntN(len(lateral))]
	e.move(g, voxel.Sand, x, y, z, x+d[0], y-1, z+d[1])
}

// updateWater drops water straight down, or else spreads it one cell in a
// randomly chosen horizontal direction.
func (e *Engine) updateWater(g *voxel.Grid, x, y, z int) {
	if y == 0 {
		return
	}
	if g.Get(x, y-1, z) == voxel.Empty {
		e.move(g, voxel.Water, x, y, z, x, y-1, z)
		return
	}
	d := lateral[e.rng.IntN(len(lateral))]
	e.move(g, voxel.Water, x, y, z, x+d[0], y, z+d[1])
}
