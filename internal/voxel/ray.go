package voxel

import "math"

// Vec3 is a point or direction in grid space, one unit per cell.
type Vec3 struct {
	X, Y, Z float64
}

// Hit describes the first occupied cell found by Raycast.
type Hit struct {
	X, Y, Z  int
	Material Material
}

const (
	// DefaultRayDistance bounds how far Raycast marches.
	DefaultRayDistance = 100.0
	// DefaultRayStep is the march increment.
	DefaultRayStep = 0.1
)

// Raycast marches from origin along dir in fixed increments and returns the
// first in-bounds cell that is not Empty. Samples outside the grid are
// skipped rather than treated as walls, so a ray may start outside the cube.
// dir does not need to be normalized. Non-positive maxDist or step select the
// defaults.
func (g *Grid) Raycast(origin, dir Vec3, maxDist, step float64) (Hit, bool) {
	if maxDist <= 0 {
		maxDist = DefaultRayDistance
	}
	if step <= 0 {
		step = DefaultRayStep
	}
	length := math.Sqrt(dir.X*dir.X + dir.Y*dir.Y + dir.Z*dir.Z)
	if length == 0 {
		return Hit{}, false
	}
	dx, dy, dz := dir.X/length*step, dir.Y/length*step, dir.Z/length*step

	px, py, pz := origin.X, origin.Y, origin.Z
	for t := 0.0; t < maxDist; t += step {
		px += dx
		py += dy
		pz += dz

		x := int(math.Floor(px))
		y := int(math.Floor(py))
		z := int(math.Floor(pz))
		if !g.InBounds(x, y, z) {
			continue
		}
		if m := g.cur[z*N*N+y*N+x]; m != Empty {
			return Hit{X: x, Y: y, Z: z, Material: m}, true
		}
	}
	return Hit{}, false
}
