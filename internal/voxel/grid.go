package voxel

import "fmt"

// N is the side length of the cubic grid.
const N = 64

// Grid stores a cube of materials in two flat buffers indexed z-major.
// Reads always come from the committed buffer; the engine writes the other
// one and commits it with SwapBuffers.
type Grid struct {
	cur []Material
	nxt []Material
}

// NewGrid allocates a grid whose outer shell is Wall and interior is Empty.
func NewGrid() *Grid {
	g := &Grid{
		cur: make([]Material, N*N*N),
		nxt: make([]Material, N*N*N),
	}
	g.sealBoundary()
	return g
}

// Size returns the side length of the cube.
func (g *Grid) Size() int { return N }

// InBounds reports whether the coordinate lies inside [0,N) on every axis.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < N && y >= 0 && y < N && z >= 0 && z < N
}

// IsBoundary reports whether an in-bounds coordinate lies on the outer shell.
func (g *Grid) IsBoundary(x, y, z int) bool {
	return x == 0 || x == N-1 || y == 0 || y == N-1 || z == 0 || z == N-1
}

// Index returns the flat buffer index for (x, y, z). It panics on
// coordinates outside the grid.
func (g *Grid) Index(x, y, z int) int {
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("voxel: index (%d,%d,%d) outside %d^3 grid", x, y, z, N))
	}
	return z*N*N + y*N + x
}

// Get returns the committed material at (x, y, z), or Wall outside the grid.
func (g *Grid) Get(x, y, z int) Material {
	if !g.InBounds(x, y, z) {
		return Wall
	}
	return g.cur[z*N*N+y*N+x]
}

// Set overwrites the committed material at (x, y, z). Out-of-range writes are
// dropped.
func (g *Grid) Set(x, y, z int, m Material) {
	if !g.InBounds(x, y, z) {
		return
	}
	g.cur[z*N*N+y*N+x] = m
}

// Cells exposes the committed buffer. Callers must treat it as read-only.
func (g *Grid) Cells() []Material { return g.cur }

// Next exposes the scratch buffer written during a tick.
func (g *Grid) Next() []Material { return g.nxt }

// SeedNext copies the committed buffer into the scratch buffer so cells
// without an explicit write carry over unchanged.
func (g *Grid) SeedNext() {
	copy(g.nxt, g.cur)
}

// SwapBuffers commits the scratch buffer by exchanging the two slices.
func (g *Grid) SwapBuffers() {
	if len(g.cur) != len(g.nxt) {
		panic(fmt.Sprintf("voxel: buffer length mismatch %d != %d", len(g.cur), len(g.nxt)))
	}
	g.cur, g.nxt = g.nxt, g.cur
}

// Clear sets every cell of both buffers to Empty, boundary included.
func (g *Grid) Clear() {
	for i := range g.cur {
		g.cur[i] = Empty
	}
	for i := range g.nxt {
		g.nxt[i] = Empty
	}
}

// Reset clears the grid and restores the boundary walls.
func (g *Grid) Reset() {
	g.Clear()
	g.sealBoundary()
}

// Count returns the population of every material in the committed buffer.
func (g *Grid) Count() [MaterialCount]int {
	var counts [MaterialCount]int
	for _, m := range g.cur {
		if m < MaterialCount {
			counts[m]++
		}
	}
	return counts
}

// Column returns the height of the topmost non-Empty, non-Wall cell in the
// column at (x, z).
func (g *Grid) Column(x, z int) (int, bool) {
	if !g.InBounds(x, 0, z) {
		return 0, false
	}
	for y := N - 1; y >= 0; y-- {
		m := g.cur[z*N*N+y*N+x]
		if m != Empty && m != Wall {
			return y, true
		}
	}
	return 0, false
}

func (g *Grid) sealBoundary() {
	for z := 0; z < N; z++ {
		for y := 0; y < N; y++ {
			for x := 0; x < N; x++ {
				if !g.IsBoundary(x, y, z) {
					continue
				}
				i := z*N*N + y*N + x
				g.cur[i] = Wall
				g.nxt[i] = Wall
			}
		}
	}
}
